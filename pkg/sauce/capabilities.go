package sauce

// Payload is the raw capability area of a header: the (DataType, FileType)
// pair plus the fields whose meaning depends on it.
type Payload struct {
	DataType DataType
	FileType uint8
	TInfo    [4]uint16
	Flags    uint8
	TInfoS   []byte
}

// Capabilities is the decoded, family specific view of a Payload.
// The set of implementations is closed: Character, Binary, Bitmap, Vector,
// Audio, Archive, Executable and Unrecognized.
type Capabilities interface {
	DataType() DataType
	encode(p *Payload) error
}

// DecodeCapabilities maps every payload to a family. Pairs that no family
// claims are returned as Unrecognized so they survive a round trip.
func DecodeCapabilities(p Payload) Capabilities {
	var (
		c  Capabilities
		ok bool
	)
	switch p.DataType {
	case DataTypeCharacter:
		c, ok = decodeCharacter(p)
	case DataTypeBinaryText, DataTypeXBin:
		c, ok = decodeBinary(p)
	case DataTypeBitmap:
		c, ok = decodeBitmap(p)
	case DataTypeVector:
		c, ok = decodeVector(p)
	case DataTypeAudio:
		c, ok = decodeAudio(p)
	case DataTypeArchive:
		c, ok = decodeArchive(p)
	case DataTypeExecutable:
		c, ok = decodeExecutable(p)
	}
	if !ok {
		return Unrecognized{Payload: clonePayload(p)}
	}
	return c
}

// EncodeCapabilities produces the payload for c. A nil c encodes as DataTypeNone.
func EncodeCapabilities(c Capabilities) (Payload, error) {
	var p Payload
	if c == nil {
		return p, nil
	}
	p.DataType = c.DataType()
	if err := c.encode(&p); err != nil {
		return Payload{}, err
	}
	if len(p.TInfoS) > MaxFontNameLen {
		return Payload{}, fieldError("font name", ErrFontNameTooLong, len(p.TInfoS), MaxFontNameLen)
	}
	return p, nil
}

func clonePayload(p Payload) Payload {
	p.TInfoS = cloneBytes(p.TInfoS)
	return p
}

// Unrecognized preserves a payload whose (DataType, FileType) pair is not known.
type Unrecognized struct {
	Payload Payload
}

func (u Unrecognized) DataType() DataType { return u.Payload.DataType }

func (u Unrecognized) encode(p *Payload) error {
	*p = clonePayload(u.Payload)
	return nil
}

// TextFlags are the rendering hints stored in TFlags by text families.
type TextFlags struct {
	ICEColors     bool
	LetterSpacing LetterSpacing
	AspectRatio   AspectRatio
}

// LetterSpacing is stored in bits 1-2 of TFlags.
type LetterSpacing uint8

const (
	LetterSpacingLegacy LetterSpacing = iota
	LetterSpacing8px
	LetterSpacing9px
	LetterSpacingReserved
)

func (l LetterSpacing) String() string {
	switch l {
	case LetterSpacingLegacy:
		return "legacy"
	case LetterSpacing8px:
		return "8px"
	case LetterSpacing9px:
		return "9px"
	}
	return "reserved"
}

// AspectRatio is stored in bits 3-4 of TFlags.
type AspectRatio uint8

const (
	AspectRatioLegacy AspectRatio = iota
	AspectRatioLegacyDevice
	AspectRatioSquare
	AspectRatioReserved
)

func (a AspectRatio) String() string {
	switch a {
	case AspectRatioLegacy:
		return "legacy"
	case AspectRatioLegacyDevice:
		return "legacy device (stretch)"
	case AspectRatioSquare:
		return "square"
	}
	return "reserved"
}

const (
	flagICEColors     = 0x01
	maskLetterSpacing = 0x06
	maskAspectRatio   = 0x18
)

func decodeTextFlags(b uint8) TextFlags {
	return TextFlags{
		ICEColors:     b&flagICEColors != 0,
		LetterSpacing: LetterSpacing((b & maskLetterSpacing) >> 1),
		AspectRatio:   AspectRatio((b & maskAspectRatio) >> 3),
	}
}

// Byte packs f into a TFlags value. Reserved values are written as-is.
func (f TextFlags) Byte() uint8 {
	var b uint8
	if f.ICEColors {
		b |= flagICEColors
	}
	b |= (uint8(f.LetterSpacing) << 1) & maskLetterSpacing
	b |= (uint8(f.AspectRatio) << 3) & maskAspectRatio
	return b
}

func fontName(tinfos []byte) string {
	return TrimString(tinfos)
}
