package sauce

// CharacterFormat is the FileType of a DataTypeCharacter record.
type CharacterFormat uint8

const (
	CharacterASCII CharacterFormat = iota
	CharacterANSI
	CharacterANSiMation
	CharacterRIPScript
	CharacterPCBoard
	CharacterAvatar
	CharacterHTML
	CharacterSource
	CharacterTundraDraw
)

var characterFormatNames = [...]string{
	"ASCII", "ANSI", "ANSiMation", "RIPScript", "PCBoard", "Avatar", "HTML", "Source", "TundraDraw",
}

func (f CharacterFormat) String() string {
	if int(f) < len(characterFormatNames) {
		return characterFormatNames[f]
	}
	return "Unknown"
}

// HasTextFlags reports whether the format stores TFlags and a font name.
func (f CharacterFormat) HasTextFlags() bool {
	return f == CharacterASCII || f == CharacterANSI || f == CharacterANSiMation
}

// HasDimensions reports whether TInfo1/TInfo2 hold a character grid.
func (f CharacterFormat) HasDimensions() bool {
	switch f {
	case CharacterASCII, CharacterANSI, CharacterANSiMation, CharacterPCBoard, CharacterAvatar, CharacterTundraDraw:
		return true
	}
	return false
}

// IsStream reports whether content height is open ended.
func (f CharacterFormat) IsStream() bool {
	switch f {
	case CharacterASCII, CharacterANSI, CharacterPCBoard, CharacterAvatar, CharacterTundraDraw:
		return true
	}
	return false
}

func (f CharacterFormat) IsAnimated() bool { return f == CharacterANSiMation }

// RIPScript screens are always stored as 640x350 with 16 colours.
const (
	ripWidth  = 640
	ripHeight = 350
	ripColors = 16
)

// Character describes text-mode content.
type Character struct {
	Format   CharacterFormat
	Columns  uint16
	Lines    uint16
	Flags    TextFlags
	FontName string
}

func (Character) DataType() DataType { return DataTypeCharacter }

func decodeCharacter(p Payload) (Capabilities, bool) {
	f := CharacterFormat(p.FileType)
	if int(f) >= len(characterFormatNames) {
		return nil, false
	}
	c := Character{Format: f}
	switch {
	case f.HasTextFlags():
		c.Columns, c.Lines = p.TInfo[0], p.TInfo[1]
		c.Flags = decodeTextFlags(p.Flags)
		c.FontName = fontName(p.TInfoS)
	case f == CharacterRIPScript:
		c.Columns, c.Lines = 80, 25
	case f.HasDimensions():
		c.Columns, c.Lines = p.TInfo[0], p.TInfo[1]
	}
	return c, true
}

func (c Character) encode(p *Payload) error {
	p.FileType = uint8(c.Format)
	switch {
	case c.Format.HasTextFlags():
		if len(c.FontName) > MaxFontNameLen {
			return fieldError("font name", ErrFontNameTooLong, len(c.FontName), MaxFontNameLen)
		}
		p.TInfo = [4]uint16{c.Columns, c.Lines}
		p.Flags = c.Flags.Byte()
		if c.FontName != "" {
			p.TInfoS = []byte(c.FontName)
		}
	case c.Format == CharacterRIPScript:
		p.TInfo = [4]uint16{ripWidth, ripHeight, ripColors}
	case c.Format.HasDimensions():
		p.TInfo = [4]uint16{c.Columns, c.Lines}
	}
	return nil
}
