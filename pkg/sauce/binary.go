package sauce

// BinaryFormat distinguishes raw character/attribute dumps from XBin.
type BinaryFormat uint8

const (
	BinaryText BinaryFormat = iota
	XBin
)

func (f BinaryFormat) String() string {
	if f == XBin {
		return "XBin"
	}
	return "BinaryText"
}

const (
	minBinaryTextColumns = 2
	maxBinaryTextColumns = 510
)

// Binary describes BinaryText (DataType 5) and XBin (DataType 6) content.
//
// BinaryText keeps its width in FileType as width/2 and never stores a
// height; use Height to derive it from the content size. XBin stores both
// dimensions and no flags or font.
type Binary struct {
	Format   BinaryFormat
	Columns  uint16
	Lines    uint16
	Flags    TextFlags
	FontName string
}

func (b Binary) DataType() DataType {
	if b.Format == XBin {
		return DataTypeXBin
	}
	return DataTypeBinaryText
}

// Height returns the number of rows in contentSize bytes of BinaryText.
// ok is false when the size is zero or not a whole number of rows.
// XBin returns its stored line count.
func (b Binary) Height(contentSize int64) (lines int64, ok bool) {
	if b.Format == XBin {
		return int64(b.Lines), true
	}
	row := int64(b.Columns) * 2
	if row == 0 || contentSize <= 0 || contentSize%row != 0 {
		return 0, false
	}
	return contentSize / row, true
}

func decodeBinary(p Payload) (Capabilities, bool) {
	if p.DataType == DataTypeXBin {
		if p.FileType != 0 {
			return nil, false
		}
		return Binary{Format: XBin, Columns: p.TInfo[0], Lines: p.TInfo[1]}, true
	}
	if p.FileType == 0 {
		return nil, false
	}
	return Binary{
		Format:   BinaryText,
		Columns:  uint16(p.FileType) * 2,
		Flags:    decodeTextFlags(p.Flags),
		FontName: fontName(p.TInfoS),
	}, true
}

func (b Binary) encode(p *Payload) error {
	if b.Format == XBin {
		p.TInfo = [4]uint16{b.Columns, b.Lines}
		return nil
	}
	if b.Columns < minBinaryTextColumns || b.Columns > maxBinaryTextColumns || b.Columns%2 != 0 {
		return &DimensionError{Columns: int(b.Columns)}
	}
	if len(b.FontName) > MaxFontNameLen {
		return fieldError("font name", ErrFontNameTooLong, len(b.FontName), MaxFontNameLen)
	}
	p.FileType = uint8(b.Columns / 2)
	p.Flags = b.Flags.Byte()
	if b.FontName != "" {
		p.TInfoS = []byte(b.FontName)
	}
	return nil
}
