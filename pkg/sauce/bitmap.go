package sauce

// BitmapFormat is the FileType of a DataTypeBitmap record.
type BitmapFormat uint8

const (
	BitmapGIF BitmapFormat = iota
	BitmapPCX
	BitmapLBM
	BitmapTGA
	BitmapFLI
	BitmapFLC
	BitmapBMP
	BitmapGL
	BitmapDL
	BitmapWPG
	BitmapPNG
	BitmapJPG
	BitmapMPG
	BitmapAVI
)

var bitmapFormatNames = [...]string{
	"GIF", "PCX", "LBM/IFF", "TGA", "FLI", "FLC", "BMP", "GL", "DL", "WPG", "PNG", "JPG", "MPG", "AVI",
}

func (f BitmapFormat) String() string {
	if int(f) < len(bitmapFormatNames) {
		return bitmapFormatNames[f]
	}
	return "Unknown"
}

// IsAnimated reports whether the format is an animation or video container.
func (f BitmapFormat) IsAnimated() bool {
	switch f {
	case BitmapFLI, BitmapFLC, BitmapGL, BitmapDL, BitmapMPG, BitmapAVI:
		return true
	}
	return false
}

// Bitmap describes raster images and animations. Fields are passed through
// unvalidated.
type Bitmap struct {
	Format BitmapFormat
	Width  uint16
	Height uint16
	Depth  uint16
}

func (Bitmap) DataType() DataType { return DataTypeBitmap }

func decodeBitmap(p Payload) (Capabilities, bool) {
	if int(p.FileType) >= len(bitmapFormatNames) {
		return nil, false
	}
	return Bitmap{
		Format: BitmapFormat(p.FileType),
		Width:  p.TInfo[0],
		Height: p.TInfo[1],
		Depth:  p.TInfo[2],
	}, true
}

func (b Bitmap) encode(p *Payload) error {
	p.FileType = uint8(b.Format)
	p.TInfo = [4]uint16{b.Width, b.Height, b.Depth}
	return nil
}
