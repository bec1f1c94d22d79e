package sauce

type VectorFormat uint8

const (
	VectorDXF VectorFormat = iota
	VectorDWG
	VectorWPG
	Vector3DS
)

var vectorFormatNames = [...]string{"DXF", "DWG", "WPG", "3DS"}

func (f VectorFormat) String() string {
	if int(f) < len(vectorFormatNames) {
		return vectorFormatNames[f]
	}
	return "Unknown"
}

// Vector describes vector graphics. Only the format is stored.
type Vector struct {
	Format VectorFormat
}

func (Vector) DataType() DataType { return DataTypeVector }

func decodeVector(p Payload) (Capabilities, bool) {
	if int(p.FileType) >= len(vectorFormatNames) {
		return nil, false
	}
	return Vector{Format: VectorFormat(p.FileType)}, true
}

func (v Vector) encode(p *Payload) error {
	p.FileType = uint8(v.Format)
	return nil
}
