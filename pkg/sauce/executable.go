package sauce

// Executable marks a program file. It carries no fields.
type Executable struct{}

func (Executable) DataType() DataType { return DataTypeExecutable }

func decodeExecutable(p Payload) (Capabilities, bool) {
	return Executable{}, p.FileType == 0
}

func (Executable) encode(*Payload) error { return nil }
