package sauce

// ArchiveFormat is the FileType of a DataTypeArchive record.
type ArchiveFormat uint8

const (
	ArchiveZIP ArchiveFormat = iota
	ArchiveARJ
	ArchiveLZH
	ArchiveARC
	ArchiveTAR
	ArchiveZOO
	ArchiveRAR
	ArchiveUC2
	ArchivePAK
	ArchiveSQZ
)

var archiveExtensions = [...]string{"zip", "arj", "lzh", "arc", "tar", "zoo", "rar", "uc2", "pak", "sqz"}

func (f ArchiveFormat) String() string {
	if int(f) < len(archiveExtensions) {
		return archiveNames[f]
	}
	return "Unknown"
}

var archiveNames = [...]string{"ZIP", "ARJ", "LZH", "ARC", "TAR", "ZOO", "RAR", "UC2", "PAK", "SQZ"}

// Extension returns the conventional file extension without the dot.
func (f ArchiveFormat) Extension() string {
	if int(f) < len(archiveExtensions) {
		return archiveExtensions[f]
	}
	return ""
}

// IsCompressed is false only for TAR.
func (f ArchiveFormat) IsCompressed() bool {
	return f != ArchiveTAR && int(f) < len(archiveExtensions)
}

// Archive describes compressed or bundled files. Only the format is stored.
type Archive struct {
	Format ArchiveFormat
}

func (Archive) DataType() DataType { return DataTypeArchive }

func decodeArchive(p Payload) (Capabilities, bool) {
	if int(p.FileType) >= len(archiveExtensions) {
		return nil, false
	}
	return Archive{Format: ArchiveFormat(p.FileType)}, true
}

func (a Archive) encode(p *Payload) error {
	p.FileType = uint8(a.Format)
	return nil
}
