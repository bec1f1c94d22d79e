// Package sauce implements the SAUCE v00 metadata trailer.
//
// A SAUCE record is a fixed 128 byte header, optionally preceded by a
// "COMNT" block of 64 byte comment lines, appended to the end of an
// otherwise unmodified file. Producers normally write a single EOF byte
// (0x1A) between the content and the trailer so that DOS era viewers stop
// reading before the metadata.
//
// The package never interprets the content bytes. All operations borrow
// their input and never modify it.
package sauce

// Layout constants are fixed by the SAUCE v00 format and must never change.
const (
	// HeaderSize is the encoded size of the fixed header.
	HeaderSize = 128

	// CommentLineSize is the size of a single comment slot.
	CommentLineSize = 64

	// CommentMarkerSize is the size of the "COMNT" marker preceding the comment slots.
	CommentMarkerSize = 5

	// MaxComments is the largest comment count the one byte counter can hold.
	MaxComments = 255

	// EOF is the DOS end-of-file marker written before a record.
	EOF byte = 0x1A

	MaxTitleLen    = 35
	MaxAuthorLen   = 20
	MaxGroupLen    = 20
	MaxCommentLen  = CommentLineSize
	MaxFontNameLen = 22

	signature     = "SAUCE"
	version       = "00"
	commentMarker = "COMNT"
)

// Header field offsets.
const (
	offSignature = 0
	offVersion   = 5
	offTitle     = 7
	offAuthor    = 42
	offGroup     = 62
	offDate      = 82
	offFileSize  = 90
	offDataType  = 94
	offFileType  = 95
	offTInfo     = 96
	offComments  = 104
	offFlags     = 105
	offTInfoS    = 106
)

// DataType is the major classification byte of a record.
type DataType uint8

const (
	DataTypeNone       DataType = 0
	DataTypeCharacter  DataType = 1
	DataTypeBitmap     DataType = 2
	DataTypeVector     DataType = 3
	DataTypeAudio      DataType = 4
	DataTypeBinaryText DataType = 5
	DataTypeXBin       DataType = 6
	DataTypeArchive    DataType = 7
	DataTypeExecutable DataType = 8
)

var dataTypeNames = [...]string{
	DataTypeNone:       "None",
	DataTypeCharacter:  "Character",
	DataTypeBitmap:     "Bitmap",
	DataTypeVector:     "Vector",
	DataTypeAudio:      "Audio",
	DataTypeBinaryText: "BinaryText",
	DataTypeXBin:       "XBin",
	DataTypeArchive:    "Archive",
	DataTypeExecutable: "Executable",
}

func (d DataType) String() string {
	if int(d) < len(dataTypeNames) {
		return dataTypeNames[d]
	}
	return "Unknown"
}
