package sauce

import (
	"encoding/binary"
	"fmt"
)

// Header holds the fixed fields of a record as stored on disk.
// Title, Author, Group and TInfoS keep their padding when decoded.
type Header struct {
	Title        []byte
	Author       []byte
	Group        []byte
	Date         Date
	FileSize     uint32
	DataType     DataType
	FileType     uint8
	TInfo        [4]uint16
	CommentCount uint8
	Flags        uint8
	TInfoS       []byte
}

// DecodeHeader parses exactly HeaderSize bytes.
// An unparsable date decodes as the zero Date rather than failing the record.
func DecodeHeader(b []byte) (Header, error) {
	if len(b) != HeaderSize {
		return Header{}, fmt.Errorf("%w: got %d", ErrHeaderSize, len(b))
	}
	if string(b[offSignature:offVersion]) != signature {
		return Header{}, ErrBadSignature
	}
	if string(b[offVersion:offTitle]) != version {
		return Header{}, fmt.Errorf("%w: %q", ErrUnsupportedVersion, b[offVersion:offTitle])
	}

	date, _ := ParseDate(b[offDate:offFileSize])
	h := Header{
		Title:        cloneBytes(b[offTitle:offAuthor]),
		Author:       cloneBytes(b[offAuthor:offGroup]),
		Group:        cloneBytes(b[offGroup:offDate]),
		Date:         date,
		FileSize:     binary.LittleEndian.Uint32(b[offFileSize:offDataType]),
		DataType:     DataType(b[offDataType]),
		FileType:     b[offFileType],
		CommentCount: b[offComments],
		Flags:        b[offFlags],
		TInfoS:       cloneBytes(b[offTInfoS:HeaderSize]),
	}
	for i := range h.TInfo {
		h.TInfo[i] = binary.LittleEndian.Uint16(b[offTInfo+2*i:])
	}
	return h, nil
}

// validHeaderAt reports whether b[off:off+HeaderSize] carries a supported signature.
func validHeaderAt(b []byte, off int) bool {
	if off < 0 || off+HeaderSize > len(b) {
		return false
	}
	return string(b[off+offSignature:off+offVersion]) == signature &&
		string(b[off+offVersion:off+offTitle]) == version
}

func (h *Header) validate() error {
	if len(h.Title) > MaxTitleLen {
		return fieldError("title", ErrTitleTooLong, len(h.Title), MaxTitleLen)
	}
	if len(h.Author) > MaxAuthorLen {
		return fieldError("author", ErrAuthorTooLong, len(h.Author), MaxAuthorLen)
	}
	if len(h.Group) > MaxGroupLen {
		return fieldError("group", ErrGroupTooLong, len(h.Group), MaxGroupLen)
	}
	if len(h.TInfoS) > MaxFontNameLen {
		return fieldError("font name", ErrFontNameTooLong, len(h.TInfoS), MaxFontNameLen)
	}
	if !h.Date.IsZero() && !h.Date.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidDate, h.Date)
	}
	return nil
}

// appendHeader appends the 128 byte encoding of h to dst.
func appendHeader(dst []byte, h *Header) ([]byte, error) {
	if err := h.validate(); err != nil {
		return dst, err
	}
	start := len(dst)
	dst = append(dst, make([]byte, HeaderSize)...)
	b := dst[start:]

	copy(b[offSignature:], signature)
	copy(b[offVersion:], version)
	putPadded(b[offTitle:offAuthor], h.Title, ' ')
	putPadded(b[offAuthor:offGroup], h.Author, ' ')
	putPadded(b[offGroup:offDate], h.Group, ' ')
	copy(b[offDate:offFileSize], h.Date.appendCCYYMMDD(nil))
	binary.LittleEndian.PutUint32(b[offFileSize:], h.FileSize)
	b[offDataType] = byte(h.DataType)
	b[offFileType] = h.FileType
	for i, v := range h.TInfo {
		binary.LittleEndian.PutUint16(b[offTInfo+2*i:], v)
	}
	b[offComments] = h.CommentCount
	b[offFlags] = h.Flags
	putPadded(b[offTInfoS:HeaderSize], h.TInfoS, 0)
	return dst, nil
}
