package sauce

import (
	"errors"
	"fmt"
	"io"
	"math"
)

// Record is a decoded SAUCE trailer.
//
// Header.CommentCount reflects what was stored on disk. When encoding, the
// count is always taken from len(Comments).
type Record struct {
	Header
	Comments [][]byte
}

// Read locates and decodes the record at the end of buf.
//
// A record whose comment block is absent or malformed is still returned,
// with no comments, together with an error wrapping ErrMissingCommentBlock.
// Callers that only need the header can accept it with errors.Is.
func Read(buf []byte) (*Record, error) {
	loc, ok := Locate(buf)
	if !ok {
		if len(buf) < HeaderSize {
			return nil, ErrNoRecord
		}
		if _, err := DecodeHeader(buf[len(buf)-HeaderSize:]); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNoRecord, err)
		}
		return nil, ErrNoRecord
	}
	return readAt(buf, loc)
}

func readAt(buf []byte, loc Location) (*Record, error) {
	h, err := DecodeHeader(buf[loc.HeaderStart:loc.End])
	if err != nil {
		return nil, err
	}
	rec := &Record{Header: h}
	if loc.CommentCount == 0 {
		return rec, nil
	}
	if !loc.HasComments() {
		return rec, fmt.Errorf("%w: header declares %d comments", ErrMissingCommentBlock, loc.CommentCount)
	}
	comments, err := DecodeComments(buf[loc.CommentStart:loc.HeaderStart], loc.CommentCount)
	if err != nil {
		return rec, err
	}
	rec.Comments = comments
	return rec, nil
}

// IsPartial reports whether err from Read still came with a usable record.
func IsPartial(err error) bool {
	return errors.Is(err, ErrMissingCommentBlock)
}

// Payload returns the raw capability fields of the header.
func (h *Header) Payload() Payload {
	return Payload{
		DataType: h.DataType,
		FileType: h.FileType,
		TInfo:    h.TInfo,
		Flags:    h.Flags,
		TInfoS:   cloneBytes(h.TInfoS),
	}
}

// Capabilities decodes the capability payload of the header.
func (h *Header) Capabilities() Capabilities {
	return DecodeCapabilities(h.Payload())
}

// SetCapabilities replaces the capability payload of the header with the
// encoding of c. The header is unchanged on error.
func (h *Header) SetCapabilities(c Capabilities) error {
	p, err := EncodeCapabilities(c)
	if err != nil {
		return err
	}
	h.DataType = p.DataType
	h.FileType = p.FileType
	h.TInfo = p.TInfo
	h.Flags = p.Flags
	h.TInfoS = p.TInfoS
	return nil
}

// Len is the encoded size of r, excluding the EOF marker.
func (r *Record) Len() int {
	if len(r.Comments) == 0 {
		return HeaderSize
	}
	return commentBlockSize(len(r.Comments)) + HeaderSize
}

// AppendBinary appends the comment block (if any) and header to dst.
// Fields that do not fit are rejected, never truncated.
func (r *Record) AppendBinary(dst []byte) ([]byte, error) {
	if len(r.Comments) > MaxComments {
		return dst, fmt.Errorf("%w: got %d", ErrCommentLimitExceeded, len(r.Comments))
	}
	h := r.Header
	h.CommentCount = uint8(len(r.Comments))

	orig := len(dst)
	dst, err := appendComments(dst, r.Comments)
	if err != nil {
		return dst[:orig], err
	}
	dst, err = appendHeader(dst, &h)
	if err != nil {
		return dst[:orig], err
	}
	return dst, nil
}

func (r *Record) MarshalBinary() ([]byte, error) {
	return r.AppendBinary(make([]byte, 0, r.Len()))
}

// Encode writes an EOF marker followed by r to w.
func (r *Record) Encode(w io.Writer) error {
	buf := make([]byte, 1, 1+r.Len())
	buf[0] = EOF
	buf, err := r.AppendBinary(buf)
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}

// Attach returns content with every existing trailer removed and r appended
// after a single EOF marker. FileSize is set from the remaining content.
// Neither content nor r is modified.
func Attach(content []byte, r *Record) ([]byte, error) {
	body := Strip(content, AllStripFinalEOF)
	rec := *r
	rec.FileSize = fileSize(len(body))

	out := make([]byte, 0, len(body)+1+rec.Len())
	out = append(out, body...)
	out = append(out, EOF)
	out, err := rec.AppendBinary(out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func fileSize(n int) uint32 {
	if uint64(n) > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(n)
}
