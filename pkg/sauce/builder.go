package sauce

import (
	"fmt"
	"time"
)

// Builder assembles a Record, validating each field as it is set.
// The first error sticks and is returned by Build.
type Builder struct {
	rec Record
	err error
}

// NewBuilder starts a record dated today with no capabilities.
func NewBuilder() *Builder {
	return &Builder{rec: Record{Header: Header{Date: DateOf(time.Now())}}}
}

// FromRecord starts a builder from a copy of r.
func FromRecord(r *Record) *Builder {
	b := &Builder{rec: *r}
	b.rec.Title = cloneBytes(r.Title)
	b.rec.Author = cloneBytes(r.Author)
	b.rec.Group = cloneBytes(r.Group)
	b.rec.TInfoS = cloneBytes(r.TInfoS)
	b.rec.Comments = make([][]byte, len(r.Comments))
	for i, c := range r.Comments {
		b.rec.Comments[i] = cloneBytes(c)
	}
	return b
}

func (b *Builder) setField(dst *[]byte, v, field string, limit int, sentinel error) *Builder {
	if b.err != nil {
		return b
	}
	if len(v) > limit {
		b.err = fieldError(field, sentinel, len(v), limit)
		return b
	}
	*dst = []byte(v)
	return b
}

func (b *Builder) Title(v string) *Builder {
	return b.setField(&b.rec.Title, v, "title", MaxTitleLen, ErrTitleTooLong)
}

func (b *Builder) Author(v string) *Builder {
	return b.setField(&b.rec.Author, v, "author", MaxAuthorLen, ErrAuthorTooLong)
}

func (b *Builder) Group(v string) *Builder {
	return b.setField(&b.rec.Group, v, "group", MaxGroupLen, ErrGroupTooLong)
}

// Date sets the creation date. Only the zero Date or a real calendar day is accepted.
func (b *Builder) Date(d Date) *Builder {
	if b.err != nil {
		return b
	}
	if !d.IsZero() && !d.Valid() {
		b.err = fmt.Errorf("%w: %s", ErrInvalidDate, d)
		return b
	}
	b.rec.Date = d
	return b
}

func (b *Builder) FileSize(n uint32) *Builder {
	if b.err == nil {
		b.rec.FileSize = n
	}
	return b
}

// Comment appends one comment line.
func (b *Builder) Comment(v string) *Builder {
	if b.err != nil {
		return b
	}
	if len(b.rec.Comments) >= MaxComments {
		b.err = fmt.Errorf("%w: adding comment %d", ErrCommentLimitExceeded, len(b.rec.Comments)+1)
		return b
	}
	if len(v) > MaxCommentLen {
		b.err = &FieldError{Field: "comment", Len: len(v), Max: MaxCommentLen, Index: len(b.rec.Comments), err: ErrCommentTooLong}
		return b
	}
	b.rec.Comments = append(b.rec.Comments, []byte(v))
	return b
}

func (b *Builder) ClearComments() *Builder {
	if b.err == nil {
		b.rec.Comments = nil
	}
	return b
}

func (b *Builder) Capabilities(c Capabilities) *Builder {
	if b.err == nil {
		b.err = b.rec.SetCapabilities(c)
	}
	return b
}

// Build returns the assembled record or the first error encountered.
func (b *Builder) Build() (*Record, error) {
	if b.err != nil {
		return nil, b.err
	}
	rec := FromRecord(&b.rec).rec
	rec.CommentCount = uint8(len(rec.Comments))
	return &rec, nil
}
