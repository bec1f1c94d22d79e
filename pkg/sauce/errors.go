package sauce

import (
	"errors"
	"fmt"
)

var (
	ErrNoRecord             = errors.New("sauce: no record found")
	ErrBadSignature         = errors.New("sauce: bad signature")
	ErrHeaderSize           = errors.New("sauce: header must be 128 bytes")
	ErrUnsupportedVersion   = errors.New("sauce: unsupported version")
	ErrMissingCommentBlock  = errors.New("sauce: missing or malformed comment block")
	ErrCommentLimitExceeded = errors.New("sauce: more than 255 comments")
	ErrInvalidDimensions    = errors.New("sauce: invalid dimensions")
	ErrTitleTooLong         = errors.New("sauce: title too long")
	ErrAuthorTooLong        = errors.New("sauce: author too long")
	ErrGroupTooLong         = errors.New("sauce: group too long")
	ErrCommentTooLong       = errors.New("sauce: comment too long")
	ErrFontNameTooLong      = errors.New("sauce: font name too long")
	ErrInvalidDate          = errors.New("sauce: invalid date")
)

// FieldError reports a text field that does not fit its fixed slot.
// It unwraps to one of the *TooLong sentinels.
type FieldError struct {
	Field string
	Len   int
	Max   int
	Index int // comment index, -1 for header fields
	err   error
}

func (e *FieldError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%v: comment %d is %d bytes (max %d)", e.err, e.Index, e.Len, e.Max)
	}
	return fmt.Sprintf("%v: %s is %d bytes (max %d)", e.err, e.Field, e.Len, e.Max)
}

func (e *FieldError) Unwrap() error { return e.err }

func fieldError(field string, err error, n, limit int) *FieldError {
	return &FieldError{Field: field, Len: n, Max: limit, Index: -1, err: err}
}

// DimensionError reports a width that cannot be represented by the target format.
type DimensionError struct {
	Columns int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("sauce: invalid dimensions: binary text width %d must be even and within [2,510]", e.Columns)
}

func (e *DimensionError) Unwrap() error { return ErrInvalidDimensions }
