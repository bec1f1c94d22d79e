package sauce

import "fmt"

// DecodeComments splits a "COMNT" block into count lines.
// Lines keep their padding; see Trim.
func DecodeComments(block []byte, count int) ([][]byte, error) {
	if count < 0 || count > MaxComments {
		return nil, fmt.Errorf("%w: count %d", ErrMissingCommentBlock, count)
	}
	if len(block) != commentBlockSize(count) {
		return nil, fmt.Errorf("%w: block is %d bytes, want %d", ErrMissingCommentBlock, len(block), commentBlockSize(count))
	}
	if string(block[:CommentMarkerSize]) != commentMarker {
		return nil, fmt.Errorf("%w: bad marker %q", ErrMissingCommentBlock, block[:CommentMarkerSize])
	}
	lines := make([][]byte, count)
	for i := range lines {
		off := CommentMarkerSize + i*CommentLineSize
		lines[i] = cloneBytes(block[off : off+CommentLineSize])
	}
	return lines, nil
}

func appendComments(dst []byte, comments [][]byte) ([]byte, error) {
	if len(comments) == 0 {
		return dst, nil
	}
	if len(comments) > MaxComments {
		return dst, fmt.Errorf("%w: got %d", ErrCommentLimitExceeded, len(comments))
	}
	for i, c := range comments {
		if len(c) > MaxCommentLen {
			return dst, &FieldError{Field: "comment", Len: len(c), Max: MaxCommentLen, Index: i, err: ErrCommentTooLong}
		}
	}
	dst = append(dst, commentMarker...)
	for _, c := range comments {
		start := len(dst)
		dst = append(dst, make([]byte, CommentLineSize)...)
		putPadded(dst[start:], c, ' ')
	}
	return dst, nil
}
