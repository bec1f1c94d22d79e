package sauce

import "bytes"

// Trim removes trailing space and NUL padding from a fixed-width field.
// Decoded records keep the padding; Trim is for display.
func Trim(b []byte) []byte {
	return bytes.TrimRight(b, " \x00")
}

// TrimString is Trim returning a string.
func TrimString(b []byte) string {
	return string(Trim(b))
}

// putPadded copies src into dst and fills the remainder with pad.
func putPadded(dst, src []byte, pad byte) {
	n := copy(dst, src)
	for i := n; i < len(dst); i++ {
		dst[i] = pad
	}
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte(nil), b...)
}
