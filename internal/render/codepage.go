package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/samcharles93/sauce/pkg/sauce"
)

// Codepage names accepted by DecoderFor.
const (
	CP437  = "cp437"
	Latin1 = "latin1"
	UTF8   = "utf8"
)

// TextDecoder turns a padded SAUCE text field into display text.
type TextDecoder struct {
	name string
	enc  encoding.Encoding
}

// DecoderFor returns the decoder for a codepage name. SAUCE predates
// Unicode and almost every record in the wild is CP437.
func DecoderFor(name string) (TextDecoder, error) {
	switch strings.ToLower(strings.ReplaceAll(name, "-", "")) {
	case "", CP437, "ibm437", "dos":
		return TextDecoder{name: CP437, enc: charmap.CodePage437}, nil
	case Latin1, "iso88591", "amiga":
		return TextDecoder{name: Latin1, enc: charmap.ISO8859_1}, nil
	case UTF8, "raw":
		return TextDecoder{name: UTF8}, nil
	}
	return TextDecoder{}, fmt.Errorf("unknown codepage %q (want cp437, latin1 or utf8)", name)
}

func (d TextDecoder) Name() string { return d.name }

// Decode trims trailing padding and converts b to UTF-8.
// Invalid UTF-8 in utf8 mode is replaced rather than rejected.
func (d TextDecoder) Decode(b []byte) string {
	b = sauce.Trim(b)
	if d.enc == nil {
		if utf8.Valid(b) {
			return string(b)
		}
		return strings.ToValidUTF8(string(b), "�")
	}
	out, err := d.enc.NewDecoder().Bytes(b)
	if err != nil {
		return strings.ToValidUTF8(string(b), "�")
	}
	return string(out)
}
