package render

import (
	"bytes"
	"encoding/hex"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/zeebo/blake3"

	"github.com/samcharles93/sauce/pkg/sauce"
)

func buildFile(t *testing.T, body []byte, b *sauce.Builder) []byte {
	t.Helper()
	rec, err := b.Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	out, err := sauce.Attach(body, rec)
	if err != nil {
		t.Fatalf("attach: %v", err)
	}
	return out
}

func TestDecoderFor(t *testing.T) {
	t.Parallel()

	cp, err := DecoderFor("")
	if err != nil || cp.Name() != CP437 {
		t.Fatalf("default decoder mismatch: %v %q", err, cp.Name())
	}
	// 0xB0 is a light shade block in CP437 and a degree sign in Latin-1.
	if got := cp.Decode([]byte{0xB0, 'x', ' ', 0}); got != "░x" {
		t.Fatalf("cp437 decode mismatch: got %q", got)
	}
	l1, err := DecoderFor("ISO-8859-1")
	if err != nil {
		t.Fatalf("latin1: %v", err)
	}
	if got := l1.Decode([]byte{0xB0}); got != "°" {
		t.Fatalf("latin1 decode mismatch: got %q", got)
	}
	raw, _ := DecoderFor("utf8")
	if got := raw.Decode([]byte{'a', 0xff}); got != "a�" {
		t.Fatalf("utf8 decode mismatch: got %q", got)
	}
	if _, err := DecoderFor("ebcdic"); err == nil {
		t.Fatalf("expected error for unknown codepage")
	}
}

func TestInspectBinaryText(t *testing.T) {
	t.Parallel()

	body := bytes.Repeat([]byte{'A', 0x07}, 80*3)
	file := buildFile(t, body, sauce.NewBuilder().
		Title("bin\xb0").
		Comment("hello").
		Capabilities(sauce.Binary{Format: sauce.BinaryText, Columns: 80, Flags: sauce.TextFlags{ICEColors: true}}))

	v, err := Inspect(file, Options{Raw: true})
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if !v.Found || v.Title != "bin░" || v.DataType != "BinaryText" {
		t.Fatalf("view mismatch: %+v", v)
	}
	c := v.Capabilities
	if c == nil || *c.Columns != 80 || c.Lines == nil || *c.Lines != 3 || !c.LinesDerived {
		t.Fatalf("capabilities mismatch: %+v", c)
	}
	if len(v.Comments) != 1 || v.Comments[0] != "hello" {
		t.Fatalf("comments mismatch: %q", v.Comments)
	}
	sum := blake3.Sum256(body)
	if v.Content.Size != len(body) || v.Content.BLAKE3 != hex.EncodeToString(sum[:]) || v.Content.RecordsInChain != 1 {
		t.Fatalf("content mismatch: %+v", v.Content)
	}
	if v.Raw == nil || v.Raw.FileType != 40 || v.Raw.Flags != 1 {
		t.Fatalf("raw mismatch: %+v", v.Raw)
	}
	if len(v.Warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", v.Warnings)
	}
}

func TestInspectWarnings(t *testing.T) {
	t.Parallel()

	rec, err := sauce.NewBuilder().Title("bare").Comment("lost").Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	enc, err := rec.MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	header := enc[len(enc)-sauce.HeaderSize:]
	file := append([]byte("no eof"), header...)

	v, err := Inspect(file, Options{})
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if len(v.Warnings) != 2 || v.Warnings[0] != WarnMissingComments || v.Warnings[1] != WarnNoEOF {
		t.Fatalf("warnings mismatch: %v", v.Warnings)
	}
	if v.Record.HasComments || v.Record.CommentCount != 1 {
		t.Fatalf("record location mismatch: %+v", v.Record)
	}
}

func TestInspectNoRecord(t *testing.T) {
	t.Parallel()

	v, err := Inspect([]byte("plain"), Options{})
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if v.Found || v.Capabilities != nil || v.Content.Size != 5 {
		t.Fatalf("view mismatch: %+v", v)
	}
	var buf bytes.Buffer
	if err := WriteText(&buf, "plain.txt", v, TextOptions{}); err != nil {
		t.Fatalf("write text: %v", err)
	}
	if !strings.Contains(buf.String(), "No SAUCE record found") {
		t.Fatalf("text mismatch: %q", buf.String())
	}
}

func TestWriteTextAndJSON(t *testing.T) {
	t.Parallel()

	file := buildFile(t, []byte("ansi"), sauce.NewBuilder().
		Title("Title").
		Author("Author").
		Date(sauce.Date{Year: 1995, Month: 12, Day: 24}).
		Comment("first comment").
		Capabilities(sauce.Character{Format: sauce.CharacterANSI, Columns: 80, Lines: 25, FontName: "IBM VGA"}))
	v, err := Inspect(file, Options{Raw: true})
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}

	var text bytes.Buffer
	if err := WriteText(&text, "art.ans", v, TextOptions{Comments: true, Raw: true}); err != nil {
		t.Fatalf("write text: %v", err)
	}
	for _, want := range []string{"Title:", "1995/12/24", "Character information", "IBM VGA", "1: first comment", "TInfo1:"} {
		if !strings.Contains(text.String(), want) {
			t.Fatalf("expected %q in text output:\n%s", want, text.String())
		}
	}

	var out bytes.Buffer
	if err := WriteJSON(&out, v); err != nil {
		t.Fatalf("write json: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	caps, _ := decoded["capabilities"].(map[string]any)
	if decoded["title"] != "Title" || caps["format"] != "ANSI" || caps["columns"] != float64(80) {
		t.Fatalf("json mismatch: %s", out.String())
	}
	if _, ok := caps["sample_rate"]; ok {
		t.Fatalf("unexpected sample_rate for character file")
	}
}
