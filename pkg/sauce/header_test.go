package sauce

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
	"time"
)

func TestRecordRoundTrip(t *testing.T) {
	t.Parallel()

	rec, err := NewBuilder().
		Title("Hello").
		Author("Author").
		Group("Group").
		Date(Date{Year: 2024, Month: 5, Day: 1}).
		FileSize(1234).
		Capabilities(Character{
			Format:  CharacterANSI,
			Columns: 80,
			Lines:   25,
			Flags: TextFlags{
				ICEColors:     true,
				LetterSpacing: LetterSpacing9px,
				AspectRatio:   AspectRatioSquare,
			},
			FontName: "IBM VGA",
		}).
		Comment("first").
		Comment("second").
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	out, err := rec.MarshalBinary()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if want := CommentMarkerSize + 2*CommentLineSize + HeaderSize; len(out) != want || rec.Len() != want {
		t.Fatalf("encoded length mismatch: got %d (Len %d), want %d", len(out), rec.Len(), want)
	}
	if !bytes.HasPrefix(out, []byte("COMNT")) {
		t.Fatalf("missing comment marker: %q", out[:5])
	}

	h := out[len(out)-HeaderSize:]
	if string(h[:7]) != "SAUCE00" {
		t.Fatalf("signature mismatch: got %q", h[:7])
	}
	if got := string(h[offTitle:offAuthor]); got != "Hello"+string(bytes.Repeat([]byte{' '}, 30)) {
		t.Fatalf("title padding mismatch: got %q", got)
	}
	if got := string(h[offDate:offFileSize]); got != "20240501" {
		t.Fatalf("date mismatch: got %q", got)
	}
	if got := binary.LittleEndian.Uint32(h[offFileSize:]); got != 1234 {
		t.Fatalf("file size mismatch: got %d", got)
	}
	if h[offDataType] != 1 || h[offFileType] != 1 {
		t.Fatalf("type pair mismatch: got (%d,%d)", h[offDataType], h[offFileType])
	}
	if got := binary.LittleEndian.Uint16(h[offTInfo:]); got != 80 {
		t.Fatalf("tinfo1 mismatch: got %d", got)
	}
	if h[offComments] != 2 {
		t.Fatalf("comment count mismatch: got %d", h[offComments])
	}
	if h[offFlags] != 0x15 {
		t.Fatalf("flags mismatch: got %#x", h[offFlags])
	}
	if got := string(h[offTInfoS : offTInfoS+7]); got != "IBM VGA" || h[HeaderSize-1] != 0 {
		t.Fatalf("font mismatch: got %q", h[offTInfoS:])
	}

	got, err := Read(out)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if TrimString(got.Title) != "Hello" || len(got.Title) != MaxTitleLen {
		t.Fatalf("decoded title mismatch: got %q", got.Title)
	}
	if TrimString(got.Author) != "Author" || TrimString(got.Group) != "Group" {
		t.Fatalf("decoded author/group mismatch: got %q %q", got.Author, got.Group)
	}
	if got.Date != (Date{Year: 2024, Month: 5, Day: 1}) {
		t.Fatalf("decoded date mismatch: got %v", got.Date)
	}
	if len(got.Comments) != 2 || TrimString(got.Comments[0]) != "first" || TrimString(got.Comments[1]) != "second" {
		t.Fatalf("decoded comments mismatch: got %q", got.Comments)
	}
	if len(got.Comments[0]) != CommentLineSize {
		t.Fatalf("comment slot width mismatch: got %d", len(got.Comments[0]))
	}

	c, ok := got.Capabilities().(Character)
	if !ok {
		t.Fatalf("capabilities type mismatch: got %T", got.Capabilities())
	}
	if c.Columns != 80 || c.Lines != 25 || !c.Flags.ICEColors || c.Flags.LetterSpacing != LetterSpacing9px ||
		c.Flags.AspectRatio != AspectRatioSquare || c.FontName != "IBM VGA" {
		t.Fatalf("decoded capabilities mismatch: got %+v", c)
	}

	again, err := got.MarshalBinary()
	if err != nil {
		t.Fatalf("re-marshal: %v", err)
	}
	if !bytes.Equal(again, out) {
		t.Fatalf("re-encoded record differs")
	}
}

func TestDecodeHeaderErrors(t *testing.T) {
	t.Parallel()

	good := mustRecord(t, "x")

	bad := append([]byte(nil), good...)
	copy(bad, "SAUCY")
	if _, err := DecodeHeader(bad); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("expected ErrBadSignature, got %v", err)
	}

	ver := append([]byte(nil), good...)
	copy(ver[offVersion:], "01")
	if _, err := DecodeHeader(ver); !errors.Is(err, ErrUnsupportedVersion) {
		t.Fatalf("expected ErrUnsupportedVersion, got %v", err)
	}
	if _, ok := Locate(ver); ok {
		t.Fatalf("unsupported version must not be located")
	}
	if _, err := Read(ver); !errors.Is(err, ErrNoRecord) || !errors.Is(err, ErrUnsupportedVersion) {
		t.Fatalf("expected ErrNoRecord wrapping ErrUnsupportedVersion, got %v", err)
	}

	if _, err := DecodeHeader(good[:HeaderSize-1]); !errors.Is(err, ErrHeaderSize) || errors.Is(err, ErrBadSignature) {
		t.Fatalf("expected ErrHeaderSize for short header, got %v", err)
	}
}

func TestEncodeRejectsLongFields(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		rec  Record
		want error
	}{
		{"title", Record{Header: Header{Title: bytes.Repeat([]byte("t"), 36)}}, ErrTitleTooLong},
		{"author", Record{Header: Header{Author: bytes.Repeat([]byte("a"), 21)}}, ErrAuthorTooLong},
		{"group", Record{Header: Header{Group: bytes.Repeat([]byte("g"), 21)}}, ErrGroupTooLong},
		{"font", Record{Header: Header{TInfoS: bytes.Repeat([]byte("f"), 23)}}, ErrFontNameTooLong},
		{"comment", Record{Comments: [][]byte{[]byte("ok"), bytes.Repeat([]byte("c"), 65)}}, ErrCommentTooLong},
		{"comment count", Record{Comments: make([][]byte, 256)}, ErrCommentLimitExceeded},
		{"year", Record{Header: Header{Date: Date{Year: 12345, Month: 1, Day: 1}}}, ErrInvalidDate},
		{"leap day", Record{Header: Header{Date: Date{Year: 2023, Month: 2, Day: 29}}}, ErrInvalidDate},
		{"month zero", Record{Header: Header{Date: Date{Year: 1996, Day: 2}}}, ErrInvalidDate},
	}
	for _, tc := range cases {
		if _, err := tc.rec.MarshalBinary(); !errors.Is(err, tc.want) {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}

	var fe *FieldError
	_, err := (&Record{Comments: [][]byte{[]byte("ok"), bytes.Repeat([]byte("c"), 65)}}).MarshalBinary()
	if !errors.As(err, &fe) || fe.Index != 1 || fe.Len != 65 {
		t.Fatalf("expected comment FieldError at index 1, got %v", err)
	}

	// Exactly at the limits is fine.
	ok := Record{Header: Header{
		Title:  bytes.Repeat([]byte("t"), 35),
		Author: bytes.Repeat([]byte("a"), 20),
		Group:  bytes.Repeat([]byte("g"), 20),
		Date:   Date{Year: 9999, Month: 12, Day: 31},
	}, Comments: [][]byte{bytes.Repeat([]byte("c"), 64)}}
	if _, err := ok.MarshalBinary(); err != nil {
		t.Fatalf("limit-sized fields rejected: %v", err)
	}
}

func TestEncodeWritesEOF(t *testing.T) {
	t.Parallel()

	rec := &Record{Header: Header{Title: []byte("x")}}
	var buf bytes.Buffer
	if err := rec.Encode(&buf); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if buf.Len() != 1+HeaderSize || buf.Bytes()[0] != EOF {
		t.Fatalf("encode output mismatch: len=%d first=%#x", buf.Len(), buf.Bytes()[0])
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{"19960802", Date{1996, 8, 2}, false},
		{"00000000", Date{}, false},
		{"1996  02", Date{1996, 0, 2}, false},
		{"1996O802", Date{}, true},
		{"199608", Date{}, true},
	}
	for _, tc := range cases {
		got, err := ParseDate([]byte(tc.in))
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDate(%q): unexpected error state %v", tc.in, err)
			continue
		}
		if err == nil && got != tc.want {
			t.Errorf("ParseDate(%q): expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestDateHelpers(t *testing.T) {
	t.Parallel()

	d := DateOf(time.Date(2023, time.February, 28, 13, 0, 0, 0, time.UTC))
	if d.String() != "2023/02/28" {
		t.Fatalf("String mismatch: got %q", d.String())
	}
	if !d.Valid() {
		t.Fatalf("expected valid date")
	}
	if (Date{2023, 2, 29}).Valid() {
		t.Fatalf("2023-02-29 should be invalid")
	}
	if _, ok := (Date{}).Time(); ok {
		t.Fatalf("zero date should not convert to time")
	}
	if got := string((Date{}).appendCCYYMMDD(nil)); got != "00000000" {
		t.Fatalf("zero date encoding mismatch: got %q", got)
	}
}
