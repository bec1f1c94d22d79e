package sauce

import (
	"errors"
	"testing"
)

func TestLocateOffsets(t *testing.T) {
	t.Parallel()

	content := []byte("hello world")
	rec := mustRecord(t, "located", "one", "two")
	buf := join(content, eof1, rec)

	loc, ok := Locate(buf)
	if !ok {
		t.Fatalf("record not located")
	}
	wantComments := len(content) + 1
	if loc.CommentStart != wantComments || loc.Start() != wantComments {
		t.Fatalf("comment start mismatch: got %d want %d", loc.CommentStart, wantComments)
	}
	if loc.HeaderStart != wantComments+CommentMarkerSize+2*CommentLineSize {
		t.Fatalf("header start mismatch: got %d", loc.HeaderStart)
	}
	if loc.End != len(buf) || loc.Len() != len(rec) || loc.CommentCount != 2 {
		t.Fatalf("location mismatch: %+v", loc)
	}
	if !HasEOFBefore(buf, loc) {
		t.Fatalf("expected EOF before record")
	}
	if HasEOFBefore(join(content, rec), mustLocate(t, join(content, rec))) {
		t.Fatalf("unexpected EOF before record")
	}
}

func mustLocate(t *testing.T, buf []byte) Location {
	t.Helper()
	loc, ok := Locate(buf)
	if !ok {
		t.Fatalf("record not located")
	}
	return loc
}

func TestLocateRejects(t *testing.T) {
	t.Parallel()

	rec := mustRecord(t, "x")
	cases := map[string][]byte{
		"empty":         nil,
		"short":         rec[:HeaderSize-1],
		"trailing byte": join(rec, []byte{'!'}),
		"trailing eof":  join(rec, eof1),
	}
	for name, buf := range cases {
		if _, ok := Locate(buf); ok {
			t.Errorf("%s: unexpected record", name)
		}
		if _, err := Read(buf); !errors.Is(err, ErrNoRecord) {
			t.Errorf("%s: expected ErrNoRecord, got %v", name, err)
		}
	}
}

func TestLocateShortCommentBlock(t *testing.T) {
	t.Parallel()

	full := mustRecord(t, "comments", "a", "b", "c")
	header := full[len(full)-HeaderSize:]

	// Only the header survives: the declared block does not fit.
	loc, ok := Locate(header)
	if !ok {
		t.Fatalf("record not located")
	}
	if loc.HasComments() || loc.Start() != 0 || loc.CommentCount != 3 {
		t.Fatalf("short buffer location mismatch: %+v", loc)
	}

	rec, err := Read(header)
	if !errors.Is(err, ErrMissingCommentBlock) || !IsPartial(err) {
		t.Fatalf("expected ErrMissingCommentBlock, got %v", err)
	}
	if rec == nil || len(rec.Comments) != 0 || TrimString(rec.Title) != "comments" {
		t.Fatalf("partial record mismatch: %+v", rec)
	}
}

func TestLocateGarbledCommentMarker(t *testing.T) {
	t.Parallel()

	full := mustRecord(t, "garbled", "line")
	buf := join([]byte("body"), eof1, full)
	garbled := append([]byte(nil), buf...)
	copy(garbled[5:], "CMNT!")

	loc, ok := Locate(garbled)
	if !ok {
		t.Fatalf("record not located")
	}
	if loc.HasComments() || loc.HeaderStart != len(garbled)-HeaderSize {
		t.Fatalf("garbled location mismatch: %+v", loc)
	}
	rec, err := Read(garbled)
	if !errors.Is(err, ErrMissingCommentBlock) || rec == nil {
		t.Fatalf("expected partial record, got %v, %v", rec, err)
	}

	// Input is never modified.
	if string(buf[5:10]) != "COMNT" {
		t.Fatalf("input modified")
	}
}

func TestDecodeComments(t *testing.T) {
	t.Parallel()

	full := mustRecord(t, "x", "alpha", "beta")
	block := full[:len(full)-HeaderSize]

	lines, err := DecodeComments(block, 2)
	if err != nil {
		t.Fatalf("decode comments: %v", err)
	}
	if TrimString(lines[0]) != "alpha" || TrimString(lines[1]) != "beta" {
		t.Fatalf("comment mismatch: %q", lines)
	}
	if _, err := DecodeComments(block, 3); !errors.Is(err, ErrMissingCommentBlock) {
		t.Fatalf("expected size mismatch error, got %v", err)
	}
	if _, err := DecodeComments(block[1:], 2); !errors.Is(err, ErrMissingCommentBlock) {
		t.Fatalf("expected marker error, got %v", err)
	}
}
