package sauce

import (
	"errors"
	"strings"
	"testing"
)

func TestBuilderFieldLimits(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		b    *Builder
		want error
	}{
		{"title", NewBuilder().Title(strings.Repeat("t", 36)), ErrTitleTooLong},
		{"author", NewBuilder().Author(strings.Repeat("a", 21)), ErrAuthorTooLong},
		{"group", NewBuilder().Group(strings.Repeat("g", 21)), ErrGroupTooLong},
		{"comment", NewBuilder().Comment(strings.Repeat("c", 65)), ErrCommentTooLong},
		{"capabilities", NewBuilder().Capabilities(Binary{Format: BinaryText, Columns: 81}), ErrInvalidDimensions},
		{"date", NewBuilder().Date(Date{Year: 12345, Month: 1, Day: 1}), ErrInvalidDate},
	}
	for _, tc := range cases {
		rec, err := tc.b.Build()
		if !errors.Is(err, tc.want) || rec != nil {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}

	var fe *FieldError
	_, err := NewBuilder().Title(strings.Repeat("t", 40)).Build()
	if !errors.As(err, &fe) || fe.Field != "title" || fe.Len != 40 || fe.Max != MaxTitleLen {
		t.Fatalf("expected title FieldError, got %v", err)
	}
}

func TestBuilderFirstErrorSticks(t *testing.T) {
	t.Parallel()

	_, err := NewBuilder().
		Author(strings.Repeat("a", 21)).
		Title(strings.Repeat("t", 36)).
		Build()
	if !errors.Is(err, ErrAuthorTooLong) {
		t.Fatalf("expected first error to win, got %v", err)
	}
}

func TestFromRecordCopies(t *testing.T) {
	t.Parallel()

	orig, err := NewBuilder().Title("orig").Comment("c1").Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	next, err := FromRecord(orig).Title("changed").Comment("c2").Build()
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if string(orig.Title) != "orig" || len(orig.Comments) != 1 {
		t.Fatalf("source record modified: %+v", orig)
	}
	if string(next.Title) != "changed" || len(next.Comments) != 2 || next.CommentCount != 2 {
		t.Fatalf("rebuilt record mismatch: %+v", next)
	}
	if next.Date != orig.Date {
		t.Fatalf("date not carried over")
	}
}
