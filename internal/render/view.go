// Package render turns decoded SAUCE records into console and JSON output.
package render

import (
	"encoding/hex"

	"github.com/zeebo/blake3"

	"github.com/samcharles93/sauce/pkg/sauce"
)

// View is the presentation form of a file's trailer. It is what the CLI
// prints and what the HTTP service returns.
type View struct {
	Found        bool              `json:"found"`
	Title        string            `json:"title,omitempty"`
	Author       string            `json:"author,omitempty"`
	Group        string            `json:"group,omitempty"`
	Date         string            `json:"date,omitempty"`
	FileSize     uint32            `json:"file_size"`
	DataType     string            `json:"data_type,omitempty"`
	Capabilities *CapabilitiesView `json:"capabilities,omitempty"`
	Comments     []string          `json:"comments,omitempty"`
	Raw          *RawView          `json:"raw,omitempty"`
	Record       *LocationView     `json:"record,omitempty"`
	Content      ContentView       `json:"content"`
	Warnings     []string          `json:"warnings,omitempty"`
}

// CapabilitiesView flattens every family into one shape; fields that do not
// apply are omitted.
type CapabilitiesView struct {
	Family        string  `json:"family"`
	Format        string  `json:"format,omitempty"`
	Columns       *uint16 `json:"columns,omitempty"`
	Lines         *int64  `json:"lines,omitempty"`
	LinesDerived  bool    `json:"lines_derived,omitempty"`
	Width         *uint16 `json:"width,omitempty"`
	Height        *uint16 `json:"height,omitempty"`
	Depth         *uint16 `json:"depth,omitempty"`
	SampleRate    *uint16 `json:"sample_rate,omitempty"`
	ICEColors     *bool   `json:"ice_colors,omitempty"`
	LetterSpacing string  `json:"letter_spacing,omitempty"`
	AspectRatio   string  `json:"aspect_ratio,omitempty"`
	FontName      string  `json:"font_name,omitempty"`
	Extension     string  `json:"extension,omitempty"`
	Compressed    *bool   `json:"compressed,omitempty"`
}

// RawView exposes the undecoded capability fields.
type RawView struct {
	DataType uint8     `json:"data_type"`
	FileType uint8     `json:"file_type"`
	TInfo    [4]uint16 `json:"tinfo"`
	Flags    uint8     `json:"flags"`
	TInfoS   string    `json:"tinfos_hex"`
}

type LocationView struct {
	Offset       int  `json:"offset"`
	Length       int  `json:"length"`
	CommentCount int  `json:"comment_count"`
	HasComments  bool `json:"has_comment_block"`
	EOFBefore    bool `json:"eof_before"`
}

// ContentView describes the file with every trailer removed.
type ContentView struct {
	Size           int    `json:"size"`
	BLAKE3         string `json:"blake3"`
	RecordsInChain int    `json:"records_in_chain"`
}

// Options controls what Inspect includes.
type Options struct {
	Decoder TextDecoder
	Raw     bool
}

// Warnings attached to views.
const (
	WarnMissingComments = "comment block missing or malformed"
	WarnNoEOF           = "no EOF marker before record"
)

// Inspect builds a View for buf. It only fails when the record itself
// cannot be decoded; a buffer without a record yields Found == false.
func Inspect(buf []byte, opts Options) (*View, error) {
	if opts.Decoder.Name() == "" {
		opts.Decoder, _ = DecoderFor(CP437)
	}

	stripped := sauce.StripWithStats(buf, sauce.AllStripFinalEOF)
	sum := blake3.Sum256(stripped.Data)
	v := &View{
		Content: ContentView{
			Size:           len(stripped.Data),
			BLAKE3:         hex.EncodeToString(sum[:]),
			RecordsInChain: stripped.RecordsRemoved,
		},
	}

	loc, ok := sauce.Locate(buf)
	if !ok {
		return v, nil
	}
	rec, err := sauce.Read(buf)
	switch {
	case sauce.IsPartial(err):
		v.Warnings = append(v.Warnings, WarnMissingComments)
	case err != nil:
		return nil, err
	}
	if !sauce.HasEOFBefore(buf, loc) {
		v.Warnings = append(v.Warnings, WarnNoEOF)
	}

	d := opts.Decoder
	v.Found = true
	v.Title = d.Decode(rec.Title)
	v.Author = d.Decode(rec.Author)
	v.Group = d.Decode(rec.Group)
	if !rec.Date.IsZero() {
		v.Date = rec.Date.String()
	}
	v.FileSize = rec.FileSize
	v.DataType = rec.DataType.String()
	v.Capabilities = capabilitiesView(rec.Capabilities(), contentSize(rec, loc))
	for _, c := range rec.Comments {
		v.Comments = append(v.Comments, d.Decode(c))
	}
	v.Record = &LocationView{
		Offset:       loc.Start(),
		Length:       loc.Len(),
		CommentCount: loc.CommentCount,
		HasComments:  loc.HasComments(),
		EOFBefore:    sauce.HasEOFBefore(buf, loc),
	}
	if opts.Raw {
		v.Raw = &RawView{
			DataType: uint8(rec.DataType),
			FileType: rec.FileType,
			TInfo:    rec.TInfo,
			Flags:    rec.Flags,
			TInfoS:   hex.EncodeToString(rec.TInfoS),
		}
	}
	return v, nil
}

// contentSize prefers the stored FileSize and falls back to the bytes in
// front of the record.
func contentSize(rec *sauce.Record, loc sauce.Location) int64 {
	if rec.FileSize > 0 {
		return int64(rec.FileSize)
	}
	n := int64(loc.Start())
	if n > 0 {
		n-- // EOF marker
	}
	return n
}

func ptr[T any](v T) *T { return &v }

func capabilitiesView(c sauce.Capabilities, size int64) *CapabilitiesView {
	cv := &CapabilitiesView{Family: c.DataType().String()}
	textFlags := func(f sauce.TextFlags, font string) {
		cv.ICEColors = ptr(f.ICEColors)
		cv.LetterSpacing = f.LetterSpacing.String()
		cv.AspectRatio = f.AspectRatio.String()
		cv.FontName = font
	}
	switch c := c.(type) {
	case sauce.Character:
		cv.Format = c.Format.String()
		if c.Format.HasDimensions() || c.Format == sauce.CharacterRIPScript {
			cv.Columns = ptr(c.Columns)
			cv.Lines = ptr(int64(c.Lines))
		}
		if c.Format.HasTextFlags() {
			textFlags(c.Flags, c.FontName)
		}
	case sauce.Binary:
		cv.Format = c.Format.String()
		cv.Columns = ptr(c.Columns)
		if lines, ok := c.Height(size); ok {
			cv.Lines = ptr(lines)
			cv.LinesDerived = c.Format == sauce.BinaryText
		}
		if c.Format == sauce.BinaryText {
			textFlags(c.Flags, c.FontName)
		}
	case sauce.Bitmap:
		cv.Format = c.Format.String()
		cv.Width, cv.Height, cv.Depth = ptr(c.Width), ptr(c.Height), ptr(c.Depth)
	case sauce.Vector:
		cv.Format = c.Format.String()
	case sauce.Audio:
		cv.Format = c.Format.String()
		if c.Format.HasSampleRate() {
			cv.SampleRate = ptr(c.SampleRate)
		}
	case sauce.Archive:
		cv.Format = c.Format.String()
		cv.Extension = c.Format.Extension()
		cv.Compressed = ptr(c.Format.IsCompressed())
	case sauce.Executable:
	case sauce.Unrecognized:
		cv.Family = "Unrecognized"
	}
	return cv
}
