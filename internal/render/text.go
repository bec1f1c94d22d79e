package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	json "github.com/goccy/go-json"
)

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v *View) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// TextOptions selects the optional console sections.
type TextOptions struct {
	Comments bool
	Raw      bool
}

type textStyles struct {
	heading lipgloss.Style
	label   lipgloss.Style
	warn    lipgloss.Style
	rule    lipgloss.Style
}

func newTextStyles(w io.Writer) textStyles {
	r := lipgloss.NewRenderer(w)
	return textStyles{
		heading: r.NewStyle().Bold(true),
		label:   r.NewStyle().Foreground(lipgloss.Color("6")),
		warn:    r.NewStyle().Foreground(lipgloss.Color("3")),
		rule:    r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// WriteText prints a human readable report of v for name.
func WriteText(w io.Writer, name string, v *View, opts TextOptions) error {
	st := newTextStyles(w)
	var b strings.Builder
	field := func(indent int, label string, format string, args ...any) {
		b.WriteString(strings.Repeat(" ", indent))
		b.WriteString(st.label.Render(fmt.Sprintf("%-14s", label+":")))
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}

	if !v.Found {
		fmt.Fprintf(&b, "No SAUCE record found in %q\n", name)
		_, err := io.WriteString(w, b.String())
		return err
	}

	b.WriteString(st.heading.Render(fmt.Sprintf("SAUCE information for %q", name)))
	b.WriteByte('\n')
	b.WriteString(st.rule.Render(strings.Repeat("=", 60)))
	b.WriteByte('\n')
	if v.Title != "" {
		field(0, "Title", "%s", v.Title)
	}
	if v.Author != "" {
		field(0, "Author", "%s", v.Author)
	}
	if v.Group != "" {
		field(0, "Group", "%s", v.Group)
	}
	if v.Date != "" {
		field(0, "Date", "%s", v.Date)
	}
	field(0, "Type", "%s", v.DataType)
	if v.FileSize > 0 {
		field(0, "File size", "%d bytes", v.FileSize)
	}

	if c := v.Capabilities; c != nil && c.Family != "None" {
		b.WriteByte('\n')
		b.WriteString(st.heading.Render(c.Family + " information"))
		b.WriteByte('\n')
		if c.Format != "" {
			field(2, "Format", "%s", c.Format)
		}
		if c.Columns != nil {
			field(2, "Columns", "%d", *c.Columns)
		}
		if c.Lines != nil {
			suffix := ""
			if c.LinesDerived {
				suffix = " (calculated)"
			}
			field(2, "Lines", "%d%s", *c.Lines, suffix)
		}
		if c.Width != nil && c.Height != nil {
			field(2, "Dimensions", "%dx%d pixels", *c.Width, *c.Height)
		}
		if c.Depth != nil {
			field(2, "Depth", "%d bits", *c.Depth)
		}
		if c.SampleRate != nil {
			field(2, "Sample rate", "%d Hz", *c.SampleRate)
		}
		if c.ICEColors != nil && *c.ICEColors {
			field(2, "iCE colors", "yes")
		}
		if c.LetterSpacing != "" {
			field(2, "Spacing", "%s", c.LetterSpacing)
		}
		if c.AspectRatio != "" {
			field(2, "Aspect", "%s", c.AspectRatio)
		}
		if c.FontName != "" {
			field(2, "Font", "%s", c.FontName)
		}
		if c.Extension != "" {
			field(2, "Extension", ".%s", c.Extension)
		}
		if c.Compressed != nil {
			field(2, "Compressed", "%t", *c.Compressed)
		}
	}

	if opts.Comments && len(v.Comments) > 0 {
		b.WriteByte('\n')
		b.WriteString(st.heading.Render(fmt.Sprintf("Comments (%d)", len(v.Comments))))
		b.WriteByte('\n')
		b.WriteString(st.rule.Render(strings.Repeat("-", 40)))
		b.WriteByte('\n')
		for i, c := range v.Comments {
			fmt.Fprintf(&b, "%3d: %s\n", i+1, c)
		}
	}

	if opts.Raw && v.Raw != nil {
		b.WriteByte('\n')
		b.WriteString(st.heading.Render("Raw SAUCE data"))
		b.WriteByte('\n')
		b.WriteString(st.rule.Render(strings.Repeat("-", 40)))
		b.WriteByte('\n')
		field(0, "DataType", "%d", v.Raw.DataType)
		field(0, "FileType", "%d", v.Raw.FileType)
		for i, t := range v.Raw.TInfo {
			field(0, fmt.Sprintf("TInfo%d", i+1), "%d", t)
		}
		field(0, "TFlags", "%#02x", v.Raw.Flags)
		field(0, "TInfoS", "%s", v.Raw.TInfoS)
		if v.Record != nil {
			field(0, "Record size", "%d bytes at offset %d", v.Record.Length, v.Record.Offset)
		}
	}

	for _, warn := range v.Warnings {
		b.WriteString(st.warn.Render("warning: " + warn))
		b.WriteByte('\n')
	}

	_, err := io.WriteString(w, b.String())
	return err
}
