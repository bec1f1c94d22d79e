package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// PrettyHandler formats records for a terminal:
//
//	15:04:05 WARN  message key=value
//
// Colours follow the capabilities of the destination writer, so output
// to a pipe or file is plain text.
type PrettyHandler struct {
	opts   slog.HandlerOptions
	w      io.Writer
	mu     *sync.Mutex
	group  string
	attrs  []slog.Attr
	styles prettyStyles
}

type prettyStyles struct {
	time  lipgloss.Style
	attrs lipgloss.Style
	level map[slog.Level]lipgloss.Style
}

func newPrettyStyles(w io.Writer) prettyStyles {
	r := lipgloss.NewRenderer(w)
	level := func(c string) lipgloss.Style { return r.NewStyle().Bold(true).Foreground(lipgloss.Color(c)) }
	return prettyStyles{
		time:  r.NewStyle().Foreground(lipgloss.Color("8")),
		attrs: r.NewStyle().Foreground(lipgloss.Color("6")),
		level: map[slog.Level]lipgloss.Style{
			slog.LevelDebug: level("8"),
			slog.LevelInfo:  level("4"),
			slog.LevelWarn:  level("3"),
			slog.LevelError: level("1"),
		},
	}
}

func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}
	return &PrettyHandler{
		opts:   *opts,
		w:      w,
		mu:     &sync.Mutex{},
		styles: newPrettyStyles(w),
	}
}

func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}
	return level >= minLevel
}

func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var sb strings.Builder
	sb.WriteString(h.styles.time.Render(r.Time.Format(time.TimeOnly)))
	sb.WriteByte(' ')
	sb.WriteString(h.levelStyle(r.Level).Render(fmt.Sprintf("%-5s", r.Level.String())))
	sb.WriteByte(' ')
	sb.WriteString(r.Message)

	// Handler attrs already carry the group they were added under.
	parts := make([]string, 0, len(h.attrs)+r.NumAttrs())
	for _, a := range h.attrs {
		parts = append(parts, formatAttr(a, ""))
	}
	r.Attrs(func(a slog.Attr) bool {
		parts = append(parts, formatAttr(a, h.group))
		return true
	})
	if len(parts) > 0 {
		sb.WriteByte(' ')
		sb.WriteString(h.styles.attrs.Render(strings.Join(parts, " ")))
	}
	sb.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, sb.String())
	return err
}

func (h *PrettyHandler) levelStyle(l slog.Level) lipgloss.Style {
	switch {
	case l >= slog.LevelError:
		return h.styles.level[slog.LevelError]
	case l >= slog.LevelWarn:
		return h.styles.level[slog.LevelWarn]
	case l >= slog.LevelInfo:
		return h.styles.level[slog.LevelInfo]
	}
	return h.styles.level[slog.LevelDebug]
}

func (h *PrettyHandler) clone() *PrettyHandler {
	c := *h
	c.attrs = append([]slog.Attr(nil), h.attrs...)
	return &c
}

func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := h.clone()
	for _, a := range attrs {
		if h.group != "" {
			a.Key = h.group + "." + a.Key
		}
		c.attrs = append(c.attrs, a)
	}
	return c
}

func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := h.clone()
	if c.group != "" {
		c.group += "." + name
	} else {
		c.group = name
	}
	return c
}

func formatAttr(a slog.Attr, group string) string {
	key := a.Key
	if group != "" {
		key = group + "." + key
	}
	v := a.Value.Resolve()
	switch v.Kind() {
	case slog.KindString:
		return key + "=" + quoteIfNeeded(v.String())
	case slog.KindTime:
		return key + "=" + v.Time().Format(time.RFC3339)
	case slog.KindGroup:
		parts := make([]string, 0, len(v.Group()))
		for _, g := range v.Group() {
			parts = append(parts, formatAttr(g, ""))
		}
		return key + "={" + strings.Join(parts, " ") + "}"
	}
	return key + "=" + quoteIfNeeded(fmt.Sprint(v.Any()))
}

func quoteIfNeeded(s string) string {
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return fmt.Sprintf("%q", s)
	}
	return s
}
