package logger

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/depfix/internal/ui/output"
	"go.trai.ch/depfix/internal/ui/style"
)

// PrettyHandler writes one colored line per record: a level glyph, the
// message, then key=value attributes.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Level
	// prefix qualifies attribute keys added after WithGroup.
	prefix string
	// attrs holds attributes from WithAttrs, already rendered.
	attrs string
}

type levelStyle struct {
	glyph string
	color lipgloss.Color
}

func styleFor(level slog.Level) levelStyle {
	switch {
	case level >= slog.LevelError:
		return levelStyle{glyph: style.Cross + " ", color: style.Red}
	case level >= slog.LevelWarn:
		return levelStyle{glyph: style.Warning + " ", color: style.Yellow}
	case level >= LevelSuccess:
		return levelStyle{glyph: style.Check + " ", color: style.Green}
	default:
		return levelStyle{color: style.Slate}
	}
}

// NewPrettyHandler returns a handler writing to w at opts.Level or above.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	h := &PrettyHandler{out: output.New(w), level: slog.LevelInfo}
	if opts != nil && opts.Level != nil {
		h.level = opts.Level.Level()
	}
	return h
}

func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	s := styleFor(r.Level)

	var b strings.Builder
	b.WriteString(s.glyph)
	b.WriteString(r.Message)
	b.WriteString(h.attrs)
	r.Attrs(func(a slog.Attr) bool {
		b.WriteString(h.render(a))
		return true
	})

	line := h.out.String(b.String()).Foreground(h.out.Color(string(s.color)))
	_, err := h.out.WriteString(line.String() + "\n")
	return err
}

func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	c := *h
	for _, a := range attrs {
		c.attrs += h.render(a)
	}
	return &c
}

func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := *h
	c.prefix += name + "."
	return &c
}

func (h *PrettyHandler) render(a slog.Attr) string {
	return " " + h.prefix + a.Key + "=" + a.Value.String()
}
