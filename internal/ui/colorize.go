package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/muurk/zha-logfmt/internal/logfmt"
)

// ColorMode selects when records are coloured.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// ParseColorMode parses the --color flag value.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
	}
}

// String returns the flag spelling of the mode
func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// RecordRenderer colours records by kind and level. It implements
// logfmt.Renderer.
type RecordRenderer struct {
	styles  Styles
	enabled bool
}

// NewRecordRenderer returns a renderer for records written to w.
//
// ColorAuto colours only when w is a terminal; ColorAlways forces a
// true-colour profile; ColorNever returns records unchanged.
func NewRecordRenderer(w io.Writer, mode ColorMode) *RecordRenderer {
	enabled := false
	switch mode {
	case ColorAlways:
		enabled = true
	case ColorAuto:
		f, ok := w.(*os.File)
		enabled = ok && IsTerminal(f)
	}

	r := lipgloss.NewRenderer(w)
	if enabled {
		if mode == ColorAlways {
			r.SetColorProfile(termenv.TrueColor)
		}
	} else {
		r.SetColorProfile(termenv.Ascii)
	}

	return &RecordRenderer{styles: NewStyles(r), enabled: enabled}
}

// Enabled reports whether records will be coloured.
func (rr *RecordRenderer) Enabled() bool {
	return rr.enabled
}

// Render implements logfmt.Renderer.
func (rr *RecordRenderer) Render(rec logfmt.Record) string {
	if !rr.enabled {
		return rec.Text
	}

	stamp, body := splitTimestamp(rec.Text)

	var style lipgloss.Style
	switch rec.Kind {
	case logfmt.KindIncoming:
		style = rr.styles.Incoming
	case logfmt.KindOutgoing:
		style = rr.styles.Outgoing
	default:
		style = rr.levelStyle(rec.Level)
	}

	if stamp == "" {
		return style.Render(body)
	}
	return rr.styles.Timestamp.Render(stamp) + " " + style.Render(body)
}

func (rr *RecordRenderer) levelStyle(level string) lipgloss.Style {
	switch strings.ToUpper(level) {
	case "ERROR", "CRITICAL", "FATAL":
		return rr.styles.Error
	case "WARNING", "WARN":
		return rr.styles.Warning
	default:
		return rr.styles.Text
	}
}

// splitTimestamp separates the leading "[timestamp]" of a record.
func splitTimestamp(text string) (string, string) {
	if !strings.HasPrefix(text, "[") {
		return "", text
	}
	idx := strings.Index(text, "] ")
	if idx < 0 {
		return "", text
	}
	return text[:idx+1], text[idx+2:]
}
