package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Color palette for formatted records
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - outgoing frames
	SuccessColor = lipgloss.Color("#43BF6D") // Green - incoming frames
	ErrorColor   = lipgloss.Color("#FF5555") // Red - ERROR / CRITICAL lines
	WarningColor = lipgloss.Color("#FFA500") // Orange - WARNING lines
	MutedColor   = lipgloss.Color("#626262") // Gray - timestamps
	TextColor    = lipgloss.Color("#FFFFFF") // White - everything else
)

// Styles holds the lipgloss styles for one output stream. Styles are bound
// to a lipgloss.Renderer so that colour detection follows that stream rather
// than whatever stdout happens to be.
type Styles struct {
	Timestamp lipgloss.Style
	Incoming  lipgloss.Style
	Outgoing  lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Text      lipgloss.Style
}

// NewStyles builds the record styles on r. Tabs are left alone so that a
// coloured record has the same text as a plain one.
func NewStyles(r *lipgloss.Renderer) Styles {
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)

	return Styles{
		Timestamp: base.Foreground(MutedColor),
		Incoming:  base.Foreground(SuccessColor),
		Outgoing:  base.Foreground(PrimaryColor).Bold(true),
		Error:     base.Foreground(ErrorColor).Bold(true),
		Warning:   base.Foreground(WarningColor),
		Text:      base.Foreground(TextColor),
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}
