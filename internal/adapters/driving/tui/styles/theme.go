// Package styles provides colour themes and styling for the picker TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for the picker.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Foreground is the default text colour.
	Foreground lipgloss.Color

	// Muted is for less important text (URLs, footer help).
	Muted lipgloss.Color

	// Selected is the highlight colour for the cursor row.
	Selected lipgloss.Color

	// Warning marks speculative entries.
	Warning lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#7C3AED"), // Purple
		Foreground: lipgloss.Color("252"),
		Muted:      lipgloss.Color("241"),
		Selected:   lipgloss.Color("86"),
		Warning:    lipgloss.Color("#F9E2AF"), // Yellow
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	// Title style for the header.
	Title lipgloss.Style

	// Normal style for unselected rows.
	Normal lipgloss.Style

	// Selected style for the cursor row.
	Selected lipgloss.Style

	// URL style for the dimmed URL column.
	URL lipgloss.Style

	// Warning style for speculative entries.
	Warning lipgloss.Style

	// Help style for the footer.
	Help lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		Title:    lipgloss.NewStyle().Foreground(theme.Primary).Bold(true),
		Normal:   lipgloss.NewStyle().Foreground(theme.Foreground),
		Selected: lipgloss.NewStyle().Foreground(theme.Selected).Bold(true),
		URL:      lipgloss.NewStyle().Foreground(theme.Muted),
		Warning:  lipgloss.NewStyle().Foreground(theme.Warning),
		Help:     lipgloss.NewStyle().Foreground(theme.Muted),
	}
}

// DefaultStyles creates styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Hyperlink wraps text in an OSC 8 escape sequence so terminals that
// support it make the text clickable. Terminals without support render
// the plain text.
func Hyperlink(url, text string) string {
	return "\x1b]8;;" + url + "\x1b\\" + text + "\x1b]8;;\x1b\\"
}
