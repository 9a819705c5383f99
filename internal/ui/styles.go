package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the presenter
const (
	ColorAccent    = "86"  // Cyan/green - titles, active dot
	ColorHighlight = "205" // Magenta - stat values, selection
	ColorMuted     = "241" // Gray - hints, inactive dots
	ColorText      = "252" // Light gray - body text
	ColorDim       = "238" // Dark gray - disabled controls
	ColorPlaying   = "42"  // Green - autoplay indicator
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	Title    lipgloss.Style // Slide title
	Subtitle lipgloss.Style // Slide subtitle
	Body     lipgloss.Style // Bullet text
	Bullet   lipgloss.Style // Bullet glyph

	StatCard  lipgloss.Style // Box around one statistic
	StatValue lipgloss.Style // Animated number
	StatLabel lipgloss.Style // Caption under the number

	DotActive   lipgloss.Style
	DotInactive lipgloss.Style
	Control     lipgloss.Style // ‹ › when usable
	Disabled    lipgloss.Style // ‹ › at the deck bounds

	Counter lipgloss.Style // "3 / 14"
	Playing lipgloss.Style // autoplay indicator
	Hint    lipgloss.Style
	Box     lipgloss.Style // overlays
	Notes   lipgloss.Style
	Empty   lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Subtitle: lipgloss.NewStyle().
		Italic(true).
		Foreground(lipgloss.Color(ColorMuted)),
	Body: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Bullet: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)),
	StatCard: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorMuted)).
		Padding(0, 2).
		Margin(0, 1).
		Align(lipgloss.Center),
	StatValue: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	StatLabel: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	DotActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	DotInactive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Control: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Disabled: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	Counter: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Playing: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPlaying)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
	Notes: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
}

// NewCompactListDelegate returns a delegate with zero spacing and shared styles.
func NewCompactListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = false
	d.Styles.SelectedTitle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true).
		PaddingLeft(2)
	d.Styles.NormalTitle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		PaddingLeft(2)
	d.Styles.SelectedDesc = d.Styles.SelectedTitle
	d.Styles.NormalDesc = d.Styles.NormalTitle
	return d
}
