package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Overlay is a popup view drawn over the slide with its own dismiss keys.
type Overlay struct {
	View    View
	Dismiss []string
}

// IsDismissKey returns true if the given key string should dismiss this overlay.
func (o *Overlay) IsDismissKey(k string) bool {
	for _, d := range o.Dismiss {
		if d == k {
			return true
		}
	}
	return false
}

// OverlayStack manages a stack of overlays (topmost receives input first).
type OverlayStack struct {
	Stack []Overlay
}

// Push adds an overlay to the top of the stack.
func (s *OverlayStack) Push(o Overlay) { s.Stack = append(s.Stack, o) }

// Pop removes and returns the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	top, ok := s.Peek()
	if ok {
		s.Stack = s.Stack[:len(s.Stack)-1]
	}
	return top, ok
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of overlays in the stack.
func (s *OverlayStack) Len() int { return len(s.Stack) }

// textOverlay is a static boxed text popup (speaker notes, help).
type textOverlay struct {
	title string
	body  string
}

// Ensure textOverlay implements View.
var _ View = (*textOverlay)(nil)

func (t *textOverlay) Init() tea.Cmd                  { return nil }
func (t *textOverlay) Update(tea.Msg) (View, tea.Cmd) { return t, nil }
func (t *textOverlay) View() string {
	content := Styles.Title.Render(t.title) + "\n\n" + t.body + "\n\n" + Styles.Hint.Render("esc to close")
	return Styles.Box.Render(content)
}

// newNotesOverlay shows the speaker notes for a slide.
func newNotesOverlay(slideNum int, notes string, width int) Overlay {
	body := Styles.Empty.Render("No notes for this slide.")
	if strings.TrimSpace(notes) != "" {
		body = Styles.Notes.Width(max(min(width-10, 70), 20)).Render(notes)
	}
	return Overlay{
		View:    &textOverlay{title: "Notes · slide " + strconv.Itoa(slideNum), body: body},
		Dismiss: []string{"esc", "n"},
	}
}

// newHelpOverlay shows every binding for mode in columns.
func newHelpOverlay(reg *KeybindRegistry, mode Mode) Overlay {
	h := help.New()
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHighlight)).Bold(true)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted))
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted))
	return Overlay{
		View:    &textOverlay{title: "Keys", body: h.FullHelpView(NewKeyMap(reg, mode).FullHelp())},
		Dismiss: []string{"esc", "?"},
	}
}
