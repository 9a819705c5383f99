package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"slidedeck/internal/input"
)

// DispatchMsg routes an input event through the session. Key bindings
// return it so navigation and autoplay share one code path with the mouse
// and timers.
type DispatchMsg struct {
	Event input.Event
}

// ShowOverviewMsg toggles the slide overview.
type ShowOverviewMsg struct{}

// ShowNotesMsg opens the speaker notes for the current slide.
type ShowNotesMsg struct{}

// ShowHelpMsg opens the key reference.
type ShowHelpMsg struct{}

// ResetMsg returns to the first slide and stops autoplay.
type ResetMsg struct{}

// DismissOverlayMsg closes the top overlay.
type DismissOverlayMsg struct{}

// jumpFromOverviewMsg jumps to a slide picked in the overview and returns
// to the slide view.
type jumpFromOverviewMsg struct {
	event input.Event
}

// dispatch returns a command that emits DispatchMsg for ev.
func dispatch(ev input.Event) tea.Cmd {
	return func() tea.Msg { return DispatchMsg{Event: ev} }
}
