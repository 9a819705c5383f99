package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"slidedeck/internal/input"
)

// Approximate terminal cell size in pixels, used to express drags in the
// same units as touch swipes.
const (
	CellWidthPx  = 8
	CellHeightPx = 16
)

// pointerTracker turns mouse presses and releases into router events.
type pointerTracker struct {
	pressed   bool
	onControl bool
	startX    int
	startY    int
}

// handle returns the events produced by one mouse message.
// A press on a navigation control activates it. Any other press is a user
// interaction outside the controls. A release after a drag is a swipe.
func (p *pointerTracker) handle(msg tea.MouseMsg, nav navLayout) []input.Event {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		p.pressed = true
		p.startX, p.startY = msg.X, msg.Y
		if ev, ok := nav.hit(msg.X, msg.Y); ok {
			p.onControl = true
			return []input.Event{ev}
		}
		p.onControl = false
		return []input.Event{input.PointerOutside()}
	case tea.MouseActionRelease:
		if !p.pressed {
			return nil
		}
		p.pressed = false
		if p.onControl {
			return nil
		}
		return []input.Event{input.Swipe(input.SwipeGesture{
			StartX: float64(p.startX * CellWidthPx),
			StartY: float64(p.startY * CellHeightPx),
			EndX:   float64(msg.X * CellWidthPx),
			EndY:   float64(msg.Y * CellHeightPx),
		})}
	}
	return nil
}
