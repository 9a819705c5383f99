package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"slidedeck/internal/easing"
	"slidedeck/internal/input"
)

// FrameInterval is the delay between animation frames (about 60 fps).
const FrameInterval = time.Second / 60

// frameMsg delivers a display frame to the scheduler.
type frameMsg time.Time

// autoplayTickMsg is an autoplay timer firing.
type autoplayTickMsg struct{ gen uint64 }

// frameScheduler implements easing.Scheduler on top of tea.Tick.
// Callbacks scheduled during one Update run together on the next frame.
// At most one frame tick is in flight.
type frameScheduler struct {
	pending  []func(time.Time)
	inFlight bool
}

// Ensure frameScheduler implements easing.Scheduler.
var _ easing.Scheduler = (*frameScheduler)(nil)

// ScheduleFrame implements easing.Scheduler.
func (s *frameScheduler) ScheduleFrame(fn func(time.Time)) {
	s.pending = append(s.pending, fn)
}

// cmd returns a tick for the next frame if callbacks are waiting and no
// tick is already in flight.
func (s *frameScheduler) cmd() tea.Cmd {
	if len(s.pending) == 0 || s.inFlight {
		return nil
	}
	s.inFlight = true
	return tea.Tick(FrameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// run invokes the callbacks queued before this frame. Callbacks may
// schedule the following frame.
func (s *frameScheduler) run(now time.Time) {
	s.inFlight = false
	batch := s.pending
	s.pending = nil
	for _, fn := range batch {
		fn(now)
	}
}

// tickTimer implements input.Timer by turning each Schedule call into a
// tea.Tick that reports back as autoplayTickMsg.
type tickTimer struct {
	armed []tea.Cmd
}

// Ensure tickTimer implements input.Timer.
var _ input.Timer = (*tickTimer)(nil)

// Schedule implements input.Timer.
func (t *tickTimer) Schedule(gen uint64, after time.Duration) {
	t.armed = append(t.armed, tea.Tick(after, func(time.Time) tea.Msg {
		return autoplayTickMsg{gen: gen}
	}))
}

// cmds drains the armed timers.
func (t *tickTimer) cmds() []tea.Cmd {
	out := t.armed
	t.armed = nil
	return out
}
