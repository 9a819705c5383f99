package input

import "time"

// DefaultInterval is how long autoplay shows each slide.
const DefaultInterval = 10 * time.Second

// Timer arms a one-shot timer. When it fires the host must dispatch
// Tick(gen) back into the router.
type Timer interface {
	Schedule(gen uint64, after time.Duration)
}

// TimerFunc adapts a function to Timer.
type TimerFunc func(gen uint64, after time.Duration)

// Schedule calls f.
func (f TimerFunc) Schedule(gen uint64, after time.Duration) { f(gen, after) }

// Autoplay is a repeating timer with two states, stopped and running.
//
// Every Start opens a new generation. A tick carrying an older generation
// belongs to a timer armed before the last Stop and is ignored, so the host
// never needs to cancel timers it has already armed.
type Autoplay struct {
	timer    Timer
	interval time.Duration
	running  bool
	gen      uint64
}

// NewAutoplay creates a stopped autoplay. interval <= 0 uses DefaultInterval.
func NewAutoplay(timer Timer, interval time.Duration) *Autoplay {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Autoplay{timer: timer, interval: interval}
}

// Running reports whether autoplay is running.
func (a *Autoplay) Running() bool { return a.running }

// Interval returns the time each slide is shown.
func (a *Autoplay) Interval() time.Duration { return a.interval }

// Generation returns the current timer generation.
func (a *Autoplay) Generation() uint64 { return a.gen }

// Start begins autoplay. It is a no-op while running and reports whether
// the state changed.
func (a *Autoplay) Start() bool {
	if a.running {
		return false
	}
	a.running = true
	a.gen++
	a.arm()
	return true
}

// Stop halts autoplay. It is a no-op while stopped and reports whether the
// state changed.
func (a *Autoplay) Stop() bool {
	if !a.running {
		return false
	}
	a.running = false
	return true
}

// Toggle flips between running and stopped and returns the new state.
func (a *Autoplay) Toggle() bool {
	if a.running {
		a.Stop()
	} else {
		a.Start()
	}
	return a.running
}

// accept reports whether a tick for gen should be acted on.
func (a *Autoplay) accept(gen uint64) bool {
	return a.running && gen == a.gen
}

func (a *Autoplay) arm() {
	if a.timer != nil {
		a.timer.Schedule(a.gen, a.interval)
	}
}
