// Package easing animates numeric statistics from zero up to their target
// value with a quartic ease-out curve.
//
// Time and frame scheduling are injected so the animation can be driven by a
// real render loop or by simulated time in tests.
package easing

import (
	"math"
	"time"
)

// DefaultDuration is how long one statistic takes to count up.
const DefaultDuration = 2 * time.Second

// Clock reports the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock is the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// Scheduler runs fn on the next display frame, passing the frame time.
type Scheduler interface {
	ScheduleFrame(fn func(now time.Time))
}

// Sink receives display updates for an animated element.
type Sink interface {
	OnEasingFrame(key, text string)
	OnEasingComplete(key, original string)
}

// Ease is the quartic ease-out curve. progress is clamped to [0, 1].
func Ease(progress float64) float64 {
	if progress <= 0 {
		return 0
	}
	if progress >= 1 {
		return 1
	}
	return 1 - math.Pow(1-progress, 4)
}

// Task is one in-flight count-up animation.
type Task struct {
	Key       string
	Original  string
	Start     float64
	End       float64
	StartTime time.Time
	Duration  time.Duration
	Format    Format
}

// Progress returns the linear progress at now, clamped to [0, 1].
func (t *Task) Progress(now time.Time) float64 {
	if t.Duration <= 0 {
		return 1
	}
	p := float64(now.Sub(t.StartTime)) / float64(t.Duration)
	return math.Max(0, math.Min(p, 1))
}

// ValueAt returns the eased, floored value at now.
func (t *Task) ValueAt(now time.Time) int64 {
	return int64(math.Floor(t.Start + (t.End-t.Start)*Ease(t.Progress(now))))
}

// TextAt returns the formatted display text at now.
func (t *Task) TextAt(now time.Time) string {
	return FormatValue(t.ValueAt(now), t.Format)
}

// Animator starts at most one animation per element key.
// It is not safe for concurrent use; all calls and frame callbacks must be
// serialized by the host's event loop.
type Animator struct {
	clock     Clock
	scheduler Scheduler
	sink      Sink
	duration  time.Duration

	animated map[string]bool
	active   map[string]*Task
}

// Option configures an Animator.
type Option func(*Animator)

// WithDuration overrides DefaultDuration.
func WithDuration(d time.Duration) Option {
	return func(a *Animator) {
		if d > 0 {
			a.duration = d
		}
	}
}

// NewAnimator creates an animator. A nil clock uses SystemClock.
func NewAnimator(clock Clock, scheduler Scheduler, sink Sink, opts ...Option) *Animator {
	if clock == nil {
		clock = SystemClock
	}
	a := &Animator{
		clock:     clock,
		scheduler: scheduler,
		sink:      sink,
		duration:  DefaultDuration,
		animated:  make(map[string]bool),
		active:    make(map[string]*Task),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Start begins counting up the element identified by key towards the value in
// text. It returns false without doing anything when key was already
// animated or text has no positive number in it.
func (a *Animator) Start(key, text string) bool {
	if a.animated[key] {
		return false
	}
	end, ok := ParseTarget(text)
	if !ok {
		return false
	}
	a.animated[key] = true

	task := &Task{
		Key:       key,
		Original:  text,
		Start:     0,
		End:       float64(end),
		StartTime: a.clock.Now(),
		Duration:  a.duration,
		Format:    DetectFormat(text),
	}
	a.active[key] = task
	a.scheduleFrame(task)
	return true
}

// Animated reports whether key has been started (in flight or finished).
func (a *Animator) Animated(key string) bool { return a.animated[key] }

// Active returns the number of animations still in flight.
func (a *Animator) Active() int { return len(a.active) }

// Duration returns the per-animation duration.
func (a *Animator) Duration() time.Duration { return a.duration }

func (a *Animator) scheduleFrame(task *Task) {
	if a.scheduler == nil {
		a.finish(task)
		return
	}
	a.scheduler.ScheduleFrame(func(now time.Time) {
		a.frame(task, now)
	})
}

func (a *Animator) frame(task *Task, now time.Time) {
	if task.Progress(now) >= 1 {
		a.finish(task)
		return
	}
	if a.sink != nil {
		a.sink.OnEasingFrame(task.Key, task.TextAt(now))
	}
	a.scheduleFrame(task)
}

func (a *Animator) finish(task *Task) {
	delete(a.active, task.Key)
	if a.sink != nil {
		a.sink.OnEasingComplete(task.Key, task.Original)
	}
}
