// Package session wires one deck, its cursor, the autoplay timer, the
// statistics animator and the input router into a single application
// context. There is exactly one Session per presentation; it is passed by
// reference to whatever hosts it and holds no global state.
package session

import (
	"fmt"
	"log"
	"time"

	"slidedeck/internal/deck"
	"slidedeck/internal/easing"
	"slidedeck/internal/input"
)

// Options configures a Session. Zero values are valid.
type Options struct {
	Clock     easing.Clock
	Scheduler easing.Scheduler
	Sink      easing.Sink
	Timer     input.Timer
	Observers []deck.Observer

	AutoplayInterval time.Duration
	EasingDuration   time.Duration
}

// Session is the application context for one presentation.
type Session struct {
	deck      *deck.Deck
	cursor    *deck.Cursor
	observers *deck.MultiObserver
	autoplay  *input.Autoplay
	animator  *easing.Animator
	router    *input.Router
}

// New creates a session on d, positioned at the first slide.
func New(d *deck.Deck, opts Options) (*Session, error) {
	if d == nil {
		return nil, &deck.ConfigurationError{Field: "deck", Reason: "deck is required"}
	}
	s := &Session{deck: d}
	s.observers = deck.NewMultiObserver(opts.Observers...)
	s.cursor = deck.NewCursor(d, s.observers)
	s.autoplay = input.NewAutoplay(opts.Timer, opts.AutoplayInterval)
	s.router = input.NewRouter(s.cursor, s.autoplay)

	var easingOpts []easing.Option
	if opts.EasingDuration > 0 {
		easingOpts = append(easingOpts, easing.WithDuration(opts.EasingDuration))
	}
	s.animator = easing.NewAnimator(opts.Clock, opts.Scheduler, opts.Sink, easingOpts...)
	return s, nil
}

// Deck returns the session's deck.
func (s *Session) Deck() *deck.Deck { return s.deck }

// Cursor returns the slide cursor.
func (s *Session) Cursor() *deck.Cursor { return s.cursor }

// Autoplay returns the autoplay state machine.
func (s *Session) Autoplay() *input.Autoplay { return s.autoplay }

// Animator returns the statistics animator.
func (s *Session) Animator() *easing.Animator { return s.animator }

// Observe registers another slide change observer.
func (s *Session) Observe(obs deck.Observer) { s.observers.Add(obs) }

// Dispatch routes one input event.
func (s *Session) Dispatch(ev input.Event) input.Result {
	res := s.router.Dispatch(ev)
	if res.Action == input.ActionAutoplayStart {
		log.Printf("session.Dispatch: autoplay generation %d, every %s", s.autoplay.Generation(), s.autoplay.Interval())
	}
	if res.Action != input.ActionNone {
		log.Printf("session.Dispatch: %s -> %s (slide %d/%d)", ev, res.Action, res.Index+1, s.deck.SlideCount())
	}
	return res
}

// CurrentSlide returns the slide under the cursor.
func (s *Session) CurrentSlide() deck.Slide {
	return s.deck.Slide(s.cursor.Index())
}

// Progress returns the fraction of the deck shown so far.
func (s *Session) Progress() float64 {
	return deck.Progress(s.cursor.Index(), s.deck.SlideCount())
}

// StatKey identifies one statistic element for the animator and display sink.
func StatKey(slide, stat int) string {
	return fmt.Sprintf("%d/%d", slide, stat)
}

// RevealStats starts the count-up animation for every statistic on the
// current slide that has not been animated yet. It returns how many started.
func (s *Session) RevealStats() int {
	idx := s.cursor.Index()
	started := 0
	for i, st := range s.deck.Slide(idx).Stats {
		if s.animator.Start(StatKey(idx, i), st.Value) {
			started++
		}
	}
	return started
}

// Reset returns to the first slide and stops autoplay. Statistics that
// already counted up are not animated again.
func (s *Session) Reset() {
	s.autoplay.Stop()
	s.cursor.Reset()
}
