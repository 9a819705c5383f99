package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slidedeck/internal/deck"
	"slidedeck/internal/input"
)

type stepClock struct{ now time.Time }

func (c *stepClock) Now() time.Time { return c.now }

type frames struct{ pending []func(time.Time) }

func (f *frames) ScheduleFrame(fn func(time.Time)) { f.pending = append(f.pending, fn) }

func (f *frames) run(now time.Time) {
	batch := f.pending
	f.pending = nil
	for _, fn := range batch {
		fn(now)
	}
}

type display struct{ text map[string]string }

func (d *display) OnEasingFrame(key, text string)        { d.text[key] = text }
func (d *display) OnEasingComplete(key, original string) { d.text[key] = original }

func testDeck(t *testing.T) *deck.Deck {
	t.Helper()
	d, err := deck.NewDeck("t", []deck.Slide{
		{Title: "intro"},
		{Title: "numbers", Stats: []deck.Stat{
			{Label: "people", Value: "1500000"},
			{Label: "share", Value: "85%"},
			{Label: "unknown", Value: "n/a"},
		}},
		{Title: "end"},
	})
	require.NoError(t, err)
	return d
}

func TestNew_RequiresDeck(t *testing.T) {
	_, err := New(nil, Options{})
	assert.True(t, deck.IsConfigurationError(err))
}

func TestSession_DispatchNotifiesObservers(t *testing.T) {
	var seen []int
	s, err := New(testDeck(t), Options{
		Observers: []deck.Observer{deck.ObserverFunc(func(i, _ int) { seen = append(seen, i) })},
	})
	require.NoError(t, err)

	var late []int
	s.Observe(deck.ObserverFunc(func(i, _ int) { late = append(late, i) }))

	s.Dispatch(input.KeyRight())
	s.Dispatch(input.KeyRight())
	s.Dispatch(input.KeyRight())
	s.Dispatch(input.Dot(0))

	assert.Equal(t, []int{1, 2, 0}, seen)
	assert.Equal(t, []int{1, 2, 0}, late)
	assert.Equal(t, "intro", s.CurrentSlide().Title)
	assert.InDelta(t, 1.0/3, s.Progress(), 1e-9)
}

func TestSession_RevealStatsRunsOncePerElement(t *testing.T) {
	clock := &stepClock{now: time.Unix(0, 0)}
	fr := &frames{}
	disp := &display{text: map[string]string{}}
	s, err := New(testDeck(t), Options{Clock: clock, Scheduler: fr, Sink: disp, EasingDuration: time.Second})
	require.NoError(t, err)

	assert.Equal(t, 0, s.RevealStats(), "intro has no stats")

	s.Dispatch(input.KeyRight())
	assert.Equal(t, 2, s.RevealStats(), "non-numeric stat is skipped")
	assert.Equal(t, 0, s.RevealStats())
	assert.Equal(t, time.Second, s.Animator().Duration())

	clock.now = clock.now.Add(500 * time.Millisecond)
	fr.run(clock.now)
	assert.Equal(t, "1,406,250", disp.text[StatKey(1, 0)])
	assert.Equal(t, "79%", disp.text[StatKey(1, 1)])

	// Navigating away mid-animation leaves the cursor and the animation independent.
	s.Dispatch(input.KeyRight())
	assert.Equal(t, 2, s.Cursor().Index())

	clock.now = clock.now.Add(500 * time.Millisecond)
	fr.run(clock.now)
	assert.Equal(t, "1500000", disp.text[StatKey(1, 0)])
	assert.Equal(t, "85%", disp.text[StatKey(1, 1)])
	assert.Equal(t, 0, s.Animator().Active())

	s.Dispatch(input.KeyLeft())
	assert.Equal(t, 0, s.RevealStats())
}

func TestSession_AutoplayAndReset(t *testing.T) {
	var gens []uint64
	s, err := New(testDeck(t), Options{
		Timer:            input.TimerFunc(func(g uint64, _ time.Duration) { gens = append(gens, g) }),
		AutoplayInterval: 3 * time.Second,
	})
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, s.Autoplay().Interval())

	s.Dispatch(input.ToggleAutoplay())
	require.True(t, s.Autoplay().Running())
	s.Dispatch(input.Tick(gens[len(gens)-1]))
	assert.Equal(t, 1, s.Cursor().Index())

	s.Reset()
	assert.Equal(t, 0, s.Cursor().Index())
	assert.False(t, s.Autoplay().Running())
	assert.Equal(t, input.ActionNone, s.Dispatch(input.Tick(gens[len(gens)-1])).Action)
}

func TestStatKey(t *testing.T) {
	assert.Equal(t, "3/1", StatKey(3, 1))
}
