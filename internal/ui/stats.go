package ui

import "slidedeck/internal/easing"

// statDisplay implements easing.Sink. It holds the text currently shown for
// each statistic, keyed by session.StatKey.
type statDisplay struct {
	text map[string]string
}

// Ensure statDisplay implements easing.Sink.
var _ easing.Sink = (*statDisplay)(nil)

func newStatDisplay() *statDisplay {
	return &statDisplay{text: make(map[string]string)}
}

// OnEasingFrame implements easing.Sink.
func (d *statDisplay) OnEasingFrame(key, text string) { d.text[key] = text }

// OnEasingComplete implements easing.Sink.
func (d *statDisplay) OnEasingComplete(key, original string) { d.text[key] = original }

// Text returns the displayed text for key, or fallback if the statistic has
// not been animated yet.
func (d *statDisplay) Text(key, fallback string) string {
	if t, ok := d.text[key]; ok {
		return t
	}
	return fallback
}
