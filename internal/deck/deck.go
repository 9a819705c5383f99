// Package deck holds the slide collection and the cursor that walks it.
package deck

import (
	"errors"
	"fmt"
)

// Stat is a numeric statistic shown on a slide. Value is the literal
// display text ("1500000", "85%", "2.5M") handed to the easing animator.
type Stat struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Slide is a single content panel.
type Slide struct {
	Title    string   `yaml:"title"`
	Subtitle string   `yaml:"subtitle,omitempty"`
	Body     []string `yaml:"body,omitempty"`
	Stats    []Stat   `yaml:"stats,omitempty"`
	Notes    string   `yaml:"notes,omitempty"`
}

// Deck is the fixed ordered collection of slides. Immutable after construction.
type Deck struct {
	title  string
	slides []Slide
}

// ConfigurationError reports a deck that cannot be presented.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return "deck: " + e.Reason
	}
	return fmt.Sprintf("deck: %s: %s", e.Field, e.Reason)
}

// IsConfigurationError reports whether err wraps a *ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}

// NewDeck creates a deck from slides. At least one slide is required.
func NewDeck(title string, slides []Slide) (*Deck, error) {
	if len(slides) < 1 {
		return nil, &ConfigurationError{Field: "slides", Reason: "slide count must be at least 1"}
	}
	for i, s := range slides {
		if s.Title == "" {
			return nil, &ConfigurationError{
				Field:  fmt.Sprintf("slides[%d].title", i),
				Reason: "title is required",
			}
		}
	}
	cp := make([]Slide, len(slides))
	copy(cp, slides)
	return &Deck{title: title, slides: cp}, nil
}

// NewCountDeck creates a deck of n placeholder slides.
func NewCountDeck(n int) (*Deck, error) {
	if n < 1 {
		return nil, &ConfigurationError{Field: "slides", Reason: fmt.Sprintf("slide count must be at least 1, got %d", n)}
	}
	slides := make([]Slide, n)
	for i := range slides {
		slides[i] = Slide{Title: fmt.Sprintf("Slide %d", i+1)}
	}
	return &Deck{slides: slides}, nil
}

// Title returns the deck title (may be empty).
func (d *Deck) Title() string { return d.title }

// SlideCount returns the number of slides (always >= 1).
func (d *Deck) SlideCount() int { return len(d.slides) }

// Slide returns the slide at index i. Out-of-range indexes yield the zero Slide.
func (d *Deck) Slide(i int) Slide {
	if i < 0 || i >= len(d.slides) {
		return Slide{}
	}
	return d.slides[i]
}

// Progress returns the fraction of the deck shown once slide index is visible.
func Progress(index, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(index+1) / float64(total)
}
