package deck

import "log"

// Observer is notified after every accepted cursor transition.
// Renderers use it to update visibility, indicator dots and the progress bar.
type Observer interface {
	OnSlideChanged(index, total int)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(index, total int)

// OnSlideChanged calls f.
func (f ObserverFunc) OnSlideChanged(index, total int) { f(index, total) }

// MultiObserver fans out slide changes to multiple observers.
// It handles nil observers gracefully by skipping them.
type MultiObserver struct {
	observers []Observer
}

// Ensure MultiObserver implements Observer.
var _ Observer = (*MultiObserver)(nil)

// NewMultiObserver creates a MultiObserver that forwards calls to all provided observers.
// Nil observers are filtered out and not included in the list.
func NewMultiObserver(observers ...Observer) *MultiObserver {
	filtered := make([]Observer, 0, len(observers))
	for _, obs := range observers {
		if obs != nil {
			filtered = append(filtered, obs)
		}
	}
	return &MultiObserver{observers: filtered}
}

// Add appends an observer. Nil is ignored.
func (m *MultiObserver) Add(obs Observer) {
	if obs != nil {
		m.observers = append(m.observers, obs)
	}
}

// Len returns the number of registered observers.
func (m *MultiObserver) Len() int { return len(m.observers) }

// OnSlideChanged forwards the call to all observers.
func (m *MultiObserver) OnSlideChanged(index, total int) {
	for _, obs := range m.observers {
		safeCall(func() { obs.OnSlideChanged(index, total) })
	}
}

// safeCall calls fn with panic recovery. One observer failing shouldn't block others.
func safeCall(fn func()) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("deck.MultiObserver: observer panicked: %v", r)
		}
	}()
	fn()
}
