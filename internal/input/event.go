// Package input routes discrete user and timer events onto slide navigation.
package input

import "fmt"

// EventKind classifies an input event.
type EventKind int

const (
	KindNone           EventKind = iota
	KindKeyLeft                  // left arrow
	KindKeyRight                 // right arrow
	KindDotSelect                // indicator dot activated
	KindSwipe                    // completed touch or drag gesture
	KindTick                     // autoplay timer fired
	KindToggleAutoplay           // space
	KindStopAutoplay             // escape
	KindPointerOutside           // click or touch that is not one of the router's controls
)

func (k EventKind) String() string {
	switch k {
	case KindKeyLeft:
		return "key-left"
	case KindKeyRight:
		return "key-right"
	case KindDotSelect:
		return "dot-select"
	case KindSwipe:
		return "swipe"
	case KindTick:
		return "tick"
	case KindToggleAutoplay:
		return "toggle-autoplay"
	case KindStopAutoplay:
		return "stop-autoplay"
	case KindPointerOutside:
		return "pointer-outside"
	default:
		return "none"
	}
}

// Event is a single input delivered to Router.Dispatch.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind       EventKind
	Dot        int          // KindDotSelect
	Gesture    SwipeGesture // KindSwipe
	Generation uint64       // KindTick
}

func (e Event) String() string {
	switch e.Kind {
	case KindDotSelect:
		return fmt.Sprintf("%s(%d)", e.Kind, e.Dot)
	case KindSwipe:
		return fmt.Sprintf("%s(dx=%.0f dy=%.0f)", e.Kind, e.Gesture.DeltaX(), e.Gesture.DeltaY())
	case KindTick:
		return fmt.Sprintf("%s(gen=%d)", e.Kind, e.Generation)
	default:
		return e.Kind.String()
	}
}

func KeyLeft() Event        { return Event{Kind: KindKeyLeft} }
func KeyRight() Event       { return Event{Kind: KindKeyRight} }
func Dot(p int) Event       { return Event{Kind: KindDotSelect, Dot: p} }
func ToggleAutoplay() Event { return Event{Kind: KindToggleAutoplay} }
func StopAutoplay() Event   { return Event{Kind: KindStopAutoplay} }
func PointerOutside() Event { return Event{Kind: KindPointerOutside} }

// Swipe wraps a completed gesture.
func Swipe(g SwipeGesture) Event { return Event{Kind: KindSwipe, Gesture: g} }

// Tick is an autoplay timer firing for the given generation.
func Tick(gen uint64) Event { return Event{Kind: KindTick, Generation: gen} }
