package input

import "log"

// Navigator is the slide cursor the router drives. *deck.Cursor satisfies it.
type Navigator interface {
	Next() int
	Previous() int
	JumpTo(target int) int
	Index() int
	IsLast() bool
}

// Action names what the router did with an event.
type Action string

const (
	ActionNone          Action = "none"
	ActionNext          Action = "next"
	ActionPrevious      Action = "previous"
	ActionJump          Action = "jump"
	ActionAutoplayStart Action = "autoplay-start"
	ActionAutoplayStop  Action = "autoplay-stop"
)

// Result reports the outcome of one Dispatch.
type Result struct {
	Action  Action
	Index   int  // cursor index after the event
	Changed bool // cursor index moved
}

// Router maps each input channel onto exactly one navigation call.
type Router struct {
	nav      Navigator
	autoplay *Autoplay
	minSwipe float64
}

// NewRouter creates a router. autoplay may be nil, in which case timer and
// autoplay events are ignored.
func NewRouter(nav Navigator, autoplay *Autoplay) *Router {
	return &Router{nav: nav, autoplay: autoplay, minSwipe: MinSwipeDistance}
}

// Autoplay returns the router's autoplay state machine (may be nil).
func (r *Router) Autoplay() *Autoplay { return r.autoplay }

// Dispatch handles one event. It never panics: a failure inside a
// collaborator is logged and reported as ActionNone so the session stays
// interactive.
func (r *Router) Dispatch(ev Event) (res Result) {
	defer func() {
		if p := recover(); p != nil {
			log.Printf("input.Router.Dispatch: recovered from panic handling %s: %v", ev, p)
			res = Result{Action: ActionNone, Index: r.safeIndex()}
		}
	}()

	before := r.nav.Index()
	action := r.route(ev)
	after := r.nav.Index()
	return Result{Action: action, Index: after, Changed: after != before}
}

func (r *Router) route(ev Event) Action {
	switch ev.Kind {
	case KindKeyLeft:
		r.nav.Previous()
		return ActionPrevious
	case KindKeyRight:
		r.nav.Next()
		return ActionNext
	case KindDotSelect:
		r.nav.JumpTo(ev.Dot)
		return ActionJump
	case KindSwipe:
		switch ev.Gesture.Classify(r.minSwipe) {
		case DirPrevious:
			r.nav.Previous()
			return ActionPrevious
		case DirNext:
			r.nav.Next()
			return ActionNext
		}
		return ActionNone
	case KindTick:
		return r.tick(ev.Generation)
	case KindToggleAutoplay:
		if r.autoplay == nil {
			return ActionNone
		}
		if r.autoplay.Toggle() {
			return ActionAutoplayStart
		}
		return ActionAutoplayStop
	case KindStopAutoplay, KindPointerOutside:
		if r.autoplay != nil && r.autoplay.Stop() {
			return ActionAutoplayStop
		}
		return ActionNone
	}
	return ActionNone
}

func (r *Router) tick(gen uint64) Action {
	if r.autoplay == nil || !r.autoplay.accept(gen) {
		return ActionNone
	}
	if r.nav.IsLast() {
		r.autoplay.Stop()
		return ActionAutoplayStop
	}
	r.nav.Next()
	r.autoplay.arm()
	return ActionNext
}

func (r *Router) safeIndex() (i int) {
	defer func() {
		if recover() != nil {
			i = 0
		}
	}()
	return r.nav.Index()
}
