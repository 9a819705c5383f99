package input

import "math"

// MinSwipeDistance is the horizontal travel, in pixels, a gesture must exceed
// to count as navigation.
const MinSwipeDistance = 50

// Direction is the navigation a gesture asks for.
type Direction int

const (
	DirNone Direction = iota
	DirPrevious
	DirNext
)

func (d Direction) String() string {
	switch d {
	case DirPrevious:
		return "previous"
	case DirNext:
		return "next"
	default:
		return "none"
	}
}

// SwipeGesture is a single touch sequence, start to end, in pixels.
type SwipeGesture struct {
	StartX, StartY float64
	EndX, EndY     float64
}

// DeltaX is the horizontal travel; positive means rightwards.
func (g SwipeGesture) DeltaX() float64 { return g.EndX - g.StartX }

// DeltaY is the vertical travel; positive means downwards.
func (g SwipeGesture) DeltaY() float64 { return g.EndY - g.StartY }

// Classify turns the gesture into a direction. Vertical-dominant gestures and
// horizontal travel of at most minDistance are scrolls or accidental touches.
// Swiping right goes back, swiping left goes forward.
func (g SwipeGesture) Classify(minDistance float64) Direction {
	dx, dy := g.DeltaX(), g.DeltaY()
	if math.Abs(dx) <= math.Abs(dy) || math.Abs(dx) <= minDistance {
		return DirNone
	}
	if dx > 0 {
		return DirPrevious
	}
	return DirNext
}
