package ui

import "slidedeck/internal/input"

// Default terminal size used before the first WindowSizeMsg (and in tests).
const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Footer rows counted from the bottom of the screen.
const (
	footerDotsFromBottom     = 3
	footerProgressFromBottom = 2
	footerHelpFromBottom     = 1
	footerHeight             = 3
	headerHeight             = 2
)

// navLayout describes where the navigation controls sit on screen so mouse
// presses can be mapped back to them.
type navLayout struct {
	row   int // screen row of the dots line
	left  int // column of the ‹ control
	total int
}

// newNavLayout centres the dots row for a screen of the given size.
// The row is "‹  ● ○ ○  ›": one column per control, two spaces of gutter,
// and one column per dot with single spaces between.
func newNavLayout(width, height, total int) navLayout {
	rowWidth := navRowWidth(total)
	left := (width - rowWidth) / 2
	if left < 0 {
		left = 0
	}
	return navLayout{row: height - footerDotsFromBottom, left: left, total: total}
}

func navRowWidth(total int) int {
	return 1 + 2 + (2*total - 1) + 2 + 1
}

func (l navLayout) prevCol() int     { return l.left }
func (l navLayout) dotCol(i int) int { return l.left + 3 + 2*i }
func (l navLayout) nextCol() int     { return l.left + navRowWidth(l.total) - 1 }

// hit maps a press at (x, y) onto a navigation control.
func (l navLayout) hit(x, y int) (input.Event, bool) {
	if y != l.row || l.total == 0 {
		return input.Event{}, false
	}
	switch {
	case x == l.prevCol():
		return input.KeyLeft(), true
	case x == l.nextCol():
		return input.KeyRight(), true
	}
	first, last := l.dotCol(0), l.dotCol(l.total-1)
	if x < first || x > last {
		return input.Event{}, false
	}
	// A press on the gap right of a dot still selects it.
	return input.Dot((x - first) / 2), true
}
