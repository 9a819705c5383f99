package deck

// Cursor tracks the currently displayed slide. The index always stays in
// [0, SlideCount). Invalid or redundant requests are absorbed silently.
type Cursor struct {
	deck     *Deck
	index    int
	observer Observer
}

// NewCursor creates a cursor at slide 0. observer may be nil.
func NewCursor(d *Deck, observer Observer) *Cursor {
	return &Cursor{deck: d, observer: observer}
}

// Deck returns the deck the cursor walks.
func (c *Cursor) Deck() *Deck { return c.deck }

// Index returns the current slide index.
func (c *Cursor) Index() int { return c.index }

// Total returns the slide count.
func (c *Cursor) Total() int { return c.deck.SlideCount() }

// IsFirst reports whether the cursor is on the first slide.
func (c *Cursor) IsFirst() bool { return c.index == 0 }

// IsLast reports whether the cursor is on the last slide.
func (c *Cursor) IsLast() bool { return c.index == c.deck.SlideCount()-1 }

// Next advances one slide unless already on the last one.
func (c *Cursor) Next() int {
	if c.index < c.deck.SlideCount()-1 {
		c.set(c.index + 1)
	}
	return c.index
}

// Previous goes back one slide unless already on the first one.
func (c *Cursor) Previous() int {
	if c.index > 0 {
		c.set(c.index - 1)
	}
	return c.index
}

// JumpTo moves to target if it is in range and differs from the current index.
func (c *Cursor) JumpTo(target int) int {
	if target >= 0 && target < c.deck.SlideCount() && target != c.index {
		c.set(target)
	}
	return c.index
}

// Reset returns to the first slide.
func (c *Cursor) Reset() int {
	return c.JumpTo(0)
}

func (c *Cursor) set(index int) {
	c.index = index
	if c.observer != nil {
		c.observer.OnSlideChanged(index, c.deck.SlideCount())
	}
}
