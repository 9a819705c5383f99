package ui

// Mode is the top-level presenter mode.
type Mode int

const (
	ModeSlides   Mode = iota // one slide full screen
	ModeOverview             // list of every slide title
)

func (m Mode) String() string {
	switch m {
	case ModeSlides:
		return "Slides"
	case ModeOverview:
		return "Overview"
	default:
		return "Unknown"
	}
}
