package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"slidedeck/internal/deck"
	"slidedeck/internal/input"
	"slidedeck/internal/ui/textutil"
)

// slideItem implements list.Item for one slide.
type slideItem struct {
	index int
	slide deck.Slide
}

func (s slideItem) FilterValue() string { return s.slide.Title }
func (s slideItem) Title() string {
	line := fmt.Sprintf("%2d  %s", s.index+1, s.slide.Title)
	if n := len(s.slide.Stats); n > 0 {
		line += fmt.Sprintf("  (%d stats)", n)
	}
	return line
}
func (s slideItem) Description() string { return s.slide.Subtitle }

// OverviewView lists every slide; enter jumps to the selected one.
type OverviewView struct {
	list list.Model
}

// Ensure OverviewView implements View.
var _ View = (*OverviewView)(nil)

// NewOverviewView creates an overview of d.
func NewOverviewView(d *deck.Deck) *OverviewView {
	items := make([]list.Item, d.SlideCount())
	for i := range items {
		items[i] = slideItem{index: i, slide: d.Slide(i)}
	}
	l := list.New(items, NewCompactListDelegate(), defaultWidth, defaultHeight-headerHeight-footerHeight)
	l.Title = textutil.Truncate(overviewTitle(d), defaultWidth-4)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccent))
	return &OverviewView{list: l}
}

func overviewTitle(d *deck.Deck) string {
	if d.Title() == "" {
		return "Slides"
	}
	return d.Title()
}

// Select moves the highlight to slide i.
func (o *OverviewView) Select(i int) { o.list.Select(i) }

// Selected returns the highlighted slide index.
func (o *OverviewView) Selected() int { return o.list.Index() }

// Init implements View.
func (o *OverviewView) Init() tea.Cmd { return nil }

// Update implements View.
// Enter asks the app to jump to the highlighted slide and leave the overview.
func (o *OverviewView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		o.list.SetWidth(msg.Width)
		o.list.SetHeight(max(msg.Height-headerHeight-footerHeight, 1))
		return o, nil
	case tea.KeyMsg:
		if msg.String() == "enter" {
			sel := o.Selected()
			return o, func() tea.Msg { return jumpFromOverviewMsg{event: input.Dot(sel)} }
		}
	}
	// list.Model handles j/k/g/G navigation natively.
	var cmd tea.Cmd
	o.list, cmd = o.list.Update(msg)
	return o, cmd
}

// View implements View.
func (o *OverviewView) View() string {
	return o.list.View()
}
