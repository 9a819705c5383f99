package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"slidedeck/internal/deck"
	"slidedeck/internal/input"
)

func TestNavLayout_MatchesRenderedRow(t *testing.T) {
	for _, total := range []int{1, 5, 14} {
		d, err := deck.NewCountDeck(total)
		if err != nil {
			t.Fatal(err)
		}
		c := deck.NewCursor(d, nil)
		c.JumpTo(2 % total)
		row := renderNavRow(c)
		if w := lipgloss.Width(row); w != navRowWidth(total) {
			t.Errorf("total=%d: rendered width %d, layout width %d", total, w, navRowWidth(total))
		}
	}
}

func TestNavLayout_Hit(t *testing.T) {
	l := newNavLayout(80, 24, 5)
	tests := []struct {
		x, y int
		want input.Event
		ok   bool
	}{
		{l.prevCol(), l.row, input.KeyLeft(), true},
		{l.nextCol(), l.row, input.KeyRight(), true},
		{l.dotCol(0), l.row, input.Dot(0), true},
		{l.dotCol(4), l.row, input.Dot(4), true},
		{l.dotCol(2) + 1, l.row, input.Dot(2), true},
		{l.dotCol(0) - 1, l.row, input.Event{}, false},
		{l.dotCol(2), l.row - 1, input.Event{}, false},
	}
	for _, tt := range tests {
		got, ok := l.hit(tt.x, tt.y)
		if ok != tt.ok || got != tt.want {
			t.Errorf("hit(%d,%d) = %v,%v; want %v,%v", tt.x, tt.y, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNavLayout_NarrowScreen(t *testing.T) {
	l := newNavLayout(10, 24, 14)
	if l.left != 0 {
		t.Errorf("left = %d, want 0 when the row does not fit", l.left)
	}
}

func TestPointerTracker(t *testing.T) {
	nav := newNavLayout(80, 24, 5)
	var p pointerTracker

	evs := p.handle(tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, nav)
	if len(evs) != 0 {
		t.Errorf("right button should be ignored, got %v", evs)
	}

	evs = p.handle(tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, nav)
	if len(evs) != 1 || evs[0].Kind != input.KindPointerOutside {
		t.Fatalf("press: %v", evs)
	}
	evs = p.handle(tea.MouseMsg{X: 20, Y: 5, Action: tea.MouseActionRelease}, nav)
	if len(evs) != 1 || evs[0].Kind != input.KindSwipe {
		t.Fatalf("release: %v", evs)
	}
	if g := evs[0].Gesture; g.DeltaX() != 10*CellWidthPx || g.DeltaY() != 0 {
		t.Errorf("gesture = %+v", g)
	}

	if evs := p.handle(tea.MouseMsg{X: 20, Y: 5, Action: tea.MouseActionRelease}, nav); evs != nil {
		t.Errorf("release without press: %v", evs)
	}
	if evs := p.handle(tea.MouseMsg{X: 20, Y: 5, Action: tea.MouseActionMotion}, nav); evs != nil {
		t.Errorf("motion: %v", evs)
	}
}

func TestApp_EverySlideFitsScreen(t *testing.T) {
	sizes := []struct{ w, h int }{{80, 24}, {60, 24}, {120, 30}, {40, 20}}
	for _, sz := range sizes {
		a, _ := newTestApp(t, Config{})
		a.Update(tea.WindowSizeMsg{Width: sz.w, Height: sz.h})
		nav := newNavLayout(sz.w, sz.h, a.Session.Deck().SlideCount())

		for i := range a.Session.Deck().SlideCount() {
			a.Update(DispatchMsg{Event: input.Dot(i)})
			lines := strings.Split(a.View(), "\n")
			if len(lines) != sz.h {
				t.Errorf("%dx%d slide %d: %d lines, want %d", sz.w, sz.h, i, len(lines), sz.h)
				continue
			}
			if !strings.Contains(lines[0], "/ 14") {
				t.Errorf("%dx%d slide %d: header missing from first line: %q", sz.w, sz.h, i, lines[0])
			}
			if !strings.Contains(lines[nav.row], "●") {
				t.Errorf("%dx%d slide %d: dots not on row %d", sz.w, sz.h, i, nav.row)
			}
			for n, l := range lines {
				if w := lipgloss.Width(l); w > sz.w {
					t.Errorf("%dx%d slide %d: line %d is %d columns wide", sz.w, sz.h, i, n, w)
				}
			}
		}
	}
}

func TestApp_HelpOverlayFitsShortScreen(t *testing.T) {
	a, _ := newTestApp(t, Config{})
	a.Update(tea.WindowSizeMsg{Width: 60, Height: 12})
	a.Update(ShowHelpMsg{})
	if n := len(strings.Split(a.View(), "\n")); n != 12 {
		t.Errorf("view has %d lines, want 12", n)
	}
}
