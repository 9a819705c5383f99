package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"slidedeck/internal/input"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.BindWithDesc("n", tea.Quit, "notes", ModeSlides)
	reg.Bind("j", nil)

	if reg.Lookup("q", ModeOverview) == nil {
		t.Error("expected q to be bound in every mode")
	}
	if reg.Lookup("n", ModeSlides) == nil {
		t.Error("expected n to be bound in slides mode")
	}
	if reg.Lookup("n", ModeOverview) != nil {
		t.Error("expected n to be unbound in overview mode")
	}
	if reg.Lookup("unknown", ModeSlides) != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeybindRegistry_SpaceNormalized(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("SPC", tea.Quit)
	for _, k := range []string{" ", "space", "SPC"} {
		if reg.Lookup(k, ModeSlides) == nil {
			t.Errorf("expected %q to resolve to SPC", k)
		}
	}
}

func TestKeybindRegistry_HintsMergeByDescription(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("left", tea.Quit, "prev")
	reg.BindWithDesc("h", tea.Quit, "prev")
	reg.BindWithDesc("n", tea.Quit, "notes", ModeSlides)
	reg.Bind("ctrl+c", tea.Quit)

	hints := reg.Hints(ModeSlides)
	if len(hints) != 2 {
		t.Fatalf("expected 2 hints, got %d", len(hints))
	}
	if got := hints[0].Help().Key; got != "←/h" {
		t.Errorf("merged key = %q, want ←/h", got)
	}
	if got := hints[1].Help().Desc; got != "notes" {
		t.Errorf("second hint = %q, want notes", got)
	}
	if len(reg.Hints(ModeOverview)) != 1 {
		t.Error("mode-filtered binding should be hidden in overview")
	}
}

func TestPresenterKeybinds(t *testing.T) {
	h := NewKeyHandler(newPresenterKeybinds())
	tests := []struct {
		key  tea.KeyMsg
		want input.Event
	}{
		{keyMsg("right"), input.KeyRight()},
		{keyMsg("l"), input.KeyRight()},
		{keyMsg("left"), input.KeyLeft()},
		{keyMsg("h"), input.KeyLeft()},
		{keyMsg("3"), input.Dot(2)},
		{keyMsg(" "), input.ToggleAutoplay()},
		{keyMsg("esc"), input.StopAutoplay()},
	}
	for _, tt := range tests {
		consumed, cmd := h.Handle(tt.key, ModeSlides)
		if !consumed || cmd == nil {
			t.Errorf("%q: consumed=%v cmd=%v", tt.key.String(), consumed, cmd != nil)
			continue
		}
		msg, ok := cmd().(DispatchMsg)
		if !ok || msg.Event != tt.want {
			t.Errorf("%q: got %#v, want %v", tt.key.String(), msg, tt.want)
		}
	}

	if consumed, _ := h.Handle(keyMsg("right"), ModeOverview); consumed {
		t.Error("navigation keys should fall through to the overview list")
	}
	if consumed, _ := h.Handle(keyMsg("z"), ModeSlides); consumed {
		t.Error("unbound key should not be consumed")
	}
}

func TestKeyMap_FullHelpColumns(t *testing.T) {
	km := NewKeyMap(newPresenterKeybinds(), ModeSlides)
	cols := km.FullHelp()
	if len(cols) < 2 {
		t.Fatalf("expected several help columns, got %d", len(cols))
	}
	for _, c := range cols {
		if len(c) > 4 {
			t.Errorf("column has %d bindings, want at most 4", len(c))
		}
	}
	var keys []string
	for _, b := range km.ShortHelp() {
		keys = append(keys, b.Help().Key)
	}
	if !strings.Contains(strings.Join(keys, " "), "1…9") {
		t.Errorf("digit bindings should collapse to 1…9, got %v", keys)
	}
	if (&KeyMap{}).ShortHelp() != nil || (&KeyMap{}).FullHelp() != nil {
		t.Error("empty KeyMap should have no help")
	}
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}
