package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps keys to commands.
// Keys use tea.KeyMsg.String() notation except space, which is "SPC":
// "left", "l", "esc", "ctrl+c", "SPC".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	modeFilter   map[string][]Mode // nil/empty = applies to all modes
	order        []string
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		modeFilter:   make(map[string][]Mode),
	}
}

// Bind registers a key to a command in every mode.
// Overwrites any existing binding for the key.
func (r *KeybindRegistry) Bind(k string, cmd tea.Cmd) {
	r.BindWithDesc(k, cmd, "")
}

// BindWithDesc registers a key with a description for the help bar.
// If modes is empty, the binding applies to all modes.
func (r *KeybindRegistry) BindWithDesc(k string, cmd tea.Cmd, desc string, modes ...Mode) {
	n := normalizeKey(k)
	if _, exists := r.bindings[n]; !exists {
		r.order = append(r.order, n)
	}
	r.bindings[n] = cmd
	if desc != "" {
		r.descriptions[n] = desc
	}
	if len(modes) > 0 {
		r.modeFilter[n] = modes
	} else {
		delete(r.modeFilter, n)
	}
}

// Lookup returns the command bound to k in mode, or nil.
func (r *KeybindRegistry) Lookup(k string, mode Mode) tea.Cmd {
	n := normalizeKey(k)
	if !r.appliesToMode(n, mode) {
		return nil
	}
	return r.bindings[n]
}

// Hints returns described bindings for mode in registration order.
// Keys sharing a description are merged ("←/h").
func (r *KeybindRegistry) Hints(mode Mode) []key.Binding {
	var descs []string
	keysByDesc := make(map[string][]string)
	for _, k := range r.order {
		d, ok := r.descriptions[k]
		if !ok || r.bindings[k] == nil || !r.appliesToMode(k, mode) {
			continue
		}
		if _, seen := keysByDesc[d]; !seen {
			descs = append(descs, d)
		}
		keysByDesc[d] = append(keysByDesc[d], k)
	}
	out := make([]key.Binding, 0, len(descs))
	for _, d := range descs {
		keys := keysByDesc[d]
		out = append(out, key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(displayKeys(keys), d),
		))
	}
	return out
}

// appliesToMode returns true if the binding applies to the given mode.
func (r *KeybindRegistry) appliesToMode(k string, mode Mode) bool {
	modes, ok := r.modeFilter[k]
	if !ok || len(modes) == 0 {
		return true
	}
	for _, m := range modes {
		if m == mode {
			return true
		}
	}
	return false
}

// normalizeKey converts tea key strings to our canonical format.
// "space" and " " become "SPC".
func normalizeKey(k string) string {
	if k == " " || k == "space" {
		return "SPC"
	}
	return k
}

var keyGlyphs = map[string]string{
	"left":  "←",
	"right": "→",
	"up":    "↑",
	"down":  "↓",
	"SPC":   "space",
}

func displayKeys(keys []string) string {
	if len(keys) > 3 {
		return keys[0] + "…" + keys[len(keys)-1]
	}
	parts := make([]string, len(keys))
	for i, k := range keys {
		if g, ok := keyGlyphs[k]; ok {
			parts[i] = g
		} else {
			parts[i] = k
		}
	}
	return strings.Join(parts, "/")
}

// KeyHandler dispatches key presses to the registry for the current mode.
type KeyHandler struct {
	Registry *KeybindRegistry
}

// NewKeyHandler creates a handler over reg.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle processes a KeyMsg. Returns (consumed, cmd).
// If consumed is true, the key was handled by the keybind system and should
// not be passed to views.
func (h *KeyHandler) Handle(msg tea.KeyMsg, mode Mode) (consumed bool, cmd tea.Cmd) {
	if c := h.Registry.Lookup(msg.String(), mode); c != nil {
		return true, c
	}
	return false, nil
}

// KeyMap implements help.KeyMap for the registry in one mode.
type KeyMap struct {
	registry *KeybindRegistry
	mode     Mode
}

// NewKeyMap creates a KeyMap for the given registry and mode.
func NewKeyMap(registry *KeybindRegistry, mode Mode) help.KeyMap {
	return &KeyMap{registry: registry, mode: mode}
}

// ShortHelp returns the bindings for the one-line help bar.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	return km.registry.Hints(km.mode)
}

// FullHelp groups bindings four to a column for the help overlay.
func (km *KeyMap) FullHelp() [][]key.Binding {
	short := km.ShortHelp()
	if len(short) == 0 {
		return nil
	}
	var cols [][]key.Binding
	for i := 0; i < len(short); i += 4 {
		end := min(i+4, len(short))
		cols = append(cols, short[i:end])
	}
	return cols
}
