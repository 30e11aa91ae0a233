package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeybindRegistry maps app-level keys to commands.
// Keys use tea.KeyMsg.String() notation: "q", "?", "esc", "ctrl+c".
type KeybindRegistry struct {
	bindings     map[string]tea.Cmd
	descriptions map[string]string
	modeFilter   map[string][]AppMode // nil/empty = applies to all modes
	order        []string
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings:     make(map[string]tea.Cmd),
		descriptions: make(map[string]string),
		modeFilter:   make(map[string][]AppMode),
	}
}

// Bind registers a key to a command.
// Overwrites any existing binding for the key.
func (r *KeybindRegistry) Bind(k string, cmd tea.Cmd) {
	r.BindWithDesc(k, cmd, "")
}

// BindWithDesc registers a key with a description for the help view.
// The binding applies to all AppModes.
func (r *KeybindRegistry) BindWithDesc(k string, cmd tea.Cmd, desc string) {
	r.BindWithDescForMode(k, cmd, desc, nil)
}

// BindWithDescForMode registers a key with a description and mode filter.
// If modes is nil or empty, the binding applies to all modes.
func (r *KeybindRegistry) BindWithDescForMode(k string, cmd tea.Cmd, desc string, modes []AppMode) {
	if _, ok := r.bindings[k]; !ok {
		r.order = append(r.order, k)
	}
	r.bindings[k] = cmd
	if desc != "" {
		r.descriptions[k] = desc
	}
	if len(modes) > 0 {
		r.modeFilter[k] = modes
	} else {
		delete(r.modeFilter, k)
	}
}

// Lookup returns the command for a key in mode, or nil if not bound there.
func (r *KeybindRegistry) Lookup(k string, mode AppMode) tea.Cmd {
	if !r.appliesToMode(k, mode) {
		return nil
	}
	return r.bindings[k]
}

// Hints returns the described bindings that apply in mode, keyed by key.
func (r *KeybindRegistry) Hints(mode AppMode) map[string]string {
	out := make(map[string]string)
	for k, cmd := range r.bindings {
		if cmd == nil || !r.appliesToMode(k, mode) {
			continue
		}
		if d, ok := r.descriptions[k]; ok && d != "" {
			out[k] = d
		}
	}
	return out
}

// Bindings returns key.Binding values for the described bindings in mode,
// in registration order. Keys sharing a description are merged.
func (r *KeybindRegistry) Bindings(mode AppMode) []key.Binding {
	hints := r.Hints(mode)
	var descs []string
	keys := make(map[string][]string)
	for _, k := range r.order {
		desc, ok := hints[k]
		if !ok {
			continue
		}
		if _, seen := keys[desc]; !seen {
			descs = append(descs, desc)
		}
		keys[desc] = append(keys[desc], k)
	}
	out := make([]key.Binding, 0, len(descs))
	for _, d := range descs {
		ks := keys[d]
		out = append(out, key.NewBinding(key.WithKeys(ks...), key.WithHelp(strings.Join(ks, "/"), d)))
	}
	return out
}

// appliesToMode returns true if the binding applies to the given mode.
func (r *KeybindRegistry) appliesToMode(k string, mode AppMode) bool {
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

// KeyHandler dispatches app-level keys to the registry for the current mode.
type KeyHandler struct {
	Registry *KeybindRegistry
}

// NewKeyHandler creates a handler over reg.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Handle processes a KeyMsg. Returns (consumed, cmd).
// If consumed is true, the key was handled here and should not reach the deck.
func (h *KeyHandler) Handle(msg tea.KeyMsg, mode AppMode) (consumed bool, cmd tea.Cmd) {
	if h == nil || h.Registry == nil {
		return false, nil
	}
	if c := h.Registry.Lookup(msg.String(), mode); c != nil {
		return true, c
	}
	return false, nil
}

// deckKeys documents keys handled below the app level: deck navigation on
// the input bus and slide-local controls.
var deckKeys = [][]key.Binding{
	{
		key.NewBinding(key.WithKeys("right", " ", "l"), key.WithHelp("→/space/l", "next slide")),
		key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous slide")),
		key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("home/g", "first slide")),
		key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("end/G", "last slide")),
	},
	{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "reveal all items")),
		key.NewBinding(key.WithKeys("]", "tab"), key.WithHelp("]/tab", "next location or month")),
		key.NewBinding(key.WithKeys("[", "shift+tab"), key.WithHelp("[/shift+tab", "previous location or month")),
		key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"), key.WithHelp("1-9", "jump to location")),
	},
}

// KeyMap implements help.KeyMap over the deck keys and the registry's
// bindings for a mode.
type KeyMap struct {
	registry *KeybindRegistry
	mode     AppMode
}

// NewKeyMap creates a KeyMap for the given registry and mode.
func NewKeyMap(registry *KeybindRegistry, mode AppMode) help.KeyMap {
	return &KeyMap{registry: registry, mode: mode}
}

// ShortHelp returns the app-level bindings.
func (km *KeyMap) ShortHelp() []key.Binding {
	if km.registry == nil {
		return nil
	}
	return km.registry.Bindings(km.mode)
}

// FullHelp returns deck navigation, slide controls and app bindings as columns.
func (km *KeyMap) FullHelp() [][]key.Binding {
	cols := append([][]key.Binding{}, deckKeys...)
	if short := km.ShortHelp(); len(short) > 0 {
		cols = append(cols, short)
	}
	return cols
}
