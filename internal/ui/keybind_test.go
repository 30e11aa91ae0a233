package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeybindRegistry_BindLookup(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	reg.Bind("j", nil)

	if reg.Lookup("q", ModeDeck) == nil {
		t.Error("expected q to be bound")
	}
	if reg.Lookup("j", ModeDeck) != nil {
		t.Error("expected nil binding for j")
	}
	if reg.Lookup("unknown", ModeDeck) != nil {
		t.Error("expected unknown to be unbound")
	}
}

func TestKeybindRegistry_ModeFilter(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDescForMode("x", tea.Quit, "Deck only", []AppMode{ModeDeck})

	if reg.Lookup("x", ModeDeck) == nil {
		t.Error("expected x bound in deck mode")
	}
	if reg.Lookup("x", ModeHelp) != nil {
		t.Error("expected x unbound in help mode")
	}
	if _, ok := reg.Hints(ModeHelp)["x"]; ok {
		t.Error("help mode hints should not list x")
	}
}

func TestKeybindRegistry_BindingsMergeSharedDescriptions(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("?", tea.Quit, "Toggle help")
	reg.Bind("z", tea.Quit) // no description, not listed

	bindings := reg.Bindings(ModeDeck)
	if len(bindings) != 2 {
		t.Fatalf("bindings = %d, want 2", len(bindings))
	}
	if got := bindings[0].Help().Key; got != "q/ctrl+c" {
		t.Errorf("first binding key = %q, want q/ctrl+c", got)
	}
	if got := bindings[1].Help().Desc; got != "Toggle help" {
		t.Errorf("second binding desc = %q", got)
	}
}

func TestKeyHandler_SingleKey(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	consumed, cmd := h.Handle(keyMsg("q"), ModeDeck)
	if !consumed || cmd == nil {
		t.Errorf("q: consumed=%v cmd=%v", consumed, cmd)
	}
}

func TestKeyHandler_UnboundFallsThrough(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.Bind("q", tea.Quit)
	h := NewKeyHandler(reg)

	for _, k := range []string{"j", "right", " ", "esc"} {
		if consumed, _ := h.Handle(keyMsg(k), ModeDeck); consumed {
			t.Errorf("unbound %q should not be consumed", k)
		}
	}
}

func TestKeyMap_FullHelpIncludesDeckKeys(t *testing.T) {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	km := NewKeyMap(reg, ModeHelp)

	cols := km.FullHelp()
	if len(cols) != len(deckKeys)+1 {
		t.Fatalf("columns = %d, want %d", len(cols), len(deckKeys)+1)
	}
	if got := cols[0][0].Help().Desc; got != "next slide" {
		t.Errorf("first deck binding = %q", got)
	}
}

// keyMsg creates a tea.KeyMsg for testing. Bubble Tea uses KeyType and Runes.
// KeySpace.String() returns " ", KeyEsc returns "esc", etc.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "home":
		return tea.KeyMsg{Type: tea.KeyHome}
	case "end":
		return tea.KeyMsg{Type: tea.KeyEnd}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// click creates a left-button press at x, y.
func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress}
}
