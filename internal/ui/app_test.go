package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func newTestApp(t *testing.T, n int) (*AppModel, tea.Model) {
	t.Helper()
	d, _ := newTestDeck(t, sectionSlides(n), DeckOptions{})
	d.Unmount() // the app mounts it on its own bus
	app := NewAppModel(d, nil)
	t.Cleanup(app.Close)
	m := app.AsTeaModel()
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return app, m
}

// send delivers msg and then any message its command produces, the way the
// program loop would for a single synchronous command.
func send(m tea.Model, msg tea.Msg) tea.Cmd {
	_, cmd := m.Update(msg)
	if cmd == nil {
		return nil
	}
	switch follow := cmd().(type) {
	case ToggleHelpMsg, CloseHelpMsg:
		_, next := m.Update(follow)
		return next
	}
	return cmd
}

func TestApp_KeysNavigateDeck(t *testing.T) {
	app, m := newTestApp(t, 5)

	for _, k := range []string{"right", " ", "l"} {
		send(m, keyMsg(k))
	}
	if got := app.Deck.Position(); got != 3 {
		t.Fatalf("position = %d, want 3", got)
	}
	send(m, keyMsg("left"))
	send(m, keyMsg("h"))
	if got := app.Deck.Position(); got != 1 {
		t.Errorf("position = %d, want 1", got)
	}
	send(m, keyMsg("end"))
	if got := app.Deck.Position(); got != 4 {
		t.Errorf("end: position = %d, want 4", got)
	}
	send(m, keyMsg("home"))
	if got := app.Deck.Position(); got != 0 {
		t.Errorf("home: position = %d, want 0", got)
	}
}

func TestApp_QuitKeys(t *testing.T) {
	_, m := newTestApp(t, 2)
	for _, k := range []string{"q", "ctrl+c"} {
		_, cmd := m.Update(keyMsg(k))
		if cmd == nil {
			t.Fatalf("%s: no command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%s did not quit", k)
		}
	}
}

func TestApp_HelpOverlayBlocksNavigation(t *testing.T) {
	app, m := newTestApp(t, 5)

	send(m, keyMsg("?"))
	if app.Mode != ModeHelp || app.Overlays.Len() != 1 {
		t.Fatalf("mode = %v overlays = %d after ?", app.Mode, app.Overlays.Len())
	}
	if out := m.View(); !strings.Contains(out, "next slide") || !strings.Contains(out, "Quit") {
		t.Errorf("help overlay missing bindings:\n%s", out)
	}

	send(m, keyMsg("right"))
	send(m, click(newNavBar(app.Deck.deck, 80).nextStart+1, 23))
	if got := app.Deck.Position(); got != 0 {
		t.Errorf("deck moved to %d while help was open", got)
	}

	send(m, keyMsg("esc"))
	if app.Mode != ModeDeck || app.Overlays.Len() != 0 {
		t.Fatalf("esc did not close help: mode = %v", app.Mode)
	}
	send(m, keyMsg("right"))
	if got := app.Deck.Position(); got != 1 {
		t.Errorf("position after closing help = %d, want 1", got)
	}
}

func TestApp_QuestionMarkTogglesHelp(t *testing.T) {
	app, m := newTestApp(t, 2)
	send(m, keyMsg("?"))
	send(m, keyMsg("?"))
	if app.Mode != ModeDeck || app.Overlays.Len() != 0 {
		t.Errorf("second ? should close help: mode = %v overlays = %d", app.Mode, app.Overlays.Len())
	}
}

func TestApp_CloseUnmountsDeck(t *testing.T) {
	app, m := newTestApp(t, 3)
	app.Close()
	if app.Bus.Len() != 0 {
		t.Fatalf("bus has %d subscribers after close", app.Bus.Len())
	}
	send(m, keyMsg("right"))
	if got := app.Deck.Position(); got != 0 {
		t.Errorf("closed app still navigates: %d", got)
	}
}

func TestAppMode_String(t *testing.T) {
	if ModeDeck.String() != "Deck" || ModeHelp.String() != "Help" || AppMode(9).String() != "Unknown" {
		t.Error("unexpected AppMode names")
	}
}
