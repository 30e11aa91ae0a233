package ui

import (
	"execdeck/internal/input"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// AppModel is the root model. It routes keys: overlays first, then app
// keybinds, then deck navigation on the input bus, then the current slide.
type AppModel struct {
	Mode       AppMode
	Deck       *DeckView
	Bus        *input.Bus
	KeyHandler *KeyHandler
	Overlays   OverlayStack
	Logger     *zap.Logger

	width  int
	height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Deck.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
	case ToggleHelpMsg:
		if a.Mode == ModeHelp {
			a.closeHelp()
		} else {
			a.openHelp()
		}
		return a, nil
	case CloseHelpMsg:
		a.closeHelp()
		return a, nil
	case tea.KeyMsg:
		if consumed, cmd := a.KeyHandler.Handle(msg, a.Mode); consumed {
			return a, cmd
		}
		if a.Mode == ModeHelp {
			cmd, _ := a.Overlays.UpdateTop(msg)
			if a.Overlays.Len() == 0 {
				a.Mode = ModeDeck
			}
			return a, cmd
		}
		if k, ok := input.FromTea(msg); ok {
			a.Bus.Publish(k)
			return a, a.Deck.TakeCmd()
		}
	case tea.MouseMsg:
		if a.Mode == ModeHelp {
			return a, nil
		}
	}

	_, cmd := a.Deck.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if top, ok := a.Overlays.Peek(); ok {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, top.View.View())
	}
	return a.Deck.View()
}

func (a *AppModel) openHelp() {
	keys := NewKeyMap(a.KeyHandler.Registry, ModeHelp)
	a.Overlays.Push(Overlay{View: NewHelpView(keys), Dismiss: "esc"})
	a.Mode = ModeHelp
	a.Logger.Debug("help opened")
}

func (a *AppModel) closeHelp() {
	a.Overlays.Pop()
	if a.Overlays.Len() == 0 {
		a.Mode = ModeDeck
	}
}

// NewAppModel creates the root model and mounts deck on a fresh bus.
func NewAppModel(deck *DeckView, logger *zap.Logger) *AppModel {
	if logger == nil {
		logger = zap.NewNop()
	}
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("?", func() tea.Msg { return ToggleHelpMsg{} }, "Toggle help")

	bus := input.NewBus()
	deck.Mount(bus)
	return &AppModel{
		Mode:       ModeDeck,
		Deck:       deck,
		Bus:        bus,
		KeyHandler: NewKeyHandler(reg),
		Logger:     logger,
	}
}

// Close unmounts the deck from the bus.
func (m *AppModel) Close() {
	m.Deck.Unmount()
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}
