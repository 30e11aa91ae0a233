package ui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpView is the key help overlay. esc or ? closes it.
type HelpView struct {
	keys help.KeyMap
}

// NewHelpView creates the overlay for the bindings in keys.
func NewHelpView(keys help.KeyMap) *HelpView {
	return &HelpView{keys: keys}
}

func (h *HelpView) Init() tea.Cmd { return nil }

func (h *HelpView) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc", "?":
			return h, func() tea.Msg { return CloseHelpMsg{} }
		}
	}
	return h, nil
}

func (h *HelpView) View() string {
	return RenderKeybindHelp(h.keys)
}

// RenderKeybindHelp draws every binding in keys as columns inside a box.
func RenderKeybindHelp(keys help.KeyMap) string {
	if keys == nil {
		return ""
	}
	helpModel := help.New()
	helpModel.ShowAll = true
	helpModel.Styles.FullKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	helpModel.Styles.FullDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	helpModel.Styles.FullSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1)

	title := Styles.Eyebrow.Render("KEYS")
	footer := Styles.Hint.Render("esc or ? to close")
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", helpModel.View(keys), "", footer))
}
