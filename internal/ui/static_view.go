package ui

import (
	"execdeck/internal/content"

	tea "github.com/charmbracelet/bubbletea"
)

// staticView renders every slide kind without local interaction. Its only
// state is the progressive reveal.
type staticView struct {
	slide  content.Slide
	env    Env
	reveal reveal
	width  int
	height int
}

func newStaticView(s content.Slide, env Env, gen int) *staticView {
	return &staticView{
		slide:  s,
		env:    env,
		reveal: newReveal(gen, countItems(s), env),
	}
}

func (v *staticView) Init() tea.Cmd { return v.reveal.start() }

func (v *staticView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case revealTickMsg:
		return v, v.reveal.update(msg)
	case tea.KeyMsg:
		if msg.String() == "enter" {
			v.reveal.finish()
		}
	}
	return v, nil
}

func (v *staticView) View() string {
	b := &budget{left: v.reveal.shown}
	return renderStatic(v.slide, v.env, v.width, v.height, b)
}

func (v *staticView) Slide() content.Slide { return v.slide }

func (v *staticView) SetSize(width, height int) {
	v.width, v.height = width, height
}
