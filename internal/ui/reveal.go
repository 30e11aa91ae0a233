package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// revealTickMsg advances progressive reveal. gen identifies the slide visit
// that scheduled it; ticks from an earlier visit are ignored.
type revealTickMsg struct {
	gen int
}

// reveal tracks how many items of a slide are visible. It never touches
// navigation state.
type reveal struct {
	gen      int
	shown    int
	total    int
	interval time.Duration
}

func newReveal(gen, total int, env Env) reveal {
	r := reveal{gen: gen, total: total, shown: total, interval: env.RevealInterval}
	if env.Reveal && total > 0 && env.RevealInterval > 0 {
		r.shown = 0
	}
	return r
}

func (r *reveal) start() tea.Cmd {
	if r.done() {
		return nil
	}
	return r.tick()
}

func (r *reveal) tick() tea.Cmd {
	gen := r.gen
	return tea.Tick(r.interval, func(time.Time) tea.Msg {
		return revealTickMsg{gen: gen}
	})
}

// update consumes a tick and schedules the next one until every item is shown.
func (r *reveal) update(msg revealTickMsg) tea.Cmd {
	if msg.gen != r.gen || r.done() {
		return nil
	}
	r.shown++
	if r.done() {
		return nil
	}
	return r.tick()
}

func (r *reveal) done() bool { return r.shown >= r.total }

// finish shows everything at once.
func (r *reveal) finish() { r.shown = r.total }

// budget hands out reveal slots to renderers in document order.
type budget struct {
	left int
}

func (b *budget) take() bool {
	if b == nil {
		return true
	}
	if b.left <= 0 {
		return false
	}
	b.left--
	return true
}
