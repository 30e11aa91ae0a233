package ui

import (
	"strings"

	"execdeck/internal/nav"

	"github.com/charmbracelet/lipgloss"
)

const (
	prevLabel = "← Previous"
	nextLabel = "Next →"
)

// navButton identifies a clickable nav bar control.
type navButton int

const (
	buttonNone navButton = iota
	buttonPrevious
	buttonNext
)

// navBar is the rendered bottom bar plus the column ranges of its buttons.
type navBar struct {
	line      string
	prevStart int
	prevEnd   int
	nextStart int
	nextEnd   int
	canPrev   bool
	canNext   bool
}

// newNavBar lays out "← Previous   n / N   Next →" across width. A button is
// drawn disabled when the deck is at that end.
func newNavBar(d *nav.Deck, width int) navBar {
	b := navBar{canPrev: d.CanPrevious(), canNext: d.CanNext()}

	prev := buttonStyle(b.canPrev).Render(prevLabel)
	next := buttonStyle(b.canNext).Render(nextLabel)
	indicator := Styles.Indicator.Render(d.Indicator())

	pw, nw, iw := lipgloss.Width(prev), lipgloss.Width(next), lipgloss.Width(indicator)
	width = max(width, pw+nw+iw+2)
	left := max((width-iw)/2-pw, 1)
	right := max(width-pw-left-iw-nw, 1)

	b.prevStart, b.prevEnd = 0, pw
	b.nextStart = pw + left + iw + right
	b.nextEnd = b.nextStart + nw
	b.line = prev + strings.Repeat(" ", left) + indicator + strings.Repeat(" ", right) + next
	return b
}

func buttonStyle(enabled bool) lipgloss.Style {
	if enabled {
		return Styles.Button
	}
	return Styles.ButtonDisabled
}

// hit returns the enabled button under column x.
func (b navBar) hit(x int) navButton {
	switch {
	case x >= b.prevStart && x < b.prevEnd && b.canPrev:
		return buttonPrevious
	case x >= b.nextStart && x < b.nextEnd && b.canNext:
		return buttonNext
	}
	return buttonNone
}
