package input

import tea "github.com/charmbracelet/bubbletea"

// Key is a navigation key independent of the terminal library.
type Key int

const (
	KeyNone Key = iota
	KeyNext
	KeyPrevious
	KeyFirst
	KeyLast
)

func (k Key) String() string {
	switch k {
	case KeyNext:
		return "next"
	case KeyPrevious:
		return "previous"
	case KeyFirst:
		return "first"
	case KeyLast:
		return "last"
	default:
		return "none"
	}
}

// FromTea maps a Bubble Tea key to a deck key.
// right/space advance, left retreats, home/end jump. l, h, g and G are vi-style aliases.
func FromTea(msg tea.KeyMsg) (Key, bool) {
	switch msg.String() {
	case "right", " ", "l":
		return KeyNext, true
	case "left", "h":
		return KeyPrevious, true
	case "home", "g":
		return KeyFirst, true
	case "end", "G":
		return KeyLast, true
	}
	return KeyNone, false
}
