package ui

// AppMode is the top-level input mode.
type AppMode int

const (
	ModeDeck AppMode = iota
	ModeHelp
)

func (m AppMode) String() string {
	switch m {
	case ModeDeck:
		return "Deck"
	case ModeHelp:
		return "Help"
	default:
		return "Unknown"
	}
}
