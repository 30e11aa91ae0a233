package ui

// ToggleHelpMsg opens the key help overlay, or closes it when open.
type ToggleHelpMsg struct{}

// CloseHelpMsg dismisses the key help overlay.
type CloseHelpMsg struct{}
