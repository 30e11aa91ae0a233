// Package ui renders the deck with Bubble Tea.
//
// Core pieces:
//   - View: a screen or region with its own model, update, view (Elm-style)
//   - DeckView: the slide frame, navigation bar and current SlideView
//   - SlideView: the per-visit view of one slide; rebuilt on every transition
//   - Overlay: modal views with a dismiss key (the key help)
//   - KeybindRegistry: app-level keys filtered by AppMode
package ui
