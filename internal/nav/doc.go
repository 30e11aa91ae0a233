// Package nav holds the position logic of the deck.
//
// Two navigation contracts live here and are kept deliberately separate:
//   - Deck clamps: stepping past either end is a no-op.
//   - Carousel wraps: stepping past either end lands on the opposite end.
//
// Registry is the ordered, immutable sequence the Deck indexes into.
package nav
