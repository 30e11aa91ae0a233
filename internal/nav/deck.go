package nav

import "fmt"

// Deck tracks the active slide position over a fixed number of slides.
// The position is always in [0, Len()-1]; transitions clamp at the edges.
type Deck struct {
	position int
	total    int
}

// NewDeck creates a deck of total slides positioned at 0.
func NewDeck(total int) (*Deck, error) {
	if total < 1 {
		return nil, ErrEmptyRegistry
	}
	return &Deck{total: total}, nil
}

// Position returns the 0-based active index.
func (d *Deck) Position() int { return d.position }

// Len returns the number of slides.
func (d *Deck) Len() int { return d.total }

// CanNext reports whether Next would move.
func (d *Deck) CanNext() bool { return d.position < d.total-1 }

// CanPrevious reports whether Previous would move.
func (d *Deck) CanPrevious() bool { return d.position > 0 }

// Next advances one slide, stopping at the last. Returns true if the position changed.
func (d *Deck) Next() bool {
	return d.set(min(d.position+1, d.total-1))
}

// Previous retreats one slide, stopping at the first. Returns true if the position changed.
func (d *Deck) Previous() bool {
	return d.set(max(d.position-1, 0))
}

// First jumps to slide 0.
func (d *Deck) First() bool {
	return d.set(0)
}

// Last jumps to the final slide.
func (d *Deck) Last() bool {
	return d.set(d.total - 1)
}

func (d *Deck) set(p int) bool {
	if p == d.position {
		return false
	}
	d.position = p
	return true
}

// Indicator formats the 1-based "position / total" status text.
func (d *Deck) Indicator() string {
	return fmt.Sprintf("%d / %d", d.position+1, d.total)
}
