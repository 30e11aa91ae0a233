package nav

// Carousel is a wrapping selector over a fixed number of entries.
// Unlike Deck, stepping past an end cycles to the opposite end.
type Carousel struct {
	active int
	size   int
}

// NewCarousel creates a carousel over size entries with index 0 active.
func NewCarousel(size int) (*Carousel, error) {
	if size < 1 {
		return nil, ErrEmptyRegistry
	}
	return &Carousel{size: size}, nil
}

// Active returns the active index.
func (c *Carousel) Active() int { return c.active }

// Len returns the number of entries.
func (c *Carousel) Len() int { return c.size }

// Next moves to (active+1) mod size.
func (c *Carousel) Next() {
	c.active = (c.active + 1) % c.size
}

// Previous moves to (active-1+size) mod size.
func (c *Carousel) Previous() {
	c.active = (c.active - 1 + c.size) % c.size
}

// Select makes i active. Returns false and leaves state unchanged if i is out of range.
func (c *Carousel) Select(i int) bool {
	if i < 0 || i >= c.size {
		return false
	}
	c.active = i
	return true
}
