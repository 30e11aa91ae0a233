// Package content holds the presentation as authored data.
//
// The deck is a YAML document compiled into the binary with go:embed and
// decoded into plain records. Renderers in internal/ui consume the records;
// nothing here knows how a slide is drawn.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"

	"execdeck/internal/calendar"
	"execdeck/internal/geo"

	"gopkg.in/yaml.v3"
)

//go:embed deck.yaml
var deckYAML []byte

// ErrEmptyDeck is returned when a deck has no slides.
var ErrEmptyDeck = errors.New("deck has no slides")

// Load decodes and validates the embedded deck.
func Load() (*Deck, error) {
	return Parse(deckYAML)
}

// Parse decodes and validates a deck document. Unknown fields and unknown
// enum values are errors.
func Parse(data []byte) (*Deck, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var d Deck
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("decode deck: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Validate checks every slide and reports all problems together.
func (d *Deck) Validate() error {
	if len(d.Slides) == 0 {
		return ErrEmptyDeck
	}
	var errs []error
	seen := make(map[string]int, len(d.Slides))
	for i, s := range d.Slides {
		if s.Key == "" {
			errs = append(errs, fmt.Errorf("slide %d: missing key", i))
		} else if prev, dup := seen[s.Key]; dup {
			errs = append(errs, fmt.Errorf("slide %d: key %q already used by slide %d", i, s.Key, prev))
		} else {
			seen[s.Key] = i
		}
		if err := s.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("slide %d (%s): %w", i, s.Key, err))
		}
	}
	return errors.Join(errs...)
}

// Validate checks that the payload required by the slide's kind is present.
func (s Slide) Validate() error {
	var errs []error
	need := func(ok bool, what string) {
		if !ok {
			errs = append(errs, fmt.Errorf("%s slide needs %s", s.Kind, what))
		}
	}
	switch s.Kind {
	case KindTitle, KindSection, KindClosing:
		need(s.Title != "", "a title")
	case KindContent:
		need(len(s.Blocks) > 0, "blocks")
		for i, b := range s.Blocks {
			if err := b.Validate(); err != nil {
				errs = append(errs, fmt.Errorf("block %d: %w", i, err))
			}
		}
	case KindTimeline:
		need(len(s.Timeline) > 0, "timeline entries")
	case KindOrgStructure:
		need(s.Org != nil && len(s.Org.Divisions) > 0, "org divisions")
	case KindHierarchy:
		need(len(s.Tiers) > 0, "tiers")
	case KindPeople:
		need(len(s.People) > 0, "people")
	case KindDepartment:
		need(s.Department != nil && s.Department.Head.Name != "", "a department head")
	case KindChart:
		need(s.Chart != nil && len(s.Chart.Points) > 0, "chart points")
	case KindGeography:
		if s.Geography == nil || len(s.Geography.Locations) == 0 {
			need(false, "locations")
			break
		}
		need(len(s.Geography.Outline) >= 3, "an outline of at least 3 points")
		errs = append(errs, validateLocations(s.Geography.Locations)...)
	case KindCalendar:
		need(s.Calendar != nil, "a calendar")
		if s.Calendar != nil {
			for _, e := range s.Calendar.Events {
				if err := e.Validate(); err != nil {
					errs = append(errs, err)
				}
			}
		}
	case KindGallery:
		need(len(s.Gallery) > 0, "gallery items")
	default:
		errs = append(errs, fmt.Errorf("%w: %d", ErrUnknownKind, int(s.Kind)))
	}
	return errors.Join(errs...)
}

// Validate checks that exactly one payload is set.
func (b Block) Validate() error {
	n := 0
	for _, set := range []bool{
		len(b.Bullets) > 0,
		len(b.Cards) > 0,
		len(b.Stats) > 0,
		b.Quote != nil,
		len(b.Panels) > 0,
		b.Notes != "",
	} {
		if set {
			n++
		}
	}
	if n != 1 {
		return fmt.Errorf("block must set exactly one of bullets, cards, stats, quote, panels, notes (got %d)", n)
	}
	return nil
}

func validateLocations(locs []geo.Location) []error {
	var errs []error
	ids := make(map[string]bool, len(locs))
	for _, l := range locs {
		if l.ID == "" || ids[l.ID] {
			errs = append(errs, fmt.Errorf("location %q: missing or duplicate id", l.Name))
		}
		ids[l.ID] = true
	}
	return errs
}

// Events returns the calendar events of the first calendar slide, if any.
func (d *Deck) Events() []calendar.Event {
	for _, s := range d.Slides {
		if s.Kind == KindCalendar && s.Calendar != nil {
			return s.Calendar.Events
		}
	}
	return nil
}
