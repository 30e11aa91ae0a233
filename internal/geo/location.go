// Package geo models the locations on the geography slide and projects them
// onto a character grid.
package geo

import (
	"fmt"

	"execdeck/internal/enumutil"
	"execdeck/internal/nav"

	"gopkg.in/yaml.v3"
)

// Kind distinguishes the headquarters from regional hubs.
type Kind int

const (
	KindHub Kind = iota
	KindHQ
)

func (k Kind) String() string {
	switch k {
	case KindHQ:
		return "hq"
	case KindHub:
		return "hub"
	default:
		return "unknown"
	}
}

// Label returns the badge text for the kind.
func (k Kind) Label() string {
	switch k {
	case KindHQ:
		return "Headquarters"
	case KindHub:
		return "Regional Hub"
	default:
		return "Unknown"
	}
}

// ParseKind parses the content-file spelling of a kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "hq":
		return KindHQ, nil
	case "hub":
		return KindHub, nil
	default:
		return 0, enumutil.ParseEnumError("location kind", s)
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	v, err := enumutil.UnmarshalEnumYAML(node, ParseKind)
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Point is a longitude/latitude pair in degrees.
type Point struct {
	Lon float64
	Lat float64
}

// UnmarshalYAML decodes a point written as a [lon, lat] flow sequence.
func (p *Point) UnmarshalYAML(node *yaml.Node) error {
	var pair []float64
	if err := node.Decode(&pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("line %d: coordinate needs [lon, lat], got %d values", node.Line, len(pair))
	}
	p.Lon, p.Lat = pair[0], pair[1]
	return nil
}

// Location is one site on the map.
type Location struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Region      string   `yaml:"region"`
	Coordinates Point    `yaml:"coordinates"`
	Kind        Kind     `yaml:"kind"`
	Units       []string `yaml:"units"`
}

// ShortName is the marker label: the first word of the name.
func (l Location) ShortName() string {
	for i, r := range l.Name {
		if r == ' ' {
			return l.Name[:i]
		}
	}
	return l.Name
}

// Viewer steps through a fixed list of locations, wrapping at both ends.
type Viewer struct {
	locations []Location
	sel       *nav.Carousel
}

// NewViewer creates a viewer with the first location active.
func NewViewer(locations []Location) (*Viewer, error) {
	sel, err := nav.NewCarousel(len(locations))
	if err != nil {
		return nil, fmt.Errorf("geography viewer: %w", err)
	}
	return &Viewer{locations: locations, sel: sel}, nil
}

// Active returns the highlighted location.
func (v *Viewer) Active() Location { return v.locations[v.sel.Active()] }

// ActiveIndex returns the index of the highlighted location.
func (v *Viewer) ActiveIndex() int { return v.sel.Active() }

// Locations returns the fixed location list.
func (v *Viewer) Locations() []Location { return v.locations }

// Next highlights the following location, wrapping to the first.
func (v *Viewer) Next() { v.sel.Next() }

// Previous highlights the preceding location, wrapping to the last.
func (v *Viewer) Previous() { v.sel.Previous() }

// Select highlights location i directly, as when its marker is activated.
func (v *Viewer) Select(i int) bool { return v.sel.Select(i) }
