package content

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrUnknownKind is returned when a slide names a layout that does not exist.
var ErrUnknownKind = errors.New("unknown slide kind")

// Kind selects the slide layout.
type Kind int

const (
	KindTitle Kind = iota
	KindSection
	KindContent
	KindTimeline
	KindOrgStructure
	KindHierarchy
	KindPeople
	KindDepartment
	KindChart
	KindGeography
	KindCalendar
	KindGallery
	KindClosing
)

var kindNames = map[Kind]string{
	KindTitle:        "title",
	KindSection:      "section",
	KindContent:      "content",
	KindTimeline:     "timeline",
	KindOrgStructure: "org-structure",
	KindHierarchy:    "hierarchy",
	KindPeople:       "people",
	KindDepartment:   "department",
	KindChart:        "chart",
	KindGeography:    "geography",
	KindCalendar:     "calendar",
	KindGallery:      "gallery",
	KindClosing:      "closing",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// ParseKind parses a slide kind name.
func ParseKind(s string) (Kind, error) {
	for k, n := range kindNames {
		if n == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (k *Kind) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	v, err := ParseKind(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*k = v
	return nil
}
