// Package enumutil holds helpers shared by the closed string enums decoded from deck content.
package enumutil

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// StringEnum is a constraint for enum types that have a String() method.
type StringEnum interface {
	String() string
}

// UnmarshalEnumYAML decodes a YAML scalar and parses it with parseFunc.
// Unknown values are errors; there is no silent default.
func UnmarshalEnumYAML[T StringEnum](node *yaml.Node, parseFunc func(string) (T, error)) (T, error) {
	var zero T
	var s string
	if err := node.Decode(&s); err != nil {
		return zero, err
	}
	v, err := parseFunc(s)
	if err != nil {
		return zero, fmt.Errorf("line %d: %w", node.Line, err)
	}
	return v, nil
}

// ParseEnumError creates a standardized error message for invalid enum string values.
func ParseEnumError(enumName, value string) error {
	return fmt.Errorf("unknown %s: %q", enumName, value)
}
