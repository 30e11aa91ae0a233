package content

import (
	"execdeck/internal/enumutil"

	"gopkg.in/yaml.v3"
)

// UnitStatus is the profitability indicator of a business unit.
// The set is closed: decoding any other value is an error.
type UnitStatus int

const (
	StatusNeutral UnitStatus = iota
	StatusProfit
	StatusLoss
)

// UnitStatuses lists every status in legend order.
var UnitStatuses = []UnitStatus{StatusProfit, StatusNeutral, StatusLoss}

func (s UnitStatus) String() string {
	switch s {
	case StatusProfit:
		return "profit"
	case StatusLoss:
		return "loss"
	case StatusNeutral:
		return "neutral"
	default:
		return "unknown"
	}
}

// Label returns the legend text.
func (s UnitStatus) Label() string {
	switch s {
	case StatusProfit:
		return "Profit"
	case StatusLoss:
		return "Loss"
	case StatusNeutral:
		return "Break-even"
	default:
		return "Unknown"
	}
}

// ParseUnitStatus parses a status name.
func ParseUnitStatus(s string) (UnitStatus, error) {
	switch s {
	case "profit":
		return StatusProfit, nil
	case "loss":
		return StatusLoss, nil
	case "neutral":
		return StatusNeutral, nil
	default:
		return 0, enumutil.ParseEnumError("unit status", s)
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *UnitStatus) UnmarshalYAML(node *yaml.Node) error {
	v, err := enumutil.UnmarshalEnumYAML(node, ParseUnitStatus)
	if err != nil {
		return err
	}
	*s = v
	return nil
}
