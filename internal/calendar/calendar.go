// Package calendar models the board meeting schedule shown on the calendar slide.
package calendar

import (
	"fmt"
	"time"

	"execdeck/internal/enumutil"

	"gopkg.in/yaml.v3"
)

// MonthsPerYear is the number of cells in the calendar grid.
const MonthsPerYear = 12

// Category classifies a calendar event.
type Category int

const (
	CategoryHYPR    Category = iota // half-yearly performance review
	CategoryAPR                     // annual performance review
	CategoryAudit
	CategoryHoliday
	CategoryBudget
)

// Categories lists every category in legend order.
var Categories = []Category{CategoryHYPR, CategoryAPR, CategoryAudit, CategoryBudget, CategoryHoliday}

func (c Category) String() string {
	switch c {
	case CategoryHYPR:
		return "hypr"
	case CategoryAPR:
		return "apr"
	case CategoryAudit:
		return "audit"
	case CategoryHoliday:
		return "holiday"
	case CategoryBudget:
		return "budget"
	default:
		return "unknown"
	}
}

// Label returns the legend text for the category.
func (c Category) Label() string {
	switch c {
	case CategoryHYPR:
		return "HYPR"
	case CategoryAPR:
		return "APR"
	case CategoryAudit:
		return "Audit"
	case CategoryHoliday:
		return "Holiday"
	case CategoryBudget:
		return "Budget"
	default:
		return "Unknown"
	}
}

// ParseCategory parses the content-file spelling of a category.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "hypr":
		return CategoryHYPR, nil
	case "apr":
		return CategoryAPR, nil
	case "audit":
		return CategoryAudit, nil
	case "holiday":
		return CategoryHoliday, nil
	case "budget":
		return CategoryBudget, nil
	default:
		return 0, enumutil.ParseEnumError("calendar category", s)
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Category) UnmarshalYAML(node *yaml.Node) error {
	v, err := enumutil.UnmarshalEnumYAML(node, ParseCategory)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Event is one entry on the schedule. Immutable once loaded.
type Event struct {
	ID       string   `yaml:"id"`
	Date     string   `yaml:"date"` // display label, e.g. "Jan 26"
	Title    string   `yaml:"title"`
	Category Category `yaml:"category"`
	Month    int      `yaml:"month"` // 0-11
}

// Day returns the day part of the display date ("Jan 26" -> "26").
func (e Event) Day() string {
	for i := len(e.Date) - 1; i >= 0; i-- {
		if e.Date[i] == ' ' {
			return e.Date[i+1:]
		}
	}
	return e.Date
}

// Validate checks the month range and required fields.
func (e Event) Validate() error {
	if e.ID == "" {
		return fmt.Errorf("calendar event %q: missing id", e.Title)
	}
	if e.Month < 0 || e.Month >= MonthsPerYear {
		return fmt.Errorf("calendar event %s: month %d out of range 0-11", e.ID, e.Month)
	}
	return nil
}

// ForMonth returns the events in month, in source order.
// The input slice is not modified.
func ForMonth(events []Event, month int) []Event {
	out := []Event{}
	for _, e := range events {
		if e.Month == month {
			out = append(out, e)
		}
	}
	return out
}

// Partition splits events into the 12 month cells. Every month has a
// non-nil (possibly empty) slice.
func Partition(events []Event) [MonthsPerYear][]Event {
	var cells [MonthsPerYear][]Event
	for m := range cells {
		cells[m] = ForMonth(events, m)
	}
	return cells
}

// MonthName returns the English month name for a 0-based month index.
func MonthName(month int) string {
	return time.Month(month + 1).String()
}
