package ui

import (
	"execdeck/internal/calendar"
	"execdeck/internal/content"
	"execdeck/internal/geo"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the deck
const (
	ColorBrand     = "125" // Maroon - eyebrows, rules, primary accents
	ColorGold      = "179" // Gold - years, chairman badges
	ColorNavy      = "17"  // Navy - dark slide backgrounds
	ColorAccent    = "86"  // Cyan/green - highlights, active markers
	ColorHighlight = "205" // Magenta - focused cells
	ColorProfit    = "35"  // Green - profit, positive trends
	ColorLoss      = "160" // Red - loss, negative trends
	ColorMuted     = "241" // Gray - dimmed text, hints
	ColorText      = "252" // Light gray - normal text
	ColorDim       = "238" // Dark gray - disabled buttons, empty land
	ColorWarning   = "214" // Amber - chart annotations
)

// Styles contains shared style definitions used by the slide renderers.
var Styles = struct {
	Eyebrow  lipgloss.Style // small caps label above a title
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Hero     lipgloss.Style // title slide heading
	Rule     lipgloss.Style

	Box       lipgloss.Style
	Card      lipgloss.Style
	CardFocus lipgloss.Style
	Quote     lipgloss.Style

	Value    lipgloss.Style
	Label    lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Normal   lipgloss.Style
	Hint     lipgloss.Style
	Empty    lipgloss.Style
	Note     lipgloss.Style
	Year     lipgloss.Style
	Badge    lipgloss.Style

	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Indicator      lipgloss.Style
	NavBar         lipgloss.Style

	Land   lipgloss.Style
	Marker lipgloss.Style
	Active lipgloss.Style
}{
	Eyebrow: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBrand)).
		Bold(true),
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hero: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorGold)),
	Rule: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBrand)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBrand)).
		Padding(0, 1),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDim)).
		Padding(0, 1),
	CardFocus: lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(0, 1),
	Quote: lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(ColorBrand)).
		PaddingLeft(2).
		Italic(true),
	Value: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorBrand)),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Note: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
	Year: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorGold)),
	Badge: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Background(lipgloss.Color(ColorBrand)).
		Padding(0, 1),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Bold(true).
		Padding(0, 1),
	ButtonDisabled: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)).
		Padding(0, 1),
	Indicator: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBrand)).
		Bold(true),
	NavBar: lipgloss.NewStyle(),
	Land: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	Marker: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBrand)).
		Bold(true),
	Active: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
}

// StatusIcon returns the dot drawn next to a business unit.
func StatusIcon(s content.UnitStatus) string {
	switch s {
	case content.StatusProfit:
		return "●"
	case content.StatusLoss:
		return "●"
	case content.StatusNeutral:
		return "○"
	default:
		return "?"
	}
}

// StatusStyle returns the color for a unit status.
func StatusStyle(s content.UnitStatus) lipgloss.Style {
	switch s {
	case content.StatusProfit:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorProfit))
	case content.StatusLoss:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorLoss))
	case content.StatusNeutral:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorMuted))
	default:
		return Styles.Muted
	}
}

// TrendStyle colors a card value by its trend.
func TrendStyle(t content.Trend) lipgloss.Style {
	switch t {
	case content.TrendPositive:
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorProfit))
	case content.TrendNegative:
		return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorLoss))
	default:
		return Styles.Value
	}
}

// TrendIcon returns the arrow shown beside a card value.
func TrendIcon(t content.Trend) string {
	switch t {
	case content.TrendPositive:
		return "▲"
	case content.TrendNegative:
		return "▼"
	default:
		return ""
	}
}

// CategoryStyle returns the dot color for a calendar category.
func CategoryStyle(c calendar.Category) lipgloss.Style {
	var color string
	switch c {
	case calendar.CategoryHYPR:
		color = "33" // blue
	case calendar.CategoryAPR:
		color = ColorBrand
	case calendar.CategoryAudit:
		color = "136" // ochre
	case calendar.CategoryHoliday:
		color = ColorProfit
	case calendar.CategoryBudget:
		color = "98" // purple
	default:
		color = ColorMuted
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}

// KindStyle returns the badge style for a location kind.
func KindStyle(k geo.Kind) lipgloss.Style {
	switch k {
	case geo.KindHQ:
		return Styles.Badge.Background(lipgloss.Color(ColorBrand))
	case geo.KindHub:
		return Styles.Badge.Background(lipgloss.Color(ColorNavy))
	default:
		return Styles.Badge
	}
}
