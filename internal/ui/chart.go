package ui

import (
	"math"
	"strings"

	"execdeck/internal/content"
	"execdeck/internal/ui/textutil"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	barGlyph      = "█"
	forecastGlyph = "▒"
	axisGlyph     = "│"
)

var numberPrinter = message.NewPrinter(language.English)

// FormatValue renders a chart value with thousands separators, a sign for
// negatives and the unit suffix.
func FormatValue(v float64, unit string) string {
	s := numberPrinter.Sprintf("%d", int64(math.Round(v)))
	if unit != "" {
		s += " " + unit
	}
	return s
}

// Peak returns the index of the largest value, or -1 for an empty series.
func Peak(points []content.ChartPoint) int {
	best := -1
	for i, p := range points {
		if best < 0 || p.Value > points[best].Value {
			best = i
		}
	}
	return best
}

// BarLayout is the column split of one chart row.
type BarLayout struct {
	LabelWidth int
	BarWidth   int
	ValueWidth int
	NoteWidth  int
	Zero       int // column of the zero axis within the bar area
	Min, Max   float64
}

// LayoutBars computes the row layout for a series at the given total width.
// The value range always includes zero so negative bars extend left of the axis.
func LayoutBars(points []content.ChartPoint, unit string, width int) BarLayout {
	l := BarLayout{}
	for _, p := range points {
		l.LabelWidth = max(l.LabelWidth, textutil.VisualWidth(p.Category))
		l.ValueWidth = max(l.ValueWidth, textutil.VisualWidth(FormatValue(p.Value, unit)))
		l.Min = math.Min(l.Min, p.Value)
		l.Max = math.Max(l.Max, p.Value)
	}
	l.NoteWidth = min(max(width/4, 12), 32)
	l.BarWidth = width - l.LabelWidth - l.ValueWidth - l.NoteWidth - 4
	if l.BarWidth < 10 {
		l.NoteWidth = 0
		l.BarWidth = max(width-l.LabelWidth-l.ValueWidth-3, 4)
	}
	if span := l.Max - l.Min; span > 0 {
		l.Zero = int(math.Round(-l.Min / span * float64(l.BarWidth)))
	}
	return l
}

// barExtent returns the start column and length of a bar.
func (l BarLayout) barExtent(v float64) (start, length int) {
	span := l.Max - l.Min
	if span == 0 {
		return l.Zero, 0
	}
	length = int(math.Round(math.Abs(v) / span * float64(l.BarWidth)))
	if v != 0 && length == 0 {
		length = 1
	}
	if v < 0 {
		length = min(length, l.Zero)
		return l.Zero - length, length
	}
	return l.Zero, min(length, l.BarWidth-l.Zero)
}

// RenderBarChart draws a horizontal bar chart. Positive bars use the brand
// color, negative bars the loss color, and forecast bars a hatched glyph.
func RenderBarChart(chart content.Chart, width int) string {
	if len(chart.Points) == 0 {
		return Styles.Empty.Render("No data")
	}
	l := LayoutBars(chart.Points, chart.Unit, width)
	peak := Peak(chart.Points)

	pos := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBrand))
	neg := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorLoss))
	fc := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGold))

	rows := make([]string, 0, len(chart.Points))
	for i, p := range chart.Points {
		start, length := l.barExtent(p.Value)
		glyph, style := barGlyph, pos
		switch {
		case p.Forecast:
			glyph, style = forecastGlyph, fc
		case p.Value < 0:
			style = neg
		}

		var bar strings.Builder
		for col := 0; col < l.BarWidth; col++ {
			switch {
			case col >= start && col < start+length:
				bar.WriteString(style.Render(glyph))
			case col == l.Zero && l.Min < 0:
				bar.WriteString(Styles.Muted.Render(axisGlyph))
			default:
				bar.WriteByte(' ')
			}
		}

		label := textutil.PadLeftVisual(p.Category, l.LabelWidth)
		valueStyle := Styles.Normal
		if i == peak {
			valueStyle = Styles.Selected
		} else if p.Value < 0 {
			valueStyle = neg
		}
		value := valueStyle.Render(textutil.PadRightVisual(FormatValue(p.Value, chart.Unit), l.ValueWidth))

		row := Styles.Label.Render(label) + " " + bar.String() + " " + value
		if l.NoteWidth > 0 && p.Note != "" {
			row += " " + Styles.Note.Render(textutil.Truncate(p.Note, l.NoteWidth))
		}
		rows = append(rows, row)
	}

	legend := pos.Render(barGlyph) + Styles.Muted.Render(" Actual")
	if hasForecast(chart.Points) {
		legend += "   " + fc.Render(forecastGlyph) + Styles.Muted.Render(" Forecast")
	}
	if l.Min < 0 {
		legend += "   " + neg.Render(barGlyph) + Styles.Muted.Render(" Loss")
	}
	rows = append(rows, "", legend)
	return strings.Join(rows, "\n")
}

func hasForecast(points []content.ChartPoint) bool {
	for _, p := range points {
		if p.Forecast {
			return true
		}
	}
	return false
}
