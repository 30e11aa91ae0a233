package ui

import (
	"fmt"
	"strings"

	"execdeck/internal/calendar"
	"execdeck/internal/content"
	"execdeck/internal/nav"
	"execdeck/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	calendarColumns  = 4
	eventsPerCell    = 3
	calendarCellRows = eventsPerCell + 3 // border, month name, events, border
)

// calendarView shows the year as a 4x3 grid of month cells with one month
// focused. Focus wraps.
type calendarView struct {
	slide  content.Slide
	env    Env
	months [calendar.MonthsPerYear][]calendar.Event
	focus  *nav.Carousel
	width  int
	height int
}

func newCalendarView(s content.Slide, env Env, _ int) SlideView {
	var events []calendar.Event
	if s.Calendar != nil {
		events = s.Calendar.Events
	}
	focus, err := nav.NewCarousel(calendar.MonthsPerYear)
	if err != nil {
		// MonthsPerYear is never zero.
		panic(err)
	}
	return &calendarView{
		slide:  s,
		env:    env,
		months: calendar.Partition(events),
		focus:  focus,
	}
}

func (v *calendarView) Init() tea.Cmd { return nil }

func (v *calendarView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "]", "tab":
			v.focus.Next()
		case "[", "shift+tab":
			v.focus.Previous()
		}
	case tea.MouseMsg:
		if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress {
			return v, nil
		}
		if m, ok := v.monthAt(msg.X, msg.Y); ok {
			v.focus.Select(m)
		}
	}
	return v, nil
}

// gridTop is the first row of the month grid within the view.
func (v *calendarView) gridTop() int {
	return lipgloss.Height(renderHeader(v.slide, v.width)) + 1
}

func (v *calendarView) cellWidth() int {
	return cellWidth(v.width, calendarColumns)
}

func (v *calendarView) monthAt(x, y int) (int, bool) {
	y -= v.gridTop()
	if x < 0 || y < 0 {
		return 0, false
	}
	stride := v.cellWidth() + gridGap
	col, row := x/stride, y/calendarCellRows
	if col >= calendarColumns || x%stride >= v.cellWidth() {
		return 0, false
	}
	m := row*calendarColumns + col
	if m >= calendar.MonthsPerYear {
		return 0, false
	}
	return m, true
}

func (v *calendarView) View() string {
	cells := make([]string, calendar.MonthsPerYear)
	for m := range cells {
		cells[m] = v.renderMonth(m)
	}
	return stack(
		renderHeader(v.slide, v.width),
		grid(cells, calendarColumns),
		v.renderLegend(),
		v.renderFocused(),
	)
}

func (v *calendarView) renderMonth(m int) string {
	w := v.cellWidth()
	inner := w - 4
	events := v.months[m]

	lines := []string{Styles.Title.Render(strings.ToUpper(calendar.MonthName(m)[:3]))}
	switch {
	case len(events) == 0:
		lines = append(lines, Styles.Empty.Render("No events"))
	default:
		for i, e := range events {
			if i == eventsPerCell-1 && len(events) > eventsPerCell {
				lines = append(lines, Styles.Muted.Render(fmt.Sprintf("+%d more", len(events)-i)))
				break
			}
			lines = append(lines, v.eventLine(e, inner))
		}
	}
	for len(lines) < eventsPerCell+1 {
		lines = append(lines, "")
	}

	style := Styles.Card
	if m == v.focus.Active() {
		style = Styles.CardFocus
	}
	return style.Width(inner + 2).Render(strings.Join(lines, "\n"))
}

func (v *calendarView) eventLine(e calendar.Event, width int) string {
	prefix := CategoryStyle(e.Category).Render("●") + " " + Styles.Year.Render(textutil.PadLeftVisual(e.Day(), 2)) + " "
	return prefix + textutil.Truncate(e.Title, max(width-textutil.VisualWidthStyled(prefix), 1))
}

func (v *calendarView) renderLegend() string {
	items := make([]string, 0, len(calendar.Categories))
	for _, c := range calendar.Categories {
		items = append(items, CategoryStyle(c).Render("●")+" "+Styles.Muted.Render(c.Label()))
	}
	return strings.Join(items, "   ")
}

func (v *calendarView) renderFocused() string {
	m := v.focus.Active()
	year := ""
	if v.slide.Calendar != nil && v.slide.Calendar.Year > 0 {
		year = fmt.Sprintf(" %d", v.slide.Calendar.Year)
	}
	lines := []string{Styles.Eyebrow.Render(strings.ToUpper(calendar.MonthName(m)) + year)}
	events := v.months[m]
	if len(events) == 0 {
		lines = append(lines, Styles.Empty.Render("No events scheduled this month."))
	}
	for _, e := range events {
		lines = append(lines, CategoryStyle(e.Category).Render("●")+" "+
			Styles.Year.Render(textutil.PadRightVisual(e.Date, 7))+" "+
			Styles.Normal.Render(e.Title)+"  "+
			Styles.Muted.Render(e.Category.Label()))
	}
	lines = append(lines, Styles.Hint.Render("[ ] move month focus · click a month"))
	return strings.Join(lines, "\n")
}

func (v *calendarView) Slide() content.Slide { return v.slide }

func (v *calendarView) SetSize(width, height int) {
	v.width, v.height = width, height
}
