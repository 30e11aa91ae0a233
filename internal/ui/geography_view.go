package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"execdeck/internal/content"
	"execdeck/internal/geo"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	landGlyph  = "·"
	waterGlyph = " "
)

// geographyView shows the location map with one location highlighted.
// Selection wraps and is local to the visit.
type geographyView struct {
	slide  content.Slide
	env    Env
	viewer *geo.Viewer
	width  int
	height int
}

func newGeographyView(s content.Slide, env Env, _ int) (*geographyView, error) {
	if s.Geography == nil {
		return nil, errors.New("no geography payload")
	}
	viewer, err := geo.NewViewer(s.Geography.Locations)
	if err != nil {
		return nil, err
	}
	return &geographyView{slide: s, env: env, viewer: viewer}, nil
}

func (v *geographyView) Init() tea.Cmd { return nil }

func (v *geographyView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch k := msg.String(); k {
		case "]", "tab":
			v.viewer.Next()
		case "[", "shift+tab":
			v.viewer.Previous()
		default:
			if n, err := strconv.Atoi(k); err == nil {
				v.viewer.Select(n - 1)
			}
		}
	case tea.MouseMsg:
		if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress {
			return v, nil
		}
		grid, top := v.layout()
		cell := geo.Cell{Col: msg.X, Row: msg.Y - top}
		if cell.Row < 0 || cell.Row >= grid.Height || cell.Col < 0 || cell.Col >= grid.Width {
			return v, nil
		}
		if i, ok := grid.MarkerAt(cell); ok {
			v.viewer.Select(i)
		}
	}
	return v, nil
}

// layout rasterizes the map for the current size and returns the row the map
// starts on.
func (v *geographyView) layout() (geo.Grid, int) {
	header := renderHeader(v.slide, v.width)
	top := lipgloss.Height(header) + 1
	mapWidth := max(v.width*3/5, 20)
	mapHeight := max(min(v.height-top-3, mapWidth/2), 8)
	g := v.slide.Geography
	return geo.Rasterize(g.Outline, g.Locations, mapWidth, mapHeight), top
}

func (v *geographyView) View() string {
	grid, _ := v.layout()
	header := renderHeader(v.slide, v.width)
	detail := v.renderDetail(max(v.width-grid.Width-2, 20))
	body := lipgloss.JoinHorizontal(lipgloss.Top, v.renderMap(grid), "  ", detail)
	return stack(header, body, v.renderLegend())
}

func (v *geographyView) renderMap(g geo.Grid) string {
	markers := make(map[geo.Cell]int, len(g.Markers))
	for _, m := range g.Markers {
		if _, taken := markers[m.Cell]; !taken || m.Index == v.viewer.ActiveIndex() {
			markers[m.Cell] = m.Index
		}
	}
	var b strings.Builder
	for row := 0; row < g.Height; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		for col := 0; col < g.Width; col++ {
			cell := geo.Cell{Col: col, Row: row}
			if i, ok := markers[cell]; ok {
				b.WriteString(v.markerGlyph(i))
				continue
			}
			if g.Land[row][col] {
				b.WriteString(Styles.Land.Render(landGlyph))
			} else {
				b.WriteString(waterGlyph)
			}
		}
	}
	return b.String()
}

func (v *geographyView) markerGlyph(i int) string {
	label := strconv.Itoa(i + 1)
	if i >= 9 {
		label = "•"
	}
	if i == v.viewer.ActiveIndex() {
		return Styles.Active.Reverse(true).Render(label)
	}
	return Styles.Marker.Render(label)
}

func (v *geographyView) renderDetail(width int) string {
	loc := v.viewer.Active()
	inner := width - 4
	lines := []string{
		KindStyle(loc.Kind).Render(loc.Kind.Label()),
		"",
		Styles.Title.Width(inner).Render(loc.Name),
		Styles.Muted.Render(loc.Region),
		Styles.Label.Render(formatCoordinates(loc.Coordinates)),
	}
	if len(loc.Units) > 0 {
		lines = append(lines, "", Styles.Eyebrow.Render("UNITS"))
		for _, u := range loc.Units {
			lines = append(lines, Styles.Rule.Render("▸ ")+Styles.Normal.Render(u))
		}
	}
	lines = append(lines, "",
		Styles.Indicator.Render(fmt.Sprintf("%d / %d", v.viewer.ActiveIndex()+1, len(v.viewer.Locations()))),
	)
	return Styles.Box.Width(inner + 2).Render(strings.Join(lines, "\n"))
}

func (v *geographyView) renderLegend() string {
	items := make([]string, 0, len(v.viewer.Locations()))
	for i, l := range v.viewer.Locations() {
		label := fmt.Sprintf("%d %s", i+1, l.ShortName())
		if i == v.viewer.ActiveIndex() {
			items = append(items, Styles.Active.Render(label))
		} else {
			items = append(items, Styles.Muted.Render(label))
		}
	}
	return strings.Join(items, "   ") + "\n" + Styles.Hint.Render("[ ] cycle locations · 1-9 jump · click a marker")
}

func formatCoordinates(p geo.Point) string {
	ns, ew := "N", "E"
	lat, lon := p.Lat, p.Lon
	if lat < 0 {
		ns, lat = "S", -lat
	}
	if lon < 0 {
		ew, lon = "W", -lon
	}
	return fmt.Sprintf("%.2f°%s  %.2f°%s", lat, ns, lon, ew)
}

func (v *geographyView) Slide() content.Slide { return v.slide }

func (v *geographyView) SetSize(width, height int) {
	v.width, v.height = width, height
}
