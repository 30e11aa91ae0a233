package ui

import (
	"fmt"
	"strings"

	"execdeck/internal/content"
	"execdeck/internal/ui/textutil"

	"github.com/charmbracelet/lipgloss"
)

const gridGap = 2

// countItems returns how many reveal slots a slide has.
func countItems(s content.Slide) int {
	n := 0
	for _, b := range s.Blocks {
		n += blockItems(b)
	}
	n += len(s.Timeline) + len(s.People) + len(s.Gallery)
	for _, t := range s.Tiers {
		n += len(t.Nodes)
	}
	if s.Department != nil {
		n += 1 + len(s.Department.Team)
	}
	return n
}

func blockItems(b content.Block) int {
	switch {
	case len(b.Bullets) > 0:
		return len(b.Bullets)
	case len(b.Cards) > 0:
		return len(b.Cards)
	case len(b.Stats) > 0:
		return len(b.Stats)
	case len(b.Panels) > 0:
		return len(b.Panels)
	case b.Quote != nil, b.Notes != "":
		return 1
	}
	return 0
}

// RenderSlide draws a slide with every item visible. Interactive slides are
// drawn in their initial state.
func RenderSlide(s content.Slide, env Env, width, height int) string {
	env.Reveal = false
	v := NewSlideView(s, env, 0)
	v.SetSize(width, height)
	return v.View()
}

func renderStatic(s content.Slide, env Env, width, height int, b *budget) string {
	switch s.Kind {
	case content.KindTitle:
		return renderTitle(s, env, width, height)
	case content.KindSection:
		return renderSection(s, width, height)
	case content.KindClosing:
		return renderClosing(s, width, height)
	case content.KindContent:
		return stack(renderHeader(s, width), renderBlocks(s.Blocks, env, width, b))
	case content.KindTimeline:
		return stack(renderHeader(s, width), renderTimeline(s.Timeline, width, b))
	case content.KindOrgStructure:
		return stack(renderHeader(s, width), renderOrg(s.Org, width))
	case content.KindHierarchy:
		return stack(renderHeader(s, width), renderHierarchy(s.Tiers, width, b))
	case content.KindPeople:
		return stack(renderHeader(s, width), renderPeople(s.People, env, width, b))
	case content.KindDepartment:
		return stack(renderHeader(s, width), renderDepartment(s.Department, env, width, b))
	case content.KindChart:
		return stack(renderHeader(s, width), renderChart(s, env, width, b))
	case content.KindGallery:
		return stack(renderHeader(s, width), renderGallery(s.Gallery, env, width, b))
	default:
		return stack(renderHeader(s, width), Styles.Empty.Render("Nothing to show for this slide."))
	}
}

// stack joins non-empty sections with a blank line between them.
func stack(parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, "\n\n")
}

func renderHeader(s content.Slide, width int) string {
	var lines []string
	if s.Eyebrow != "" {
		lines = append(lines, Styles.Rule.Render("━━━ ")+Styles.Eyebrow.Render(strings.ToUpper(s.Eyebrow)))
	}
	lines = append(lines, Styles.Title.Render(s.Title))
	if s.Subtitle != "" {
		lines = append(lines, Styles.Subtitle.Width(width).Render(s.Subtitle))
	}
	return strings.Join(lines, "\n")
}

func resolveDate(s content.Slide, env Env) string {
	if s.Date == "today" {
		return env.now().Format("January 2, 2006")
	}
	return s.Date
}

func renderTitle(s content.Slide, env Env, width, height int) string {
	rule := Styles.Rule.Render(strings.Repeat("━", min(24, width)))
	lines := []string{
		rule,
		"",
		Styles.Hero.Render(strings.ToUpper(s.Title)),
		Styles.Subtitle.Render(s.Subtitle),
		"",
		rule,
	}
	meta := s.Meta
	if d := resolveDate(s, env); d != "" {
		if meta != "" {
			meta += "  ·  "
		}
		meta += d
	}
	if meta != "" {
		lines = append(lines, "", Styles.Muted.Render(meta))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func renderSection(s content.Slide, width, height int) string {
	lines := []string{
		Styles.Eyebrow.Render(fmt.Sprintf("SECTION %02d", s.Number)),
		Styles.Rule.Render(strings.Repeat("─", 12)),
		"",
		Styles.Hero.Render(s.Title),
	}
	if s.Subtitle != "" {
		lines = append(lines, Styles.Subtitle.Render(s.Subtitle))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...))
}

func renderClosing(s content.Slide, width, height int) string {
	lines := []string{
		Styles.Hero.Render(s.Title),
	}
	if s.Subtitle != "" {
		lines = append(lines, Styles.Title.Render(s.Subtitle))
	}
	if len(s.Pillars) > 0 {
		pillars := make([]string, len(s.Pillars))
		for i, p := range s.Pillars {
			pillars[i] = Styles.Eyebrow.Render(strings.ToUpper(p))
		}
		lines = append(lines, "", strings.Join(pillars, Styles.Muted.Render("  •  ")))
	}
	if s.Footer != "" {
		lines = append(lines, "", Styles.Muted.Render(s.Footer))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// columns picks how many cells of at least minCell columns fit in width.
func columns(width, minCell, n int) int {
	cols := max((width+gridGap)/(minCell+gridGap), 1)
	return max(min(cols, n), 1)
}

// cellWidth returns the outer width of each cell in a grid of cols columns.
func cellWidth(width, cols int) int {
	return max((width-gridGap*(cols-1))/cols, 8)
}

// grid lays cells out row by row.
func grid(cells []string, cols int) string {
	if len(cells) == 0 {
		return ""
	}
	gap := strings.Repeat(" ", gridGap)
	var rows []string
	for i := 0; i < len(cells); i += cols {
		end := min(i+cols, len(cells))
		row := make([]string, 0, 2*(end-i))
		for j, c := range cells[i:end] {
			if j > 0 {
				row = append(row, gap)
			}
			row = append(row, c)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}

func renderBlocks(blocks []content.Block, env Env, width int, b *budget) string {
	parts := make([]string, 0, len(blocks))
	for _, blk := range blocks {
		var body string
		switch {
		case len(blk.Bullets) > 0:
			body = renderBullets(blk.Bullets, blk.Numbered, width, b)
		case len(blk.Cards) > 0:
			body = renderCards(blk.Cards, width, b)
		case len(blk.Stats) > 0:
			body = renderStats(blk.Stats, width, b)
		case blk.Quote != nil:
			if b.take() {
				body = renderQuote(*blk.Quote, width)
			}
		case len(blk.Panels) > 0:
			body = renderPanels(blk.Panels, width, b)
		case blk.Notes != "":
			if b.take() {
				body = env.Markdown.Render(blk.Notes, width)
			}
		}
		if body == "" {
			continue
		}
		if blk.Heading != "" {
			body = Styles.Eyebrow.Render(blk.Heading) + "\n" + body
		}
		parts = append(parts, body)
	}
	return stack(parts...)
}

func renderBullets(items []string, numbered bool, width int, b *budget) string {
	var lines []string
	for i, item := range items {
		if !b.take() {
			break
		}
		marker := Styles.Rule.Render("▸ ")
		if numbered {
			marker = Styles.Value.Render(fmt.Sprintf("%02d ", i+1))
		}
		text := Styles.Normal.Width(max(width-lipgloss.Width(marker), 10)).Render(item)
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, marker, text))
	}
	return strings.Join(lines, "\n")
}

func renderCards(cards []content.Card, width int, b *budget) string {
	cols := columns(width, 24, len(cards))
	inner := cellWidth(width, cols) - 4
	var cells []string
	for _, c := range cards {
		if !b.take() {
			break
		}
		value := TrendStyle(c.Trend).Render(c.Value)
		if icon := TrendIcon(c.Trend); icon != "" {
			value += " " + TrendStyle(c.Trend).Render(icon)
		}
		body := lipgloss.JoinVertical(lipgloss.Left,
			Styles.Label.Render(textutil.Truncate(strings.ToUpper(c.Label), inner)),
			value,
			Styles.Muted.Width(inner).Render(c.Subtitle),
		)
		cells = append(cells, Styles.Card.Width(inner+2).Render(body))
	}
	return grid(cells, cols)
}

func renderStats(stats []content.Stat, width int, b *budget) string {
	cols := columns(width, 22, len(stats))
	inner := cellWidth(width, cols) - 4
	var cells []string
	for _, s := range stats {
		if !b.take() {
			break
		}
		lines := []string{
			Styles.Value.Render(s.Value),
			Styles.Title.Width(inner).Render(s.Label),
		}
		if s.Sublabel != "" {
			lines = append(lines, Styles.Muted.Width(inner).Render(s.Sublabel))
		}
		cells = append(cells, Styles.Card.Width(inner+2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	}
	return grid(cells, cols)
}

func renderQuote(q content.Quote, width int) string {
	lines := []string{Styles.Normal.Render("“" + q.Text + "”")}
	attribution := q.Author
	if q.Role != "" {
		attribution += ", " + q.Role
	}
	if attribution != "" {
		lines = append(lines, "", Styles.Muted.Render(attribution))
	}
	return Styles.Quote.Width(max(width-3, 10)).Render(strings.Join(lines, "\n"))
}

func renderPanels(panels []content.Panel, width int, b *budget) string {
	cols := columns(width, 30, len(panels))
	inner := cellWidth(width, cols) - 4
	var cells []string
	for _, p := range panels {
		if !b.take() {
			break
		}
		title := Styles.Title.Render(p.Title)
		var lines []string
		if p.Tag != "" && textutil.VisualWidth(p.Tag) <= 3 {
			title = Styles.Badge.Render(p.Tag) + " " + title
		}
		lines = append(lines, title)
		if p.Value != "" {
			lines = append(lines, Styles.Value.Width(inner).Render(p.Value))
		}
		if p.Body != "" {
			lines = append(lines, Styles.Muted.Width(inner).Render(p.Body))
		}
		if p.Tag != "" && textutil.VisualWidth(p.Tag) > 3 {
			lines = append(lines, Styles.Note.Width(inner).Render(p.Tag))
		}
		cells = append(cells, Styles.Card.Width(inner+2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	}
	return grid(cells, cols)
}

func renderTimeline(items []content.Milestone, width int, b *budget) string {
	yearWidth := 0
	for _, m := range items {
		yearWidth = max(yearWidth, textutil.VisualWidth(m.Year))
	}
	var lines []string
	for i, m := range items {
		if !b.take() {
			break
		}
		dot := Styles.Rule.Render("●")
		if i == len(items)-1 {
			dot = Styles.Active.Render("◆")
		}
		head := Styles.Year.Render(textutil.PadLeftVisual(m.Year, yearWidth)) + " " + dot + " " + Styles.Title.Render(m.Title)
		rest := width - lipgloss.Width(head) - 2
		detail := ""
		if rest > 8 && len(m.Items) > 0 {
			detail = "  " + Styles.Muted.Render(textutil.Truncate(strings.Join(m.Items, ", "), rest))
		}
		lines = append(lines, head+detail)
	}
	return strings.Join(lines, "\n")
}

func renderOrg(org *content.OrgStructure, width int) string {
	if org == nil {
		return ""
	}
	var leaders []string
	for _, l := range org.Leadership {
		style := Styles.Card
		if l.Primary {
			style = Styles.CardFocus
		}
		body := lipgloss.JoinVertical(lipgloss.Left,
			Styles.Badge.Render(l.Role),
			Styles.Title.Render(l.Name),
			Styles.Muted.Render("Tenure: "+l.Tenure),
		)
		leaders = append(leaders, style.Render(body))
	}

	cols := columns(width, 26, len(org.Divisions))
	inner := cellWidth(width, cols) - 4
	var divisions []string
	for _, d := range org.Divisions {
		lines := []string{
			Styles.Title.Width(inner).Render(d.Title),
			Styles.Muted.Width(inner).Render(d.Head),
			"",
		}
		for _, u := range d.Units {
			lines = append(lines, StatusStyle(u.Status).Render(StatusIcon(u.Status))+" "+textutil.Truncate(u.Name, inner-2))
		}
		divisions = append(divisions, Styles.Card.Width(inner+2).Render(strings.Join(lines, "\n")))
	}

	var support []string
	for _, f := range org.Support {
		support = append(support, Styles.Eyebrow.Render(f.Title)+" "+Styles.Muted.Render(f.Head))
	}

	legend := make([]string, 0, len(content.UnitStatuses))
	for _, s := range content.UnitStatuses {
		legend = append(legend, StatusStyle(s).Render(StatusIcon(s))+" "+Styles.Muted.Render(s.Label()))
	}

	return stack(
		grid(leaders, max(len(leaders), 1)),
		grid(divisions, cols),
		strings.Join(support, "    "),
		strings.Join(legend, "   "),
	)
}

func renderHierarchy(tiers []content.Tier, width int, b *budget) string {
	var rows []string
	for i, t := range tiers {
		var nodes []string
		for _, n := range t.Nodes {
			if !b.take() {
				break
			}
			style := Styles.Card
			if i == 0 {
				style = Styles.CardFocus
			}
			body := lipgloss.JoinVertical(lipgloss.Center,
				Styles.Title.Render(n.Title),
				Styles.Muted.Render(n.Role),
			)
			nodes = append(nodes, style.Align(lipgloss.Center).Render(body))
		}
		if len(nodes) == 0 {
			break
		}
		if i > 0 {
			rows = append(rows, lipgloss.PlaceHorizontal(width, lipgloss.Center, Styles.Muted.Render("│")))
		}
		if t.Label != "" {
			rows = append(rows, lipgloss.PlaceHorizontal(width, lipgloss.Center, Styles.Label.Render(strings.ToUpper(t.Label))))
		}
		for _, line := range wrapRow(nodes, width) {
			rows = append(rows, lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		}
	}
	return strings.Join(rows, "\n")
}

// wrapRow joins boxes horizontally, starting a new row when width runs out.
func wrapRow(boxes []string, width int) []string {
	var rows []string
	var cur []string
	curWidth := 0
	for _, box := range boxes {
		w := lipgloss.Width(box)
		if len(cur) > 0 && curWidth+1+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cur...))
			cur, curWidth = nil, 0
		}
		if len(cur) > 0 {
			cur = append(cur, " ")
			curWidth++
		}
		cur = append(cur, box)
		curWidth += w
	}
	if len(cur) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cur...))
	}
	return rows
}

func personCard(p content.Person, env Env, w int, tileHeight int) string {
	inner := w - 4
	name := p.Name
	if p.Rank != "" {
		name = p.Rank + " " + name
	}
	lines := []string{
		env.Assets.Tile(p.Image, initials(p.Name), inner, tileHeight),
		Styles.Title.Width(inner).Render(name),
		Styles.Muted.Width(inner).Render(p.Title),
	}
	style := Styles.Card
	if p.Highlight {
		lines = append([]string{Styles.Badge.Render("Chairman")}, lines...)
		style = Styles.CardFocus
	}
	return style.Width(inner + 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// initials is the placeholder caption for a missing portrait.
func initials(name string) string {
	var out []rune
	for _, f := range strings.Fields(name) {
		r := []rune(f)[0]
		if r >= 'A' && r <= 'Z' {
			out = append(out, r)
		}
		if len(out) == 3 {
			break
		}
	}
	return string(out)
}

func renderPeople(people []content.Person, env Env, width int, b *budget) string {
	cols := columns(width, 24, len(people))
	w := cellWidth(width, cols)
	var cells []string
	for _, p := range people {
		if !b.take() {
			break
		}
		cells = append(cells, personCard(p, env, w, 4))
	}
	return grid(cells, cols)
}

func renderDepartment(d *content.Department, env Env, width int, b *budget) string {
	if d == nil || !b.take() {
		return ""
	}
	head := personCard(d.Head, env, min(width, 40), 6)
	head = lipgloss.PlaceHorizontal(width, lipgloss.Center, head)

	cols := columns(width, 22, len(d.Team))
	w := cellWidth(width, cols)
	var cells []string
	for _, p := range d.Team {
		if !b.take() {
			break
		}
		cells = append(cells, personCard(p, env, w, 3))
	}
	return stack(head, grid(cells, cols))
}

func renderChart(s content.Slide, env Env, width int, b *budget) string {
	if s.Chart == nil {
		return ""
	}
	var summary string
	if i := Peak(s.Chart.Points); i >= 0 {
		p := s.Chart.Points[i]
		summary = Styles.Label.Render("PEAK ") + Styles.Value.Render(FormatValue(p.Value, s.Chart.Unit)) +
			Styles.Muted.Render(" in "+p.Category)
	}
	return stack(
		summary,
		RenderBarChart(*s.Chart, width),
		renderBlocks(s.Blocks, env, width, b),
		Styles.Muted.Italic(true).Render(s.Footer),
	)
}

func renderGallery(items []content.GalleryItem, env Env, width int, b *budget) string {
	cols := columns(width, 28, len(items))
	inner := cellWidth(width, cols) - 4
	var cells []string
	for _, g := range items {
		if !b.take() {
			break
		}
		caption := g.Caption
		if caption == "" {
			caption = g.Title
		}
		lines := []string{env.Assets.Tile(g.Image, caption, inner, 5)}
		if g.Date != "" {
			lines = append(lines, Styles.Badge.Render(g.Date))
		}
		lines = append(lines,
			Styles.Title.Width(inner).Render(g.Title),
			Styles.Muted.Width(inner).Render(g.Description),
		)
		cells = append(cells, Styles.Card.Width(inner+2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	}
	return grid(cells, cols)
}
