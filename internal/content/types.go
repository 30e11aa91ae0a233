package content

import (
	"execdeck/internal/calendar"
	"execdeck/internal/enumutil"
	"execdeck/internal/geo"

	"gopkg.in/yaml.v3"
)

// Deck is the whole presentation as authored.
type Deck struct {
	Title        string  `yaml:"title"`
	Organization string  `yaml:"organization"`
	Slides       []Slide `yaml:"slides"`
}

// Slide is one slide descriptor. Which payload fields are used depends on Kind.
type Slide struct {
	Key      string `yaml:"key"`
	Kind     Kind   `yaml:"kind"`
	Eyebrow  string `yaml:"eyebrow"`
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle"`
	Meta     string `yaml:"meta"`
	Date     string `yaml:"date"` // "today" is resolved at render time
	Number   int    `yaml:"number"`
	Footer   string `yaml:"footer"`

	Blocks     []Block       `yaml:"blocks"`
	Timeline   []Milestone   `yaml:"timeline"`
	Org        *OrgStructure `yaml:"org"`
	Tiers      []Tier        `yaml:"tiers"`
	People     []Person      `yaml:"people"`
	Department *Department   `yaml:"department"`
	Chart      *Chart        `yaml:"chart"`
	Geography  *Geography    `yaml:"geography"`
	Calendar   *Calendar     `yaml:"calendar"`
	Gallery    []GalleryItem `yaml:"gallery"`
	Pillars    []string      `yaml:"pillars"`
}

// Block is one section of a content slide. Exactly one payload is set.
type Block struct {
	Heading  string   `yaml:"heading"`
	Numbered bool     `yaml:"numbered"`
	Bullets  []string `yaml:"bullets"`
	Cards    []Card   `yaml:"cards"`
	Stats    []Stat   `yaml:"stats"`
	Quote    *Quote   `yaml:"quote"`
	Panels   []Panel  `yaml:"panels"`
	Notes    string   `yaml:"notes"` // markdown
}

// Card is a labelled figure with an optional trend.
type Card struct {
	Label    string `yaml:"label"`
	Value    string `yaml:"value"`
	Subtitle string `yaml:"subtitle"`
	Trend    Trend  `yaml:"trend"`
}

// Stat is a headline number.
type Stat struct {
	Value    string `yaml:"value"`
	Label    string `yaml:"label"`
	Sublabel string `yaml:"sublabel"`
}

// Quote is an attributed statement.
type Quote struct {
	Text   string `yaml:"text"`
	Author string `yaml:"author"`
	Role   string `yaml:"role"`
}

// Panel is a titled description card, optionally with a highlighted value and tag.
type Panel struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
	Value string `yaml:"value"`
	Tag   string `yaml:"tag"`
}

// Milestone is one point on the heritage timeline.
type Milestone struct {
	Year  string   `yaml:"year"`
	Title string   `yaml:"title"`
	Items []string `yaml:"items"`
}

// OrgStructure is the business structure: leadership, divisions and support functions.
type OrgStructure struct {
	Leadership []Leader    `yaml:"leadership"`
	Divisions  []Division  `yaml:"divisions"`
	Support    []Function  `yaml:"support"`
}

// Leader is a top-level office holder.
type Leader struct {
	Role    string `yaml:"role"`
	Name    string `yaml:"name"`
	Tenure  string `yaml:"tenure"`
	Primary bool   `yaml:"primary"`
}

// Division groups business units under an executive director.
type Division struct {
	Title string `yaml:"title"`
	Head  string `yaml:"head"`
	Units []Unit `yaml:"units"`
}

// Unit is a business unit with its profitability status.
type Unit struct {
	Name   string     `yaml:"name"`
	Status UnitStatus `yaml:"status"`
}

// Function is a support function and its head.
type Function struct {
	Title string `yaml:"title"`
	Head  string `yaml:"head"`
}

// Tier is one level of a governance hierarchy.
type Tier struct {
	Label string `yaml:"label"`
	Nodes []Node `yaml:"nodes"`
}

// Node is a position in a hierarchy tier.
type Node struct {
	Title string `yaml:"title"`
	Role  string `yaml:"role"`
}

// Person is a named individual with an optional portrait.
type Person struct {
	Name      string `yaml:"name"`
	Title     string `yaml:"title"`
	Rank      string `yaml:"rank"`
	Image     string `yaml:"image"`
	Highlight bool   `yaml:"highlight"`
}

// Department is a leadership slide: a head and their team.
type Department struct {
	Head Person   `yaml:"head"`
	Team []Person `yaml:"team"`
}

// Chart is a categorical series for the bar chart renderer.
type Chart struct {
	Unit   string       `yaml:"unit"`
	Points []ChartPoint `yaml:"points"`
}

// ChartPoint is one bar.
type ChartPoint struct {
	Category string  `yaml:"category"`
	Value    float64 `yaml:"value"`
	Note     string  `yaml:"note"`
	Forecast bool    `yaml:"forecast"`
}

// Geography is the map slide payload.
type Geography struct {
	Outline   geo.Polygon    `yaml:"outline"`
	Locations []geo.Location `yaml:"locations"`
}

// Calendar is the schedule slide payload.
type Calendar struct {
	Year   int              `yaml:"year"`
	Events []calendar.Event `yaml:"events"`
}

// GalleryItem is an image card.
type GalleryItem struct {
	Title       string `yaml:"title"`
	Image       string `yaml:"image"`
	Date        string `yaml:"date"`
	Description string `yaml:"description"`
	Caption     string `yaml:"caption"` // placeholder text when the image is missing
}

// Trend marks a card figure as moving up, down or flat.
type Trend int

const (
	TrendNone Trend = iota
	TrendPositive
	TrendNegative
)

func (t Trend) String() string {
	switch t {
	case TrendPositive:
		return "positive"
	case TrendNegative:
		return "negative"
	default:
		return "none"
	}
}

// ParseTrend parses a trend name.
func ParseTrend(s string) (Trend, error) {
	switch s {
	case "", "none":
		return TrendNone, nil
	case "positive":
		return TrendPositive, nil
	case "negative":
		return TrendNegative, nil
	default:
		return 0, enumutil.ParseEnumError("trend", s)
	}
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Trend) UnmarshalYAML(node *yaml.Node) error {
	v, err := enumutil.UnmarshalEnumYAML(node, ParseTrend)
	if err != nil {
		return err
	}
	*t = v
	return nil
}
