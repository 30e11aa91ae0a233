package ui

import (
	"context"
	"strings"

	"execdeck/internal/content"
	"execdeck/internal/input"
	"execdeck/internal/nav"
	"execdeck/internal/telemetry"
	"execdeck/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Navigation triggers recorded on spans and in logs.
const (
	TriggerNext          = "next"
	TriggerPrevious      = "previous"
	TriggerFirst         = "first"
	TriggerLast          = "last"
	TriggerClickNext     = "click-next"
	TriggerClickPrevious = "click-previous"
)

const bodyPadding = 2

// DeckView presents one slide at a time with a navigation bar. It owns the
// deck position and the live SlideView of the current visit.
type DeckView struct {
	slides   *nav.Registry[content.Slide]
	deck     *nav.Deck
	env      Env
	recorder *telemetry.Recorder
	title    string
	showHint bool

	current SlideView
	gen     int
	builds  int // views built so far; a no-op move must not build one
	sub     *input.Subscription
	pending tea.Cmd

	width  int
	height int
}

// DeckOptions configures a DeckView.
type DeckOptions struct {
	Title    string
	ShowHint bool
	Recorder *telemetry.Recorder
}

// NewDeckView creates a deck positioned on the first slide.
func NewDeckView(slides *nav.Registry[content.Slide], env Env, opts DeckOptions) (*DeckView, error) {
	deck, err := nav.NewDeck(slides.Len())
	if err != nil {
		return nil, err
	}
	d := &DeckView{
		slides:   slides,
		deck:     deck,
		env:      env,
		recorder: opts.Recorder,
		title:    opts.Title,
		showHint: opts.ShowHint,
		width:    80,
		height:   24,
	}
	d.current = d.build()
	return d, nil
}

// Mount subscribes the deck to navigation keys on bus.
func (d *DeckView) Mount(bus *input.Bus) {
	if d.sub != nil {
		return
	}
	d.sub = bus.Subscribe(d.handleKey)
}

// Unmount releases the key subscription. Keys published afterwards are not
// seen by this deck.
func (d *DeckView) Unmount() {
	d.sub.Release()
	d.sub = nil
}

// Mounted reports whether the deck is subscribed to a bus.
func (d *DeckView) Mounted() bool { return d.sub != nil }

// Position returns the 0-based current slide index.
func (d *DeckView) Position() int { return d.deck.Position() }

// Len returns the number of slides.
func (d *DeckView) Len() int { return d.deck.Len() }

// Current returns the live view of the current slide.
func (d *DeckView) Current() SlideView { return d.current }

// TakeCmd returns and clears the command produced by the last key handled
// through the bus.
func (d *DeckView) TakeCmd() tea.Cmd {
	cmd := d.pending
	d.pending = nil
	return cmd
}

func (d *DeckView) handleKey(k input.Key) bool {
	switch k {
	case input.KeyNext:
		d.pending = d.navigate(TriggerNext, d.deck.Next)
	case input.KeyPrevious:
		d.pending = d.navigate(TriggerPrevious, d.deck.Previous)
	case input.KeyFirst:
		d.pending = d.navigate(TriggerFirst, d.deck.First)
	case input.KeyLast:
		d.pending = d.navigate(TriggerLast, d.deck.Last)
	default:
		return false
	}
	return true
}

// navigate applies move and, when the position actually changed, builds a
// fresh view for the new slide.
func (d *DeckView) navigate(trigger string, move func() bool) tea.Cmd {
	from := d.deck.Position()
	if !move() {
		return nil
	}
	to := d.deck.Position()
	d.current = d.build()

	key := d.current.Slide().Key
	d.recorder.Navigation(context.Background(), from, to, trigger, key)
	d.env.logger().Debug("slide changed",
		zap.Int("from", from),
		zap.Int("to", to),
		zap.String("trigger", trigger),
		zap.String("slide", key),
	)
	return d.current.Init()
}

func (d *DeckView) build() SlideView {
	d.gen++
	d.builds++
	v := NewSlideView(d.slides.At(d.deck.Position()), d.env, d.gen)
	v.SetSize(d.bodySize())
	return v
}

func (d *DeckView) hintRows() int {
	if d.showHint {
		return 1
	}
	return 0
}

func (d *DeckView) bodySize() (int, int) {
	return max(d.width-2*bodyPadding, 10), max(d.height-d.hintRows()-2, 3)
}

// Init implements View.
func (d *DeckView) Init() tea.Cmd { return d.current.Init() }

// Update implements View.
func (d *DeckView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width, d.height = msg.Width, msg.Height
		d.current.SetSize(d.bodySize())
		return d, nil
	case tea.MouseMsg:
		return d, d.handleMouse(msg)
	}
	_, cmd := d.current.Update(msg)
	return d, cmd
}

func (d *DeckView) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Y == d.height-1 {
		if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress {
			return nil
		}
		switch newNavBar(d.deck, d.width).hit(msg.X) {
		case buttonPrevious:
			return d.navigate(TriggerClickPrevious, d.deck.Previous)
		case buttonNext:
			return d.navigate(TriggerClickNext, d.deck.Next)
		}
		return nil
	}
	local := msg
	local.X -= bodyPadding
	local.Y -= d.hintRows()
	if local.X < 0 || local.Y < 0 {
		return nil
	}
	_, cmd := d.current.Update(local)
	return cmd
}

// View implements View.
func (d *DeckView) View() string {
	bw, bh := d.bodySize()
	body := textutil.ClipLines(d.current.View(), bh)
	body = lipgloss.NewStyle().
		Padding(0, bodyPadding).
		Width(bw + 2*bodyPadding).
		Height(bh).
		MaxHeight(bh).
		Render(body)

	var parts []string
	if d.showHint {
		parts = append(parts, d.renderHint())
	}
	parts = append(parts, body, "", newNavBar(d.deck, d.width).line)
	return strings.Join(parts, "\n")
}

func (d *DeckView) renderHint() string {
	const keys = "←/→ navigate · home/end jump · ? help · q quit"
	gap := d.width - textutil.VisualWidth(d.title) - textutil.VisualWidth(keys)
	if gap < 1 {
		return Styles.Hint.Render(textutil.Truncate(keys, d.width))
	}
	return Styles.Eyebrow.Render(d.title) + strings.Repeat(" ", gap) + Styles.Hint.Render(keys)
}
