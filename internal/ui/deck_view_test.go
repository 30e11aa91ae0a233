package ui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"execdeck/internal/content"
	"execdeck/internal/input"
	"execdeck/internal/nav"
	"execdeck/internal/telemetry"

	tea "github.com/charmbracelet/bubbletea"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

var fixedNow = time.Date(2026, time.March, 4, 9, 0, 0, 0, time.UTC)

func testEnv() Env {
	return Env{
		Logger: zap.NewNop(),
		Now:    func() time.Time { return fixedNow },
	}
}

// sectionSlides returns n placeholder section slides.
func sectionSlides(n int) []content.Slide {
	slides := make([]content.Slide, n)
	for i := range slides {
		slides[i] = content.Slide{
			Key:    fmt.Sprintf("s%02d", i),
			Kind:   content.KindSection,
			Number: i + 1,
			Title:  fmt.Sprintf("Section %d", i+1),
		}
	}
	return slides
}

func newTestDeck(t *testing.T, slides []content.Slide, opts DeckOptions) (*DeckView, *input.Bus) {
	t.Helper()
	reg, err := nav.NewRegistry(slides...)
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	d, err := NewDeckView(reg, testEnv(), opts)
	if err != nil {
		t.Fatalf("NewDeckView: %v", err)
	}
	d.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	bus := input.NewBus()
	d.Mount(bus)
	t.Cleanup(d.Unmount)
	return d, bus
}

func TestDeckView_NextClampsAtLastSlide(t *testing.T) {
	d, bus := newTestDeck(t, sectionSlides(36), DeckOptions{})

	for i := 0; i < 35; i++ {
		bus.Publish(input.KeyNext)
	}
	if got := d.Position(); got != 35 {
		t.Fatalf("position after 35 x next = %d, want 35", got)
	}
	builds, view := d.builds, d.Current()

	bus.Publish(input.KeyNext)
	if got := d.Position(); got != 35 {
		t.Errorf("position after extra next = %d, want 35", got)
	}
	if d.builds != builds || d.Current() != view {
		t.Error("no-op next must keep the current slide view")
	}
	if cmd := d.TakeCmd(); cmd != nil {
		t.Error("no-op next should not produce a command")
	}
}

func TestDeckView_HomeAndEnd(t *testing.T) {
	d, bus := newTestDeck(t, sectionSlides(36), DeckOptions{})

	for i := 0; i < 10; i++ {
		bus.Publish(input.KeyNext)
	}
	bus.Publish(input.KeyFirst)
	if got := d.Position(); got != 0 {
		t.Errorf("home: position = %d, want 0", got)
	}
	bus.Publish(input.KeyLast)
	if got := d.Position(); got != 35 {
		t.Errorf("end: position = %d, want 35", got)
	}
	bus.Publish(input.KeyPrevious)
	if got := d.Position(); got != 34 {
		t.Errorf("previous: position = %d, want 34", got)
	}
}

func TestDeckView_PreviousAtStartKeepsView(t *testing.T) {
	d, bus := newTestDeck(t, sectionSlides(3), DeckOptions{})
	view := d.Current()

	bus.Publish(input.KeyPrevious)
	bus.Publish(input.KeyFirst)
	if d.Position() != 0 || d.Current() != view || d.builds != 1 {
		t.Errorf("position=%d builds=%d; boundary moves must not rebuild", d.Position(), d.builds)
	}
}

func TestDeckView_FreshViewPerTransition(t *testing.T) {
	d, bus := newTestDeck(t, sectionSlides(3), DeckOptions{})
	first := d.Current()

	bus.Publish(input.KeyNext)
	second := d.Current()
	bus.Publish(input.KeyPrevious)
	back := d.Current()

	if first == second || second == back || first == back {
		t.Error("each real transition must build a new slide view")
	}
	if back.Slide().Key != "s00" {
		t.Errorf("back on %q, want s00", back.Slide().Key)
	}
	if d.builds != 3 {
		t.Errorf("builds = %d, want 3", d.builds)
	}
}

func TestDeckView_SingleSlideDeck(t *testing.T) {
	d, bus := newTestDeck(t, sectionSlides(1), DeckOptions{})

	for _, k := range []input.Key{input.KeyNext, input.KeyPrevious, input.KeyFirst, input.KeyLast} {
		bus.Publish(k)
	}
	if d.Position() != 0 || d.builds != 1 {
		t.Errorf("position=%d builds=%d, want 0 and 1", d.Position(), d.builds)
	}
	bar := newNavBar(d.deck, 80)
	if bar.canPrev || bar.canNext {
		t.Error("both buttons should be disabled on a one-slide deck")
	}
}

func TestDeckView_EmptyRegistryFails(t *testing.T) {
	if _, err := nav.NewRegistry[content.Slide](); err == nil {
		t.Fatal("expected error for empty registry")
	}
}

func TestDeckView_UnmountStopsListening(t *testing.T) {
	defer goleak.VerifyNone(t)

	reg, err := nav.NewRegistry(sectionSlides(5)...)
	if err != nil {
		t.Fatal(err)
	}
	d, err := NewDeckView(reg, testEnv(), DeckOptions{})
	if err != nil {
		t.Fatal(err)
	}
	bus := input.NewBus()

	d.Mount(bus)
	d.Mount(bus) // second mount is a no-op
	if bus.Len() != 1 || !d.Mounted() {
		t.Fatalf("bus.Len() = %d after mount, want 1", bus.Len())
	}
	bus.Publish(input.KeyNext)
	if d.Position() != 1 {
		t.Fatalf("mounted deck did not move: %d", d.Position())
	}

	d.Unmount()
	d.Unmount() // idempotent
	if consumed := bus.Publish(input.KeyNext); consumed {
		t.Error("key consumed after unmount")
	}
	if d.Position() != 1 {
		t.Errorf("position changed after unmount: %d", d.Position())
	}
	if bus.Len() != 0 || d.Mounted() {
		t.Errorf("bus.Len() = %d after unmount, want 0", bus.Len())
	}
}

func TestDeckView_NavBarButtons(t *testing.T) {
	d, _ := newTestDeck(t, sectionSlides(3), DeckOptions{})
	barRow := 23

	bar := newNavBar(d.deck, 80)
	if bar.canPrev || !bar.canNext {
		t.Fatalf("at start: canPrev=%v canNext=%v", bar.canPrev, bar.canNext)
	}

	// Disabled previous button rejects the click.
	d.Update(click(bar.prevStart+1, barRow))
	if d.Position() != 0 || d.builds != 1 {
		t.Fatalf("click on disabled previous moved the deck to %d", d.Position())
	}

	d.Update(click(bar.nextStart+1, barRow))
	d.Update(click(bar.nextStart+1, barRow))
	if d.Position() != 2 {
		t.Fatalf("position after two next clicks = %d, want 2", d.Position())
	}

	bar = newNavBar(d.deck, 80)
	if !bar.canPrev || bar.canNext {
		t.Fatalf("at end: canPrev=%v canNext=%v", bar.canPrev, bar.canNext)
	}
	builds := d.builds
	d.Update(click(bar.nextStart+1, barRow))
	if d.Position() != 2 || d.builds != builds {
		t.Error("click on disabled next must do nothing")
	}

	d.Update(click(bar.prevStart+1, barRow))
	if d.Position() != 1 {
		t.Errorf("previous click: position = %d, want 1", d.Position())
	}

	// Clicks between the buttons do nothing.
	d.Update(click(40, barRow))
	if d.Position() != 1 {
		t.Errorf("click on indicator moved the deck to %d", d.Position())
	}
}

func TestDeckView_ViewShowsIndicator(t *testing.T) {
	d, bus := newTestDeck(t, sectionSlides(36), DeckOptions{Title: "Briefing", ShowHint: true})
	bus.Publish(input.KeyLast)

	out := d.View()
	for _, want := range []string{"36 / 36", prevLabel, nextLabel, "Briefing", "Section 36"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if lines := strings.Count(out, "\n") + 1; lines != 24 {
		t.Errorf("view has %d lines, want 24", lines)
	}
}

func TestDeckView_RecordsSpansForRealTransitions(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	d, bus := newTestDeck(t, sectionSlides(3), DeckOptions{Recorder: telemetry.NewWithProvider(tp)})

	bus.Publish(input.KeyPrevious) // no-op
	bus.Publish(input.KeyNext)
	bus.Publish(input.KeyLast)
	bus.Publish(input.KeyLast) // no-op
	d.Update(click(newNavBar(d.deck, 80).prevStart, 23))

	spans := sr.Ended()
	if len(spans) != 3 {
		t.Fatalf("spans = %d, want 3", len(spans))
	}
	wantTriggers := []string{TriggerNext, TriggerLast, TriggerClickPrevious}
	for i, s := range spans {
		if s.Name() != telemetry.SpanNavigate {
			t.Errorf("span %d name = %q", i, s.Name())
		}
		attrs := attribute.NewSet(s.Attributes()...)
		if v, _ := attrs.Value(telemetry.AttrTrigger); v.AsString() != wantTriggers[i] {
			t.Errorf("span %d trigger = %q, want %q", i, v.AsString(), wantTriggers[i])
		}
	}
	last := attribute.NewSet(spans[2].Attributes()...)
	if v, _ := last.Value(telemetry.AttrSlideKey); v.AsString() != "s01" {
		t.Errorf("last span slide key = %q, want s01", v.AsString())
	}
}

func TestDeckView_ForwardsClicksToSlide(t *testing.T) {
	cal := content.Slide{Key: "cal", Kind: content.KindCalendar, Title: "Calendar", Calendar: &content.Calendar{Year: 2026}}
	d, _ := newTestDeck(t, []content.Slide{cal}, DeckOptions{ShowHint: true})
	v := d.Current().(*calendarView)

	// Cell for March: second column of the first row.
	stride := v.cellWidth() + gridGap
	d.Update(click(bodyPadding+2*stride+1, d.hintRows()+v.gridTop()+1))
	if got := v.focus.Active(); got != 2 {
		t.Errorf("focused month = %d, want 2", got)
	}
}

func TestStaticView_RevealIgnoresStaleTicks(t *testing.T) {
	s := content.Slide{
		Key:    "c",
		Kind:   content.KindContent,
		Title:  "Items",
		Blocks: []content.Block{{Bullets: []string{"one", "two", "three"}}},
	}
	env := testEnv()
	env.Reveal = true
	env.RevealInterval = 10 * time.Millisecond

	v := newStaticView(s, env, 7)
	v.SetSize(80, 20)
	if v.reveal.shown != 0 || v.Init() == nil {
		t.Fatalf("reveal should start hidden with a tick scheduled")
	}

	v.Update(revealTickMsg{gen: 6})
	if v.reveal.shown != 0 {
		t.Errorf("stale tick advanced reveal to %d", v.reveal.shown)
	}

	_, cmd := v.Update(revealTickMsg{gen: 7})
	if v.reveal.shown != 1 || cmd == nil {
		t.Errorf("shown = %d after tick, want 1 with a follow-up tick", v.reveal.shown)
	}
	if out := v.View(); !strings.Contains(out, "one") || strings.Contains(out, "two") {
		t.Errorf("partial reveal rendered wrong items:\n%s", out)
	}

	v.Update(keyMsg("enter"))
	if !v.reveal.done() {
		t.Error("enter should reveal every item")
	}
	if _, cmd := v.Update(revealTickMsg{gen: 7}); cmd != nil {
		t.Error("no ticks after reveal completes")
	}
}

func TestStaticView_RevealRestartsOnRevisit(t *testing.T) {
	slides := sectionSlides(2)
	slides[1] = content.Slide{
		Key:    "c",
		Kind:   content.KindContent,
		Title:  "Items",
		Blocks: []content.Block{{Bullets: []string{"one", "two"}}},
	}
	reg, err := nav.NewRegistry(slides...)
	if err != nil {
		t.Fatal(err)
	}
	env := testEnv()
	env.Reveal = true
	env.RevealInterval = time.Millisecond
	d, err := NewDeckView(reg, env, DeckOptions{})
	if err != nil {
		t.Fatal(err)
	}
	bus := input.NewBus()
	d.Mount(bus)
	defer d.Unmount()

	bus.Publish(input.KeyNext)
	if d.TakeCmd() == nil {
		t.Fatal("entering a reveal slide should schedule a tick")
	}
	firstGen := d.Current().(*staticView).reveal.gen
	d.Update(revealTickMsg{gen: firstGen})
	d.Update(revealTickMsg{gen: firstGen})

	bus.Publish(input.KeyPrevious)
	bus.Publish(input.KeyNext)
	v := d.Current().(*staticView)
	if v.reveal.shown != 0 {
		t.Errorf("revisit starts with %d items shown, want 0", v.reveal.shown)
	}
	d.Update(revealTickMsg{gen: firstGen})
	if v.reveal.shown != 0 {
		t.Error("tick from the earlier visit advanced the new one")
	}
}
