package main

import (
	"fmt"

	"execdeck/internal/nav"
	"execdeck/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func runInteractive(s *session) error {
	slides, err := nav.NewRegistry(s.deck.Slides...)
	if err != nil {
		return fmt.Errorf("slide registry: %w", err)
	}
	deckView, err := ui.NewDeckView(slides, s.env, ui.DeckOptions{
		Title:    s.deck.Title,
		ShowHint: s.cfg.Display.ShowHint,
		Recorder: s.recorder,
	})
	if err != nil {
		return err
	}

	model := ui.NewAppModel(deckView, s.logger)
	defer model.Close()
	s.logger.Info("deck mounted", zap.Int("slides", slides.Len()))

	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run deck: %w", err)
	}
	s.logger.Info("deck closed", zap.Int("position", deckView.Position()), zap.String("slide", deckView.Current().Slide().Key))
	return nil
}

