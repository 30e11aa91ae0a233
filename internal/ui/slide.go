package ui

import (
	"time"

	"execdeck/internal/content"

	"go.uber.org/zap"
)

// Env carries the collaborators slide views render with.
type Env struct {
	Assets         *AssetResolver
	Markdown       *MarkdownRenderer
	Logger         *zap.Logger
	Now            func() time.Time
	Reveal         bool
	RevealInterval time.Duration
}

func (e Env) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}

func (e Env) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}

// SlideView is the live view of one slide visit. A new one is built on every
// real transition, so any per-visit state starts fresh.
type SlideView interface {
	View
	Slide() content.Slide
	SetSize(width, height int)
}

// NewSlideView builds the view for s. gen tags the visit for reveal ticks.
func NewSlideView(s content.Slide, env Env, gen int) SlideView {
	switch s.Kind {
	case content.KindGeography:
		v, err := newGeographyView(s, env, gen)
		if err == nil {
			return v
		}
		env.logger().Error("geography slide unavailable", zap.String("slide", s.Key), zap.Error(err))
	case content.KindCalendar:
		return newCalendarView(s, env, gen)
	}
	return newStaticView(s, env, gen)
}
