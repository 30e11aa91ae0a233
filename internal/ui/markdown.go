package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"go.uber.org/zap"
)

// MarkdownRenderer renders speaker notes and prose blocks with glamour.
// Renderers are cached per wrap width.
type MarkdownRenderer struct {
	style     string
	logger    *zap.Logger
	renderers map[int]*glamour.TermRenderer
}

// NewMarkdownRenderer creates a renderer for a glamour standard style
// ("dark", "light", "notty", ...).
func NewMarkdownRenderer(style string, logger *zap.Logger) *MarkdownRenderer {
	if style == "" {
		style = "dark"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MarkdownRenderer{style: style, logger: logger, renderers: make(map[int]*glamour.TermRenderer)}
}

// Render returns src as styled terminal text wrapped at width. On any
// glamour error it falls back to the raw source.
func (m *MarkdownRenderer) Render(src string, width int) string {
	if m == nil {
		return strings.TrimSpace(src)
	}
	r, ok := m.renderers[width]
	if !ok {
		var err error
		r, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle(m.style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			m.logger.Warn("markdown renderer unavailable", zap.String("style", m.style), zap.Error(err))
			return strings.TrimSpace(src)
		}
		m.renderers[width] = r
	}
	out, err := r.Render(src)
	if err != nil {
		m.logger.Warn("markdown render failed", zap.Error(err))
		return strings.TrimSpace(src)
	}
	return strings.Trim(out, "\n")
}
