package ui

import (
	"fmt"
	"image"
	_ "image/jpeg" // register decoders for DecodeConfig
	_ "image/png"
	"io/fs"
	"path"
	"strings"

	"execdeck/internal/ui/textutil"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Asset describes a resolved image reference.
type Asset struct {
	Ref    string
	Found  bool
	Format string // "jpeg", "png"
	Width  int
	Height int
}

// AssetResolver looks image references up in an asset root.
// A nil resolver or nil root treats every reference as missing.
type AssetResolver struct {
	root   fs.FS
	logger *zap.Logger
	cache  map[string]Asset
}

// NewAssetResolver creates a resolver over root.
func NewAssetResolver(root fs.FS, logger *zap.Logger) *AssetResolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AssetResolver{root: root, logger: logger, cache: make(map[string]Asset)}
}

// Resolve reports whether ref exists and decodes as an image. Failures are
// never errors; they come back as Found == false.
func (r *AssetResolver) Resolve(ref string) Asset {
	a := Asset{Ref: ref}
	if r == nil || r.root == nil || ref == "" {
		return a
	}
	if cached, ok := r.cache[ref]; ok {
		return cached
	}
	name := path.Clean(strings.TrimPrefix(ref, "/"))
	name = strings.TrimPrefix(name, "assets/")
	f, err := r.root.Open(name)
	if err != nil {
		r.logger.Debug("asset missing, using placeholder", zap.String("ref", ref), zap.Error(err))
		r.cache[ref] = a
		return a
	}
	defer f.Close()
	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		r.logger.Debug("asset unreadable, using placeholder", zap.String("ref", ref), zap.Error(err))
		r.cache[ref] = a
		return a
	}
	a.Found, a.Format, a.Width, a.Height = true, format, cfg.Width, cfg.Height
	r.cache[ref] = a
	return a
}

// Tile renders an image slot of exactly w x h cells. A found image shows its
// name and dimensions; a missing one shows a placeholder glyph and caption.
func (r *AssetResolver) Tile(ref, caption string, w, h int) string {
	w, h = max(w, 6), max(h, 3)
	inner := w - 2
	a := r.Resolve(ref)

	var lines []string
	style := Styles.Card
	if a.Found {
		lines = []string{
			Styles.Active.Render("▣"),
			textutil.Truncate(path.Base(ref), inner),
			Styles.Muted.Render(fmt.Sprintf("%dx%d %s", a.Width, a.Height, strings.ToUpper(a.Format))),
		}
	} else {
		if caption == "" {
			caption = "Image unavailable"
		}
		lines = []string{
			Styles.Muted.Render("◌"),
			Styles.Empty.Render(textutil.Truncate(caption, inner)),
		}
		style = style.BorderStyle(lipgloss.NormalBorder())
	}
	body := lipgloss.JoinVertical(lipgloss.Center, lines...)
	return style.
		Padding(0).
		Width(inner).
		Height(h-2).
		MaxHeight(h).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}
