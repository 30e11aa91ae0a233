package ui

import (
	"bytes"
	"image"
	"image/png"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/charmbracelet/lipgloss"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func testAssets(t *testing.T) *AssetResolver {
	t.Helper()
	root := fstest.MapFS{
		"people/chairman.png": {Data: pngBytes(t, 40, 30)},
		"people/broken.jpg":   {Data: []byte("not an image")},
	}
	return NewAssetResolver(root, nil)
}

func TestAssetResolver_Resolve(t *testing.T) {
	r := testAssets(t)

	tests := []struct {
		ref   string
		found bool
	}{
		{"people/chairman.png", true},
		{"/assets/people/chairman.png", true},
		{"people/missing.png", false},
		{"people/broken.jpg", false},
		{"", false},
	}
	for _, tt := range tests {
		a := r.Resolve(tt.ref)
		if a.Found != tt.found {
			t.Errorf("Resolve(%q).Found = %v, want %v", tt.ref, a.Found, tt.found)
		}
	}

	a := r.Resolve("people/chairman.png")
	if a.Format != "png" || a.Width != 40 || a.Height != 30 {
		t.Errorf("Resolve = %+v, want png 40x30", a)
	}
}

func TestAssetResolver_NilRootIsMissing(t *testing.T) {
	var r *AssetResolver
	if r.Resolve("people/chairman.png").Found {
		t.Error("nil resolver should report missing")
	}
	if NewAssetResolver(nil, nil).Resolve("x.png").Found {
		t.Error("nil root should report missing")
	}
}

func TestAssetResolver_TileSizeMatchesPlaceholder(t *testing.T) {
	r := testAssets(t)

	found := r.Tile("people/chairman.png", "Chairman", 20, 5)
	missing := r.Tile("people/missing.png", "Chairman", 20, 5)
	uncaptioned := r.Tile("people/missing.png", "", 20, 5)

	for name, tile := range map[string]string{"found": found, "missing": missing, "uncaptioned": uncaptioned} {
		if w, h := lipgloss.Width(tile), lipgloss.Height(tile); w != 20 || h != 5 {
			t.Errorf("%s tile is %dx%d, want 20x5", name, w, h)
		}
	}
	if !strings.Contains(found, "chairman.png") || !strings.Contains(found, "40x30") {
		t.Errorf("found tile lacks name or dimensions:\n%s", found)
	}
	if !strings.Contains(missing, "Chairman") {
		t.Errorf("placeholder lacks caption:\n%s", missing)
	}
	if !strings.Contains(uncaptioned, "Image unavailable") {
		t.Errorf("placeholder lacks default caption:\n%s", uncaptioned)
	}
}
