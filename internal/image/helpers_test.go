package imagepkg

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/youruser/lifestyleapp/internal/section"
)

var red = color.NRGBA{R: 0xff, A: 0xff}

// solid creates a w x h image filled with c.
func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func pngBytes(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return buf.Bytes()
}

func writeFile(t *testing.T, path string, b []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		t.Fatal(err)
	}
}

// fixture lays out a working directory with a real font, an icon and four
// square cell images named a.png .. d.png.
type fixture struct {
	dir    string
	assets Assets
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	f := fixture{
		dir: dir,
		assets: Assets{
			TitleFont:   filepath.Join(dir, "fonts", "goregular.ttf"),
			CaptionFont: filepath.Join(dir, "fonts", "goregular.ttf"),
			Icon:        filepath.Join(dir, "bookmark.png"),
			ImagesDir:   filepath.Join(dir, "used"),
			OutputDir:   filepath.Join(dir, "product"),
		},
	}
	writeFile(t, f.assets.TitleFont, goregular.TTF)
	writeFile(t, f.assets.Icon, pngBytes(t, solid(40, 40, color.NRGBA{A: 0xff})))
	for _, name := range []string{"a.png", "b.png", "c.png", "d.png"} {
		writeFile(t, filepath.Join(f.assets.ImagesDir, name), pngBytes(t, solid(100, 100, red)))
	}
	return f
}

func (f fixture) compositor() *Compositor {
	c := New(f.assets)
	c.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return c
}

func request(title string) section.Request {
	return section.Request{
		Title: title,
		Sections: []section.Section{
			{Position: section.TopLeft, Caption: "Tren", Image: "a.png"},
			{Position: section.TopRight, Caption: "Dumbell", Image: "b.png"},
			{Position: section.BottomLeft, Caption: "Alcohal", Image: "c.png"},
			{Position: section.BottomRight, Caption: "FitMaxAi", Image: "d.png"},
		},
	}
}

func kinds(ws []Warning) map[WarningKind]int {
	m := map[WarningKind]int{}
	for _, w := range ws {
		m[w.Kind]++
	}
	return m
}
