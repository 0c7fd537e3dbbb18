package imagepkg

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Font is a face together with the nominal size used for line spacing.
type Font struct {
	Face font.Face
	Size int
}

// DefaultFont is the built-in fallback face.
func DefaultFont() Font {
	return Font{Face: basicfont.Face7x13, Size: basicfont.Face7x13.Height}
}

// LoadFont parses a TrueType file and returns a face at size points, 72 DPI.
func LoadFont(path string, size float64) (Font, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Font{}, err
	}
	return ParseFont(b, size)
}

// ParseFont is LoadFont for font bytes already in memory.
func ParseFont(ttf []byte, size float64) (Font, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return Font{}, fmt.Errorf("parsing font: %w", err)
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	return Font{Face: face, Size: int(size)}, nil
}

// LoadFonts loads the title and caption fonts. If either fails both fall back
// to DefaultFont and the first error is returned alongside them.
func LoadFonts(titlePath string, titleSize float64, captionPath string, captionSize float64) (title, caption Font, err error) {
	title, err = LoadFont(titlePath, titleSize)
	if err != nil {
		return DefaultFont(), DefaultFont(), fmt.Errorf("title font %s: %w", titlePath, err)
	}
	caption, err = LoadFont(captionPath, captionSize)
	if err != nil {
		return DefaultFont(), DefaultFont(), fmt.Errorf("caption font %s: %w", captionPath, err)
	}
	return title, caption, nil
}

// TextBox returns the pixel box of s drawn with its top-left at the origin,
// using the text's ink extent horizontally widened to its advance so that
// trailing spaces count. Y is relative to the baseline.
func TextBox(face font.Face, s string) image.Rectangle {
	if s == "" {
		return image.Rectangle{}
	}
	b, adv := font.BoundString(face, s)
	r := image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
	if b.Empty() {
		r = image.Rect(0, 0, 0, 0)
	}
	if a := adv.Ceil(); a > r.Max.X {
		r.Max.X = a
	}
	return r
}

// TextWidth is the width of TextBox.
func TextWidth(face font.Face, s string) int { return TextBox(face, s).Dx() }

// WrapText breaks text into lines no wider than maxWidth. Words are taken
// first-fit: each word is measured with one trailing space and appended to the
// current line while the running sum stays within maxWidth. A word wider than
// maxWidth on its own is placed alone, unsplit.
func WrapText(face font.Face, text string, maxWidth int) []string {
	var lines []string
	var cur []string
	width := 0
	for _, w := range strings.Fields(text) {
		ww := TextWidth(face, w+" ")
		if width+ww <= maxWidth {
			cur = append(cur, w)
			width += ww
			continue
		}
		if len(cur) > 0 {
			lines = append(lines, strings.Join(cur, " "))
		}
		cur = []string{w}
		width = ww
	}
	if len(cur) > 0 {
		lines = append(lines, strings.Join(cur, " "))
	}
	return lines
}

// drawText draws s with its top edge at y, the way a top-anchored label would
// be placed, so the baseline sits one ascent below.
func drawText(dst draw.Image, f Font, s string, x, y int, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: f.Face,
		Dot:  fixed.P(x, y+f.Face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}
