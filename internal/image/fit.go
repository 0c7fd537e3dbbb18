package imagepkg

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

var white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// FitSize scales src uniformly so it fits inside box, enlarging or shrinking
// as needed. Fractions are truncated; each side is at least one pixel.
func FitSize(src, box image.Point) image.Point {
	if src.X <= 0 || src.Y <= 0 {
		return image.Point{}
	}
	scale := float64(box.X) / float64(src.X)
	if s := float64(box.Y) / float64(src.Y); s < scale {
		scale = s
	}
	w := int(float64(src.X) * scale)
	h := int(float64(src.Y) * scale)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return image.Pt(w, h)
}

// FitImage returns an opaque white box of the given size with src resized to
// fit and centered on it. Transparent parts of src show the white through.
func FitImage(src image.Image, box image.Point) *image.NRGBA {
	out := Placeholder(box)
	sz := FitSize(src.Bounds().Size(), box)
	if sz.X == 0 {
		return out
	}
	resized := imaging.Resize(src, sz.X, sz.Y, imaging.Lanczos)
	at := image.Pt(floorDiv(box.X-sz.X, 2), floorDiv(box.Y-sz.Y, 2))
	draw.Draw(out, image.Rectangle{Min: at, Max: at.Add(sz)}, resized, image.Point{}, draw.Over)
	return out
}

// Placeholder is the opaque white box used when a cell image is unusable.
func Placeholder(box image.Point) *image.NRGBA {
	return imaging.New(box.X, box.Y, white)
}
