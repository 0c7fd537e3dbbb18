package imagepkg

import (
	"image"

	"github.com/disintegration/imaging"
)

// LoadIcon opens the caption icon, shrinks it to fit a size x size box
// keeping its aspect ratio (never enlarging it) and recolors it white.
func LoadIcon(path string, size int) (*image.NRGBA, error) {
	src, err := imaging.Open(path)
	if err != nil {
		return nil, err
	}
	return RecolorWhite(imaging.Fit(src, size, size, imaging.Lanczos)), nil
}

// RecolorWhite returns a copy of src where every pixel with any opacity is
// pure white at its original alpha. Fully transparent pixels become zero.
func RecolorWhite(src image.Image) *image.NRGBA {
	dst := imaging.Clone(src)
	pix := dst.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		if pix[i+3] == 0 {
			pix[i], pix[i+1], pix[i+2] = 0, 0, 0
			continue
		}
		pix[i], pix[i+1], pix[i+2] = 0xff, 0xff, 0xff
	}
	return dst
}
