package imagepkg

import (
	"bytes"
	"image"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/youruser/lifestyleapp/internal/util"
)

const downloadTimeout = 10 * time.Second

// DownloadImage downloads an image from URL and returns it decoded.
func DownloadImage(url string) (image.Image, error) {
	body, err := util.GetBytes(url, downloadTimeout)
	if err != nil {
		return nil, err
	}
	return imaging.Decode(bytes.NewReader(body))
}

func isRemote(name string) bool {
	return strings.HasPrefix(name, "http://") || strings.HasPrefix(name, "https://")
}
