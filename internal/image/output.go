package imagepkg

import (
	"fmt"
	"path/filepath"

	"github.com/youruser/lifestyleapp/internal/util"
)

// NextOutputPath creates dir if needed and returns the first free
// dir/outputN.jpg, counting from 1. Nothing is reserved: two concurrent
// callers can be handed the same name.
func NextOutputPath(dir string) (string, error) {
	if err := util.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("creating output dir: %w", err)
	}
	for n := 1; ; n++ {
		p := filepath.Join(dir, fmt.Sprintf("output%d.jpg", n))
		if !util.Exists(p) {
			return p, nil
		}
	}
}
