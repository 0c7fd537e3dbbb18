package imagepkg

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNextOutputPath(t *testing.T) {
	t.Run("creates dir", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "product")
		got, err := NextOutputPath(dir)
		if err != nil {
			t.Fatal(err)
		}
		if want := filepath.Join(dir, "output1.jpg"); got != want {
			t.Errorf("got %s, want %s", got, want)
		}
		if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
			t.Errorf("dir not created: %v", err)
		}
	})

	t.Run("skips taken names", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "product")
		writeFile(t, filepath.Join(dir, "output1.jpg"), nil)
		writeFile(t, filepath.Join(dir, "output2.jpg"), nil)
		writeFile(t, filepath.Join(dir, "output4.jpg"), nil)
		got, err := NextOutputPath(dir)
		if err != nil {
			t.Fatal(err)
		}
		if want := filepath.Join(dir, "output3.jpg"); got != want {
			t.Errorf("got %s, want %s", got, want)
		}
	})

	t.Run("dir is a file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "product")
		writeFile(t, file, nil)
		if _, err := NextOutputPath(file); err == nil {
			t.Error("expected error")
		}
	})
}
