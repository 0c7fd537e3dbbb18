package util

import (
	"errors"
	"io/fs"
	"os"
)

func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o755)
}

// Exists reports whether something is already at path. Errors other than
// not-exist count as present so callers never overwrite what they cannot see.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
