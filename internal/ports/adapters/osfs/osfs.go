package osfs

import (
	"errors"
	"io/fs"
	"os"
)

type FS struct{}

func New() FS { return FS{} }

// Exists reports whether path is present. Only "not exist" counts as absent;
// any other Lstat failure is returned to the caller.
func (FS) Exists(path string) (bool, error) {
	_, err := os.Lstat(path)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	default:
		return false, err
	}
}
