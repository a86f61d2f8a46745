package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrProtectedPath is returned when a deletion targets the filesystem root or
// the user's home directory.
var ErrProtectedPath = errors.New("refusing to delete protected path")

// SafeDelete removes path. Directories are removed recursively, everything
// else with a single unlink. A path that does not exist is an error, unlike
// os.RemoveAll. In dryRun mode the checks run but nothing is removed.
func SafeDelete(path string, dryRun bool) error {
	if path == "" {
		return fmt.Errorf("empty path: %w", ErrProtectedPath)
	}
	if isProtected(path) {
		return fmt.Errorf("%s: %w", path, ErrProtectedPath)
	}

	info, err := os.Lstat(path)
	if err != nil {
		return err
	}
	if dryRun {
		return nil
	}

	if info.IsDir() {
		err = os.RemoveAll(path)
	} else {
		err = os.Remove(path)
	}
	return err
}

func isProtected(path string) bool {
	abs, err := filepath.Abs(path)
	if err != nil {
		return true
	}
	abs = filepath.Clean(abs)

	if abs == filepath.VolumeName(abs)+string(filepath.Separator) {
		return true
	}
	if home, err := os.UserHomeDir(); err == nil && abs == filepath.Clean(home) {
		return true
	}
	return false
}
