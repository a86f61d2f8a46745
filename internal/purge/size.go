package purge

import (
	"os"
	"path/filepath"
)

// FolderSize sums the sizes of all regular files under path. Symbolic links
// are never followed. Any I/O error (permission denied, entry vanished
// mid-walk) counts as zero for that entry and never aborts the walk, so the
// result is a best-effort estimate.
func FolderSize(path string) int64 {
	entries, err := os.ReadDir(path)
	if err != nil {
		return 0
	}

	var total int64
	for _, e := range entries {
		switch {
		case e.Type().IsRegular():
			info, err := e.Info()
			if err != nil {
				continue
			}
			total += info.Size()
		case e.IsDir():
			total += FolderSize(filepath.Join(path, e.Name()))
		}
	}
	return total
}
