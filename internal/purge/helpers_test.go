package purge

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// tree creates files under root. Keys ending in "/" are directories;
// other keys are files holding size bytes.
func tree(t *testing.T, root string, entries map[string]int) {
	t.Helper()
	for rel, size := range entries {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if rel[len(rel)-1] == '/' {
			require.NoError(t, os.MkdirAll(path, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
	}
}

func relPaths(items []FoundItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = filepath.ToSlash(it.RelPath)
	}
	sort.Strings(out)
	return out
}

func byRel(items []FoundItem) map[string]FoundItem {
	out := make(map[string]FoundItem, len(items))
	for _, it := range items {
		out[filepath.ToSlash(it.RelPath)] = it
	}
	return out
}
