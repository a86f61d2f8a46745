package purge

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFolderSizeEmpty(t *testing.T) {
	assert.Equal(t, int64(0), FolderSize(t.TempDir()))
}

func TestFolderSizeIgnoresNesting(t *testing.T) {
	flat := t.TempDir()
	tree(t, flat, map[string]int{"a": 10, "b": 20, "c": 30})

	deep := t.TempDir()
	tree(t, deep, map[string]int{"a": 10, "x/b": 20, "x/y/z/c": 30, "empty/": 0})

	assert.Equal(t, int64(60), FolderSize(flat))
	assert.Equal(t, int64(60), FolderSize(deep))
}

func TestFolderSizeMissingPath(t *testing.T) {
	assert.Equal(t, int64(0), FolderSize(filepath.Join(t.TempDir(), "missing")))
}

func TestFolderSizeDoesNotFollowSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need elevated privileges on windows")
	}
	outside := t.TempDir()
	tree(t, outside, map[string]int{"big.bin": 1000})

	dir := t.TempDir()
	tree(t, dir, map[string]int{"small": 5})
	require.NoError(t, os.Symlink(outside, filepath.Join(dir, "linkdir")))
	require.NoError(t, os.Symlink(filepath.Join(outside, "big.bin"), filepath.Join(dir, "linkfile")))

	assert.Equal(t, int64(5), FolderSize(dir))
}

func TestFolderSizeUnreadableSubdir(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced here")
	}
	dir := t.TempDir()
	tree(t, dir, map[string]int{"ok": 7, "locked/secret": 100})
	locked := filepath.Join(dir, "locked")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	assert.Equal(t, int64(7), FolderSize(dir))
}
