package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakshaymaurya-felt/projclean/internal/config"
)

func writeFiles(t *testing.T, root string, files map[string]int) {
	t.Helper()
	for rel, size := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, make([]byte, size), 0o644))
	}
}

func viteProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFiles(t, root, map[string]int{
		"node_modules/vite/index.js": 400,
		"dist/assets/app.js":         100,
		"yarn.lock":                  20,
		"src/main.ts":                7,
	})
	return root
}

// execute runs the command tree with fresh flag state and an empty config dir.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	debug, dryRun, jsonOutput, assumeYes = false, false, false, false
	templateName = ""
	configPath = filepath.Join(t.TempDir(), "config.toml")
	cfg, registry = nil, nil

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestScanJSON(t *testing.T) {
	root := viteProject(t)

	out, err := execute(t, "scan", root, "--template", "vite", "--json")
	require.NoError(t, err)

	var got struct {
		Root     string `json:"root"`
		Template string `json:"template"`
		Items    []struct {
			RelPath string `json:"relative_path"`
			Kind    string `json:"kind"`
			Size    int64  `json:"size"`
		} `json:"items"`
		Count     int   `json:"count"`
		TotalSize int64 `json:"total_size"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, "Vite", got.Template)
	assert.Equal(t, 3, got.Count)
	assert.EqualValues(t, 520, got.TotalSize)
	require.Len(t, got.Items, 3)
	assert.Equal(t, "node_modules", got.Items[0].RelPath)
	assert.Equal(t, "Folder", got.Items[0].Kind)
	assert.Equal(t, "yarn.lock", got.Items[2].RelPath)
	assert.Equal(t, "File", got.Items[2].Kind)
}

func TestScanEmptyJSON(t *testing.T) {
	out, err := execute(t, "scan", t.TempDir(), "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"items": []`)
	assert.Contains(t, out, `"template": "Next.js"`)
}

func TestRootFallsBackToStaticListing(t *testing.T) {
	root := viteProject(t)

	out, err := execute(t, root, "-t", "Vite")
	require.NoError(t, err)
	assert.Contains(t, out, "Template: Vite")
	assert.Contains(t, out, "Found 3 items (520.0 B)")
}

func TestScanErrors(t *testing.T) {
	_, err := execute(t, "scan", t.TempDir(), "--template", "Cobol")
	assert.ErrorIs(t, err, config.ErrUnknownTemplate)

	_, err = execute(t, "scan", filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestCleanRequiresConfirmation(t *testing.T) {
	root := viteProject(t)

	_, err := execute(t, "clean", root, "-t", "Vite")
	assert.ErrorIs(t, err, errNotConfirmed)
	assert.DirExists(t, filepath.Join(root, "node_modules"))
}

func TestCleanDryRun(t *testing.T) {
	root := viteProject(t)

	out, err := execute(t, "clean", root, "-t", "Vite", "--dry-run")
	require.NoError(t, err)
	assert.Contains(t, out, "Would delete 3 items (520.0 B)")
	assert.DirExists(t, filepath.Join(root, "node_modules"))
	assert.FileExists(t, filepath.Join(root, "yarn.lock"))
}

func TestCleanDeletes(t *testing.T) {
	root := viteProject(t)

	out, err := execute(t, "clean", root, "-t", "Vite", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully deleted 3 items (520.0 B freed)")
	assert.NoDirExists(t, filepath.Join(root, "node_modules"))
	assert.NoDirExists(t, filepath.Join(root, "dist"))
	assert.NoFileExists(t, filepath.Join(root, "yarn.lock"))
	assert.FileExists(t, filepath.Join(root, "src", "main.ts"))

	out, err = execute(t, "clean", root, "-t", "Vite", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "project is clean")
}

func TestConfigFileTemplates(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]int{
		"target/debug/app": 50,
		"Cargo.lock":       5,
		"src/main.rs":      3,
	})
	cfgFile := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfgFile, []byte(`
default_template = "Rust"

[[templates]]
name = "Rust"
folders = ["target"]
files = ["Cargo.lock"]
`), 0o644))

	out, err := execute(t, "templates", "--config", cfgFile)
	require.NoError(t, err)
	assert.Contains(t, out, "Next.js")
	assert.Contains(t, out, "Rust")
	assert.Contains(t, out, "folders: target")

	out, err = execute(t, "scan", root, "--config", cfgFile)
	require.NoError(t, err)
	assert.Contains(t, out, "Template: Rust")
	assert.Contains(t, out, "Found 2 items (55.0 B)")
}

func TestMalformedConfig(t *testing.T) {
	cfgFile := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("default_template = ["), 0o644))

	_, err := execute(t, "scan", t.TempDir(), "--config", cfgFile)
	assert.Error(t, err)

	out, err := execute(t, "version", "--config", cfgFile)
	require.NoError(t, err)
	assert.Contains(t, out, "projclean dev")
}

func TestCompletion(t *testing.T) {
	out, err := execute(t, "completion", "bash")
	require.NoError(t, err)
	assert.Contains(t, out, "projclean")

	_, err = execute(t, "completion", "tcsh")
	assert.Error(t, err)
}
