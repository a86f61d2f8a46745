package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()

	assert.Equal(t, []string{"Next.js", "React", "Vite", "Python", "Node.js"}, r.Names())

	t.Run("exact name", func(t *testing.T) {
		tmpl, err := r.Lookup("Python")
		require.NoError(t, err)
		assert.Contains(t, tmpl.Folders, "__pycache__")
		assert.Contains(t, tmpl.Files, "*.pyc")
	})

	t.Run("case-insensitive fallback", func(t *testing.T) {
		tmpl, err := r.Lookup("node.js")
		require.NoError(t, err)
		assert.Equal(t, "Node.js", tmpl.Name)
	})

	t.Run("unknown template", func(t *testing.T) {
		_, err := r.Lookup("Cobol")
		require.ErrorIs(t, err, ErrUnknownTemplate)
		assert.Contains(t, err.Error(), "Cobol")
	})
}

func TestRegistryOverridesAndExtends(t *testing.T) {
	r := NewRegistry(
		Template{Name: "Rust", Folders: []string{"target"}},
		Template{Name: "Vite", Folders: []string{"dist"}},
	)

	assert.Equal(t, []string{"Next.js", "React", "Vite", "Python", "Node.js", "Rust"}, r.Names())

	vite, err := r.Lookup("Vite")
	require.NoError(t, err)
	assert.Equal(t, []string{"dist"}, vite.Folders)
	assert.Empty(t, vite.Files)
}

func TestTemplateHasFolder(t *testing.T) {
	tmpl := Template{Folders: []string{"dist", ".next"}}

	assert.True(t, tmpl.HasFolder(".next"))
	assert.False(t, tmpl.HasFolder("next"))
}

func TestUnsupportedPatterns(t *testing.T) {
	tmpl := Template{Files: []string{"*.log", "npm-*", "yarn.lock", "a*b", "*"}}

	assert.Equal(t, []string{"a*b"}, tmpl.UnsupportedPatterns())
}
