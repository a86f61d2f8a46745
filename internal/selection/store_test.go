package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lakshaymaurya-felt/projclean/internal/purge"
)

func sample() []purge.FoundItem {
	return []purge.FoundItem{
		{RelPath: "node_modules", Kind: purge.KindFolder, Size: 300},
		{RelPath: "yarn.lock", Kind: purge.KindFile, Size: 10, Selected: false},
		{RelPath: "dist", Kind: purge.KindFolder, Size: 300},
		{RelPath: "app/.cache", Kind: purge.KindFolder, Size: 50},
	}
}

func selectedPaths(s *Store) []string {
	var out []string
	for _, it := range s.Selected() {
		out = append(out, it.RelPath)
	}
	return out
}

func TestReplaceAllSelectsEverything(t *testing.T) {
	s := NewStore()
	s.ReplaceAll(sample())

	assert.Equal(t, 4, s.Len())
	assert.Len(t, s.Selected(), 4)

	s.ReplaceAll(sample()[:1])
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, []string{"node_modules"}, selectedPaths(s))
}

func TestReplaceAllCopiesInput(t *testing.T) {
	items := sample()
	s := NewStore()
	s.ReplaceAll(items)

	s.Toggle(0)
	assert.False(t, items[1].Selected)
	assert.Equal(t, "node_modules", items[0].RelPath)
	it, ok := s.Item(0)
	require.True(t, ok)
	assert.False(t, it.Selected)
}

func TestSelectAllDeselectAllToggle(t *testing.T) {
	s := NewStore()
	s.ReplaceAll(sample())

	s.SelectAll()
	s.DeselectAll()
	s.Toggle(0)

	assert.Equal(t, []string{"node_modules"}, selectedPaths(s))
	for i := 1; i < s.Len(); i++ {
		it, _ := s.Item(i)
		assert.False(t, it.Selected)
	}
}

func TestToggleOutOfRangeIsNoop(t *testing.T) {
	s := NewStore()
	s.ReplaceAll(sample())

	s.Toggle(-1)
	s.Toggle(4)
	s.Toggle(100)
	assert.Len(t, s.Selected(), 4)

	empty := NewStore()
	empty.Toggle(0)
	assert.Zero(t, empty.Len())
}

func TestSelectedPreservesOrder(t *testing.T) {
	s := NewStore()
	s.ReplaceAll(sample())
	s.Toggle(1)

	assert.Equal(t, []string{"node_modules", "dist", "app/.cache"}, selectedPaths(s))
}

func TestSortBy(t *testing.T) {
	s := NewStore()
	s.ReplaceAll(sample())
	s.Toggle(1)

	s.SortBy(SortBySize)
	var paths []string
	for _, it := range s.Items() {
		paths = append(paths, it.RelPath)
	}
	assert.Equal(t, []string{"dist", "node_modules", "app/.cache", "yarn.lock"}, paths)

	last, _ := s.Item(3)
	assert.False(t, last.Selected, "selection must follow the item")

	s.SortBy(SortByPath)
	assert.Equal(t, []string{"app/.cache", "dist", "node_modules"}, selectedPaths(s))
}

func TestTotals(t *testing.T) {
	s := NewStore()
	s.ReplaceAll(sample())

	count, bytes := Totals(s.Items())
	assert.Equal(t, 4, count)
	assert.Equal(t, int64(660), bytes)

	s.Toggle(0)
	count, bytes = Totals(s.Selected())
	assert.Equal(t, 3, count)
	assert.Equal(t, int64(360), bytes)

	count, bytes = Totals(nil)
	assert.Zero(t, count)
	assert.Zero(t, bytes)
}
