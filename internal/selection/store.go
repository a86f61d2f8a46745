package selection

import (
	"sort"

	"github.com/lakshaymaurya-felt/projclean/internal/purge"
)

// SortMode orders the held items for display.
type SortMode int

const (
	SortBySize SortMode = iota
	SortByPath
)

func (m SortMode) String() string {
	if m == SortByPath {
		return "path"
	}
	return "size"
}

// Store holds the current scan result and each item's selected flag. It is
// owned by the control flow and is not safe for concurrent use.
type Store struct {
	items []purge.FoundItem
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{}
}

// ReplaceAll discards the previous items and installs items, all selected.
func (s *Store) ReplaceAll(items []purge.FoundItem) {
	s.items = make([]purge.FoundItem, len(items))
	copy(s.items, items)
	for i := range s.items {
		s.items[i].Selected = true
	}
}

// Toggle flips the selected flag of the item at index. Out-of-range
// indices are ignored.
func (s *Store) Toggle(index int) {
	if index < 0 || index >= len(s.items) {
		return
	}
	s.items[index].Selected = !s.items[index].Selected
}

// SelectAll marks every item selected.
func (s *Store) SelectAll() {
	s.setAll(true)
}

// DeselectAll clears every item's selected flag.
func (s *Store) DeselectAll() {
	s.setAll(false)
}

func (s *Store) setAll(selected bool) {
	for i := range s.items {
		s.items[i].Selected = selected
	}
}

// Selected returns the selected items in their current order.
func (s *Store) Selected() []purge.FoundItem {
	var out []purge.FoundItem
	for _, it := range s.items {
		if it.Selected {
			out = append(out, it)
		}
	}
	return out
}

// Items returns a copy of all held items.
func (s *Store) Items() []purge.FoundItem {
	return append([]purge.FoundItem(nil), s.items...)
}

// Item returns the item at index.
func (s *Store) Item(index int) (purge.FoundItem, bool) {
	if index < 0 || index >= len(s.items) {
		return purge.FoundItem{}, false
	}
	return s.items[index], true
}

// Len returns the number of held items.
func (s *Store) Len() int {
	return len(s.items)
}

// SortBy reorders the items. Selection flags move with their items.
func (s *Store) SortBy(mode SortMode) {
	switch mode {
	case SortByPath:
		sort.SliceStable(s.items, func(i, j int) bool {
			return s.items[i].RelPath < s.items[j].RelPath
		})
	default:
		sort.SliceStable(s.items, func(i, j int) bool {
			if s.items[i].Size != s.items[j].Size {
				return s.items[i].Size > s.items[j].Size
			}
			return s.items[i].RelPath < s.items[j].RelPath
		})
	}
}

// Totals returns how many items there are and their combined size.
func Totals(items []purge.FoundItem) (count int, bytes int64) {
	for _, it := range items {
		bytes += it.Size
	}
	return len(items), bytes
}
