// Package watch holds the per-item watch-list flags and their JSON
// persistence. The Selection is the single source of truth; the UI reads
// it on every render and writes through Set/Toggle.
package watch

import (
	"sync"

	"github.com/lunaracodes/gagwatch/internal/catalog"
)

// Selection is the set of watched items per category. Keys are always a
// subset of the static catalogs. It is safe for concurrent use: the poller
// reads it while the UI toggles entries.
type Selection struct {
	mu    sync.RWMutex
	flags map[catalog.Category]map[string]bool
}

// New returns a Selection with every catalog item watched.
func New() *Selection {
	s := &Selection{flags: make(map[catalog.Category]map[string]bool, len(catalog.Categories))}
	for _, c := range catalog.Categories {
		m := make(map[string]bool)
		for _, name := range c.Names() {
			m[name] = true
		}
		s.flags[c] = m
	}
	return s
}

// Selected reports whether name is watched. Unknown names are never watched.
func (s *Selection) Selected(c catalog.Category, name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.flags[c][name]
}

// Set updates the flag for a catalog item. It returns false, and changes
// nothing, when name is not in the category's catalog.
func (s *Selection) Set(c catalog.Category, name string, on bool) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.flags[c]
	if !ok {
		return false
	}
	if _, known := m[name]; !known {
		return false
	}
	m[name] = on
	return true
}

// Toggle flips the flag for name and returns the new value.
func (s *Selection) Toggle(c catalog.Category, name string) (on bool, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, exists := s.flags[c]
	if !exists {
		return false, false
	}
	cur, known := m[name]
	if !known {
		return false, false
	}
	m[name] = !cur
	return !cur, true
}

// SetAll sets every item of a category.
func (s *Selection) SetAll(c catalog.Category, on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for name := range s.flags[c] {
		s.flags[c][name] = on
	}
}

// Snapshot returns a copy of one category's flags.
func (s *Selection) Snapshot(c catalog.Category) map[string]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]bool, len(s.flags[c]))
	for name, on := range s.flags[c] {
		out[name] = on
	}
	return out
}

// Count returns how many items of a category are watched, and the total.
func (s *Selection) Count(c catalog.Category) (selected, total int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, on := range s.flags[c] {
		if on {
			selected++
		}
	}
	return selected, len(s.flags[c])
}
