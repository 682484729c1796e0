package watch

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// ProcessedSet remembers which input files were already handled during
// this run. Nothing is persisted.
type ProcessedSet struct {
	items *cache.Cache
	ttl   time.Duration
}

// NewProcessedSet returns an empty set. With forgetAfter > 0 an entry
// expires after that long and the same path becomes eligible again;
// otherwise entries live for the whole run.
func NewProcessedSet(forgetAfter time.Duration) *ProcessedSet {
	ttl := cache.NoExpiration
	if forgetAfter > 0 {
		ttl = forgetAfter
	}
	// No janitor goroutine; Prune runs at the start of each sweep.
	return &ProcessedSet{items: cache.New(ttl, 0), ttl: ttl}
}

// Add marks path as processed.
func (s *ProcessedSet) Add(path string) {
	s.items.Set(path, struct{}{}, s.ttl)
}

// Contains reports whether path was processed and has not expired.
func (s *ProcessedSet) Contains(path string) bool {
	_, ok := s.items.Get(path)
	return ok
}

// Len returns the number of entries, including expired ones not yet pruned.
func (s *ProcessedSet) Len() int {
	return s.items.ItemCount()
}

// Prune drops expired entries.
func (s *ProcessedSet) Prune() {
	s.items.DeleteExpired()
}
