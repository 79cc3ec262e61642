package store

import (
	"sync"

	"github.com/dlmaster/download-master/internal/model"
)

// StatsCache mirrors the backend's aggregate counters. Each write is a full
// replacement of the snapshot.
type StatsCache struct {
	mu   sync.RWMutex
	snap model.StatsSnapshot
}

// NewStatsCache creates an empty stats cache
func NewStatsCache() *StatsCache {
	return &StatsCache{}
}

// Set replaces the cached snapshot
func (c *StatsCache) Set(snap model.StatsSnapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snap = snap
}

// Get returns the cached snapshot
func (c *StatsCache) Get() model.StatsSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snap
}
