package control

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dlmaster/download-master/internal/model"
	"github.com/dlmaster/download-master/internal/store"
)

// DefaultPollInterval is how often the poller reconciles local state with the
// backend when no interval is configured.
const DefaultPollInterval = 2 * time.Second

// Service is the task lifecycle coordinator. It keeps the task store and
// stats cache synchronized with backend truth via polling, dispatches
// lifecycle commands, and composes the client-side retry protocol. It is the
// only writer of both stores.
type Service struct {
	backend  Backend
	tasks    *store.TaskStore
	stats    *store.StatsCache
	interval time.Duration

	onUpdate func() // callback for UI refreshes

	refreshSeq atomic.Uint64

	mu            sync.Mutex
	appliedSeq    uint64
	startInFlight bool
}

// NewService creates a coordinator over the given backend and stores
func NewService(b Backend, tasks *store.TaskStore, stats *store.StatsCache, interval time.Duration) *Service {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Service{
		backend:  b,
		tasks:    tasks,
		stats:    stats,
		interval: interval,
	}
}

// SetUpdateCallback sets the callback invoked after every applied refresh
func (s *Service) SetUpdateCallback(callback func()) {
	s.onUpdate = callback
}

// Tasks returns the task store for read-only consumers
func (s *Service) Tasks() *store.TaskStore {
	return s.tasks
}

// Stats returns the stats cache for read-only consumers
func (s *Service) Stats() *store.StatsCache {
	return s.stats
}

// Refresh performs one joined read of the task list and the stats snapshot
// and applies both atomically. If either read fails, neither store is
// written. A response that lost the race against a newer refresh is
// discarded, as is one arriving after the context was canceled.
func (s *Service) Refresh(ctx context.Context) error {
	seq := s.refreshSeq.Add(1)

	var tasks []model.Task
	var snap model.StatsSnapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tasks, err = s.backend.ListTasks(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		snap, err = s.backend.Stats(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}

	if s.apply(seq, tasks, snap) {
		s.notifyUpdate()
	}
	return nil
}

// apply writes a refresh result unless a newer generation was already
// applied. Returns true if the stores were written.
func (s *Service) apply(seq uint64, tasks []model.Task, snap model.StatsSnapshot) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if seq <= s.appliedSeq {
		return false
	}
	s.appliedSeq = seq
	s.tasks.Reconcile(tasks)
	s.stats.Set(snap)
	return true
}

func (s *Service) notifyUpdate() {
	if s.onUpdate != nil {
		s.onUpdate()
	}
}
