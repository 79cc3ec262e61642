package store

import (
	"sync"

	"github.com/dlmaster/download-master/internal/model"
)

// TaskStore holds the local mirror of backend task records. Records are merged
// by id on each successful refresh: surviving tasks keep their pointer
// identity so downstream consumers see in-place updates instead of churn, and
// a task is removed only when a fresh response no longer contains its id.
type TaskStore struct {
	mu    sync.RWMutex
	order []*model.Task
	index map[string]*model.Task
}

// NewTaskStore creates an empty task store
func NewTaskStore() *TaskStore {
	return &TaskStore{index: make(map[string]*model.Task)}
}

// Reconcile merges a fresh, successful backend response into the store.
// Ordering follows the response.
func (s *TaskStore) Reconcile(fresh []model.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order := make([]*model.Task, 0, len(fresh))
	index := make(map[string]*model.Task, len(fresh))

	for _, incoming := range fresh {
		if existing, ok := s.index[incoming.ID]; ok {
			*existing = incoming
			order = append(order, existing)
			index[incoming.ID] = existing
			continue
		}
		task := incoming
		order = append(order, &task)
		index[task.ID] = &task
	}

	s.order = order
	s.index = index
}

// Get returns the task with the given id, if present
func (s *TaskStore) Get(id string) (*model.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	task, ok := s.index[id]
	return task, ok
}

// Lookup returns a value copy of the task with the given id, safe to hold
// across subsequent reconciles.
func (s *TaskStore) Lookup(id string) (model.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	task, ok := s.index[id]
	if !ok {
		return model.Task{}, false
	}
	return *task, true
}

// Snapshot returns the tasks in backend order. The slice is a copy; the
// pointed-to tasks are the live records.
func (s *TaskStore) Snapshot() []*model.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	tasks := make([]*model.Task, len(s.order))
	copy(tasks, s.order)
	return tasks
}

// Len returns the number of tasks currently mirrored
func (s *TaskStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}
