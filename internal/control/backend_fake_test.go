package control

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/dlmaster/download-master/internal/backend"
	"github.com/dlmaster/download-master/internal/model"
	"github.com/dlmaster/download-master/internal/store"
)

// fakeBackend records every call in order and serves canned responses
type fakeBackend struct {
	mu    sync.Mutex
	calls []string

	tasks []model.Task
	snap  model.StatsSnapshot

	getTaskResult model.Task

	listErr    error
	statsErr   error
	getTaskErr error
	startErr   error
	bulkErr    error
	pauseErr   error
	resumeErr  error
	deleteErr  error

	// when non-nil, Start blocks until the channel is closed
	startGate chan struct{}
}

func (f *fakeBackend) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeBackend) recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	calls := make([]string, len(f.calls))
	copy(calls, f.calls)
	return calls
}

func (f *fakeBackend) count(prefix string) int {
	n := 0
	for _, call := range f.recorded() {
		if strings.HasPrefix(call, prefix) {
			n++
		}
	}
	return n
}

func (f *fakeBackend) ListTasks(ctx context.Context) ([]model.Task, error) {
	f.record("LIST")
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	tasks := make([]model.Task, len(f.tasks))
	copy(tasks, f.tasks)
	return tasks, nil
}

func (f *fakeBackend) Stats(ctx context.Context) (model.StatsSnapshot, error) {
	f.record("STATS")
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snap, f.statsErr
}

func (f *fakeBackend) GetTask(ctx context.Context, id string) (model.Task, error) {
	f.record("GET " + id)
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getTaskErr != nil {
		return model.Task{}, f.getTaskErr
	}
	return f.getTaskResult, nil
}

func (f *fakeBackend) Start(ctx context.Context, url string) (backend.StartResult, error) {
	f.record("START " + url)
	if f.startGate != nil {
		<-f.startGate
	}
	if f.startErr != nil {
		return backend.StartResult{}, f.startErr
	}
	return backend.StartResult{Success: true, TaskID: "new"}, nil
}

func (f *fakeBackend) StartBulk(ctx context.Context, urls []string) (backend.BulkResult, error) {
	f.record("BULK " + strings.Join(urls, ","))
	if f.bulkErr != nil {
		return backend.BulkResult{}, f.bulkErr
	}
	return backend.BulkResult{Success: true}, nil
}

func (f *fakeBackend) Pause(ctx context.Context, id string) error {
	f.record("PAUSE " + id)
	return f.pauseErr
}

func (f *fakeBackend) Resume(ctx context.Context, id string) error {
	f.record("RESUME " + id)
	return f.resumeErr
}

func (f *fakeBackend) Delete(ctx context.Context, id string) error {
	f.record("DELETE " + id)
	return f.deleteErr
}

func newTestService(f *fakeBackend, interval time.Duration) *Service {
	return NewService(f, store.NewTaskStore(), store.NewStatsCache(), interval)
}
