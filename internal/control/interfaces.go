package control

import (
	"context"

	"github.com/dlmaster/download-master/internal/backend"
	"github.com/dlmaster/download-master/internal/model"
)

// Backend defines the remote operations the control service depends on.
// *backend.Client satisfies it; tests substitute a recording fake.
type Backend interface {
	ListTasks(ctx context.Context) ([]model.Task, error)
	Stats(ctx context.Context) (model.StatsSnapshot, error)
	GetTask(ctx context.Context, id string) (model.Task, error)
	Start(ctx context.Context, url string) (backend.StartResult, error)
	StartBulk(ctx context.Context, urls []string) (backend.BulkResult, error)
	Pause(ctx context.Context, id string) error
	Resume(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
