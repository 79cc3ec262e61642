package control

import (
	"context"
	"errors"

	"github.com/dlmaster/download-master/internal/backend"
)

// ErrUnknownTask is returned when a retry references a task id that is no
// longer known, either locally or on the backend.
var ErrUnknownTask = errors.New("task not found")

// Retry re-attempts a task by deleting it and starting a fresh download for
// its URL; there is no backend retry endpoint. The id is resolved against
// the local store first, so an id already gone locally costs no network
// call. Because the local copy may be stale, the task is re-fetched from the
// backend before the destructive delete; a 404 there aborts the retry, while
// a transport failure falls back to the locally captured URL. The delete is
// awaited to completion before the start is issued.
func (s *Service) Retry(ctx context.Context, id string) error {
	task, ok := s.tasks.Lookup(id)
	if !ok {
		return ErrUnknownTask
	}
	url := task.URL

	fresh, err := s.backend.GetTask(ctx, id)
	switch {
	case err == nil:
		url = fresh.URL
	case backend.IsNotFound(err):
		return ErrUnknownTask
	}

	if err := s.backend.Delete(ctx, id); err != nil {
		return err
	}
	if _, err := s.backend.Start(ctx, url); err != nil {
		return err
	}
	s.refreshAfterCommand(ctx)
	return nil
}
