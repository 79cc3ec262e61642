package control

import (
	"context"
	"errors"
	"log"
	"strings"
)

// ErrStartInFlight is returned when a start command is issued while a
// previous one has not completed. The UI disables submission while a start
// is pending; this guard backs that up at the service level.
var ErrStartInFlight = errors.New("a start command is already in flight")

// StartDownload asks the backend to create a download for the URL. A URL that
// is empty after trimming is a silent no-op: no network call is made.
// On success one out-of-band refresh is triggered so the new task shows up
// without waiting for the next poll tick.
func (s *Service) StartDownload(ctx context.Context, rawURL string) error {
	url := strings.TrimSpace(rawURL)
	if url == "" {
		return nil
	}

	s.mu.Lock()
	if s.startInFlight {
		s.mu.Unlock()
		return ErrStartInFlight
	}
	s.startInFlight = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.startInFlight = false
		s.mu.Unlock()
	}()

	if _, err := s.backend.Start(ctx, url); err != nil {
		return err
	}
	s.refreshAfterCommand(ctx)
	return nil
}

// StartBulk starts one download per URL. Blank entries are dropped after
// trimming; an empty remainder is a silent no-op.
func (s *Service) StartBulk(ctx context.Context, rawURLs []string) error {
	urls := make([]string, 0, len(rawURLs))
	for _, raw := range rawURLs {
		if url := strings.TrimSpace(raw); url != "" {
			urls = append(urls, url)
		}
	}
	if len(urls) == 0 {
		return nil
	}

	if _, err := s.backend.StartBulk(ctx, urls); err != nil {
		return err
	}
	s.refreshAfterCommand(ctx)
	return nil
}

// Pause pauses the task. On failure no local state changes and no refresh is
// triggered; the stale status stays visible until the next poll.
func (s *Service) Pause(ctx context.Context, id string) error {
	if err := s.backend.Pause(ctx, id); err != nil {
		return err
	}
	s.refreshAfterCommand(ctx)
	return nil
}

// Resume resumes the paused task
func (s *Service) Resume(ctx context.Context, id string) error {
	if err := s.backend.Resume(ctx, id); err != nil {
		return err
	}
	s.refreshAfterCommand(ctx)
	return nil
}

// Delete removes the task from the backend. The local record disappears with
// the refresh that reflects the deletion, never before.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.backend.Delete(ctx, id); err != nil {
		return err
	}
	s.refreshAfterCommand(ctx)
	return nil
}

// refreshAfterCommand runs the post-command refresh. The command itself
// already succeeded, so a failed refresh is only logged; the next poll tick
// will catch up.
func (s *Service) refreshAfterCommand(ctx context.Context) {
	if err := s.Refresh(ctx); err != nil && ctx.Err() == nil {
		log.Printf("post-command refresh failed: %v", err)
	}
}
