package control

import (
	"context"
	"testing"
	"time"

	"github.com/dlmaster/download-master/internal/model"
)

func TestRun_PollsImmediatelyAndOnInterval(t *testing.T) {
	f := &fakeBackend{
		tasks: []model.Task{{ID: "1", Status: model.TaskStatusDownloading}},
	}
	s := newTestService(f, 20*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	// The startup refresh plus at least one tick
	deadline := time.Now().Add(2 * time.Second)
	for f.count("LIST") < 2 {
		if time.Now().After(deadline) {
			t.Fatal("poller never reached a second refresh")
		}
		time.Sleep(5 * time.Millisecond)
	}

	if s.Tasks().Len() != 1 {
		t.Errorf("task store not populated by poller: Len() = %d", s.Tasks().Len())
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

func TestRun_StopsIssuingQueriesAfterCancel(t *testing.T) {
	f := &fakeBackend{}
	s := newTestService(f, 10*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done

	// Give any straggler goroutines a moment, then the count must hold still
	time.Sleep(30 * time.Millisecond)
	before := f.count("LIST")
	time.Sleep(50 * time.Millisecond)
	after := f.count("LIST")

	if after != before {
		t.Errorf("poller issued %d queries after teardown", after-before)
	}
}
