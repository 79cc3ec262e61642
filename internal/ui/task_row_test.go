package ui

import (
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/dlmaster/download-master/internal/model"
)

func TestStatusLine(t *testing.T) {
	tests := []struct {
		name     string
		task     model.Task
		contains []string
	}{
		{
			"downloading shows percent and speed",
			model.Task{Status: model.TaskStatusDownloading, Progress: 42, Speed: 1536, TotalSize: 1048576},
			[]string{"downloading", "42%", "1.5 KB/s", "1 MB"},
		},
		{
			"unknown size shows placeholder",
			model.Task{Status: model.TaskStatusPending},
			[]string{"pending", DashPlaceholder},
		},
		{
			"error carries backend message",
			model.Task{Status: model.TaskStatusError, ErrorMessage: "disk full"},
			[]string{"error", "disk full"},
		},
		{
			"source label fallback",
			model.Task{Status: model.TaskStatusCompleted, TotalSize: 1024},
			[]string{"completed", "1 KB", "Direct Download"},
		},
	}

	for _, tt := range tests {
		task := tt.task
		line := statusLine(&task)
		for _, want := range tt.contains {
			if !strings.Contains(line, want) {
				t.Errorf("%s: statusLine() = %q, expected it to contain %q", tt.name, line, want)
			}
		}
	}
}

func TestTaskRow_ActionVisibility(t *testing.T) {
	_ = test.NewApp()

	row := NewTaskRow(nil, nil, nil, nil)

	tests := []struct {
		status     model.TaskStatus
		pause      bool
		resume     bool
		retryShown bool
	}{
		{model.TaskStatusDownloading, true, false, false},
		{model.TaskStatusPaused, false, true, false},
		{model.TaskStatusError, false, false, true},
		{model.TaskStatusCompleted, false, false, false},
	}

	for _, tt := range tests {
		row.SetTask(&model.Task{ID: "1", URL: "u", Status: tt.status})

		if got := row.pauseBtn.Visible(); got != tt.pause {
			t.Errorf("status %s: pause button visible = %v, expected %v", tt.status, got, tt.pause)
		}
		if got := row.resumeBtn.Visible(); got != tt.resume {
			t.Errorf("status %s: resume button visible = %v, expected %v", tt.status, got, tt.resume)
		}
		if got := row.retryBtn.Visible(); got != tt.retryShown {
			t.Errorf("status %s: retry button visible = %v, expected %v", tt.status, got, tt.retryShown)
		}
		if !row.deleteBtn.Visible() {
			t.Errorf("status %s: delete button should always be visible", tt.status)
		}
	}
}

func TestTaskRow_InvokesCallbacks(t *testing.T) {
	_ = test.NewApp()

	var paused, deleted string
	row := NewTaskRow(
		func(id string) { paused = id },
		nil,
		nil,
		func(id string) { deleted = id },
	)
	row.SetTask(&model.Task{ID: "42", Status: model.TaskStatusDownloading})

	test.Tap(row.pauseBtn)
	if paused != "42" {
		t.Errorf("pause callback got %q, expected 42", paused)
	}

	test.Tap(row.deleteBtn)
	if deleted != "42" {
		t.Errorf("delete callback got %q, expected 42", deleted)
	}
}
