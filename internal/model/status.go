package model

// TaskStatus represents the backend-reported lifecycle phase of a download task
type TaskStatus string

const (
	// TaskStatusPending means the task is queued on the backend but not started
	TaskStatusPending TaskStatus = "pending"

	// TaskStatusDownloading means the backend is transferring bytes
	TaskStatusDownloading TaskStatus = "downloading"

	// TaskStatusPaused means the transfer was paused by user command
	TaskStatusPaused TaskStatus = "paused"

	// TaskStatusCompleted means the task finished successfully
	TaskStatusCompleted TaskStatus = "completed"

	// TaskStatusError means the task failed on the backend
	TaskStatusError TaskStatus = "error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the backend is still working on the task
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusPending || ts == TaskStatusDownloading
}

// IsFinished returns true if the task reached a terminal state (completed or error)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusError
}

// CanPause returns true if a pause command is valid for this status
func (ts TaskStatus) CanPause() bool {
	return ts == TaskStatusDownloading
}

// CanResume returns true if a resume command is valid for this status
func (ts TaskStatus) CanResume() bool {
	return ts == TaskStatusPaused
}

// CanRetry returns true if a retry (delete then start) makes sense for this status
func (ts TaskStatus) CanRetry() bool {
	return ts == TaskStatusError
}
