package model

import "strings"

// TaskType categorizes a task for icon/category display
type TaskType string

const (
	TaskTypeVideo    TaskType = "video"
	TaskTypeAudio    TaskType = "audio"
	TaskTypeTorrent  TaskType = "torrent"
	TaskTypeDocument TaskType = "document"
	TaskTypeOther    TaskType = "other"
)

// Task mirrors one backend-managed download. All mutable fields are owned by
// the backend; the local copy is a transient cache valid only between
// refreshes and is never written directly by command handlers.
type Task struct {
	ID                string     `json:"id"`
	URL               string     `json:"url"`
	Title             string     `json:"title,omitempty"`
	Filename          string     `json:"filename,omitempty"`
	Type              TaskType   `json:"type,omitempty"`
	Status            TaskStatus `json:"status"`
	Progress          int        `json:"progress"`        // 0-100, meaningful while downloading
	TotalSize         int64      `json:"total_size"`      // 0 until size negotiation completes
	DownloadedSize    int64      `json:"downloaded_size"` // bytes transferred so far
	Speed             float64    `json:"speed"`           // bytes per second, meaningful while downloading
	Source            string     `json:"source,omitempty"`
	ErrorMessage      string     `json:"error_message,omitempty"`
	SupportsMultipart bool       `json:"supports_multipart,omitempty"`
	Connections       int        `json:"connections,omitempty"`
}

// DisplayName returns title, filename, or URL in order of preference
func (t *Task) DisplayName() string {
	if t.Title != "" && !strings.HasPrefix(t.Title, "http") {
		return t.Title
	}
	if t.Filename != "" {
		return t.Filename
	}
	return t.URL
}

// SourceLabel returns the backend-supplied source label, or a generic one
func (t *Task) SourceLabel() string {
	if t.Source != "" {
		return t.Source
	}
	return "Direct Download"
}
