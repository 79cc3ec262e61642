// Package filter classifies tasks into named display buckets. Classification
// is a pure function of the task's filename extension or status; buckets are
// evaluated independently, not hierarchically.
package filter

import (
	"path"
	"strings"

	"github.com/dlmaster/download-master/internal/model"
)

// Bucket names a single-select display filter
type Bucket string

const (
	BucketAll       Bucket = "all"
	BucketVideo     Bucket = "video"
	BucketDocuments Bucket = "documents"
	BucketPrograms  Bucket = "programs"
	BucketCompleted Bucket = "completed"
)

// Buckets lists the selectable buckets in display order
func Buckets() []Bucket {
	return []Bucket{BucketAll, BucketVideo, BucketDocuments, BucketPrograms, BucketCompleted}
}

// Label returns the display name for the bucket select widget
func (b Bucket) Label() string {
	switch b {
	case BucketVideo:
		return "Video"
	case BucketDocuments:
		return "Documents"
	case BucketPrograms:
		return "Programs"
	case BucketCompleted:
		return "Completed"
	default:
		return "All"
	}
}

var (
	videoExts    = map[string]bool{"mp4": true, "avi": true, "mkv": true, "mov": true, "wmv": true}
	documentExts = map[string]bool{"pdf": true, "doc": true, "docx": true, "txt": true, "rtf": true}
	programExts  = map[string]bool{"exe": true, "msi": true, "dmg": true, "pkg": true}
	audioExts    = map[string]bool{"mp3": true, "wav": true, "flac": true, "m4a": true, "ogg": true, "aac": true}
)

// Matches reports whether the task belongs to the bucket. A task with no
// filename never matches an extension-based bucket. Unknown bucket names
// behave as BucketAll.
func Matches(task *model.Task, bucket Bucket) bool {
	switch bucket {
	case BucketVideo:
		return videoExts[ext(task.Filename)]
	case BucketDocuments:
		return documentExts[ext(task.Filename)]
	case BucketPrograms:
		return programExts[ext(task.Filename)]
	case BucketCompleted:
		return task.Status == model.TaskStatusCompleted
	default:
		return true
	}
}

// Apply returns the tasks that belong to the bucket, preserving order
func Apply(tasks []*model.Task, bucket Bucket) []*model.Task {
	filtered := make([]*model.Task, 0, len(tasks))
	for _, task := range tasks {
		if Matches(task, bucket) {
			filtered = append(filtered, task)
		}
	}
	return filtered
}

// TypeOf derives a task type from the filename when the backend omits one
func TypeOf(filename string) model.TaskType {
	e := ext(filename)
	switch {
	case videoExts[e]:
		return model.TaskTypeVideo
	case audioExts[e]:
		return model.TaskTypeAudio
	case documentExts[e]:
		return model.TaskTypeDocument
	case e == "torrent":
		return model.TaskTypeTorrent
	default:
		return model.TaskTypeOther
	}
}

func ext(filename string) string {
	if filename == "" {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
}
