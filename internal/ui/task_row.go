package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/dlmaster/download-master/internal/format"
	"github.com/dlmaster/download-master/internal/model"
)

// TaskRow is a compact one-task row: name, status line, progress bar, and the
// lifecycle actions valid for the current status.
type TaskRow struct {
	widget.BaseWidget

	taskID string

	nameLabel   *widget.Label
	statusLabel *widget.Label
	progressBar *widget.ProgressBar

	pauseBtn  *widget.Button
	resumeBtn *widget.Button
	retryBtn  *widget.Button
	deleteBtn *widget.Button

	content *fyne.Container

	// Callbacks into the command dispatcher
	onPause  func(taskID string)
	onResume func(taskID string)
	onRetry  func(taskID string)
	onDelete func(taskID string)
}

// NewTaskRow creates an empty row; SetTask fills it
func NewTaskRow(onPause, onResume, onRetry, onDelete func(taskID string)) *TaskRow {
	tr := &TaskRow{
		onPause:  onPause,
		onResume: onResume,
		onRetry:  onRetry,
		onDelete: onDelete,
	}
	tr.ExtendBaseWidget(tr)
	tr.createUI()
	return tr
}

func (tr *TaskRow) createUI() {
	tr.nameLabel = widget.NewLabel("")
	tr.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	tr.nameLabel.Truncation = fyne.TextTruncateEllipsis

	tr.statusLabel = widget.NewLabel("")
	tr.statusLabel.Truncation = fyne.TextTruncateEllipsis

	tr.progressBar = widget.NewProgressBar()

	tr.pauseBtn = widget.NewButton(IconPause, func() { tr.invoke(tr.onPause) })
	tr.resumeBtn = widget.NewButton(IconResume, func() { tr.invoke(tr.onResume) })
	tr.retryBtn = widget.NewButton(IconRetry, func() { tr.invoke(tr.onRetry) })
	tr.deleteBtn = widget.NewButton(IconDelete, func() { tr.invoke(tr.onDelete) })
	tr.deleteBtn.Importance = widget.LowImportance

	buttons := container.NewHBox(tr.pauseBtn, tr.resumeBtn, tr.retryBtn, tr.deleteBtn)
	info := container.NewVBox(tr.nameLabel, tr.statusLabel, tr.progressBar)
	tr.content = container.NewBorder(nil, nil, nil, buttons, info)
}

func (tr *TaskRow) invoke(callback func(taskID string)) {
	if callback != nil && tr.taskID != "" {
		callback(tr.taskID)
	}
}

// SetTask repaints the row for the given task
func (tr *TaskRow) SetTask(task *model.Task) {
	if task == nil {
		return
	}
	tr.taskID = task.ID

	tr.nameLabel.SetText(task.DisplayName())
	tr.statusLabel.SetText(statusLine(task))

	switch task.Status {
	case model.TaskStatusDownloading:
		tr.progressBar.SetValue(float64(task.Progress) / 100)
		tr.progressBar.Show()
	case model.TaskStatusCompleted:
		tr.progressBar.SetValue(1)
		tr.progressBar.Show()
	default:
		tr.progressBar.Hide()
	}

	showIf(tr.pauseBtn, task.Status.CanPause())
	showIf(tr.resumeBtn, task.Status.CanResume())
	showIf(tr.retryBtn, task.Status.CanRetry())
	tr.deleteBtn.Show()

	tr.Refresh()
}

// CreateRenderer implements fyne.Widget
func (tr *TaskRow) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(tr.content)
}

// MinSize keeps rows readable in narrow windows
func (tr *TaskRow) MinSize() fyne.Size {
	min := tr.BaseWidget.MinSize()
	if min.Width < RowMinWidth {
		min.Width = RowMinWidth
	}
	if min.Height < RowMinHeight {
		min.Height = RowMinHeight
	}
	return min
}

func showIf(btn *widget.Button, visible bool) {
	if visible {
		btn.Show()
	} else {
		btn.Hide()
	}
}

// statusLine builds the one-line summary under the task name, e.g.
// "downloading · 42% · 1.5 MB/s · 10 MB · Direct Download"
func statusLine(task *model.Task) string {
	parts := []string{task.Status.String()}

	if task.Status == model.TaskStatusDownloading {
		parts = append(parts, fmt.Sprintf("%d%%", task.Progress))
		parts = append(parts, format.Speed(task.Speed))
	}
	if task.TotalSize > 0 {
		parts = append(parts, format.Size(task.TotalSize))
	} else {
		parts = append(parts, DashPlaceholder)
	}
	parts = append(parts, task.SourceLabel())

	if task.Status == model.TaskStatusError && task.ErrorMessage != "" {
		parts = append(parts, task.ErrorMessage)
	}

	return strings.Join(parts, MiddleDotSeparator)
}
