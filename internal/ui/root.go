package ui

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/dlmaster/download-master/internal/config"
	"github.com/dlmaster/download-master/internal/control"
	"github.com/dlmaster/download-master/internal/filter"
	"github.com/dlmaster/download-master/internal/format"
	"github.com/dlmaster/download-master/internal/model"
)

// RootUI represents the main UI structure
type RootUI struct {
	ctx      context.Context
	window   fyne.Window
	app      fyne.App
	ctrl     *control.Service
	settings *config.Settings

	urlEntry   *widget.Entry
	startBtn   *widget.Button
	pasteBtn   *widget.Button
	filterSel  *widget.Select
	statsLabel *widget.Label
	errorLabel *widget.Label
	taskList   *widget.List

	mu            sync.Mutex
	currentBucket filter.Bucket
	filteredTasks []*model.Task
	lastStatus    map[string]model.TaskStatus
}

// NewRootUI creates and initializes the main UI. The context bounds every
// command the UI issues; canceling it on teardown abandons in-flight work.
func NewRootUI(ctx context.Context, window fyne.Window, app fyne.App, ctrl *control.Service) *RootUI {
	settings := config.NewSettings(app)

	ui := &RootUI{
		ctx:           ctx,
		window:        window,
		app:           app,
		ctrl:          ctrl,
		settings:      settings,
		currentBucket: filter.Bucket(settings.GetFilterBucket()),
		lastStatus:    make(map[string]model.TaskStatus),
	}

	ctrl.SetUpdateCallback(ui.onStateRefresh)

	ui.setupUI()
	ui.prefillFromClipboard(false)
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder("Enter download URL")
	ui.urlEntry.Validator = ui.validateURL
	ui.urlEntry.OnSubmitted = func(string) { ui.onStartClick() }

	ui.startBtn = widget.NewButton("Download", ui.onStartClick)
	ui.startBtn.Importance = widget.HighImportance

	ui.pasteBtn = widget.NewButton(IconPaste, func() { ui.prefillFromClipboard(true) })
	ui.pasteBtn.Importance = widget.LowImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil,
		settingsBtn,
		container.NewHBox(ui.pasteBtn, ui.startBtn),
		ui.urlEntry,
	)

	ui.errorLabel = widget.NewLabel("")
	ui.errorLabel.Wrapping = fyne.TextWrapWord
	ui.errorLabel.Importance = widget.DangerImportance
	ui.errorLabel.Hide()

	labels := make([]string, 0)
	for _, bucket := range filter.Buckets() {
		labels = append(labels, bucket.Label())
	}
	ui.filterSel = widget.NewSelect(labels, ui.onFilterChange)

	ui.statsLabel = widget.NewLabel("")

	ui.taskList = widget.NewList(
		func() int {
			ui.mu.Lock()
			defer ui.mu.Unlock()
			return len(ui.filteredTasks)
		},
		func() fyne.CanvasObject {
			return NewTaskRow(ui.onPauseTask, ui.onResumeTask, ui.onRetryTask, ui.onDeleteTask)
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			ui.mu.Lock()
			var task *model.Task
			if id >= 0 && int(id) < len(ui.filteredTasks) {
				task = ui.filteredTasks[id]
			}
			ui.mu.Unlock()
			if row, ok := obj.(*TaskRow); ok && task != nil {
				row.SetTask(task)
			}
		},
	)

	// Select after the list exists; the callback repaints it
	ui.filterSel.SetSelected(ui.currentBucket.Label())

	ui.createMenu()

	topCombined := container.NewVBox(topPanel, ui.errorLabel)
	bottomPanel := container.NewBorder(nil, nil, ui.filterSel, nil, ui.statsLabel)

	content := container.NewBorder(
		topCombined, // top
		bottomPanel, // bottom
		nil,         // left
		nil,         // right
		ui.taskList, // center
	)

	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	bulkItem := fyne.NewMenuItem("Add Multiple URLs…", ui.onShowBulkDialog)
	settingsItem := fyne.NewMenuItem("Settings", ui.onShowSettings)

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu("File", bulkItem, fyne.NewMenuItemSeparator(), settingsItem),
	)
	ui.window.SetMainMenu(mainMenu)
}

// onStateRefresh is invoked by the control service after every applied
// refresh. It may run off the UI thread.
func (ui *RootUI) onStateRefresh() {
	fyne.Do(func() {
		ui.reloadTasks()
		ui.reloadStats()
	})
}

// reloadTasks rebuilds the filtered view and fires completion notifications
func (ui *RootUI) reloadTasks() {
	tasks := ui.ctrl.Tasks().Snapshot()

	ui.mu.Lock()
	ui.filteredTasks = filter.Apply(tasks, ui.currentBucket)

	notify := ui.settings.GetNotifyOnComplete()
	seen := make(map[string]model.TaskStatus, len(tasks))
	var completed []*model.Task
	for _, task := range tasks {
		seen[task.ID] = task.Status
		if notify && task.Status == model.TaskStatusCompleted {
			if prev, ok := ui.lastStatus[task.ID]; ok && prev != model.TaskStatusCompleted {
				completed = append(completed, task)
			}
		}
	}
	ui.lastStatus = seen
	ui.mu.Unlock()

	for _, task := range completed {
		ui.app.SendNotification(fyne.NewNotification("Download complete", task.DisplayName()))
	}

	ui.taskList.Refresh()
}

// reloadStats repaints the backend-computed aggregate line
func (ui *RootUI) reloadStats() {
	snap := ui.ctrl.Stats().Get()
	ui.statsLabel.SetText(fmt.Sprintf("%d tasks%s%d active%s%d completed%s%s%s%s avg",
		snap.Total, MiddleDotSeparator,
		snap.Active, MiddleDotSeparator,
		snap.Completed, MiddleDotSeparator,
		format.Size(snap.TotalSize), MiddleDotSeparator,
		format.Speed(snap.AvgSpeed)))
}

// onFilterChange switches the display bucket
func (ui *RootUI) onFilterChange(label string) {
	selected := filter.BucketAll
	for _, bucket := range filter.Buckets() {
		if bucket.Label() == label {
			selected = bucket
			break
		}
	}

	ui.mu.Lock()
	ui.currentBucket = selected
	ui.mu.Unlock()

	ui.settings.SetFilterBucket(string(selected))
	ui.reloadTasks()
}

// validateURL validates the entered URL
func (ui *RootUI) validateURL(input string) error {
	if strings.TrimSpace(input) == "" {
		return nil // empty is allowed; start is a no-op
	}

	parsed, err := url.Parse(strings.TrimSpace(input))
	if err != nil {
		return err
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("URL must start with http:// or https://")
	}
	return nil
}

// onStartClick handles the download button click
func (ui *RootUI) onStartClick() {
	urlText := strings.TrimSpace(ui.urlEntry.Text)
	if urlText == "" {
		return
	}
	if err := ui.validateURL(urlText); err != nil {
		ui.showError("Invalid URL: " + err.Error())
		return
	}

	// Disable submission until the in-flight start settles
	ui.startBtn.Disable()
	ui.clearError()

	go func() {
		err := ui.ctrl.StartDownload(ui.ctx, urlText)
		fyne.Do(func() {
			ui.startBtn.Enable()
			if err != nil {
				// Input is left unchanged so the user can correct and resubmit
				ui.showError("Start failed: " + err.Error())
				return
			}
			ui.urlEntry.SetText("")
		})
	}()
}

// onShowBulkDialog collects several URLs and starts them in one command
func (ui *RootUI) onShowBulkDialog() {
	entry := widget.NewMultiLineEntry()
	entry.SetPlaceHolder("One URL per line")

	d := dialog.NewCustomConfirm("Add Multiple URLs", "Start All", "Cancel", entry, func(confirmed bool) {
		if !confirmed {
			return
		}
		urls := strings.Split(entry.Text, "\n")
		go func() {
			if err := ui.ctrl.StartBulk(ui.ctx, urls); err != nil {
				fyne.Do(func() { ui.showError("Bulk start failed: " + err.Error()) })
			}
		}()
	}, ui.window)

	d.Resize(fyne.NewSize(BulkDialogWidth, BulkDialogHeight))
	d.Show()
}

func (ui *RootUI) onPauseTask(taskID string) {
	ui.runCommand("pause", func() error { return ui.ctrl.Pause(ui.ctx, taskID) })
}

func (ui *RootUI) onResumeTask(taskID string) {
	ui.runCommand("resume", func() error { return ui.ctrl.Resume(ui.ctx, taskID) })
}

func (ui *RootUI) onRetryTask(taskID string) {
	ui.runCommand("retry", func() error { return ui.ctrl.Retry(ui.ctx, taskID) })
}

func (ui *RootUI) onDeleteTask(taskID string) {
	if !ui.settings.GetConfirmBeforeDelete() {
		ui.runCommand("delete", func() error { return ui.ctrl.Delete(ui.ctx, taskID) })
		return
	}

	name := taskID
	if task, ok := ui.ctrl.Tasks().Lookup(taskID); ok {
		name = task.DisplayName()
	}
	dialog.ShowConfirm("Delete download", "Remove \""+name+"\" from the backend?", func(confirmed bool) {
		if confirmed {
			ui.runCommand("delete", func() error { return ui.ctrl.Delete(ui.ctx, taskID) })
		}
	}, ui.window)
}

// runCommand dispatches one lifecycle command off the UI thread and surfaces
// a rejection instead of swallowing it
func (ui *RootUI) runCommand(name string, command func() error) {
	ui.clearError()
	go func() {
		if err := command(); err != nil {
			log.Printf("%s command failed: %v", name, err)
			fyne.Do(func() { ui.showError(capitalize(name) + " failed: " + err.Error()) })
		}
	}()
}

// prefillFromClipboard fills the URL field from the system clipboard. The
// clipboard may be empty or denied by the host; the field is then left
// unchanged. On startup (explicit=false) this only runs when the auto-paste
// setting is on.
func (ui *RootUI) prefillFromClipboard(explicit bool) {
	if !explicit && !ui.settings.GetAutoPasteClipboard() {
		return
	}
	content := strings.TrimSpace(ui.window.Clipboard().Content())
	if content == "" || ui.validateURL(content) != nil {
		return
	}
	ui.urlEntry.SetText(content)
}

func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.window).Show()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (ui *RootUI) showError(message string) {
	ui.errorLabel.SetText(message)
	ui.errorLabel.Show()
}

func (ui *RootUI) clearError() {
	ui.errorLabel.SetText("")
	ui.errorLabel.Hide()
}
