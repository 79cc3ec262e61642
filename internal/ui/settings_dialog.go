package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/dlmaster/download-master/internal/config"
)

// SettingsDialog edits the local-only UI toggles. Nothing here changes
// backend behavior.
type SettingsDialog struct {
	settings *config.Settings
	window   fyne.Window
	dialog   *dialog.ConfirmDialog

	confirmDeleteCheck *widget.Check
	autoPasteCheck     *widget.Check
	notifyCheck        *widget.Check
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(settings *config.Settings, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		settings: settings,
		window:   window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.confirmDeleteCheck = widget.NewCheck("Ask before deleting a download", nil)
	sd.autoPasteCheck = widget.NewCheck("Prefill URL from clipboard on startup", nil)
	sd.notifyCheck = widget.NewCheck("Notify when a download completes", nil)

	form := container.NewVBox(
		widget.NewLabel("Interface Settings"),
		widget.NewSeparator(),
		sd.confirmDeleteCheck,
		sd.autoPasteCheck,
		sd.notifyCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		"Settings",
		"Save",
		"Cancel",
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.confirmDeleteCheck.SetChecked(sd.settings.GetConfirmBeforeDelete())
	sd.autoPasteCheck.SetChecked(sd.settings.GetAutoPasteClipboard())
	sd.notifyCheck.SetChecked(sd.settings.GetNotifyOnComplete())
}

// onSave persists the toggles when the dialog is confirmed
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.settings.SetConfirmBeforeDelete(sd.confirmDeleteCheck.Checked)
	sd.settings.SetAutoPasteClipboard(sd.autoPasteCheck.Checked)
	sd.settings.SetNotifyOnComplete(sd.notifyCheck.Checked)
}
