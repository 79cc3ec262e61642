package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyConfirmBeforeDelete = "confirm_before_delete"
	KeyAutoPasteClipboard  = "auto_paste_clipboard"
	KeyNotifyOnComplete    = "notify_on_complete"
	KeyFilterBucket        = "filter_bucket"
)

// Default values
const (
	DefaultConfirmBeforeDelete = true
	DefaultAutoPasteClipboard  = false
	DefaultNotifyOnComplete    = true
	DefaultFilterBucket        = "all"
)

// Settings manages the local-only UI toggles. Nothing here is ever
// transmitted to the backend.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetConfirmBeforeDelete returns whether delete actions ask for confirmation
func (s *Settings) GetConfirmBeforeDelete() bool {
	return s.app.Preferences().BoolWithFallback(KeyConfirmBeforeDelete, DefaultConfirmBeforeDelete)
}

// SetConfirmBeforeDelete sets whether delete actions ask for confirmation
func (s *Settings) SetConfirmBeforeDelete(confirm bool) {
	s.app.Preferences().SetBool(KeyConfirmBeforeDelete, confirm)
}

// GetAutoPasteClipboard returns whether the URL field is prefilled from the
// clipboard on startup
func (s *Settings) GetAutoPasteClipboard() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoPasteClipboard, DefaultAutoPasteClipboard)
}

// SetAutoPasteClipboard sets whether the URL field is prefilled from the clipboard
func (s *Settings) SetAutoPasteClipboard(auto bool) {
	s.app.Preferences().SetBool(KeyAutoPasteClipboard, auto)
}

// GetNotifyOnComplete returns whether a system notification is shown when a
// task reaches the completed status
func (s *Settings) GetNotifyOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyNotifyOnComplete, DefaultNotifyOnComplete)
}

// SetNotifyOnComplete sets whether completion notifications are shown
func (s *Settings) SetNotifyOnComplete(notify bool) {
	s.app.Preferences().SetBool(KeyNotifyOnComplete, notify)
}

// GetFilterBucket returns the last selected display filter bucket
func (s *Settings) GetFilterBucket() string {
	bucket := s.app.Preferences().String(KeyFilterBucket)
	if bucket == "" {
		return DefaultFilterBucket
	}
	return bucket
}

// SetFilterBucket remembers the selected display filter bucket
func (s *Settings) SetFilterBucket(bucket string) {
	s.app.Preferences().SetString(KeyFilterBucket, bucket)
}
