package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestConfirmBeforeDelete(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetConfirmBeforeDelete() {
		t.Error("confirm-before-delete should default to true")
	}

	settings.SetConfirmBeforeDelete(false)
	if settings.GetConfirmBeforeDelete() {
		t.Error("confirm-before-delete should be false after SetConfirmBeforeDelete(false)")
	}
}

func TestAutoPasteClipboard(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.GetAutoPasteClipboard() {
		t.Error("auto-paste should default to false")
	}

	settings.SetAutoPasteClipboard(true)
	if !settings.GetAutoPasteClipboard() {
		t.Error("auto-paste should be true after SetAutoPasteClipboard(true)")
	}
}

func TestNotifyOnComplete(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetNotifyOnComplete() {
		t.Error("notify-on-complete should default to true")
	}

	settings.SetNotifyOnComplete(false)
	if settings.GetNotifyOnComplete() {
		t.Error("notify-on-complete should be false after SetNotifyOnComplete(false)")
	}
}

func TestFilterBucket(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if got := settings.GetFilterBucket(); got != DefaultFilterBucket {
		t.Errorf("filter bucket default = %s, expected %s", got, DefaultFilterBucket)
	}

	settings.SetFilterBucket("video")
	if got := settings.GetFilterBucket(); got != "video" {
		t.Errorf("filter bucket = %s, expected video", got)
	}
}
