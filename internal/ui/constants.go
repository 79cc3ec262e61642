package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconPause    = "⏸"
	IconResume   = "▶"
	IconRetry    = "↻"
	IconDelete   = "🗑"
	IconPaste    = "📋"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Layout sizing
const (
	WindowWidth  float32 = 820
	WindowHeight float32 = 560

	RowMinWidth  float32 = 400
	RowMinHeight float32 = 64

	SettingsDialogWidth  float32 = 420
	SettingsDialogHeight float32 = 300

	BulkDialogWidth  float32 = 480
	BulkDialogHeight float32 = 320
)
