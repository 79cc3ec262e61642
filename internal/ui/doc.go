package ui

// Package ui contains the Fyne-based desktop user interface. It wires user
// intent to the control service and renders the mirrored backend state:
// the task list with per-status actions, the stats bar, the display filter,
// and settings. The UI never mutates task state itself; it issues commands
// and repaints when the control service reports a refresh.
