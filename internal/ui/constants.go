package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Control labels
const (
	LabelDownload = "Download"
	LabelBrowse   = "Browse"
	LabelPlay     = "Play"
	LabelStop     = "Stop"
	LabelDarkMode = "Dark mode"
	LabelOpenFile = "Open file"
	LabelReveal   = "Show in folder"
	LabelSettings = "Settings"
)

// Placeholders and status texts
const (
	PlaceholderURL    = "Paste a video URL"
	PlaceholderFolder = "Download folder"
	StatusReady       = "Ready"
	StatusStarting    = "Starting download..."
)

// Layout sizing
const (
	WindowWidth  float32 = 560
	WindowHeight float32 = 360
)

// Volume slider range; the controller maps it onto [0.0, 1.0]
const (
	VolumeSliderMin  float64 = 0
	VolumeSliderMax  float64 = 100
	VolumeSliderStep float64 = 1
)

// progressBuffer sizes the worker-to-UI progress channel; the consumer
// drains it on its own schedule.
const progressBuffer = 16
