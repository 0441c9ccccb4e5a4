package config

import (
	"fyne.io/fyne/v2"

	"tubetune/internal/model"
	"tubetune/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir        = "download_directory"
	KeyDefaultBitrate     = "default_bitrate_kbps"
	KeyDarkMode           = "dark_mode"
	KeyAutoRevealComplete = "auto_reveal_on_complete"
	KeyLogLevel           = "log_level"
)

// Default values
const (
	DefaultBitrate            = 192
	DefaultDarkMode           = true
	DefaultAutoRevealComplete = false
	DefaultLogLevel           = "info"
)

// Settings manages application configuration persisted via Fyne preferences.
// Environment variables provide first-run defaults, see Env.
type Settings struct {
	app fyne.App
	env Env
}

// NewSettings creates a new settings manager.
func NewSettings(app fyne.App, env Env) *Settings {
	return &Settings{app: app, env: env}
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		defaultDir := s.env.DownloadDir
		if defaultDir == "" {
			var err error
			defaultDir, err = platform.GetHomeDownloadsDir()
			if err != nil {
				defaultDir = "/tmp/downloads"
			}
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetDefaultBitrate returns the default target bitrate in kbit/s
func (s *Settings) GetDefaultBitrate() int {
	value := s.app.Preferences().Int(KeyDefaultBitrate)
	if value == 0 {
		value = s.env.BitrateKbps
	}
	if !model.IsAllowedBitrate(value) {
		s.SetDefaultBitrate(DefaultBitrate)
		return DefaultBitrate
	}
	return value
}

// SetDefaultBitrate sets the default target bitrate, rejecting unknown values
func (s *Settings) SetDefaultBitrate(kbps int) {
	if !model.IsAllowedBitrate(kbps) {
		kbps = DefaultBitrate
	}
	s.app.Preferences().SetInt(KeyDefaultBitrate, kbps)
}

// GetBitrateOptions returns the selectable bitrate values
func (s *Settings) GetBitrateOptions() []int {
	return model.AllowedBitrates
}

// GetDarkMode returns whether the dark palette is active
func (s *Settings) GetDarkMode() bool {
	return s.app.Preferences().BoolWithFallback(KeyDarkMode, DefaultDarkMode)
}

// SetDarkMode sets whether the dark palette is active
func (s *Settings) SetDarkMode(dark bool) {
	s.app.Preferences().SetBool(KeyDarkMode, dark)
}

// GetAutoRevealOnComplete returns whether to reveal completed downloads
func (s *Settings) GetAutoRevealOnComplete() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoRevealComplete, DefaultAutoRevealComplete)
}

// SetAutoRevealOnComplete sets whether to reveal completed downloads
func (s *Settings) SetAutoRevealOnComplete(autoReveal bool) {
	s.app.Preferences().SetBool(KeyAutoRevealComplete, autoReveal)
}

// GetLogLevel returns the configured log level
func (s *Settings) GetLogLevel() string {
	level := s.app.Preferences().String(KeyLogLevel)
	if level == "" {
		level = s.env.LogLevel
		if level == "" {
			level = DefaultLogLevel
		}
		s.SetLogLevel(level)
	}
	return level
}

// SetLogLevel sets the log level
func (s *Settings) SetLogLevel(level string) {
	s.app.Preferences().SetString(KeyLogLevel, level)
}

// GetLogLevelOptions returns selectable log levels
func (s *Settings) GetLogLevelOptions() []string {
	return []string{"debug", "info", "warn", "error"}
}
