package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"tubetune/internal/config"
	"tubetune/internal/download"
	"tubetune/internal/platform"
	"tubetune/internal/player"
	"tubetune/internal/ui"
	"tubetune/pkg/logging"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.tubetune.app"
	AppName = "TubeTune"

	WindowWidth  = 560
	WindowHeight = 360
)

func main() {
	// Environment overrides feed first-run defaults
	env, err := config.LoadEnv()
	if err != nil {
		fmt.Printf("failed to parse environment: %v\n", err)
	}

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Initialize settings and the root logger
	settings := config.NewSettings(myApp, env)
	log := logging.New(logging.Options{
		Level:   settings.GetLogLevel(),
		Console: env.LogConsole,
	})
	log.Info().Str("version", version).Msg("starting")

	// Apply the persisted palette
	myApp.Settings().SetTheme(ui.NewAppTheme(settings.GetDarkMode()))

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Ensure the download directory exists
	downloadsDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadsDir); err != nil {
		log.Warn().Err(err).Str("dir", downloadsDir).Msg("failed to ensure downloads dir")
	}

	// Warn early when the encoder is missing; sessions re-check before running
	if _, err := platform.EncoderPath(); err != nil {
		log.Warn().Err(err).Msg("encoder not found, downloads will fail until it is installed")
	}

	// Initialize services
	downloadSvc := download.NewService(download.NewYTDLP(log), log)
	playerCtl := player.NewController(player.NewBeepMixer(log), log)

	// Create and setup UI
	ui.NewRootUI(myWindow, myApp, settings, downloadSvc, playerCtl, log)

	// Show and run
	myWindow.ShowAndRun()
}
