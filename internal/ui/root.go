package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"tubetune/internal/config"
	"tubetune/internal/download"
	"tubetune/internal/errs"
	"tubetune/internal/model"
	"tubetune/internal/platform"
	"tubetune/internal/player"
	"tubetune/pkg/urls"
)

// RootUI represents the main UI structure
type RootUI struct {
	window      fyne.Window
	app         fyne.App
	settings    *config.Settings
	downloadSvc download.Runner
	player      *player.Controller
	log         zerolog.Logger

	// Request form
	urlEntry      *widget.Entry
	bitrateSelect *widget.Select
	folderEntry   *widget.Entry
	downloadBtn   *widget.Button

	// Progress and status
	progressBar *widget.ProgressBar
	statusLabel *widget.Label

	// Playback transport
	playBtn      *widget.Button
	pauseBtn     *widget.Button
	stopBtn      *widget.Button
	volumeSlider *widget.Slider

	// Post-download actions
	openBtn   *widget.Button
	revealBtn *widget.Button

	// Last successful download, owned by the shell
	lastResult *model.DownloadResult
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, settings *config.Settings, downloadSvc download.Runner, playerCtl *player.Controller, log zerolog.Logger) *RootUI {
	ui := &RootUI{
		window:      window,
		app:         app,
		settings:    settings,
		downloadSvc: downloadSvc,
		player:      playerCtl,
		log:         log.With().Str("component", "ui").Logger(),
	}

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	// Create URL entry
	ui.urlEntry = widget.NewEntry()
	ui.urlEntry.SetPlaceHolder(PlaceholderURL)
	ui.urlEntry.Validator = ui.validateURL
	// Trigger download when user presses Enter in the URL field
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onDownloadClick()
	}

	// Create bitrate selection
	options := make([]string, 0, len(ui.settings.GetBitrateOptions()))
	for _, kbps := range ui.settings.GetBitrateOptions() {
		options = append(options, strconv.Itoa(kbps))
	}
	ui.bitrateSelect = widget.NewSelect(options, nil)
	ui.bitrateSelect.SetSelected(strconv.Itoa(ui.settings.GetDefaultBitrate()))

	// Create folder entry with browse button
	ui.folderEntry = widget.NewEntry()
	ui.folderEntry.SetPlaceHolder(PlaceholderFolder)
	ui.folderEntry.SetText(ui.settings.GetDownloadDirectory())
	browseBtn := widget.NewButton(LabelBrowse, ui.onBrowseFolder)

	// Create download button
	ui.downloadBtn = widget.NewButton(LabelDownload, ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance

	// Create progress indicator and status line
	ui.progressBar = widget.NewProgressBar()
	ui.statusLabel = widget.NewLabel(StatusReady)
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis

	// Create playback transport, disabled until a download succeeds
	ui.playBtn = widget.NewButton(LabelPlay, ui.onPlayClick)
	ui.pauseBtn = widget.NewButton(player.LabelPause, ui.onPauseResumeClick)
	ui.stopBtn = widget.NewButton(LabelStop, ui.onStopClick)
	ui.volumeSlider = widget.NewSlider(VolumeSliderMin, VolumeSliderMax)
	ui.volumeSlider.Step = VolumeSliderStep
	ui.volumeSlider.Value = ui.player.Volume() * VolumeSliderMax
	ui.volumeSlider.OnChanged = ui.onVolumeChanged

	// Create post-download actions
	ui.openBtn = widget.NewButton(LabelOpenFile, ui.onOpenFile)
	ui.revealBtn = widget.NewButton(LabelReveal, ui.onRevealFile)

	ui.setTransportEnabled(false)

	// Create dark mode toggle and settings access
	darkCheck := widget.NewCheck(LabelDarkMode, ui.onDarkModeToggled)
	darkCheck.SetChecked(ui.settings.GetDarkMode())
	settingsBtn := widget.NewButton(LabelSettings, ui.onShowSettings)

	// Arrange the single-window form
	form := container.NewVBox(
		widget.NewLabel("Video URL:"),
		ui.urlEntry,
		container.NewBorder(nil, nil, widget.NewLabel("Bitrate (kbps):"), nil, ui.bitrateSelect),
		widget.NewLabel("Save to:"),
		container.NewBorder(nil, nil, nil, browseBtn, ui.folderEntry),
		ui.downloadBtn,
		ui.progressBar,
		ui.statusLabel,
		widget.NewSeparator(),
		container.NewGridWithColumns(3, ui.playBtn, ui.pauseBtn, ui.stopBtn),
		container.NewBorder(nil, nil, widget.NewLabel("Volume:"), nil, ui.volumeSlider),
		container.NewGridWithColumns(2, ui.openBtn, ui.revealBtn),
		widget.NewSeparator(),
		container.NewBorder(nil, nil, darkCheck, settingsBtn),
	)

	ui.window.SetContent(form)
	ui.window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
}

// validateURL validates the URL entry content
func (ui *RootUI) validateURL(input string) error {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil // empty field shows no error
	}
	if !urls.IsSupportedVideoURL(input) {
		return errs.ErrInvalidURL
	}
	return nil
}

// onDownloadClick starts one download session on a worker goroutine. The
// session's progress events are drained by a consumer goroutine that
// marshals widget updates back onto the interactive thread.
func (ui *RootUI) onDownloadClick() {
	// One session at a time; the service guard is authoritative, this
	// check only keeps the button honest.
	if ui.downloadSvc.Active() {
		ui.statusLabel.SetText("A download is already running")
		return
	}

	req := model.DownloadRequest{
		URL:         strings.TrimSpace(ui.urlEntry.Text),
		TargetDir:   strings.TrimSpace(ui.folderEntry.Text),
		BitrateKbps: ui.selectedBitrate(),
	}

	ui.setDownloadInProgress(true)
	ui.progressBar.SetValue(0)
	ui.statusLabel.SetText(StatusStarting)

	progress := make(chan model.ProgressEvent, progressBuffer)

	// Consumer: drain progress events onto the interactive thread
	go func() {
		for ev := range progress {
			ev := ev
			fyne.Do(func() {
				ui.applyProgress(ev)
			})
		}
	}()

	// Worker: the blocking download/convert call
	go func() {
		result, err := ui.downloadSvc.Run(context.Background(), req, progress)
		fyne.Do(func() {
			ui.onSessionDone(req, result, err)
		})
	}()
}

// applyProgress updates the progress indicator and status line
func (ui *RootUI) applyProgress(ev model.ProgressEvent) {
	ui.progressBar.SetValue(ev.Percent / 100)
	ui.statusLabel.SetText(ev.String())
}

// onSessionDone finalizes the UI after a session ends, success or not
func (ui *RootUI) onSessionDone(req model.DownloadRequest, result *model.DownloadResult, err error) {
	ui.setDownloadInProgress(false)

	if err != nil {
		message := describeSessionError(err)
		ui.statusLabel.SetText(message)
		ui.log.Error().Err(err).Str("url", req.URL).Msg("session failed")
		dialog.ShowError(errors.New(message), ui.window)
		return
	}

	// Hold the result and rebind playback to the fresh file
	ui.lastResult = result
	ui.player.Bind(result.OutputFile)
	ui.pauseBtn.SetText(player.PauseButtonLabel(ui.player.State()))
	ui.setTransportEnabled(true)

	ui.statusLabel.SetText(fmt.Sprintf("Saved %s", result.DisplayTitle()))
	ui.log.Info().Str("output", result.OutputFile).Msg("session succeeded")

	if ui.settings.GetAutoRevealOnComplete() {
		if err := platform.RevealFileInManager(result.OutputFile); err != nil {
			ui.log.Warn().Err(err).Msg("reveal failed")
		}
	}
}

// describeSessionError maps the session error taxonomy to user-facing text
func describeSessionError(err error) string {
	switch {
	case errors.Is(err, errs.ErrInvalidURL):
		return "Please enter a valid video URL"
	case errors.Is(err, errs.ErrInvalidFolder):
		return "The download folder does not exist"
	case errors.Is(err, errs.ErrInvalidBitrate):
		return "Please choose a bitrate of 128, 192 or 320 kbps"
	case errors.Is(err, errs.ErrEncoderMissing):
		return "ffmpeg was not found on PATH; install it to download audio"
	case errors.Is(err, errs.ErrSessionActive):
		return "A download is already running"
	case errors.Is(err, errs.ErrExtractionFailed):
		return fmt.Sprintf("Download failed: %s", errorDetail(err, errs.ErrExtractionFailed))
	default:
		return fmt.Sprintf("Unexpected error: %s", errorDetail(err, errs.ErrUnexpectedFailure))
	}
}

// errorDetail strips the sentinel prefix, keeping the underlying message
func errorDetail(err error, sentinel error) string {
	detail := strings.TrimPrefix(err.Error(), sentinel.Error())
	return strings.TrimPrefix(strings.TrimSpace(detail), ": ")
}

// setDownloadInProgress toggles the request form for an in-flight session
func (ui *RootUI) setDownloadInProgress(inProgress bool) {
	if inProgress {
		ui.downloadBtn.Disable()
		ui.urlEntry.Disable()
		ui.bitrateSelect.Disable()
		ui.folderEntry.Disable()
	} else {
		ui.downloadBtn.Enable()
		ui.urlEntry.Enable()
		ui.bitrateSelect.Enable()
		ui.folderEntry.Enable()
	}
}

// setTransportEnabled toggles playback and file controls, which are only
// meaningful once a successful download exists
func (ui *RootUI) setTransportEnabled(enabled bool) {
	controls := []*widget.Button{ui.playBtn, ui.pauseBtn, ui.stopBtn, ui.openBtn, ui.revealBtn}
	for _, btn := range controls {
		if enabled {
			btn.Enable()
		} else {
			btn.Disable()
		}
	}
	if enabled {
		ui.volumeSlider.Enable()
	} else {
		ui.volumeSlider.Disable()
	}
}

// selectedBitrate parses the bitrate selection
func (ui *RootUI) selectedBitrate() int {
	kbps, err := strconv.Atoi(ui.bitrateSelect.Selected)
	if err != nil {
		return config.DefaultBitrate
	}
	return kbps
}

// onBrowseFolder handles download folder browsing
func (ui *RootUI) onBrowseFolder() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		ui.folderEntry.SetText(uri.Path())
		ui.settings.SetDownloadDirectory(uri.Path())
	}, ui.window)
}

// onPlayClick starts the bound file from the beginning
func (ui *RootUI) onPlayClick() {
	if err := ui.player.Play(); err != nil {
		ui.showPlaybackError(err)
		return
	}
	ui.pauseBtn.SetText(player.PauseButtonLabel(ui.player.State()))
	ui.statusLabel.SetText(fmt.Sprintf("Playing %s", ui.lastResult.DisplayTitle()))
}

// onPauseResumeClick toggles between pause and resume, relabeling the control
func (ui *RootUI) onPauseResumeClick() {
	if err := ui.player.PauseResume(); err != nil {
		ui.showPlaybackError(err)
		return
	}
	ui.pauseBtn.SetText(player.PauseButtonLabel(ui.player.State()))
	ui.statusLabel.SetText(ui.player.State().String())
}

// onStopClick stops playback and relabels the pause control
func (ui *RootUI) onStopClick() {
	if err := ui.player.Stop(); err != nil {
		ui.showPlaybackError(err)
		return
	}
	ui.pauseBtn.SetText(player.PauseButtonLabel(ui.player.State()))
	ui.statusLabel.SetText(ui.player.State().String())
}

// onVolumeChanged applies the slider position as playback gain. Slider
// drags fire continuously, so warnings go to the status line instead of
// a dialog.
func (ui *RootUI) onVolumeChanged(value float64) {
	if err := ui.player.SetVolume(value / VolumeSliderMax); err != nil {
		ui.statusLabel.SetText(describePlaybackError(err))
		ui.log.Warn().Err(err).Msg("volume change rejected")
	}
}

// showPlaybackError surfaces a playback failure as a dialog plus status text
func (ui *RootUI) showPlaybackError(err error) {
	message := describePlaybackError(err)
	ui.statusLabel.SetText(message)
	ui.log.Warn().Err(err).Msg("playback control rejected")
	dialog.ShowError(errors.New(message), ui.window)
}

// describePlaybackError distinguishes the three playback failure conditions
func describePlaybackError(err error) string {
	switch {
	case errors.Is(err, errs.ErrMixerUnavailable):
		return "Audio playback is unavailable on this system"
	case errors.Is(err, errs.ErrNothingLoaded):
		return "Nothing to play yet; download a track first"
	default:
		return fmt.Sprintf("Playback error: %s", errorDetail(err, errs.ErrPlayback))
	}
}

// onOpenFile opens the last downloaded file with the default app
func (ui *RootUI) onOpenFile() {
	if ui.lastResult == nil {
		return
	}
	if err := platform.OpenFileWithDefaultApp(ui.lastResult.OutputFile); err != nil {
		ui.statusLabel.SetText("Could not open the file")
		ui.log.Warn().Err(err).Msg("open failed")
	}
}

// onRevealFile highlights the last downloaded file in the file manager
func (ui *RootUI) onRevealFile() {
	if ui.lastResult == nil {
		return
	}
	if err := platform.RevealFileInManager(ui.lastResult.OutputFile); err != nil {
		ui.statusLabel.SetText("Could not show the file")
		ui.log.Warn().Err(err).Msg("reveal failed")
	}
}

// onDarkModeToggled swaps the installed theme for the other palette
func (ui *RootUI) onDarkModeToggled(dark bool) {
	ui.app.Settings().SetTheme(NewAppTheme(dark))
	ui.settings.SetDarkMode(dark)
}

// onShowSettings displays the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.window).Show()
}
