// Package errs defines common error variables used across the application.
package errs

import "errors"

// Download session errors.
var (
	// ErrSessionActive indicates that another download session is already running.
	ErrSessionActive = errors.New("a download session is already active")
	// ErrInvalidURL indicates that the requested URL is not a supported video URL.
	ErrInvalidURL = errors.New("invalid video url")
	// ErrInvalidFolder indicates that the target directory does not exist or is not a directory.
	ErrInvalidFolder = errors.New("invalid download folder")
	// ErrInvalidBitrate indicates that the requested bitrate is not one of the allowed values.
	ErrInvalidBitrate = errors.New("invalid bitrate")
	// ErrEncoderMissing indicates that the external audio encoder was not found on PATH.
	ErrEncoderMissing = errors.New("audio encoder not found on PATH")
	// ErrExtractionFailed indicates that the extraction service failed to download or convert.
	ErrExtractionFailed = errors.New("extraction failed")
	// ErrUnexpectedFailure indicates a failure outside the known taxonomy.
	ErrUnexpectedFailure = errors.New("unexpected failure")
)

// Playback errors.
var (
	// ErrMixerUnavailable indicates that the audio subsystem failed to initialize.
	ErrMixerUnavailable = errors.New("audio subsystem unavailable")
	// ErrNothingLoaded indicates that no downloaded file is bound or the bound file is gone.
	ErrNothingLoaded = errors.New("no downloaded file to play")
	// ErrPlayback indicates that the audio subsystem failed while loading or playing a file.
	ErrPlayback = errors.New("playback failed")
)
