package model

import (
	"fmt"
	"strings"
)

// TargetFormat is the audio container every download is transcoded into.
const TargetFormat = "mp3"

// AllowedBitrates lists the accepted target bitrates in kbit/s.
var AllowedBitrates = []int{128, 192, 320}

// IsAllowedBitrate reports whether kbps is one of the accepted bitrates.
func IsAllowedBitrate(kbps int) bool {
	for _, b := range AllowedBitrates {
		if b == kbps {
			return true
		}
	}
	return false
}

// DownloadRequest describes one download-and-transcode request.
// It is immutable once submitted.
type DownloadRequest struct {
	URL         string
	TargetDir   string
	BitrateKbps int
}

// DownloadResult is produced at the end of one successful download session.
type DownloadResult struct {
	OutputFile string // path to the transcoded file
	Title      string // extracted video title
}

// DisplayTitle returns the title, or the output file name when the title
// is empty.
func (dr DownloadResult) DisplayTitle() string {
	if dr.Title != "" {
		return dr.Title
	}

	// Extract just the filename without path (support both / and \ separators)
	parts := strings.FieldsFunc(dr.OutputFile, func(r rune) bool {
		return r == '/' || r == '\\'
	})
	if len(parts) == 0 {
		return ""
	}
	name := parts[len(parts)-1]
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}
	return name
}

// Phase identifies the stage a download session is in.
type Phase string

const (
	// PhaseDownloading means raw audio bytes are being fetched.
	PhaseDownloading Phase = "downloading"

	// PhaseConverting means the raw download finished and the encoder is
	// transcoding. The encoder reports no finer-grained progress.
	PhaseConverting Phase = "converting"

	// PhaseFinished means the session completed successfully.
	PhaseFinished Phase = "finished"
)

// String returns the string representation of Phase.
func (p Phase) String() string {
	return string(p)
}

// IsTerminal returns true if no further progress events follow this phase.
func (p Phase) IsTerminal() bool {
	return p == PhaseFinished
}

// ProgressEvent is one progress update produced during a download session.
// Events are ephemeral; they are delivered over a channel and consumed
// immediately by the UI.
type ProgressEvent struct {
	Phase     Phase
	Percent   float64 // 0..100, always clamped
	SpeedKBps float64 // average download speed, 0 when unknown
}

// String returns a compact human-readable form used in the status line.
func (pe ProgressEvent) String() string {
	if pe.Phase == PhaseDownloading && pe.SpeedKBps > 0 {
		return fmt.Sprintf("%s %.0f%% (%.1f KB/s)", pe.Phase, pe.Percent, pe.SpeedKBps)
	}
	return fmt.Sprintf("%s %.0f%%", pe.Phase, pe.Percent)
}
