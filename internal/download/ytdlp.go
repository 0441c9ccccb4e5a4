package download

import (
	"bufio"
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/lrstanley/go-ytdlp"
	"github.com/rs/zerolog"

	"tubetune/internal/errs"
	"tubetune/internal/model"
	"tubetune/pkg/calc"
)

// yt-dlp invocation constants
const (
	// bestAudioFormat selects the best available audio-only stream, with
	// a full-stream fallback for sources that carry none.
	bestAudioFormat = "bestaudio/best"

	// outputTemplate names the output from the extracted title plus the
	// original extension; the transcode step swaps the extension.
	outputTemplate = "%(title)s.%(ext)s"

	// printAfterMove makes yt-dlp print the final file path on stdout
	// once post-processing has moved it into place.
	printAfterMove = "after_move:filepath"

	// progressInterval is how often yt-dlp reports transfer progress.
	progressInterval = 500 * time.Millisecond
)

// reFilePath matches a bare file path line printed by yt-dlp, as opposed
// to the JSON metadata lines surrounding it.
var reFilePath = regexp.MustCompile(`(?i)^[^\{\[\n].*\.[a-z0-9]{1,6}$`)

// YTDLP is the production Extractor backed by the yt-dlp binary.
type YTDLP struct {
	log zerolog.Logger
}

// NewYTDLP creates a yt-dlp backed extractor.
func NewYTDLP(log zerolog.Logger) *YTDLP {
	return &YTDLP{log: log.With().Str("component", "ytdlp").Logger()}
}

// Probe resolves the video title without downloading.
func (y *YTDLP) Probe(ctx context.Context, url string) (string, error) {
	res, err := ytdlp.New().
		SkipDownload().
		PrintJSON().
		NoPlaylist().
		Run(ctx, url)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrExtractionFailed, err)
	}

	info, err := res.GetExtractedInfo()
	if err != nil || len(info) == 0 {
		return "", fmt.Errorf("%w: no metadata extracted", errs.ErrExtractionFailed)
	}
	if info[0].Title == nil {
		return "", nil
	}
	return *info[0].Title, nil
}

// Download fetches the best audio stream and transcodes it to MP3 at the
// requested bitrate. Playlists are rejected; only the single item is
// processed. The path yt-dlp prints after post-processing is returned so
// callers do not have to re-derive the encoder's filename sanitization.
func (y *YTDLP) Download(ctx context.Context, req model.DownloadRequest, onProgress func(model.ProgressEvent)) (string, error) {
	dl := ytdlp.New().
		Format(bestAudioFormat).
		ExtractAudio().
		AudioFormat(model.TargetFormat).
		AudioQuality(fmt.Sprintf("%dK", req.BitrateKbps)).
		NoPlaylist().
		ForceOverwrites().
		PrintJSON().
		Print(printAfterMove).
		Output(filepath.Join(req.TargetDir, outputTemplate))

	dl.ProgressFunc(progressInterval, func(update ytdlp.ProgressUpdate) {
		onProgress(progressEvent(update))
	})

	res, err := dl.Run(ctx, req.URL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errs.ErrExtractionFailed, err)
	}

	path := reportedOutputPath(res.Stdout)
	if path == "" {
		y.log.Warn().Str("url", req.URL).Msg("yt-dlp reported no output path")
	}
	return path, nil
}

// progressEvent maps a yt-dlp progress update to a domain event. Once the
// raw download finishes, the phase flips to converting at a forced 100%;
// the transcode step itself reports no finer-grained progress.
func progressEvent(update ytdlp.ProgressUpdate) model.ProgressEvent {
	if update.Status == ytdlp.ProgressStatusPostProcessing || update.Status == ytdlp.ProgressStatusFinished {
		return model.ProgressEvent{Phase: model.PhaseConverting, Percent: 100}
	}

	return model.ProgressEvent{
		Phase:     model.PhaseDownloading,
		Percent:   calc.Percent(update.DownloadedBytes, update.TotalBytes),
		SpeedKBps: calc.SpeedKBps(update.DownloadedBytes, update.Started),
	}
}

// reportedOutputPath extracts the after-move file path from yt-dlp stdout.
// The stdout mixes JSON metadata lines with the bare path line requested
// via Print; the last path-looking line wins.
func reportedOutputPath(stdout string) string {
	var path string

	scanner := bufio.NewScanner(strings.NewReader(stdout))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if reFilePath.MatchString(line) {
			path = line
		}
	}

	return path
}
