package download

import (
	"context"

	"tubetune/internal/model"
)

// Extractor defines the interface to the external extraction/download
// service. The production implementation wraps yt-dlp.
type Extractor interface {
	// Probe resolves the video title without downloading anything.
	Probe(ctx context.Context, url string) (title string, err error)

	// Download fetches the best audio stream and transcodes it to the
	// requested format, invoking onProgress synchronously as the transfer
	// advances. It returns the output path reported by the service, or ""
	// when the service did not report one.
	Download(ctx context.Context, req model.DownloadRequest, onProgress func(model.ProgressEvent)) (reportedPath string, err error)
}

// Runner defines the interface for the download session service.
type Runner interface {
	Run(ctx context.Context, req model.DownloadRequest, progress chan<- model.ProgressEvent) (*model.DownloadResult, error)
	Active() bool
}
