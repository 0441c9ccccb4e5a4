package download

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"tubetune/internal/errs"
	"tubetune/internal/model"
	"tubetune/internal/platform"
	"tubetune/internal/sessionlog"
	"tubetune/pkg/urls"
)

// sessionIDPrefix prefixes the per-run identifier used in log fields.
const sessionIDPrefix = "sess-"

// Service runs download sessions. At most one session is in flight at a
// time; a second Run is rejected while the first is still active.
type Service struct {
	extractor Extractor
	log       zerolog.Logger
	active    atomic.Bool

	// lookPath resolves the encoder binary; tests inject a fake.
	lookPath platform.EncoderLookup
}

// NewService creates a new download session service.
func NewService(extractor Extractor, log zerolog.Logger) *Service {
	return &Service{
		extractor: extractor,
		log:       log.With().Str("component", "download").Logger(),
		lookPath:  exec.LookPath,
	}
}

// Active reports whether a session is currently in flight.
func (s *Service) Active() bool {
	return s.active.Load()
}

// Run executes one download session. It validates the request, probes the
// title, delegates to the extraction service and appends the session log
// line on success. Progress events are sent on progress, which Run owns
// and closes when the session ends, success or not.
//
// Preconditions are checked in order before the extraction service is
// touched; each failure short-circuits with its own sentinel error.
func (s *Service) Run(ctx context.Context, req model.DownloadRequest, progress chan<- model.ProgressEvent) (*model.DownloadResult, error) {
	if !s.active.CompareAndSwap(false, true) {
		close(progress)
		return nil, errs.ErrSessionActive
	}
	defer s.active.Store(false)
	defer close(progress)

	log := s.log.With().Str("session_id", newSessionID()).Str("url", req.URL).Logger()

	if !urls.IsSupportedVideoURL(req.URL) {
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidURL, req.URL)
	}
	if !platform.IsDirectory(req.TargetDir) {
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidFolder, req.TargetDir)
	}
	if !model.IsAllowedBitrate(req.BitrateKbps) {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidBitrate, req.BitrateKbps)
	}
	if _, err := s.lookPath(platform.EncoderName); err != nil {
		return nil, fmt.Errorf("%w: %s", errs.ErrEncoderMissing, platform.EncoderName)
	}

	log.Info().Int("bitrate_kbps", req.BitrateKbps).Str("dir", req.TargetDir).Msg("session started")

	title, err := s.extractor.Probe(ctx, req.URL)
	if err != nil {
		log.Error().Err(err).Msg("metadata probe failed")
		return nil, s.mapError(err)
	}
	log.Debug().Str("title", title).Msg("metadata probed")

	reportedPath, err := s.extractor.Download(ctx, req, func(ev model.ProgressEvent) {
		progress <- ev
	})
	if err != nil {
		log.Error().Err(err).Msg("download failed")
		return nil, s.mapError(err)
	}

	outputFile := reportedPath
	if outputFile == "" {
		outputFile = derivedOutputPath(req.TargetDir, title)
	}

	if err := sessionlog.New(req.TargetDir).Append(req.URL, outputFile); err != nil {
		log.Error().Err(err).Msg("session log append failed")
		return nil, fmt.Errorf("%w: %v", errs.ErrUnexpectedFailure, err)
	}

	progress <- model.ProgressEvent{Phase: model.PhaseFinished, Percent: 100}
	log.Info().Str("output", outputFile).Msg("session finished")

	return &model.DownloadResult{OutputFile: outputFile, Title: title}, nil
}

// mapError folds extractor failures into the session error taxonomy.
// Extraction errors pass through; anything else is an unexpected failure.
func (s *Service) mapError(err error) error {
	if errors.Is(err, errs.ErrExtractionFailed) {
		return err
	}
	return fmt.Errorf("%w: %v", errs.ErrUnexpectedFailure, err)
}

// derivedOutputPath recombines the extracted title with the target
// extension. Used only when the extraction service reports no output path
// of its own; the service-reported path is always preferred because this
// derivation must match the encoder's filename sanitization.
func derivedOutputPath(dir, title string) string {
	return filepath.Join(dir, sanitizeTitle(title)+"."+model.TargetFormat)
}

// sanitizeTitle replaces path separator characters with underscores.
func sanitizeTitle(title string) string {
	return strings.NewReplacer("/", "_", `\`, "_").Replace(title)
}

// newSessionID generates the per-run identifier carried in log fields.
func newSessionID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf("%s%d", sessionIDPrefix, time.Now().UnixNano())
	}
	return sessionIDPrefix + id.String()
}
