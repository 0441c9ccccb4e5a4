package download

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"tubetune/internal/errs"
	"tubetune/internal/model"
	"tubetune/internal/sessionlog"
)

const testURL = "https://youtu.be/dQw4w9WgXcQ"

// stubExtractor is a scripted Extractor for service tests.
type stubExtractor struct {
	title        string
	reportedPath string
	probeErr     error
	downloadErr  error
	events       []model.ProgressEvent

	probeCalls    int
	downloadCalls int

	// when set, Download signals started and blocks until release is closed
	started chan struct{}
	release chan struct{}
}

func (s *stubExtractor) Probe(ctx context.Context, url string) (string, error) {
	s.probeCalls++
	if s.probeErr != nil {
		return "", s.probeErr
	}
	return s.title, nil
}

func (s *stubExtractor) Download(ctx context.Context, req model.DownloadRequest, onProgress func(model.ProgressEvent)) (string, error) {
	s.downloadCalls++
	if s.started != nil {
		close(s.started)
		<-s.release
	}
	for _, ev := range s.events {
		onProgress(ev)
	}
	if s.downloadErr != nil {
		return "", s.downloadErr
	}
	return s.reportedPath, nil
}

func newTestService(extractor Extractor) *Service {
	svc := NewService(extractor, zerolog.Nop())
	svc.lookPath = func(name string) (string, error) {
		return "/usr/bin/" + name, nil
	}
	return svc
}

func progressChan() chan model.ProgressEvent {
	return make(chan model.ProgressEvent, 32)
}

func drain(ch chan model.ProgressEvent) []model.ProgressEvent {
	var events []model.ProgressEvent
	for ev := range ch {
		events = append(events, ev)
	}
	return events
}

func TestRun_InvalidURL(t *testing.T) {
	stub := &stubExtractor{}
	svc := newTestService(stub)

	req := model.DownloadRequest{URL: "not a url", TargetDir: t.TempDir(), BitrateKbps: 192}
	_, err := svc.Run(context.Background(), req, progressChan())

	if !errors.Is(err, errs.ErrInvalidURL) {
		t.Errorf("expected ErrInvalidURL, got %v", err)
	}
	if stub.probeCalls != 0 || stub.downloadCalls != 0 {
		t.Error("extractor should not be invoked for an invalid URL")
	}
}

func TestRun_InvalidFolder(t *testing.T) {
	stub := &stubExtractor{}
	svc := newTestService(stub)

	req := model.DownloadRequest{URL: testURL, TargetDir: "/nonexistent/dir", BitrateKbps: 192}
	_, err := svc.Run(context.Background(), req, progressChan())

	if !errors.Is(err, errs.ErrInvalidFolder) {
		t.Errorf("expected ErrInvalidFolder, got %v", err)
	}
	if stub.probeCalls != 0 || stub.downloadCalls != 0 {
		t.Error("extractor should not be invoked for an invalid folder")
	}
}

func TestRun_InvalidBitrate(t *testing.T) {
	stub := &stubExtractor{}
	svc := newTestService(stub)

	req := model.DownloadRequest{URL: testURL, TargetDir: t.TempDir(), BitrateKbps: 256}
	_, err := svc.Run(context.Background(), req, progressChan())

	if !errors.Is(err, errs.ErrInvalidBitrate) {
		t.Errorf("expected ErrInvalidBitrate, got %v", err)
	}
	if stub.downloadCalls != 0 {
		t.Error("extractor should not be invoked for an invalid bitrate")
	}
}

func TestRun_EncoderMissing(t *testing.T) {
	stub := &stubExtractor{}
	svc := NewService(stub, zerolog.Nop())
	svc.lookPath = func(name string) (string, error) {
		return "", fmt.Errorf("%s not found", name)
	}

	req := model.DownloadRequest{URL: testURL, TargetDir: t.TempDir(), BitrateKbps: 192}
	_, err := svc.Run(context.Background(), req, progressChan())

	if !errors.Is(err, errs.ErrEncoderMissing) {
		t.Errorf("expected ErrEncoderMissing, got %v", err)
	}
	if stub.probeCalls != 0 || stub.downloadCalls != 0 {
		t.Error("extractor should not be invoked when the encoder is missing")
	}
}

func TestRun_SecondSessionRejected(t *testing.T) {
	stub := &stubExtractor{
		title:   "Blocked Song",
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	svc := newTestService(stub)
	dir := t.TempDir()

	req := model.DownloadRequest{URL: testURL, TargetDir: dir, BitrateKbps: 192}

	firstDone := make(chan error, 1)
	first := progressChan()
	go func() {
		_, err := svc.Run(context.Background(), req, first)
		firstDone <- err
	}()

	// Wait for the first session to reach the extractor, then try a second
	<-stub.started
	if !svc.Active() {
		t.Error("Active() should be true while a session is in flight")
	}

	_, err := svc.Run(context.Background(), req, progressChan())
	if !errors.Is(err, errs.ErrSessionActive) {
		t.Errorf("expected ErrSessionActive for the second session, got %v", err)
	}
	if stub.downloadCalls != 1 {
		t.Errorf("second session should never reach the extractor, downloadCalls = %d", stub.downloadCalls)
	}

	close(stub.release)
	if err := <-firstDone; err != nil {
		t.Errorf("first session failed: %v", err)
	}
	drain(first)

	if svc.Active() {
		t.Error("Active() should be false after the session ends")
	}
}

func TestRun_Success(t *testing.T) {
	dir := t.TempDir()
	stub := &stubExtractor{
		title: "Test Song",
		events: []model.ProgressEvent{
			{Phase: model.PhaseDownloading, Percent: 50, SpeedKBps: 256},
			{Phase: model.PhaseConverting, Percent: 100},
		},
	}
	svc := newTestService(stub)

	req := model.DownloadRequest{URL: testURL, TargetDir: dir, BitrateKbps: 192}
	ch := progressChan()
	result, err := svc.Run(context.Background(), req, ch)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// No reported path from the stub, so the derived path is used
	expectedPath := filepath.Join(dir, "Test Song.mp3")
	if result.OutputFile != expectedPath {
		t.Errorf("OutputFile = %s, expected %s", result.OutputFile, expectedPath)
	}
	if result.Title != "Test Song" {
		t.Errorf("Title = %s, expected Test Song", result.Title)
	}

	// Progress sequence ends at finished/100
	events := drain(ch)
	if len(events) != 3 {
		t.Fatalf("expected 3 progress events, got %d", len(events))
	}
	last := events[len(events)-1]
	if last.Phase != model.PhaseFinished || last.Percent != 100 {
		t.Errorf("final event = %+v, expected finished/100", last)
	}

	// Exactly one well-formed session log line
	data, err := os.ReadFile(filepath.Join(dir, sessionlog.FileName))
	if err != nil {
		t.Fatalf("session log should exist: %v", err)
	}
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected exactly 1 log line, got %d", len(lines))
	}
	if !strings.Contains(lines[0], testURL) || !strings.Contains(lines[0], expectedPath) {
		t.Errorf("log line %q should contain the URL and output path", lines[0])
	}
}

func TestRun_PrefersReportedPath(t *testing.T) {
	dir := t.TempDir()
	reported := filepath.Join(dir, "Test Song (sanitized by encoder).mp3")
	stub := &stubExtractor{title: "Test/Song", reportedPath: reported}
	svc := newTestService(stub)

	req := model.DownloadRequest{URL: testURL, TargetDir: dir, BitrateKbps: 320}
	result, err := svc.Run(context.Background(), req, progressChan())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if result.OutputFile != reported {
		t.Errorf("OutputFile = %s, expected the service-reported path %s", result.OutputFile, reported)
	}
}

func TestRun_ExtractionError(t *testing.T) {
	stub := &stubExtractor{
		downloadErr: fmt.Errorf("%w: video unavailable", errs.ErrExtractionFailed),
	}
	svc := newTestService(stub)

	req := model.DownloadRequest{URL: testURL, TargetDir: t.TempDir(), BitrateKbps: 192}
	_, err := svc.Run(context.Background(), req, progressChan())

	if !errors.Is(err, errs.ErrExtractionFailed) {
		t.Errorf("expected ErrExtractionFailed, got %v", err)
	}
	if !strings.Contains(err.Error(), "video unavailable") {
		t.Errorf("underlying message should be surfaced verbatim, got %q", err.Error())
	}
}

func TestRun_UnexpectedError(t *testing.T) {
	stub := &stubExtractor{downloadErr: errors.New("disk exploded")}
	svc := newTestService(stub)

	req := model.DownloadRequest{URL: testURL, TargetDir: t.TempDir(), BitrateKbps: 192}
	_, err := svc.Run(context.Background(), req, progressChan())

	if !errors.Is(err, errs.ErrUnexpectedFailure) {
		t.Errorf("expected ErrUnexpectedFailure, got %v", err)
	}
	if !strings.Contains(err.Error(), "disk exploded") {
		t.Errorf("underlying message should be surfaced, got %q", err.Error())
	}
}

func TestRun_ClosesProgressOnFailure(t *testing.T) {
	stub := &stubExtractor{}
	svc := newTestService(stub)

	ch := progressChan()
	req := model.DownloadRequest{URL: "bad", TargetDir: t.TempDir(), BitrateKbps: 192}
	if _, err := svc.Run(context.Background(), req, ch); err == nil {
		t.Fatal("expected an error")
	}

	if _, open := <-ch; open {
		t.Error("progress channel should be closed after a failed session")
	}
}

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Test Song", "Test Song"},
		{"AC/DC - Back In Black", "AC_DC - Back In Black"},
		{`a\b/c`, "a_b_c"},
		{"", ""},
	}

	for _, test := range tests {
		result := sanitizeTitle(test.input)
		if result != test.expected {
			t.Errorf("sanitizeTitle(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestNewSessionID(t *testing.T) {
	id := newSessionID()
	if !strings.HasPrefix(id, sessionIDPrefix) {
		t.Errorf("session id %q should carry the %q prefix", id, sessionIDPrefix)
	}
	if id == newSessionID() {
		t.Error("session ids should be unique")
	}
}
