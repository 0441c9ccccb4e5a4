package download

import (
	"testing"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"tubetune/internal/model"
)

func TestProgressEvent_Downloading(t *testing.T) {
	update := ytdlp.ProgressUpdate{
		Status:          ytdlp.ProgressStatusDownloading,
		DownloadedBytes: 50,
		TotalBytes:      200,
	}

	ev := progressEvent(update)
	if ev.Phase != model.PhaseDownloading {
		t.Errorf("Phase = %s, expected downloading", ev.Phase)
	}
	if ev.Percent != 25 {
		t.Errorf("Percent = %v, expected 25", ev.Percent)
	}
}

func TestProgressEvent_UnknownTotalClamps(t *testing.T) {
	update := ytdlp.ProgressUpdate{
		Status:          ytdlp.ProgressStatusDownloading,
		DownloadedBytes: 1024,
	}

	ev := progressEvent(update)
	if ev.Percent != 100 {
		t.Errorf("Percent = %v, expected clamp to 100 when total is unknown", ev.Percent)
	}
}

func TestProgressEvent_Speed(t *testing.T) {
	update := ytdlp.ProgressUpdate{
		Status:          ytdlp.ProgressStatusDownloading,
		DownloadedBytes: 1024 * 1024,
		TotalBytes:      4 * 1024 * 1024,
		Started:         time.Now().Add(-2 * time.Second),
	}

	ev := progressEvent(update)
	if ev.SpeedKBps <= 0 {
		t.Errorf("SpeedKBps = %v, expected a positive speed", ev.SpeedKBps)
	}
}

func TestProgressEvent_ConvertingForces100(t *testing.T) {
	for _, status := range []ytdlp.ProgressStatus{
		ytdlp.ProgressStatusPostProcessing,
		ytdlp.ProgressStatusFinished,
	} {
		update := ytdlp.ProgressUpdate{
			Status:          status,
			DownloadedBytes: 10,
			TotalBytes:      200,
		}

		ev := progressEvent(update)
		if ev.Phase != model.PhaseConverting {
			t.Errorf("Phase for %s = %s, expected converting", status, ev.Phase)
		}
		if ev.Percent != 100 {
			t.Errorf("Percent for %s = %v, expected forced 100", status, ev.Percent)
		}
	}
}

func TestReportedOutputPath(t *testing.T) {
	tests := []struct {
		name     string
		stdout   string
		expected string
	}{
		{
			"path_after_json",
			`{"id":"dQw4w9WgXcQ","title":"Test Song"}` + "\n/music/Test Song.mp3\n",
			"/music/Test Song.mp3",
		},
		{
			"last_path_wins",
			"/music/Test Song.webm\n/music/Test Song.mp3\n",
			"/music/Test Song.mp3",
		},
		{
			"json_only",
			`{"id":"dQw4w9WgXcQ"}` + "\n",
			"",
		},
		{
			"empty",
			"",
			"",
		},
		{
			"blank_lines_skipped",
			"\n\n/music/a.mp3\n\n",
			"/music/a.mp3",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			result := reportedOutputPath(test.stdout)
			if result != test.expected {
				t.Errorf("reportedOutputPath() = %q, expected %q", result, test.expected)
			}
		})
	}
}
