package sessionlog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLog_Path(t *testing.T) {
	l := New("/music")
	expected := filepath.Join("/music", FileName)
	if l.Path() != expected {
		t.Errorf("Path() = %s, expected %s", l.Path(), expected)
	}
}

func TestLog_Append(t *testing.T) {
	tempDir := t.TempDir()
	l := New(tempDir)
	l.now = func() time.Time {
		return time.Date(2026, 8, 31, 12, 30, 45, 0, time.UTC)
	}

	url := "https://youtu.be/dQw4w9WgXcQ"
	output := filepath.Join(tempDir, "Test Song.mp3")

	if err := l.Append(url, output); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	data, err := os.ReadFile(l.Path())
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	expected := "2026-08-31 12:30:45: " + url + " -> " + output + "\n"
	if string(data) != expected {
		t.Errorf("log line = %q, expected %q", string(data), expected)
	}
}

func TestLog_AppendAccumulates(t *testing.T) {
	tempDir := t.TempDir()
	l := New(tempDir)

	for i := 0; i < 3; i++ {
		if err := l.Append("https://youtu.be/dQw4w9WgXcQ", "/music/a.mp3"); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	data, err := os.ReadFile(l.Path())
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) != 3 {
		t.Errorf("expected 3 log lines, got %d", len(lines))
	}
}

func TestLog_AppendBadDirectory(t *testing.T) {
	l := New("/nonexistent/dir")
	if err := l.Append("url", "path"); err == nil {
		t.Error("Append should fail when the directory does not exist")
	}
}
