// Package sessionlog appends a local record of completed downloads.
package sessionlog

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// FileName is the log file created inside the download directory.
const FileName = "yt_music_log.txt"

// TimestampFormat is the timestamp layout used for log lines.
const TimestampFormat = "2006-01-02 15:04:05"

// filePermissions for the append-only log file
const filePermissions = 0644

// Log appends one line per successful download to a text file in the
// download directory. The file is plain UTF-8; there is no rotation and
// no locking across processes.
type Log struct {
	dir string
	now func() time.Time
}

// New creates a session log bound to the given directory.
func New(dir string) *Log {
	return &Log{dir: dir, now: time.Now}
}

// Path returns the full path of the log file.
func (l *Log) Path() string {
	return filepath.Join(l.dir, FileName)
}

// Append records one completed download as "<timestamp>: <url> -> <path>".
func (l *Log) Append(url, outputPath string) error {
	f, err := os.OpenFile(l.Path(), os.O_APPEND|os.O_CREATE|os.O_WRONLY, filePermissions)
	if err != nil {
		return fmt.Errorf("open session log: %w", err)
	}
	defer f.Close()

	line := fmt.Sprintf("%s: %s -> %s\n", l.now().Format(TimestampFormat), url, outputPath)
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write session log: %w", err)
	}
	return nil
}
