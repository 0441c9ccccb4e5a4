package download

// Package download implements the download-and-transcode session built on top
// of yt-dlp (via github.com/lrstanley/go-ytdlp). It validates requests,
// enforces the single-session guard, bridges progress to the UI over a
// channel, and records completed downloads in the session log.
