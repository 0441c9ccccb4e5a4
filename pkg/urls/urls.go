// Package urls provides validation helpers for supported video URLs.
package urls

import "regexp"

// VideoIDLength is the length of a video identifier on the supported platform.
const VideoIDLength = 11

// videoURLPattern matches an optional scheme, optional "www.", one of the
// two accepted hosts and a path carrying an 11-character video identifier.
// Accepted path shapes: "watch?v=<id>", "embed/<id>", "v/<id>",
// "<anything>?v=<id>" and the bare short-link "<id>".
var videoURLPattern = regexp.MustCompile(
	`^(https?://)?(www\.)?(youtube\.com|youtu\.be)/(watch\?v=|embed/|v/|.+\?v=)?([^&=%?]{11})`)

// IsSupportedVideoURL reports whether raw looks like a supported video URL.
// The check is a pure shape match; no percent-decoding or normalization
// is performed.
func IsSupportedVideoURL(raw string) bool {
	return videoURLPattern.MatchString(raw)
}

// VideoID extracts the 11-character video identifier from raw.
// The second return value is false when raw is not a supported video URL.
func VideoID(raw string) (string, bool) {
	m := videoURLPattern.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	return m[5], true
}
