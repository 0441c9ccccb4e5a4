package platform

import (
	"fmt"
	"os/exec"
)

// EncoderName is the external audio encoder binary required for transcoding.
const EncoderName = "ffmpeg"

// EncoderLookup resolves an executable name to a path. It matches the
// signature of exec.LookPath so tests can inject a fake environment.
type EncoderLookup func(name string) (string, error)

// EncoderPath returns the absolute path of the encoder binary on PATH.
// Absence is a hard precondition failure for download sessions.
func EncoderPath() (string, error) {
	path, err := exec.LookPath(EncoderName)
	if err != nil {
		return "", fmt.Errorf("%s not found on PATH: %w", EncoderName, err)
	}
	return path, nil
}
