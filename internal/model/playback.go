package model

// PlaybackState represents the state of the playback controller
type PlaybackState string

const (
	// PlaybackStopped means nothing is playing
	PlaybackStopped PlaybackState = "Stopped"

	// PlaybackPlaying means the bound file is playing
	PlaybackPlaying PlaybackState = "Playing"

	// PlaybackPaused means playback is paused and can be resumed
	PlaybackPaused PlaybackState = "Paused"
)

// String returns the string representation of PlaybackState
func (ps PlaybackState) String() string {
	return string(ps)
}

// IsActive returns true if the state holds a loaded track (playing or paused)
func (ps PlaybackState) IsActive() bool {
	return ps == PlaybackPlaying || ps == PlaybackPaused
}

// Volume bounds for playback
const (
	MinVolume     = 0.0
	MaxVolume     = 1.0
	DefaultVolume = 0.7
)

// ClampVolume clamps v into the [MinVolume, MaxVolume] range.
func ClampVolume(v float64) float64 {
	if v < MinVolume {
		return MinVolume
	}
	if v > MaxVolume {
		return MaxVolume
	}
	return v
}
