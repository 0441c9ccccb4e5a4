package player

// Mixer abstracts the audio playback subsystem. It is a single shared
// resource holding at most one loaded track at a time.
type Mixer interface {
	// Load binds a new track, replacing whatever was loaded before.
	Load(path string) error

	// Play starts the loaded track from its current position.
	Play()

	// Pause suspends playback; Resume continues it.
	Pause()
	Resume()

	// Stop drops the loaded track. A stopped track cannot be resumed
	// mid-file; the next Play starts from the beginning of a fresh Load.
	Stop()

	// SetVolume applies a gain in [0.0, 1.0].
	SetVolume(v float64)

	// Busy reports whether a track is actively playing.
	Busy() bool

	// Available reports whether the audio subsystem initialized.
	Available() bool
}
