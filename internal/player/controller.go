package player

import (
	"fmt"

	"github.com/rs/zerolog"

	"tubetune/internal/errs"
	"tubetune/internal/model"
	"tubetune/internal/platform"
)

// Transport labels for the pause/resume control
const (
	LabelPause  = "Pause"
	LabelResume = "Resume"
)

// Controller owns the playback state machine for the most recently
// downloaded file. All methods are meant to be called from the
// interactive thread; the mixer is the single shared audio resource.
//
// State transitions: Stopped -> Playing (Play), Playing -> Paused and
// back (PauseResume), any state -> Stopped (Stop). Play always loads the
// bound file fresh and starts from the beginning.
type Controller struct {
	mixer  Mixer
	log    zerolog.Logger
	state  model.PlaybackState
	volume float64
	file   string
}

// NewController creates a controller with no file bound.
func NewController(mixer Mixer, log zerolog.Logger) *Controller {
	return &Controller{
		mixer:  mixer,
		log:    log.With().Str("component", "player").Logger(),
		state:  model.PlaybackStopped,
		volume: model.DefaultVolume,
	}
}

// Bind replaces the bound file with a freshly downloaded one and resets
// playback to Stopped.
func (c *Controller) Bind(path string) {
	if c.state.IsActive() && c.mixer.Available() {
		c.mixer.Stop()
	}
	c.file = path
	c.state = model.PlaybackStopped
	c.log.Debug().Str("file", path).Msg("bound new file")
}

// Play loads the bound file fresh and starts it from the beginning.
func (c *Controller) Play() error {
	if !c.mixer.Available() {
		return errs.ErrMixerUnavailable
	}
	if c.file == "" || !platform.FileExists(c.file) {
		return errs.ErrNothingLoaded
	}

	if err := c.mixer.Load(c.file); err != nil {
		c.log.Error().Err(err).Str("file", c.file).Msg("load failed")
		return fmt.Errorf("%w: %v", errs.ErrPlayback, err)
	}
	c.mixer.SetVolume(c.volume)
	c.mixer.Play()
	c.state = model.PlaybackPlaying
	return nil
}

// PauseResume toggles between Playing and Paused. It is a warning no-op
// while Stopped.
func (c *Controller) PauseResume() error {
	if !c.mixer.Available() {
		return errs.ErrMixerUnavailable
	}

	switch c.state {
	case model.PlaybackPlaying:
		c.mixer.Pause()
		c.state = model.PlaybackPaused
	case model.PlaybackPaused:
		c.mixer.Resume()
		c.state = model.PlaybackPlaying
	default:
		return errs.ErrNothingLoaded
	}
	return nil
}

// Stop returns to Stopped from any state. A stopped track is not
// resumable mid-file; the next Play starts over.
func (c *Controller) Stop() error {
	if !c.mixer.Available() {
		return errs.ErrMixerUnavailable
	}

	c.mixer.Stop()
	c.state = model.PlaybackStopped
	return nil
}

// SetVolume clamps v into [0.0, 1.0] and applies it immediately.
func (c *Controller) SetVolume(v float64) error {
	if !c.mixer.Available() {
		return errs.ErrMixerUnavailable
	}

	c.volume = model.ClampVolume(v)
	c.mixer.SetVolume(c.volume)
	return nil
}

// State returns the current playback state.
func (c *Controller) State() model.PlaybackState {
	return c.state
}

// Volume returns the current volume in [0.0, 1.0].
func (c *Controller) Volume() float64 {
	return c.volume
}

// File returns the bound file path, or "" when nothing is bound.
func (c *Controller) File() string {
	return c.file
}

// PauseButtonLabel maps a playback state to the transport control label.
func PauseButtonLabel(state model.PlaybackState) string {
	if state == model.PlaybackPaused {
		return LabelResume
	}
	return LabelPause
}
