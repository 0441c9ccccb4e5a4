package player

import (
	"fmt"
	"math"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/rs/zerolog"

	"tubetune/internal/model"
)

// Speaker configuration
const (
	// mixSampleRate is the fixed speaker rate; decoded tracks at other
	// rates are resampled to it.
	mixSampleRate beep.SampleRate = 44100

	// speakerBufferLen trades latency for underrun resistance.
	speakerBufferLen = 100 * time.Millisecond

	// resampleQuality is beep's resampler quality knob.
	resampleQuality = 4

	// volumeBase makes effects.Volume behave logarithmically in a way
	// that matches perceived loudness.
	volumeBase = 2
)

// BeepMixer is the production Mixer built on beep's speaker.
type BeepMixer struct {
	log zerolog.Logger

	mu          sync.Mutex
	unavailable bool
	gain        float64
	stream      beep.StreamSeekCloser
	ctrl        *beep.Ctrl
	volume      *effects.Volume
}

// NewBeepMixer initializes the speaker once for the process lifetime.
// When initialization fails the mixer stays constructed but unavailable;
// every control call then warns instead of playing.
func NewBeepMixer(log zerolog.Logger) *BeepMixer {
	m := &BeepMixer{
		log:  log.With().Str("component", "mixer").Logger(),
		gain: model.DefaultVolume,
	}

	if err := speaker.Init(mixSampleRate, mixSampleRate.N(speakerBufferLen)); err != nil {
		m.unavailable = true
		m.log.Warn().Err(err).Msg("audio subsystem failed to initialize")
	}
	return m
}

// Load decodes path and binds it as the current track, dropping any
// previously loaded one.
func (m *BeepMixer) Load(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open track: %w", err)
	}

	stream, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return fmt.Errorf("decode track: %w", err)
	}

	// Replace the previous track before wiring the new chain
	speaker.Clear()
	if m.stream != nil {
		m.stream.Close()
	}
	m.stream = stream

	var streamer beep.Streamer = stream
	if format.SampleRate != mixSampleRate {
		streamer = beep.Resample(resampleQuality, format.SampleRate, mixSampleRate, stream)
	}

	m.ctrl = &beep.Ctrl{Streamer: streamer}
	m.volume = &effects.Volume{
		Streamer: m.ctrl,
		Base:     volumeBase,
		Volume:   gainToVolume(m.gain),
		Silent:   m.gain == 0,
	}
	return nil
}

// Play starts the loaded track.
func (m *BeepMixer) Play() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.volume == nil {
		return
	}
	speaker.Play(m.volume)
}

// Pause suspends playback.
func (m *BeepMixer) Pause() {
	m.setPaused(true)
}

// Resume continues paused playback.
func (m *BeepMixer) Resume() {
	m.setPaused(false)
}

func (m *BeepMixer) setPaused(paused bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ctrl == nil {
		return
	}
	speaker.Lock()
	m.ctrl.Paused = paused
	speaker.Unlock()
}

// Stop drops the loaded track.
func (m *BeepMixer) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	speaker.Clear()
	if m.stream != nil {
		m.stream.Close()
		m.stream = nil
	}
	m.ctrl = nil
	m.volume = nil
}

// SetVolume applies a gain in [0.0, 1.0], taking effect immediately when
// a track is loaded and remembered for the next Load otherwise.
func (m *BeepMixer) SetVolume(v float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.gain = model.ClampVolume(v)
	if m.volume == nil {
		return
	}
	speaker.Lock()
	m.volume.Volume = gainToVolume(m.gain)
	m.volume.Silent = m.gain == 0
	speaker.Unlock()
}

// Busy reports whether a track is loaded and not paused.
func (m *BeepMixer) Busy() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ctrl == nil {
		return false
	}
	speaker.Lock()
	paused := m.ctrl.Paused
	speaker.Unlock()
	return !paused
}

// Available reports whether the speaker initialized.
func (m *BeepMixer) Available() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return !m.unavailable
}

// gainToVolume maps a linear gain in (0, 1] onto beep's logarithmic
// volume scale, where 0 is unity gain.
func gainToVolume(gain float64) float64 {
	if gain <= 0 {
		return 0 // Silent flag carries the actual muting
	}
	return math.Log2(gain)
}
