// Package audio synthesizes the game's sound cues with beep.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Config controls the output device.
type Config struct {
	SampleRate beep.SampleRate
	Buffer     time.Duration // Speaker buffer; larger is safer, smaller is snappier
	Volume     float64       // Master volume in [0, 1]
}

// DefaultConfig returns the settings used by the CLI.
func DefaultConfig() Config {
	return Config{
		SampleRate: beep.SampleRate(48000),
		Buffer:     100 * time.Millisecond,
		Volume:     0.6,
	}
}

// Synth plays cues on the system speaker. Cues are mixed, so overlapping
// cues play together. Play never blocks.
type Synth struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool
}

// New opens the speaker. The returned error means no audio device is
// available; callers fall back to Nop.
func New(cfg Config) (*Synth, error) {
	s := &Synth{cfg: cfg, mixer: &beep.Mixer{}}
	if err := speaker.Init(cfg.SampleRate, cfg.SampleRate.N(cfg.Buffer)); err != nil {
		return nil, fmt.Errorf("audio: cannot initialize speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return s, nil
}

// Play starts a cue. Unknown cues and a closed synth are ignored.
func (s *Synth) Play(cue core.Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	streamer := Compose(cue, s.cfg.SampleRate, s.cfg.Volume)
	if streamer == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(streamer)
	speaker.Unlock()
}

// Close silences every playing cue. Later calls to Play are no-ops.
func (s *Synth) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Clear()
	s.initialized = false
}

// Nop discards every cue.
type Nop struct{}

// Play does nothing.
func (Nop) Play(core.Cue) {}
