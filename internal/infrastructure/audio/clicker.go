// Package audio plays a short click whenever a ball bounces.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/younwookim/galton/internal/application/system"
	"github.com/younwookim/galton/internal/infrastructure/config"
)

const (
	sampleRate = beep.SampleRate(44100)

	// maxVoices caps simultaneous clicks; a full board can bounce dozens
	// of balls in the same frame.
	maxVoices = 8
)

// Clicker mixes bounce clicks into a single speaker stream.
type Clicker struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	mixer       *beep.Mixer
	initialized bool
}

// NewClicker creates a clicker. Nothing is played until Initialize succeeds.
func NewClicker(cfg config.AudioConfig) *Clicker {
	return &Clicker{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer.
func (c *Clicker) Initialize() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	speaker.Play(c.mixer)
	c.initialized = true
	return nil
}

// Tone builds one click: a sine at the configured frequency, or an octave
// lower for bucket hits, cut to the configured duration.
func (c *Clicker) Tone(kind system.CollisionKind) (beep.Streamer, error) {
	freq := c.cfg.Frequency
	if kind == system.CollisionBucket {
		freq /= 2
	}
	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, fmt.Errorf("failed to create %v tone: %w", kind, err)
	}
	dur := time.Duration(c.cfg.DurationMs) * time.Millisecond
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(dur), tone),
		Base:     2,
		Volume:   c.cfg.Volume,
	}, nil
}

// OnCollision plays a click for a peg or bucket bounce. Suitable as
// sim.Simulation.OnCollision.
func (c *Clicker) OnCollision(col system.Collision) {
	if col.Kind == system.CollisionNone {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}

	speaker.Lock()
	voices := c.mixer.Len()
	speaker.Unlock()
	if voices >= maxVoices {
		return
	}

	s, err := c.Tone(col.Kind)
	if err != nil {
		return
	}
	speaker.Lock()
	c.mixer.Add(s)
	speaker.Unlock()
}

// Close silences all clicks and closes the speaker.
func (c *Clicker) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	c.initialized = false
}
