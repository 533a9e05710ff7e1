// Package sfx synthesises short collision clicks with beep. Louder, higher
// clicks come from harder impacts.
//
//	player := sfx.NewPlayer(sfx.DefaultConfig())
//	if err := player.Init(); err != nil {
//		log.Printf("audio disabled: %v", err)
//	}
//	defer player.Close()
//	scene.OnCollision(player.OnCollision)
package sfx

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/phanxgames/kinetype"
)

// Config shapes the click sound.
type Config struct {
	SampleRate int           // samples per second
	BaseFreq   float64       // pitch of the softest click, Hz
	Duration   time.Duration // length of one click
	MaxImpact  float64       // impact speed at which a click reaches full volume and double pitch
	MinImpact  float64       // impacts below this are silent
	Volume     float64       // master volume in [0, 1]
}

// DefaultConfig returns a 40ms click at 48 kHz.
func DefaultConfig() Config {
	return Config{
		SampleRate: 48000,
		BaseFreq:   440,
		Duration:   40 * time.Millisecond,
		MaxImpact:  300,
		MinImpact:  5,
		Volume:     0.5,
	}
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.SampleRate <= 0:
		return errors.New("sampleRate must be > 0")
	case c.BaseFreq <= 0:
		return errors.New("baseFreq must be > 0")
	case c.Duration <= 0:
		return errors.New("duration must be > 0")
	case c.MaxImpact <= 0:
		return errors.New("maxImpact must be > 0")
	case c.Volume < 0 || c.Volume > 1:
		return errors.New("volume must be in [0, 1]")
	}
	return nil
}

// Click returns a finite streamer for one collision click at the given impact
// speed.
func Click(cfg Config, impact float64) (beep.Streamer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("sfx click: %w", err)
	}
	strength := math.Min(math.Max(impact/cfg.MaxImpact, 0), 1)
	rate := beep.SampleRate(cfg.SampleRate)

	tone, err := generators.SineTone(rate, cfg.BaseFreq*(1+strength))
	if err != nil {
		return nil, fmt.Errorf("sfx click: %w", err)
	}
	n := rate.N(cfg.Duration)
	shaped := &decay{streamer: beep.Take(n, tone), total: n}
	return newVolume(shaped, cfg.Volume*strength), nil
}

// decay fades a stream linearly to silence over total samples.
type decay struct {
	streamer beep.Streamer
	position int
	total    int
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1 - float64(d.position)/float64(d.total)
		if vol < 0 {
			vol = 0
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// newVolume wraps s with a linear volume. math.Log2(0) is -Inf, so zero volume
// is expressed as Silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Player mixes clicks onto the default audio device. A Player that was never
// initialised, or whose Init failed, drops every click, so games keep running
// without audio.
type Player struct {
	mu          sync.Mutex
	cfg         Config
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a player. Call Init before playing.
func NewPlayer(cfg Config) *Player {
	return &Player{cfg: cfg, mixer: &beep.Mixer{}}
}

// Init opens the audio device with a 100ms buffer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := p.cfg.Validate(); err != nil {
		return fmt.Errorf("sfx init: %w", err)
	}
	rate := beep.SampleRate(p.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("sfx init: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues one click. Impacts below MinImpact are ignored.
func (p *Player) Play(impact float64) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || impact < p.cfg.MinImpact {
		return
	}
	s, err := Click(p.cfg, impact)
	if err != nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// OnCollision plays a click for ev. Pass it to Scene.OnCollision.
func (p *Player) OnCollision(ev kinetype.CollisionEvent) {
	p.Play(ev.Impact)
}

// Close stops all clicks and releases the audio device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
