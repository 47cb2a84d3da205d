package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"snake-arcade/game"
)

const sampleRate = beep.SampleRate(44100)

// Sound identifies one effect
type Sound int

const (
	SoundEat Sound = iota
	SoundGameOver
	SoundStart
)

func (s Sound) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundGameOver:
		return "game over"
	case SoundStart:
		return "start"
	default:
		return "unknown"
	}
}

type note struct {
	freq float64
	dur  time.Duration
}

var sounds = map[Sound][]note{
	SoundEat:      {{freq: 880, dur: 50 * time.Millisecond}},
	SoundGameOver: {{freq: 330, dur: 120 * time.Millisecond}, {freq: 220, dur: 120 * time.Millisecond}, {freq: 147, dur: 240 * time.Millisecond}},
	SoundStart:    {{freq: 523, dur: 60 * time.Millisecond}, {freq: 784, dur: 80 * time.Millisecond}},
}

// Player plays short effects through the system speaker. A Player that failed
// to open the speaker stays silent.
type Player struct {
	mu      sync.Mutex
	enabled bool
	volume  float64
	mixer   *beep.Mixer
	log     *zap.SugaredLogger
}

// NewPlayer opens the speaker unless mute is set. Failure is logged, not returned.
func NewPlayer(mute bool, volume float64, log *zap.SugaredLogger) *Player {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	p := &Player{volume: volume, mixer: &beep.Mixer{}, log: log}
	if mute {
		log.Infow("audio muted")
		return p
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Warnw("audio initialization failed, continuing without sound", "error", err)
		return p
	}
	speaker.Play(p.mixer)
	p.enabled = true
	return p
}

// Enabled reports whether sound reaches the speaker
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Play queues one effect
func (p *Player) Play(s Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	streamer, err := Effect(s, p.volume)
	if err != nil {
		p.log.Warnw("sound unavailable", "sound", s.String(), "error", err)
		return
	}
	speaker.Lock()
	p.mixer.Add(streamer)
	speaker.Unlock()
}

// OnReport plays whatever the frame calls for
func (p *Player) OnReport(r game.Report) {
	switch {
	case r.GameOver:
		p.Play(SoundGameOver)
	case r.Ate:
		p.Play(SoundEat)
	case r.Restarted:
		p.Play(SoundStart)
	}
}

// Close releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.enabled {
		speaker.Clear()
		speaker.Close()
		p.enabled = false
	}
}

// Effect builds the streamer for s at the given volume (1 = full scale)
func Effect(s Sound, volume float64) (beep.Streamer, error) {
	notes, ok := sounds[s]
	if !ok {
		return nil, fmt.Errorf("unknown sound %d", s)
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := Tone(n.freq, n.dur)
		if err != nil {
			return nil, fmt.Errorf("build %s: %w", s, err)
		}
		parts = append(parts, tone)
	}
	seq := beep.Seq(parts...)
	if volume <= 0 {
		return &effects.Volume{Streamer: seq, Base: 2, Volume: 0, Silent: true}, nil
	}
	return &effects.Volume{Streamer: seq, Base: 2, Volume: math.Log2(volume), Silent: false}, nil
}

// Tone is a sine wave of freq Hz lasting dur
func Tone(freq float64, dur time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sampleRate.N(dur), sine), nil
}

// Samples converts dur to a sample count at the playback rate
func Samples(dur time.Duration) int {
	return sampleRate.N(dur)
}
