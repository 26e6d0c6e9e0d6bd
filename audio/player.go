package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const DefaultSampleRate = beep.SampleRate(44100)

// Sink plays sounds. Player is the speaker-backed implementation.
type Sink interface {
	Play(sound Sound, lines int)
}

// Player mixes effects onto the system speaker.
type Player struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	mixer  *beep.Mixer
	closed bool
}

// NewPlayer initialises the speaker at rate with a 100ms buffer. volume is a
// linear gain applied to every effect; zero mutes.
func NewPlayer(rate beep.SampleRate, volume float64) (*Player, error) {
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	p := &Player{
		rate:   rate,
		volume: volume,
		mixer:  &beep.Mixer{},
	}
	speaker.Play(p.mixer)
	return p, nil
}

func (p *Player) Play(sound Sound, lines int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}

	s := newVolume(Streamer(sound, lines, p.rate), p.volume)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	speaker.Clear()
	speaker.Close()
}
