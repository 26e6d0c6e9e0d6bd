package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Sound is a short effect tied to a game event.
type Sound int

const (
	SoundRotate Sound = iota
	SoundLock
	SoundLineClear
	SoundHardDrop
	SoundGameOver
)

func (s Sound) String() string {
	switch s {
	case SoundRotate:
		return "rotate"
	case SoundLock:
		return "lock"
	case SoundLineClear:
		return "line-clear"
	case SoundHardDrop:
		return "hard-drop"
	case SoundGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

type note struct {
	freq     float64
	duration time.Duration
}

// lineClearNotes is a C major arpeggio; clearing n rows plays the first n+1 notes.
var lineClearNotes = []float64{523.25, 659.25, 783.99, 1046.50, 1318.51}

func melody(sound Sound, lines int) []note {
	switch sound {
	case SoundRotate:
		return []note{{880, 30 * time.Millisecond}}
	case SoundLock:
		return []note{{220, 60 * time.Millisecond}}
	case SoundHardDrop:
		return []note{{330, 25 * time.Millisecond}, {165, 60 * time.Millisecond}}
	case SoundLineClear:
		lines = max(1, min(lines, len(lineClearNotes)-1))
		notes := make([]note, 0, lines+1)
		for _, f := range lineClearNotes[:lines+1] {
			notes = append(notes, note{f, 70 * time.Millisecond})
		}
		return notes
	case SoundGameOver:
		return []note{
			{392, 180 * time.Millisecond},
			{330, 180 * time.Millisecond},
			{262, 180 * time.Millisecond},
			{196, 400 * time.Millisecond},
		}
	default:
		return nil
	}
}

// Duration is the length of the effect.
func Duration(sound Sound, lines int) time.Duration {
	var d time.Duration
	for _, n := range melody(sound, lines) {
		d += n.duration
	}
	return d
}

// Streamer renders sound at the given sample rate. lines only matters for
// SoundLineClear, where each extra row adds a note to the arpeggio.
func Streamer(sound Sound, lines int, rate beep.SampleRate) beep.Streamer {
	notes := melody(sound, lines)
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, tone(n.freq, n.duration, rate))
	}
	return beep.Seq(parts...)
}

func tone(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		// frequency above Nyquist for this rate
		return beep.Silence(rate.N(d))
	}
	shaped := newEnvelope(sine, d, 5*time.Millisecond, d/3, rate)
	return newVolume(shaped, 0.4)
}

// newVolume maps a linear gain to effects.Volume, treating zero as silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
