package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// Wave selects the oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveNoise
)

// Tone is a finite streamer that sweeps from one frequency to another
// with a short attack and an exponential release.
type Tone struct {
	sr       beep.SampleRate
	from, to float64
	wave     Wave
	volume   float64
	pos      int
	total    int
	phase    float64
	seed     uint32
}

// NewTone creates a tone of length d sweeping from -> to Hz.
func NewTone(sr beep.SampleRate, from, to float64, d time.Duration, wave Wave, volume float64) *Tone {
	return &Tone{
		sr:     sr,
		from:   from,
		to:     to,
		wave:   wave,
		volume: volume,
		total:  sr.N(d),
		seed:   0x9e3779b9,
	}
}

// Stream fills samples until the tone ends.
func (t *Tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		progress := float64(t.pos) / float64(t.total)
		freq := t.from + (t.to-t.from)*progress
		t.phase += freq / float64(t.sr)
		t.phase -= math.Floor(t.phase)

		var s float64
		switch t.wave {
		case WaveSquare:
			s = 1
			if t.phase >= 0.5 {
				s = -1
			}
		case WaveNoise:
			t.seed = t.seed*1664525 + 1013904223
			s = float64(t.seed)/float64(math.MaxUint32)*2 - 1
		default:
			s = math.Sin(2 * math.Pi * t.phase)
		}

		sec := float64(t.pos) / float64(t.sr)
		attack := math.Min(sec/0.005, 1)
		release := math.Exp(-progress * 4)
		s *= t.volume * attack * release

		samples[i][0] = s
		samples[i][1] = s
		t.pos++
	}
	return len(samples), true
}

// Err always returns nil.
func (t *Tone) Err() error {
	return nil
}
