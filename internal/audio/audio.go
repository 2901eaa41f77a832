// Package audio plays short synthesized cues for game events.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/canvas-arcade/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// cue describes the tone played for one event kind.
type cue struct {
	from, to float64
	length   time.Duration
	wave     Wave
	volume   float64
}

var cues = map[core.EventKind]cue{
	core.EventFire:        {from: 880, to: 660, length: 30 * time.Millisecond, wave: WaveSquare, volume: 0.04},
	core.EventEnemyKilled: {from: 300, to: 80, length: 150 * time.Millisecond, wave: WaveNoise, volume: 0.2},
	core.EventPlayerHit:   {from: 160, to: 90, length: 200 * time.Millisecond, wave: WaveSquare, volume: 0.2},
	core.EventLevelUp:     {from: 440, to: 1320, length: 350 * time.Millisecond, wave: WaveSine, volume: 0.25},
	core.EventJump:        {from: 330, to: 660, length: 90 * time.Millisecond, wave: WaveSine, volume: 0.15},
	core.EventGameOver:    {from: 440, to: 110, length: 600 * time.Millisecond, wave: WaveSquare, volume: 0.2},
}

// Player mixes event cues onto the speaker. The zero value is silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates an uninitialized player.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the audio device. Without a device every call stays silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Handle queues the cue for every event that has one.
func (p *Player) Handle(events []core.Event) {
	if p == nil || len(events) == 0 {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	for _, ev := range events {
		if s := streamerFor(ev.Kind); s != nil {
			p.mixer.Add(s)
		}
	}
}

// streamerFor returns a fresh tone for kind, or nil for silent events.
func streamerFor(kind core.EventKind) beep.Streamer {
	c, ok := cues[kind]
	if !ok {
		return nil
	}
	return NewTone(sampleRate, c.from, c.to, c.length, c.wave, c.volume)
}

// Close silences all queued cues.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
