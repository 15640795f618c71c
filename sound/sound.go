// Package sound plays short tone cues for engine events.
package sound

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/blockfall/tetris"
)

const sampleRate = beep.SampleRate(44100)

// Tone is a single sine note.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

var (
	lockTone     = Tone{Freq: 196, Duration: 30 * time.Millisecond}
	rotateTone   = Tone{Freq: 660, Duration: 15 * time.Millisecond}
	hardDropTone = Tone{Freq: 147, Duration: 45 * time.Millisecond}
)

// clearScale holds one rising note per cleared row.
var clearScale = [...]float64{523.25, 659.25, 783.99, 1046.5}

var gameOverTones = []Tone{
	{Freq: 392, Duration: 150 * time.Millisecond},
	{Freq: 330, Duration: 150 * time.Millisecond},
	{Freq: 262, Duration: 300 * time.Millisecond},
}

// Cues returns the tones for one tick's events, in playback order. A line clear
// replaces the lock and drop cues of the same tick.
func Cues(events []tetris.Event) []Tone {
	var (
		tones    []Tone
		cleared  int
		locked   bool
		dropped  bool
		rotated  bool
		gameOver bool
	)

	for _, e := range events {
		switch e.Kind {
		case tetris.EventLinesCleared:
			cleared = e.Value
		case tetris.EventLocked:
			locked = true
		case tetris.EventHardDropped:
			dropped = true
		case tetris.EventRotated:
			rotated = true
		case tetris.EventGameOver:
			gameOver = true
		}
	}

	switch {
	case gameOver:
		return append(tones, gameOverTones...)
	case cleared > 0:
		for i := range min(cleared, len(clearScale)) {
			tones = append(tones, Tone{Freq: clearScale[i], Duration: 70 * time.Millisecond})
		}
	case dropped:
		tones = append(tones, hardDropTone)
	case locked:
		tones = append(tones, lockTone)
	case rotated:
		tones = append(tones, rotateTone)
	}

	return tones
}

// Player sends cues to the system speaker.
type Player struct {
	volume float64
}

// NewPlayer initialises the speaker. Call Close when done.
func NewPlayer(volume float64) (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	return &Player{volume: volume}, nil
}

// Play queues the cues for the given events. It does not block.
func (p *Player) Play(events []tetris.Event) {
	tones := Cues(events)
	if len(tones) == 0 {
		return
	}

	parts := make([]beep.Streamer, 0, len(tones))
	for _, tone := range tones {
		sine, err := generators.SineTone(sampleRate, tone.Freq)
		if err != nil {
			continue
		}
		parts = append(parts, beep.Take(sampleRate.N(tone.Duration), sine))
	}

	speaker.Play(&effects.Volume{
		Streamer: beep.Seq(parts...),
		Base:     2,
		Volume:   p.volume,
	})
}

// Close releases the speaker.
func (p *Player) Close() {
	speaker.Close()
}
