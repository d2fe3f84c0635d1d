package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/diegok/rong/internal/game"
)

const (
	sampleRate = beep.SampleRate(44100)
)

var (
	initialized bool
)

// Init initializes the audio system
func Init() error {
	if initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Second/30))
	if err != nil {
		return err
	}

	initialized = true
	return nil
}

// Close shuts down the audio system
func Close() {
	if initialized {
		speaker.Close()
		initialized = false
	}
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, i > 0
			}
			val := 0.2 // volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// Cue is one short tone
type Cue struct {
	Freq     float64
	Duration time.Duration
}

var (
	paddleHit  = []Cue{{880, 50 * time.Millisecond}}
	wallBounce = []Cue{{440, 30 * time.Millisecond}}
	score      = []Cue{{660, 100 * time.Millisecond}, {440, 100 * time.Millisecond}, {330, 150 * time.Millisecond}}
	matchOver  = []Cue{{523, 120 * time.Millisecond}, {659, 120 * time.Millisecond}, {784, 240 * time.Millisecond}}
)

// CuesFor picks the sound for a tick. Only the most important event of
// the tick is voiced.
func CuesFor(ev game.Events) []Cue {
	switch {
	case ev.Has(game.EventMatchOver):
		return matchOver
	case ev.Has(game.EventScore):
		return score
	case ev.Has(game.EventPaddleHit):
		return paddleHit
	case ev.Has(game.EventWallBounce):
		return wallBounce
	}
	return nil
}

// Sequence plays cues one after another
func Sequence(cues []Cue) beep.Streamer {
	streamers := make([]beep.Streamer, len(cues))
	for i, c := range cues {
		streamers[i] = squareWave(c.Freq, c.Duration)
	}
	return beep.Seq(streamers...)
}

// Play voices the events of one tick. It never blocks the game loop.
func Play(ev game.Events) {
	if !initialized {
		return
	}
	cues := CuesFor(ev)
	if len(cues) == 0 {
		return
	}
	speaker.Play(Sequence(cues))
}
