package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"

	"github.com/diegok/duopong/internal/game"
)

const (
	sampleRate = beep.SampleRate(44100)
	volume     = 0.2
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

// Enabled reports whether cues will be heard
func Enabled() bool {
	return initialized
}

// Close shuts down the audio system
func Close() {
	if initialized {
		speaker.Close()
		initialized = false
	}
}

// squareWave generates a retro square wave tone
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			val := volume
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

// scoreJingle is three descending notes back to back
func scoreJingle() beep.Streamer {
	return beep.Seq(
		squareWave(660, 100*time.Millisecond),
		squareWave(440, 100*time.Millisecond),
		squareWave(330, 150*time.Millisecond),
	)
}

// PlayPaddleHit plays the sound for the ball bouncing off a paddle
func PlayPaddleHit() {
	if !initialized {
		return
	}
	speaker.Play(squareWave(880, 50*time.Millisecond))
}

// PlayScore plays the sound when a point is scored
func PlayScore() {
	if !initialized {
		return
	}
	speaker.Play(scoreJingle())
}

// Play plays the cue for ev, if any
func Play(ev game.Events) {
	switch {
	case ev.Scored:
		PlayScore()
	case ev.PaddleHit:
		PlayPaddleHit()
	}
}
