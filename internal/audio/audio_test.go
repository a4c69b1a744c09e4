package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep/v2"

	"github.com/diegok/duopong/internal/game"
)

// drain counts the samples a streamer produces before it ends
func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

func TestSquareWave_Length(t *testing.T) {
	got := drain(squareWave(880, 50*time.Millisecond))
	want := sampleRate.N(50 * time.Millisecond)
	if got != want {
		t.Errorf("expected %d samples, got %d", want, got)
	}
}

func TestSquareWave_Amplitude(t *testing.T) {
	buf := make([][2]float64, 256)
	n, _ := squareWave(440, time.Second).Stream(buf)

	for i := 0; i < n; i++ {
		if buf[i][0] != volume && buf[i][0] != -volume {
			t.Fatalf("sample %d: expected +-%f, got %f", i, volume, buf[i][0])
		}
		if buf[i][0] != buf[i][1] {
			t.Fatalf("sample %d: channels differ", i)
		}
	}
}

func TestScoreJingle_Length(t *testing.T) {
	got := drain(scoreJingle())
	want := sampleRate.N(100*time.Millisecond)*2 + sampleRate.N(150*time.Millisecond)
	if got != want {
		t.Errorf("expected %d samples, got %d", want, got)
	}
}

func TestPlay_Uninitialized(t *testing.T) {
	// Must be a no-op without a speaker
	Play(game.Events{Scored: true})
	Play(game.Events{PaddleHit: true})
	Play(game.Events{})
}
