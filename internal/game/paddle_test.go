package game

import (
	"testing"

	"github.com/diegok/duopong/internal/geom"
)

func newTestPaddle(y float64) *Paddle {
	return NewPaddle(geom.V(20, y), DefaultSettings())
}

func TestNewPaddle(t *testing.T) {
	paddle := NewPaddle(geom.V(770, 275), DefaultSettings())

	if paddle.Pos != geom.V(770, 275) {
		t.Errorf("expected Pos=(770,275), got %v", paddle.Pos)
	}
	if paddle.Size != geom.V(10, 50) {
		t.Errorf("expected Size=(10,50), got %v", paddle.Size)
	}
	if paddle.Direction != Still {
		t.Errorf("expected Direction=Still, got %v", paddle.Direction)
	}
	if paddle.Speed != DefaultPaddleSpeed {
		t.Errorf("expected Speed=%f, got %f", DefaultPaddleSpeed, paddle.Speed)
	}
}

func TestPaddle_MoveUp(t *testing.T) {
	paddle := newTestPaddle(275)
	paddle.Press(Up)

	paddle.Update()

	expectedY := 275 - DefaultPaddleSpeed
	if paddle.Pos.Y != expectedY {
		t.Errorf("expected Y=%f, got %f", expectedY, paddle.Pos.Y)
	}
	if paddle.Pos.X != 20 {
		t.Errorf("expected X to stay 20, got %f", paddle.Pos.X)
	}
}

func TestPaddle_MoveDown(t *testing.T) {
	paddle := newTestPaddle(275)
	paddle.Press(Down)

	paddle.Update()

	expectedY := 275 + DefaultPaddleSpeed
	if paddle.Pos.Y != expectedY {
		t.Errorf("expected Y=%f, got %f", expectedY, paddle.Pos.Y)
	}
}

func TestPaddle_StillIsIdempotent(t *testing.T) {
	// Every position inside the clamp range, edges included
	for _, y := range []float64{-25, 0, 100.25, 275, 550, 575} {
		paddle := newTestPaddle(y)
		for i := 0; i < 20; i++ {
			paddle.Update()
		}
		if paddle.Pos.Y != y {
			t.Errorf("expected Y to remain %f, got %f", y, paddle.Pos.Y)
		}
	}
}

func TestPaddle_StaysInBounds_Top(t *testing.T) {
	for _, start := range []float64{-25, 3, 275, 575} {
		paddle := newTestPaddle(start)
		paddle.Press(Up)

		for i := 0; i < 200; i++ {
			paddle.Update()
			if paddle.Pos.Y < -paddle.Size.Y/2 {
				t.Fatalf("paddle went above top boundary from %f: Y=%f", start, paddle.Pos.Y)
			}
		}
		if paddle.Pos.Y != -25 {
			t.Errorf("expected paddle to rest at Y=-25, got %f", paddle.Pos.Y)
		}
	}
}

func TestPaddle_StaysInBounds_Bottom(t *testing.T) {
	paddle := newTestPaddle(275)
	paddle.Press(Down)

	for i := 0; i < 200; i++ {
		paddle.Update()
	}

	// Half the paddle hangs below the court
	if paddle.Pos.Y != 575 {
		t.Errorf("expected paddle to rest at Y=575, got %f", paddle.Pos.Y)
	}
}

func TestPaddle_ClampsOutOfRangeStart(t *testing.T) {
	tests := []struct {
		name  string
		start float64
		want  float64
	}{
		{"far above", -300, -25},
		{"just above", -25.5, -25},
		{"just below", 575.5, 575},
		{"far below", 900, 575},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			paddle := newTestPaddle(tt.start)
			paddle.Update()
			if paddle.Pos.Y != tt.want {
				t.Errorf("expected Y=%f, got %f", tt.want, paddle.Pos.Y)
			}
		})
	}
}

func TestPaddle_ReleaseOnlyClearsHeldDirection(t *testing.T) {
	paddle := newTestPaddle(275)

	// Up pressed, then Down pressed while Up is still held
	paddle.Press(Up)
	paddle.Press(Down)

	// Releasing Up must not cancel Down
	paddle.Release(Up)
	if paddle.Direction != Down {
		t.Errorf("expected Direction=Down after releasing Up, got %v", paddle.Direction)
	}

	paddle.Release(Down)
	if paddle.Direction != Still {
		t.Errorf("expected Direction=Still after releasing Down, got %v", paddle.Direction)
	}
}

func TestPaddle_Rect(t *testing.T) {
	paddle := newTestPaddle(275)
	want := geom.R(geom.V(20, 275), geom.V(10, 50))
	if paddle.Rect() != want {
		t.Errorf("expected Rect=%v, got %v", want, paddle.Rect())
	}
}
