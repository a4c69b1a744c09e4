package game

import (
	"errors"
	"fmt"

	"github.com/diegok/duopong/internal/geom"
)

// Default values for a match
const (
	DefaultPaddleSpeed  = 7.5 // Units per tick
	DefaultBallSpeed    = 9.0 // Units per tick
	DefaultScreenWidth  = 800
	DefaultScreenHeight = 600
	DefaultExitMarginX  = 50 // How far past the left/right edge the ball may travel before scoring
	DefaultExitMarginY  = 20 // Same for the top/bottom edge
)

// Settings holds every tunable a match is built from. Entities receive it at
// construction instead of reading package constants.
type Settings struct {
	PaddleSpeed    float64  `toml:"paddle_speed" yaml:"paddle_speed"`
	BallSpeed      float64  `toml:"ball_speed" yaml:"ball_speed"`
	ScreenWidth    float64  `toml:"screen_width" yaml:"screen_width"`
	ScreenHeight   float64  `toml:"screen_height" yaml:"screen_height"`
	PaddleSize     geom.Vec `toml:"paddle_size" yaml:"paddle_size"`
	BallSize       geom.Vec `toml:"ball_size" yaml:"ball_size"`
	PaddleOneStart geom.Vec `toml:"paddle_one_start" yaml:"paddle_one_start"`
	PaddleTwoStart geom.Vec `toml:"paddle_two_start" yaml:"paddle_two_start"`
	ExitMarginX    float64  `toml:"exit_margin_x" yaml:"exit_margin_x"`
	ExitMarginY    float64  `toml:"exit_margin_y" yaml:"exit_margin_y"`

	// FixRightBounce repositions a ball bouncing to the right at the
	// paddle's right edge. When false the ball lands at twice the paddle's
	// x-coordinate, which is the long-standing behaviour.
	FixRightBounce bool `toml:"fix_right_bounce" yaml:"fix_right_bounce"`

	// Seed for the respawn RNG. 0 seeds from the clock.
	Seed int64 `toml:"seed" yaml:"seed"`
}

// DefaultSettings returns the classic 800x600 layout.
func DefaultSettings() Settings {
	return Settings{
		PaddleSpeed:    DefaultPaddleSpeed,
		BallSpeed:      DefaultBallSpeed,
		ScreenWidth:    DefaultScreenWidth,
		ScreenHeight:   DefaultScreenHeight,
		PaddleSize:     geom.V(10, 50),
		BallSize:       geom.V(10, 10),
		PaddleOneStart: geom.V(20, 275),
		PaddleTwoStart: geom.V(770, 275),
		ExitMarginX:    DefaultExitMarginX,
		ExitMarginY:    DefaultExitMarginY,
	}
}

// Validate rejects settings no match can be built from.
func (s Settings) Validate() error {
	if s.ScreenWidth <= 0 || s.ScreenHeight <= 0 {
		return fmt.Errorf("screen must be positive, got %gx%g", s.ScreenWidth, s.ScreenHeight)
	}
	if s.PaddleSize.X <= 0 || s.PaddleSize.Y <= 0 {
		return fmt.Errorf("paddle size must be positive, got %gx%g", s.PaddleSize.X, s.PaddleSize.Y)
	}
	if s.BallSize.X <= 0 || s.BallSize.Y <= 0 {
		return fmt.Errorf("ball size must be positive, got %gx%g", s.BallSize.X, s.BallSize.Y)
	}
	if s.PaddleSpeed < 0 || s.BallSpeed < 0 {
		return errors.New("speeds cannot be negative")
	}
	if s.ExitMarginX < 0 || s.ExitMarginY < 0 {
		return errors.New("exit margins cannot be negative")
	}
	return nil
}
