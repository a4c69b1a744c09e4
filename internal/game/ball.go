package game

import (
	"math"
	"math/rand"

	"github.com/diegok/duopong/internal/geom"
)

// Bounce angle mapping: a hit at the paddle's top edge leaves at
// BounceBaseAngle, one at the bottom edge at BounceBaseAngle-BounceSpread.
const (
	BounceBaseAngle = 112.5
	BounceSpread    = 45.0
	MinSpawnAngle   = 60.0
	MaxSpawnAngle   = 120.0 // Exclusive
)

// Ball is the moving rectangle. Its displacement is driven by Angle alone;
// Direction only decides how the next bounce is reflected.
type Ball struct {
	Pos       geom.Vec
	Size      geom.Vec
	Angle     float64 // Degrees
	Direction BallDirection
	LastHit   int // Index of the paddle that touched the ball last

	settings Settings
	rng      *rand.Rand
}

// NewBall creates a ball at pos heading right at 90 degrees. Call
// SpawnInMiddle to serve it.
func NewBall(pos geom.Vec, s Settings, rng *rand.Rand) *Ball {
	return &Ball{
		Pos:       pos,
		Size:      s.BallSize,
		Angle:     90,
		Direction: Right,
		settings:  s,
		rng:       rng,
	}
}

// Rect returns the ball's bounding box
func (b *Ball) Rect() geom.Rect {
	return geom.R(b.Pos, b.Size)
}

// Update runs the collision, motion and scoring phases for one tick.
// It returns true when a point was scored; the ball has already respawned
// by then.
func (b *Ball) Update(paddles []*Paddle, sb *Scoreboard) bool {
	if index, ok := b.Collide(paddles); ok {
		b.LastHit = index
	}

	b.Move()

	if b.outOfBounds() {
		// The side that did not touch the ball last gets the point
		if b.LastHit == int(PlayerOne) {
			sb.Award(PlayerTwo)
		} else {
			sb.Award(PlayerOne)
		}
		b.SpawnInMiddle()
		return true
	}
	return false
}

// Collide bounces the ball off the first paddle it overlaps, in list order,
// and returns that paddle's index.
func (b *Ball) Collide(paddles []*Paddle) (int, bool) {
	ball := b.Rect()
	for i, p := range paddles {
		if !ball.Overlaps(p.Rect()) {
			continue
		}

		b.Angle = BounceBaseAngle - BounceSpread*((b.Pos.Y-p.Pos.Y)/p.Size.Y)

		switch b.Direction {
		case Right:
			b.Angle = -b.Angle
			b.Direction = Left
			b.Pos.X = p.Pos.X - b.Size.X
		case Left:
			b.Direction = Right
			if b.settings.FixRightBounce {
				b.Pos.X = p.Pos.X + p.Size.X
			} else {
				b.Pos.X = p.Pos.X + p.Pos.X
			}
		}
		return i, true
	}
	return 0, false
}

// Move advances the ball along its angle
func (b *Ball) Move() {
	rad := b.Angle * math.Pi / 180
	b.Pos.X += math.Sin(rad) * b.settings.BallSpeed
	b.Pos.Y += math.Cos(rad) * b.settings.BallSpeed
}

// outOfBounds checks the left/right margins first, then top/bottom. Both
// count as an exit.
func (b *Ball) outOfBounds() bool {
	s := b.settings
	if b.Pos.X > s.ScreenWidth+s.ExitMarginX || b.Pos.X+b.Size.X < -s.ExitMarginX {
		return true
	}
	return b.Pos.Y > s.ScreenHeight+s.ExitMarginY || b.Pos.Y+b.Size.Y < -s.ExitMarginY
}

// SpawnInMiddle centres the ball and serves it at a random angle to a random
// side. The side it leaves from is blamed if it exits before any paddle
// touches it.
func (b *Ball) SpawnInMiddle() {
	b.Pos = geom.V(
		b.settings.ScreenWidth/2-b.Size.X/2,
		b.settings.ScreenHeight/2-b.Size.Y/2,
	)
	b.Angle = MinSpawnAngle + b.rng.Float64()*(MaxSpawnAngle-MinSpawnAngle)

	if b.rng.Intn(2) == 0 {
		b.Direction = Left
		b.Angle = -b.Angle
		b.LastHit = int(PlayerTwo)
	} else {
		b.Direction = Right
		b.LastHit = int(PlayerOne)
	}
}

// SetSpeed changes the per-tick displacement
func (b *Ball) SetSpeed(speed float64) {
	b.settings.BallSpeed = speed
}
