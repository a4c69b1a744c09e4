package game

import "github.com/diegok/duopong/internal/geom"

// Paddle is a player-controlled rectangle that only moves vertically
type Paddle struct {
	Pos         geom.Vec
	Size        geom.Vec
	Direction   PaddleDirection
	Speed       float64 // Units per tick
	CourtHeight float64
}

// NewPaddle creates a still paddle at pos
func NewPaddle(pos geom.Vec, s Settings) *Paddle {
	return &Paddle{
		Pos:         pos,
		Size:        s.PaddleSize,
		Direction:   Still,
		Speed:       s.PaddleSpeed,
		CourtHeight: s.ScreenHeight,
	}
}

// Press sets the movement intent unconditionally
func (p *Paddle) Press(dir PaddleDirection) {
	p.Direction = dir
}

// Release stops the paddle, but only if dir is still the held direction.
// A later press of the opposite key must survive the earlier key's release.
func (p *Paddle) Release(dir PaddleDirection) {
	if p.Direction == dir {
		p.Direction = Still
	}
}

// Update moves the paddle one tick and clamps it to the court
func (p *Paddle) Update() {
	switch p.Direction {
	case Up:
		p.Pos.Y -= p.Speed
	case Down:
		p.Pos.Y += p.Speed
	}

	// Half the paddle may leave the court at either edge. The bottom check
	// compares the full height against a half-height allowance.
	halfHeight := p.Size.Y / 2
	if p.Pos.Y < -halfHeight {
		p.Pos.Y = -halfHeight
	} else if p.Pos.Y+p.Size.Y > p.CourtHeight+halfHeight {
		p.Pos.Y = p.CourtHeight - halfHeight
	}
}

// Rect returns the paddle's bounding box
func (p *Paddle) Rect() geom.Rect {
	return geom.R(p.Pos, p.Size)
}
