package game

import (
	"math/rand"
	"time"

	"github.com/diegok/duopong/internal/geom"
)

// Match owns the two paddles, the ball and the scoreboard. It is not safe for
// concurrent use: input events and Update must come from the same goroutine.
type Match struct {
	Settings  Settings
	PaddleOne *Paddle
	PaddleTwo *Paddle
	Ball      *Ball
	Score     Scoreboard
	Tick      int
}

// NewMatch builds a match from s and serves the ball
func NewMatch(s Settings) *Match {
	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m := &Match{
		Settings:  s,
		PaddleOne: NewPaddle(s.PaddleOneStart, s),
		PaddleTwo: NewPaddle(s.PaddleTwoStart, s),
		Ball:      NewBall(geom.V(s.ScreenWidth/2, s.ScreenHeight/2), s, rand.New(rand.NewSource(seed))),
	}
	m.Ball.SpawnInMiddle()
	return m
}

// Paddle returns the paddle controlled by p
func (m *Match) Paddle(p Player) *Paddle {
	if p == PlayerTwo {
		return m.PaddleTwo
	}
	return m.PaddleOne
}

// KeyDown starts moving p's paddle in dir
func (m *Match) KeyDown(p Player, dir PaddleDirection) {
	m.Paddle(p).Press(dir)
}

// KeyUp stops p's paddle if it is still moving in dir
func (m *Match) KeyUp(p Player, dir PaddleDirection) {
	m.Paddle(p).Release(dir)
}

// Update runs one tick and reports whether the score changed
func (m *Match) Update() bool {
	m.Tick++

	m.PaddleOne.Update()
	m.PaddleTwo.Update()

	return m.Ball.Update([]*Paddle{m.PaddleOne, m.PaddleTwo}, &m.Score)
}

// Retune applies the speeds from s. Dimensions stay fixed for the match.
func (m *Match) Retune(s Settings) {
	m.Settings.PaddleSpeed = s.PaddleSpeed
	m.Settings.BallSpeed = s.BallSpeed
	m.PaddleOne.Speed = s.PaddleSpeed
	m.PaddleTwo.Speed = s.PaddleSpeed
	m.Ball.SetSpeed(s.BallSpeed)
}

// Snapshot is a read-only copy of everything a renderer needs
type Snapshot struct {
	Tick          int
	Width         float64
	Height        float64
	PaddleOne     geom.Rect
	PaddleTwo     geom.Rect
	Ball          geom.Rect
	BallDirection BallDirection
	Score         Scoreboard
}

// Snapshot copies the current state
func (m *Match) Snapshot() Snapshot {
	return Snapshot{
		Tick:          m.Tick,
		Width:         m.Settings.ScreenWidth,
		Height:        m.Settings.ScreenHeight,
		PaddleOne:     m.PaddleOne.Rect(),
		PaddleTwo:     m.PaddleTwo.Rect(),
		Ball:          m.Ball.Rect(),
		BallDirection: m.Ball.Direction,
		Score:         m.Score,
	}
}

// Events is what happened between two snapshots
type Events struct {
	PaddleHit bool
	Scored    bool
}

// DetectEvents compares consecutive snapshots. A change of travel direction
// without a score can only come from a paddle bounce; a respawn may flip the
// direction too, so it is ignored when scored is set.
func DetectEvents(prev, cur Snapshot, scored bool) Events {
	if scored {
		return Events{Scored: true}
	}
	return Events{PaddleHit: prev.BallDirection != cur.BallDirection}
}
