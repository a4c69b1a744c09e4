package game

// PaddleDirection is a paddle's current movement intent
type PaddleDirection int

const (
	Still PaddleDirection = iota
	Up
	Down
)

func (d PaddleDirection) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return "still"
	}
}

// BallDirection is the ball's horizontal travel sense
type BallDirection int

const (
	Right BallDirection = iota
	Left
)

func (d BallDirection) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Player identifies one of the two paddles. The value doubles as the
// paddle's index in collision order.
type Player int

const (
	PlayerOne Player = 0 // Left paddle
	PlayerTwo Player = 1 // Right paddle
)

func (p Player) String() string {
	if p == PlayerTwo {
		return "player two"
	}
	return "player one"
}
