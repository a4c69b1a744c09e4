package game

import "fmt"

// Scoreboard keeps the points of both players
type Scoreboard struct {
	PadOne uint32
	PadTwo uint32
}

// Award gives one point to p
func (sb *Scoreboard) Award(p Player) {
	if p == PlayerTwo {
		sb.PadTwo++
		return
	}
	sb.PadOne++
}

// Points returns the score of p
func (sb Scoreboard) Points(p Player) uint32 {
	if p == PlayerTwo {
		return sb.PadTwo
	}
	return sb.PadOne
}

// String formats the board as "<one> : <two>"
func (sb Scoreboard) String() string {
	return fmt.Sprintf("%d : %d", sb.PadOne, sb.PadTwo)
}
