package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/duopong/internal/game"
)

// Binding is what a movement key controls
type Binding struct {
	Player game.Player
	Dir    game.PaddleDirection
}

// KeyToBinding maps W/S to player one and the arrow keys to player two
func KeyToBinding(key tcell.Key, r rune) (Binding, bool) {
	switch key {
	case tcell.KeyUp:
		return Binding{game.PlayerTwo, game.Up}, true
	case tcell.KeyDown:
		return Binding{game.PlayerTwo, game.Down}, true
	case tcell.KeyRune:
		switch r {
		case 'w', 'W':
			return Binding{game.PlayerOne, game.Up}, true
		case 's', 'S':
			return Binding{game.PlayerOne, game.Down}, true
		}
	}
	return Binding{}, false
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}
