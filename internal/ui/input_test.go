package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/duopong/internal/game"
)

func TestKeyToBinding(t *testing.T) {
	tests := []struct {
		key    tcell.Key
		rune   rune
		want   Binding
		wantOK bool
	}{
		{tcell.KeyUp, 0, Binding{game.PlayerTwo, game.Up}, true},
		{tcell.KeyDown, 0, Binding{game.PlayerTwo, game.Down}, true},
		{tcell.KeyRune, 'w', Binding{game.PlayerOne, game.Up}, true},
		{tcell.KeyRune, 'W', Binding{game.PlayerOne, game.Up}, true},
		{tcell.KeyRune, 's', Binding{game.PlayerOne, game.Down}, true},
		{tcell.KeyRune, 'S', Binding{game.PlayerOne, game.Down}, true},
		{tcell.KeyRune, 'x', Binding{}, false},
		{tcell.KeyLeft, 0, Binding{}, false},
	}

	for _, tt := range tests {
		got, ok := KeyToBinding(tt.key, tt.rune)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("KeyToBinding(%v, %c) = %v, %v, want %v, %v", tt.key, tt.rune, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestIsQuitKey(t *testing.T) {
	if !IsQuitKey(tcell.KeyRune, 'q') {
		t.Error("'q' should be quit key")
	}
	if !IsQuitKey(tcell.KeyRune, 'Q') {
		t.Error("'Q' should be quit key")
	}
	if !IsQuitKey(tcell.KeyEscape, 0) {
		t.Error("Escape should be quit key")
	}
	if !IsQuitKey(tcell.KeyCtrlC, 0) {
		t.Error("Ctrl+C should be quit key")
	}
	if IsQuitKey(tcell.KeyRune, 'w') {
		t.Error("'w' should not be quit key")
	}
}
