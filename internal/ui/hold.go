package ui

import "github.com/diegok/duopong/internal/game"

// HoldTicks is how long a key counts as held after its last press or
// repeat (~133ms at 60Hz)
const HoldTicks = 8

// KeyHandler receives paddle input events
type KeyHandler interface {
	KeyDown(p game.Player, dir game.PaddleDirection)
	KeyUp(p game.Player, dir game.PaddleDirection)
}

// HoldTracker turns terminal key presses into down/up pairs. Terminals
// report presses and auto-repeats but never releases, so a key is released
// once it has not repeated for a few ticks.
type HoldTracker struct {
	ticks int
	held  map[Binding]int
}

// NewHoldTracker creates a tracker releasing keys after ticks idle ticks
func NewHoldTracker(ticks int) *HoldTracker {
	if ticks < 1 {
		ticks = 1
	}
	return &HoldTracker{
		ticks: ticks,
		held:  make(map[Binding]int),
	}
}

// Press records a press or repeat. Only the first press of a hold is
// forwarded, so a repeating key cannot steal the paddle back from a key
// pressed after it.
func (h *HoldTracker) Press(b Binding, target KeyHandler) {
	if _, ok := h.held[b]; !ok {
		target.KeyDown(b.Player, b.Dir)
	}
	h.held[b] = h.ticks
}

// Tick ages every held key and releases the expired ones
func (h *HoldTracker) Tick(target KeyHandler) {
	for b, left := range h.held {
		left--
		if left > 0 {
			h.held[b] = left
			continue
		}
		delete(h.held, b)
		target.KeyUp(b.Player, b.Dir)
	}
}

// Held reports whether b is currently held
func (h *HoldTracker) Held(b Binding) bool {
	_, ok := h.held[b]
	return ok
}
