package tui

import "github.com/vovakirdan/tui-invaders/internal/core"

// HeldKeys approximates held-key state for terminals, which report key
// presses and auto-repeats but no releases. A press holds its action for a
// fixed number of ticks; auto-repeat keeps refreshing it while the key is down.
type HeldKeys struct {
	hold  int
	ticks map[core.Action]int
}

// NewHeldKeys creates a tracker where each press lasts hold ticks.
func NewHeldKeys(hold int) *HeldKeys {
	return &HeldKeys{
		hold:  max(hold, 1),
		ticks: make(map[core.Action]int),
	}
}

// holdTicksFor covers the typical auto-repeat gap of a quarter second.
func holdTicksFor(tickRate int) int {
	return max(tickRate/4, 1)
}

// Press marks an action held. Moving one way releases the other.
func (h *HeldKeys) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		delete(h.ticks, core.ActionRight)
	case core.ActionRight:
		delete(h.ticks, core.ActionLeft)
	}
	h.ticks[a] = h.hold
}

// Snapshot returns the actions held right now.
func (h *HeldKeys) Snapshot() core.InputFrame {
	frame := core.NewInputFrame()
	for a, n := range h.ticks {
		if n > 0 {
			frame.Set(a)
		}
	}
	return frame
}

// Tick ages every held action by one tick.
func (h *HeldKeys) Tick() {
	for a, n := range h.ticks {
		if n <= 1 {
			delete(h.ticks, a)
			continue
		}
		h.ticks[a] = n - 1
	}
}

// Reset releases everything.
func (h *HeldKeys) Reset() {
	clear(h.ticks)
}
