package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestHeldKeysDecay(t *testing.T) {
	h := NewHeldKeys(3)
	h.Press(core.ActionFire)

	for tick := 1; tick <= 3; tick++ {
		if !h.Snapshot().Has(core.ActionFire) {
			t.Fatalf("tick %d: fire should still be held", tick)
		}
		h.Tick()
	}
	if h.Snapshot().Has(core.ActionFire) {
		t.Error("fire should be released after the hold expires")
	}
}

func TestHeldKeysRepeatRefreshes(t *testing.T) {
	h := NewHeldKeys(3)
	h.Press(core.ActionLeft)
	h.Tick()
	h.Tick()
	h.Press(core.ActionLeft) // auto-repeat
	h.Tick()
	h.Tick()
	if !h.Snapshot().Has(core.ActionLeft) {
		t.Error("auto-repeat should keep the key held")
	}
}

func TestHeldKeysOppositeDirectionReleases(t *testing.T) {
	h := NewHeldKeys(10)
	h.Press(core.ActionLeft)
	h.Press(core.ActionFire)
	h.Press(core.ActionRight)

	in := h.Snapshot()
	if in.Has(core.ActionLeft) {
		t.Error("pressing right should release left")
	}
	if !in.Has(core.ActionRight) || !in.Has(core.ActionFire) {
		t.Error("right and fire should be held together")
	}

	h.Reset()
	if len(h.Snapshot().Actions) != 0 {
		t.Error("Reset should release every key")
	}
}

func TestSnapshotIsIndependent(t *testing.T) {
	h := NewHeldKeys(2)
	h.Press(core.ActionFire)
	in := h.Snapshot()
	h.Reset()
	if !in.Has(core.ActionFire) {
		t.Error("a taken snapshot should not change when keys are released")
	}
}

func TestHoldTicksFor(t *testing.T) {
	if got := holdTicksFor(60); got != 15 {
		t.Errorf("60 fps should hold for 15 ticks, got %d", got)
	}
	if got := holdTicksFor(2); got != 1 {
		t.Errorf("hold should be at least one tick, got %d", got)
	}
}

func TestKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")}, core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("d")}, core.ActionRight},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.ActionFire},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, core.ActionRestart},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, core.ActionNone},
	}
	for _, tt := range tests {
		if got := km.Action(tt.msg); got != tt.want {
			t.Errorf("key %q: expected %s, got %s", tt.msg.String(), tt.want, got)
		}
	}
}
