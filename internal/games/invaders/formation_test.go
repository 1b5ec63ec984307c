package invaders

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

func newTestFormation(rng RandomSource) *Formation {
	f := NewFormation(config.DefaultInvadersConfig(), rng)
	f.Spawn()
	return f
}

func TestFormationSpawnGrid(t *testing.T) {
	f := newTestFormation(NewSimpleRNG(1))

	if len(f.Enemies) != 50 {
		t.Fatalf("expected 50 enemies, got %d", len(f.Enemies))
	}
	first, last := f.Enemies[0], f.Enemies[49]
	if first.X != 100 || first.Y != 50 || first.Row != 0 {
		t.Errorf("first enemy should be at (100, 50) row 0, got (%v, %v) row %d", first.X, first.Y, first.Row)
	}
	if last.X != 640 || last.Y != 250 || last.Row != 4 {
		t.Errorf("last enemy should be at (640, 250) row 4, got (%v, %v) row %d", last.X, last.Y, last.Row)
	}
	for _, e := range f.Enemies {
		if e.Health != 1 || e.MaxHealth != 1 || e.Dir != 1 {
			t.Fatalf("fresh enemy should have health 1 and dir +1, got %+v", e)
		}
	}
}

func TestFormationLinearMotion(t *testing.T) {
	f := newTestFormation(NewSimpleRNG(1))
	initial := make([]float64, len(f.Enemies))
	for i, e := range f.Enemies {
		initial[i] = e.X
	}

	const n = 50
	for range n {
		if f.Advance() {
			t.Fatal("grid should not reach an edge within 50 ticks")
		}
	}
	for i, e := range f.Enemies {
		if want := initial[i] + n*e.Speed*e.Dir; e.X != want {
			t.Errorf("enemy %d: x=%v, want %v", i, e.X, want)
		}
	}
}

func TestFormationShiftIsAllOrNothing(t *testing.T) {
	f := newTestFormation(NewSimpleRNG(1))

	ticks := 0
	for {
		beforeY := make([]float64, len(f.Enemies))
		beforeDir := make([]float64, len(f.Enemies))
		for i, e := range f.Enemies {
			beforeY[i], beforeDir[i] = e.Y, e.Dir
		}

		shifted := f.Advance()
		ticks++

		changed := 0
		for i, e := range f.Enemies {
			if e.Y != beforeY[i] || e.Dir != beforeDir[i] {
				changed++
				if e.Y != beforeY[i]+20 || e.Dir != -beforeDir[i] {
					t.Fatalf("tick %d: enemy %d shifted wrongly: %+v", ticks, i, e)
				}
			}
		}
		if shifted && changed != len(f.Enemies) {
			t.Fatalf("tick %d: shift moved %d of %d enemies", ticks, changed, len(f.Enemies))
		}
		if !shifted && changed != 0 {
			t.Fatalf("tick %d: %d enemies changed row without a shift", ticks, changed)
		}
		if shifted {
			break
		}
		if ticks > 1000 {
			t.Fatal("grid never reached an edge")
		}
	}

	// Rightmost edge starts at 680 and reaches 800 after 120 ticks
	if ticks != 120 {
		t.Errorf("expected first shift on tick 120, got %d", ticks)
	}
	_, right := f.Bounds()
	if right != 800 {
		t.Errorf("grid should sit on the edge for the shift frame, right=%v", right)
	}
}

func TestFormationBounceOffLeftEdge(t *testing.T) {
	f := newTestFormation(NewSimpleRNG(1))
	for i := range f.Enemies {
		f.Enemies[i].Dir = -1
	}
	// Leftmost edge starts at 100
	for tick := 1; tick <= 100; tick++ {
		shifted := f.Advance()
		if shifted != (tick == 100) {
			t.Fatalf("tick %d: shifted=%v", tick, shifted)
		}
	}
	if f.Enemies[0].Dir != 1 {
		t.Error("grid should head right after bouncing off the left edge")
	}
}

func TestFormationEmptyNeverShiftsOrFires(t *testing.T) {
	f := newTestFormation(NewSimpleRNG(1))
	f.Enemies = nil

	for range 200 {
		if f.Advance() {
			t.Fatal("empty formation should never shift")
		}
		if _, ok := f.Fire(); ok {
			t.Fatal("empty formation should never fire")
		}
	}
	if f.fireTimer != 0 {
		t.Errorf("fire timer should not advance while empty, got %d", f.fireTimer)
	}
}

func TestFormationFireTargetsChosenEnemy(t *testing.T) {
	rng := &scriptedRNG{ints: []int{7}}
	f := newTestFormation(rng)

	for tick := 1; tick < 60; tick++ {
		if _, ok := f.Fire(); ok {
			t.Fatalf("fired early on tick %d", tick)
		}
		if f.fireTimer < 0 || f.fireTimer > f.fireInterval {
			t.Fatalf("fire timer %d out of [0, %d]", f.fireTimer, f.fireInterval)
		}
	}

	b, ok := f.Fire()
	if !ok {
		t.Fatal("expected enemy fire on tick 60")
	}
	if rng.calls != 1 {
		t.Errorf("expected one random draw, got %d", rng.calls)
	}
	e := f.Enemies[7]
	if b.X != e.X+e.W/2-2 || b.Y != e.Y+e.H {
		t.Errorf("bullet should leave the lower center of enemy 7, got (%v, %v)", b.X, b.Y)
	}
	if b.FromPlayer || b.Speed != 4 {
		t.Errorf("enemy bullet should travel down at 4, got %+v", b)
	}
	if f.fireTimer != 0 {
		t.Errorf("timer should reset after firing, got %d", f.fireTimer)
	}
}

func TestFormationSetPaceClampsTimer(t *testing.T) {
	f := newTestFormation(NewSimpleRNG(1))
	f.fireTimer = 50
	f.SetPace(2, 20)

	if f.fireTimer != 20 {
		t.Errorf("timer should clamp to new interval 20, got %d", f.fireTimer)
	}
	f.Spawn()
	if f.Enemies[0].Speed != 2 {
		t.Errorf("new spawns should use the new speed, got %v", f.Enemies[0].Speed)
	}
}

func TestFormationReached(t *testing.T) {
	f := newTestFormation(NewSimpleRNG(1))
	// Bottom row spans y 250..280
	if f.Reached(281) {
		t.Error("grid above the line should not count as reached")
	}
	if !f.Reached(280) {
		t.Error("lower edge touching the line should count as reached")
	}
}
