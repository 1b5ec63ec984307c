package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

type recordingAudio struct {
	cues []core.Cue
}

func (a *recordingAudio) Play(cue core.Cue) {
	a.cues = append(a.cues, cue)
}

func (a *recordingAudio) count(cue core.Cue) int {
	n := 0
	for _, c := range a.cues {
		if c == cue {
			n++
		}
	}
	return n
}

type recordingReporter struct {
	scores    []int
	gameOvers []int
	waves     []int
}

func (r *recordingReporter) ReportScore(score int)         { r.scores = append(r.scores, score) }
func (r *recordingReporter) ReportGameOver(finalScore int) { r.gameOvers = append(r.gameOvers, finalScore) }
func (r *recordingReporter) ReportWave(wave int)           { r.waves = append(r.waves, wave) }

// scriptedRNG returns the queued values in order, then zeros.
type scriptedRNG struct {
	ints   []int
	floats []float64
	calls  int
}

func (s *scriptedRNG) Intn(n int) int {
	s.calls++
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0]
	s.ints = s.ints[1:]
	return v % n
}

func (s *scriptedRNG) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

type drawOp struct {
	kind  string // clear, rect, triangle, circle
	color core.Color
}

type recordingSurface struct {
	ops []drawOp
}

func (s *recordingSurface) Clear(c core.Color) {
	s.ops = append(s.ops, drawOp{"clear", c})
}

func (s *recordingSurface) DrawRect(_, _, _, _ float64, c core.Color) {
	s.ops = append(s.ops, drawOp{"rect", c})
}

func (s *recordingSurface) DrawTriangle(_ [3]core.Point, c core.Color) {
	s.ops = append(s.ops, drawOp{"triangle", c})
}

func (s *recordingSurface) DrawCircle(_, _, _ float64, c core.Color, _ float64) {
	s.ops = append(s.ops, drawOp{"circle", c})
}

// newPlayingGame returns a game already past the start screen.
func newPlayingGame(opts ...Option) *Game {
	g := New(config.DefaultInvadersConfig(), opts...)
	g.Start()
	return g
}

func fireInput() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionFire)
	return in
}
