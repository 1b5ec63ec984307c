package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Surface is the drawing capability the game renders into.
// Coordinates are logical field pixels; all primitives are solid fills.
type Surface interface {
	Clear(color core.Color)
	DrawRect(x, y, w, h float64, color core.Color)
	DrawTriangle(points [3]core.Point, color core.Color)
	DrawCircle(x, y, r float64, color core.Color, alpha float64)
}

// Audio plays sound cues. Play must not block the simulation.
type Audio interface {
	Play(cue core.Cue)
}

// Reporter receives score and lifecycle notifications.
type Reporter interface {
	ReportScore(score int)
	ReportGameOver(finalScore int)
	ReportWave(wave int)
}

// RandomSource is the randomness the simulation depends on.
type RandomSource interface {
	Intn(n int) int
	Float64() float64
}

type nopAudio struct{}

func (nopAudio) Play(core.Cue) {}

type nopReporter struct{}

func (nopReporter) ReportScore(int)    {}
func (nopReporter) ReportGameOver(int) {}
func (nopReporter) ReportWave(int)     {}
