package tui

import (
	"io"

	"github.com/charmbracelet/log"
)

// logReporter records game events in the session log.
type logReporter struct {
	logger *log.Logger
}

func newLogReporter(logger *log.Logger) *logReporter {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &logReporter{logger: logger}
}

func (r *logReporter) ReportScore(score int) {
	r.logger.Debug("score", "score", score)
}

func (r *logReporter) ReportWave(wave int) {
	r.logger.Info("wave cleared, grid regenerated", "wave", wave)
}

func (r *logReporter) ReportGameOver(finalScore int) {
	r.logger.Info("game over", "score", finalScore)
}
