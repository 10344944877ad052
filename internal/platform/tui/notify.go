package tui

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mathduel/internal/quiz"
)

// logNotifier writes session events to a structured logger.
type logNotifier struct {
	logger *log.Logger
}

// Notify implements quiz.Notifier.
func (n logNotifier) Notify(evt quiz.Event) {
	switch e := evt.(type) {
	case quiz.ProblemChanged:
		n.logger.Debug("new problem", "problem", e.DisplayText, "stage", e.Stage)
	case quiz.Feedback:
		n.logger.Debug("answer judged", "message", e.Message, "sentiment", e.Sentiment)
	case quiz.ScoreChanged:
		n.logger.Debug("score changed", "p1", e.Score1, "p2", e.Score2)
	case quiz.TurnChanged:
		n.logger.Debug("turn changed", "player", int(e.Player))
	case quiz.GameEnded:
		n.logger.Info("game ended",
			"outcome", e.Message,
			"p1", e.Outcome.Score1,
			"p2", e.Outcome.Score2,
			"winner", int(e.Outcome.Winner),
		)
	}
	// TimerTick is too chatty to log.
}
