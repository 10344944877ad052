package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mathduel/internal/quiz"
)

const title = "M A T H   D U E L"

// View renders the current phase.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.session.Phase() {
	case quiz.PhaseActive:
		body = m.viewPlay()
	case quiz.PhaseEnded:
		body = m.viewEnded()
	default:
		body = m.viewSetup()
	}

	footer := m.help.View(m.keys.ForPhase(m.session.Phase()))
	screen := lipgloss.JoinVertical(lipgloss.Center,
		m.styles.Title.Render(title),
		"",
		m.styles.Box.Render(body),
		"",
		footer,
	)

	if m.width <= 0 || m.height <= 0 {
		return screen
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, screen)
}

// viewSetup renders the option form.
func (m Model) viewSetup() string {
	var b strings.Builder

	b.WriteString(m.styles.Subtitle.Render("Choose your game"))
	b.WriteString("\n\n")

	for i, row := range m.setup.rows() {
		cursor := "  "
		value := m.styles.Value.Render(row[1])
		if i == m.setup.row {
			cursor = m.styles.Selected.Render("> ")
			value = m.styles.Selected.Render("< " + row[1] + " >")
		}
		fmt.Fprintf(&b, "%s%s %s\n", cursor, m.styles.Label.Render(fmt.Sprintf("%-11s", row[0])), value)
	}

	return strings.TrimRight(b.String(), "\n")
}

// viewPlay renders the scoreboard, problem, answer field and feedback.
func (m Model) viewPlay() string {
	snap := m.session.Snapshot()
	twoPlayer := snap.Config.Mode == quiz.ModeTwoPlayer

	var lines []string

	// Status line: stage, scores, timer
	status := []string{
		m.styles.Label.Render("Stage ") + m.styles.Value.Render(fmt.Sprint(snap.Stage)),
		m.styles.Player(quiz.Player1).Render(fmt.Sprintf("P1: %d", snap.Score1)),
	}
	if twoPlayer {
		status = append(status, m.styles.Player(quiz.Player2).Render(fmt.Sprintf("P2: %d", snap.Score2)))
	}
	if snap.TimerArmed {
		status = append(status, m.styles.Timer.Render(quiz.FormatClock(snap.Remaining)))
	}
	lines = append(lines, strings.Join(status, "   "))

	if twoPlayer {
		turn := fmt.Sprintf("Player %d's Turn", snap.CurrentPlayer)
		lines = append(lines, m.styles.Player(snap.CurrentPlayer).Render(turn))
	}

	lines = append(lines,
		m.styles.Problem.Render(snap.Problem.String()),
		m.answer.View(),
		"",
	)

	if m.hasFeedback {
		lines = append(lines, m.styles.Feedback(m.feedback.Sentiment).Render(m.feedback.Message))
	} else {
		lines = append(lines, m.styles.Muted.Render("Type your answer and press enter"))
	}

	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

// viewEnded renders the outcome.
func (m Model) viewEnded() string {
	outcome := m.session.Outcome()

	lines := []string{m.styles.Winner.Render(m.ended.Message)}
	if outcome.Mode == quiz.ModeTwoPlayer {
		lines = append(lines, "",
			m.styles.Player(quiz.Player1).Render(fmt.Sprintf("Player 1: %d", outcome.Score1)),
			m.styles.Player(quiz.Player2).Render(fmt.Sprintf("Player 2: %d", outcome.Score2)),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}
