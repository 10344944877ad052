package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mathduel/internal/quiz"
)

// Palette uses ANSI 256-color codes for terminal compatibility.
const (
	colorGreen  = lipgloss.Color("2")
	colorRed    = lipgloss.Color("9")
	colorOrange = lipgloss.Color("208")
	colorBlue   = lipgloss.Color("12")
	colorPink   = lipgloss.Color("13")
	colorGray   = lipgloss.Color("245")
	colorWhite  = lipgloss.Color("15")
)

// Styles holds every style the views use.
// Styles are built from a renderer so SSH sessions get their own color profile.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Box      lipgloss.Style
	Problem  lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Selected lipgloss.Style
	Muted    lipgloss.Style
	Timer    lipgloss.Style
	Winner   lipgloss.Style

	players  map[quiz.Player]lipgloss.Style
	feedback map[quiz.Sentiment]lipgloss.Style
}

// NewStyles creates styles for the given renderer.
// A nil renderer uses the default one on stdout.
func NewStyles(r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	return Styles{
		Title:    r.NewStyle().Bold(true).Foreground(colorWhite).Padding(0, 1),
		Subtitle: r.NewStyle().Foreground(colorGray),
		Box:      r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorGray).Padding(1, 3),
		Problem:  r.NewStyle().Bold(true).Foreground(colorWhite).MarginTop(1).MarginBottom(1),
		Label:    r.NewStyle().Foreground(colorGray),
		Value:    r.NewStyle().Bold(true),
		Selected: r.NewStyle().Bold(true).Foreground(colorBlue),
		Muted:    r.NewStyle().Foreground(colorGray),
		Timer:    r.NewStyle().Bold(true).Foreground(colorOrange),
		Winner:   r.NewStyle().Bold(true).Foreground(colorGreen),
		players: map[quiz.Player]lipgloss.Style{
			quiz.Player1: r.NewStyle().Bold(true).Foreground(colorBlue),
			quiz.Player2: r.NewStyle().Bold(true).Foreground(colorPink),
		},
		feedback: map[quiz.Sentiment]lipgloss.Style{
			quiz.SentimentNeutral:  r.NewStyle().Foreground(colorOrange),
			quiz.SentimentPositive: r.NewStyle().Foreground(colorGreen),
			quiz.SentimentNegative: r.NewStyle().Foreground(colorRed),
		},
	}
}

// Player returns the accent style for a player.
func (s Styles) Player(p quiz.Player) lipgloss.Style {
	if style, ok := s.players[p]; ok {
		return style
	}
	return s.Value
}

// Feedback returns the style for a feedback sentiment.
func (s Styles) Feedback(sentiment quiz.Sentiment) lipgloss.Style {
	if style, ok := s.feedback[sentiment]; ok {
		return style
	}
	return s.Muted
}
