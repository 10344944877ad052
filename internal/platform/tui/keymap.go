package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/mathduel/internal/quiz"
)

// KeyMap defines the key bindings for every screen.
// Bindings are grouped per phase because the answer field swallows
// printable keys while a game is active.
type KeyMap struct {
	// Setup
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Start key.Binding
	Quit  key.Binding

	// Playing
	Submit  key.Binding
	EndGame key.Binding

	// Game over
	Restart key.Binding

	// Always
	ForceQuit key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "prev option"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "tab"),
			key.WithHelp("down/j", "next option"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left/h", "change"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l", " "),
			key.WithHelp("right/l", "change"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		EndGame: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "end game"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "play again"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// bindings is a flat help.KeyMap.
type bindings []key.Binding

// ShortHelp returns key bindings for the short help view.
func (b bindings) ShortHelp() []key.Binding {
	return b
}

// FullHelp returns key bindings for the full help view.
func (b bindings) FullHelp() [][]key.Binding {
	return [][]key.Binding{b}
}

// ForPhase returns the bindings shown in the footer for a phase.
func (k KeyMap) ForPhase(p quiz.Phase) help.KeyMap {
	switch p {
	case quiz.PhaseActive:
		return bindings{k.Submit, k.EndGame, k.ForceQuit}
	case quiz.PhaseEnded:
		return bindings{k.Restart, k.Quit}
	default:
		return bindings{k.Up, k.Down, k.Left, k.Start, k.Quit}
	}
}
