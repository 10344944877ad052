// Package tui provides the Bubble Tea front end for the quiz.
// It maps keys to session operations, drives the countdown and renders
// session events.
package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/mathduel/internal/quiz"
)

// Options configure a Model.
type Options struct {
	// Defaults are preselected on the setup screen.
	Defaults quiz.GameConfig

	// AutoStart skips the setup screen for the first game.
	AutoStart bool

	// Seed for the problem generator. 0 means seed from the clock.
	Seed int64

	// Logger receives session events. Nil discards them.
	Logger *log.Logger

	// Renderer builds styles. Nil uses the default stdout renderer.
	Renderer *lipgloss.Renderer

	// Initial screen size. Updated by WindowSizeMsg.
	Width  int
	Height int
}

// Model is the Bubble Tea model for one quiz session.
type Model struct {
	session *quiz.Session
	events  *quiz.Recorder
	logger  *log.Logger

	setup     setupForm
	answer    textinput.Model
	countdown timer.Model
	counting  bool // countdown ticks are forwarded to the session

	keys   KeyMap
	help   help.Model
	styles Styles

	// Last values received from the session
	feedback    quiz.Feedback
	hasFeedback bool
	ended       quiz.GameEnded

	width    int
	height   int
	quitting bool
}

// NewModel creates a model in the setup phase, or already playing when
// opts.AutoStart is set.
func NewModel(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	events := &quiz.Recorder{}
	session := quiz.NewSession(
		quiz.NewGenerator(opts.Seed),
		quiz.Fanout{events, logNotifier{logger: logger}},
	)

	answer := textinput.New()
	answer.Placeholder = "your answer"
	answer.CharLimit = 12
	answer.Width = 16
	answer.Prompt = "> "

	h := help.New()
	h.Width = opts.Width

	m := Model{
		session: session,
		events:  events,
		logger:  logger,
		setup:   newSetupForm(opts.Defaults),
		answer:  answer,
		keys:    DefaultKeyMap(),
		help:    h,
		styles:  NewStyles(opts.Renderer),
		width:   opts.Width,
		height:  opts.Height,
	}

	if opts.AutoStart {
		// Commands are returned from Init
		m.startGame()
	}
	return m
}

// Init starts the answer cursor blinking and, if a game is already running,
// its countdown.
func (m Model) Init() tea.Cmd {
	if m.session.Phase() != quiz.PhaseActive {
		return nil
	}
	cmds := []tea.Cmd{textinput.Blink}
	if m.counting {
		cmds = append(cmds, m.countdown.Init())
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case timer.TickMsg:
		return m.handleTimerTick(msg)

	case timer.StartStopMsg:
		if !m.counting {
			return m, nil
		}
		var cmd tea.Cmd
		m.countdown, cmd = m.countdown.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and other input messages
	if m.session.Phase() == quiz.PhaseActive {
		var cmd tea.Cmd
		m.answer, cmd = m.answer.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input for the current phase.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.quitting = true
		m.stopCountdown()
		return m, tea.Quit
	}

	switch m.session.Phase() {
	case quiz.PhaseSetup:
		return m.handleSetupKey(msg)
	case quiz.PhaseActive:
		return m.handlePlayKey(msg)
	default:
		return m.handleEndedKey(msg)
	}
}

// handleSetupKey navigates the option form.
func (m Model) handleSetupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.setup.Up()
	case key.Matches(msg, m.keys.Down):
		m.setup.Down()
	case key.Matches(msg, m.keys.Left):
		m.setup.Cycle(-1)
	case key.Matches(msg, m.keys.Right):
		m.setup.Cycle(1)
	case key.Matches(msg, m.keys.Start):
		cmd := m.startGame()
		return m, cmd
	}
	return m, nil
}

// handlePlayKey submits answers and forwards typing to the answer field.
func (m Model) handlePlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		verdict := m.session.SubmitAnswer(m.answer.Value())
		if verdict != quiz.VerdictInvalid {
			m.answer.SetValue("")
		}
		m.drain()
		return m, nil

	case key.Matches(msg, m.keys.EndGame):
		m.session.End()
		m.drain()
		return m, nil
	}

	var cmd tea.Cmd
	m.answer, cmd = m.answer.Update(msg)
	return m, cmd
}

// handleEndedKey handles the game-over screen.
func (m Model) handleEndedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Restart):
		m.session.Restart()
		m.drain()
		m.logger.Debug("back to setup")
	}
	return m, nil
}

// handleTimerTick forwards one elapsed second to the session.
// Ticks from a countdown that was stopped or replaced are dropped here, so
// nothing reschedules them.
func (m Model) handleTimerTick(msg timer.TickMsg) (tea.Model, tea.Cmd) {
	if !m.counting || msg.ID != m.countdown.ID() {
		return m, nil
	}

	if m.countdown.Running() {
		m.session.Tick()
		m.drain()
	}
	if !m.counting {
		return m, nil
	}

	var cmd tea.Cmd
	m.countdown, cmd = m.countdown.Update(msg)
	return m, cmd
}

// startGame starts a session with the form's config and arms the countdown.
func (m *Model) startGame() tea.Cmd {
	cfg := m.setup.Config()

	m.hasFeedback = false
	m.ended = quiz.GameEnded{}
	m.answer.SetValue("")
	m.answer.Focus()

	m.session.Start(cfg)
	m.logger.Info("game started",
		"mode", int(cfg.Mode),
		"difficulty", string(cfg.Difficulty),
		"timer", cfg.Timer.String(),
	)

	cmds := []tea.Cmd{textinput.Blink}
	m.counting = cfg.Timer.Enabled()
	if m.counting {
		// A new timer gets a fresh ID, so ticks from an older game are ignored
		m.countdown = timer.NewWithInterval(time.Duration(cfg.Timer.Seconds)*time.Second, time.Second)
		cmds = append(cmds, m.countdown.Init())
	}

	m.drain()
	return tea.Batch(cmds...)
}

// stopCountdown cancels the countdown. Pending ticks are dropped on arrival.
func (m *Model) stopCountdown() {
	m.counting = false
}

// drain applies buffered session events to the view state.
func (m *Model) drain() {
	for _, evt := range m.events.Drain() {
		switch e := evt.(type) {
		case quiz.Feedback:
			m.feedback = e
			m.hasFeedback = true
		case quiz.GameEnded:
			m.ended = e
			m.stopCountdown()
			m.answer.Blur()
		}
	}
}

// Session returns the underlying quiz session.
func (m Model) Session() *quiz.Session {
	return m.session
}

// IsQuitting returns true if the user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options, programOpts ...tea.ProgramOption) error {
	model := NewModel(opts)

	programOpts = append([]tea.ProgramOption{tea.WithAltScreen()}, programOpts...)
	p := tea.NewProgram(model, programOpts...)

	_, err := p.Run()
	return err
}
