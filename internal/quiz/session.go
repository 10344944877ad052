package quiz

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Player identifies whose turn it is. Single-player games always use Player1.
type Player int

const (
	Player1 Player = 1
	Player2 Player = 2
)

// Phase is the lifecycle state of a session.
type Phase int

const (
	PhaseSetup Phase = iota
	PhaseActive
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseActive:
		return "active"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Verdict is the result of a submitted answer.
type Verdict int

const (
	VerdictIgnored Verdict = iota // session not active
	VerdictInvalid                // not an integer
	VerdictCorrect
	VerdictWrong
)

// Outcome is the result of a finished game.
// Winner is 0 for a tie and for single-player games.
type Outcome struct {
	Mode   Mode
	Score1 int
	Score2 int
	Winner Player
}

// Message returns the text shown on the game-over screen.
func (o Outcome) Message() string {
	if o.Mode != ModeTwoPlayer {
		return fmt.Sprintf("Game Over! Your score: %d", o.Score1)
	}
	switch o.Winner {
	case Player1:
		return fmt.Sprintf("Player 1 Wins! (%d - %d)", o.Score1, o.Score2)
	case Player2:
		return fmt.Sprintf("Player 2 Wins! (%d - %d)", o.Score2, o.Score1)
	default:
		return fmt.Sprintf("It's a Tie! (%d - %d)", o.Score1, o.Score2)
	}
}

// Feedback messages.
const (
	msgInvalid = "Please enter a number!"
	msgCorrect = "Correct!"
	msgWrong   = "Wrong! The answer was %d"
)

// Snapshot is a read-only copy of the session state.
type Snapshot struct {
	Phase         Phase
	Config        GameConfig
	Score1        int
	Score2        int
	CurrentPlayer Player
	Stage         int
	Problem       Problem
	Remaining     int
	TimerArmed    bool
}

// Session owns the state of one game and is the only place it is mutated.
// It is not safe for concurrent use; the driver serializes calls.
type Session struct {
	gen      *Generator
	notifier Notifier

	phase      Phase
	cfg        GameConfig
	score1     int
	score2     int
	player     Player
	stage      int
	problem    Problem
	remaining  int
	timerArmed bool
	outcome    Outcome
}

// NewSession creates a session in the setup phase.
// A nil notifier discards events.
func NewSession(gen *Generator, n Notifier) *Session {
	if gen == nil {
		gen = NewGenerator(0)
	}
	if n == nil {
		n = discard
	}
	return &Session{
		gen:      gen,
		notifier: n,
		phase:    PhaseSetup,
		player:   Player1,
		stage:    DifficultyEasy.Stage(),
	}
}

// Start begins a new game. It is a no-op while a game is active.
func (s *Session) Start(cfg GameConfig) {
	if s.phase == PhaseActive {
		return
	}

	s.cfg = cfg
	s.score1 = 0
	s.score2 = 0
	s.player = Player1
	s.stage = cfg.Difficulty.Stage()
	s.outcome = Outcome{}
	s.phase = PhaseActive

	s.emit(ScoreChanged{Score1: 0, Score2: 0})
	if s.twoPlayer() {
		s.emit(TurnChanged{Player: s.player})
	}
	s.nextProblem()

	s.timerArmed = cfg.Timer.Enabled()
	if s.timerArmed {
		s.remaining = cfg.Timer.Seconds
		s.emitTick()
	} else {
		s.remaining = 0
	}
}

// SubmitAnswer judges raw against the current problem.
// Only the leading integer counts, so "12abc" and "12.5" both answer 12.
// Input that does not start with an integer leaves the game untouched.
func (s *Session) SubmitAnswer(raw string) Verdict {
	if s.phase != PhaseActive {
		return VerdictIgnored
	}

	answer, ok := parseAnswer(raw)
	if !ok {
		s.emit(Feedback{Message: msgInvalid, Sentiment: SentimentNeutral})
		return VerdictInvalid
	}

	verdict := VerdictWrong
	if answer.matches(s.problem.Answer) {
		verdict = VerdictCorrect
		s.addScore(1)
		s.emit(Feedback{Message: msgCorrect, Sentiment: SentimentPositive})
	} else {
		s.addScore(-1)
		s.emit(Feedback{Message: fmt.Sprintf(msgWrong, s.problem.Answer), Sentiment: SentimentNegative})
	}
	s.emit(ScoreChanged{Score1: s.score1, Score2: s.score2})

	if s.twoPlayer() {
		if s.player == Player1 {
			s.player = Player2
		} else {
			s.player = Player1
		}
		s.emit(TurnChanged{Player: s.player})
	}

	s.nextProblem()
	return verdict
}

// Tick advances the countdown by one second and ends the game at zero.
// Ticks are ignored unless the game is active with a timer armed.
func (s *Session) Tick() {
	if s.phase != PhaseActive || !s.timerArmed {
		return
	}

	s.remaining--
	if s.remaining < 0 {
		s.remaining = 0
	}
	s.emitTick()

	if s.remaining == 0 {
		s.End()
	}
}

// End stops the game and announces the outcome. Only an active game can end.
func (s *Session) End() {
	if s.phase != PhaseActive {
		return
	}

	s.phase = PhaseEnded
	s.timerArmed = false

	s.outcome = Outcome{Mode: s.cfg.Mode, Score1: s.score1, Score2: s.score2}
	if s.twoPlayer() {
		switch {
		case s.score1 > s.score2:
			s.outcome.Winner = Player1
		case s.score2 > s.score1:
			s.outcome.Winner = Player2
		}
	}

	s.emit(GameEnded{Message: s.outcome.Message(), Outcome: s.outcome})
}

// Restart returns an ended session to setup. A new Start must follow.
func (s *Session) Restart() {
	if s.phase != PhaseEnded {
		return
	}
	s.phase = PhaseSetup
	s.timerArmed = false
}

// Phase returns the lifecycle phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Outcome returns the result of the last finished game.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Phase:         s.phase,
		Config:        s.cfg,
		Score1:        s.score1,
		Score2:        s.score2,
		CurrentPlayer: s.player,
		Stage:         s.stage,
		Problem:       s.problem,
		Remaining:     s.remaining,
		TimerArmed:    s.timerArmed,
	}
}

func (s *Session) twoPlayer() bool {
	return s.cfg.Mode == ModeTwoPlayer
}

// addScore changes the current player's score, never below zero.
func (s *Session) addScore(delta int) {
	score := &s.score1
	if s.player == Player2 {
		score = &s.score2
	}
	*score = max(0, *score+delta)
}

func (s *Session) nextProblem() {
	s.problem = s.gen.Generate(s.cfg.Difficulty)
	s.emit(ProblemChanged{DisplayText: s.problem.String(), Stage: s.stage})
}

func (s *Session) emitTick() {
	s.emit(TimerTick{Remaining: s.remaining, Formatted: FormatClock(s.remaining)})
}

func (s *Session) emit(evt Event) {
	s.notifier.Notify(evt)
}

// parsedAnswer is the integer read from a submission.
// An overflowing digit run is kept as a value that matches no problem.
type parsedAnswer struct {
	value    int
	overflow bool
}

func (a parsedAnswer) matches(answer int) bool {
	return !a.overflow && a.value == answer
}

// parseAnswer reads an optionally signed run of decimal digits after any
// leading whitespace. Anything after the digits is ignored.
func parseAnswer(raw string) (parsedAnswer, bool) {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}

	end := strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' })
	if end < 0 {
		end = len(s)
	}
	if end == 0 {
		return parsedAnswer{}, false
	}

	n, err := strconv.Atoi(sign + s[:end])
	if err != nil {
		// Only a range error is possible for a signed digit run
		return parsedAnswer{overflow: true}, true
	}
	return parsedAnswer{value: n}, true
}
