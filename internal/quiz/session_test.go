package quiz

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"testing"
)

func newTestSession(seed int64) (*Session, *Recorder) {
	rec := &Recorder{}
	return NewSession(NewGenerator(seed), rec), rec
}

func countEvents[T Event](evts []Event) int {
	n := 0
	for _, e := range evts {
		if _, ok := e.(T); ok {
			n++
		}
	}
	return n
}

func lastEvent[T Event](t *testing.T, evts []Event) T {
	t.Helper()
	for i := len(evts) - 1; i >= 0; i-- {
		if e, ok := evts[i].(T); ok {
			return e
		}
	}
	var zero T
	t.Fatalf("no %T event in %v", zero, evts)
	return zero
}

func TestNewSessionIsInSetup(t *testing.T) {
	s := NewSession(nil, nil)
	if s.Phase() != PhaseSetup {
		t.Errorf("Phase() = %s, expected setup", s.Phase())
	}

	// Operations other than Start do nothing before a game
	if v := s.SubmitAnswer("3"); v != VerdictIgnored {
		t.Errorf("SubmitAnswer before Start = %v, expected ignored", v)
	}
	s.Tick()
	s.End()
	s.Restart()
	if s.Phase() != PhaseSetup {
		t.Errorf("Phase() = %s after no-op calls, expected setup", s.Phase())
	}
}

func TestSingleEasyScenario(t *testing.T) {
	s, rec := newTestSession(1)
	s.Start(GameConfig{Mode: ModeSingle, Difficulty: DifficultyEasy, Timer: NoTimer})

	evts := rec.Drain()
	pc := lastEvent[ProblemChanged](t, evts)
	if countEvents[TurnChanged](evts) != 0 {
		t.Error("single mode should not emit TurnChanged")
	}
	if countEvents[TimerTick](evts) != 0 {
		t.Error("no TimerTick expected without a timer")
	}
	if pc.Stage != 1 {
		t.Errorf("stage = %d, expected 1", pc.Stage)
	}

	snap := s.Snapshot()
	p := snap.Problem
	if p.Operator != OpAdd || p.FirstOperand < 1 || p.FirstOperand > 15 || p.SecondOperand < 1 || p.SecondOperand > 15 {
		t.Fatalf("unexpected first problem %+v", p)
	}
	if !strings.Contains(pc.DisplayText, " + ") || !strings.HasSuffix(pc.DisplayText, " = ?") {
		t.Errorf("DisplayText = %q, expected \"a + b = ?\"", pc.DisplayText)
	}

	// Correct answer
	if v := s.SubmitAnswer(strconv.Itoa(p.Answer)); v != VerdictCorrect {
		t.Fatalf("verdict = %v, expected correct", v)
	}
	evts = rec.Drain()
	sc := lastEvent[ScoreChanged](t, evts)
	if sc.Score1 != 1 || sc.Score2 != 0 {
		t.Errorf("ScoreChanged = %+v, expected {1 0}", sc)
	}
	if fb := lastEvent[Feedback](t, evts); fb.Sentiment != SentimentPositive {
		t.Errorf("feedback sentiment = %s, expected positive", fb.Sentiment)
	}
	if countEvents[ProblemChanged](evts) != 1 {
		t.Error("expected a new problem after a valid answer")
	}

	// Garbage input
	before := s.Snapshot()
	if v := s.SubmitAnswer("xyz"); v != VerdictInvalid {
		t.Fatalf("verdict = %v, expected invalid", v)
	}
	evts = rec.Drain()
	if len(evts) != 1 {
		t.Fatalf("expected only a Feedback event, got %v", evts)
	}
	fb := lastEvent[Feedback](t, evts)
	if fb.Sentiment != SentimentNeutral || fb.Message != "Please enter a number!" {
		t.Errorf("Feedback = %+v, expected neutral invalid-input message", fb)
	}
	if after := s.Snapshot(); after != before {
		t.Errorf("state changed on invalid input:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestInvalidInputsLeaveStateUnchanged(t *testing.T) {
	s, _ := newTestSession(5)
	s.Start(GameConfig{Mode: ModeTwoPlayer, Difficulty: DifficultyExpert, Timer: FixedTimer(10)})

	inputs := []string{"", "   ", "abc", "--3", "+", "-", "x12", ". 5"}
	for _, in := range inputs {
		before := s.Snapshot()
		if v := s.SubmitAnswer(in); v != VerdictInvalid {
			t.Errorf("SubmitAnswer(%q) = %v, expected invalid", in, v)
		}
		if after := s.Snapshot(); after != before {
			t.Errorf("SubmitAnswer(%q) changed state", in)
		}
	}
}

func TestLeadingIntegerIsJudged(t *testing.T) {
	tests := []struct {
		name     string
		input    func(answer int) string
		expected Verdict
	}{
		{"trailing letters", func(a int) string { return strconv.Itoa(a) + "abc" }, VerdictCorrect},
		{"decimal zero", func(a int) string { return strconv.Itoa(a) + ".0" }, VerdictCorrect},
		{"plus sign", func(a int) string { return "+" + strconv.Itoa(a) }, VerdictCorrect},
		{"fraction truncated", func(int) string { return "1.5" }, VerdictWrong},
		{"overflow", func(int) string { return "99999999999999999999999" }, VerdictWrong},
		{"negative overflow", func(int) string { return "-99999999999999999999999" }, VerdictWrong},
	}

	s, _ := newTestSession(21)
	s.Start(GameConfig{Mode: ModeTwoPlayer, Difficulty: DifficultyEasy})

	for _, tt := range tests {
		before := s.Snapshot()
		if v := s.SubmitAnswer(tt.input(before.Problem.Answer)); v != tt.expected {
			t.Errorf("%s: verdict = %v, expected %v", tt.name, v, tt.expected)
		}
		if s.Snapshot().CurrentPlayer == before.CurrentPlayer {
			t.Errorf("%s: turn did not pass", tt.name)
		}
	}
}

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		input    string
		ok       bool
		expected parsedAnswer
	}{
		{"12", true, parsedAnswer{value: 12}},
		{"  \t7\n", true, parsedAnswer{value: 7}},
		{"-4", true, parsedAnswer{value: -4}},
		{"12abc", true, parsedAnswer{value: 12}},
		{"10.0", true, parsedAnswer{value: 10}},
		{"007", true, parsedAnswer{value: 7}},
		{"99999999999999999999", true, parsedAnswer{overflow: true}},
		{"", false, parsedAnswer{}},
		{"abc", false, parsedAnswer{}},
		{"--3", false, parsedAnswer{}},
		{"- 3", false, parsedAnswer{}},
	}

	for _, tt := range tests {
		got, ok := parseAnswer(tt.input)
		if ok != tt.ok || got != tt.expected {
			t.Errorf("parseAnswer(%q) = %+v, %v; expected %+v, %v", tt.input, got, ok, tt.expected, tt.ok)
		}
	}

	if (parsedAnswer{overflow: true}).matches(0) {
		t.Error("an overflowing answer should match nothing")
	}
}

func TestEventOrder(t *testing.T) {
	kinds := func(evts []Event) []string {
		out := make([]string, 0, len(evts))
		for _, e := range evts {
			out = append(out, fmt.Sprintf("%T", e))
		}
		return out
	}

	tests := []struct {
		name     string
		cfg      GameConfig
		expected []string
	}{
		{
			"single untimed",
			GameConfig{Mode: ModeSingle, Difficulty: DifficultyEasy},
			[]string{"quiz.ScoreChanged", "quiz.ProblemChanged"},
		},
		{
			"two player timed",
			GameConfig{Mode: ModeTwoPlayer, Difficulty: DifficultyEasy, Timer: FixedTimer(30)},
			[]string{"quiz.ScoreChanged", "quiz.TurnChanged", "quiz.ProblemChanged", "quiz.TimerTick"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, rec := newTestSession(4)
			s.Start(tt.cfg)
			if got := kinds(rec.Drain()); !slices.Equal(got, tt.expected) {
				t.Errorf("Start events = %v, expected %v", got, tt.expected)
			}
		})
	}

	s, rec := newTestSession(4)
	s.Start(GameConfig{Mode: ModeTwoPlayer, Difficulty: DifficultyEasy})
	rec.Drain()
	s.SubmitAnswer("0")
	expected := []string{"quiz.Feedback", "quiz.ScoreChanged", "quiz.TurnChanged", "quiz.ProblemChanged"}
	if got := kinds(rec.Drain()); !slices.Equal(got, expected) {
		t.Errorf("SubmitAnswer events = %v, expected %v", got, expected)
	}
}

func TestAnswerTrimsWhitespace(t *testing.T) {
	s, _ := newTestSession(8)
	s.Start(DefaultGameConfig())

	answer := s.Snapshot().Problem.Answer
	if v := s.SubmitAnswer("  " + strconv.Itoa(answer) + "\n"); v != VerdictCorrect {
		t.Errorf("verdict = %v, expected correct", v)
	}
}

func TestScoreNeverNegative(t *testing.T) {
	s, _ := newTestSession(11)
	s.Start(GameConfig{Mode: ModeTwoPlayer, Difficulty: DifficultyHard})

	for i := 0; i < 50; i++ {
		wrong := s.Snapshot().Problem.Answer + 1
		if v := s.SubmitAnswer(strconv.Itoa(wrong)); v != VerdictWrong {
			t.Fatalf("verdict = %v, expected wrong", v)
		}
		snap := s.Snapshot()
		if snap.Score1 < 0 || snap.Score2 < 0 {
			t.Fatalf("negative score after %d wrong answers: %+v", i+1, snap)
		}
	}

	snap := s.Snapshot()
	if snap.Score1 != 0 || snap.Score2 != 0 {
		t.Errorf("scores = (%d, %d), expected floored at 0", snap.Score1, snap.Score2)
	}
}

func TestWrongAnswerDecrements(t *testing.T) {
	s, rec := newTestSession(21)
	s.Start(DefaultGameConfig())

	for i := 0; i < 3; i++ {
		s.SubmitAnswer(strconv.Itoa(s.Snapshot().Problem.Answer))
	}
	correct := s.Snapshot().Problem.Answer
	rec.Drain()

	s.SubmitAnswer(strconv.Itoa(correct + 5))
	evts := rec.Drain()
	if got := s.Snapshot().Score1; got != 2 {
		t.Errorf("Score1 = %d, expected 2", got)
	}
	fb := lastEvent[Feedback](t, evts)
	if fb.Sentiment != SentimentNegative || fb.Message != "Wrong! The answer was "+strconv.Itoa(correct) {
		t.Errorf("Feedback = %+v", fb)
	}
}

func TestTurnAlternation(t *testing.T) {
	t.Run("two players", func(t *testing.T) {
		s, rec := newTestSession(13)
		s.Start(GameConfig{Mode: ModeTwoPlayer, Difficulty: DifficultyMedium})

		if p := s.Snapshot().CurrentPlayer; p != Player1 {
			t.Fatalf("first player = %d, expected 1", p)
		}
		expected := Player2
		for i := 0; i < 10; i++ {
			answer := s.Snapshot().Problem.Answer
			if i%2 == 0 {
				answer++
			}
			s.SubmitAnswer(strconv.Itoa(answer))
			// Invalid input never moves the turn
			s.SubmitAnswer("nope")

			if p := s.Snapshot().CurrentPlayer; p != expected {
				t.Fatalf("after %d answers player = %d, expected %d", i+1, p, expected)
			}
			if tc := lastEvent[TurnChanged](t, rec.Drain()); tc.Player != expected {
				t.Fatalf("TurnChanged = %d, expected %d", tc.Player, expected)
			}
			if expected == Player1 {
				expected = Player2
			} else {
				expected = Player1
			}
		}
	})

	t.Run("single player", func(t *testing.T) {
		s, rec := newTestSession(13)
		s.Start(GameConfig{Mode: ModeSingle, Difficulty: DifficultyMedium})

		for i := 0; i < 10; i++ {
			s.SubmitAnswer(strconv.Itoa(s.Snapshot().Problem.Answer))
			if p := s.Snapshot().CurrentPlayer; p != Player1 {
				t.Fatalf("single mode player = %d, expected 1", p)
			}
		}
		if n := countEvents[TurnChanged](rec.Drain()); n != 0 {
			t.Errorf("single mode emitted %d TurnChanged events", n)
		}
	})
}

func TestScoresGoToCurrentPlayer(t *testing.T) {
	s, _ := newTestSession(17)
	s.Start(GameConfig{Mode: ModeTwoPlayer, Difficulty: DifficultyEasy})

	s.SubmitAnswer(strconv.Itoa(s.Snapshot().Problem.Answer)) // player 1 correct
	s.SubmitAnswer(strconv.Itoa(s.Snapshot().Problem.Answer)) // player 2 correct
	s.SubmitAnswer(strconv.Itoa(s.Snapshot().Problem.Answer)) // player 1 correct

	snap := s.Snapshot()
	if snap.Score1 != 2 || snap.Score2 != 1 {
		t.Errorf("scores = (%d, %d), expected (2, 1)", snap.Score1, snap.Score2)
	}
}

func TestTwoPlayerTimedScenario(t *testing.T) {
	s, rec := newTestSession(30)
	s.Start(GameConfig{Mode: ModeTwoPlayer, Difficulty: DifficultyMedium, Timer: FixedTimer(30)})

	snap := s.Snapshot()
	if snap.CurrentPlayer != Player1 || snap.Remaining != 30 || !snap.TimerArmed {
		t.Fatalf("unexpected start state %+v", snap)
	}
	if tick := lastEvent[TimerTick](t, rec.Drain()); tick.Formatted != "0:30" {
		t.Errorf("initial TimerTick = %q, expected 0:30", tick.Formatted)
	}

	s.SubmitAnswer(strconv.Itoa(snap.Problem.Answer + 1))
	snap = s.Snapshot()
	if snap.Score1 != 0 || snap.CurrentPlayer != Player2 {
		t.Fatalf("after wrong answer: score1=%d player=%d, expected 0 and 2", snap.Score1, snap.CurrentPlayer)
	}

	// Player 2 scores once so there is a winner
	s.SubmitAnswer(strconv.Itoa(snap.Problem.Answer))
	rec.Drain()

	for i := 0; i < 30; i++ {
		s.Tick()
	}
	// Late ticks after the end must do nothing
	for i := 0; i < 5; i++ {
		s.Tick()
	}

	evts := rec.Drain()
	if n := countEvents[GameEnded](evts); n != 1 {
		t.Fatalf("GameEnded emitted %d times, expected 1", n)
	}
	if n := countEvents[TimerTick](evts); n != 30 {
		t.Errorf("TimerTick emitted %d times, expected 30", n)
	}
	ended := lastEvent[GameEnded](t, evts)
	if ended.Outcome.Winner != Player2 {
		t.Errorf("winner = %d, expected 2", ended.Outcome.Winner)
	}
	if ended.Message != "Player 2 Wins! (1 - 0)" {
		t.Errorf("message = %q", ended.Message)
	}
	if s.Phase() != PhaseEnded || s.Snapshot().TimerArmed {
		t.Errorf("expected ended phase with timer disarmed, got %+v", s.Snapshot())
	}
	if tick := lastEvent[TimerTick](t, evts); tick.Formatted != "0:00" {
		t.Errorf("final TimerTick = %q, expected 0:00", tick.Formatted)
	}
}

func TestTickWithoutTimerIsIgnored(t *testing.T) {
	s, rec := newTestSession(2)
	s.Start(DefaultGameConfig())
	rec.Drain()

	for i := 0; i < 100; i++ {
		s.Tick()
	}
	if evts := rec.Drain(); len(evts) != 0 {
		t.Errorf("ticks without a timer emitted %d events", len(evts))
	}
	if s.Phase() != PhaseActive {
		t.Errorf("Phase() = %s, expected active", s.Phase())
	}
}

func TestExplicitEnd(t *testing.T) {
	s, rec := newTestSession(4)
	s.Start(GameConfig{Mode: ModeSingle, Difficulty: DifficultyHard, Timer: FixedTimer(60)})
	s.SubmitAnswer(strconv.Itoa(s.Snapshot().Problem.Answer))
	rec.Drain()

	s.End()
	s.End()
	s.Tick()

	evts := rec.Drain()
	if n := countEvents[GameEnded](evts); n != 1 {
		t.Fatalf("GameEnded emitted %d times, expected 1", n)
	}
	if n := countEvents[TimerTick](evts); n != 0 {
		t.Errorf("ticks after End emitted %d TimerTick events", n)
	}
	if msg := lastEvent[GameEnded](t, evts).Message; msg != "Game Over! Your score: 1" {
		t.Errorf("message = %q", msg)
	}
	if v := s.SubmitAnswer("1"); v != VerdictIgnored {
		t.Errorf("SubmitAnswer after End = %v, expected ignored", v)
	}
}

func TestOutcomeMessages(t *testing.T) {
	tests := []struct {
		name     string
		outcome  Outcome
		expected string
	}{
		{"single", Outcome{Mode: ModeSingle, Score1: 7}, "Game Over! Your score: 7"},
		{"player 1", Outcome{Mode: ModeTwoPlayer, Score1: 5, Score2: 3, Winner: Player1}, "Player 1 Wins! (5 - 3)"},
		{"player 2", Outcome{Mode: ModeTwoPlayer, Score1: 2, Score2: 4, Winner: Player2}, "Player 2 Wins! (4 - 2)"},
		{"tie", Outcome{Mode: ModeTwoPlayer, Score1: 3, Score2: 3}, "It's a Tie! (3 - 3)"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.outcome.Message(); got != tc.expected {
				t.Errorf("Message() = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestTieOutcome(t *testing.T) {
	s, rec := newTestSession(6)
	s.Start(GameConfig{Mode: ModeTwoPlayer, Difficulty: DifficultyEasy})
	s.End()

	ended := lastEvent[GameEnded](t, rec.Drain())
	if ended.Outcome.Winner != 0 || ended.Message != "It's a Tie! (0 - 0)" {
		t.Errorf("GameEnded = %+v, expected tie", ended)
	}
}

func TestLifecycle(t *testing.T) {
	s, _ := newTestSession(9)

	s.Start(GameConfig{Mode: ModeTwoPlayer, Difficulty: DifficultyExpert, Timer: FixedTimer(5)})
	s.SubmitAnswer(strconv.Itoa(s.Snapshot().Problem.Answer))
	s.SubmitAnswer("0")

	// Start while active is a no-op
	before := s.Snapshot()
	s.Start(DefaultGameConfig())
	if s.Snapshot() != before {
		t.Error("Start during an active game changed state")
	}

	// Restart only works from ended
	s.Restart()
	if s.Phase() != PhaseActive {
		t.Fatalf("Restart while active moved to %s", s.Phase())
	}

	s.End()
	s.Restart()
	if s.Phase() != PhaseSetup {
		t.Fatalf("Phase() = %s after Restart, expected setup", s.Phase())
	}
	s.Tick()
	if s.Phase() != PhaseSetup {
		t.Error("tick after restart changed phase")
	}

	// A fresh start resets everything
	s.Start(GameConfig{Mode: ModeSingle, Difficulty: DifficultyHard, Timer: NoTimer})
	snap := s.Snapshot()
	if snap.Score1 != 0 || snap.Score2 != 0 || snap.CurrentPlayer != Player1 || snap.Stage != 3 || snap.TimerArmed {
		t.Errorf("unexpected state after restart: %+v", snap)
	}
}

func TestStartFromEnded(t *testing.T) {
	s, _ := newTestSession(10)
	s.Start(DefaultGameConfig())
	s.SubmitAnswer(strconv.Itoa(s.Snapshot().Problem.Answer))
	s.End()

	s.Start(GameConfig{Mode: ModeSingle, Difficulty: DifficultyMedium})
	if s.Phase() != PhaseActive {
		t.Fatalf("Phase() = %s, expected active", s.Phase())
	}
	if s.Snapshot().Score1 != 0 {
		t.Errorf("Score1 = %d, expected reset to 0", s.Snapshot().Score1)
	}
}
