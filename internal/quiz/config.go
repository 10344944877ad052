package quiz

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Difficulty is a named operator set.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyExpert Difficulty = "expert"
)

// Difficulties returns every known difficulty in stage order.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyExpert}
}

// Operators returns the operators allowed at this difficulty.
// Unknown values fall back to the easy set.
func (d Difficulty) Operators() []Operator {
	switch d {
	case DifficultyMedium:
		return []Operator{OpAdd, OpSubtract}
	case DifficultyHard:
		return []Operator{OpAdd, OpSubtract, OpMultiply}
	case DifficultyExpert:
		return []Operator{OpAdd, OpSubtract, OpMultiply, OpDivide}
	default:
		return []Operator{OpAdd}
	}
}

// Stage returns the 1-4 indicator shown to players.
func (d Difficulty) Stage() int {
	switch d {
	case DifficultyMedium:
		return 2
	case DifficultyHard:
		return 3
	case DifficultyExpert:
		return 4
	default:
		return 1
	}
}

// Mode is the number of players taking turns at the same terminal.
type Mode int

const (
	ModeSingle    Mode = 1
	ModeTwoPlayer Mode = 2
)

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "Single Player"
	case ModeTwoPlayer:
		return "Two Players"
	default:
		return "Unknown"
	}
}

// TimerPolicy configures the countdown. Zero seconds means no timer.
type TimerPolicy struct {
	Seconds int
}

// NoTimer disables the countdown.
var NoTimer = TimerPolicy{}

// FixedTimer returns a countdown of n seconds.
func FixedTimer(n int) TimerPolicy {
	return TimerPolicy{Seconds: n}
}

// Enabled reports whether a countdown is configured.
func (t TimerPolicy) Enabled() bool {
	return t.Seconds > 0
}

// String returns the policy in its configuration form: "none" or the seconds.
func (t TimerPolicy) String() string {
	if !t.Enabled() {
		return "none"
	}
	return strconv.Itoa(t.Seconds)
}

// GameConfig is fixed for the lifetime of one game.
type GameConfig struct {
	Mode       Mode
	Difficulty Difficulty
	Timer      TimerPolicy
}

// DefaultGameConfig returns a single-player easy game without a timer.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Mode:       ModeSingle,
		Difficulty: DifficultyEasy,
		Timer:      NoTimer,
	}
}

// Errors returned by the configuration parsers.
var (
	ErrInvalidMode       = errors.New("invalid mode")
	ErrInvalidDifficulty = errors.New("invalid difficulty")
	ErrInvalidTimer      = errors.New("invalid timer")
)

// ParseMode accepts "1" or "2" plus the aliases "single", "two" and "two-player".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "single":
		return ModeSingle, nil
	case "2", "two", "two-player":
		return ModeTwoPlayer, nil
	default:
		return 0, fmt.Errorf("quiz: %w %q (want 1 or 2)", ErrInvalidMode, s)
	}
}

// ParseDifficulty accepts easy, medium, hard or expert.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Difficulties() {
		if d == known {
			return d, nil
		}
	}
	return "", fmt.Errorf("quiz: %w %q (want easy, medium, hard or expert)", ErrInvalidDifficulty, s)
}

// ParseTimer accepts "none" or a positive number of seconds.
func ParseTimer(s string) (TimerPolicy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "none" {
		return NoTimer, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return NoTimer, fmt.Errorf("quiz: %w %q (want none or seconds > 0)", ErrInvalidTimer, s)
	}
	return FixedTimer(n), nil
}

// ParseConfig validates the three raw configuration values together.
func ParseConfig(mode, difficulty, timer string) (GameConfig, error) {
	m, err := ParseMode(mode)
	if err != nil {
		return GameConfig{}, err
	}
	d, err := ParseDifficulty(difficulty)
	if err != nil {
		return GameConfig{}, err
	}
	t, err := ParseTimer(timer)
	if err != nil {
		return GameConfig{}, err
	}
	return GameConfig{Mode: m, Difficulty: d, Timer: t}, nil
}

// FormatClock renders seconds as M:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
