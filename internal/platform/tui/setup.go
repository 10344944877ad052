package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/mathduel/internal/quiz"
)

// Setup rows.
const (
	rowMode = iota
	rowDifficulty
	rowTimer
	rowCount
)

// timerChoices are the countdowns offered on the setup screen.
var timerChoices = []quiz.TimerPolicy{
	quiz.NoTimer,
	quiz.FixedTimer(30),
	quiz.FixedTimer(60),
	quiz.FixedTimer(120),
}

// setupForm is the option picker shown before every game.
type setupForm struct {
	row    int
	modes  []quiz.Mode
	levels []quiz.Difficulty
	timers []quiz.TimerPolicy

	mode  int
	level int
	timer int
}

// newSetupForm creates a form with the given config preselected.
// A timer not in the standard choices is added to the list.
func newSetupForm(initial quiz.GameConfig) setupForm {
	f := setupForm{
		modes:  []quiz.Mode{quiz.ModeSingle, quiz.ModeTwoPlayer},
		levels: quiz.Difficulties(),
		timers: append([]quiz.TimerPolicy(nil), timerChoices...),
	}

	f.mode = indexOf(f.modes, initial.Mode)
	f.level = indexOf(f.levels, initial.Difficulty)

	f.timer = indexOf(f.timers, initial.Timer)
	if f.timers[f.timer] != initial.Timer {
		f.timers = append(f.timers, initial.Timer)
		f.timer = len(f.timers) - 1
	}
	return f
}

// indexOf returns the position of v in list, or 0 when absent.
func indexOf[T comparable](list []T, v T) int {
	for i, item := range list {
		if item == v {
			return i
		}
	}
	return 0
}

// Up moves the cursor to the previous row.
func (f *setupForm) Up() {
	if f.row > 0 {
		f.row--
	}
}

// Down moves the cursor to the next row.
func (f *setupForm) Down() {
	if f.row < rowCount-1 {
		f.row++
	}
}

// Cycle changes the value on the current row, wrapping around.
func (f *setupForm) Cycle(delta int) {
	switch f.row {
	case rowMode:
		f.mode = wrap(f.mode+delta, len(f.modes))
	case rowDifficulty:
		f.level = wrap(f.level+delta, len(f.levels))
	case rowTimer:
		f.timer = wrap(f.timer+delta, len(f.timers))
	}
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

// Config returns the selected configuration.
func (f setupForm) Config() quiz.GameConfig {
	return quiz.GameConfig{
		Mode:       f.modes[f.mode],
		Difficulty: f.levels[f.level],
		Timer:      f.timers[f.timer],
	}
}

// rows returns label/value pairs for rendering.
func (f setupForm) rows() [rowCount][2]string {
	cfg := f.Config()

	timer := "No timer"
	if cfg.Timer.Enabled() {
		timer = fmt.Sprintf("%s (%ds)", quiz.FormatClock(cfg.Timer.Seconds), cfg.Timer.Seconds)
	}

	return [rowCount][2]string{
		rowMode:       {"Mode", cfg.Mode.String()},
		rowDifficulty: {"Difficulty", fmt.Sprintf("%s (stage %d)", titleCase(string(cfg.Difficulty)), cfg.Difficulty.Stage())},
		rowTimer:      {"Timer", timer},
	}
}

// titleCase upper-cases the first letter of an ASCII word.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
