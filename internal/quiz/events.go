package quiz

// Event is a state-change notification emitted by a Session.
type Event interface {
	quizEvent()
}

// ProblemChanged is sent whenever a new problem is shown.
type ProblemChanged struct {
	DisplayText string
	Stage       int
}

func (ProblemChanged) quizEvent() {}

// ScoreChanged carries both scores after any change.
type ScoreChanged struct {
	Score1 int
	Score2 int
}

func (ScoreChanged) quizEvent() {}

// TurnChanged is sent in two-player mode when the active player changes.
type TurnChanged struct {
	Player Player
}

func (TurnChanged) quizEvent() {}

// TimerTick is sent every second while a countdown is armed.
type TimerTick struct {
	Remaining int
	Formatted string // M:SS
}

func (TimerTick) quizEvent() {}

// Sentiment classifies feedback for display.
type Sentiment int

const (
	SentimentNeutral Sentiment = iota
	SentimentPositive
	SentimentNegative
)

func (s Sentiment) String() string {
	switch s {
	case SentimentPositive:
		return "positive"
	case SentimentNegative:
		return "negative"
	default:
		return "neutral"
	}
}

// Feedback is sent after every submitted answer.
type Feedback struct {
	Message   string
	Sentiment Sentiment
}

func (Feedback) quizEvent() {}

// GameEnded carries the final outcome.
type GameEnded struct {
	Message string
	Outcome Outcome
}

func (GameEnded) quizEvent() {}

// Notifier receives session events.
type Notifier interface {
	Notify(evt Event)
}

// NotifierFunc adapts a function to a Notifier.
type NotifierFunc func(evt Event)

// Notify calls f(evt).
func (f NotifierFunc) Notify(evt Event) {
	f(evt)
}

// Fanout forwards every event to each notifier in order.
type Fanout []Notifier

// Notify forwards evt. Nil entries are skipped.
func (f Fanout) Notify(evt Event) {
	for _, n := range f {
		if n != nil {
			n.Notify(evt)
		}
	}
}

// Recorder buffers events until drained.
// Renderers drain it after each call into the session.
type Recorder struct {
	events []Event
}

// Notify appends evt to the buffer.
func (r *Recorder) Notify(evt Event) {
	r.events = append(r.events, evt)
}

// Drain returns the buffered events and clears the buffer.
func (r *Recorder) Drain() []Event {
	evts := r.events
	r.events = nil
	return evts
}

var discard = NotifierFunc(func(Event) {})
