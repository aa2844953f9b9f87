package quiz

import "time"

// OptionsPerQuestion is the number of options presented each round.
const OptionsPerQuestion = 4

// State is the engine state of a session.
type State int

const (
	StateRunning  State = iota // accepting more questions
	StateComplete              // target count reached
	StateAborted               // entry precondition failed, nothing asked
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateComplete:
		return "complete"
	case StateAborted:
		return "aborted"
	}
	return "unknown"
}

// Session tracks the state of one quiz invocation. It is owned by a single
// Engine.Run call and discarded afterwards.
type Session struct {
	// ID correlates log lines of one session.
	ID string

	// Target is the number of distinct questions to ask.
	Target int

	// Selections holds the subjects already used as the correct answer,
	// in the order they were asked.
	Selections []Subject

	// Asked is the number of rounds completed.
	Asked int

	// Correct is the number of rounds answered correctly.
	Correct int

	// Retries counts rejected draws across the session.
	Retries int

	// StartTime is when the first round began.
	StartTime time.Time

	// Elapsed is the wall-clock duration of the session, set on completion.
	Elapsed time.Duration

	State State
}

// asked reports whether s was already used as a correct answer.
func (s *Session) asked(subject Subject) bool {
	for _, sel := range s.Selections {
		if Same(sel, subject) {
			return true
		}
	}
	return false
}

// Tally returns the session's score.
func (s *Session) Tally() Tally {
	return Tally{Correct: s.Correct, Total: s.Target, Elapsed: s.Elapsed}
}

// Round is one question with its shuffled options.
type Round struct {
	Number  int
	Answer  Subject
	Options []Subject
}

// Names returns the display names of the options in presentation order.
func (r Round) Names() []string {
	names := make([]string, len(r.Options))
	for i, o := range r.Options {
		names[i] = o.DisplayName()
	}
	return names
}
