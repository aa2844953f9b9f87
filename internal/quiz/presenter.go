package quiz

import "time"

// Presenter renders rounds and reads answers. The engine never touches a
// terminal directly.
type Presenter interface {
	ShowQuestion(round, total int, text string)
	ShowOptions(names []string)

	// ReadAnswer blocks until one line of input is available. io.EOF is
	// treated by the engine as an empty line.
	ReadAnswer() (string, error)

	ShowVerdict(v Verdict)
	ShowTally(t Tally)
}

// Verdict is the outcome of a single round.
type Verdict struct {
	// Choice is the parsed option number, 0 if the input was not a number.
	Choice  int
	Correct bool
	Answer  string // display name of the correct subject
}

// Tally is the final score of a completed session.
type Tally struct {
	Correct int
	Total   int
	Elapsed time.Duration
}

// Seconds returns the elapsed time in whole seconds.
func (t Tally) Seconds() int64 {
	return int64(t.Elapsed / time.Second)
}
