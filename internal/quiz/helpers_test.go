package quiz

import (
	"fmt"
	"io"
	"strings"
	"time"
)

type testSubject struct {
	key    string
	name   string
	prompt string
}

func (s testSubject) Key() string             { return s.key }
func (s testSubject) DisplayName() string     { return s.name }
func (s testSubject) PromptAttribute() string { return s.prompt }

// testPool returns n valid subjects with distinct keys, names and prompts.
func testPool(n int) []Subject {
	pool := make([]Subject, n)
	for i := range pool {
		pool[i] = testSubject{
			key:    fmt.Sprintf("%03d", i+1),
			name:   fmt.Sprintf("Country %03d", i+1),
			prompt: fmt.Sprintf("Capital %03d", i+1),
		}
	}
	return pool
}

var testTemplate = TemplateFunc(func(prompt string) string {
	return "which country's capital is " + prompt + " ?"
})

type shownQuestion struct {
	round   int
	total   int
	text    string
	options []string
}

// scriptedPresenter records everything the engine shows and answers each
// round with the result of answer.
type scriptedPresenter struct {
	answer    func(q shownQuestion) (string, error)
	questions []shownQuestion
	verdicts  []Verdict
	tallies   []Tally
}

func (p *scriptedPresenter) ShowQuestion(round, total int, text string) {
	p.questions = append(p.questions, shownQuestion{round: round, total: total, text: text})
}

func (p *scriptedPresenter) ShowOptions(names []string) {
	last := &p.questions[len(p.questions)-1]
	last.options = append([]string(nil), names...)
}

func (p *scriptedPresenter) ReadAnswer() (string, error) {
	if p.answer == nil {
		return "", io.EOF
	}
	return p.answer(p.questions[len(p.questions)-1])
}

func (p *scriptedPresenter) ShowVerdict(v Verdict) { p.verdicts = append(p.verdicts, v) }
func (p *scriptedPresenter) ShowTally(t Tally)     { p.tallies = append(p.tallies, t) }

// answerCorrectly picks the option whose name matches the prompt in the
// question text, relying on the testPool naming scheme.
func answerCorrectly(q shownQuestion) (string, error) {
	num := strings.TrimSuffix(strings.TrimPrefix(q.text, "which country's capital is Capital "), " ?")
	for i, name := range q.options {
		if name == "Country "+num {
			return fmt.Sprint(i + 1), nil
		}
	}
	return "", fmt.Errorf("no option for %q", q.text)
}

// steppingClock returns a clock advancing by step on every call.
func steppingClock(step time.Duration) func() time.Time {
	t := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}
