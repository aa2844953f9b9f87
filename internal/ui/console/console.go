// Package console implements the line-oriented quiz presenter used on
// plain terminals and pipes.
package console

import (
	"bufio"
	"fmt"
	"io"

	"charm.land/lipgloss/v2"

	"github.com/jostho/quest/internal/quiz"
	"github.com/jostho/quest/internal/ui/theme"
)

// Console prints rounds to out and reads answers line by line from in.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	color bool
}

var _ quiz.Presenter = (*Console)(nil)

// New creates a Console. When color is false no escape sequences are
// written.
func New(in io.Reader, out io.Writer, color bool) *Console {
	return &Console{
		in:    bufio.NewReader(in),
		out:   out,
		color: color,
	}
}

// ShowHeader announces the session before the first round.
func (c *Console) ShowHeader(source string, total int) {
	fmt.Fprintln(c.out, c.render(theme.Banner, fmt.Sprintf("Asking quiz using %s (total: %d)", source, total)))
}

func (c *Console) ShowQuestion(round, total int, text string) {
	fmt.Fprintf(c.out, "Question %d/%d: %s\n", round, total, c.render(theme.Question, text))
}

func (c *Console) ShowOptions(names []string) {
	fmt.Fprintln(c.out, "Options:")
	for i, name := range names {
		fmt.Fprintf(c.out, "%s %s\n",
			c.render(theme.OptionNumber, fmt.Sprintf("%d.", i+1)),
			c.render(theme.Option, name))
	}
}

// ReadAnswer reads one line. At end of input the partial line is returned
// together with io.EOF.
func (c *Console) ReadAnswer() (string, error) {
	return c.in.ReadString('\n')
}

func (c *Console) ShowVerdict(v quiz.Verdict) {
	verdict := c.render(theme.Incorrect, "wrong")
	if v.Correct {
		verdict = c.render(theme.Correct, "correct")
	}
	fmt.Fprintf(c.out, "Your answer #%d is %s. Correct answer is %s\n", v.Choice, verdict, v.Answer)
}

func (c *Console) ShowTally(t quiz.Tally) {
	fmt.Fprintln(c.out, c.render(theme.Banner,
		fmt.Sprintf("Final score: %d/%d . Time: %ds", t.Correct, t.Total, t.Seconds())))
}

func (c *Console) render(style lipgloss.Style, s string) string {
	if !c.color {
		return s
	}
	return style.Render(s)
}
