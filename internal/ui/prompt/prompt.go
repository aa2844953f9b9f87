// Package prompt implements a quiz presenter that reads each answer through
// a small Bubble Tea program.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/jostho/quest/internal/quiz"
	"github.com/jostho/quest/internal/ui/theme"
)

// ErrInterrupted is returned by ReadAnswer when the player quits.
var ErrInterrupted = errors.New("quiz interrupted")

// Presenter renders each round as a card with an answer field.
type Presenter struct {
	out   io.Writer
	color bool

	round    int
	total    int
	question string
	options  []string

	// run executes one answer program and returns its final model.
	run func(m tea.Model) (tea.Model, error)
}

var _ quiz.Presenter = (*Presenter)(nil)

// New creates a Presenter reading keys from in and drawing to out. When
// color is false the card and verdicts are drawn without styling.
func New(in io.Reader, out io.Writer, color bool) *Presenter {
	return &Presenter{
		out:   out,
		color: color,
		run: func(m tea.Model) (tea.Model, error) {
			return tea.NewProgram(m, tea.WithInput(in), tea.WithOutput(out)).Run()
		},
	}
}

// ShowHeader announces the session before the first round.
func (p *Presenter) ShowHeader(source string, total int) {
	fmt.Fprintln(p.out, paint(p.color, theme.Banner, fmt.Sprintf("Asking quiz using %s (total: %d)", source, total)))
}

func (p *Presenter) ShowQuestion(round, total int, text string) {
	p.round = round
	p.total = total
	p.question = text
}

func (p *Presenter) ShowOptions(names []string) {
	p.options = append(p.options[:0], names...)
}

func (p *Presenter) ReadAnswer() (string, error) {
	final, err := p.run(newModel(p.round, p.total, p.question, p.options, p.color))
	if err != nil {
		return "", fmt.Errorf("run prompt: %w", err)
	}
	m, ok := final.(model)
	if !ok {
		return "", fmt.Errorf("unexpected prompt model %T", final)
	}
	if m.cancelled {
		return "", ErrInterrupted
	}
	return m.input.Value(), nil
}

func (p *Presenter) ShowVerdict(v quiz.Verdict) {
	verdict := paint(p.color, theme.Incorrect, "✗ wrong")
	if v.Correct {
		verdict = paint(p.color, theme.Correct, "✓ correct")
	}
	fmt.Fprintf(p.out, "%s  Correct answer is %s\n\n", verdict, v.Answer)
}

func (p *Presenter) ShowTally(t quiz.Tally) {
	fmt.Fprintln(p.out, paint(p.color, theme.Banner,
		fmt.Sprintf("Final score: %d/%d . Time: %ds", t.Correct, t.Total, t.Seconds())))
}

// model is the Bubble Tea model for a single answer.
type model struct {
	round    int
	total    int
	question string
	options  []string
	color    bool

	input     textinput.Model
	submitted bool
	cancelled bool
}

func newModel(round, total int, question string, options []string, color bool) model {
	ti := textinput.New()
	ti.Placeholder = fmt.Sprintf("1-%d", len(options))
	ti.CharLimit = 4
	ti.Focus()

	return model{
		round:    round,
		total:    total,
		question: question,
		options:  options,
		color:    color,
		input:    ti,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter":
			m.submitted = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() tea.View {
	return tea.NewView(m.render())
}

func (m model) render() string {
	var b strings.Builder

	b.WriteString(paint(m.color, theme.Hint, fmt.Sprintf("Question %d/%d", m.round, m.total)))
	b.WriteString("\n")
	b.WriteString(paint(m.color, theme.Question, m.question))
	b.WriteString("\n\n")
	for i, opt := range m.options {
		b.WriteString(paint(m.color, theme.OptionNumber, fmt.Sprintf("%d.", i+1)))
		b.WriteString(" ")
		b.WriteString(paint(m.color, theme.Option, opt))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.submitted || m.cancelled {
		b.WriteString("Your answer: " + m.input.Value())
	} else {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(paint(m.color, theme.Hint, "Enter to answer · Esc to quit"))
	}

	return paint(m.color, theme.Card, b.String()) + "\n"
}

// paint renders s with style, or returns it unchanged when color is off.
func paint(color bool, style lipgloss.Style, s string) string {
	if !color {
		return s
	}
	return style.Render(s)
}
