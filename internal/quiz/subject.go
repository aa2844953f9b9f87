package quiz

import "strings"

// Subject is one quiz entity: the thing a question is asked about.
//
// Two subjects are the same question subject iff their keys match,
// regardless of their display strings.
type Subject interface {
	// Key is the stable identity of the subject (e.g. a numeric country code).
	Key() string

	// DisplayName is shown as an option and compared for scoring.
	DisplayName() string

	// PromptAttribute is the value the question text is built around.
	PromptAttribute() string
}

// Same reports whether a and b refer to the same subject.
func Same(a, b Subject) bool {
	return a.Key() == b.Key()
}

// Valid reports whether s can produce an unambiguous question: the prompt
// attribute is non-empty and neither string contains the other.
func Valid(s Subject) bool {
	prompt := s.PromptAttribute()
	name := s.DisplayName()
	return prompt != "" &&
		!strings.Contains(prompt, name) &&
		!strings.Contains(name, prompt)
}

// Template builds the question text from a subject's prompt attribute.
type Template interface {
	Question(prompt string) string
}

// TemplateFunc adapts a plain function to Template.
type TemplateFunc func(prompt string) string

// Question implements Template.
func (f TemplateFunc) Question(prompt string) string { return f(prompt) }
