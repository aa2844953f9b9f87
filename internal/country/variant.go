package country

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jostho/quest/internal/dataset"
	"github.com/jostho/quest/internal/quiz"
)

// Kind names a quiz variant.
type Kind string

const (
	KindCapital Kind = "capital" // which country's capital is X
	KindCode    Kind = "code"    // which country's code is X
)

// Variant is the capability set one quiz flavour needs: how to read its
// source JSON, which flat-file columns it uses, how records map onto quiz
// subjects, and how questions are phrased.
type Variant interface {
	quiz.Template

	Kind() Kind

	// Header lists the flat-file columns, in write order.
	Header() []string

	// DecodeSource validates and flattens source JSON into a table.
	DecodeSource(r io.Reader) (*dataset.Table, error)

	// Subjects converts a flat table into quiz subjects, in table order.
	Subjects(t *dataset.Table) ([]quiz.Subject, error)
}

// Kinds returns all known variant kinds.
func Kinds() []Kind {
	return []Kind{KindCapital, KindCode}
}

// Lookup returns the variant named by kind.
func Lookup(kind string) (Variant, error) {
	switch Kind(strings.ToLower(kind)) {
	case KindCapital:
		return capitalVariant{}, nil
	case KindCode:
		return codeVariant{}, nil
	}
	return nil, fmt.Errorf("unknown variant %q: must be %s or %s", kind, KindCapital, KindCode)
}

type capitalVariant struct{}

func (capitalVariant) Kind() Kind       { return KindCapital }
func (capitalVariant) Header() []string { return CapitalHeader }

func (capitalVariant) Question(prompt string) string {
	return fmt.Sprintf("which country's capital is %s ?", prompt)
}

func (v capitalVariant) DecodeSource(r io.Reader) (*dataset.Table, error) {
	raw, err := readSource(r, v.Kind())
	if err != nil {
		return nil, err
	}

	var src []SourceCountry
	if err := json.Unmarshal(raw, &src); err != nil {
		return nil, fmt.Errorf("decode countries: %w", err)
	}

	t := dataset.NewTable(CapitalHeader...)
	for _, s := range src {
		if err := t.Append(FromSource(s).fields()...); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (capitalVariant) Subjects(t *dataset.Table) ([]quiz.Subject, error) {
	countries, err := Countries(t)
	if err != nil {
		return nil, err
	}
	out := make([]quiz.Subject, len(countries))
	for i, c := range countries {
		out[i] = c
	}
	return out, nil
}

type codeVariant struct{}

func (codeVariant) Kind() Kind       { return KindCode }
func (codeVariant) Header() []string { return CodeHeader }

func (codeVariant) Question(prompt string) string {
	return fmt.Sprintf("which country's code is %s ?", prompt)
}

func (v codeVariant) DecodeSource(r io.Reader) (*dataset.Table, error) {
	raw, err := readSource(r, v.Kind())
	if err != nil {
		return nil, err
	}

	var src SourceCodes
	if err := json.Unmarshal(raw, &src); err != nil {
		return nil, fmt.Errorf("decode codes: %w", err)
	}

	t := dataset.NewTable(CodeHeader...)
	for _, c := range src.Entries {
		if err := t.Append(c.fields()...); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (codeVariant) Subjects(t *dataset.Table) ([]quiz.Subject, error) {
	codes, err := Codes(t)
	if err != nil {
		return nil, err
	}
	out := make([]quiz.Subject, len(codes))
	for i, c := range codes {
		out[i] = c
	}
	return out, nil
}

func readSource(r io.Reader, kind Kind) ([]byte, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read source: %w", err)
	}
	if err := validateSource(kind, raw); err != nil {
		return nil, fmt.Errorf("%s source: %w", kind, err)
	}
	return raw, nil
}
