package country

import (
	"fmt"

	"github.com/jostho/quest/internal/dataset"
	"github.com/jostho/quest/internal/quiz"
)

// CodeHeader lists the flat-file columns of the code variant.
var CodeHeader = []string{"alpha_2", "alpha_3", "name", "numeric", "official_name"}

// SourceCodes is the ISO 3166-1 source document.
type SourceCodes struct {
	Entries []Code `json:"3166-1"`
}

// Code is an ISO 3166-1 entry used by the code quiz.
type Code struct {
	Alpha2       string `json:"alpha_2"`
	Alpha3       string `json:"alpha_3"`
	Name         string `json:"name"`
	Numeric      string `json:"numeric"`
	OfficialName string `json:"official_name"`
}

var _ quiz.Subject = Code{}

func (c Code) Key() string             { return c.Numeric }
func (c Code) DisplayName() string     { return c.Name }
func (c Code) PromptAttribute() string { return c.Alpha2 }

func (c Code) fields() []string {
	return []string{c.Alpha2, c.Alpha3, c.Name, c.Numeric, c.OfficialName}
}

// Codes converts a code-variant table into records.
func Codes(t *dataset.Table) ([]Code, error) {
	idx, err := t.Columns(CodeHeader...)
	if err != nil {
		return nil, fmt.Errorf("code table: %w", err)
	}
	out := make([]Code, 0, t.Len())
	for _, row := range t.Rows {
		out = append(out, Code{
			Alpha2:       row[idx[0]],
			Alpha3:       row[idx[1]],
			Name:         row[idx[2]],
			Numeric:      row[idx[3]],
			OfficialName: row[idx[4]],
		})
	}
	return out, nil
}
