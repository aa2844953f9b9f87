package country

import (
	"fmt"

	"github.com/jostho/quest/internal/dataset"
	"github.com/jostho/quest/internal/quiz"
)

// CapitalHeader lists the flat-file columns of the capital variant.
var CapitalHeader = []string{"cca2", "cca3", "ccn3", "name_common", "name_official", "capital"}

// SourceCountry is one element of the source countries JSON array.
type SourceCountry struct {
	CCA2    string     `json:"cca2"`
	CCA3    string     `json:"cca3"`
	CCN3    string     `json:"ccn3"`
	Name    SourceName `json:"name"`
	Capital []string   `json:"capital"`
}

// SourceName holds the nested country names.
type SourceName struct {
	Common   string `json:"common"`
	Official string `json:"official"`
}

// Country is a flattened country record used by the capital quiz.
type Country struct {
	CCA2         string
	CCA3         string
	CCN3         string
	NameCommon   string
	NameOfficial string
	Capital      string
}

var _ quiz.Subject = Country{}

// FromSource flattens a source record. Only the first capital is kept;
// a country without capitals gets an empty one.
func FromSource(src SourceCountry) Country {
	var capital string
	if len(src.Capital) > 0 {
		capital = src.Capital[0]
	}
	return Country{
		CCA2:         src.CCA2,
		CCA3:         src.CCA3,
		CCN3:         src.CCN3,
		NameCommon:   src.Name.Common,
		NameOfficial: src.Name.Official,
		Capital:      capital,
	}
}

func (c Country) Key() string             { return c.CCN3 }
func (c Country) DisplayName() string     { return c.NameCommon }
func (c Country) PromptAttribute() string { return c.Capital }

// IsValidCapital reports whether the capital can be asked about.
func (c Country) IsValidCapital() bool {
	return quiz.Valid(c)
}

func (c Country) fields() []string {
	return []string{c.CCA2, c.CCA3, c.CCN3, c.NameCommon, c.NameOfficial, c.Capital}
}

// Countries converts a capital-variant table into records.
func Countries(t *dataset.Table) ([]Country, error) {
	idx, err := t.Columns(CapitalHeader...)
	if err != nil {
		return nil, fmt.Errorf("capital table: %w", err)
	}
	out := make([]Country, 0, t.Len())
	for _, row := range t.Rows {
		out = append(out, Country{
			CCA2:         row[idx[0]],
			CCA3:         row[idx[1]],
			CCN3:         row[idx[2]],
			NameCommon:   row[idx[3]],
			NameOfficial: row[idx[4]],
			Capital:      row[idx[5]],
		})
	}
	return out, nil
}
