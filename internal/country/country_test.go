package country

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jostho/quest/internal/dataset"
	"github.com/jostho/quest/internal/quiz"
)

const countriesJSON = `[
  {
    "cca2": "AW", "cca3": "ABW", "ccn3": "533",
    "name": {"common": "Aruba", "official": "Aruba", "native": {}},
    "capital": ["Oranjestad"],
    "latlng": [12.5, -69.96666666]
  },
  {
    "cca2": "AQ", "cca3": "ATA", "ccn3": "010",
    "name": {"common": "Antarctica", "official": "Antarctica"},
    "capital": []
  },
  {
    "cca2": "ZA", "cca3": "ZAF", "ccn3": "710",
    "name": {"common": "South Africa", "official": "Republic of South Africa"},
    "capital": ["Pretoria", "Bloemfontein", "Cape Town"]
  }
]`

const codesJSON = `{
  "3166-1": [
    {"alpha_2": "AW", "alpha_3": "ABW", "name": "Aruba", "numeric": "533"},
    {"alpha_2": "AF", "alpha_3": "AFG", "name": "Afghanistan", "numeric": "004",
     "official_name": "Islamic Republic of Afghanistan"}
  ]
}`

func TestFromSource(t *testing.T) {
	zaf := SourceCountry{
		CCA2: "ZA", CCA3: "ZAF", CCN3: "710",
		Name:    SourceName{Common: "South Africa", Official: "Republic of South Africa"},
		Capital: []string{"Pretoria", "Bloemfontein", "Cape Town"},
	}

	c := FromSource(zaf)

	assert.Equal(t, "710", c.CCN3)
	assert.Equal(t, "South Africa", c.NameCommon)
	assert.Equal(t, "Republic of South Africa", c.NameOfficial)
	assert.Equal(t, "Pretoria", c.Capital)
}

func TestFromSource_NoCapital(t *testing.T) {
	c := FromSource(SourceCountry{CCN3: "010", Name: SourceName{Common: "Antarctica"}})
	assert.Equal(t, "", c.Capital)
}

func TestIsValidCapital(t *testing.T) {
	tests := []struct {
		name    string
		country Country
		want    bool
	}{
		{"abw", Country{CCN3: "533", NameCommon: "Aruba", NameOfficial: "Aruba", Capital: "Oranjestad"}, true},
		{"ata", Country{CCN3: "010", NameCommon: "Antarctica", NameOfficial: "Antarctica", Capital: ""}, false},
		{"gib", Country{CCN3: "292", NameCommon: "Gibraltar", NameOfficial: "Gibraltar", Capital: "Gibraltar"}, false},
		{"gnb", Country{CCN3: "624", NameCommon: "Guinea-Bissau", NameOfficial: "Republic of Guinea-Bissau", Capital: "Bissau"}, false},
		{"gtm", Country{CCN3: "320", NameCommon: "Guatemala", NameOfficial: "Republic of Guatemala", Capital: "Guatemala City"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.country.IsValidCapital())
		})
	}
}

func TestLookup(t *testing.T) {
	for _, k := range Kinds() {
		v, err := Lookup(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, v.Kind())
	}

	v, err := Lookup("CAPITAL")
	require.NoError(t, err)
	assert.Equal(t, KindCapital, v.Kind())

	_, err = Lookup("flag")
	assert.ErrorContains(t, err, `unknown variant "flag"`)
}

func TestCapitalVariant_Question(t *testing.T) {
	v, _ := Lookup("capital")
	assert.Equal(t, "which country's capital is Harare ?", v.Question("Harare"))
}

func TestCodeVariant_Question(t *testing.T) {
	v, _ := Lookup("code")
	assert.Equal(t, "which country's code is ZW ?", v.Question("ZW"))
}

func TestCapitalVariant_DecodeSource(t *testing.T) {
	v, _ := Lookup("capital")

	tbl, err := v.DecodeSource(strings.NewReader(countriesJSON))

	require.NoError(t, err)
	assert.Equal(t, CapitalHeader, tbl.Header)
	require.Equal(t, 3, tbl.Len())
	assert.Equal(t, []string{"AW", "ABW", "533", "Aruba", "Aruba", "Oranjestad"}, tbl.Rows[0])
	assert.Equal(t, "", tbl.Rows[1][5])
	assert.Equal(t, "Pretoria", tbl.Rows[2][5])
}

func TestCapitalVariant_DecodeSource_SchemaViolation(t *testing.T) {
	v, _ := Lookup("capital")

	tests := []struct {
		name string
		in   string
	}{
		{"not json", `[{"cca2": `},
		{"object instead of array", `{"cca2": "AW"}`},
		{"missing name", `[{"cca2": "AW", "cca3": "ABW"}]`},
		{"capital not a list", `[{"cca2": "AW", "cca3": "ABW", "name": {"common": "Aruba", "official": "Aruba"}, "capital": "Oranjestad"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := v.DecodeSource(strings.NewReader(tt.in))
			assert.ErrorContains(t, err, "capital source")
		})
	}
}

func TestCodeVariant_DecodeSource(t *testing.T) {
	v, _ := Lookup("code")

	tbl, err := v.DecodeSource(strings.NewReader(codesJSON))

	require.NoError(t, err)
	assert.Equal(t, CodeHeader, tbl.Header)
	require.Equal(t, 2, tbl.Len())
	assert.Equal(t, []string{"AW", "ABW", "Aruba", "533", ""}, tbl.Rows[0])
	assert.Equal(t, "Islamic Republic of Afghanistan", tbl.Rows[1][4])
}

func TestCodeVariant_DecodeSource_SchemaViolation(t *testing.T) {
	v, _ := Lookup("code")

	_, err := v.DecodeSource(strings.NewReader(`{"3166-2": []}`))
	assert.ErrorContains(t, err, "code source")

	_, err = v.DecodeSource(strings.NewReader(`{"3166-1": [{"alpha_2": "AW"}]}`))
	assert.Error(t, err)
}

func TestCapitalVariant_Subjects(t *testing.T) {
	v, _ := Lookup("capital")
	tbl, err := v.DecodeSource(strings.NewReader(countriesJSON))
	require.NoError(t, err)

	subjects, err := v.Subjects(tbl)
	require.NoError(t, err)
	require.Len(t, subjects, 3)
	assert.Equal(t, "533", subjects[0].Key())
	assert.Equal(t, "Aruba", subjects[0].DisplayName())
	assert.Equal(t, "Oranjestad", subjects[0].PromptAttribute())

	store := quiz.NewStore(subjects)
	require.Equal(t, 2, store.Len())
	assert.Equal(t, "Aruba", store.At(0).DisplayName())
	assert.Equal(t, "South Africa", store.At(1).DisplayName())
}

func TestCodeVariant_Subjects(t *testing.T) {
	v, _ := Lookup("code")
	tbl, err := v.DecodeSource(strings.NewReader(codesJSON))
	require.NoError(t, err)

	subjects, err := v.Subjects(tbl)
	require.NoError(t, err)
	require.Len(t, subjects, 2)
	assert.Equal(t, "004", subjects[1].Key())
	assert.Equal(t, "Afghanistan", subjects[1].DisplayName())
	assert.Equal(t, "AF", subjects[1].PromptAttribute())
}

func TestSubjects_ReorderedColumns(t *testing.T) {
	tbl := dataset.NewTable("name", "numeric", "alpha_2", "alpha_3", "official_name")
	require.NoError(t, tbl.Append("Zimbabwe", "716", "ZW", "ZWE", "Republic of Zimbabwe"))

	codes, err := Codes(tbl)
	require.NoError(t, err)
	assert.Equal(t, Code{Alpha2: "ZW", Alpha3: "ZWE", Name: "Zimbabwe", Numeric: "716", OfficialName: "Republic of Zimbabwe"}, codes[0])
}

func TestSubjects_WrongVariantTable(t *testing.T) {
	v, _ := Lookup("capital")
	_, err := v.Subjects(dataset.NewTable(CodeHeader...))
	assert.ErrorIs(t, err, dataset.ErrMissingColumn)
}

func TestSchemas_CompileForEveryKind(t *testing.T) {
	all, err := schemas()
	require.NoError(t, err)
	for _, kind := range Kinds() {
		assert.NotNil(t, all[kind], "schema for %s", kind)
	}
}

func TestValidateSource(t *testing.T) {
	assert.NoError(t, validateSource(KindCapital, []byte(countriesJSON)))
	assert.NoError(t, validateSource(KindCode, []byte(codesJSON)))
	assert.ErrorContains(t, validateSource(KindCode, []byte(countriesJSON)), "schema validation failed")
	assert.ErrorContains(t, validateSource(Kind("flag"), []byte(`[]`)), "no schema")
}
