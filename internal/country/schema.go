package country

import (
	"bytes"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// sourceSchemas holds the JSON Schema for each variant's source document.
// Only the fields a variant reads are constrained; extra fields are allowed.
var sourceSchemas = map[Kind]string{
	KindCapital: `{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["cca2", "cca3", "name"],
			"properties": {
				"cca2": {"type": "string"},
				"cca3": {"type": "string"},
				"ccn3": {"type": "string"},
				"name": {
					"type": "object",
					"required": ["common", "official"],
					"properties": {
						"common": {"type": "string"},
						"official": {"type": "string"}
					}
				},
				"capital": {"type": "array", "items": {"type": "string"}}
			}
		}
	}`,
	KindCode: `{
		"type": "object",
		"required": ["3166-1"],
		"properties": {
			"3166-1": {
				"type": "array",
				"items": {
					"type": "object",
					"required": ["alpha_2", "alpha_3", "name", "numeric"],
					"properties": {
						"alpha_2": {"type": "string"},
						"alpha_3": {"type": "string"},
						"name": {"type": "string"},
						"numeric": {"type": "string"},
						"official_name": {"type": "string"}
					}
				}
			}
		}
	}`,
}

// schemas compiles every source schema on first use.
var schemas = sync.OnceValues(func() (map[Kind]*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	out := make(map[Kind]*jsonschema.Schema, len(sourceSchemas))
	for kind, src := range sourceSchemas {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(src))
		if err != nil {
			return nil, fmt.Errorf("parse %s schema: %w", kind, err)
		}
		loc := "quest://" + string(kind) + ".json"
		if err := c.AddResource(loc, doc); err != nil {
			return nil, fmt.Errorf("add %s schema: %w", kind, err)
		}
		sch, err := c.Compile(loc)
		if err != nil {
			return nil, fmt.Errorf("compile %s schema: %w", kind, err)
		}
		out[kind] = sch
	}
	return out, nil
})

// validateSource checks a raw source document against the schema for kind.
func validateSource(kind Kind, raw []byte) error {
	all, err := schemas()
	if err != nil {
		return err
	}
	sch, ok := all[kind]
	if !ok {
		return fmt.Errorf("no schema for variant %q", kind)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := sch.Validate(doc); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
