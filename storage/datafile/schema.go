package datafile

import (
	"embed"
	"fmt"

	"github.com/kaptinlin/jsonschema"
	"github.com/pkg/errors"
)

//go:embed schemas/*.json
var schemaFS embed.FS

var (
	docsSchema  = mustCompile("schemas/seed_docs.schema.json")
	datesSchema = mustCompile("schemas/mock_dates.schema.json")
)

func mustCompile(name string) *jsonschema.Schema {
	data, err := schemaFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("datafile: read schema %s: %v", name, err))
	}
	compiler := jsonschema.NewCompiler()
	schema, err := compiler.Compile(data)
	if err != nil {
		panic(fmt.Sprintf("datafile: compile schema %s: %v", name, err))
	}
	return schema
}

func validate(schema *jsonschema.Schema, p Payload) error {
	result := schema.ValidateJSON(p.JSON)
	if result.IsValid() {
		return nil
	}
	return errors.Errorf("%s: schema validation failed: %v", p.Path, result.Errors)
}
