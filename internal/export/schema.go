package export

import (
	_ "embed"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaJSON string

// reportSchema validates one decoded report object. Compiled once; the
// embedded schema is part of the build, so failure here is a programming
// error.
var reportSchema = func() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", strings.NewReader(schemaJSON)); err != nil {
		panic(err)
	}
	return compiler.MustCompile("schema.json")
}()

// ValidateReport checks one decoded JSON value against the report schema.
func ValidateReport(v any) error {
	return reportSchema.Validate(v)
}
