package batch

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema.json
var schemaJSON string

var recordSchema = jsonschema.MustCompileString("schema.json", schemaJSON)

// Schema returns the JSON Schema every emitted output record conforms to.
func Schema() string {
	return schemaJSON
}

// ValidateRecord checks serialized output bytes against the record schema.
func ValidateRecord(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("record is not valid JSON: %w", err)
	}
	if err := recordSchema.Validate(v); err != nil {
		return fmt.Errorf("record violates schema: %w", err)
	}
	return nil
}
