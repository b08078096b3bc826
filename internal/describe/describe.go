// Package describe receives the untrusted, JSON-shaped scene description.
// Only the batch-level structure (an object with an objects array) is
// enforced here, via JSON Schema; every deeper field stays loose and is left
// to the normalizer's sanitizers. This is the one place a structural error
// is allowed to surface to the caller.
package describe

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// Description is the decoded but still-untrusted scene description.
// Objects holds raw values; Background may be a hex string, a number, or
// absent.
type Description struct {
	Objects    []any
	Background any
}

// batchSchema enforces only what the pipeline cannot degrade around: the
// top level must be an object and objects must be an array.
const batchSchema = `{
	"type": "object",
	"properties": {
		"objects": {"type": "array"}
	},
	"required": ["objects"]
}`

var schemaLoader = gojsonschema.NewStringLoader(batchSchema)

// Decode parses data and validates the batch-level structure. A structural
// failure here is the only fatal error in the whole pipeline; malformed
// individual objects are passed through for per-object handling.
func Decode(data []byte) (*Description, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("scene description is not valid JSON: %w", err)
	}
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(raw))
	if err != nil {
		return nil, fmt.Errorf("scene description validation: %w", err)
	}
	if !result.Valid() {
		var msgs []string
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return nil, fmt.Errorf("scene description rejected: %v", msgs)
	}
	m := raw.(map[string]any)
	objs, _ := m["objects"].([]any)
	return &Description{
		Objects:    objs,
		Background: m["background"],
	}, nil
}
