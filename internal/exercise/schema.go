package exercise

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// ErrInvalidPayload indicates an exercise payload from the API that does not
// match the expected shape.
type ErrInvalidPayload struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrInvalidPayload) Error() string {
	return fmt.Sprintf("invalid exercise payload: %v", e.Err)
}

func (e *ErrInvalidPayload) Unwrap() error { return e.Err }

const schemaURL = "schema://exercise.json"

// payloadSchema describes the fields the client depends on. Everything else
// passes through untouched.
var payloadSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id": map[string]any{
			"type":      "string",
			"minLength": 1,
		},
		"type": map[string]any{
			"type": "string",
			"enum": []any{
				string(KindClosedSingle),
				string(KindClosedMultiple),
				string(KindShortAnswer),
				string(KindSynthesisNote),
				string(KindEssay),
			},
		},
		"category":   map[string]any{"type": "string"},
		"epoch":      map[string]any{"type": []any{"string", "null"}},
		"difficulty": map[string]any{"type": "integer", "minimum": 1},
		"points":     map[string]any{"type": "integer", "minimum": 0},
		"question":   map[string]any{"type": "string"},
		"content":    map[string]any{"type": []any{"object", "null"}},
		"tags": map[string]any{
			"type":  []any{"array", "null"},
			"items": map[string]any{"type": "string"},
		},
	},
	"required": []any{"id", "type", "difficulty", "points", "question"},
}

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a plain decoded JSON value, not Go ints.
		defBytes, err := json.Marshal(payloadSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(defBytes, &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// Decode validates raw against the exercise schema and decodes it.
func Decode(raw json.RawMessage) (*Exercise, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, &ErrInvalidPayload{Content: raw, Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := compiledSchema()
	if err != nil {
		return nil, &ErrInvalidPayload{Content: raw, Err: fmt.Errorf("compile schema: %w", err)}
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, &ErrInvalidPayload{Content: raw, Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var ex Exercise
	if err := json.Unmarshal(raw, &ex); err != nil {
		return nil, &ErrInvalidPayload{Content: raw, Err: err}
	}
	return &ex, nil
}
