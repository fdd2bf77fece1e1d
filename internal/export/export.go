// Package export reads and writes session-collection JSON files.
// Export emits the persisted collection shape (plus bookkeeping
// fields), so both export files and raw storage dumps can be imported.
// Import validates foreign files against a JSON schema before any of
// their content reaches the store.
package export

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/takeru/prepdeck/internal/session"
)

// FormatVersion tags export files.
const FormatVersion = 1

// collectionSchema is the minimal contract an import file must satisfy.
// It mirrors the store's duck-typed gate, but applied strictly: a file
// with any malformed session is rejected whole rather than salvaged,
// since an import is an explicit user action that should fail loudly.
const collectionSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["sessions"],
	"properties": {
		"sessions": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["id", "answers", "perQuestionSec"],
				"properties": {
					"id": {"type": "string", "minLength": 1},
					"answers": {"type": "array", "items": {"type": "object"}},
					"perQuestionSec": {"type": "array", "items": {"type": "number", "minimum": 0}},
					"startNum": {"type": "integer"},
					"endNum": {"type": "integer"},
					"minutes": {"type": "integer"}
				}
			}
		}
	}
}`

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// getCompiledSchema compiles the collection schema once and caches it.
func getCompiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(collectionSchema), &def); err != nil {
			schemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		const schemaURL = "schema://collection.json"
		if err := c.AddResource(schemaURL, def); err != nil {
			schemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// Marshal renders the collection as an indented export document.
func Marshal(c session.Collection, now time.Time) ([]byte, error) {
	data, err := session.EncodeCollection(c)
	if err != nil {
		return nil, fmt.Errorf("encode collection: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("reshape collection: %w", err)
	}
	doc["version"] = FormatVersion
	doc["exportedAt"] = now.UTC().Format(time.RFC3339)
	return json.MarshalIndent(doc, "", "  ")
}

// Unmarshal validates data against the collection schema and decodes
// it. Schema violations are returned verbatim so the user can see what
// is wrong with the file.
func Unmarshal(data []byte) (session.Collection, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return session.Collection{}, fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := getCompiledSchema()
	if err != nil {
		return session.Collection{}, fmt.Errorf("compile schema: %w", err)
	}
	if err := compiled.Validate(doc); err != nil {
		return session.Collection{}, fmt.Errorf("schema validation failed: %w", err)
	}

	c, ok := session.DecodeCollection(data)
	if !ok {
		return session.Collection{}, fmt.Errorf("unreadable collection")
	}
	return c, nil
}
