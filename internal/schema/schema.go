// Package schema validates YAML and JSON documents against the JSON Schemas
// embedded in this package.
package schema

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed *.schema.json
var schemasFS embed.FS

const (
	// Config is the schema for assetsym.yaml.
	Config = "config.schema.json"
	// Manifest is the schema for asset manifest files.
	Manifest = "manifest.schema.json"
)

var (
	mu       sync.Mutex
	compiled = map[string]*jsonschema.Schema{}
)

func load(name string) (*jsonschema.Schema, error) {
	mu.Lock()
	defer mu.Unlock()

	if s, ok := compiled[name]; ok {
		return s, nil
	}

	raw, err := schemasFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("schema %s not found: %w", name, err)
	}
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("parse schema %s: %w", name, err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(name, doc); err != nil {
		return nil, fmt.Errorf("add schema resource: %w", err)
	}
	s, err := c.Compile(name)
	if err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}
	compiled[name] = s
	return s, nil
}

// Validate checks data against the named schema.
// data may be YAML or JSON; JSON is a subset of YAML so both go through the
// YAML decoder and are re-encoded as JSON before validation.
func Validate(name string, data []byte) error {
	s, err := load(name)
	if err != nil {
		return err
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse document: %w", err)
	}
	if doc == nil {
		doc = map[string]any{}
	}

	asJSON, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to convert document: %w", err)
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(asJSON))
	if err != nil {
		return fmt.Errorf("failed to convert document: %w", err)
	}

	if err := s.Validate(inst); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}
