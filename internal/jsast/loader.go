// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jsast

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"sync"

	"github.com/google/jsonschema-go/jsonschema"
)

// envelopeSchema describes the minimal shape a well-formed ESTree document
// must have before node decoding is attempted: a JSON object rooted at a
// Program node with a body array. Anything that fails this check is a
// malformed-input error, not a translation problem.
var envelopeSchema = &jsonschema.Schema{
	Type:     "object",
	Required: []string{"type", "body"},
	Properties: map[string]*jsonschema.Schema{
		"type": {Type: "string", Enum: []any{"Program"}},
		"body": {Type: "array"},
	},
}

var resolveEnvelope = sync.OnceValues(func() (*jsonschema.Resolved, error) {
	return envelopeSchema.Resolve(nil)
})

// Decode parses an ESTree JSON document into a Program node. The document
// envelope is validated first so a structured error is returned for input
// that is not a Program at all (fail fast, no partial output).
func Decode(data []byte) (*Node, error) {
	resolved, err := resolveEnvelope()
	if err != nil {
		return nil, fmt.Errorf("internal schema: %w", err)
	}

	var instance any
	if err := json.Unmarshal(data, &instance); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := resolved.Validate(instance); err != nil {
		return nil, fmt.Errorf("not a Program AST: %w", err)
	}

	var root Node
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("decoding AST: %w", err)
	}
	return &root, nil
}

// Loader loads ESTree documents from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadFile loads and decodes an ESTree JSON file.
func (l *Loader) LoadFile(filePath string) (*Node, error) {
	f, err := l.fsys.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filePath, err)
	}

	root, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}
	return root, nil
}
