// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package backend defines the contract all language backends implement and
// the registry the CLI dispatches through.
package backend

import (
	"fmt"
	"sort"

	"github.com/dacolabs/transpile/internal/jsast"
	"github.com/dacolabs/transpile/internal/opcodes"
)

// Options is the configuration surface shared by every backend. Options that
// a backend does not recognize are ignored; none of them changes the logic
// of the emitted code, only its representation.
type Options struct {
	// Indent is the string emitted per nesting level. Default four spaces.
	Indent string
	// LineEnding is the line terminator. Default "\n".
	LineEnding string
	// AddComments controls doc comments and the generated-file banner.
	AddComments bool
	// StrictTypes makes unknown types default to the 32-bit working type
	// instead of the target's dynamic fallback.
	StrictTypes bool
	// UseZeroCopy prefers slice/reference parameter types over owned
	// collections (Rust).
	UseZeroCopy bool
	// ErrorHandling adds an error-return channel to generated functions
	// where the target supports it (Go).
	ErrorHandling bool
	// Edition selects the Rust edition header. Default "2021".
	Edition string
	// NoStd emits a #![no_std] Rust crate header.
	NoStd bool
	// PackageName is the Go package clause name. Default "generated".
	PackageName string
	// SourceName names the input in the generated-file banner.
	SourceName string
	// TypeKnowledge maps "Receiver.Method" call names to declared return
	// types, consulted before structural inference. Merged over the
	// built-in domain-operations table.
	TypeKnowledge map[string]string
}

// Normalized returns a copy with defaults filled in and the type-knowledge
// table merged over the domain-operations defaults.
func (o Options) Normalized() Options {
	if o.Indent == "" {
		o.Indent = "    "
	}
	if o.LineEnding == "" {
		o.LineEnding = "\n"
	}
	if o.Edition == "" {
		o.Edition = "2021"
	}
	if o.PackageName == "" {
		o.PackageName = "generated"
	}
	merged := opcodes.ReturnTypes()
	for k, v := range o.TypeKnowledge {
		merged[k] = v
	}
	o.TypeKnowledge = merged
	return o
}

// Result is the outcome of a successful generation: the target source plus
// advisory warnings for every construct that was not translated faithfully.
type Result struct {
	Code     string
	Warnings []string
}

// Backend translates a JavaScript Program AST into source code for one
// target language. Implementations are not safe for concurrent use of a
// single Generate call's internals; Generate itself constructs fresh
// per-invocation state.
type Backend interface {
	// Name returns the backend identifier (e.g., "rust", "go").
	Name() string
	// FileExtension returns the output extension (e.g., ".rs", ".go").
	FileExtension() string
	// Generate transforms and emits the program. It never returns a nil
	// Result together with a nil error; a well-formed empty Program yields
	// an empty module.
	Generate(program *jsast.Node, opts Options) (*Result, error)
}

var backends = make(map[string]Backend)

// Register adds a backend to the registry.
func Register(b Backend) {
	backends[b.Name()] = b
}

// Get retrieves a backend by name.
func Get(name string) (Backend, error) {
	b, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown language: %s", name)
	}
	return b, nil
}

// Available returns all registered backend names, sorted.
func Available() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CheckProgram validates the root node contract shared by all backends:
// a non-nil Program whose body is present. Malformed input fails fast.
func CheckProgram(program *jsast.Node) error {
	if program == nil {
		return fmt.Errorf("nil AST root")
	}
	if program.Type != "Program" {
		return fmt.Errorf("root node is %q, want Program", program.Type)
	}
	return nil
}
