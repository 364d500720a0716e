// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package golang

import (
	"fmt"

	"github.com/dacolabs/transpile/internal/backend"
	"github.com/dacolabs/transpile/internal/jsast"
)

// Backend is the Go code generator.
type Backend struct{}

// New returns the Go backend.
func New() *Backend { return &Backend{} }

func init() {
	backend.Register(New())
}

// Name returns the backend identifier.
func (*Backend) Name() string { return "go" }

// FileExtension returns the output file extension.
func (*Backend) FileExtension() string { return ".go" }

// Generate transforms the JavaScript program into a Go file and renders it.
// An internal fault surfaces as an error, never as a panic escaping to the
// caller.
func (*Backend) Generate(program *jsast.Node, opts backend.Options) (res *backend.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("go backend: internal error: %v", r)
		}
	}()

	t := NewTransformer(opts)
	file, err := t.Transform(program)
	if err != nil {
		return nil, fmt.Errorf("go backend: %w", err)
	}

	e := NewEmitter(opts)
	code := e.Emit(file)

	warnings := append([]string{}, t.Warnings()...)
	warnings = append(warnings, e.Warnings()...)
	return &backend.Result{Code: code, Warnings: warnings}, nil
}
