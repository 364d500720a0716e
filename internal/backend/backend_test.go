// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package backend

import (
	"testing"

	"github.com/dacolabs/transpile/internal/jsast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBackend struct{ name string }

func (f *fakeBackend) Name() string          { return f.name }
func (f *fakeBackend) FileExtension() string { return "." + f.name }
func (f *fakeBackend) Generate(program *jsast.Node, opts Options) (*Result, error) {
	return &Result{Code: f.name}, nil
}

func TestRegistry(t *testing.T) {
	Register(&fakeBackend{name: "zig"})

	b, err := Get("zig")
	require.NoError(t, err)
	assert.Equal(t, ".zig", b.FileExtension())

	_, err = Get("cobol")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown language")

	assert.Contains(t, Available(), "zig")
}

func TestAvailable_Sorted(t *testing.T) {
	Register(&fakeBackend{name: "bbb"})
	Register(&fakeBackend{name: "aaa"})

	names := Available()
	for i := 1; i < len(names); i++ {
		assert.LessOrEqual(t, names[i-1], names[i])
	}
}

func TestOptions_Normalized(t *testing.T) {
	opts := Options{}.Normalized()

	assert.Equal(t, "    ", opts.Indent)
	assert.Equal(t, "\n", opts.LineEnding)
	assert.Equal(t, "2021", opts.Edition)
	assert.Equal(t, "generated", opts.PackageName)

	// The domain-operations table is merged in.
	assert.Equal(t, "uint32", opts.TypeKnowledge["OpCodes.RotL32"])
}

func TestOptions_Normalized_MergesKnowledge(t *testing.T) {
	opts := Options{
		Indent:        "\t",
		TypeKnowledge: map[string]string{"Cipher.encrypt": "byte[]", "OpCodes.RotL32": "qword"},
	}.Normalized()

	assert.Equal(t, "\t", opts.Indent)
	assert.Equal(t, "byte[]", opts.TypeKnowledge["Cipher.encrypt"])
	// Caller-supplied entries win over the built-ins.
	assert.Equal(t, "qword", opts.TypeKnowledge["OpCodes.RotL32"])
}

func TestCheckProgram(t *testing.T) {
	assert.Error(t, CheckProgram(nil))
	assert.Error(t, CheckProgram(&jsast.Node{Type: "Identifier"}))
	assert.NoError(t, CheckProgram(&jsast.Node{Type: "Program"}))
}
