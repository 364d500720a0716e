// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package infer

import (
	"testing"

	"github.com/dacolabs/transpile/internal/jsast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func num(v float64, raw string) *jsast.Node {
	return &jsast.Node{Type: "Literal", Value: v, Raw: raw}
}

func TestParseHint(t *testing.T) {
	tests := []struct {
		in   string
		want Class
	}{
		{"uint32", U32},
		{"byte", U8},
		{"word", U16},
		{"qword", U64},
		{"double", F64},
		{"boolean", Bool},
		{"string", String},
		{"usize", Size},
		{"", Unknown},
		{"mystery", Unknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseHint(tt.in).Class, "hint %q", tt.in)
	}
}

func TestParseHint_Array(t *testing.T) {
	h := ParseHint("byte[]")
	assert.Equal(t, Array, h.Class)
	require.NotNil(t, h.Elem)
	assert.Equal(t, U8, h.Elem.Class)

	nested := ParseHint("word[][]")
	assert.Equal(t, Array, nested.Class)
	require.NotNil(t, nested.Elem)
	assert.Equal(t, Array, nested.Elem.Class)
	require.NotNil(t, nested.Elem.Elem)
	assert.Equal(t, U16, nested.Elem.Elem.Class)
}

func TestFromExpr_Literals(t *testing.T) {
	assert.Equal(t, U32, FromExpr(num(42, "42")).Class)
	assert.Equal(t, F64, FromExpr(num(0.5, "0.5")).Class)
	assert.Equal(t, F64, FromExpr(num(1, "1.0")).Class)
	assert.Equal(t, String, FromExpr(&jsast.Node{Type: "Literal", Value: "abc", Raw: `"abc"`}).Class)
	assert.Equal(t, Bool, FromExpr(&jsast.Node{Type: "Literal", Value: true, Raw: "true"}).Class)
	assert.Equal(t, Unknown, FromExpr(nil).Class)
}

func TestFromExpr_Array(t *testing.T) {
	empty := FromExpr(&jsast.Node{Type: "ArrayExpression"})
	assert.Equal(t, Array, empty.Class)
	require.NotNil(t, empty.Elem)
	assert.Equal(t, U8, empty.Elem.Class)

	strs := FromExpr(&jsast.Node{
		Type:     "ArrayExpression",
		Elements: []*jsast.Node{{Type: "Literal", Value: "x", Raw: `"x"`}},
	})
	assert.Equal(t, Array, strs.Class)
	require.NotNil(t, strs.Elem)
	assert.Equal(t, String, strs.Elem.Class)
}

func TestFromExpr_Comparison(t *testing.T) {
	cmp := &jsast.Node{
		Type:     "BinaryExpression",
		Operator: "<",
		Left:     num(1, "1"),
		Right:    num(2, "2"),
	}
	assert.Equal(t, Bool, FromExpr(cmp).Class)

	sum := &jsast.Node{
		Type:     "BinaryExpression",
		Operator: "+",
		Left:     num(1, "1"),
		Right:    num(2, "2"),
	}
	assert.Equal(t, U32, FromExpr(sum).Class)
}

func TestFromName(t *testing.T) {
	tests := []struct {
		name string
		want Class
	}{
		{"roundKey", Array},
		{"inputBuffer", Array},
		{"blockSize", Array}, // "block" wins over "size", earlier rule
		{"offset", Size},
		{"i", Size},
		{"temp", U32},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FromName(tt.name).Class, "name %q", tt.name)
	}
}

func TestResolve_Precedence(t *testing.T) {
	// Annotation beats everything.
	h := Resolve("word", num(1.5, "1.5"), "buffer", nil)
	assert.Equal(t, U16, h.Class)

	// Knowledge table beats expression shape.
	call := &jsast.Node{
		Type: "CallExpression",
		Callee: &jsast.Node{
			Type:     "MemberExpression",
			Object:   &jsast.Node{Type: "Identifier", Name: "OpCodes"},
			Property: &jsast.Node{Type: "Identifier", Name: "BytesToHex"},
		},
	}
	h = Resolve("", call, "data", map[string]string{"OpCodes.BytesToHex": "string"})
	assert.Equal(t, String, h.Class)

	// Expression shape beats name heuristics.
	h = Resolve("", num(0.5, "0.5"), "buffer", nil)
	assert.Equal(t, F64, h.Class)

	// Name heuristics beat the default.
	h = Resolve("", nil, "count", nil)
	assert.Equal(t, Size, h.Class)

	// The default is the 32-bit working type.
	h = Resolve("", nil, "x", nil)
	assert.Equal(t, U32, h.Class)
}

func TestResolve_NoName(t *testing.T) {
	h := Resolve("", nil, "", nil)
	assert.Equal(t, Unknown, h.Class)
}
