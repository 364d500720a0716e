// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package jsast

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const addFunctionDoc = `{
  "type": "Program",
  "body": [
    {
      "type": "FunctionDeclaration",
      "id": {"type": "Identifier", "name": "add"},
      "params": [
        {"type": "Identifier", "name": "a"},
        {"type": "Identifier", "name": "b"}
      ],
      "body": {
        "type": "BlockStatement",
        "body": [
          {
            "type": "ReturnStatement",
            "argument": {
              "type": "BinaryExpression",
              "operator": "+",
              "left": {"type": "Identifier", "name": "a"},
              "right": {"type": "Identifier", "name": "b"}
            }
          }
        ]
      }
    }
  ]
}`

func TestDecode_Program(t *testing.T) {
	root, err := Decode([]byte(addFunctionDoc))
	require.NoError(t, err)

	assert.Equal(t, "Program", root.Type)
	require.Len(t, root.Body, 1)

	fn := root.Body[0]
	assert.Equal(t, "FunctionDeclaration", fn.Type)
	assert.Equal(t, "add", fn.ID.Name)
	require.Len(t, fn.Params, 2)

	stmts := fn.Statements()
	require.Len(t, stmts, 1)
	assert.Equal(t, "ReturnStatement", stmts[0].Type)
	assert.Equal(t, "+", stmts[0].Argument.Operator)
}

func TestDecode_LiteralValues(t *testing.T) {
	doc := `{
  "type": "Program",
  "body": [
    {
      "type": "ExpressionStatement",
      "expression": {"type": "Literal", "value": 42, "raw": "42"}
    }
  ]
}`
	root, err := Decode([]byte(doc))
	require.NoError(t, err)

	lit := root.Body[0].Expression
	v, ok := lit.LiteralNumber()
	require.True(t, ok)
	assert.Equal(t, 42.0, v)
	assert.Equal(t, "42", lit.Raw)
}

func TestDecode_InvalidJSON(t *testing.T) {
	_, err := Decode([]byte("{not json"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestDecode_NotAProgram(t *testing.T) {
	_, err := Decode([]byte(`{"type": "FunctionDeclaration", "body": []}`))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not a Program AST")
}

func TestDecode_MissingBody(t *testing.T) {
	_, err := Decode([]byte(`{"type": "Program"}`))
	assert.Error(t, err)
}

func TestLoader_LoadFile(t *testing.T) {
	fsys := fstest.MapFS{
		"cipher.ast.json": {Data: []byte(addFunctionDoc)},
	}

	l := NewLoader(fsys)
	root, err := l.LoadFile("cipher.ast.json")
	require.NoError(t, err)
	assert.Equal(t, "Program", root.Type)
}

func TestLoader_LoadFile_NotFound(t *testing.T) {
	l := NewLoader(fstest.MapFS{})
	_, err := l.LoadFile("missing.json")
	assert.Error(t, err)
}

func TestLoader_LoadFile_Malformed(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.json": {Data: []byte(`{"type": "Identifier"}`)},
	}

	l := NewLoader(fsys)
	_, err := l.LoadFile("bad.json")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "bad.json")
}