// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package jsast models the ESTree-like JavaScript AST consumed by the
// transpiler backends. Nodes are decoded from the JSON produced by standard
// JavaScript parsers (acorn, esprima); polymorphic fields such as "body",
// "consequent" and "value" are normalized during decoding.
package jsast

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Position is a line/column pair inside the original JavaScript source.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// SourceLocation is the span of a node in the original source, kept as a
// backlink for diagnostics.
type SourceLocation struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Comment is a comment attached to a node by the upstream parser.
type Comment struct {
	Type  string `json:"type"` // "Line" or "Block"
	Value string `json:"value"`
}

// Node is a single ESTree node. One struct covers every node type in the
// supported subset; which fields are meaningful depends on Type.
type Node struct {
	Type string `json:"type"`

	// Identifier
	Name string `json:"name,omitempty"`

	// Literal: Value holds the scalar (float64, string, bool or nil),
	// Raw the original source text.
	Value any    `json:"-"`
	Raw   string `json:"raw,omitempty"`

	// Property, MethodDefinition: the value is itself a node.
	ValueNode *Node `json:"-"`

	// Functions, classes, declarators.
	ID         *Node   `json:"id,omitempty"`
	Params     []*Node `json:"params,omitempty"`
	SuperClass *Node   `json:"superClass,omitempty"`
	Kind       string  `json:"kind,omitempty"` // var/let/const, constructor/method/get/set
	Static     bool    `json:"static,omitempty"`

	// Body is the statement list when the parser supplies an array
	// (Program, BlockStatement, ClassBody). BodyNode is set when the body
	// is a single node (function bodies, loop bodies).
	Body     []*Node `json:"-"`
	BodyNode *Node   `json:"-"`

	// VariableDeclaration.
	Declarations []*Node `json:"declarations,omitempty"`
	Init         *Node   `json:"init,omitempty"`

	// Control flow.
	Test         *Node   `json:"test,omitempty"`
	Update       *Node   `json:"update,omitempty"`
	Consequent   *Node   `json:"-"` // IfStatement, ConditionalExpression
	ConsList     []*Node `json:"-"` // SwitchCase
	Alternate    *Node   `json:"alternate,omitempty"`
	Discriminant *Node   `json:"discriminant,omitempty"`
	Cases        []*Node `json:"cases,omitempty"`
	Label        *Node   `json:"label,omitempty"`

	// TryStatement, CatchClause.
	Block     *Node `json:"block,omitempty"`
	Handler   *Node `json:"handler,omitempty"`
	Finalizer *Node `json:"finalizer,omitempty"`
	Param     *Node `json:"param,omitempty"`

	// Expressions.
	Expression *Node   `json:"expression,omitempty"`
	Operator   string  `json:"operator,omitempty"`
	Prefix     bool    `json:"prefix,omitempty"`
	Left       *Node   `json:"left,omitempty"`
	Right      *Node   `json:"right,omitempty"`
	Argument   *Node   `json:"argument,omitempty"`
	Arguments  []*Node `json:"arguments,omitempty"`
	Callee     *Node   `json:"callee,omitempty"`
	Object     *Node   `json:"object,omitempty"`
	Property   *Node   `json:"property,omitempty"`
	Computed   bool    `json:"computed,omitempty"`
	Elements    []*Node `json:"elements,omitempty"`
	Properties  []*Node `json:"properties,omitempty"`
	Key         *Node   `json:"key,omitempty"`
	Expressions []*Node `json:"expressions,omitempty"`

	// Side-channel metadata.
	TypeAnnotation  string          `json:"typeAnnotation,omitempty"`
	Loc             *SourceLocation `json:"loc,omitempty"`
	LeadingComments []Comment       `json:"leadingComments,omitempty"`
}

// nodeAlias mirrors Node for decoding, with the polymorphic fields held as
// raw JSON so UnmarshalJSON can normalize them.
type nodeAlias struct {
	Type string `json:"type"`

	Name string `json:"name"`
	Raw  string `json:"raw"`

	ID         *Node   `json:"id"`
	Params     []*Node `json:"params"`
	SuperClass *Node   `json:"superClass"`
	Kind       string  `json:"kind"`
	Static     bool    `json:"static"`

	Declarations []*Node `json:"declarations"`
	Init         *Node   `json:"init"`

	Test         *Node   `json:"test"`
	Update       *Node   `json:"update"`
	Alternate    *Node   `json:"alternate"`
	Discriminant *Node   `json:"discriminant"`
	Cases        []*Node `json:"cases"`
	Label        *Node   `json:"label"`

	Block     *Node `json:"block"`
	Handler   *Node `json:"handler"`
	Finalizer *Node `json:"finalizer"`
	Param     *Node `json:"param"`

	Expression *Node   `json:"expression"`
	Operator   string  `json:"operator"`
	Prefix     bool    `json:"prefix"`
	Left       *Node   `json:"left"`
	Right      *Node   `json:"right"`
	Argument   *Node   `json:"argument"`
	Arguments  []*Node `json:"arguments"`
	Callee     *Node   `json:"callee"`
	Object     *Node   `json:"object"`
	Property   *Node   `json:"property"`
	Computed   bool    `json:"computed"`
	Elements    []*Node `json:"elements"`
	Properties  []*Node `json:"properties"`
	Key         *Node   `json:"key"`
	Expressions []*Node `json:"expressions"`

	TypeAnnotation  string          `json:"typeAnnotation"`
	Loc             *SourceLocation `json:"loc"`
	LeadingComments []Comment       `json:"leadingComments"`

	Body       json.RawMessage `json:"body"`
	Consequent json.RawMessage `json:"consequent"`
	Value      json.RawMessage `json:"value"`
}

// UnmarshalJSON decodes an ESTree node, normalizing fields whose JSON shape
// varies by node type.
func (n *Node) UnmarshalJSON(data []byte) error {
	var aux nodeAlias
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	n.Type = aux.Type
	n.Name = aux.Name
	n.Raw = aux.Raw
	n.ID = aux.ID
	n.Params = aux.Params
	n.SuperClass = aux.SuperClass
	n.Kind = aux.Kind
	n.Static = aux.Static
	n.Declarations = aux.Declarations
	n.Init = aux.Init
	n.Test = aux.Test
	n.Update = aux.Update
	n.Alternate = aux.Alternate
	n.Discriminant = aux.Discriminant
	n.Cases = aux.Cases
	n.Label = aux.Label
	n.Block = aux.Block
	n.Handler = aux.Handler
	n.Finalizer = aux.Finalizer
	n.Param = aux.Param
	n.Expression = aux.Expression
	n.Operator = aux.Operator
	n.Prefix = aux.Prefix
	n.Left = aux.Left
	n.Right = aux.Right
	n.Argument = aux.Argument
	n.Arguments = aux.Arguments
	n.Callee = aux.Callee
	n.Object = aux.Object
	n.Property = aux.Property
	n.Computed = aux.Computed
	n.Elements = aux.Elements
	n.Properties = aux.Properties
	n.Key = aux.Key
	n.Expressions = aux.Expressions
	n.TypeAnnotation = aux.TypeAnnotation
	n.Loc = aux.Loc
	n.LeadingComments = aux.LeadingComments

	if len(aux.Body) > 0 {
		list, single, err := decodeNodeOrList(aux.Body)
		if err != nil {
			return fmt.Errorf("body of %s: %w", aux.Type, err)
		}
		n.Body = list
		n.BodyNode = single
	}
	if len(aux.Consequent) > 0 {
		list, single, err := decodeNodeOrList(aux.Consequent)
		if err != nil {
			return fmt.Errorf("consequent of %s: %w", aux.Type, err)
		}
		n.ConsList = list
		n.Consequent = single
	}
	if len(aux.Value) > 0 {
		if err := n.decodeValue(aux.Value); err != nil {
			return fmt.Errorf("value of %s: %w", aux.Type, err)
		}
	}
	return nil
}

// decodeNodeOrList decodes JSON that is either a node object or an array of
// node objects.
func decodeNodeOrList(raw json.RawMessage) ([]*Node, *Node, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return nil, nil, nil
	}
	if trimmed[0] == '[' {
		var list []*Node
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, nil, err
		}
		return list, nil, nil
	}
	var single Node
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, nil, err
	}
	return nil, &single, nil
}

// decodeValue decodes a "value" field that is either a child node
// (Property, MethodDefinition) or a scalar literal value.
func (n *Node) decodeValue(raw json.RawMessage) error {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 || string(trimmed) == "null" {
		n.Value = nil
		return nil
	}
	if trimmed[0] == '{' {
		var child Node
		if err := json.Unmarshal(raw, &child); err != nil {
			return err
		}
		n.ValueNode = &child
		return nil
	}
	return json.Unmarshal(raw, &n.Value)
}

// IsLiteral reports whether the node is a Literal.
func (n *Node) IsLiteral() bool { return n != nil && n.Type == "Literal" }

// IsIdentifier reports whether the node is an Identifier with the given name.
// An empty name matches any identifier.
func (n *Node) IsIdentifier(name string) bool {
	if n == nil || n.Type != "Identifier" {
		return false
	}
	return name == "" || n.Name == name
}

// Statements returns the node's statement list, unwrapping a BlockStatement
// body where the parser supplied a single node.
func (n *Node) Statements() []*Node {
	if n == nil {
		return nil
	}
	if n.Body != nil {
		return n.Body
	}
	if n.BodyNode != nil {
		if n.BodyNode.Type == "BlockStatement" {
			return n.BodyNode.Body
		}
		return []*Node{n.BodyNode}
	}
	return nil
}

// LiteralNumber returns the numeric value of a Literal node and whether the
// literal is numeric.
func (n *Node) LiteralNumber() (float64, bool) {
	if !n.IsLiteral() {
		return 0, false
	}
	f, ok := n.Value.(float64)
	return f, ok
}

// LiteralIsZero reports whether the node is the numeric literal 0.
func (n *Node) LiteralIsZero() bool {
	f, ok := n.LiteralNumber()
	return ok && f == 0
}
