// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package infer holds the target-independent half of type inference: the
// alias table for domain type hints, structural inference from initializer
// expressions, and the name-based heuristics. Backends map the resulting
// abstract classes onto concrete target types.
//
// Rule precedence is fixed and explicit: explicit annotation, then the
// domain-knowledge table, then structural inference, then the name
// heuristics, then the default 32-bit unsigned working type.
package infer

import (
	"strings"

	"github.com/dacolabs/transpile/internal/jsast"
)

// Class is an abstract, target-independent type class.
type Class int

// Type classes, from fixed-width integers to the dynamic fallback.
const (
	Unknown Class = iota
	U8
	U16
	U32
	U64
	I8
	I16
	I32
	I64
	F32
	F64
	Bool
	Char
	String
	Size  // index/length working type (usize, int)
	Bytes // byte collection
	Array // collection; Elem describes the element
	Map   // string-keyed map; Elem describes the value
	Any   // dynamic fallback where the target has one
)

// Hint is a parsed type hint: a class plus an element hint for collections.
type Hint struct {
	Class Class
	Elem  *Hint
}

// aliases translates the domain-specific type names used in annotations to
// canonical classes. Width-bearing names map to fixed-width classes; the
// dynamically-sized targets collapse these later.
var aliases = map[string]Class{
	"byte":    U8,
	"uint8":   U8,
	"u8":      U8,
	"word":    U16,
	"ushort":  U16,
	"uint16":  U16,
	"u16":     U16,
	"dword":   U32,
	"uint":    U32,
	"uint32":  U32,
	"u32":     U32,
	"qword":   U64,
	"ulong":   U64,
	"uint64":  U64,
	"u64":     U64,
	"sbyte":   I8,
	"int8":    I8,
	"i8":      I8,
	"short":   I16,
	"int16":   I16,
	"i16":     I16,
	"int":     I32,
	"int32":   I32,
	"i32":     I32,
	"long":    I64,
	"int64":   I64,
	"i64":     I64,
	"float":   F32,
	"f32":     F32,
	"double":  F64,
	"number":  F64,
	"f64":     F64,
	"bool":    Bool,
	"boolean": Bool,
	"char":    Char,
	"string":  String,
	"size":    Size,
	"usize":   Size,
	"any":     Any,
	"object":  Map,
}

// ParseHint parses a type-annotation string ("uint32", "byte[]",
// "word[][]") into a Hint. Unrecognized names yield Unknown, never an error;
// the caller falls through to the next inference rule.
func ParseHint(hint string) Hint {
	hint = strings.TrimSpace(hint)
	if hint == "" {
		return Hint{Class: Unknown}
	}
	if strings.HasSuffix(hint, "[]") {
		elem := ParseHint(strings.TrimSuffix(hint, "[]"))
		if elem.Class == Unknown {
			elem = Hint{Class: U8}
		}
		return Hint{Class: Array, Elem: &elem}
	}
	if c, ok := aliases[strings.ToLower(hint)]; ok {
		return Hint{Class: c}
	}
	return Hint{Class: Unknown}
}

// FromExpr infers a type class from the shape of an initializing expression.
// Returns Unknown when the shape says nothing.
func FromExpr(n *jsast.Node) Hint {
	if n == nil {
		return Hint{Class: Unknown}
	}
	switch n.Type {
	case "Literal":
		switch v := n.Value.(type) {
		case float64:
			if v != float64(int64(v)) || strings.Contains(n.Raw, ".") {
				return Hint{Class: F64}
			}
			return Hint{Class: U32}
		case string:
			return Hint{Class: String}
		case bool:
			return Hint{Class: Bool}
		default:
			return Hint{Class: Unknown}
		}
	case "ArrayExpression":
		if len(n.Elements) == 0 {
			return Hint{Class: Array, Elem: &Hint{Class: U8}}
		}
		elem := FromExpr(n.Elements[0])
		if elem.Class == Unknown {
			elem = Hint{Class: U8}
		}
		return Hint{Class: Array, Elem: &elem}
	case "ObjectExpression":
		return Hint{Class: Map, Elem: &Hint{Class: Any}}
	case "UnaryExpression":
		if n.Operator == "!" {
			return Hint{Class: Bool}
		}
		return FromExpr(n.Argument)
	case "BinaryExpression":
		switch n.Operator {
		case "==", "!=", "===", "!==", "<", ">", "<=", ">=":
			return Hint{Class: Bool}
		}
		left := FromExpr(n.Left)
		if left.Class != Unknown {
			return left
		}
		return FromExpr(n.Right)
	case "LogicalExpression":
		return Hint{Class: Bool}
	}
	return Hint{Class: Unknown}
}

// NameRule is one entry of the ordered name-heuristic table.
type NameRule struct {
	// Match reports whether the rule applies to the identifier.
	Match func(name string) bool
	// Hint is the inferred type class when the rule applies.
	Hint Hint
}

func containsAny(substrings ...string) func(string) bool {
	return func(name string) bool {
		lower := strings.ToLower(name)
		for _, s := range substrings {
			if strings.Contains(lower, s) {
				return true
			}
		}
		return false
	}
}

func equalsAny(names ...string) func(string) bool {
	return func(name string) bool {
		for _, n := range names {
			if name == n {
				return true
			}
		}
		return false
	}
}

// NameRules is the ordered name-heuristic table. Earlier rules win. Biased
// toward cryptographic code: buffer-ish names become byte collections,
// counter-ish names the size type, everything else the 32-bit working type.
var NameRules = []NameRule{
	{Match: containsAny("key", "data", "input", "output", "block", "buffer", "state"),
		Hint: Hint{Class: Array, Elem: &Hint{Class: U8}}},
	{Match: containsAny("index", "length", "size", "count", "position", "offset"),
		Hint: Hint{Class: Size}},
	{Match: equalsAny("i", "j", "k", "n"), Hint: Hint{Class: Size}},
}

// FromName applies the name-heuristic table to an identifier. The final
// fallback is U32, the domain's standard working type.
func FromName(name string) Hint {
	for _, rule := range NameRules {
		if rule.Match(name) {
			return rule.Hint
		}
	}
	return Hint{Class: U32}
}

// Resolve runs the full inference chain for a variable or parameter:
// annotation, then the type-knowledge table, then expression shape, then
// name heuristics. The zero Hint result never escapes: the final fallback
// is the name heuristic's default.
func Resolve(annotation string, init *jsast.Node, name string, knowledge map[string]string) Hint {
	if h := ParseHint(annotation); h.Class != Unknown {
		return h
	}
	if init != nil && knowledge != nil {
		if op := callKnowledgeName(init); op != "" {
			if ret, ok := knowledge[op]; ok {
				if h := ParseHint(ret); h.Class != Unknown {
					return h
				}
			}
		}
	}
	if h := FromExpr(init); h.Class != Unknown {
		return h
	}
	if name == "" {
		// Nothing to run the heuristics on; the strict-types policy of the
		// backend decides what Unknown becomes.
		return Hint{Class: Unknown}
	}
	return FromName(name)
}

// callKnowledgeName extracts the "Receiver.Method" key for a call expression
// so its declared return type can be looked up in the knowledge table.
func callKnowledgeName(n *jsast.Node) string {
	if n == nil || n.Type != "CallExpression" || n.Callee == nil {
		return ""
	}
	c := n.Callee
	if c.Type == "MemberExpression" && !c.Computed && c.Object.IsIdentifier("") && c.Property != nil {
		return c.Object.Name + "." + c.Property.Name
	}
	if c.Type == "Identifier" {
		return c.Name
	}
	return ""
}
