// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package golang

import "github.com/dacolabs/transpile/internal/infer"

// Type is a Go type descriptor. Rendering is a pure function of the fields.
type Type struct {
	Name  string
	Slice bool  // []Elem
	Map   bool  // map[string]Elem
	Elem  *Type // element type for Slice and Map
}

// Prim returns a named primitive type.
func Prim(name string) *Type { return &Type{Name: name} }

// SliceOf returns []elem.
func SliceOf(elem *Type) *Type { return &Type{Slice: true, Elem: elem} }

// MapOf returns map[string]elem.
func MapOf(elem *Type) *Type { return &Type{Map: true, Elem: elem} }

// String renders the type.
func (t *Type) String() string {
	switch {
	case t == nil:
		return "any"
	case t.Slice:
		return "[]" + t.Elem.String()
	case t.Map:
		return "map[string]" + t.Elem.String()
	}
	return t.Name
}

// IsInteger reports whether the type is a fixed-width or size integer.
func (t *Type) IsInteger() bool {
	if t == nil || t.Slice || t.Map {
		return false
	}
	switch t.Name {
	case "uint8", "uint16", "uint32", "uint64", "int8", "int16", "int32", "int64", "int", "uint", "byte", "rune":
		return true
	}
	return false
}

// IsFloat reports whether the type is a floating-point type.
func (t *Type) IsFloat() bool {
	return t != nil && !t.Slice && !t.Map && (t.Name == "float32" || t.Name == "float64")
}

// IsCollection reports whether the type is a slice or map.
func (t *Type) IsCollection() bool {
	return t != nil && (t.Slice || t.Map)
}

// IsString reports whether the type is string.
func (t *Type) IsString() bool {
	return t != nil && !t.Slice && !t.Map && t.Name == "string"
}

var classTypes = map[infer.Class]string{
	infer.U8:     "byte",
	infer.U16:    "uint16",
	infer.U32:    "uint32",
	infer.U64:    "uint64",
	infer.I8:     "int8",
	infer.I16:    "int16",
	infer.I32:    "int32",
	infer.I64:    "int64",
	infer.F32:    "float32",
	infer.F64:    "float64",
	infer.Bool:   "bool",
	infer.Char:   "rune",
	infer.String: "string",
	infer.Size:   "int",
}

// typeFromHint maps an abstract type hint onto a Go type. Unknown falls back
// to any unless strict mode pins it to the 32-bit working type.
func typeFromHint(h infer.Hint, strict bool) *Type {
	switch h.Class {
	case infer.Bytes:
		return SliceOf(Prim("byte"))
	case infer.Array:
		if h.Elem != nil {
			return SliceOf(typeFromHint(*h.Elem, strict))
		}
		return SliceOf(Prim("byte"))
	case infer.Map:
		if h.Elem != nil {
			return MapOf(typeFromHint(*h.Elem, strict))
		}
		return MapOf(Prim("any"))
	case infer.Unknown, infer.Any:
		if strict {
			return Prim("uint32")
		}
		return Prim("any")
	}
	if name, ok := classTypes[h.Class]; ok {
		return Prim(name)
	}
	return Prim("uint32")
}
