// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package rust

import (
	"strings"

	"github.com/dacolabs/transpile/internal/infer"
)

// Type is an immutable Rust type descriptor. Composing a new type wraps an
// existing descriptor; descriptors are never mutated after construction.
type Type struct {
	Name     string // primitive or named type ("u32", "String")
	Slice    bool   // &[Elem]
	Vec      bool   // Vec<Elem>
	Optional bool   // Option<inner>
	Ref      bool   // &T
	Mut      bool   // &mut T (only meaningful with Ref or Slice)
	Elem     *Type  // element type for Slice/Vec, inner type for Optional
	Args     []*Type
}

// Prim returns a primitive or named type.
func Prim(name string) *Type { return &Type{Name: name} }

// VecOf wraps elem in an owned Vec.
func VecOf(elem *Type) *Type { return &Type{Vec: true, Elem: elem} }

// SliceOf wraps elem in a borrowed slice.
func SliceOf(elem *Type) *Type { return &Type{Slice: true, Elem: elem} }

// OptionOf wraps inner in Option.
func OptionOf(inner *Type) *Type { return &Type{Optional: true, Elem: inner} }

// RefTo returns a shared reference to t.
func RefTo(t *Type) *Type { return &Type{Ref: true, Elem: t, Name: t.Name} }

// String renders the descriptor as Rust source. Pure function of the
// descriptor's fields.
func (t *Type) String() string {
	if t == nil {
		return "()"
	}
	switch {
	case t.Optional:
		return "Option<" + t.Elem.String() + ">"
	case t.Slice:
		if t.Mut {
			return "&mut [" + t.Elem.String() + "]"
		}
		return "&[" + t.Elem.String() + "]"
	case t.Vec:
		return "Vec<" + t.Elem.String() + ">"
	case t.Ref:
		if t.Mut {
			return "&mut " + t.Elem.String()
		}
		return "&" + t.Elem.String()
	}
	if len(t.Args) > 0 {
		args := make([]string, len(t.Args))
		for i, a := range t.Args {
			args[i] = a.String()
		}
		return t.Name + "<" + strings.Join(args, ", ") + ">"
	}
	return t.Name
}

// IsInteger reports whether the type is a fixed-width integer or usize.
func (t *Type) IsInteger() bool {
	if t == nil {
		return false
	}
	switch t.Name {
	case "u8", "u16", "u32", "u64", "i8", "i16", "i32", "i64", "usize", "isize":
		return !t.Slice && !t.Vec && !t.Optional && !t.Ref
	}
	return false
}

// IsFloat reports whether the type is a floating-point primitive.
func (t *Type) IsFloat() bool {
	return t != nil && (t.Name == "f32" || t.Name == "f64") && !t.Slice && !t.Vec && !t.Optional
}

// IsCollection reports whether the type is a Vec or slice.
func (t *Type) IsCollection() bool {
	return t != nil && (t.Vec || t.Slice)
}

// classTypes maps abstract inference classes to Rust primitives.
var classTypes = map[infer.Class]string{
	infer.U8:     "u8",
	infer.U16:    "u16",
	infer.U32:    "u32",
	infer.U64:    "u64",
	infer.I8:     "i8",
	infer.I16:    "i16",
	infer.I32:    "i32",
	infer.I64:    "i64",
	infer.F32:    "f32",
	infer.F64:    "f64",
	infer.Bool:   "bool",
	infer.Char:   "char",
	infer.String: "String",
	infer.Size:   "usize",
}

// typeFromHint maps an abstract hint onto a concrete Rust descriptor.
// Rust has no dynamic fallback, so Unknown and Any resolve to u32, the
// domain's working type, regardless of the strict-types flag.
func typeFromHint(h infer.Hint, zeroCopy bool) *Type {
	switch h.Class {
	case infer.Array, infer.Bytes:
		elem := infer.Hint{Class: infer.U8}
		if h.Elem != nil {
			elem = *h.Elem
		}
		inner := typeFromHint(elem, false)
		if zeroCopy {
			return SliceOf(inner)
		}
		return VecOf(inner)
	case infer.Map:
		val := infer.Hint{Class: infer.U32}
		if h.Elem != nil && h.Elem.Class != infer.Any {
			val = *h.Elem
		}
		return &Type{Name: "HashMap", Args: []*Type{Prim("String"), typeFromHint(val, false)}}
	case infer.Unknown, infer.Any:
		return Prim("u32")
	}
	if name, ok := classTypes[h.Class]; ok {
		return Prim(name)
	}
	return Prim("u32")
}
