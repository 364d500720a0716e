// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package golang

import "sort"

// helperItems returns the synthesized helper functions requested during the
// transform, in deterministic order.
func (t *Transformer) helperItems() []Node {
	names := make([]string, 0, len(t.helpers))
	for name := range t.helpers {
		names = append(names, name)
	}
	sort.Strings(names)

	items := make([]Node, 0, len(names))
	for _, name := range names {
		if build, ok := helperBuilders[name]; ok {
			items = append(items, build())
		}
	}
	return items
}

var helperBuilders = map[string]func() *Function{
	"xorBytes": buildXorBytes,
	"fromHex":  buildFromHex,
	"gf256Mul": buildGF256Mul,
}

// buildXorBytes synthesizes:
//
//	func xorBytes(a []byte, b []byte) []byte {
//	    out := make([]byte, len(a))
//	    for i := range a {
//	        out[i] = a[i] ^ b[i]
//	    }
//	    return out
//	}
func buildXorBytes() *Function {
	a, b, out, i := &Ident{Name: "a"}, &Ident{Name: "b"}, &Ident{Name: "out"}, &Ident{Name: "i"}
	byteSlice := SliceOf(Prim("byte"))

	alloc := &ShortDecl{Name: "out", Value: &Call{Fn: &Ident{Name: "make"}, Args: []Node{
		&Ident{Name: byteSlice.String()},
		&Call{Fn: &Ident{Name: "len"}, Args: []Node{a}},
	}}}
	loop := &Range{Key: "i", X: a, Body: &Block{Stmts: []Node{
		&Assign{
			Target: &Index{X: out, I: i},
			Op:     "=",
			Value:  &Binary{Op: "^", X: &Index{X: a, I: i}, Y: &Index{X: b, I: i}},
		},
	}}}

	return &Function{
		Name:   "xorBytes",
		Params: []Param{{Name: "a", Type: byteSlice}, {Name: "b", Type: byteSlice}},
		Return: byteSlice,
		Body:   &Block{Stmts: []Node{alloc, loop, &Return{Values: []Node{out}}}},
	}
}

// buildFromHex synthesizes:
//
//	func fromHex(s string) []byte {
//	    out, _ := hex.DecodeString(s)
//	    return out
//	}
//
// The decode error is dropped on purpose; the source idiom returns an empty
// result for bad input.
func buildFromHex() *Function {
	return &Function{
		Name:   "fromHex",
		Params: []Param{{Name: "s", Type: Prim("string")}},
		Return: SliceOf(Prim("byte")),
		Body: &Block{Stmts: []Node{
			&ShortDecl{Name: "out, _", Value: &Call{
				Fn:   &Ident{Name: "hex.DecodeString"},
				Args: []Node{&Ident{Name: "s"}},
			}},
			&Return{Values: []Node{&Ident{Name: "out"}}},
		}},
	}
}

// buildGF256Mul synthesizes Russian-peasant multiplication in GF(2^8) with
// the AES reduction polynomial:
//
//	func gf256Mul(a byte, b byte) byte {
//	    var product byte
//	    for i := 0; i < 8; i++ {
//	        if b&1 != 0 {
//	            product ^= a
//	        }
//	        high := a & 128
//	        a <<= 1
//	        if high != 0 {
//	            a ^= 27
//	        }
//	        b >>= 1
//	    }
//	    return product
//	}
func buildGF256Mul() *Function {
	a, b, product, high := &Ident{Name: "a"}, &Ident{Name: "b"}, &Ident{Name: "product"}, &Ident{Name: "high"}
	one := &Literal{LitKind: LitInt, Int: 1}
	zero := &Literal{LitKind: LitInt}

	loopBody := &Block{Stmts: []Node{
		&If{
			Cond: &Binary{Op: "!=", X: &Binary{Op: "&", X: b, Y: one}, Y: zero},
			Then: &Block{Stmts: []Node{&Assign{Target: product, Op: "^=", Value: a}}},
		},
		&ShortDecl{Name: "high", Value: &Binary{Op: "&", X: a, Y: &Literal{LitKind: LitInt, Int: 128}}},
		&Assign{Target: a, Op: "<<=", Value: one},
		&If{
			Cond: &Binary{Op: "!=", X: high, Y: zero},
			Then: &Block{Stmts: []Node{&Assign{Target: a, Op: "^=", Value: &Literal{LitKind: LitInt, Int: 27}}}},
		},
		&Assign{Target: b, Op: ">>=", Value: one},
	}}

	loop := &For{
		Init: &ShortDecl{Name: "i", Value: zero},
		Cond: &Binary{Op: "<", X: &Ident{Name: "i"}, Y: &Literal{LitKind: LitInt, Int: 8}},
		Post: &Assign{Target: &Ident{Name: "i"}, Op: "+=", Value: one},
		Body: loopBody,
	}

	return &Function{
		Name:   "gf256Mul",
		Params: []Param{{Name: "a", Type: Prim("byte")}, {Name: "b", Type: Prim("byte")}},
		Return: Prim("byte"),
		Body: &Block{Stmts: []Node{
			&Var{Name: "product", Type: Prim("byte")},
			loop,
			&Return{Values: []Node{product}},
		}},
	}
}
