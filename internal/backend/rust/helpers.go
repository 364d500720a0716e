// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package rust

import "sort"

// helperItems returns the synthesized support functions required by the
// domain-operation lowerings used in this translation, in stable order.
// Helpers are built as target AST like everything else; the pipeline never
// splices source text.
func (t *Transformer) helperItems() []Node {
	names := make([]string, 0, len(t.helpers))
	for name := range t.helpers {
		names = append(names, name)
	}
	sort.Strings(names)

	var items []Node
	for _, name := range names {
		if fn, ok := helperBuilders[name]; ok {
			items = append(items, fn())
		}
	}
	return items
}

var helperBuilders = map[string]func() *Function{
	"xor_arrays":   buildXorArrays,
	"bytes_to_hex": buildBytesToHex,
	"hex_to_bytes": buildHexToBytes,
	"gf256_mul":    buildGF256Mul,
}

// fn xor_arrays(a: &[u8], b: &[u8]) -> Vec<u8> {
//     return a.iter().zip(b.iter()).map(|(x, y)| x ^ y).collect();
// }
func buildXorArrays() *Function {
	u8 := Prim("u8")
	chain := &MethodCall{
		Recv: &MethodCall{
			Recv: &MethodCall{Recv: &Ident{Name: "a"}, Name: "iter"},
			Name: "zip",
			Args: []Node{&MethodCall{Recv: &Ident{Name: "b"}, Name: "iter"}},
		},
		Name: "map",
		Args: []Node{&Closure{
			Params: []string{"(x, y)"},
			Body:   &Binary{Op: "^", X: &Ident{Name: "x"}, Y: &Ident{Name: "y"}},
		}},
	}
	return &Function{
		Name:   "xor_arrays",
		Params: []Param{{Name: "a", Type: SliceOf(u8)}, {Name: "b", Type: SliceOf(u8)}},
		Return: VecOf(u8),
		Body:   &Block{Stmts: []Node{&Return{Value: &MethodCall{Recv: chain, Name: "collect"}}}},
	}
}

// fn bytes_to_hex(data: &[u8]) -> String {
//     return data.iter().map(|b| format!("{:02x}", b)).collect::<String>();
// }
func buildBytesToHex() *Function {
	chain := &MethodCall{
		Recv: &MethodCall{Recv: &Ident{Name: "data"}, Name: "iter"},
		Name: "map",
		Args: []Node{&Closure{
			Params: []string{"b"},
			Body:   &MacroCall{Name: "format", Args: []Node{&Literal{LitKind: LitStr, Str: "{:02x}"}, &Ident{Name: "b"}}},
		}},
	}
	return &Function{
		Name:   "bytes_to_hex",
		Params: []Param{{Name: "data", Type: SliceOf(Prim("u8"))}},
		Return: Prim("String"),
		Body:   &Block{Stmts: []Node{&Return{Value: &MethodCall{Recv: chain, Name: "collect::<String>"}}}},
	}
}

// fn hex_to_bytes(s: &str) -> Vec<u8> {
//     let mut out: Vec<u8> = vec![];
//     let mut i: usize = 0;
//     while i + 1 < s.len() {
//         out.push(u8::from_str_radix(&s[i..i + 2], 16).unwrap_or(0));
//         i += 2;
//     }
//     return out;
// }
func buildHexToBytes() *Function {
	i := &Ident{Name: "i"}
	pair := &Ref{X: &IndexExpr{
		X:     &Ident{Name: "s"},
		Index: &Binary{Op: "..", X: i, Y: &Binary{Op: "+", X: i, Y: &Literal{LitKind: LitInt, Int: 2}}},
	}}
	parse := &MethodCall{
		Recv: &Call{Fn: &Ident{Name: "u8::from_str_radix"}, Args: []Node{pair, &Literal{LitKind: LitInt, Int: 16}}},
		Name: "unwrap_or",
		Args: []Node{&Literal{LitKind: LitInt, Int: 0}},
	}
	loop := &While{
		Cond: &Binary{
			Op: "<",
			X:  &Binary{Op: "+", X: i, Y: &Literal{LitKind: LitInt, Int: 1}},
			Y:  &MethodCall{Recv: &Ident{Name: "s"}, Name: "len"},
		},
		Body: &Block{Stmts: []Node{
			&ExprStmt{X: &MethodCall{Recv: &Ident{Name: "out"}, Name: "push", Args: []Node{parse}}},
			&Assign{Target: i, Op: "+=", Value: &Literal{LitKind: LitInt, Int: 2}},
		}},
	}
	return &Function{
		Name:   "hex_to_bytes",
		Params: []Param{{Name: "s", Type: &Type{Ref: true, Elem: Prim("str"), Name: "str"}}},
		Return: VecOf(Prim("u8")),
		Body: &Block{Stmts: []Node{
			&Let{Name: "out", Mutable: true, Type: VecOf(Prim("u8")), Value: &MacroCall{Name: "vec"}},
			&Let{Name: "i", Mutable: true, Type: Prim("usize"), Value: &Literal{LitKind: LitInt, Int: 0}},
			loop,
			&Return{Value: &Ident{Name: "out"}},
		}},
	}
}

// fn gf256_mul(a: u8, b: u8) -> u8 {
//     let mut a = a; let mut b = b; let mut result: u8 = 0;
//     for _i in 0..8 {
//         if b & 1 != 0 { result ^= a; }
//         let high_bit = a & 0x80;
//         a = a.wrapping_shl(1);
//         if high_bit != 0 { a ^= 0x1b; }
//         b >>= 1;
//     }
//     return result;
// }
func buildGF256Mul() *Function {
	a, b, result := &Ident{Name: "a"}, &Ident{Name: "b"}, &Ident{Name: "result"}
	lit := func(v int64) Node { return &Literal{LitKind: LitInt, Int: v} }

	body := &Block{Stmts: []Node{
		&If{
			Cond: &Binary{Op: "!=", X: &Binary{Op: "&", X: b, Y: lit(1)}, Y: lit(0)},
			Then: &Block{Stmts: []Node{&Assign{Target: result, Op: "^=", Value: a}}},
		},
		&Let{Name: "high_bit", Type: Prim("u8"), Value: &Binary{Op: "&", X: a, Y: lit(0x80)}},
		&Assign{Target: a, Op: "=", Value: &MethodCall{Recv: a, Name: "wrapping_shl", Args: []Node{lit(1)}}},
		&If{
			// 0x1b is the AES irreducible polynomial.
			Cond: &Binary{Op: "!=", X: &Ident{Name: "high_bit"}, Y: lit(0)},
			Then: &Block{Stmts: []Node{&Assign{Target: a, Op: "^=", Value: lit(0x1b)}}},
		},
		&Assign{Target: b, Op: ">>=", Value: lit(1)},
	}}

	return &Function{
		Name:   "gf256_mul",
		Params: []Param{{Name: "a", Type: Prim("u8")}, {Name: "b", Type: Prim("u8")}},
		Return: Prim("u8"),
		Body: &Block{Stmts: []Node{
			&Let{Name: "a", Mutable: true, Value: a},
			&Let{Name: "b", Mutable: true, Value: b},
			&Let{Name: "result", Mutable: true, Type: Prim("u8"), Value: lit(0)},
			&ForRange{Var: "_i", From: lit(0), To: lit(8), Body: body},
			&Return{Value: result},
		}},
	}
}
