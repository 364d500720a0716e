// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package rust

import (
	"math"
	"strings"

	"github.com/dacolabs/transpile/internal/infer"
	"github.com/dacolabs/transpile/internal/jsast"
	"github.com/dacolabs/transpile/internal/naming"
	"github.com/dacolabs/transpile/internal/opcodes"
)

func (t *Transformer) transformExpr(n *jsast.Node) Node {
	if n == nil {
		return &Placeholder{Message: "missing expression"}
	}
	switch n.Type {
	case "Literal":
		return t.transformLiteral(n)
	case "Identifier":
		if n.Name == "undefined" {
			return &Ident{Name: "None"}
		}
		return &Ident{Name: t.identName(n.Name)}
	case "ThisExpression":
		return &Ident{Name: "self"}
	case "BinaryExpression":
		return t.transformBinary(n)
	case "LogicalExpression":
		return &Binary{Op: n.Operator, X: t.transformCond(n.Left), Y: t.transformCond(n.Right)}
	case "UnaryExpression":
		return t.transformUnary(n)
	case "UpdateExpression":
		t.warnf("update expression used as a value; emitted operand only")
		return t.transformExpr(n.Argument)
	case "AssignmentExpression":
		t.warnf("assignment used as a value is not supported in Rust output")
		return &Placeholder{Message: "assignment expression in value position"}
	case "MemberExpression":
		return t.transformMember(n)
	case "CallExpression":
		return t.transformCall(n)
	case "NewExpression":
		return t.transformNew(n)
	case "ArrayExpression":
		return t.transformArray(n)
	case "ObjectExpression":
		t.warnf("object literal has no Rust equivalent; construct a HashMap manually")
		return &Placeholder{Message: "object literal"}
	case "ConditionalExpression":
		return &IfExpr{
			Cond: t.transformCond(n.Test),
			Then: t.transformExpr(n.Consequent),
			Else: t.transformExpr(n.Alternate),
		}
	case "ArrowFunctionExpression", "FunctionExpression":
		return t.transformClosure(n)
	case "SpreadElement":
		t.warnf("spread element outside a call is not supported")
		return &Placeholder{Message: "spread element"}
	case "TemplateLiteral":
		t.warnf("template literal approximated; interpolation dropped")
		return &Placeholder{Message: "template literal"}
	case "SequenceExpression":
		t.warnf("sequence expression: only the last operand is kept")
		if len(n.Expressions) > 0 {
			return t.transformExpr(n.Expressions[len(n.Expressions)-1])
		}
		return &Placeholder{Message: "empty sequence expression"}
	}
	t.warnf("unsupported expression type %s", n.Type)
	return &Placeholder{Message: "unsupported expression: " + n.Type}
}

func (t *Transformer) transformLiteral(n *jsast.Node) Node {
	switch v := n.Value.(type) {
	case float64:
		if v == math.Trunc(v) && !strings.Contains(n.Raw, ".") && !strings.ContainsAny(n.Raw, "eE") {
			return &Literal{LitKind: LitInt, Int: int64(v), Suffix: "u32"}
		}
		return &Literal{LitKind: LitFloat, Float: v}
	case string:
		return &Literal{LitKind: LitStr, Str: v}
	case bool:
		return &Literal{LitKind: LitBool, Bool: v}
	case nil:
		return &Ident{Name: "None"}
	}
	t.warnf("unsupported literal %q", n.Raw)
	return &Placeholder{Message: "unsupported literal: " + n.Raw}
}

func (t *Transformer) transformUnary(n *jsast.Node) Node {
	switch n.Operator {
	case "-":
		// Negative integer literals cannot keep the unsigned suffix.
		if lit, ok := t.transformExpr(n.Argument).(*Literal); ok && lit.LitKind == LitInt {
			return &Literal{LitKind: LitInt, Int: -lit.Int, Suffix: "i32"}
		}
		return &Unary{Op: "-", X: t.transformExpr(n.Argument)}
	case "+":
		return t.transformExpr(n.Argument)
	case "!":
		return &Unary{Op: "!", X: t.transformCond(n.Argument)}
	case "~":
		// Rust uses ! for bitwise complement on integers.
		return &Unary{Op: "!", X: t.transformExpr(n.Argument)}
	}
	t.warnf("unsupported unary operator %q", n.Operator)
	return &Placeholder{Message: "unsupported unary operator: " + n.Operator}
}

// transformBinary applies the arithmetic policy: wrapping method calls for
// + - * on integers (cryptographic code relies on silent wraparound and
// native Rust operators panic on debug overflow), the >>> lowering, and
// strict-equality collapse.
func (t *Transformer) transformBinary(n *jsast.Node) Node {
	op := n.Operator
	switch op {
	case "===":
		op = "=="
	case "!==":
		op = "!="
	}

	if op == ">>>" {
		// x >>> 0 is the JavaScript uint32-coercion idiom: the operand is
		// already unsigned here, so elide the shift entirely.
		if n.Right.LiteralIsZero() {
			return t.transformExpr(n.Left)
		}
		return &Binary{
			Op: ">>",
			X:  &Cast{X: t.transformExpr(n.Left), To: Prim("u32")},
			Y:  t.transformExpr(n.Right),
		}
	}

	left := t.transformExpr(n.Left)
	right := t.transformExpr(n.Right)

	switch op {
	case "+", "-", "*":
		lt, rt := t.inferExprType(n.Left), t.inferExprType(n.Right)
		if lt.IsFloat() || rt.IsFloat() {
			return &Binary{Op: op, X: left, Y: right}
		}
		if op == "+" && (isStringType(lt) || isStringType(rt) || isStringLit(n.Left) || isStringLit(n.Right)) {
			return &MacroCall{Name: "format", Args: []Node{&Literal{LitKind: LitStr, Str: "{}{}"}, left, right}}
		}
		method := map[string]string{"+": "wrapping_add", "-": "wrapping_sub", "*": "wrapping_mul"}[op]
		return &MethodCall{Recv: left, Name: method, Args: []Node{right}}
	case "==", "!=", "<", ">", "<=", ">=":
		// An unsuffixed literal adopts the other operand's type; keeping the
		// u32 suffix would mistype comparisons against usize operands.
		return &Binary{Op: op, X: stripSuffix(left), Y: stripSuffix(right)}
	case "in", "instanceof":
		t.warnf("operator %q has no Rust lowering", op)
		return &Placeholder{Message: "unsupported operator: " + op}
	}
	return &Binary{Op: op, X: left, Y: right}
}

func isStringLit(n *jsast.Node) bool {
	if !n.IsLiteral() {
		return false
	}
	_, ok := n.Value.(string)
	return ok
}

func isStringType(t *Type) bool {
	return t != nil && (t.Name == "String" || t.Name == "str") && !t.Vec && !t.Slice
}

func (t *Transformer) transformMember(n *jsast.Node) Node {
	if n.Computed {
		recv := t.transformExpr(n.Object)
		return &IndexExpr{X: recv, Index: t.indexExpr(n.Property)}
	}
	prop := n.Property.Name
	if n.Object != nil && n.Object.Type == "ThisExpression" {
		return &FieldExpr{X: &Ident{Name: "self"}, Name: naming.ToSnakeCase(naming.StripPrivatePrefix(prop))}
	}
	if prop == "length" {
		return &MethodCall{Recv: t.transformExpr(n.Object), Name: "len"}
	}
	if n.Object.IsIdentifier("Math") {
		switch prop {
		case "PI":
			return &Ident{Name: "std::f64::consts::PI"}
		case "E":
			return &Ident{Name: "std::f64::consts::E"}
		}
	}
	return &FieldExpr{X: t.transformExpr(n.Object), Name: naming.ToSnakeCase(naming.StripPrivatePrefix(prop))}
}

// indexExpr renders an index operand as usize. Literals and size-typed
// variables pass through; everything else gets an explicit cast.
func (t *Transformer) indexExpr(n *jsast.Node) Node {
	if lit, ok := n.LiteralNumber(); ok && lit == math.Trunc(lit) {
		return &Literal{LitKind: LitInt, Int: int64(lit)}
	}
	expr := t.transformExpr(n)
	if typ := t.inferExprType(n); typ != nil && typ.Name == "usize" {
		return expr
	}
	return &Cast{X: expr, To: Prim("usize")}
}

func (t *Transformer) transformNew(n *jsast.Node) Node {
	name := "Unknown"
	if n.Callee != nil && n.Callee.Type == "Identifier" {
		name = naming.ToPascalCase(n.Callee.Name)
	}
	args := make([]Node, 0, len(n.Arguments))
	for _, a := range n.Arguments {
		args = append(args, t.transformExpr(a))
	}
	return &Call{Fn: &Ident{Name: name + "::new"}, Args: args}
}

func (t *Transformer) transformArray(n *jsast.Node) Node {
	lit := &ArrayLit{IsVec: true}
	for _, e := range n.Elements {
		lit.Elems = append(lit.Elems, t.transformExpr(e))
	}
	return lit
}

func (t *Transformer) transformClosure(n *jsast.Node) Node {
	t.pushScope()
	// Returns inside the closure are its own; they must not settle the
	// enclosing function's return type.
	savedRet, savedSet := t.retType, t.retSet
	t.retType, t.retSet = nil, false

	var params []string
	for _, p := range n.Params {
		if p.Type == "Identifier" {
			hint := infer.Resolve(p.TypeAnnotation, nil, p.Name, t.opts.TypeKnowledge)
			params = append(params, t.declare(p.Name, typeFromHint(hint, false)))
		}
	}
	var body Node
	if n.BodyNode != nil && n.BodyNode.Type == "BlockStatement" {
		body = t.transformStmts(n.BodyNode.Body)
	} else if n.BodyNode != nil {
		body = t.transformExpr(n.BodyNode)
	} else {
		body = &Block{}
	}

	t.retType, t.retSet = savedRet, savedSet
	t.popScope()
	return &Closure{Params: params, Body: body}
}

// transformCallStmt handles calls whose lowering only makes sense in
// statement position. Returns nil when the general expression path applies.
func (t *Transformer) transformCallStmt(n *jsast.Node) Node {
	c := n.Callee
	if c == nil || c.Type != "MemberExpression" || c.Computed || c.Property == nil {
		return nil
	}
	if c.Object.IsIdentifier(opcodes.Receiver) && c.Property.Name == string(opcodes.ClearArray) && len(n.Arguments) == 1 {
		return &ExprStmt{X: &MethodCall{
			Recv: t.transformExpr(n.Arguments[0]),
			Name: "fill",
			Args: []Node{&Literal{LitKind: LitInt, Int: 0}},
		}}
	}
	if c.Property.Name == "push" && len(n.Arguments) >= 1 {
		recv := t.transformExpr(c.Object)
		// push(...other) appends a whole collection, not one element.
		if n.Arguments[0].Type == "SpreadElement" {
			return &ExprStmt{X: &MethodCall{
				Recv: recv,
				Name: "extend_from_slice",
				Args: []Node{&Ref{X: t.transformExpr(n.Arguments[0].Argument)}},
			}}
		}
		args := make([]Node, 0, len(n.Arguments))
		for _, a := range n.Arguments {
			args = append(args, t.transformExpr(a))
		}
		return &ExprStmt{X: &MethodCall{Recv: recv, Name: "push", Args: args}}
	}
	return nil
}

func (t *Transformer) transformCall(n *jsast.Node) Node {
	c := n.Callee
	if c == nil {
		return &Placeholder{Message: "call without callee"}
	}

	if c.Type == "MemberExpression" && !c.Computed && c.Property != nil {
		if c.Object.IsIdentifier(opcodes.Receiver) {
			return t.lowerOpcode(c.Property.Name, n.Arguments)
		}
		if c.Object.IsIdentifier("Math") {
			return t.lowerMath(c.Property.Name, n.Arguments)
		}
		if c.Object.IsIdentifier("String") && c.Property.Name == "fromCharCode" && len(n.Arguments) == 1 {
			ch := &Cast{X: &Cast{X: t.transformExpr(n.Arguments[0]), To: Prim("u8")}, To: Prim("char")}
			return &MethodCall{Recv: ch, Name: "to_string"}
		}
		return t.lowerMethodCall(c, n.Arguments)
	}

	if c.Type == "Identifier" {
		args := make([]Node, 0, len(n.Arguments))
		for _, a := range n.Arguments {
			args = append(args, t.transformExpr(a))
		}
		return &Call{Fn: &Ident{Name: t.identName(c.Name)}, Args: args}
	}

	if c.Type == "ArrowFunctionExpression" || c.Type == "FunctionExpression" {
		args := make([]Node, 0, len(n.Arguments))
		for _, a := range n.Arguments {
			args = append(args, t.transformExpr(a))
		}
		return &Call{Fn: t.transformClosure(c), Args: args}
	}

	t.warnf("unsupported callee %s", c.Type)
	return &Placeholder{Message: "unsupported callee: " + c.Type}
}

// lowerMethodCall maps common JavaScript Array/String methods to Rust
// idioms. Unmapped methods fall back to a same-named snake_case call with a
// warning; that fallback may be semantically wrong.
func (t *Transformer) lowerMethodCall(c *jsast.Node, jsArgs []*jsast.Node) Node {
	recv := t.transformExpr(c.Object)
	args := make([]Node, 0, len(jsArgs))
	for _, a := range jsArgs {
		if a.Type == "SpreadElement" {
			t.warnf("spread argument to %s is not supported", c.Property.Name)
			args = append(args, &Placeholder{Message: "spread argument"})
			continue
		}
		args = append(args, t.transformExpr(a))
	}

	switch c.Property.Name {
	case "push":
		if len(jsArgs) == 1 && jsArgs[0].Type == "SpreadElement" {
			return &MethodCall{Recv: recv, Name: "extend_from_slice", Args: []Node{&Ref{X: t.transformExpr(jsArgs[0].Argument)}}}
		}
		return &MethodCall{Recv: recv, Name: "push", Args: args}
	case "pop":
		t.warnf("pop() returns Option in Rust; unwrap_or(0) inserted")
		return &MethodCall{Recv: &MethodCall{Recv: recv, Name: "pop"}, Name: "unwrap_or", Args: []Node{&Literal{LitKind: LitInt, Int: 0}}}
	case "slice":
		switch len(args) {
		case 0:
			return &MethodCall{Recv: recv, Name: "clone"}
		case 1:
			rng := &Binary{Op: "..", X: t.indexExpr(jsArgs[0])}
			return &MethodCall{Recv: &IndexExpr{X: recv, Index: rng}, Name: "to_vec"}
		default:
			rng := &Binary{Op: "..", X: t.indexExpr(jsArgs[0]), Y: t.indexExpr(jsArgs[1])}
			return &MethodCall{Recv: &IndexExpr{X: recv, Index: rng}, Name: "to_vec"}
		}
	case "join":
		return &MethodCall{Recv: recv, Name: "join", Args: args}
	case "indexOf":
		t.warnf("indexOf lowered to iter().position(); result is an Option, not -1")
		probe := &Closure{Params: []string{"v"}, Body: &Binary{Op: "==", X: &Unary{Op: "*", X: &Ident{Name: "v"}}, Y: args[0]}}
		return &MethodCall{Recv: &MethodCall{Recv: recv, Name: "iter"}, Name: "position", Args: []Node{probe}}
	case "includes":
		return &MethodCall{Recv: recv, Name: "contains", Args: []Node{&Ref{X: args[0]}}}
	case "charCodeAt":
		idx := &IndexExpr{X: &MethodCall{Recv: recv, Name: "as_bytes"}, Index: t.indexExpr(jsArgs[0])}
		return &Cast{X: idx, To: Prim("u32")}
	case "charAt":
		idx := &IndexExpr{X: &MethodCall{Recv: recv, Name: "as_bytes"}, Index: t.indexExpr(jsArgs[0])}
		return &Cast{X: idx, To: Prim("char")}
	case "toString":
		return &MethodCall{Recv: recv, Name: "to_string"}
	case "toUpperCase":
		return &MethodCall{Recv: recv, Name: "to_uppercase"}
	case "toLowerCase":
		return &MethodCall{Recv: recv, Name: "to_lowercase"}
	case "map":
		t.warnf("map() lowered to iterator chain; closure argument types may need review")
		chain := &MethodCall{Recv: &MethodCall{Recv: recv, Name: "iter"}, Name: "map", Args: args}
		return &MethodCall{Recv: chain, Name: "collect::<Vec<_>>"}
	case "filter":
		t.warnf("filter() lowered to iterator chain; closure argument types may need review")
		chain := &MethodCall{Recv: &MethodCall{Recv: &MethodCall{Recv: recv, Name: "iter"}, Name: "filter", Args: args}, Name: "cloned"}
		return &MethodCall{Recv: chain, Name: "collect::<Vec<_>>"}
	}

	name := naming.ToSnakeCase(c.Property.Name)
	t.warnf("no idiom mapping for method %q; emitted as .%s() which may be wrong", c.Property.Name, name)
	return &MethodCall{Recv: recv, Name: name, Args: args}
}

func (t *Transformer) lowerMath(name string, jsArgs []*jsast.Node) Node {
	args := make([]Node, 0, len(jsArgs))
	for _, a := range jsArgs {
		args = append(args, t.transformExpr(a))
	}
	switch name {
	case "min":
		if len(args) == 2 {
			return &MethodCall{Recv: args[0], Name: "min", Args: args[1:]}
		}
	case "max":
		if len(args) == 2 {
			return &MethodCall{Recv: args[0], Name: "max", Args: args[1:]}
		}
	case "abs":
		if len(args) == 1 {
			return &MethodCall{Recv: args[0], Name: "abs"}
		}
	case "floor":
		if len(args) == 1 {
			return &MethodCall{Recv: args[0], Name: "floor"}
		}
	case "ceil":
		if len(args) == 1 {
			return &MethodCall{Recv: args[0], Name: "ceil"}
		}
	case "sqrt":
		if len(args) == 1 {
			return &MethodCall{Recv: args[0], Name: "sqrt"}
		}
	}
	t.warnf("Math.%s has no direct Rust mapping", name)
	return &Placeholder{Message: "unsupported Math." + name}
}

// lowerOpcode maps the domain-operations table to Rust equivalents. This is
// the safety-critical mapping: endianness and width come straight from the
// operation name.
func (t *Transformer) lowerOpcode(name string, jsArgs []*jsast.Node) Node {
	op, known := opcodes.Lookup(name)
	args := make([]Node, 0, len(jsArgs))
	for _, a := range jsArgs {
		args = append(args, t.transformExpr(a))
	}
	if !known {
		fallback := naming.ToSnakeCase(name)
		t.warnf("unknown OpCodes method %q; emitted as %s() which may be wrong", name, fallback)
		return &Call{Fn: &Ident{Name: fallback}, Args: args}
	}

	switch op {
	case opcodes.RotL8, opcodes.RotL16, opcodes.RotL32, opcodes.RotL64:
		return &MethodCall{Recv: args[0], Name: "rotate_left", Args: []Node{t.shiftAmount(jsArgs[1])}}
	case opcodes.RotR8, opcodes.RotR16, opcodes.RotR32, opcodes.RotR64:
		return &MethodCall{Recv: args[0], Name: "rotate_right", Args: []Node{t.shiftAmount(jsArgs[1])}}
	case opcodes.Pack16LE:
		return t.packCall("u16::from_le_bytes", jsArgs)
	case opcodes.Pack16BE:
		return t.packCall("u16::from_be_bytes", jsArgs)
	case opcodes.Pack32LE:
		return t.packCall("u32::from_le_bytes", jsArgs)
	case opcodes.Pack32BE:
		return t.packCall("u32::from_be_bytes", jsArgs)
	case opcodes.Unpack16LE, opcodes.Unpack32LE:
		return &MethodCall{Recv: &MethodCall{Recv: args[0], Name: "to_le_bytes"}, Name: "to_vec"}
	case opcodes.Unpack16BE, opcodes.Unpack32BE:
		return &MethodCall{Recv: &MethodCall{Recv: args[0], Name: "to_be_bytes"}, Name: "to_vec"}
	case opcodes.XorArrays:
		t.helpers["xor_arrays"] = true
		return &Call{Fn: &Ident{Name: "xor_arrays"}, Args: []Node{&Ref{X: args[0]}, &Ref{X: args[1]}}}
	case opcodes.BytesToHex:
		t.helpers["bytes_to_hex"] = true
		return &Call{Fn: &Ident{Name: "bytes_to_hex"}, Args: []Node{&Ref{X: args[0]}}}
	case opcodes.HexToBytes:
		t.helpers["hex_to_bytes"] = true
		return &Call{Fn: &Ident{Name: "hex_to_bytes"}, Args: []Node{&Ref{X: args[0]}}}
	case opcodes.StringToBytes:
		return &MethodCall{Recv: &MethodCall{Recv: args[0], Name: "as_bytes"}, Name: "to_vec"}
	case opcodes.BytesToString:
		lossy := &Call{Fn: &Ident{Name: "String::from_utf8_lossy"}, Args: []Node{&Ref{X: args[0]}}}
		return &MethodCall{Recv: lossy, Name: "to_string"}
	case opcodes.GF256Mul:
		t.helpers["gf256_mul"] = true
		return &Call{Fn: &Ident{Name: "gf256_mul"}, Args: []Node{byteArg(args[0]), byteArg(args[1])}}
	case opcodes.ClearArray:
		return &MethodCall{Recv: args[0], Name: "fill", Args: []Node{&Literal{LitKind: LitInt, Int: 0}}}
	}
	return &Placeholder{Message: "unmapped OpCodes." + name}
}

// shiftAmount renders a rotate count; rotate_left/right take u32.
func (t *Transformer) shiftAmount(n *jsast.Node) Node {
	if lit, ok := n.LiteralNumber(); ok {
		return &Literal{LitKind: LitInt, Int: int64(lit)}
	}
	expr := t.transformExpr(n)
	if typ := t.inferExprType(n); typ != nil && typ.Name == "u32" {
		return expr
	}
	return &Cast{X: expr, To: Prim("u32")}
}

// packCall builds uN::from_xx_bytes([b0 as u8, ...]).
func (t *Transformer) packCall(fn string, jsArgs []*jsast.Node) Node {
	arr := &ArrayLit{}
	for _, a := range jsArgs {
		arr.Elems = append(arr.Elems, byteArg(t.transformExpr(a)))
	}
	return &Call{Fn: &Ident{Name: fn}, Args: []Node{arr}}
}

// byteArg coerces an argument to u8, skipping literals that fit.
func byteArg(n Node) Node {
	if lit, ok := n.(*Literal); ok && lit.LitKind == LitInt && lit.Int >= 0 && lit.Int <= 255 {
		return &Literal{LitKind: LitInt, Int: lit.Int}
	}
	if cast, ok := n.(*Cast); ok && cast.To.Name == "u8" {
		return n
	}
	return &Cast{X: n, To: Prim("u8")}
}

// --- expression type inference over the source AST ---

// inferExprType deduces a Rust type for a JavaScript expression using scope
// knowledge; nil means unknown.
func (t *Transformer) inferExprType(n *jsast.Node) *Type {
	if n == nil {
		return nil
	}
	switch n.Type {
	case "Literal":
		switch n.Value.(type) {
		case float64:
			if h := infer.FromExpr(n); h.Class == infer.F64 {
				return Prim("f64")
			}
			return Prim("u32")
		case string:
			return Prim("String")
		case bool:
			return Prim("bool")
		}
		return nil
	case "Identifier":
		if v, ok := t.lookup(n.Name); ok {
			return v.typ
		}
		return nil
	case "BinaryExpression":
		switch n.Operator {
		case "==", "!=", "===", "!==", "<", ">", "<=", ">=", "in", "instanceof":
			return Prim("bool")
		case ">>>":
			return Prim("u32")
		}
		if lt := t.inferExprType(n.Left); lt != nil {
			return lt
		}
		return t.inferExprType(n.Right)
	case "LogicalExpression":
		return Prim("bool")
	case "UnaryExpression":
		if n.Operator == "!" {
			return Prim("bool")
		}
		return t.inferExprType(n.Argument)
	case "CallExpression":
		if key := callKey(n); key != "" {
			if ret, ok := t.opts.TypeKnowledge[key]; ok {
				return typeFromHint(infer.ParseHint(ret), false)
			}
		}
		if n.Callee != nil && n.Callee.Type == "MemberExpression" && !n.Callee.Computed &&
			n.Callee.Property.IsIdentifier("length") {
			return Prim("usize")
		}
		return nil
	case "MemberExpression":
		if !n.Computed && n.Property.IsIdentifier("length") {
			return Prim("usize")
		}
		if n.Computed {
			if obj := t.inferExprType(n.Object); obj.IsCollection() {
				return obj.Elem
			}
			if obj := t.inferExprType(n.Object); isStringType(obj) {
				return Prim("u8")
			}
		}
		return nil
	case "ArrayExpression":
		return typeFromHint(infer.FromExpr(n), false)
	case "ConditionalExpression":
		return t.inferExprType(n.Consequent)
	}
	return nil
}

func callKey(n *jsast.Node) string {
	c := n.Callee
	if c == nil {
		return ""
	}
	if c.Type == "MemberExpression" && !c.Computed && c.Object.IsIdentifier("") && c.Property != nil {
		return c.Object.Name + "." + c.Property.Name
	}
	if c.Type == "Identifier" {
		return c.Name
	}
	return ""
}

// zeroValue returns the default initializer for a declared-but-uninitialized
// binding.
func zeroValue(t *Type) Node {
	switch {
	case t == nil:
		return &Literal{LitKind: LitInt, Int: 0}
	case t.Vec || t.Slice:
		return &MacroCall{Name: "vec"}
	case t.Optional:
		return &Ident{Name: "None"}
	case t.Name == "String":
		return &Call{Fn: &Ident{Name: "String::new"}}
	case t.Name == "bool":
		return &Literal{LitKind: LitBool, Bool: false}
	case t.IsFloat():
		return &Literal{LitKind: LitFloat, Float: 0}
	case t.Name == "HashMap":
		return &Call{Fn: &Ident{Name: "HashMap::new"}}
	}
	return &Literal{LitKind: LitInt, Int: 0}
}
