// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package golang

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
			return &Literal{LitKind: LitNil}
		}
		return &Ident{Name: t.identName(n.Name)}
	case "ThisExpression":
		if t.recvName == "" {
			t.warnf("this outside a method has no Go equivalent")
			return &Placeholder{Message: "this outside a method"}
		}
		return &Ident{Name: t.recvName}
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
		t.warnf("assignment used as a value is not supported in Go output")
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
		return t.transformObject(n)
	case "ConditionalExpression":
		return t.transformTernary(n)
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
			return &Literal{LitKind: LitInt, Int: int64(v)}
		}
		return &Literal{LitKind: LitFloat, Float: v}
	case string:
		return &Literal{LitKind: LitStr, Str: v}
	case bool:
		return &Literal{LitKind: LitBool, Bool: v}
	case nil:
		return &Literal{LitKind: LitNil}
	}
	t.warnf("unsupported literal %q", n.Raw)
	return &Placeholder{Message: "unsupported literal: " + n.Raw}
}

func (t *Transformer) transformUnary(n *jsast.Node) Node {
	switch n.Operator {
	case "-":
		if lit, ok := t.transformExpr(n.Argument).(*Literal); ok && lit.LitKind == LitInt {
			return &Literal{LitKind: LitInt, Int: -lit.Int}
		}
		return &Unary{Op: "-", X: t.transformExpr(n.Argument)}
	case "+":
		return t.transformExpr(n.Argument)
	case "!":
		return &Unary{Op: "!", X: t.transformCond(n.Argument)}
	case "~":
		// Go spells bitwise complement as unary ^.
		return &Unary{Op: "^", X: t.transformExpr(n.Argument)}
	}
	t.warnf("unsupported unary operator %q", n.Operator)
	return &Placeholder{Message: "unsupported unary operator: " + n.Operator}
}

// transformBinary keeps arithmetic native (Go fixed-width integers wrap
// silently, matching the coerced JavaScript semantics crypto code relies on)
// and applies the >>> lowering and the strict-equality collapse.
func (t *Transformer) transformBinary(n *jsast.Node) Node {
	op := n.Operator
	switch op {
	case "===":
		op = "=="
	case "!==":
		op = "!="
	}

	if op == ">>>" {
		// x >>> 0 is the JavaScript uint32-coercion idiom: elide it.
		if n.Right.LiteralIsZero() {
			return t.transformExpr(n.Left)
		}
		return &Binary{
			Op: ">>",
			X:  &Call{Fn: &Ident{Name: "uint32"}, Args: []Node{t.transformExpr(n.Left)}},
			Y:  t.transformExpr(n.Right),
		}
	}

	switch op {
	case "in", "instanceof":
		t.warnf("operator %q has no Go lowering", op)
		return &Placeholder{Message: "unsupported operator: " + op}
	}
	return &Binary{Op: op, X: t.transformExpr(n.Left), Y: t.transformExpr(n.Right)}
}

func (t *Transformer) transformMember(n *jsast.Node) Node {
	if n.Computed {
		return &Index{X: t.transformExpr(n.Object), I: t.indexExpr(n.Property)}
	}
	prop := n.Property.Name
	if n.Object != nil && n.Object.Type == "ThisExpression" {
		return &Selector{X: t.transformExpr(n.Object), Name: naming.ToPascalCase(naming.StripPrivatePrefix(prop))}
	}
	if prop == "length" {
		return &Call{Fn: &Ident{Name: "len"}, Args: []Node{t.transformExpr(n.Object)}}
	}
	if n.Object.IsIdentifier("Math") {
		switch prop {
		case "PI":
			t.imports["math"] = true
			return &Ident{Name: "math.Pi"}
		case "E":
			t.imports["math"] = true
			return &Ident{Name: "math.E"}
		}
	}
	return &Selector{X: t.transformExpr(n.Object), Name: naming.ToPascalCase(naming.StripPrivatePrefix(prop))}
}

// indexExpr renders an index operand. Go accepts any integer type as an
// index, but mixed-type comparisons against len() want int, so non-size
// expressions get an explicit conversion.
func (t *Transformer) indexExpr(n *jsast.Node) Node {
	if lit, ok := n.LiteralNumber(); ok && lit == math.Trunc(lit) {
		return &Literal{LitKind: LitInt, Int: int64(lit)}
	}
	expr := t.transformExpr(n)
	if typ := t.inferExprType(n); typ != nil && typ.Name == "int" {
		return expr
	}
	return &Call{Fn: &Ident{Name: "int"}, Args: []Node{expr}}
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
	return &Call{Fn: &Ident{Name: "New" + name}, Args: args}
}

func (t *Transformer) transformArray(n *jsast.Node) Node {
	typ := typeFromHint(infer.FromExpr(n), t.opts.StrictTypes)
	if !typ.IsCollection() {
		typ = SliceOf(Prim("byte"))
	}
	lit := &Composite{Type: typ}
	for _, e := range n.Elements {
		lit.Elems = append(lit.Elems, KeyedElem{Value: t.transformExpr(e)})
	}
	return lit
}

// transformObject lowers an object literal to a map[string]any composite.
func (t *Transformer) transformObject(n *jsast.Node) Node {
	lit := &Composite{Type: MapOf(Prim("any"))}
	for _, p := range n.Properties {
		if p.Key == nil {
			t.warnf("object property without a simple key dropped")
			continue
		}
		key := p.Key.Name
		if key == "" {
			if s, ok := p.Key.Value.(string); ok {
				key = s
			}
		}
		lit.Elems = append(lit.Elems, KeyedElem{
			Key:   &Literal{LitKind: LitStr, Str: key},
			Value: t.transformExpr(p.ValueNode),
		})
	}
	return lit
}

// transformTernary lowers the conditional expression to an immediately
// invoked function literal, the standard expression-position workaround.
func (t *Transformer) transformTernary(n *jsast.Node) Node {
	t.warnf("ternary lowered to an immediately invoked function literal")
	typ := t.inferExprType(n.Consequent)
	if typ == nil {
		typ = Prim("uint32")
	}
	body := &Block{Stmts: []Node{
		&If{
			Cond: t.transformCond(n.Test),
			Then: &Block{Stmts: []Node{&Return{Values: []Node{t.transformExpr(n.Consequent)}}}},
		},
		&Return{Values: []Node{t.transformExpr(n.Alternate)}},
	}}
	return &Call{Fn: &FuncLit{Return: typ, Body: body}}
}

func (t *Transformer) transformClosure(n *jsast.Node) Node {
	t.pushScope()
	savedRet, savedSet, savedErr := t.retType, t.retSet, t.errMode
	t.retType, t.retSet = nil, false
	// Function literals carry no error result, so returns and throws inside
	// the closure must not gain the enclosing function's error channel.
	t.errMode = false

	lit := &FuncLit{}
	for _, p := range n.Params {
		if p.Type == "Identifier" {
			hint := infer.Resolve(p.TypeAnnotation, nil, p.Name, t.opts.TypeKnowledge)
			typ := typeFromHint(hint, t.opts.StrictTypes)
			lit.Params = append(lit.Params, Param{Name: t.declare(p.Name, typ), Type: typ})
		}
	}
	if n.BodyNode != nil && n.BodyNode.Type == "BlockStatement" {
		lit.Body = t.transformStmts(n.BodyNode.Body)
		lit.Return = t.retType
	} else if n.BodyNode != nil {
		expr := t.transformExpr(n.BodyNode)
		lit.Return = t.inferExprType(n.BodyNode)
		if lit.Return == nil {
			lit.Return = Prim("uint32")
		}
		lit.Body = &Block{Stmts: []Node{&Return{Values: []Node{expr}}}}
	} else {
		lit.Body = &Block{}
	}

	t.retType, t.retSet, t.errMode = savedRet, savedSet, savedErr
	t.popScope()
	return lit
}

// transformCallStmt handles calls whose lowering only makes sense in
// statement position. Returns nil when the general expression path applies.
func (t *Transformer) transformCallStmt(n *jsast.Node) Node {
	c := n.Callee
	if c == nil || c.Type != "MemberExpression" || c.Computed || c.Property == nil {
		return nil
	}
	if c.Object.IsIdentifier(opcodes.Receiver) && c.Property.Name == string(opcodes.ClearArray) && len(n.Arguments) == 1 {
		// Zero in place with a range loop.
		arr := t.transformExpr(n.Arguments[0])
		return &Range{Key: "i", X: arr, Body: &Block{Stmts: []Node{
			&Assign{Target: &Index{X: arr, I: &Ident{Name: "i"}}, Op: "=", Value: &Literal{LitKind: LitInt}},
		}}}
	}
	if c.Property.Name == "push" && len(n.Arguments) >= 1 {
		recv := t.transformExpr(c.Object)
		// push(...other) appends a whole collection: append(x, other...).
		if n.Arguments[0].Type == "SpreadElement" {
			return &Assign{Target: recv, Op: "=", Value: &Call{
				Fn:   &Ident{Name: "append"},
				Args: []Node{recv, &Ellipsis{X: t.transformExpr(n.Arguments[0].Argument)}},
			}}
		}
		appendArgs := []Node{recv}
		for _, a := range n.Arguments {
			appendArgs = append(appendArgs, t.transformExpr(a))
		}
		return &Assign{Target: recv, Op: "=", Value: &Call{Fn: &Ident{Name: "append"}, Args: appendArgs}}
	}
	if c.Property.Name == "pop" && len(n.Arguments) == 0 {
		recv := t.transformExpr(c.Object)
		// Statement-position pop just truncates.
		high := &Binary{Op: "-",
			X: &Call{Fn: &Ident{Name: "len"}, Args: []Node{recv}},
			Y: &Literal{LitKind: LitInt, Int: 1},
		}
		return &Assign{Target: recv, Op: "=", Value: &SliceExpr{X: recv, High: high}}
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
			r := &Call{Fn: &Ident{Name: "rune"}, Args: []Node{t.transformExpr(n.Arguments[0])}}
			return &Call{Fn: &Ident{Name: "string"}, Args: []Node{r}}
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

// lowerMethodCall maps common JavaScript Array/String methods to Go idioms.
// Unmapped methods fall back to a same-named PascalCase method call with a
// warning; that fallback may be semantically wrong.
func (t *Transformer) lowerMethodCall(c *jsast.Node, jsArgs []*jsast.Node) Node {
	recv := t.transformExpr(c.Object)
	recvType := t.inferExprType(c.Object)
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
		t.warnf("push in value position: append result used, not the new length")
		return &Call{Fn: &Ident{Name: "append"}, Args: append([]Node{recv}, args...)}
	case "pop":
		t.warnf("pop in value position reads the last element without truncating")
		last := &Binary{Op: "-",
			X: &Call{Fn: &Ident{Name: "len"}, Args: []Node{recv}},
			Y: &Literal{LitKind: LitInt, Int: 1},
		}
		return &Index{X: recv, I: last}
	case "slice":
		t.warnf("slice lowered to a Go slice expression, which shares the backing array")
		switch len(args) {
		case 0:
			return &SliceExpr{X: recv}
		case 1:
			return &SliceExpr{X: recv, Low: t.indexExpr(jsArgs[0])}
		default:
			return &SliceExpr{X: recv, Low: t.indexExpr(jsArgs[0]), High: t.indexExpr(jsArgs[1])}
		}
	case "join":
		t.imports["strings"] = true
		return &Call{Fn: &Ident{Name: "strings.Join"}, Args: append([]Node{recv}, args...)}
	case "indexOf":
		if recvType.IsString() {
			t.imports["strings"] = true
			return &Call{Fn: &Ident{Name: "strings.Index"}, Args: append([]Node{recv}, args...)}
		}
	case "includes":
		if recvType.IsString() {
			t.imports["strings"] = true
			return &Call{Fn: &Ident{Name: "strings.Contains"}, Args: append([]Node{recv}, args...)}
		}
	case "charCodeAt":
		idx := &Index{X: recv, I: t.indexExpr(jsArgs[0])}
		return &Call{Fn: &Ident{Name: "uint32"}, Args: []Node{idx}}
	case "charAt":
		idx := &Index{X: recv, I: t.indexExpr(jsArgs[0])}
		return &Call{Fn: &Ident{Name: "string"}, Args: []Node{idx}}
	case "toString":
		t.imports["fmt"] = true
		return &Call{Fn: &Ident{Name: "fmt.Sprint"}, Args: []Node{recv}}
	case "toUpperCase":
		t.imports["strings"] = true
		return &Call{Fn: &Ident{Name: "strings.ToUpper"}, Args: []Node{recv}}
	case "toLowerCase":
		t.imports["strings"] = true
		return &Call{Fn: &Ident{Name: "strings.ToLower"}, Args: []Node{recv}}
	case "map", "filter":
		t.warnf("%s() has no Go lowering; rewrite as a loop", c.Property.Name)
		return &Placeholder{Message: "unsupported method: " + c.Property.Name}
	}

	name := naming.ToPascalCase(c.Property.Name)
	t.warnf("no idiom mapping for method %q; emitted as .%s() which may be wrong", c.Property.Name, name)
	return &Call{Fn: &Selector{X: recv, Name: name}, Args: args}
}

func (t *Transformer) lowerMath(name string, jsArgs []*jsast.Node) Node {
	args := make([]Node, 0, len(jsArgs))
	for _, a := range jsArgs {
		args = append(args, t.transformExpr(a))
	}
	switch name {
	case "min":
		if len(args) == 2 {
			return &Call{Fn: &Ident{Name: "min"}, Args: args}
		}
	case "max":
		if len(args) == 2 {
			return &Call{Fn: &Ident{Name: "max"}, Args: args}
		}
	case "abs":
		if len(args) == 1 {
			t.imports["math"] = true
			return &Call{Fn: &Ident{Name: "math.Abs"}, Args: args}
		}
	case "floor":
		if len(args) == 1 {
			t.imports["math"] = true
			return &Call{Fn: &Ident{Name: "math.Floor"}, Args: args}
		}
	case "ceil":
		if len(args) == 1 {
			t.imports["math"] = true
			return &Call{Fn: &Ident{Name: "math.Ceil"}, Args: args}
		}
	case "sqrt":
		if len(args) == 1 {
			t.imports["math"] = true
			return &Call{Fn: &Ident{Name: "math.Sqrt"}, Args: args}
		}
	}
	t.warnf("Math.%s has no direct Go mapping", name)
	return &Placeholder{Message: "unsupported Math." + name}
}

// lowerOpcode maps the domain-operations table to Go equivalents. This is
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
		t.imports["math/bits"] = true
		return &Call{Fn: &Ident{Name: rotateFn(op)}, Args: []Node{args[0], t.rotateAmount(jsArgs[1], false)}}
	case opcodes.RotR8, opcodes.RotR16, opcodes.RotR32, opcodes.RotR64:
		t.imports["math/bits"] = true
		return &Call{Fn: &Ident{Name: rotateFn(op)}, Args: []Node{args[0], t.rotateAmount(jsArgs[1], true)}}
	case opcodes.Pack16LE:
		return t.packCall("binary.LittleEndian.Uint16", jsArgs)
	case opcodes.Pack16BE:
		return t.packCall("binary.BigEndian.Uint16", jsArgs)
	case opcodes.Pack32LE:
		return t.packCall("binary.LittleEndian.Uint32", jsArgs)
	case opcodes.Pack32BE:
		return t.packCall("binary.BigEndian.Uint32", jsArgs)
	case opcodes.Unpack16LE:
		return t.unpackCall("binary.LittleEndian.AppendUint16", args[0])
	case opcodes.Unpack16BE:
		return t.unpackCall("binary.BigEndian.AppendUint16", args[0])
	case opcodes.Unpack32LE:
		return t.unpackCall("binary.LittleEndian.AppendUint32", args[0])
	case opcodes.Unpack32BE:
		return t.unpackCall("binary.BigEndian.AppendUint32", args[0])
	case opcodes.XorArrays:
		t.helpers["xorBytes"] = true
		return &Call{Fn: &Ident{Name: "xorBytes"}, Args: args}
	case opcodes.BytesToHex:
		t.imports["encoding/hex"] = true
		return &Call{Fn: &Ident{Name: "hex.EncodeToString"}, Args: args}
	case opcodes.HexToBytes:
		t.imports["encoding/hex"] = true
		t.helpers["fromHex"] = true
		return &Call{Fn: &Ident{Name: "fromHex"}, Args: args}
	case opcodes.StringToBytes:
		return &Call{Fn: &Ident{Name: "[]byte"}, Args: args}
	case opcodes.BytesToString:
		return &Call{Fn: &Ident{Name: "string"}, Args: args}
	case opcodes.GF256Mul:
		t.helpers["gf256Mul"] = true
		return &Call{Fn: &Ident{Name: "gf256Mul"}, Args: []Node{byteArg(args[0]), byteArg(args[1])}}
	case opcodes.ClearArray:
		t.warnf("ClearArray in expression position is not supported; use it as a statement")
		return &Placeholder{Message: "ClearArray in expression position"}
	}
	return &Placeholder{Message: "unmapped OpCodes." + name}
}

func rotateFn(op opcodes.Op) string {
	switch op {
	case opcodes.RotL8, opcodes.RotR8:
		return "bits.RotateLeft8"
	case opcodes.RotL16, opcodes.RotR16:
		return "bits.RotateLeft16"
	case opcodes.RotL64, opcodes.RotR64:
		return "bits.RotateLeft64"
	}
	return "bits.RotateLeft32"
}

// rotateAmount renders a rotate count as int; right rotations negate it,
// which bits.RotateLeftN documents as rotating right.
func (t *Transformer) rotateAmount(n *jsast.Node, negate bool) Node {
	if lit, ok := n.LiteralNumber(); ok {
		v := int64(lit)
		if negate {
			v = -v
		}
		return &Literal{LitKind: LitInt, Int: v}
	}
	expr := &Call{Fn: &Ident{Name: "int"}, Args: []Node{t.transformExpr(n)}}
	if negate {
		return &Unary{Op: "-", X: expr}
	}
	return expr
}

// packCall builds binary.XxxEndian.UintN([]byte{byte(b0), ...}).
func (t *Transformer) packCall(fn string, jsArgs []*jsast.Node) Node {
	t.imports["encoding/binary"] = true
	lit := &Composite{Type: SliceOf(Prim("byte"))}
	for _, a := range jsArgs {
		lit.Elems = append(lit.Elems, KeyedElem{Value: byteArg(t.transformExpr(a))})
	}
	return &Call{Fn: &Ident{Name: fn}, Args: []Node{lit}}
}

// unpackCall builds binary.XxxEndian.AppendUintN(nil, v).
func (t *Transformer) unpackCall(fn string, v Node) Node {
	t.imports["encoding/binary"] = true
	return &Call{Fn: &Ident{Name: fn}, Args: []Node{&Literal{LitKind: LitNil}, v}}
}

// byteArg coerces an argument to byte, skipping literals that fit.
func byteArg(n Node) Node {
	if lit, ok := n.(*Literal); ok && lit.LitKind == LitInt && lit.Int >= 0 && lit.Int <= 255 {
		return n
	}
	if call, ok := n.(*Call); ok {
		if id, ok := call.Fn.(*Ident); ok && id.Name == "byte" {
			return n
		}
	}
	return &Call{Fn: &Ident{Name: "byte"}, Args: []Node{n}}
}

// --- expression type inference over the source AST ---

// inferExprType deduces a Go type for a JavaScript expression using scope
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
				return Prim("float64")
			}
			return Prim("uint32")
		case string:
			return Prim("string")
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
			return Prim("uint32")
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
				return typeFromHint(infer.ParseHint(ret), t.opts.StrictTypes)
			}
		}
		return nil
	case "MemberExpression":
		if !n.Computed && n.Property.IsIdentifier("length") {
			return Prim("int")
		}
		if n.Computed {
			if obj := t.inferExprType(n.Object); obj.IsCollection() {
				return obj.Elem
			}
			if obj := t.inferExprType(n.Object); obj.IsString() {
				return Prim("byte")
			}
		}
		return nil
	case "ArrayExpression":
		return typeFromHint(infer.FromExpr(n), t.opts.StrictTypes)
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

// zeroValue returns the zero expression for a type, used for error-channel
// returns and uninitialized struct fields.
func zeroValue(t *Type) Node {
	switch {
	case t == nil:
		return &Literal{LitKind: LitInt}
	case t.Slice, t.Map:
		return &Literal{LitKind: LitNil}
	case t.IsString():
		return &Literal{LitKind: LitStr}
	case t.Name == "bool":
		return &Literal{LitKind: LitBool}
	case t.IsFloat():
		return &Literal{LitKind: LitFloat}
	case t.Name == "any" || strings.HasPrefix(t.Name, "*"):
		return &Literal{LitKind: LitNil}
	}
	return &Literal{LitKind: LitInt}
}
