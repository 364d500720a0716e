// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package rust

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dacolabs/transpile/internal/backend"
	"github.com/dacolabs/transpile/internal/jsast"
)

// --- source AST builders ---

func program(stmts ...*jsast.Node) *jsast.Node {
	return &jsast.Node{Type: "Program", Body: stmts}
}

func ident(name string) *jsast.Node {
	return &jsast.Node{Type: "Identifier", Name: name}
}

func num(v float64) *jsast.Node {
	return &jsast.Node{Type: "Literal", Value: v, Raw: strconv.FormatFloat(v, 'f', -1, 64)}
}

func str(v string) *jsast.Node {
	return &jsast.Node{Type: "Literal", Value: v, Raw: strconv.Quote(v)}
}

func blockStmt(stmts ...*jsast.Node) *jsast.Node {
	return &jsast.Node{Type: "BlockStatement", Body: stmts}
}

func fnDecl(name string, params []*jsast.Node, stmts ...*jsast.Node) *jsast.Node {
	return &jsast.Node{
		Type:     "FunctionDeclaration",
		ID:       ident(name),
		Params:   params,
		BodyNode: blockStmt(stmts...),
	}
}

func binary(op string, left, right *jsast.Node) *jsast.Node {
	return &jsast.Node{Type: "BinaryExpression", Operator: op, Left: left, Right: right}
}

func returnStmt(arg *jsast.Node) *jsast.Node {
	return &jsast.Node{Type: "ReturnStatement", Argument: arg}
}

func exprStmt(expr *jsast.Node) *jsast.Node {
	return &jsast.Node{Type: "ExpressionStatement", Expression: expr}
}

func letDecl(name string, init *jsast.Node) *jsast.Node {
	return &jsast.Node{Type: "VariableDeclaration", Kind: "let", Declarations: []*jsast.Node{
		{Type: "VariableDeclarator", ID: ident(name), Init: init},
	}}
}

func opCall(method string, args ...*jsast.Node) *jsast.Node {
	return &jsast.Node{Type: "CallExpression", Callee: &jsast.Node{
		Type:     "MemberExpression",
		Object:   ident("OpCodes"),
		Property: ident(method),
	}, Arguments: args}
}

func generate(t *testing.T, prog *jsast.Node, opts backend.Options) *backend.Result {
	t.Helper()
	res, err := New().Generate(prog, opts)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

// --- tests ---

func TestGenerate_AddFunction(t *testing.T) {
	prog := program(fnDecl("add", []*jsast.Node{ident("a"), ident("b")},
		returnStmt(binary(">>>", binary("+", ident("a"), ident("b")), num(0))),
	))

	res := generate(t, prog, backend.Options{})

	assert.Contains(t, res.Code, "pub fn add(a: u32, b: u32) -> u32 {")
	assert.Contains(t, res.Code, "return a.wrapping_add(b);")
	// x >>> 0 is the uint32-coercion idiom; it must not survive as a shift.
	assert.NotContains(t, res.Code, ">> 0")
}

func TestGenerate_ClassToStruct(t *testing.T) {
	ctor := &jsast.Node{
		Type: "MethodDefinition", Kind: "constructor", Key: ident("constructor"),
		ValueNode: &jsast.Node{
			Type:   "FunctionExpression",
			Params: []*jsast.Node{ident("key")},
			BodyNode: blockStmt(
				exprStmt(&jsast.Node{Type: "AssignmentExpression", Operator: "=",
					Left: &jsast.Node{Type: "MemberExpression",
						Object: &jsast.Node{Type: "ThisExpression"}, Property: ident("key")},
					Right: ident("key"),
				}),
				exprStmt(&jsast.Node{Type: "AssignmentExpression", Operator: "=",
					Left: &jsast.Node{Type: "MemberExpression",
						Object: &jsast.Node{Type: "ThisExpression"}, Property: ident("rounds")},
					Right: num(10),
				}),
			),
		},
	}
	method := &jsast.Node{
		Type: "MethodDefinition", Kind: "method", Key: ident("encrypt"),
		ValueNode: &jsast.Node{
			Type:     "FunctionExpression",
			Params:   []*jsast.Node{ident("block")},
			BodyNode: blockStmt(returnStmt(ident("block"))),
		},
	}
	prog := program(&jsast.Node{
		Type: "ClassDeclaration", ID: ident("Cipher"),
		BodyNode: &jsast.Node{Type: "ClassBody", Body: []*jsast.Node{ctor, method}},
	})

	res := generate(t, prog, backend.Options{})

	assert.Contains(t, res.Code, "#[derive(Clone)]")
	assert.Contains(t, res.Code, "pub struct Cipher {")
	assert.Contains(t, res.Code, "pub key: Vec<u8>,")
	assert.Contains(t, res.Code, "pub rounds: u32,")
	assert.Contains(t, res.Code, "impl Cipher {")
	assert.Contains(t, res.Code, "pub fn new(key: Vec<u8>) -> Self {")
	assert.Contains(t, res.Code, "pub fn encrypt(&mut self, block: Vec<u8>)")
}

func TestGenerate_ClassicForBecomesRange(t *testing.T) {
	loop := &jsast.Node{
		Type: "ForStatement",
		Init: letDecl("i", num(0)),
		Test: binary("<", ident("i"), num(16)),
		Update: &jsast.Node{Type: "UpdateExpression", Operator: "++",
			Argument: ident("i"), Prefix: false},
		BodyNode: blockStmt(
			exprStmt(&jsast.Node{Type: "AssignmentExpression", Operator: "+=",
				Left: ident("sum"), Right: ident("i")}),
		),
	}
	prog := program(fnDecl("total", nil, letDecl("sum", num(0)), loop, returnStmt(ident("sum"))))

	res := generate(t, prog, backend.Options{})

	assert.Contains(t, res.Code, "for i in 0..16 {")
	assert.Contains(t, res.Code, "sum = sum.wrapping_add(i);")
}

func TestGenerate_SwitchToMatch(t *testing.T) {
	brk := &jsast.Node{Type: "BreakStatement"}
	sw := &jsast.Node{
		Type:         "SwitchStatement",
		Discriminant: ident("mode"),
		Cases: []*jsast.Node{
			{Type: "SwitchCase", Test: num(0), ConsList: []*jsast.Node{
				exprStmt(&jsast.Node{Type: "AssignmentExpression", Operator: "=",
					Left: ident("out"), Right: num(1)}), brk,
			}},
			{Type: "SwitchCase", Test: num(1), ConsList: []*jsast.Node{
				exprStmt(&jsast.Node{Type: "AssignmentExpression", Operator: "=",
					Left: ident("out"), Right: num(2)}), brk,
			}},
		},
	}
	prog := program(fnDecl("dispatch", []*jsast.Node{ident("mode")},
		letDecl("out", num(0)), sw, returnStmt(ident("out"))))

	res := generate(t, prog, backend.Options{})

	assert.Contains(t, res.Code, "match mode {")
	assert.Contains(t, res.Code, "0 => {")
	assert.Contains(t, res.Code, "1 => {")
	// A default arm is synthesized so the match is exhaustive.
	assert.Contains(t, res.Code, "_ => {}")
}

func TestGenerate_DomainRotate(t *testing.T) {
	prog := program(fnDecl("round", []*jsast.Node{ident("value")},
		returnStmt(opCall("RotL32", ident("value"), num(8))),
	))

	res := generate(t, prog, backend.Options{})

	assert.Contains(t, res.Code, "value.rotate_left(8)")
}

func TestGenerate_DomainPackBytes(t *testing.T) {
	prog := program(fnDecl("word", []*jsast.Node{ident("b0"), ident("b1"), ident("b2"), ident("b3")},
		returnStmt(opCall("Pack32LE", ident("b0"), ident("b1"), ident("b2"), ident("b3"))),
	))

	res := generate(t, prog, backend.Options{})

	assert.Contains(t, res.Code, "u32::from_le_bytes([b0 as u8, b1 as u8, b2 as u8, b3 as u8])")
}

func TestGenerate_XorSynthesizesHelper(t *testing.T) {
	prog := program(fnDecl("mask", []*jsast.Node{ident("data"), ident("key")},
		returnStmt(opCall("XorArrays", ident("data"), ident("key"))),
	))

	res := generate(t, prog, backend.Options{})

	assert.Contains(t, res.Code, "xor_arrays(&data, &key)")
	assert.Contains(t, res.Code, "fn xor_arrays(a: &[u8], b: &[u8]) -> Vec<u8> {")
}

func TestGenerate_ThrowBecomesPanic(t *testing.T) {
	prog := program(fnDecl("check", []*jsast.Node{ident("length")},
		&jsast.Node{Type: "IfStatement",
			Test: binary("===", ident("length"), num(0)),
			Consequent: blockStmt(&jsast.Node{Type: "ThrowStatement",
				Argument: &jsast.Node{Type: "NewExpression", Callee: ident("Error"),
					Arguments: []*jsast.Node{str("empty input")}}}),
		},
	))

	res := generate(t, prog, backend.Options{})

	assert.Contains(t, res.Code, `panic!("empty input")`)
	assert.NotEmpty(t, res.Warnings)
}

func TestGenerate_DoWhileBecomesLoop(t *testing.T) {
	prog := program(fnDecl("spin", []*jsast.Node{ident("n")},
		&jsast.Node{Type: "DoWhileStatement",
			Test: binary(">", ident("n"), num(0)),
			BodyNode: blockStmt(exprStmt(&jsast.Node{Type: "UpdateExpression",
				Operator: "--", Argument: ident("n")})),
		},
	))

	res := generate(t, prog, backend.Options{})

	assert.Contains(t, res.Code, "loop {")
	assert.Contains(t, res.Code, "if !(n > 0) {")
	assert.Contains(t, res.Code, "break;")
}

func TestGenerate_ConstDeclaration(t *testing.T) {
	prog := program(&jsast.Node{Type: "VariableDeclaration", Kind: "const",
		Declarations: []*jsast.Node{
			{Type: "VariableDeclarator", ID: ident("numRounds"), Init: num(10)},
		}})

	res := generate(t, prog, backend.Options{})

	assert.Contains(t, res.Code, "pub const NUM_ROUNDS: u32 = 10u32;")
}

func TestGenerate_Banner(t *testing.T) {
	prog := program()

	res := generate(t, prog, backend.Options{AddComments: true, SourceName: "cipher.js"})

	assert.Contains(t, res.Code, "// Generated from cipher.js for Rust (edition 2021)")
	assert.Contains(t, res.Code, "// Auto-generated code - do not modify manually")
}

func TestGenerate_NoStdHeader(t *testing.T) {
	res := generate(t, program(), backend.Options{NoStd: true})

	assert.Contains(t, res.Code, "#![no_std]")
}

func TestGenerate_MalformedRoot(t *testing.T) {
	_, err := New().Generate(&jsast.Node{Type: "ExpressionStatement"}, backend.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Program")

	_, err = New().Generate(nil, backend.Options{})
	require.Error(t, err)
}

func TestGenerate_UnsupportedBecomesPlaceholder(t *testing.T) {
	prog := program(fnDecl("mystery", nil,
		exprStmt(&jsast.Node{Type: "AwaitExpression", Argument: ident("x")}),
	))

	res := generate(t, prog, backend.Options{})

	assert.Contains(t, res.Code, "/* unsupported")
	assert.NotEmpty(t, res.Warnings)
}

func TestGenerate_ZeroCopyParams(t *testing.T) {
	prog := program(fnDecl("sum", []*jsast.Node{ident("data")},
		returnStmt(num(0)),
	))

	res := generate(t, prog, backend.Options{UseZeroCopy: true})
	assert.Contains(t, res.Code, "data: &[u8]")

	res = generate(t, prog, backend.Options{})
	assert.Contains(t, res.Code, "data: Vec<u8>")
}

func TestEmitter_BinaryPrecedence(t *testing.T) {
	e := NewEmitter(backend.Options{})

	// (a | b) & c keeps its parentheses; a & (b | c) too.
	out := e.expr(&Binary{Op: "&",
		X: &Binary{Op: "|", X: &Ident{Name: "a"}, Y: &Ident{Name: "b"}},
		Y: &Ident{Name: "c"},
	})
	assert.Equal(t, "(a | b) & c", out)

	out = e.expr(&Binary{Op: "-",
		X: &Ident{Name: "a"},
		Y: &Binary{Op: "-", X: &Ident{Name: "b"}, Y: &Ident{Name: "c"}},
	})
	assert.Equal(t, "a - (b - c)", out)

	out = e.expr(&Binary{Op: "+",
		X: &Ident{Name: "a"},
		Y: &Binary{Op: "*", X: &Ident{Name: "b"}, Y: &Ident{Name: "c"}},
	})
	assert.Equal(t, "a + b * c", out)
}

func TestEmitter_MethodReceiverParens(t *testing.T) {
	e := NewEmitter(backend.Options{})

	out := e.expr(&MethodCall{
		Recv: &Cast{X: &Ident{Name: "x"}, To: Prim("u32")},
		Name: "rotate_left",
		Args: []Node{&Literal{LitKind: LitInt, Int: 8}},
	})
	assert.Equal(t, "(x as u32).rotate_left(8)", out)
}

func TestEmitter_StringEscaping(t *testing.T) {
	e := NewEmitter(backend.Options{})

	out := e.expr(&Literal{LitKind: LitStr, Str: "a\"b\\c\nd"})
	assert.Equal(t, `"a\"b\\c\nd"`, out)
}

func TestEmitter_FloatKeepsDecimalPoint(t *testing.T) {
	e := NewEmitter(backend.Options{})

	assert.Equal(t, "1.0", e.expr(&Literal{LitKind: LitFloat, Float: 1}))
	assert.Equal(t, "0.5", e.expr(&Literal{LitKind: LitFloat, Float: 0.5}))
}

func TestEmitter_CustomIndent(t *testing.T) {
	prog := program(fnDecl("one", nil, returnStmt(num(1))))

	res := generate(t, prog, backend.Options{Indent: "\t"})
	assert.Contains(t, res.Code, "\treturn 1u32;")
}

func TestGenerate_ClosureReturnStaysLocal(t *testing.T) {
	closure := &jsast.Node{Type: "ArrowFunctionExpression",
		BodyNode: blockStmt(returnStmt(str("hello")))}
	prog := program(fnDecl("outer", nil,
		letDecl("f", closure),
		returnStmt(num(1)),
	))

	res := generate(t, prog, backend.Options{})

	assert.Contains(t, res.Code, "-> u32 {")
	assert.NotContains(t, res.Code, "-> String")
	assert.Contains(t, res.Code, "return 1u32;")
}

func TestGenerate_ConstTableIsFixedArray(t *testing.T) {
	prog := program(&jsast.Node{Type: "VariableDeclaration", Kind: "const",
		Declarations: []*jsast.Node{
			{Type: "VariableDeclarator", ID: ident("sbox"), Init: &jsast.Node{
				Type: "ArrayExpression", Elements: []*jsast.Node{num(1), num(2), num(3)},
			}},
		}})

	res := generate(t, prog, backend.Options{})

	assert.Contains(t, res.Code, "pub const SBOX: [u32; 3] = [1u32, 2u32, 3u32];")
	assert.NotContains(t, res.Code, "vec!")
	assert.NotContains(t, res.Code, "Vec<u32>")
}

func TestGenerate_ComparisonDropsLiteralSuffix(t *testing.T) {
	prog := program(fnDecl("check", []*jsast.Node{ident("n")},
		&jsast.Node{Type: "IfStatement", Test: binary(">", ident("n"), num(0)),
			Consequent: blockStmt(returnStmt(num(1)))},
		returnStmt(num(0)),
	))

	res := generate(t, prog, backend.Options{})

	assert.Contains(t, res.Code, "if n > 0 {")
	assert.NotContains(t, res.Code, "n > 0u32")
}

func TestGenerate_SwitchNestedBreakWarns(t *testing.T) {
	sw := &jsast.Node{
		Type:         "SwitchStatement",
		Discriminant: ident("mode"),
		Cases: []*jsast.Node{
			{Type: "SwitchCase", Test: num(0), ConsList: []*jsast.Node{
				{Type: "IfStatement", Test: ident("done"),
					Consequent: blockStmt(&jsast.Node{Type: "BreakStatement"})},
				exprStmt(&jsast.Node{Type: "AssignmentExpression", Operator: "=",
					Left: ident("out"), Right: num(1)}),
				{Type: "BreakStatement"},
			}},
		},
	}
	prog := program(fnDecl("dispatch", []*jsast.Node{ident("mode"), ident("done")},
		letDecl("out", num(0)), sw, returnStmt(ident("out"))))

	res := generate(t, prog, backend.Options{})

	joined := strings.Join(res.Warnings, "\n")
	assert.Contains(t, joined, "match arm")
}
