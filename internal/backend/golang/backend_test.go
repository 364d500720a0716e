// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package golang

import (
	"strconv"
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

func binaryExpr(op string, left, right *jsast.Node) *jsast.Node {
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
		returnStmt(binaryExpr(">>>", binaryExpr("+", ident("a"), ident("b")), num(0))),
	))

	res := generate(t, prog, backend.Options{})

	assert.Contains(t, res.Code, "package generated")
	assert.Contains(t, res.Code, "func Add(a uint32, b uint32) uint32 {")
	// Go's fixed-width arithmetic wraps natively; no helper call.
	assert.Contains(t, res.Code, "return a + b")
}

func TestGenerate_CStyleForPreserved(t *testing.T) {
	loop := &jsast.Node{
		Type: "ForStatement",
		Init: letDecl("i", num(0)),
		Test: binaryExpr("<", ident("i"), num(10)),
		Update: &jsast.Node{Type: "UpdateExpression", Operator: "++",
			Argument: ident("i")},
		BodyNode: blockStmt(
			exprStmt(&jsast.Node{Type: "AssignmentExpression", Operator: "+=",
				Left: ident("sum"),
				Right: &jsast.Node{Type: "MemberExpression", Computed: true,
					Object: ident("arr"), Property: ident("i")}}),
		),
	}
	prog := program(fnDecl("total", []*jsast.Node{ident("arr")},
		letDecl("sum", num(0)), loop, returnStmt(ident("sum"))))

	res := generate(t, prog, backend.Options{})

	assert.Contains(t, res.Code, "for i := 0; i < 10; i += 1 {")
	assert.Contains(t, res.Code, "sum += arr[i]")
}

func TestGenerate_Pack32AddsBinaryImport(t *testing.T) {
	prog := program(fnDecl("word", []*jsast.Node{ident("b0"), ident("b1"), ident("b2"), ident("b3")},
		returnStmt(opCall("Pack32LE", ident("b0"), ident("b1"), ident("b2"), ident("b3"))),
	))

	res := generate(t, prog, backend.Options{})

	assert.Contains(t, res.Code, `import "encoding/binary"`)
	assert.Contains(t, res.Code, "binary.LittleEndian.Uint32([]byte{byte(b0), byte(b1), byte(b2), byte(b3)})")
}

func TestGenerate_RotateUsesBits(t *testing.T) {
	prog := program(fnDecl("round", []*jsast.Node{ident("value")},
		returnStmt(opCall("RotL32", ident("value"), num(8))),
	))

	res := generate(t, prog, backend.Options{})

	assert.Contains(t, res.Code, `import "math/bits"`)
	assert.Contains(t, res.Code, "bits.RotateLeft32(value, 8)")
}

func TestGenerate_RotateRightNegatesCount(t *testing.T) {
	prog := program(fnDecl("round", []*jsast.Node{ident("value")},
		returnStmt(opCall("RotR32", ident("value"), num(3))),
	))

	res := generate(t, prog, backend.Options{})

	assert.Contains(t, res.Code, "bits.RotateLeft32(value, -3)")
}

func TestGenerate_ClassToStructAndConstructor(t *testing.T) {
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
			Type:   "FunctionExpression",
			Params: []*jsast.Node{ident("block")},
			BodyNode: blockStmt(returnStmt(&jsast.Node{Type: "MemberExpression",
				Object: &jsast.Node{Type: "ThisExpression"}, Property: ident("rounds")})),
		},
	}
	prog := program(&jsast.Node{
		Type: "ClassDeclaration", ID: ident("Cipher"),
		BodyNode: &jsast.Node{Type: "ClassBody", Body: []*jsast.Node{ctor, method}},
	})

	res := generate(t, prog, backend.Options{})

	assert.Contains(t, res.Code, "type Cipher struct {")
	assert.Contains(t, res.Code, "Key []byte")
	assert.Contains(t, res.Code, "Rounds uint32")
	assert.Contains(t, res.Code, "func NewCipher(key []byte) *Cipher {")
	assert.Contains(t, res.Code, "return &Cipher{Key: key, Rounds: 10}")
	assert.Contains(t, res.Code, "func (c *Cipher) Encrypt(block []byte)")
	assert.Contains(t, res.Code, "return c.Rounds")
}

func TestGenerate_ErrorHandlingChannel(t *testing.T) {
	prog := program(fnDecl("check", []*jsast.Node{ident("length")},
		&jsast.Node{Type: "IfStatement",
			Test: binaryExpr("===", ident("length"), num(0)),
			Consequent: blockStmt(&jsast.Node{Type: "ThrowStatement",
				Argument: &jsast.Node{Type: "NewExpression", Callee: ident("Error"),
					Arguments: []*jsast.Node{str("empty input")}}}),
		},
		returnStmt(ident("length")),
	))

	res := generate(t, prog, backend.Options{ErrorHandling: true})

	assert.Contains(t, res.Code, `import "fmt"`)
	assert.Contains(t, res.Code, "(int, error)")
	assert.Contains(t, res.Code, `fmt.Errorf("empty input")`)
	assert.Contains(t, res.Code, "return length, nil")
}

func TestGenerate_ThrowWithoutErrorModePanics(t *testing.T) {
	prog := program(fnDecl("boom", nil,
		&jsast.Node{Type: "ThrowStatement", Argument: str("bad state")},
	))

	res := generate(t, prog, backend.Options{})

	assert.Contains(t, res.Code, `panic("bad state")`)
	assert.NotEmpty(t, res.Warnings)
}

func TestGenerate_SwitchNative(t *testing.T) {
	brk := &jsast.Node{Type: "BreakStatement"}
	sw := &jsast.Node{
		Type:         "SwitchStatement",
		Discriminant: ident("mode"),
		Cases: []*jsast.Node{
			{Type: "SwitchCase", Test: num(0), ConsList: []*jsast.Node{
				exprStmt(&jsast.Node{Type: "AssignmentExpression", Operator: "=",
					Left: ident("out"), Right: num(1)}), brk,
			}},
			{Type: "SwitchCase", ConsList: []*jsast.Node{
				exprStmt(&jsast.Node{Type: "AssignmentExpression", Operator: "=",
					Left: ident("out"), Right: num(2)}),
			}},
		},
	}
	prog := program(fnDecl("dispatch", []*jsast.Node{ident("mode")},
		letDecl("out", num(0)), sw, returnStmt(ident("out"))))

	res := generate(t, prog, backend.Options{})

	assert.Contains(t, res.Code, "switch mode {")
	assert.Contains(t, res.Code, "case 0:")
	assert.Contains(t, res.Code, "default:")
	assert.NotContains(t, res.Code, "fallthrough")
}

func TestGenerate_DoWhileBecomesForBreak(t *testing.T) {
	prog := program(fnDecl("spin", []*jsast.Node{ident("n")},
		&jsast.Node{Type: "DoWhileStatement",
			Test: binaryExpr(">", ident("n"), num(0)),
			BodyNode: blockStmt(exprStmt(&jsast.Node{Type: "UpdateExpression",
				Operator: "--", Argument: ident("n")})),
		},
	))

	res := generate(t, prog, backend.Options{})

	assert.Contains(t, res.Code, "for {")
	assert.Contains(t, res.Code, "if !(n > 0) {")
	assert.Contains(t, res.Code, "break")
}

func TestGenerate_PushBecomesAppend(t *testing.T) {
	prog := program(fnDecl("collect", []*jsast.Node{ident("output"), ident("v")},
		exprStmt(&jsast.Node{Type: "CallExpression",
			Callee: &jsast.Node{Type: "MemberExpression",
				Object: ident("output"), Property: ident("push")},
			Arguments: []*jsast.Node{ident("v")},
		}),
	))

	res := generate(t, prog, backend.Options{})

	assert.Contains(t, res.Code, "output = append(output, v)")
}

func TestGenerate_ClearArrayZeroesInPlace(t *testing.T) {
	prog := program(fnDecl("wipe", []*jsast.Node{ident("state")},
		exprStmt(opCall("ClearArray", ident("state"))),
	))

	res := generate(t, prog, backend.Options{})

	assert.Contains(t, res.Code, "for i := range state {")
	assert.Contains(t, res.Code, "state[i] = 0")
}

func TestGenerate_XorSynthesizesHelper(t *testing.T) {
	prog := program(fnDecl("mask", []*jsast.Node{ident("data"), ident("key")},
		returnStmt(opCall("XorArrays", ident("data"), ident("key"))),
	))

	res := generate(t, prog, backend.Options{})

	assert.Contains(t, res.Code, "xorBytes(data, key)")
	assert.Contains(t, res.Code, "func xorBytes(a []byte, b []byte) []byte {")
	assert.Contains(t, res.Code, "out[i] = a[i] ^ b[i]")
}

func TestGenerate_HexUsesStdlib(t *testing.T) {
	prog := program(fnDecl("render", []*jsast.Node{ident("data")},
		returnStmt(opCall("BytesToHex", ident("data"))),
	))

	res := generate(t, prog, backend.Options{})

	assert.Contains(t, res.Code, `import "encoding/hex"`)
	assert.Contains(t, res.Code, "hex.EncodeToString(data)")
}

func TestGenerate_UnsignedShiftCasts(t *testing.T) {
	prog := program(fnDecl("shift", []*jsast.Node{ident("x")},
		returnStmt(binaryExpr(">>>", ident("x"), num(4))),
	))

	res := generate(t, prog, backend.Options{})

	assert.Contains(t, res.Code, "uint32(x) >> 4")
}

func TestGenerate_TernaryBecomesFuncLit(t *testing.T) {
	prog := program(fnDecl("pick", []*jsast.Node{ident("flag"), ident("a"), ident("b")},
		returnStmt(&jsast.Node{Type: "ConditionalExpression",
			Test:        binaryExpr(">", ident("flag"), num(0)),
			Consequent:  ident("a"),
			Alternate:   ident("b"),
		}),
	))

	res := generate(t, prog, backend.Options{})

	assert.Contains(t, res.Code, "func() uint32 {")
	assert.Contains(t, res.Code, "}()")
	assert.NotEmpty(t, res.Warnings)
}

func TestGenerate_ConstDeclaration(t *testing.T) {
	prog := program(&jsast.Node{Type: "VariableDeclaration", Kind: "const",
		Declarations: []*jsast.Node{
			{Type: "VariableDeclarator", ID: ident("numRounds"), Init: num(10)},
		}})

	res := generate(t, prog, backend.Options{})

	assert.Contains(t, res.Code, "const NUM_ROUNDS = 10")
}

func TestGenerate_PackageNameOption(t *testing.T) {
	res := generate(t, program(), backend.Options{PackageName: "cipher"})

	assert.Contains(t, res.Code, "package cipher")
}

func TestGenerate_BannerComments(t *testing.T) {
	res := generate(t, program(), backend.Options{AddComments: true, SourceName: "cipher.js"})

	assert.Contains(t, res.Code, "// Generated from cipher.js for Go")
	assert.Contains(t, res.Code, "// Auto-generated code - do not modify manually")
}

func TestGenerate_MalformedRoot(t *testing.T) {
	_, err := New().Generate(&jsast.Node{Type: "ExpressionStatement"}, backend.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Program")

	_, err = New().Generate(nil, backend.Options{})
	require.Error(t, err)
}

func TestEmitter_BinaryPrecedence(t *testing.T) {
	e := NewEmitter(backend.Options{})

	// | binds looser than & in Go.
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

	// Shifts bind with the multiplicative class in Go.
	out = e.expr(&Binary{Op: "+",
		X: &Ident{Name: "a"},
		Y: &Binary{Op: "<<", X: &Ident{Name: "b"}, Y: &Ident{Name: "c"}},
	})
	assert.Equal(t, "a + b << c", out)
}

func TestEmitter_StringEscaping(t *testing.T) {
	e := NewEmitter(backend.Options{})

	out := e.expr(&Literal{LitKind: LitStr, Str: "a\"b\\c\nd"})
	assert.Equal(t, `"a\"b\\c\nd"`, out)
}

func TestGenerate_ClosureReturnStaysLocal(t *testing.T) {
	closure := &jsast.Node{Type: "ArrowFunctionExpression",
		BodyNode: blockStmt(returnStmt(str("hello")))}
	prog := program(fnDecl("outer", nil,
		letDecl("f", closure),
		returnStmt(num(1)),
	))

	res := generate(t, prog, backend.Options{})

	assert.Contains(t, res.Code, "func Outer() uint32 {")
	assert.Contains(t, res.Code, "func() string {")
	assert.NotContains(t, res.Code, "func Outer() string")
}

func TestGenerate_ClosureSkipsErrorChannel(t *testing.T) {
	closure := &jsast.Node{Type: "ArrowFunctionExpression",
		BodyNode: blockStmt(returnStmt(num(5)))}
	prog := program(fnDecl("outer", nil,
		letDecl("f", closure),
		returnStmt(num(1)),
	))

	res := generate(t, prog, backend.Options{ErrorHandling: true})

	assert.Contains(t, res.Code, "func Outer() (uint32, error) {")
	assert.Contains(t, res.Code, "func() uint32 {")
	assert.NotContains(t, res.Code, "return 5, nil")
	assert.Contains(t, res.Code, "return 1, nil")
}

func TestGenerate_ConstTableBecomesVar(t *testing.T) {
	prog := program(&jsast.Node{Type: "VariableDeclaration", Kind: "const",
		Declarations: []*jsast.Node{
			{Type: "VariableDeclarator", ID: ident("sbox"), Init: &jsast.Node{
				Type: "ArrayExpression", Elements: []*jsast.Node{num(1), num(2), num(3)},
			}},
		}})

	res := generate(t, prog, backend.Options{})

	assert.Contains(t, res.Code, "var SBOX = [...]uint32{1, 2, 3}")
	assert.NotContains(t, res.Code, "const SBOX")
}

func TestGenerate_ByteParamsUseByteAlias(t *testing.T) {
	prog := program(fnDecl("process", []*jsast.Node{ident("data")},
		returnStmt(ident("data")),
	))

	res := generate(t, prog, backend.Options{})

	assert.Contains(t, res.Code, "func Process(data []byte) []byte {")
	assert.NotContains(t, res.Code, "[]uint8")
}
