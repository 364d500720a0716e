// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package rust

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dacolabs/transpile/internal/backend"
)

// opPrec is the Rust binary operator precedence table; higher binds tighter.
// Range (..) is the loosest, matching the language grammar.
var opPrec = map[string]int{
	"..": 0,
	"||": 1,
	"&&": 2,
	"==": 3, "!=": 3, "<": 3, ">": 3, "<=": 3, ">=": 3,
	"|":  4,
	"^":  5,
	"&":  6,
	"<<": 7, ">>": 7,
	"+": 8, "-": 8,
	"*": 9, "/": 9, "%": 9,
}

const (
	castPrec    = 10
	unaryPrec   = 11
	postfixPrec = 12
)

// Emitter renders a Rust target AST as source text. State (indent depth,
// builder) is scoped to one Emit call; use one Emitter per invocation.
type Emitter struct {
	opts     backend.Options
	warnings []string
	sb       *strings.Builder
	depth    int
}

// NewEmitter creates an Emitter for a single Emit call.
func NewEmitter(opts backend.Options) *Emitter {
	return &Emitter{opts: opts.Normalized()}
}

// Warnings returns warnings accumulated by the last Emit.
func (e *Emitter) Warnings() []string { return e.warnings }

// Emit renders the module. Deterministic for identical AST and options.
func (e *Emitter) Emit(root Node) string {
	e.sb = &strings.Builder{}
	e.depth = 0
	e.warnings = nil
	e.emitStmt(root)
	return e.sb.String()
}

func (e *Emitter) line(s string) {
	for i := 0; i < e.depth; i++ {
		e.sb.WriteString(e.opts.Indent)
	}
	e.sb.WriteString(s)
	e.sb.WriteString(e.opts.LineEnding)
}

func (e *Emitter) blank() {
	e.sb.WriteString(e.opts.LineEnding)
}

// emitStmt dispatches on the node kind. The switch is total over statement
// kinds; anything else lands in the placeholder fallback so partial output
// stays inspectable.
func (e *Emitter) emitStmt(n Node) {
	switch s := n.(type) {
	case *Module:
		e.emitModule(s)
	case *Comment:
		e.line("// " + s.Text)
	case *Struct:
		e.emitStruct(s)
	case *Function:
		e.emitFunction(s, false)
	case *Const:
		e.line(fmt.Sprintf("pub const %s: %s = %s;", s.Name, s.Type, e.expr(s.Value)))
	case *Let:
		e.emitLet(s)
	case *Assign:
		e.line(fmt.Sprintf("%s %s %s;", e.expr(s.Target), s.Op, e.expr(s.Value)))
	case *ExprStmt:
		e.line(e.expr(s.X) + ";")
	case *If:
		e.emitIf(s, "if")
	case *While:
		e.line("while " + e.expr(s.Cond) + " {")
		e.emitBlockBody(s.Body)
		e.line("}")
	case *Loop:
		e.line("loop {")
		e.emitBlockBody(s.Body)
		e.line("}")
	case *ForRange:
		dots := ".."
		if s.Inclusive {
			dots = "..="
		}
		e.line(fmt.Sprintf("for %s in %s%s%s {", s.Var, e.expr(s.From), dots, e.expr(s.To)))
		e.emitBlockBody(s.Body)
		e.line("}")
	case *ForIn:
		e.line(fmt.Sprintf("for %s in %s {", s.Pat, e.expr(s.Iter)))
		e.emitBlockBody(s.Body)
		e.line("}")
	case *Match:
		e.emitMatch(s)
	case *Break:
		e.line("break;")
	case *Continue:
		e.line("continue;")
	case *Return:
		if s.Value == nil {
			e.line("return;")
		} else {
			e.line("return " + e.expr(s.Value) + ";")
		}
	case *Block:
		e.line("{")
		e.emitBlockBody(s)
		e.line("}")
	case *Placeholder:
		e.line("// UNSUPPORTED: " + s.Message)
	default:
		e.warnings = append(e.warnings, fmt.Sprintf("emitter: no statement rule for node kind %d", n.Kind()))
		e.line(fmt.Sprintf("// UNSUPPORTED NODE KIND %d", n.Kind()))
	}
}

func (e *Emitter) emitModule(m *Module) {
	for _, b := range m.Banner {
		e.line("// " + b)
	}
	if len(m.Banner) > 0 {
		e.blank()
	}
	if m.NoStd {
		e.line("#![no_std]")
		e.blank()
	}
	for _, u := range m.Uses {
		e.line("use " + u + ";")
	}
	if len(m.Uses) > 0 {
		e.blank()
	}
	for i, item := range m.Items {
		if i > 0 {
			e.blank()
		}
		e.emitStmt(item)
	}
}

func (e *Emitter) emitStruct(s *Struct) {
	if e.opts.AddComments {
		for _, d := range s.Doc {
			e.line("/// " + d)
		}
	}
	e.line("#[derive(Clone)]")
	e.line("pub struct " + s.Name + " {")
	e.depth++
	for _, f := range s.Fields {
		e.line(fmt.Sprintf("pub %s: %s,", f.Name, f.Type))
	}
	e.depth--
	e.line("}")

	if len(s.Methods) == 0 {
		return
	}
	e.blank()
	e.line("impl " + s.Name + " {")
	e.depth++
	for i, m := range s.Methods {
		if i > 0 {
			e.blank()
		}
		e.emitFunction(m, true)
	}
	e.depth--
	e.line("}")
}

func (e *Emitter) emitFunction(f *Function, inImpl bool) {
	if e.opts.AddComments {
		for _, d := range f.Doc {
			e.line("/// " + d)
		}
	}
	var sig strings.Builder
	if f.Name != "main" && (inImpl || isExportedName(f.Name)) {
		sig.WriteString("pub ")
	}
	sig.WriteString("fn ")
	sig.WriteString(f.Name)
	sig.WriteString("(")
	var params []string
	if f.SelfRef {
		params = append(params, "&mut self")
	}
	for _, p := range f.Params {
		params = append(params, p.Name+": "+p.Type.String())
	}
	sig.WriteString(strings.Join(params, ", "))
	sig.WriteString(")")
	if f.Return != nil {
		sig.WriteString(" -> " + f.Return.String())
	}
	sig.WriteString(" {")
	e.line(sig.String())
	e.emitBlockBody(f.Body)
	e.line("}")
}

// isExportedName keeps synthesized helpers private while generated API
// functions are pub.
func isExportedName(name string) bool {
	switch name {
	case "xor_arrays", "bytes_to_hex", "hex_to_bytes", "gf256_mul":
		return false
	}
	return true
}

func (e *Emitter) emitLet(s *Let) {
	var b strings.Builder
	b.WriteString("let ")
	if s.Mutable {
		b.WriteString("mut ")
	}
	b.WriteString(s.Name)
	if s.Type != nil {
		b.WriteString(": " + s.Type.String())
	}
	if s.Value != nil {
		b.WriteString(" = " + e.expr(s.Value))
	}
	b.WriteString(";")
	e.line(b.String())
}

func (e *Emitter) emitIf(s *If, keyword string) {
	e.line(keyword + " " + e.expr(s.Cond) + " {")
	e.emitBlockBody(s.Then)
	switch alt := s.Else.(type) {
	case nil:
		e.line("}")
	case *If:
		e.lineNoEnding("} else ")
		e.emitIfChain(alt)
	case *Block:
		e.line("} else {")
		e.emitBlockBody(alt)
		e.line("}")
	default:
		e.line("}")
	}
}

// lineNoEnding writes an indented fragment without the line terminator so an
// else-if chain continues on the same line.
func (e *Emitter) lineNoEnding(s string) {
	for i := 0; i < e.depth; i++ {
		e.sb.WriteString(e.opts.Indent)
	}
	e.sb.WriteString(s)
}

// emitIfChain continues `} else if cond {` without re-indenting.
func (e *Emitter) emitIfChain(s *If) {
	e.sb.WriteString("if " + e.expr(s.Cond) + " {")
	e.sb.WriteString(e.opts.LineEnding)
	e.emitBlockBody(s.Then)
	switch alt := s.Else.(type) {
	case nil:
		e.line("}")
	case *If:
		e.lineNoEnding("} else ")
		e.emitIfChain(alt)
	case *Block:
		e.line("} else {")
		e.emitBlockBody(alt)
		e.line("}")
	default:
		e.line("}")
	}
}

func (e *Emitter) emitBlockBody(b *Block) {
	if b == nil {
		return
	}
	e.depth++
	for _, s := range b.Stmts {
		e.emitStmt(s)
	}
	e.depth--
}

func (e *Emitter) emitMatch(m *Match) {
	e.line("match " + e.expr(m.Scrutinee) + " {")
	e.depth++
	for _, arm := range m.Arms {
		pat := "_"
		if !arm.Default {
			pats := make([]string, len(arm.Pats))
			for i, p := range arm.Pats {
				pats[i] = e.expr(p)
			}
			pat = strings.Join(pats, " | ")
		}
		if arm.Body == nil || len(arm.Body.Stmts) == 0 {
			e.line(pat + " => {}")
			continue
		}
		e.line(pat + " => {")
		e.emitBlockBody(arm.Body)
		e.line("}")
	}
	e.depth--
	e.line("}")
}

// --- expressions ---

// exprPrec returns the binding strength of an expression node for
// parenthesization decisions.
func exprPrec(n Node) int {
	switch x := n.(type) {
	case *Binary:
		if p, ok := opPrec[x.Op]; ok {
			return p
		}
		return 3
	case *Cast:
		return castPrec
	case *Unary, *Ref:
		return unaryPrec
	case *IfExpr, *Closure:
		return 0
	}
	return postfixPrec
}

// expr renders an expression node. Total over expression kinds; unknown
// kinds render a marked placeholder and record a warning rather than
// panicking.
func (e *Emitter) expr(n Node) string {
	if n == nil {
		return "/* missing */"
	}
	switch x := n.(type) {
	case *Literal:
		return e.literal(x)
	case *Ident:
		return x.Name
	case *Unary:
		return x.Op + e.operand(x.X, unaryPrec)
	case *Binary:
		return e.binary(x)
	case *Cast:
		return e.operand(x.X, castPrec) + " as " + x.To.String()
	case *FieldExpr:
		return e.operand(x.X, postfixPrec) + "." + x.Name
	case *IndexExpr:
		return e.operand(x.X, postfixPrec) + "[" + e.expr(x.Index) + "]"
	case *Call:
		return e.call(x)
	case *MethodCall:
		return e.methodCall(x)
	case *ArrayLit:
		return e.arrayLit(x)
	case *StructLit:
		return e.structLit(x)
	case *Ref:
		if x.Mutable {
			return "&mut " + e.operand(x.X, unaryPrec)
		}
		return "&" + e.operand(x.X, unaryPrec)
	case *Closure:
		return e.closure(x)
	case *MacroCall:
		return e.macroCall(x)
	case *IfExpr:
		return "if " + e.expr(x.Cond) + " { " + e.expr(x.Then) + " } else { " + e.expr(x.Else) + " }"
	case *Placeholder:
		return "/* unsupported: " + x.Message + " */"
	}
	e.warnings = append(e.warnings, fmt.Sprintf("emitter: no expression rule for node kind %d", n.Kind()))
	return fmt.Sprintf("/* UNSUPPORTED NODE KIND %d */", n.Kind())
}

// operand renders a child expression, parenthesizing when it binds looser
// than the surrounding context requires.
func (e *Emitter) operand(n Node, need int) string {
	s := e.expr(n)
	if exprPrec(n) < need {
		return "(" + s + ")"
	}
	return s
}

func (e *Emitter) binary(x *Binary) string {
	p := opPrec[x.Op]
	if x.Op == ".." {
		left, right := "", ""
		if x.X != nil {
			left = e.operand(x.X, 1)
		}
		if x.Y != nil {
			right = e.operand(x.Y, 1)
		}
		return left + ".." + right
	}
	left := e.expr(x.X)
	if cp := exprPrec(x.X); cp < p || (cp == p && p == 3) {
		// Comparisons are non-associative in Rust; equal-precedence
		// children need parentheses on both sides.
		left = "(" + left + ")"
	}
	right := e.expr(x.Y)
	if cp := exprPrec(x.Y); cp < p || cp == p {
		// Binary operators are left-associative: an equal-precedence child
		// on the right changes grouping without parentheses.
		right = "(" + right + ")"
	}
	return left + " " + x.Op + " " + right
}

func (e *Emitter) call(x *Call) string {
	fn := e.expr(x.Fn)
	if _, ok := x.Fn.(*Closure); ok {
		fn = "(" + fn + ")"
	}
	args := make([]string, len(x.Args))
	for i, a := range x.Args {
		args[i] = e.expr(a)
	}
	return fn + "(" + strings.Join(args, ", ") + ")"
}

func (e *Emitter) methodCall(x *MethodCall) string {
	recv := e.operand(x.Recv, postfixPrec)
	args := make([]string, len(x.Args))
	for i, a := range x.Args {
		args[i] = e.expr(a)
	}
	return recv + "." + x.Name + "(" + strings.Join(args, ", ") + ")"
}

func (e *Emitter) arrayLit(x *ArrayLit) string {
	if x.Repeat != nil {
		return "[" + e.expr(x.Repeat) + "; " + e.expr(x.Len) + "]"
	}
	elems := make([]string, len(x.Elems))
	for i, el := range x.Elems {
		elems[i] = e.expr(el)
	}
	body := strings.Join(elems, ", ")
	if x.IsVec {
		return "vec![" + body + "]"
	}
	return "[" + body + "]"
}

func (e *Emitter) structLit(x *StructLit) string {
	if len(x.Fields) == 0 {
		return x.Name + " {}"
	}
	fields := make([]string, len(x.Fields))
	for i, f := range x.Fields {
		fields[i] = f.Name + ": " + e.expr(f.Value)
	}
	return x.Name + " { " + strings.Join(fields, ", ") + " }"
}

func (e *Emitter) closure(x *Closure) string {
	head := "|" + strings.Join(x.Params, ", ") + "| "
	if b, ok := x.Body.(*Block); ok {
		return head + e.renderBlockExpr(b)
	}
	return head + e.expr(x.Body)
}

// renderBlockExpr renders a block in expression position, indented relative
// to the current depth.
func (e *Emitter) renderBlockExpr(b *Block) string {
	saved := e.sb
	e.sb = &strings.Builder{}
	e.line("{")
	e.emitBlockBody(b)
	e.lineNoEnding("}")
	out := e.sb.String()
	e.sb = saved
	// The opening brace inherits indentation from its caller position.
	return strings.TrimLeft(out, " \t")
}

func (e *Emitter) macroCall(x *MacroCall) string {
	args := make([]string, len(x.Args))
	for i, a := range x.Args {
		args[i] = e.expr(a)
	}
	if x.Name == "vec" {
		return "vec![" + strings.Join(args, ", ") + "]"
	}
	return x.Name + "!(" + strings.Join(args, ", ") + ")"
}

func (e *Emitter) literal(x *Literal) string {
	switch x.LitKind {
	case LitInt:
		return strconv.FormatInt(x.Int, 10) + x.Suffix
	case LitFloat:
		s := strconv.FormatFloat(x.Float, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s + x.Suffix
	case LitStr:
		return "\"" + escapeString(x.Str) + "\""
	case LitBool:
		return strconv.FormatBool(x.Bool)
	case LitChar:
		return "'" + escapeChar(x.Char) + "'"
	}
	return "/* unsupported literal */"
}

// escapeString escapes a string for a Rust string literal.
func escapeString(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case 0:
			b.WriteString(`\0`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func escapeChar(r rune) string {
	switch r {
	case '\\':
		return `\\`
	case '\'':
		return `\'`
	case '\n':
		return `\n`
	case '\r':
		return `\r`
	case '\t':
		return `\t`
	}
	return string(r)
}
