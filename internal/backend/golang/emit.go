// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package golang

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dacolabs/transpile/internal/backend"
)

// opPrec is the Go binary operator precedence table; higher binds tighter.
var opPrec = map[string]int{
	"||": 1,
	"&&": 2,
	"==": 3, "!=": 3, "<": 3, ">": 3, "<=": 3, ">=": 3,
	"+": 4, "-": 4, "|": 4, "^": 4,
	"*": 5, "/": 5, "%": 5, "<<": 5, ">>": 5, "&": 5, "&^": 5,
}

const (
	unaryPrec   = 6
	postfixPrec = 7
)

// Emitter renders a Go target AST as source text. State is scoped to one
// Emit call; use one Emitter per invocation.
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

// Emit renders the file. Deterministic for identical AST and options.
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

func (e *Emitter) emitStmt(n Node) {
	switch s := n.(type) {
	case *File:
		e.emitFile(s)
	case *Comment:
		e.line("// " + s.Text)
	case *Struct:
		e.emitStruct(s)
	case *Function:
		e.emitFunction(s)
	case *Const:
		e.line(fmt.Sprintf("const %s = %s", s.Name, e.expr(s.Value)))
	case *Var:
		if s.Value != nil {
			e.line(fmt.Sprintf("var %s = %s", s.Name, e.expr(s.Value)))
		} else {
			e.line(fmt.Sprintf("var %s %s", s.Name, s.Type))
		}
	case *ShortDecl:
		e.line(fmt.Sprintf("%s := %s", s.Name, e.expr(s.Value)))
	case *Assign:
		e.line(fmt.Sprintf("%s %s %s", e.expr(s.Target), s.Op, e.expr(s.Value)))
	case *ExprStmt:
		e.line(e.expr(s.X))
	case *If:
		e.emitIf(s)
	case *For:
		e.emitFor(s)
	case *Range:
		e.emitRange(s)
	case *Switch:
		e.emitSwitch(s)
	case *Break:
		e.line("break")
	case *Continue:
		e.line("continue")
	case *Return:
		if len(s.Values) == 0 {
			e.line("return")
		} else {
			vals := make([]string, len(s.Values))
			for i, v := range s.Values {
				vals[i] = e.expr(v)
			}
			e.line("return " + strings.Join(vals, ", "))
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

func (e *Emitter) emitFile(f *File) {
	for _, b := range f.Banner {
		e.line("// " + b)
	}
	if len(f.Banner) > 0 {
		e.blank()
	}
	e.line("package " + f.Package)
	e.blank()

	switch len(f.Imports) {
	case 0:
	case 1:
		e.line("import " + strconv.Quote(f.Imports[0]))
		e.blank()
	default:
		e.line("import (")
		e.depth++
		for _, p := range f.Imports {
			e.line(strconv.Quote(p))
		}
		e.depth--
		e.line(")")
		e.blank()
	}

	for i, item := range f.Items {
		if i > 0 {
			e.blank()
		}
		e.emitStmt(item)
	}
}

func (e *Emitter) emitStruct(s *Struct) {
	if e.opts.AddComments {
		for _, d := range s.Doc {
			e.line("// " + d)
		}
	}
	e.line("type " + s.Name + " struct {")
	e.depth++
	for _, f := range s.Fields {
		e.line(f.Name + " " + f.Type.String())
	}
	e.depth--
	e.line("}")
}

func (e *Emitter) emitFunction(f *Function) {
	if e.opts.AddComments {
		for _, d := range f.Doc {
			e.line("// " + d)
		}
	}
	var sig strings.Builder
	sig.WriteString("func ")
	if f.RecvType != "" {
		sig.WriteString(fmt.Sprintf("(%s *%s) ", f.RecvName, f.RecvType))
	}
	sig.WriteString(f.Name)
	sig.WriteString("(")
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Name + " " + p.Type.String()
	}
	sig.WriteString(strings.Join(params, ", "))
	sig.WriteString(")")
	sig.WriteString(resultClause(f.Return, f.ErrResult))
	sig.WriteString(" {")
	e.line(sig.String())
	e.emitBlockBody(f.Body)
	e.line("}")
}

// resultClause renders the function result list, including the error channel
// when enabled.
func resultClause(ret *Type, errResult bool) string {
	switch {
	case ret == nil && !errResult:
		return ""
	case ret == nil:
		return " error"
	case !errResult:
		return " " + ret.String()
	}
	return fmt.Sprintf(" (%s, error)", ret)
}

func (e *Emitter) emitIf(s *If) {
	e.line("if " + e.expr(s.Cond) + " {")
	e.emitBlockBody(s.Then)
	e.emitElse(s.Else)
}

func (e *Emitter) emitElse(alt Node) {
	switch a := alt.(type) {
	case nil:
		e.line("}")
	case *If:
		e.lineNoEnding("} else ")
		e.sb.WriteString("if " + e.expr(a.Cond) + " {")
		e.sb.WriteString(e.opts.LineEnding)
		e.emitBlockBody(a.Then)
		e.emitElse(a.Else)
	case *Block:
		e.line("} else {")
		e.emitBlockBody(a)
		e.line("}")
	default:
		e.line("}")
	}
}

func (e *Emitter) lineNoEnding(s string) {
	for i := 0; i < e.depth; i++ {
		e.sb.WriteString(e.opts.Indent)
	}
	e.sb.WriteString(s)
}

// emitFor renders the unified loop: `for {`, `for cond {` or the three-clause
// form.
func (e *Emitter) emitFor(s *For) {
	switch {
	case s.Init == nil && s.Post == nil && s.Cond == nil:
		e.line("for {")
	case s.Init == nil && s.Post == nil:
		e.line("for " + e.expr(s.Cond) + " {")
	default:
		cond := ""
		if s.Cond != nil {
			cond = e.expr(s.Cond)
		}
		e.line(fmt.Sprintf("for %s; %s; %s {", e.simpleStmt(s.Init), cond, e.simpleStmt(s.Post)))
	}
	e.emitBlockBody(s.Body)
	e.line("}")
}

// simpleStmt renders an init/post clause inline, without indentation or a
// line ending.
func (e *Emitter) simpleStmt(n Node) string {
	switch s := n.(type) {
	case nil:
		return ""
	case *ShortDecl:
		return s.Name + " := " + e.expr(s.Value)
	case *Assign:
		return e.expr(s.Target) + " " + s.Op + " " + e.expr(s.Value)
	case *ExprStmt:
		return e.expr(s.X)
	}
	e.warnings = append(e.warnings, fmt.Sprintf("emitter: unsupported loop clause kind %d", n.Kind()))
	return ""
}

func (e *Emitter) emitRange(s *Range) {
	vars := s.Key
	if vars == "" {
		vars = "_"
	}
	if s.Val != "" {
		vars += ", " + s.Val
	}
	e.line(fmt.Sprintf("for %s := range %s {", vars, e.expr(s.X)))
	e.emitBlockBody(s.Body)
	e.line("}")
}

func (e *Emitter) emitSwitch(s *Switch) {
	e.line("switch " + e.expr(s.Tag) + " {")
	for _, c := range s.Cases {
		if c.Default {
			e.line("default:")
		} else {
			vals := make([]string, len(c.Vals))
			for i, v := range c.Vals {
				vals[i] = e.expr(v)
			}
			e.line("case " + strings.Join(vals, ", ") + ":")
		}
		e.emitBlockBody(c.Body)
	}
	e.line("}")
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

// --- expressions ---

func exprPrec(n Node) int {
	switch x := n.(type) {
	case *Binary:
		if p, ok := opPrec[x.Op]; ok {
			return p
		}
		return 3
	case *Unary:
		return unaryPrec
	case *FuncLit:
		return 0
	}
	return postfixPrec
}

// expr renders an expression node. Unknown kinds render a marked placeholder
// and record a warning rather than panicking.
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
	case *Selector:
		return e.operand(x.X, postfixPrec) + "." + x.Name
	case *Index:
		return e.operand(x.X, postfixPrec) + "[" + e.expr(x.I) + "]"
	case *SliceExpr:
		low, high := "", ""
		if x.Low != nil {
			low = e.expr(x.Low)
		}
		if x.High != nil {
			high = e.expr(x.High)
		}
		return e.operand(x.X, postfixPrec) + "[" + low + ":" + high + "]"
	case *Call:
		args := make([]string, len(x.Args))
		for i, a := range x.Args {
			args[i] = e.expr(a)
		}
		return e.expr(x.Fn) + "(" + strings.Join(args, ", ") + ")"
	case *Ellipsis:
		return e.expr(x.X) + "..."
	case *Composite:
		return e.composite(x)
	case *FuncLit:
		return e.funcLit(x)
	case *Placeholder:
		return "/* unsupported: " + x.Message + " */"
	}
	e.warnings = append(e.warnings, fmt.Sprintf("emitter: no expression rule for node kind %d", n.Kind()))
	return fmt.Sprintf("/* UNSUPPORTED NODE KIND %d */", n.Kind())
}

func (e *Emitter) operand(n Node, need int) string {
	s := e.expr(n)
	if exprPrec(n) < need {
		return "(" + s + ")"
	}
	return s
}

func (e *Emitter) binary(x *Binary) string {
	p := opPrec[x.Op]
	left := e.expr(x.X)
	if exprPrec(x.X) < p {
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

func (e *Emitter) composite(x *Composite) string {
	name := x.Named
	if name == "" {
		name = x.Type.String()
	}
	if len(x.Elems) == 0 {
		return name + "{}"
	}
	elems := make([]string, len(x.Elems))
	for i, el := range x.Elems {
		if el.Key != nil {
			elems[i] = e.expr(el.Key) + ": " + e.expr(el.Value)
		} else {
			elems[i] = e.expr(el.Value)
		}
	}
	return name + "{" + strings.Join(elems, ", ") + "}"
}

func (e *Emitter) funcLit(x *FuncLit) string {
	params := make([]string, len(x.Params))
	for i, p := range x.Params {
		params[i] = p.Name + " " + p.Type.String()
	}
	head := "func(" + strings.Join(params, ", ") + ")"
	if x.Return != nil {
		head += " " + x.Return.String()
	}
	return head + " " + e.renderBlockExpr(x.Body)
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

func (e *Emitter) literal(x *Literal) string {
	switch x.LitKind {
	case LitInt:
		return strconv.FormatInt(x.Int, 10)
	case LitFloat:
		s := strconv.FormatFloat(x.Float, 'g', -1, 64)
		if !strings.ContainsAny(s, ".eE") {
			s += ".0"
		}
		return s
	case LitStr:
		return strconv.Quote(x.Str)
	case LitBool:
		return strconv.FormatBool(x.Bool)
	case LitNil:
		return "nil"
	case LitRune:
		return strconv.QuoteRune(x.Rune)
	}
	return "/* unsupported literal */"
}
