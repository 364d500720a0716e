// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package rust

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dacolabs/transpile/internal/backend"
	"github.com/dacolabs/transpile/internal/infer"
	"github.com/dacolabs/transpile/internal/jsast"
	"github.com/dacolabs/transpile/internal/naming"
)

// rustKeywords are reserved words that force the underscore-suffix rename.
var rustKeywords = map[string]bool{
	"as": true, "box": true, "break": true, "const": true, "continue": true,
	"crate": true, "dyn": true, "else": true, "enum": true, "extern": true,
	"false": true, "fn": true, "for": true, "if": true, "impl": true,
	"in": true, "let": true, "loop": true, "match": true, "mod": true,
	"move": true, "mut": true, "pub": true, "ref": true, "return": true,
	"self": true, "static": true, "struct": true, "super": true,
	"trait": true, "true": true, "type": true, "unsafe": true, "use": true,
	"where": true, "while": true, "yield": true,
}

type varInfo struct {
	name string
	typ  *Type
}

// Transformer walks the JavaScript AST and produces the Rust target AST.
// State is scoped to one Transform call; reuse across overlapping calls is
// not safe. Create one Transformer per invocation.
type Transformer struct {
	opts     backend.Options
	warnings []string
	uses     map[string]bool
	helpers  map[string]bool
	scopes   []map[string]varInfo

	retType *Type
	retSet  bool
}

// NewTransformer creates a Transformer for a single Transform call.
func NewTransformer(opts backend.Options) *Transformer {
	return &Transformer{opts: opts.Normalized()}
}

// Warnings returns the advisory warnings accumulated by the last Transform.
func (t *Transformer) Warnings() []string { return t.warnings }

func (t *Transformer) warnf(format string, args ...any) {
	t.warnings = append(t.warnings, fmt.Sprintf(format, args...))
}

func (t *Transformer) reset() {
	t.warnings = nil
	t.uses = make(map[string]bool)
	t.helpers = make(map[string]bool)
	t.scopes = []map[string]varInfo{make(map[string]varInfo)}
}

// Transform converts a Program node into a Rust module. It fails fast on
// malformed input and degrades with warnings on unsupported constructs.
func (t *Transformer) Transform(program *jsast.Node) (*Module, error) {
	if err := backend.CheckProgram(program); err != nil {
		return nil, err
	}
	t.reset()

	mod := &Module{NoStd: t.opts.NoStd}
	if t.opts.AddComments {
		src := t.opts.SourceName
		if src == "" {
			src = "JavaScript source"
		}
		mod.Banner = []string{
			fmt.Sprintf("Generated from %s for Rust (edition %s)", src, t.opts.Edition),
			"Auto-generated code - do not modify manually",
		}
	}

	var stray []*jsast.Node
	for _, stmt := range program.Body {
		switch stmt.Type {
		case "FunctionDeclaration":
			mod.Items = append(mod.Items, t.transformFunction(stmt, false))
		case "ClassDeclaration":
			mod.Items = append(mod.Items, t.transformClass(stmt))
		case "VariableDeclaration":
			if stmt.Kind == "const" {
				mod.Items = append(mod.Items, t.transformConsts(stmt)...)
				continue
			}
			stray = append(stray, stmt)
		case "EmptyStatement":
		default:
			stray = append(stray, stmt)
		}
	}

	if len(stray) > 0 {
		t.pushScope()
		body := &Block{}
		for _, s := range stray {
			body.Stmts = append(body.Stmts, t.transformStmt(s)...)
		}
		t.popScope()
		mod.Items = append(mod.Items, &Function{Name: "main", Body: body})
	}

	mod.Items = append(mod.Items, t.helperItems()...)
	mod.Uses = t.sortedUses()
	return mod, nil
}

func (t *Transformer) sortedUses() []string {
	uses := make([]string, 0, len(t.uses))
	for u := range t.uses {
		uses = append(uses, u)
	}
	sort.Strings(uses)
	return uses
}

// --- scopes ---

func (t *Transformer) pushScope() {
	t.scopes = append(t.scopes, make(map[string]varInfo))
}

func (t *Transformer) popScope() {
	t.scopes = t.scopes[:len(t.scopes)-1]
}

// declare converts a JavaScript name to its Rust form, resolves keyword
// collisions and records the binding so every later use site gets the same
// spelling.
func (t *Transformer) declare(jsName string, typ *Type) string {
	name := naming.Keyword(naming.ToSnakeCase(jsName), rustKeywords)
	t.scopes[len(t.scopes)-1][jsName] = varInfo{name: name, typ: typ}
	t.noteUses(typ)
	return name
}

// noteUses records `use` lines required by a type.
func (t *Transformer) noteUses(typ *Type) {
	for cur := typ; cur != nil; cur = cur.Elem {
		if cur.Name == "HashMap" {
			t.uses["std::collections::HashMap"] = true
		}
	}
}

func (t *Transformer) lookup(jsName string) (varInfo, bool) {
	for i := len(t.scopes) - 1; i >= 0; i-- {
		if v, ok := t.scopes[i][jsName]; ok {
			return v, true
		}
	}
	return varInfo{}, false
}

func (t *Transformer) identName(jsName string) string {
	if v, ok := t.lookup(jsName); ok {
		return v.name
	}
	return naming.Keyword(naming.ToSnakeCase(jsName), rustKeywords)
}

// --- declarations ---

func (t *Transformer) transformConsts(decl *jsast.Node) []Node {
	var items []Node
	for _, d := range decl.Declarations {
		if d.ID == nil {
			continue
		}
		hint := infer.Resolve(d.TypeAnnotation, d.Init, d.ID.Name, t.opts.TypeKnowledge)
		typ := typeFromHint(hint, false)
		name := naming.ToScreamingSnake(d.ID.Name)
		value := t.transformExpr(d.Init)
		if lit, ok := value.(*ArrayLit); ok && lit.Repeat == nil {
			// vec! is not const-evaluable; table constants are fixed-size
			// arrays.
			lit.IsVec = false
			elem := Prim("u32")
			if typ.Elem != nil {
				elem = typ.Elem
			}
			typ = Prim(fmt.Sprintf("[%s; %d]", elem, len(lit.Elems)))
		}
		t.scopes[0][d.ID.Name] = varInfo{name: name, typ: typ}
		items = append(items, &Const{Name: name, Type: typ, Value: value})
	}
	return items
}

func (t *Transformer) transformFunction(fn *jsast.Node, assoc bool) *Function {
	name := "closure"
	if fn.ID != nil {
		name = naming.Keyword(naming.ToSnakeCase(fn.ID.Name), rustKeywords)
	}

	t.pushScope()
	savedRet, savedSet := t.retType, t.retSet
	t.retType, t.retSet = nil, false

	out := &Function{Name: name, Assoc: assoc}
	if t.opts.AddComments {
		for _, c := range fn.LeadingComments {
			out.Doc = append(out.Doc, strings.Split(strings.TrimSpace(c.Value), "\n")...)
		}
	}
	out.Params = t.transformParams(fn.Params)

	if fn.TypeAnnotation != "" {
		if h := infer.ParseHint(fn.TypeAnnotation); h.Class != infer.Unknown {
			t.retType = typeFromHint(h, false)
			t.retSet = true
		}
	}

	out.Body = t.transformBlockNode(fn.BodyNode)
	out.Return = t.retType

	if t.opts.ErrorHandling {
		t.warnf("function %s: Rust error handling is not threaded through returns; review Result usage manually", name)
	}

	t.retType, t.retSet = savedRet, savedSet
	t.popScope()
	return out
}

func (t *Transformer) transformParams(params []*jsast.Node) []Param {
	var out []Param
	for _, p := range params {
		switch p.Type {
		case "Identifier":
			hint := infer.Resolve(p.TypeAnnotation, nil, p.Name, t.opts.TypeKnowledge)
			typ := typeFromHint(hint, t.opts.UseZeroCopy)
			out = append(out, Param{Name: t.declare(p.Name, typ), Type: typ})
		case "AssignmentPattern":
			// Default values have no Rust equivalent; keep the parameter.
			t.warnf("default parameter value dropped for %q", patternName(p))
			if p.Left != nil && p.Left.Type == "Identifier" {
				hint := infer.Resolve(p.Left.TypeAnnotation, p.Right, p.Left.Name, t.opts.TypeKnowledge)
				typ := typeFromHint(hint, t.opts.UseZeroCopy)
				out = append(out, Param{Name: t.declare(p.Left.Name, typ), Type: typ})
			}
		default:
			t.warnf("unsupported parameter pattern %s", p.Type)
		}
	}
	return out
}

func patternName(p *jsast.Node) string {
	if p.Left != nil {
		return p.Left.Name
	}
	return p.Name
}

// transformClass lowers a JavaScript class to a struct plus an impl block.
// Fields are discovered from `this.x = ...` assignments in the constructor.
func (t *Transformer) transformClass(class *jsast.Node) *Struct {
	name := "Anonymous"
	if class.ID != nil {
		name = naming.ToPascalCase(class.ID.Name)
	}
	out := &Struct{Name: name}
	if class.SuperClass != nil {
		t.warnf("class %s: inheritance is not translated; base class %s dropped", name, class.SuperClass.Name)
	}
	if t.opts.AddComments {
		for _, c := range class.LeadingComments {
			out.Doc = append(out.Doc, strings.Split(strings.TrimSpace(c.Value), "\n")...)
		}
	}

	body := class.BodyNode
	if body == nil {
		return out
	}

	var ctor *jsast.Node
	for _, m := range body.Body {
		if m.Type != "MethodDefinition" || m.ValueNode == nil {
			continue
		}
		if m.Kind == "constructor" {
			ctor = m
		}
	}

	// Field discovery runs before methods so `self.field` resolves inside
	// every method body.
	if ctor != nil {
		out.Fields = t.collectFields(ctor.ValueNode)
	}

	for _, m := range body.Body {
		if m.Type != "MethodDefinition" || m.ValueNode == nil {
			continue
		}
		switch m.Kind {
		case "constructor":
			out.Methods = append(out.Methods, t.transformConstructor(name, m.ValueNode, out.Fields))
		case "method":
			fn := t.transformMethod(m)
			out.Methods = append(out.Methods, fn)
		default:
			t.warnf("class %s: %s accessor %q is not translated", name, m.Kind, m.Key.Name)
		}
	}
	return out
}

// collectFields scans constructor statements for `this.x = expr` and infers
// a field type per assignment. The leading underscore of private-by-
// convention names is stripped.
func (t *Transformer) collectFields(ctor *jsast.Node) []StructField {
	var fields []StructField
	seen := make(map[string]bool)
	t.pushScope()
	t.transformParams(ctor.Params)
	for _, stmt := range ctor.BodyNode.Statements() {
		if stmt.Type != "ExpressionStatement" || stmt.Expression == nil {
			continue
		}
		a := stmt.Expression
		if a.Type != "AssignmentExpression" || a.Left == nil || a.Left.Type != "MemberExpression" {
			continue
		}
		if a.Left.Object == nil || a.Left.Object.Type != "ThisExpression" || a.Left.Computed {
			continue
		}
		fieldName := naming.ToSnakeCase(naming.StripPrivatePrefix(a.Left.Property.Name))
		if seen[fieldName] {
			continue
		}
		seen[fieldName] = true
		typ := t.inferExprType(a.Right)
		if typ == nil {
			typ = typeFromHint(infer.FromName(fieldName), false)
		}
		if typ.Slice {
			// Struct fields own their data; borrowed slices would need
			// lifetimes.
			typ = VecOf(typ.Elem)
		}
		t.noteUses(typ)
		fields = append(fields, StructField{Name: fieldName, Type: typ})
	}
	t.popScope()
	return fields
}

func (t *Transformer) transformConstructor(structName string, ctor *jsast.Node, fields []StructField) *Function {
	t.pushScope()
	out := &Function{Name: "new", Assoc: true, Return: Prim("Self")}
	out.Params = t.transformParams(ctor.Params)

	// The constructor body becomes field initializers: `this.x = e` feeds
	// the struct literal, everything else is emitted before it.
	inits := make(map[string]Node)
	var pre []Node
	for _, stmt := range ctor.BodyNode.Statements() {
		if stmt.Type == "ExpressionStatement" && stmt.Expression != nil &&
			stmt.Expression.Type == "AssignmentExpression" &&
			stmt.Expression.Left.Type == "MemberExpression" &&
			stmt.Expression.Left.Object != nil &&
			stmt.Expression.Left.Object.Type == "ThisExpression" &&
			!stmt.Expression.Left.Computed {
			fieldName := naming.ToSnakeCase(naming.StripPrivatePrefix(stmt.Expression.Left.Property.Name))
			if _, dup := inits[fieldName]; !dup {
				inits[fieldName] = t.transformExpr(stmt.Expression.Right)
				continue
			}
		}
		pre = append(pre, t.transformStmt(stmt)...)
	}

	lit := &StructLit{Name: "Self"}
	for _, f := range fields {
		val, ok := inits[f.Name]
		if !ok {
			val = zeroValue(f.Type)
		}
		lit.Fields = append(lit.Fields, StructLitField{Name: f.Name, Value: val})
	}

	body := &Block{Stmts: append(pre, &Return{Value: lit})}
	out.Body = body
	t.popScope()
	return out
}

func (t *Transformer) transformMethod(m *jsast.Node) *Function {
	fn := t.transformFunction(&jsast.Node{
		Type:            "FunctionDeclaration",
		ID:              m.Key,
		Params:          m.ValueNode.Params,
		BodyNode:        m.ValueNode.BodyNode,
		TypeAnnotation:  m.ValueNode.TypeAnnotation,
		LeadingComments: m.LeadingComments,
	}, true)
	fn.SelfRef = !m.Static
	return fn
}

// --- statements ---

func (t *Transformer) transformBlockNode(n *jsast.Node) *Block {
	block := &Block{}
	if n == nil {
		return block
	}
	t.pushScope()
	for _, s := range n.Statements() {
		block.Stmts = append(block.Stmts, t.transformStmt(s)...)
	}
	t.popScope()
	return block
}

func (t *Transformer) transformStmts(stmts []*jsast.Node) *Block {
	block := &Block{}
	t.pushScope()
	for _, s := range stmts {
		block.Stmts = append(block.Stmts, t.transformStmt(s)...)
	}
	t.popScope()
	return block
}

func (t *Transformer) transformStmt(n *jsast.Node) []Node {
	if n == nil {
		return nil
	}
	switch n.Type {
	case "VariableDeclaration":
		return t.transformLet(n)
	case "ExpressionStatement":
		return t.transformExprStmt(n.Expression)
	case "IfStatement":
		return []Node{t.transformIf(n)}
	case "WhileStatement":
		return []Node{&While{Cond: t.transformCond(n.Test), Body: t.transformBlockNode(n.BodyNode)}}
	case "DoWhileStatement":
		return []Node{t.transformDoWhile(n)}
	case "ForStatement":
		return t.transformFor(n)
	case "ForOfStatement":
		return []Node{t.transformForOf(n)}
	case "ForInStatement":
		return []Node{t.transformForIn(n)}
	case "SwitchStatement":
		return []Node{t.transformSwitch(n)}
	case "BreakStatement":
		if n.Label != nil {
			t.warnf("labeled break %q lowered to plain break", n.Label.Name)
		}
		return []Node{&Break{}}
	case "ContinueStatement":
		if n.Label != nil {
			t.warnf("labeled continue %q lowered to plain continue", n.Label.Name)
		}
		return []Node{&Continue{}}
	case "ReturnStatement":
		return []Node{t.transformReturn(n)}
	case "ThrowStatement":
		return []Node{t.transformThrow(n)}
	case "TryStatement":
		return t.transformTry(n)
	case "BlockStatement":
		return []Node{t.transformStmts(n.Body)}
	case "FunctionDeclaration":
		return []Node{t.transformFunction(n, false)}
	case "LabeledStatement":
		t.warnf("statement label %q dropped", n.Label.Name)
		return t.transformStmt(n.BodyNode)
	case "EmptyStatement":
		return nil
	}
	t.warnf("unsupported statement type %s", n.Type)
	return []Node{&Placeholder{Message: "unsupported statement: " + n.Type}}
}

func (t *Transformer) transformLet(decl *jsast.Node) []Node {
	var out []Node
	for _, d := range decl.Declarations {
		if d.ID == nil || d.ID.Type != "Identifier" {
			t.warnf("unsupported destructuring declaration")
			out = append(out, &Placeholder{Message: "unsupported destructuring declaration"})
			continue
		}
		hint := infer.Resolve(d.TypeAnnotation, d.Init, d.ID.Name, t.opts.TypeKnowledge)
		typ := t.initType(hint, d.Init)
		var value Node
		if d.Init != nil {
			value = t.transformExpr(d.Init)
		} else {
			value = zeroValue(typ)
		}
		name := t.declare(d.ID.Name, typ)
		out = append(out, &Let{Name: name, Mutable: decl.Kind != "const", Type: typ, Value: value})
	}
	return out
}

// initType refines the abstract hint with the transformer's own knowledge
// of the initializer (scope types survive where structural inference fails).
func (t *Transformer) initType(hint infer.Hint, init *jsast.Node) *Type {
	if hint.Class == infer.Unknown && init != nil {
		if typ := t.inferExprType(init); typ != nil {
			return typ
		}
	}
	return typeFromHint(hint, false)
}

func (t *Transformer) transformExprStmt(expr *jsast.Node) []Node {
	if expr == nil {
		return nil
	}
	switch expr.Type {
	case "AssignmentExpression":
		return []Node{t.transformAssign(expr)}
	case "UpdateExpression":
		return []Node{t.transformUpdate(expr)}
	case "CallExpression":
		if stmt := t.transformCallStmt(expr); stmt != nil {
			return []Node{stmt}
		}
		return []Node{&ExprStmt{X: t.transformExpr(expr)}}
	}
	return []Node{&ExprStmt{X: t.transformExpr(expr)}}
}

// transformAssign rewrites wrapping-sensitive compound assignments into
// explicit wrapping method calls; everything else stays a compound assign.
func (t *Transformer) transformAssign(a *jsast.Node) Node {
	target := t.transformExpr(a.Left)
	value := t.transformExpr(a.Right)

	switch a.Operator {
	case "+=", "-=", "*=":
		if typ := t.inferExprType(a.Left); typ.IsFloat() || isStringType(typ) {
			return &Assign{Target: target, Op: a.Operator, Value: value}
		}
		method := map[string]string{"+=": "wrapping_add", "-=": "wrapping_sub", "*=": "wrapping_mul"}[a.Operator]
		return &Assign{Target: target, Op: "=", Value: &MethodCall{Recv: t.transformExpr(a.Left), Name: method, Args: []Node{value}}}
	case ">>>=":
		shifted := &Binary{Op: ">>", X: &Cast{X: t.transformExpr(a.Left), To: Prim("u32")}, Y: value}
		return &Assign{Target: target, Op: "=", Value: shifted}
	default:
		return &Assign{Target: target, Op: a.Operator, Value: value}
	}
}

func (t *Transformer) transformUpdate(u *jsast.Node) Node {
	op := "+="
	if u.Operator == "--" {
		op = "-="
	}
	return &Assign{Target: t.transformExpr(u.Argument), Op: op, Value: &Literal{LitKind: LitInt, Int: 1}}
}

func (t *Transformer) transformIf(n *jsast.Node) *If {
	out := &If{Cond: t.transformCond(n.Test)}
	if n.Consequent != nil && n.Consequent.Type == "BlockStatement" {
		out.Then = t.transformStmts(n.Consequent.Body)
	} else if n.Consequent != nil {
		out.Then = t.transformStmts([]*jsast.Node{n.Consequent})
	} else {
		out.Then = &Block{}
	}
	if n.Alternate != nil {
		if n.Alternate.Type == "IfStatement" {
			out.Else = t.transformIf(n.Alternate)
		} else if n.Alternate.Type == "BlockStatement" {
			out.Else = t.transformStmts(n.Alternate.Body)
		} else {
			out.Else = t.transformStmts([]*jsast.Node{n.Alternate})
		}
	}
	return out
}

// transformCond transforms an expression used as a condition, inserting the
// != 0 comparison JavaScript's truthiness implies for integer expressions.
func (t *Transformer) transformCond(n *jsast.Node) Node {
	if n == nil {
		return &Literal{LitKind: LitBool, Bool: true}
	}
	cond := t.transformExpr(n)
	if typ := t.inferExprType(n); typ.IsInteger() {
		return &Binary{Op: "!=", X: cond, Y: &Literal{LitKind: LitInt, Int: 0}}
	}
	return cond
}

// transformDoWhile lowers do-while into loop { body; if !cond { break } }.
// The emitter's precedence rules parenthesize the negated condition.
func (t *Transformer) transformDoWhile(n *jsast.Node) Node {
	body := t.transformBlockNode(n.BodyNode)
	exit := &If{
		Cond: &Unary{Op: "!", X: t.transformCond(n.Test)},
		Then: &Block{Stmts: []Node{&Break{}}},
	}
	body.Stmts = append(body.Stmts, exit)
	return &Loop{Body: body}
}

// transformFor maps the classic `for (let i = a; i < b; i++)` shape onto a
// native range loop; anything else is lowered to init + while, which keeps
// semantics but reads worse, so a review warning is recorded.
func (t *Transformer) transformFor(n *jsast.Node) []Node {
	if fr := t.classicFor(n); fr != nil {
		return []Node{fr}
	}

	t.warnf("complex for loop lowered to while; manual review recommended")
	t.pushScope()
	var out []Node
	if n.Init != nil {
		if n.Init.Type == "VariableDeclaration" {
			out = append(out, t.transformLet(n.Init)...)
		} else {
			out = append(out, t.transformExprStmt(n.Init)...)
		}
	}
	body := t.transformBlockNode(n.BodyNode)
	if n.Update != nil {
		body.Stmts = append(body.Stmts, t.transformExprStmt(n.Update)...)
	}
	out = append(out, &While{Cond: t.transformCond(n.Test), Body: body})
	t.popScope()
	return out
}

// classicFor recognizes `for (let i = <from>; i < <to>; i++)` (also `<=`)
// and returns the equivalent range loop, or nil.
func (t *Transformer) classicFor(n *jsast.Node) *ForRange {
	if n.Init == nil || n.Test == nil || n.Update == nil {
		return nil
	}
	if n.Init.Type != "VariableDeclaration" || len(n.Init.Declarations) != 1 {
		return nil
	}
	d := n.Init.Declarations[0]
	if d.ID == nil || d.ID.Type != "Identifier" || d.Init == nil {
		return nil
	}
	loopVar := d.ID.Name

	test := n.Test
	if test.Type != "BinaryExpression" || !test.Left.IsIdentifier(loopVar) {
		return nil
	}
	inclusive := false
	switch test.Operator {
	case "<":
	case "<=":
		inclusive = true
	default:
		return nil
	}

	up := n.Update
	if up.Type != "UpdateExpression" || up.Operator != "++" || !up.Argument.IsIdentifier(loopVar) {
		return nil
	}

	t.pushScope()
	from := stripSuffix(t.transformExpr(d.Init))
	to := stripSuffix(t.transformExpr(test.Right))
	name := t.declare(loopVar, Prim("usize"))
	body := t.transformBlockNode(n.BodyNode)
	t.popScope()

	return &ForRange{Var: name, From: from, To: to, Inclusive: inclusive, Body: body}
}

// stripSuffix removes the numeric suffix from a literal range bound so the
// loop variable stays usize.
func stripSuffix(n Node) Node {
	if lit, ok := n.(*Literal); ok && lit.LitKind == LitInt {
		return &Literal{LitKind: LitInt, Int: lit.Int}
	}
	return n
}

func (t *Transformer) transformForOf(n *jsast.Node) Node {
	varName := forTargetName(n.Left)
	iter := t.transformExpr(n.Right)
	elem := Prim("u32")
	if typ := t.inferExprType(n.Right); typ.IsCollection() && typ.Elem != nil {
		elem = typ.Elem
	}

	t.pushScope()
	name := t.declare(varName, elem)
	pat := name
	if elem.IsInteger() || elem.IsFloat() {
		pat = "&" + name
	}
	body := t.transformBlockNode(n.BodyNode)
	t.popScope()

	return &ForIn{Pat: pat, Iter: &MethodCall{Recv: iter, Name: "iter"}, Body: body}
}

func (t *Transformer) transformForIn(n *jsast.Node) Node {
	t.warnf("for-in over object keys assumes a HashMap operand")
	varName := forTargetName(n.Left)
	iter := t.transformExpr(n.Right)

	t.pushScope()
	name := t.declare(varName, RefTo(Prim("String")))
	body := t.transformBlockNode(n.BodyNode)
	t.popScope()

	return &ForIn{Pat: name, Iter: &MethodCall{Recv: iter, Name: "keys"}, Body: body}
}

func forTargetName(left *jsast.Node) string {
	if left == nil {
		return "item"
	}
	if left.Type == "VariableDeclaration" && len(left.Declarations) > 0 && left.Declarations[0].ID != nil {
		return left.Declarations[0].ID.Name
	}
	if left.Type == "Identifier" {
		return left.Name
	}
	return "item"
}

// transformSwitch lowers switch to match. JavaScript fallthrough is NOT
// reproduced: statements after a break are the arm body, and a non-empty
// case that falls through records a warning. Empty cases merge into the
// next arm as alternate patterns.
func (t *Transformer) transformSwitch(n *jsast.Node) Node {
	m := &Match{Scrutinee: t.transformExpr(n.Discriminant)}
	var pending []Node
	hasDefault := false

	for i, c := range n.Cases {
		isDefault := c.Test == nil
		if !isDefault {
			pending = append(pending, stripSuffix(t.transformExpr(c.Test)))
		}

		stmts, sawBreak := splitCaseBody(c.ConsList)
		if len(stmts) == 0 && !sawBreak && !isDefault {
			continue // fallthrough grouping: patterns accumulate
		}
		if hasNestedBreak(stmts) {
			t.warnf("break nested inside a switch case cannot leave a Rust match arm; it escapes an enclosing loop instead")
		}

		if !sawBreak && len(stmts) > 0 && i < len(n.Cases)-1 {
			t.warnf("switch case without break: JavaScript fallthrough is not reproduced")
		}

		arm := MatchArm{Default: isDefault, Body: t.transformStmts(stmts)}
		if !isDefault {
			arm.Pats = pending
		}
		pending = nil
		if isDefault {
			hasDefault = true
		}
		m.Arms = append(m.Arms, arm)
	}

	if !hasDefault {
		m.Arms = append(m.Arms, MatchArm{Default: true, Body: &Block{}})
	}
	return m
}

// splitCaseBody returns the case statements up to (excluding) the break, and
// whether a break was present.
func splitCaseBody(stmts []*jsast.Node) ([]*jsast.Node, bool) {
	for i, s := range stmts {
		if s.Type == "BreakStatement" && s.Label == nil {
			return stmts[:i], true
		}
	}
	return stmts, false
}

// hasNestedBreak reports whether a break hides below the top level of a case
// body. Match arms cannot break out of the match, so such a break lands on an
// enclosing loop; loops and switches inside the case capture their own.
func hasNestedBreak(stmts []*jsast.Node) bool {
	for _, s := range stmts {
		if nestedBreakIn(s, false) {
			return true
		}
	}
	return false
}

func nestedBreakIn(n *jsast.Node, below bool) bool {
	if n == nil {
		return false
	}
	switch n.Type {
	case "BreakStatement":
		return below && n.Label == nil
	case "ForStatement", "ForOfStatement", "ForInStatement",
		"WhileStatement", "DoWhileStatement", "SwitchStatement":
		return false
	case "IfStatement":
		return nestedBreakIn(n.Consequent, true) || nestedBreakIn(n.Alternate, true)
	case "BlockStatement":
		for _, s := range n.Body {
			if nestedBreakIn(s, true) {
				return true
			}
		}
	}
	return false
}

func (t *Transformer) transformReturn(n *jsast.Node) Node {
	if n.Argument == nil {
		return &Return{}
	}
	value := t.transformExpr(n.Argument)
	typ := t.inferExprType(n.Argument)
	if typ == nil {
		typ = Prim("u32")
	}
	if !t.retSet {
		t.retType = typ
		t.retSet = true
	} else if t.retType != nil && t.retType.String() != typ.String() {
		// First return statement wins; later disagreements are advisory.
		t.warnf("return type mismatch: keeping %s, saw %s", t.retType, typ)
	}
	return &Return{Value: value}
}

func (t *Transformer) transformThrow(n *jsast.Node) Node {
	t.warnf("throw lowered to panic!; JavaScript exception semantics are not preserved")
	arg := n.Argument
	// `throw new Error("msg")` panics with the message itself.
	if arg != nil && arg.Type == "NewExpression" && arg.Callee.IsIdentifier("Error") && len(arg.Arguments) == 1 {
		arg = arg.Arguments[0]
	}
	if arg != nil && arg.IsLiteral() {
		if s, ok := arg.Value.(string); ok {
			return &ExprStmt{X: &MacroCall{Name: "panic", Args: []Node{&Literal{LitKind: LitStr, Str: s}}}}
		}
	}
	var args []Node
	args = append(args, &Literal{LitKind: LitStr, Str: "{}"})
	if arg != nil {
		args = append(args, t.transformExpr(arg))
	}
	return &ExprStmt{X: &MacroCall{Name: "panic", Args: args}}
}

// transformTry inlines the try block behind a disclaimer comment. Rust has
// no exceptions; full Result threading is out of scope.
func (t *Transformer) transformTry(n *jsast.Node) []Node {
	t.warnf("try/catch lowered without error capture; Rust code panics where JavaScript would throw")
	out := []Node{&Comment{Text: "NOTE: try/catch was lowered; failures panic instead of being caught"}}
	if n.Block != nil {
		out = append(out, t.transformStmts(n.Block.Body))
	}
	if n.Finalizer != nil {
		out = append(out, t.transformStmts(n.Finalizer.Body))
	}
	return out
}
