// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package golang

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dacolabs/transpile/internal/backend"
	"github.com/dacolabs/transpile/internal/infer"
	"github.com/dacolabs/transpile/internal/jsast"
	"github.com/dacolabs/transpile/internal/naming"
)

// goKeywords are reserved words that force the underscore-suffix rename.
var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true,
	"continue": true, "default": true, "defer": true, "else": true,
	"fallthrough": true, "for": true, "func": true, "go": true, "goto": true,
	"if": true, "import": true, "interface": true, "map": true,
	"package": true, "range": true, "return": true, "select": true,
	"struct": true, "switch": true, "type": true, "var": true,
}

type varInfo struct {
	name string
	typ  *Type
}

// Transformer walks the JavaScript AST and produces the Go target AST. State
// is scoped to one Transform call; create one Transformer per invocation.
type Transformer struct {
	opts     backend.Options
	warnings []string
	imports  map[string]bool
	helpers  map[string]bool
	scopes   []map[string]varInfo

	recvName string
	retType  *Type
	retSet   bool
	errMode  bool
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
	t.imports = make(map[string]bool)
	t.helpers = make(map[string]bool)
	t.scopes = []map[string]varInfo{make(map[string]varInfo)}
	t.errMode = t.opts.ErrorHandling
}

// Transform converts a Program node into a Go file. It fails fast on
// malformed input and degrades with warnings on unsupported constructs.
func (t *Transformer) Transform(program *jsast.Node) (*File, error) {
	if err := backend.CheckProgram(program); err != nil {
		return nil, err
	}
	t.reset()

	file := &File{Package: t.opts.PackageName}
	if t.opts.AddComments {
		src := t.opts.SourceName
		if src == "" {
			src = "JavaScript source"
		}
		file.Banner = []string{
			fmt.Sprintf("Generated from %s for Go", src),
			"Auto-generated code - do not modify manually",
		}
	}

	// Top-level names are registered first so call sites resolve regardless
	// of declaration order.
	for _, stmt := range program.Body {
		if stmt.Type == "FunctionDeclaration" && stmt.ID != nil {
			t.scopes[0][stmt.ID.Name] = varInfo{name: naming.ToPascalCase(stmt.ID.Name)}
		}
	}

	var stray []*jsast.Node
	for _, stmt := range program.Body {
		switch stmt.Type {
		case "FunctionDeclaration":
			file.Items = append(file.Items, t.transformFunction(stmt))
		case "ClassDeclaration":
			file.Items = append(file.Items, t.transformClass(stmt)...)
		case "VariableDeclaration":
			if stmt.Kind == "const" {
				file.Items = append(file.Items, t.transformConsts(stmt)...)
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
		file.Items = append(file.Items, &Function{Name: "main", Body: body})
	}

	file.Items = append(file.Items, t.helperItems()...)
	file.Imports = t.sortedImports()
	return file, nil
}

func (t *Transformer) sortedImports() []string {
	imports := make([]string, 0, len(t.imports))
	for p := range t.imports {
		imports = append(imports, p)
	}
	sort.Strings(imports)
	return imports
}

// --- scopes ---

func (t *Transformer) pushScope() {
	t.scopes = append(t.scopes, make(map[string]varInfo))
}

func (t *Transformer) popScope() {
	t.scopes = t.scopes[:len(t.scopes)-1]
}

// declare converts a JavaScript name to its Go local form, resolves keyword
// collisions and records the binding so every later use site gets the same
// spelling.
func (t *Transformer) declare(jsName string, typ *Type) string {
	name := naming.Keyword(naming.ToSnakeCase(jsName), goKeywords)
	t.scopes[len(t.scopes)-1][jsName] = varInfo{name: name, typ: typ}
	return name
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
	return naming.Keyword(naming.ToSnakeCase(jsName), goKeywords)
}

// --- declarations ---

func (t *Transformer) transformConsts(decl *jsast.Node) []Node {
	var items []Node
	for _, d := range decl.Declarations {
		if d.ID == nil {
			continue
		}
		hint := infer.Resolve(d.TypeAnnotation, d.Init, d.ID.Name, t.opts.TypeKnowledge)
		name := naming.ToScreamingSnake(d.ID.Name)
		t.scopes[0][d.ID.Name] = varInfo{name: name, typ: typeFromHint(hint, t.opts.StrictTypes)}
		value := t.transformExpr(d.Init)
		if comp, ok := value.(*Composite); ok {
			// Composite literals are not constant in Go; table constants
			// become vars, slices as fixed-size arrays.
			if comp.Type != nil && comp.Type.Slice {
				elem := "uint32"
				if comp.Type.Elem != nil {
					elem = comp.Type.Elem.String()
				}
				comp.Named = "[...]" + elem
				comp.Type = nil
			}
			items = append(items, &Var{Name: name, Value: comp})
			continue
		}
		items = append(items, &Const{Name: name, Value: value})
	}
	return items
}

func (t *Transformer) transformFunction(fn *jsast.Node) *Function {
	name := "Closure"
	if fn.ID != nil {
		name = naming.ToPascalCase(fn.ID.Name)
	}

	t.pushScope()
	savedRet, savedSet := t.retType, t.retSet
	t.retType, t.retSet = nil, false

	out := &Function{Name: name, ErrResult: t.errMode}
	if t.opts.AddComments {
		for _, c := range fn.LeadingComments {
			out.Doc = append(out.Doc, strings.Split(strings.TrimSpace(c.Value), "\n")...)
		}
	}
	out.Params = t.transformParams(fn.Params)

	if fn.TypeAnnotation != "" {
		if h := infer.ParseHint(fn.TypeAnnotation); h.Class != infer.Unknown {
			t.retType = typeFromHint(h, t.opts.StrictTypes)
			t.retSet = true
		}
	}
	if !t.retSet && t.errMode {
		// With an error channel, an early throw needs the value slot of the
		// result list before the first return has been seen.
		if arg := firstReturnArg(fn.BodyNode); arg != nil {
			if typ := t.inferExprType(arg); typ != nil {
				t.retType = typ
				t.retSet = true
			}
		}
	}

	out.Body = t.transformBlockNode(fn.BodyNode)
	out.Return = t.retType

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
			typ := typeFromHint(hint, t.opts.StrictTypes)
			out = append(out, Param{Name: t.declare(p.Name, typ), Type: typ})
		case "AssignmentPattern":
			// Default values have no Go equivalent; keep the parameter.
			t.warnf("default parameter value dropped for %q", patternName(p))
			if p.Left != nil && p.Left.Type == "Identifier" {
				hint := infer.Resolve(p.Left.TypeAnnotation, p.Right, p.Left.Name, t.opts.TypeKnowledge)
				typ := typeFromHint(hint, t.opts.StrictTypes)
				out = append(out, Param{Name: t.declare(p.Left.Name, typ), Type: typ})
			}
		default:
			t.warnf("unsupported parameter pattern %s", p.Type)
		}
	}
	return out
}

// firstReturnArg finds the argument of the first return statement in a
// statement tree, skipping nested function bodies.
func firstReturnArg(n *jsast.Node) *jsast.Node {
	if n == nil {
		return nil
	}
	switch n.Type {
	case "ReturnStatement":
		return n.Argument
	case "FunctionDeclaration", "FunctionExpression", "ArrowFunctionExpression":
		return nil
	}
	for _, child := range n.Body {
		if arg := firstReturnArg(child); arg != nil {
			return arg
		}
	}
	for _, child := range []*jsast.Node{n.BodyNode, n.Consequent, n.Alternate, n.Block, n.Finalizer} {
		if arg := firstReturnArg(child); arg != nil {
			return arg
		}
	}
	for _, c := range n.Cases {
		for _, s := range c.ConsList {
			if arg := firstReturnArg(s); arg != nil {
				return arg
			}
		}
	}
	return nil
}

func patternName(p *jsast.Node) string {
	if p.Left != nil {
		return p.Left.Name
	}
	return p.Name
}

// transformClass lowers a JavaScript class to a struct type, a NewX
// constructor function and pointer-receiver methods. Fields are discovered
// from `this.x = ...` assignments in the constructor.
func (t *Transformer) transformClass(class *jsast.Node) []Node {
	name := "Anonymous"
	if class.ID != nil {
		name = naming.ToPascalCase(class.ID.Name)
	}
	st := &Struct{Name: name}
	if class.SuperClass != nil {
		t.warnf("class %s: inheritance is not translated; base class %s dropped", name, class.SuperClass.Name)
	}
	if t.opts.AddComments {
		for _, c := range class.LeadingComments {
			st.Doc = append(st.Doc, strings.Split(strings.TrimSpace(c.Value), "\n")...)
		}
	}

	body := class.BodyNode
	if body == nil {
		return []Node{st}
	}

	var ctor *jsast.Node
	for _, m := range body.Body {
		if m.Type == "MethodDefinition" && m.Kind == "constructor" && m.ValueNode != nil {
			ctor = m
		}
	}

	if ctor != nil {
		st.Fields = t.collectFields(ctor)
	}

	recv := receiverName(name)
	items := []Node{st}
	for _, m := range body.Body {
		if m.Type != "MethodDefinition" || m.ValueNode == nil {
			continue
		}
		switch m.Kind {
		case "constructor":
			items = append(items, t.transformConstructor(name, m.ValueNode, st.Fields))
		case "method":
			items = append(items, t.transformMethod(recv, name, m))
		default:
			t.warnf("class %s: %s accessor %q is not translated", name, m.Kind, m.Key.Name)
		}
	}
	return items
}

// receiverName is the lowercased first rune of the struct name.
func receiverName(structName string) string {
	return strings.ToLower(structName[:1])
}

func (t *Transformer) collectFields(ctor *jsast.Node) []StructField {
	var fields []StructField
	seen := make(map[string]bool)
	t.pushScope()
	t.transformParams(ctor.ValueNode.Params)
	for _, stmt := range ctor.ValueNode.BodyNode.Statements() {
		target, value := thisAssignment(stmt)
		if target == "" {
			continue
		}
		fieldName := naming.ToPascalCase(naming.StripPrivatePrefix(target))
		if seen[fieldName] {
			continue
		}
		seen[fieldName] = true
		typ := t.inferExprType(value)
		if typ == nil {
			typ = typeFromHint(infer.FromName(naming.ToSnakeCase(target)), t.opts.StrictTypes)
		}
		fields = append(fields, StructField{Name: fieldName, Type: typ})
	}
	t.popScope()
	return fields
}

// thisAssignment matches `this.x = expr` and returns the raw property name
// and the value expression, or "".
func thisAssignment(stmt *jsast.Node) (string, *jsast.Node) {
	if stmt.Type != "ExpressionStatement" || stmt.Expression == nil {
		return "", nil
	}
	a := stmt.Expression
	if a.Type != "AssignmentExpression" || a.Operator != "=" || a.Left == nil {
		return "", nil
	}
	l := a.Left
	if l.Type != "MemberExpression" || l.Computed || l.Object == nil || l.Object.Type != "ThisExpression" {
		return "", nil
	}
	return l.Property.Name, a.Right
}

func (t *Transformer) transformConstructor(structName string, ctor *jsast.Node, fields []StructField) *Function {
	t.pushScope()
	out := &Function{Name: "New" + structName, Return: Prim("*" + structName)}
	out.Params = t.transformParams(ctor.Params)

	inits := make(map[string]Node)
	var pre []Node
	for _, stmt := range ctor.BodyNode.Statements() {
		if target, value := thisAssignment(stmt); target != "" {
			fieldName := naming.ToPascalCase(naming.StripPrivatePrefix(target))
			if _, dup := inits[fieldName]; !dup {
				inits[fieldName] = t.transformExpr(value)
				continue
			}
		}
		pre = append(pre, t.transformStmt(stmt)...)
	}

	lit := &Composite{Named: structName}
	for _, f := range fields {
		val, ok := inits[f.Name]
		if !ok {
			val = zeroValue(f.Type)
		}
		lit.Elems = append(lit.Elems, KeyedElem{Key: &Ident{Name: f.Name}, Value: val})
	}

	out.Body = &Block{Stmts: append(pre, &Return{Values: []Node{&Unary{Op: "&", X: lit}}})}
	t.popScope()
	return out
}

func (t *Transformer) transformMethod(recv, structName string, m *jsast.Node) *Function {
	savedRecv := t.recvName
	if !m.Static {
		t.recvName = recv
	}
	fn := t.transformFunction(&jsast.Node{
		Type:            "FunctionDeclaration",
		ID:              m.Key,
		Params:          m.ValueNode.Params,
		BodyNode:        m.ValueNode.BodyNode,
		TypeAnnotation:  m.ValueNode.TypeAnnotation,
		LeadingComments: m.LeadingComments,
	})
	if !m.Static {
		fn.RecvName = recv
		fn.RecvType = structName
	}
	t.recvName = savedRecv
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
		return []Node{&For{Cond: t.transformCond(n.Test), Body: t.transformBlockNode(n.BodyNode)}}
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
		// Nested function declarations become function-literal bindings.
		if n.ID != nil {
			name := t.declare(n.ID.Name, nil)
			return []Node{&ShortDecl{Name: name, Value: t.transformClosure(n)}}
		}
		return []Node{&ExprStmt{X: t.transformClosure(n)}}
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
		if d.Init == nil {
			name := t.declare(d.ID.Name, typ)
			out = append(out, &Var{Name: name, Type: typ})
			continue
		}
		// `x := 0` infers int in Go; the recorded scope type must match what
		// the emitted declaration actually produces.
		if d.TypeAnnotation == "" && typ != nil && typ.Name == "uint32" {
			if v, ok := d.Init.LiteralNumber(); ok && v == float64(int64(v)) {
				typ = Prim("int")
			}
		}
		value := t.transformExpr(d.Init)
		name := t.declare(d.ID.Name, typ)
		out = append(out, &ShortDecl{Name: name, Value: value})
	}
	return out
}

// initType refines the abstract hint with the transformer's own knowledge of
// the initializer.
func (t *Transformer) initType(hint infer.Hint, init *jsast.Node) *Type {
	if hint.Class == infer.Unknown && init != nil {
		if typ := t.inferExprType(init); typ != nil {
			return typ
		}
	}
	return typeFromHint(hint, t.opts.StrictTypes)
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

// transformAssign keeps compound assignments native (Go integer arithmetic
// wraps silently, matching the JavaScript-with-coercion semantics the input
// relies on) and lowers >>>= through the unsigned-cast rule.
func (t *Transformer) transformAssign(a *jsast.Node) Node {
	target := t.transformExpr(a.Left)
	value := t.transformExpr(a.Right)

	if a.Operator == ">>>=" {
		shifted := &Binary{Op: ">>",
			X: &Call{Fn: &Ident{Name: "uint32"}, Args: []Node{t.transformExpr(a.Left)}},
			Y: value,
		}
		return &Assign{Target: target, Op: "=", Value: shifted}
	}
	op := a.Operator
	switch op {
	case "&&=", "||=":
		t.warnf("logical assignment %q lowered to plain assignment", op)
		op = "="
	}
	return &Assign{Target: target, Op: op, Value: value}
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
	switch {
	case n.Consequent != nil && n.Consequent.Type == "BlockStatement":
		out.Then = t.transformStmts(n.Consequent.Body)
	case n.Consequent != nil:
		out.Then = t.transformStmts([]*jsast.Node{n.Consequent})
	default:
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

// transformDoWhile lowers do-while into for { body; if !cond { break } }.
func (t *Transformer) transformDoWhile(n *jsast.Node) Node {
	body := t.transformBlockNode(n.BodyNode)
	exit := &If{
		Cond: &Unary{Op: "!", X: t.transformCond(n.Test)},
		Then: &Block{Stmts: []Node{&Break{}}},
	}
	body.Stmts = append(body.Stmts, exit)
	return &For{Body: body}
}

// transformFor preserves the C-style loop, which Go supports natively. Loops
// whose init declares more than one variable hoist the declarations above
// the loop.
func (t *Transformer) transformFor(n *jsast.Node) []Node {
	t.pushScope()
	defer t.popScope()

	var pre []Node
	loop := &For{}

	if n.Init != nil {
		switch {
		case n.Init.Type == "VariableDeclaration" && len(n.Init.Declarations) == 1:
			decls := t.transformLet(n.Init)
			if len(decls) == 1 {
				loop.Init = decls[0]
			} else {
				pre = append(pre, decls...)
			}
		case n.Init.Type == "VariableDeclaration":
			pre = append(pre, t.transformLet(n.Init)...)
		default:
			if stmts := t.transformExprStmt(n.Init); len(stmts) == 1 {
				loop.Init = stmts[0]
			} else {
				pre = append(pre, stmts...)
			}
		}
	}

	loop.Cond = nil
	if n.Test != nil {
		loop.Cond = t.transformCond(n.Test)
	}
	loop.Body = t.transformBlockNode(n.BodyNode)

	if n.Update != nil {
		if stmts := t.transformExprStmt(n.Update); len(stmts) == 1 {
			loop.Post = stmts[0]
		} else {
			loop.Body.Stmts = append(loop.Body.Stmts, stmts...)
		}
	}

	return append(pre, loop)
}

func (t *Transformer) transformForOf(n *jsast.Node) Node {
	varName := forTargetName(n.Left)
	iter := t.transformExpr(n.Right)
	elem := Prim("uint32")
	if typ := t.inferExprType(n.Right); typ.IsCollection() && typ.Elem != nil {
		elem = typ.Elem
	}

	t.pushScope()
	name := t.declare(varName, elem)
	body := t.transformBlockNode(n.BodyNode)
	t.popScope()

	return &Range{Key: "_", Val: name, X: iter, Body: body}
}

func (t *Transformer) transformForIn(n *jsast.Node) Node {
	t.warnf("for-in over object keys assumes a map operand")
	varName := forTargetName(n.Left)
	iter := t.transformExpr(n.Right)

	t.pushScope()
	name := t.declare(varName, Prim("string"))
	body := t.transformBlockNode(n.BodyNode)
	t.popScope()

	return &Range{Key: name, X: iter, Body: body}
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

// transformSwitch maps switch directly onto Go's switch, which does not fall
// through. Statements after a break are the case body; a non-empty case that
// falls through in JavaScript records a warning. Empty cases merge into the
// next clause's value list.
func (t *Transformer) transformSwitch(n *jsast.Node) Node {
	sw := &Switch{Tag: t.transformExpr(n.Discriminant)}
	var pending []Node

	for i, c := range n.Cases {
		isDefault := c.Test == nil
		if !isDefault {
			pending = append(pending, t.transformExpr(c.Test))
		}

		stmts, sawBreak := splitCaseBody(c.ConsList)
		if len(stmts) == 0 && !sawBreak && !isDefault {
			continue // empty case: value joins the next clause
		}

		if !sawBreak && len(stmts) > 0 && i < len(n.Cases)-1 {
			t.warnf("switch case without break: JavaScript fallthrough is not reproduced")
		}

		clause := SwitchCase{Default: isDefault, Body: t.transformStmts(stmts)}
		if !isDefault {
			clause.Vals = pending
		}
		pending = nil
		sw.Cases = append(sw.Cases, clause)
	}
	return sw
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

func (t *Transformer) transformReturn(n *jsast.Node) Node {
	if n.Argument == nil {
		if t.errMode {
			if t.retType != nil {
				return &Return{Values: []Node{zeroValue(t.retType), &Literal{LitKind: LitNil}}}
			}
			return &Return{Values: []Node{&Literal{LitKind: LitNil}}}
		}
		return &Return{}
	}

	value := t.transformExpr(n.Argument)
	typ := t.inferExprType(n.Argument)
	if typ == nil {
		typ = Prim("uint32")
	}
	if !t.retSet {
		t.retType = typ
		t.retSet = true
	} else if t.retType != nil && t.retType.String() != typ.String() {
		// First return statement wins; later disagreements are advisory.
		t.warnf("return type mismatch: keeping %s, saw %s", t.retType, typ)
	}

	if t.errMode {
		return &Return{Values: []Node{value, &Literal{LitKind: LitNil}}}
	}
	return &Return{Values: []Node{value}}
}

// transformThrow maps throw onto the error-return channel when enabled, or a
// panic otherwise.
func (t *Transformer) transformThrow(n *jsast.Node) Node {
	arg := n.Argument
	// `throw new Error("msg")` carries the message itself.
	if arg != nil && arg.Type == "NewExpression" && arg.Callee.IsIdentifier("Error") && len(arg.Arguments) == 1 {
		arg = arg.Arguments[0]
	}

	if t.errMode {
		t.imports["fmt"] = true
		errExpr := t.errorExpr(arg)
		if t.retType != nil {
			return &Return{Values: []Node{zeroValue(t.retType), errExpr}}
		}
		return &Return{Values: []Node{errExpr}}
	}

	t.warnf("throw lowered to panic; JavaScript exception semantics are not preserved")
	var panicArg Node
	if arg != nil && arg.IsLiteral() {
		if s, ok := arg.Value.(string); ok {
			panicArg = &Literal{LitKind: LitStr, Str: s}
		}
	}
	if panicArg == nil {
		panicArg = t.transformExpr(arg)
	}
	return &ExprStmt{X: &Call{Fn: &Ident{Name: "panic"}, Args: []Node{panicArg}}}
}

// errorExpr builds the fmt.Errorf (or errors-style) value for a thrown
// expression.
func (t *Transformer) errorExpr(arg *jsast.Node) Node {
	if arg != nil && arg.IsLiteral() {
		if s, ok := arg.Value.(string); ok {
			return &Call{Fn: &Ident{Name: "fmt.Errorf"}, Args: []Node{&Literal{LitKind: LitStr, Str: s}}}
		}
	}
	args := []Node{&Literal{LitKind: LitStr, Str: "%v"}}
	if arg != nil {
		args = append(args, t.transformExpr(arg))
	}
	return &Call{Fn: &Ident{Name: "fmt.Errorf"}, Args: args}
}

// transformTry inlines the try block behind a disclaimer comment. Full
// recover-based catch translation is out of scope.
func (t *Transformer) transformTry(n *jsast.Node) []Node {
	t.warnf("try/catch lowered without error capture; Go code panics where JavaScript would throw")
	out := []Node{&Comment{Text: "NOTE: try/catch was lowered; failures panic instead of being caught"}}
	if n.Block != nil {
		out = append(out, t.transformStmts(n.Block.Body))
	}
	if n.Finalizer != nil {
		out = append(out, t.transformStmts(n.Finalizer.Body))
	}
	return out
}
