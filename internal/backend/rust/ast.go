// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package rust implements the Rust backend: a transformer from the
// JavaScript AST to a Rust target AST, and an emitter that renders the
// target AST as Rust source.
package rust

// Kind discriminates target AST nodes. Every kind is handled by exactly one
// emitter case; an unknown kind renders as a marked placeholder, never
// panics.
type Kind int

// Target node kinds.
const (
	KindModule Kind = iota
	KindComment
	KindStruct
	KindFunction
	KindConst
	KindLet
	KindAssign
	KindExprStmt
	KindIf
	KindWhile
	KindLoop
	KindForRange
	KindForIn
	KindMatch
	KindBreak
	KindContinue
	KindReturn
	KindBlock
	KindLiteral
	KindIdent
	KindUnary
	KindBinary
	KindCast
	KindField
	KindIndex
	KindCall
	KindMethodCall
	KindArrayLit
	KindStructLit
	KindRef
	KindClosure
	KindMacroCall
	KindIfExpr
	KindPlaceholder
)

// Node is a Rust target AST node.
type Node interface {
	Kind() Kind
}

// Module is the file root: crate attributes, use lines and items, in order.
type Module struct {
	NoStd   bool
	Banner  []string // leading comment lines, emitted when AddComments is on
	Uses    []string // sorted use paths
	Items   []Node
}

func (*Module) Kind() Kind { return KindModule }

// Comment is a standalone comment line (also used for lowering disclaimers).
type Comment struct {
	Text string
}

func (*Comment) Kind() Kind { return KindComment }

// StructField is one field of a struct declaration.
type StructField struct {
	Name string
	Type *Type
}

// Struct is a struct declaration plus its impl block.
type Struct struct {
	Name    string
	Doc     []string
	Fields  []StructField
	Methods []*Function
}

func (*Struct) Kind() Kind { return KindStruct }

// Param is a function parameter.
type Param struct {
	Name string
	Type *Type
}

// Function is a free function, associated function or method. SelfRef marks
// a `&mut self` receiver; Assoc marks an associated function inside an impl
// block (e.g. `new`).
type Function struct {
	Name    string
	Doc     []string
	SelfRef bool
	Assoc   bool
	Params  []Param
	Return  *Type
	Body    *Block
}

func (*Function) Kind() Kind { return KindFunction }

// Const is a module-level constant.
type Const struct {
	Name  string
	Type  *Type
	Value Node
}

func (*Const) Kind() Kind { return KindConst }

// Let is a local binding.
type Let struct {
	Name    string
	Mutable bool
	Type    *Type
	Value   Node
}

func (*Let) Kind() Kind { return KindLet }

// Assign is an assignment statement. Op is "=", "^=", "<<=" and friends;
// wrapping arithmetic is rewritten before this node is built, so "+=" never
// reaches the emitter for integer operands.
type Assign struct {
	Target Node
	Op     string
	Value  Node
}

func (*Assign) Kind() Kind { return KindAssign }

// ExprStmt is an expression in statement position.
type ExprStmt struct {
	X Node
}

func (*ExprStmt) Kind() Kind { return KindExprStmt }

// If is an if/else-if chain. Else is nil, a *Block, or another *If.
type If struct {
	Cond Node
	Then *Block
	Else Node
}

func (*If) Kind() Kind { return KindIf }

// While is a while loop.
type While struct {
	Cond Node
	Body *Block
}

func (*While) Kind() Kind { return KindWhile }

// Loop is an unconditional loop, used for do-while lowering.
type Loop struct {
	Body *Block
}

func (*Loop) Kind() Kind { return KindLoop }

// ForRange is `for v in from..to` (`..=` when Inclusive).
type ForRange struct {
	Var       string
	From, To  Node
	Inclusive bool
	Body      *Block
}

func (*ForRange) Kind() Kind { return KindForRange }

// ForIn is `for pat in iter`.
type ForIn struct {
	Pat  string
	Iter Node
	Body *Block
}

func (*ForIn) Kind() Kind { return KindForIn }

// MatchArm is one arm of a match. Default marks the `_` arm.
type MatchArm struct {
	Pats    []Node
	Default bool
	Body    *Block
}

// Match is a match statement.
type Match struct {
	Scrutinee Node
	Arms      []MatchArm
}

func (*Match) Kind() Kind { return KindMatch }

// Break exits the innermost loop.
type Break struct{}

func (*Break) Kind() Kind { return KindBreak }

// Continue skips to the next loop iteration.
type Continue struct{}

func (*Continue) Kind() Kind { return KindContinue }

// Return returns from the current function. Value may be nil.
type Return struct {
	Value Node
}

func (*Return) Kind() Kind { return KindReturn }

// Block is an ordered statement list.
type Block struct {
	Stmts []Node
}

func (*Block) Kind() Kind { return KindBlock }

// LitKind discriminates literal values.
type LitKind int

// Literal kinds.
const (
	LitInt LitKind = iota
	LitFloat
	LitStr
	LitBool
	LitChar
)

// Literal is a typed literal. Suffix carries the numeric type suffix
// ("u32") when one is wanted.
type Literal struct {
	LitKind LitKind
	Int     int64
	Float   float64
	Str     string
	Char    rune
	Bool    bool
	Suffix  string
}

func (*Literal) Kind() Kind { return KindLiteral }

// Ident is an identifier or path ("i", "u32::from_le_bytes").
type Ident struct {
	Name string
}

func (*Ident) Kind() Kind { return KindIdent }

// Unary is a prefix operator expression.
type Unary struct {
	Op string
	X  Node
}

func (*Unary) Kind() Kind { return KindUnary }

// Binary is a binary operator expression.
type Binary struct {
	Op   string
	X, Y Node
}

func (*Binary) Kind() Kind { return KindBinary }

// Cast is `x as T`.
type Cast struct {
	X  Node
	To *Type
}

func (*Cast) Kind() Kind { return KindCast }

// FieldExpr is `x.name`.
type FieldExpr struct {
	X    Node
	Name string
}

func (*FieldExpr) Kind() Kind { return KindField }

// IndexExpr is `x[index]`.
type IndexExpr struct {
	X, Index Node
}

func (*IndexExpr) Kind() Kind { return KindIndex }

// Call is a function or path call.
type Call struct {
	Fn   Node
	Args []Node
}

func (*Call) Kind() Kind { return KindCall }

// MethodCall is `recv.name(args)`.
type MethodCall struct {
	Recv Node
	Name string
	Args []Node
}

func (*MethodCall) Kind() Kind { return KindMethodCall }

// ArrayLit is `vec![..]` when IsVec, `[..]` otherwise. When Repeat is
// non-nil it renders the `[elem; len]` form.
type ArrayLit struct {
	IsVec  bool
	Elems  []Node
	Repeat Node
	Len    Node
}

func (*ArrayLit) Kind() Kind { return KindArrayLit }

// StructLitField is one `name: value` pair of a struct literal.
type StructLitField struct {
	Name  string
	Value Node
}

// StructLit is `Name { fields }`.
type StructLit struct {
	Name   string
	Fields []StructLitField
}

func (*StructLit) Kind() Kind { return KindStructLit }

// Ref is `&x` or `&mut x`.
type Ref struct {
	Mutable bool
	X       Node
}

func (*Ref) Kind() Kind { return KindRef }

// Closure is `|params| body`; Body is an expression or a *Block.
type Closure struct {
	Params []string
	Body   Node
}

func (*Closure) Kind() Kind { return KindClosure }

// MacroCall is `name!(args)`.
type MacroCall struct {
	Name string
	Args []Node
}

func (*MacroCall) Kind() Kind { return KindMacroCall }

// IfExpr is an if/else in expression position (ternary lowering).
type IfExpr struct {
	Cond, Then, Else Node
}

func (*IfExpr) Kind() Kind { return KindIfExpr }

// Placeholder marks a construct that could not be translated. It renders as
// a visible comment so partial output stays inspectable.
type Placeholder struct {
	Message string
}

func (*Placeholder) Kind() Kind { return KindPlaceholder }
