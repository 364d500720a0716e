// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package golang implements the Go backend: a transformer from the
// JavaScript AST to a Go target AST, and an emitter that renders the target
// AST as Go source.
package golang

// Kind discriminates target AST nodes.
type Kind int

// Target node kinds.
const (
	KindFile Kind = iota
	KindComment
	KindStruct
	KindFunction
	KindConst
	KindVar
	KindShortDecl
	KindAssign
	KindExprStmt
	KindIf
	KindFor
	KindRange
	KindSwitch
	KindBreak
	KindContinue
	KindReturn
	KindBlock
	KindLiteral
	KindIdent
	KindUnary
	KindBinary
	KindSelector
	KindIndex
	KindSliceExpr
	KindCall
	KindEllipsis
	KindComposite
	KindFuncLit
	KindPlaceholder
)

// Node is a Go target AST node.
type Node interface {
	Kind() Kind
}

// File is the compilation-unit root: banner, package clause, import set and
// top-level declarations, in order.
type File struct {
	Banner  []string
	Package string
	Imports []string // sorted import paths
	Items   []Node
}

func (*File) Kind() Kind { return KindFile }

// Comment is a standalone comment line.
type Comment struct {
	Text string
}

func (*Comment) Kind() Kind { return KindComment }

// StructField is one field of a struct type declaration.
type StructField struct {
	Name string
	Type *Type
}

// Struct is a struct type declaration. Methods are separate Function items
// with a receiver, following Go's own layout.
type Struct struct {
	Name   string
	Doc    []string
	Fields []StructField
}

func (*Struct) Kind() Kind { return KindStruct }

// Param is a function parameter.
type Param struct {
	Name string
	Type *Type
}

// Function is a top-level function or a method when Recv is set. ErrResult
// adds a trailing error result to the signature.
type Function struct {
	Name      string
	Doc       []string
	RecvName  string
	RecvType  string // struct name; pointer receiver when non-empty
	Params    []Param
	Return    *Type
	ErrResult bool
	Body      *Block
}

func (*Function) Kind() Kind { return KindFunction }

// Const is a package-level constant.
type Const struct {
	Name  string
	Value Node
}

func (*Const) Kind() Kind { return KindConst }

// Var is `var name T`, used for declared-but-uninitialized bindings, or
// `var name = value` when Value is set (array tables and other initializers
// that Go does not allow in a const declaration).
type Var struct {
	Name  string
	Type  *Type
	Value Node
}

func (*Var) Kind() Kind { return KindVar }

// ShortDecl is `name := value`.
type ShortDecl struct {
	Name  string
	Value Node
}

func (*ShortDecl) Kind() Kind { return KindShortDecl }

// Assign is `target op value` (op is "=", "+=", "^=", ...).
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

// For is Go's unified loop: all of Init, Cond and Post may be nil. A bare
// `for {}` has all three nil; a while loop has only Cond.
type For struct {
	Init Node // *ShortDecl or *Assign
	Cond Node
	Post Node // *Assign
	Body *Block
}

func (*For) Kind() Kind { return KindFor }

// Range is `for key, val := range x`. Empty Key renders "_" when Val is set;
// empty Val omits the value variable.
type Range struct {
	Key  string
	Val  string
	X    Node
	Body *Block
}

func (*Range) Kind() Kind { return KindRange }

// SwitchCase is one case clause. Default marks the default clause.
type SwitchCase struct {
	Vals    []Node
	Default bool
	Body    *Block
}

// Switch is a tag switch statement.
type Switch struct {
	Tag   Node
	Cases []SwitchCase
}

func (*Switch) Kind() Kind { return KindSwitch }

// Break exits the innermost loop or switch.
type Break struct{}

func (*Break) Kind() Kind { return KindBreak }

// Continue skips to the next loop iteration.
type Continue struct{}

func (*Continue) Kind() Kind { return KindContinue }

// Return returns the given values; empty Values is a bare return.
type Return struct {
	Values []Node
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
	LitNil
	LitRune
)

// Literal is a typed literal.
type Literal struct {
	LitKind LitKind
	Int     int64
	Float   float64
	Str     string
	Rune    rune
	Bool    bool
}

func (*Literal) Kind() Kind { return KindLiteral }

// Ident is an identifier or qualified name ("i", "binary.LittleEndian").
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

// Selector is `x.Name`.
type Selector struct {
	X    Node
	Name string
}

func (*Selector) Kind() Kind { return KindSelector }

// Index is `x[index]`.
type Index struct {
	X, I Node
}

func (*Index) Kind() Kind { return KindIndex }

// SliceExpr is `x[low:high]`; either bound may be nil.
type SliceExpr struct {
	X         Node
	Low, High Node
}

func (*SliceExpr) Kind() Kind { return KindSliceExpr }

// Call is a function, method, conversion or builtin call.
type Call struct {
	Fn   Node
	Args []Node
}

func (*Call) Kind() Kind { return KindCall }

// Ellipsis is a `x...` spread argument, valid only as a final call argument.
type Ellipsis struct {
	X Node
}

func (*Ellipsis) Kind() Kind { return KindEllipsis }

// KeyedElem is one element of a composite literal, keyed when Key is set.
type KeyedElem struct {
	Key   Node // nil for positional elements
	Value Node
}

// Composite is `T{elems}`.
type Composite struct {
	Type  *Type
	Named string // overrides Type for struct literals
	Elems []KeyedElem
}

func (*Composite) Kind() Kind { return KindComposite }

// FuncLit is a function literal, used for closures and ternary lowering.
type FuncLit struct {
	Params []Param
	Return *Type
	Body   *Block
}

func (*FuncLit) Kind() Kind { return KindFuncLit }

// Placeholder marks a construct that could not be translated. It renders as
// a visible comment so partial output stays inspectable.
type Placeholder struct {
	Message string
}

func (*Placeholder) Kind() Kind { return KindPlaceholder }
