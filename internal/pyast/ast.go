// Package pyast parses single-statement Python code fragments into a small
// syntax tree and decides whether two fragments are structurally equivalent
// for grading purposes. The comparator tolerates variation the platform
// considers immaterial: operand order for commutative operators, mirrored
// comparisons (a < b vs b > a), augmented assignment vs its spelled-out
// form, and dict key order.
package pyast

// Stmt is a statement node.
type Stmt interface{ stmtNode() }

// Expr is an expression node.
type Expr interface{ exprNode() }

// BinOp identifies a binary arithmetic operator.
type BinOp int

const (
	OpAdd BinOp = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
	OpFloorDiv
)

// Commutative reports whether operand order is immaterial for the operator.
// Only subtraction and division are treated as order-sensitive.
func (op BinOp) Commutative() bool {
	return op != OpSub && op != OpDiv
}

// UnaryOp identifies a unary operator.
type UnaryOp int

const (
	OpNeg UnaryOp = iota
	OpPos
	OpNot
	OpInvert
)

// BoolOp identifies a boolean operator.
type BoolOp int

const (
	OpAnd BoolOp = iota
	OpOr
)

// CmpOp identifies a comparison operator.
type CmpOp int

const (
	CmpLt CmpOp = iota
	CmpGt
	CmpLe
	CmpGe
	CmpEq
	CmpNe
	CmpIn
	CmpNotIn
	CmpIs
	CmpIsNot
)

// mirror returns the operator with its operands' roles swapped (a < b is
// b > a) and true, or false when no mirror exists.
func (op CmpOp) mirror() (CmpOp, bool) {
	switch op {
	case CmpLt:
		return CmpGt, true
	case CmpGt:
		return CmpLt, true
	case CmpLe:
		return CmpGe, true
	case CmpGe:
		return CmpLe, true
	}
	return 0, false
}

// Statements.

type ExprStmt struct{ Value Expr }

type Assign struct {
	Targets []Expr // a = b = 1 has targets [a, b]
	Value   Expr
}

type AugAssign struct {
	Target Expr
	Op     BinOp
	Value  Expr
}

type Return struct{ Value Expr } // Value is nil for a bare return

type Delete struct{ Targets []Expr }

type If struct {
	Test Expr
	Body []Stmt
	Else []Stmt // an elif chain nests another If here
}

type While struct {
	Test Expr
	Body []Stmt
	Else []Stmt
}

type For struct {
	Target Expr
	Iter   Expr
	Body   []Stmt
	Else   []Stmt
}

type Pass struct{}
type Break struct{}
type Continue struct{}

func (*ExprStmt) stmtNode()  {}
func (*Assign) stmtNode()    {}
func (*AugAssign) stmtNode() {}
func (*Return) stmtNode()    {}
func (*Delete) stmtNode()    {}
func (*If) stmtNode()        {}
func (*While) stmtNode()     {}
func (*For) stmtNode()       {}
func (*Pass) stmtNode()      {}
func (*Break) stmtNode()     {}
func (*Continue) stmtNode()  {}

// Expressions.

type Name struct{ ID string }

// Number holds any numeric literal. Like Python constant equality,
// 7 and 7.0 compare equal.
type Number struct{ Value float64 }

type String struct{ Value string }

type UnaryExpr struct {
	Op      UnaryOp
	Operand Expr
}

type BinaryExpr struct {
	Op    BinOp
	Left  Expr
	Right Expr
}

// BoolExpr holds an and/or chain; a and b and c flattens to one node with
// three values, as in Python.
type BoolExpr struct {
	Op     BoolOp
	Values []Expr
}

// CompareExpr holds a comparison chain. Chains longer than one comparator
// are parsed but rejected by the comparator as unsupported.
type CompareExpr struct {
	Left        Expr
	Ops         []CmpOp
	Comparators []Expr
}

type KeywordArg struct {
	Name  string
	Value Expr
}

type CallExpr struct {
	Func     Expr
	Args     []Expr
	Keywords []KeywordArg
}

type AttributeExpr struct {
	Value Expr
	Attr  string
}

type SubscriptExpr struct {
	Value Expr
	Index Expr // a *SliceExpr for x[a:b:c]
}

// SliceExpr is the a:b:c inside a subscript; any part may be nil.
type SliceExpr struct {
	Lower Expr
	Upper Expr
	Step  Expr
}

type ListLit struct{ Elts []Expr }
type TupleLit struct{ Elts []Expr }
type SetLit struct{ Elts []Expr }

// DictLit keeps keys and values index-aligned.
type DictLit struct {
	Keys   []Expr
	Values []Expr
}

func (*Name) exprNode()          {}
func (*Number) exprNode()        {}
func (*String) exprNode()        {}
func (*UnaryExpr) exprNode()     {}
func (*BinaryExpr) exprNode()    {}
func (*BoolExpr) exprNode()      {}
func (*CompareExpr) exprNode()   {}
func (*CallExpr) exprNode()      {}
func (*AttributeExpr) exprNode() {}
func (*SubscriptExpr) exprNode() {}
func (*SliceExpr) exprNode()     {}
func (*ListLit) exprNode()       {}
func (*TupleLit) exprNode()      {}
func (*SetLit) exprNode()        {}
func (*DictLit) exprNode()       {}
