package pyast

import (
	"errors"
	"strings"
)

// ErrUnsupportedSyntax reports a construct the comparator has no rules for.
// Callers must treat it as "cannot auto-grade", never as "incorrect": a
// valid answer in an uncovered shape is not a wrong answer.
var ErrUnsupportedSyntax = errors.New("pyast: unsupported syntax")

// SameTree reports whether two single-statement code fragments are
// structurally equivalent. A fragment that fails to parse is simply not
// equivalent; a fragment that parses into a construct the comparator does
// not cover returns ErrUnsupportedSyntax.
func SameTree(expected, actual string) (bool, error) {
	if expected == actual {
		return true, nil
	}

	expStmts, err := parse(strings.TrimSpace(expected))
	if err != nil {
		if errors.Is(err, ErrUnsupportedSyntax) {
			return false, err
		}
		return false, nil
	}
	actStmts, err := parse(strings.TrimSpace(actual))
	if err != nil {
		if errors.Is(err, ErrUnsupportedSyntax) {
			return false, err
		}
		return false, nil
	}

	if len(expStmts) != 1 || len(actStmts) != 1 {
		return false, nil
	}
	return sameStmt(expStmts[0], actStmts[0])
}

func sameStmt(expected, actual Stmt) (bool, error) {
	switch e := expected.(type) {
	case *ExprStmt:
		a, ok := actual.(*ExprStmt)
		if !ok {
			return false, nil
		}
		return sameExpr(e.Value, a.Value)

	case *Assign:
		switch a := actual.(type) {
		case *Assign:
			if len(e.Targets) != len(a.Targets) {
				return false, nil
			}
			for i := range e.Targets {
				ok, err := sameExpr(e.Targets[i], a.Targets[i])
				if !ok || err != nil {
					return false, err
				}
			}
			return sameExpr(e.Value, a.Value)
		case *AugAssign:
			// x = x + 2 may be equivalent to x += 2.
			return augAssignEqual(e, a)
		}
		return false, nil

	case *AugAssign:
		switch a := actual.(type) {
		case *AugAssign:
			if e.Op != a.Op {
				return false, nil
			}
			if ok, err := sameExpr(e.Target, a.Target); !ok || err != nil {
				return false, err
			}
			return sameExpr(e.Value, a.Value)
		case *Assign:
			return augAssignEqual(a, e)
		}
		return false, nil

	case *Return:
		a, ok := actual.(*Return)
		if !ok {
			return false, nil
		}
		if e.Value == nil || a.Value == nil {
			return e.Value == nil && a.Value == nil, nil
		}
		return sameExpr(e.Value, a.Value)

	case *Delete:
		a, ok := actual.(*Delete)
		if !ok {
			return false, nil
		}
		return sameExprs(e.Targets, a.Targets)

	case *If:
		a, ok := actual.(*If)
		if !ok {
			return false, nil
		}
		if ok, err := sameExpr(e.Test, a.Test); !ok || err != nil {
			return false, err
		}
		if ok, err := sameStmts(e.Body, a.Body); !ok || err != nil {
			return false, err
		}
		return sameStmts(e.Else, a.Else)

	case *While:
		a, ok := actual.(*While)
		if !ok {
			return false, nil
		}
		if ok, err := sameExpr(e.Test, a.Test); !ok || err != nil {
			return false, err
		}
		if ok, err := sameStmts(e.Body, a.Body); !ok || err != nil {
			return false, err
		}
		return sameStmts(e.Else, a.Else)

	case *For:
		a, ok := actual.(*For)
		if !ok {
			return false, nil
		}
		if ok, err := sameExpr(e.Target, a.Target); !ok || err != nil {
			return false, err
		}
		if ok, err := sameExpr(e.Iter, a.Iter); !ok || err != nil {
			return false, err
		}
		if ok, err := sameStmts(e.Body, a.Body); !ok || err != nil {
			return false, err
		}
		return sameStmts(e.Else, a.Else)

	case *Pass:
		_, ok := actual.(*Pass)
		return ok, nil
	case *Break:
		_, ok := actual.(*Break)
		return ok, nil
	case *Continue:
		_, ok := actual.(*Continue)
		return ok, nil
	}
	return false, ErrUnsupportedSyntax
}

func sameStmts(expected, actual []Stmt) (bool, error) {
	if len(expected) != len(actual) {
		return false, nil
	}
	for i := range expected {
		ok, err := sameStmt(expected[i], actual[i])
		if !ok || err != nil {
			return false, err
		}
	}
	return true, nil
}

func sameExprs(expected, actual []Expr) (bool, error) {
	if len(expected) != len(actual) {
		return false, nil
	}
	for i := range expected {
		ok, err := sameExpr(expected[i], actual[i])
		if !ok || err != nil {
			return false, err
		}
	}
	return true, nil
}

func sameExpr(expected, actual Expr) (bool, error) {
	switch e := expected.(type) {
	case *Name:
		a, ok := actual.(*Name)
		return ok && e.ID == a.ID, nil

	case *Number:
		a, ok := actual.(*Number)
		return ok && e.Value == a.Value, nil

	case *String:
		a, ok := actual.(*String)
		return ok && e.Value == a.Value, nil

	case *UnaryExpr:
		a, ok := actual.(*UnaryExpr)
		if !ok || e.Op != a.Op {
			return false, nil
		}
		return sameExpr(e.Operand, a.Operand)

	case *BinaryExpr:
		a, ok := actual.(*BinaryExpr)
		if !ok {
			return false, nil
		}
		return sameBinary(e, a)

	case *BoolExpr:
		a, ok := actual.(*BoolExpr)
		if !ok {
			return false, nil
		}
		return sameBool(e, a)

	case *CompareExpr:
		a, ok := actual.(*CompareExpr)
		if !ok {
			return false, nil
		}
		return sameCompare(e, a)

	case *CallExpr:
		a, ok := actual.(*CallExpr)
		if !ok {
			return false, nil
		}
		return sameCall(e, a)

	case *AttributeExpr:
		a, ok := actual.(*AttributeExpr)
		if !ok || e.Attr != a.Attr {
			return false, nil
		}
		return sameExpr(e.Value, a.Value)

	case *SubscriptExpr:
		a, ok := actual.(*SubscriptExpr)
		if !ok {
			return false, nil
		}
		if ok, err := sameExpr(e.Index, a.Index); !ok || err != nil {
			return false, err
		}
		return sameExpr(e.Value, a.Value)

	case *SliceExpr:
		a, ok := actual.(*SliceExpr)
		if !ok {
			return false, nil
		}
		for _, pair := range [][2]Expr{{e.Lower, a.Lower}, {e.Upper, a.Upper}, {e.Step, a.Step}} {
			if pair[0] == nil || pair[1] == nil {
				if pair[0] != nil || pair[1] != nil {
					return false, nil
				}
				continue
			}
			ok, err := sameExpr(pair[0], pair[1])
			if !ok || err != nil {
				return false, err
			}
		}
		return true, nil

	case *ListLit:
		a, ok := actual.(*ListLit)
		if !ok {
			return false, nil
		}
		return sameExprs(e.Elts, a.Elts)

	case *TupleLit:
		a, ok := actual.(*TupleLit)
		if !ok {
			return false, nil
		}
		return sameExprs(e.Elts, a.Elts)

	case *SetLit:
		a, ok := actual.(*SetLit)
		if !ok {
			return false, nil
		}
		return sameExprs(e.Elts, a.Elts)

	case *DictLit:
		a, ok := actual.(*DictLit)
		if !ok {
			return false, nil
		}
		return sameDict(e, a)
	}
	return false, ErrUnsupportedSyntax
}

// sameBinary compares binary operations, allowing operand order to differ
// for commutative operators.
func sameBinary(expected, actual *BinaryExpr) (bool, error) {
	if expected.Op != actual.Op {
		return false, nil
	}

	same, err := bothExpr(expected.Left, actual.Left, expected.Right, actual.Right)
	if err != nil {
		return false, err
	}
	if same || !expected.Op.Commutative() {
		return same, nil
	}
	return bothExpr(expected.Left, actual.Right, expected.Right, actual.Left)
}

// sameBool compares and/or chains. A two-operand 'and' may match in either
// order; 'or' (and longer chains) must match in order. The asymmetry is
// deliberate and pinned by tests.
func sameBool(expected, actual *BoolExpr) (bool, error) {
	if expected.Op != actual.Op || len(expected.Values) != len(actual.Values) {
		return false, nil
	}

	same, err := sameExprs(expected.Values, actual.Values)
	if err != nil {
		return false, err
	}
	if same || expected.Op != OpAnd || len(expected.Values) != 2 {
		return same, nil
	}
	return bothExpr(expected.Values[0], actual.Values[1], expected.Values[1], actual.Values[0])
}

// sameCompare compares single comparisons, treating mirrored operator pairs
// (a < b vs b > a) as equivalent. Chained comparisons are unsupported.
func sameCompare(expected, actual *CompareExpr) (bool, error) {
	if len(expected.Ops) != len(actual.Ops) || len(expected.Comparators) != len(actual.Comparators) {
		return false, nil
	}
	if len(expected.Ops) != 1 {
		return false, ErrUnsupportedSyntax
	}

	if expected.Ops[0] == actual.Ops[0] {
		return bothExpr(expected.Left, actual.Left, expected.Comparators[0], actual.Comparators[0])
	}
	if mirrored, ok := actual.Ops[0].mirror(); ok && mirrored == expected.Ops[0] {
		return bothExpr(expected.Left, actual.Comparators[0], expected.Comparators[0], actual.Left)
	}
	return false, nil
}

func sameCall(expected, actual *CallExpr) (bool, error) {
	if len(expected.Keywords) > 0 || len(actual.Keywords) > 0 {
		return false, ErrUnsupportedSyntax
	}
	if len(expected.Args) != len(actual.Args) {
		return false, nil
	}
	if ok, err := sameExpr(expected.Func, actual.Func); !ok || err != nil {
		return false, err
	}
	// Argument order matters; calls are never commutative.
	return sameExprs(expected.Args, actual.Args)
}

// sameDict matches dict entries by key, not position: every actual entry
// must have a structurally equal key in expected with an equal value.
func sameDict(expected, actual *DictLit) (bool, error) {
	if len(expected.Keys) != len(actual.Keys) || len(expected.Values) != len(actual.Values) {
		return false, nil
	}

	for i := range actual.Keys {
		found := false
		for j := range expected.Keys {
			ok, err := sameExpr(actual.Keys[i], expected.Keys[j])
			if err != nil {
				return false, err
			}
			if !ok {
				continue
			}
			found = true
			ok, err = sameExpr(actual.Values[i], expected.Values[j])
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
		if !found {
			return false, nil
		}
	}
	return true, nil
}

// augAssignEqual decides whether x op= v and x = <binary op> are the same
// update. The assignment's value must be a binary operation with the same
// operator, with the assigned variable on one side; the orientation with the
// variable on the right is only valid for commutative operators
// (x = 2 - x is not x -= 2).
func augAssignEqual(assign *Assign, aug *AugAssign) (bool, error) {
	binop, ok := assign.Value.(*BinaryExpr)
	if !ok || binop.Op != aug.Op || len(assign.Targets) == 0 {
		return false, nil
	}
	target := assign.Targets[0]

	if ok, err := sameExpr(target, aug.Target); !ok || err != nil {
		return false, err
	}

	_, leftIsName := binop.Left.(*Name)
	_, rightIsName := binop.Right.(*Name)

	switch {
	case rightIsName && !leftIsName:
		// x = v op x: only commutative operators allow this orientation.
		if !binop.Op.Commutative() {
			return false, nil
		}
		if ok, err := bothExpr(binop.Right, target, binop.Right, aug.Target); !ok || err != nil {
			return false, err
		}
		return sameExpr(binop.Left, aug.Value)

	case leftIsName && !rightIsName:
		// x = x op v mirrors x op= v directly.
		if ok, err := bothExpr(binop.Left, target, binop.Left, aug.Target); !ok || err != nil {
			return false, err
		}
		return sameExpr(binop.Right, aug.Value)

	case leftIsName && rightIsName:
		// Both sides are names: work out which one denotes the target,
		// preferring the left-hand match.
		if ok, err := bothExpr(binop.Left, target, binop.Left, binop.Right); ok && err == nil {
			return sameExpr(binop.Right, aug.Value)
		} else if err != nil {
			return false, err
		}
		if ok, err := bothExpr(binop.Left, target, binop.Left, aug.Target); ok && err == nil {
			return sameExpr(binop.Right, aug.Value)
		} else if err != nil {
			return false, err
		}
		if ok, err := bothExpr(binop.Right, target, binop.Right, aug.Target); ok && err == nil {
			if binop.Op.Commutative() {
				return sameExpr(binop.Left, aug.Value)
			}
		} else if err != nil {
			return false, err
		}
	}
	return false, nil
}

// bothExpr reports whether both pairs compare equal.
func bothExpr(e1, a1, e2, a2 Expr) (bool, error) {
	ok, err := sameExpr(e1, a1)
	if !ok || err != nil {
		return false, err
	}
	return sameExpr(e2, a2)
}
