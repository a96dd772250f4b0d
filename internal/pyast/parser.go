package pyast

import (
	"fmt"
	"strconv"
)

// reservedStmts lead statements the comparator has no rules for. Hitting one
// is distinguishable from a plain syntax error so graders can report "cannot
// auto-grade" instead of "incorrect".
var reservedStmts = map[string]bool{
	"def": true, "class": true, "import": true, "from": true, "with": true,
	"try": true, "except": true, "finally": true, "raise": true,
	"assert": true, "global": true, "nonlocal": true, "lambda": true,
	"yield": true, "async": true, "await": true, "match": true,
}

// keywords may not be used as plain names.
var keywords = map[string]bool{
	"if": true, "elif": true, "else": true, "while": true, "for": true,
	"in": true, "not": true, "and": true, "or": true, "is": true,
	"del": true, "return": true, "pass": true, "break": true,
	"continue": true,
}

type parser struct {
	toks []token
	pos  int
}

// parse builds the statement list for a fragment. Syntax errors come back as
// ordinary errors; recognized-but-uncovered constructs wrap
// ErrUnsupportedSyntax.
func parse(src string) ([]Stmt, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}

	var stmts []Stmt
	for p.cur().kind != tokEOF {
		s, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, s)
	}
	return stmts, nil
}

func (p *parser) cur() token { return p.toks[p.pos] }

func (p *parser) peek() token {
	if p.pos+1 < len(p.toks) {
		return p.toks[p.pos+1]
	}
	return token{kind: tokEOF}
}

func (p *parser) advance() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) acceptOp(text string) bool {
	if p.cur().isOp(text) {
		p.advance()
		return true
	}
	return false
}

func (p *parser) expectOp(text string) error {
	if !p.acceptOp(text) {
		return fmt.Errorf("pyast: expected %q", text)
	}
	return nil
}

func (p *parser) expectNewline() error {
	if p.cur().kind != tokNewline {
		return fmt.Errorf("pyast: expected end of line")
	}
	p.advance()
	return nil
}

func (p *parser) isKeyword(word string) bool {
	return p.cur().kind == tokName && p.cur().text == word
}

func (p *parser) parseStmt() (Stmt, error) {
	if p.cur().kind == tokName {
		word := p.cur().text
		if reservedStmts[word] {
			return nil, fmt.Errorf("%w: %q statement", ErrUnsupportedSyntax, word)
		}
		switch word {
		case "if":
			return p.parseIf()
		case "while":
			return p.parseWhile()
		case "for":
			return p.parseFor()
		case "elif", "else":
			return nil, fmt.Errorf("pyast: %q without matching if", word)
		}
	}

	s, err := p.parseSimpleStmt()
	if err != nil {
		return nil, err
	}
	if err := p.expectNewline(); err != nil {
		return nil, err
	}
	return s, nil
}

func (p *parser) parseSimpleStmt() (Stmt, error) {
	if p.cur().kind == tokName {
		switch p.cur().text {
		case "pass":
			p.advance()
			return &Pass{}, nil
		case "break":
			p.advance()
			return &Break{}, nil
		case "continue":
			p.advance()
			return &Continue{}, nil
		case "return":
			p.advance()
			if p.cur().kind == tokNewline {
				return &Return{}, nil
			}
			value, err := p.parseExprList()
			if err != nil {
				return nil, err
			}
			return &Return{Value: value}, nil
		case "del":
			p.advance()
			targets, err := p.parseCommaSeparated()
			if err != nil {
				return nil, err
			}
			return &Delete{Targets: targets}, nil
		}
	}

	first, err := p.parseExprList()
	if err != nil {
		return nil, err
	}

	if op, ok := augOp(p.cur()); ok {
		p.advance()
		value, err := p.parseExprList()
		if err != nil {
			return nil, err
		}
		return &AugAssign{Target: first, Op: op, Value: value}, nil
	}

	if p.cur().isOp("=") {
		targets := []Expr{first}
		value := Expr(nil)
		for p.acceptOp("=") {
			next, err := p.parseExprList()
			if err != nil {
				return nil, err
			}
			if value != nil {
				targets = append(targets, value)
			}
			value = next
		}
		return &Assign{Targets: targets, Value: value}, nil
	}

	return &ExprStmt{Value: first}, nil
}

func augOp(t token) (BinOp, bool) {
	if t.kind != tokOp {
		return 0, false
	}
	switch t.text {
	case "+=":
		return OpAdd, true
	case "-=":
		return OpSub, true
	case "*=":
		return OpMul, true
	case "/=":
		return OpDiv, true
	case "%=":
		return OpMod, true
	case "**=":
		return OpPow, true
	case "//=":
		return OpFloorDiv, true
	}
	return 0, false
}

func (p *parser) parseIf() (Stmt, error) {
	p.advance() // if / elif
	test, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseSuite()
	if err != nil {
		return nil, err
	}
	node := &If{Test: test, Body: body}

	if p.isKeyword("elif") {
		nested, err := p.parseIf()
		if err != nil {
			return nil, err
		}
		node.Else = []Stmt{nested}
	} else if p.isKeyword("else") {
		p.advance()
		node.Else, err = p.parseSuite()
		if err != nil {
			return nil, err
		}
	}
	return node, nil
}

func (p *parser) parseWhile() (Stmt, error) {
	p.advance()
	test, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	body, err := p.parseSuite()
	if err != nil {
		return nil, err
	}
	node := &While{Test: test, Body: body}
	if p.isKeyword("else") {
		p.advance()
		node.Else, err = p.parseSuite()
		if err != nil {
			return nil, err
		}
	}
	return node, nil
}

func (p *parser) parseFor() (Stmt, error) {
	p.advance()
	target, err := p.parseTargetList()
	if err != nil {
		return nil, err
	}
	if !p.isKeyword("in") {
		return nil, fmt.Errorf("pyast: expected 'in' in for statement")
	}
	p.advance()
	iter, err := p.parseExprList()
	if err != nil {
		return nil, err
	}
	body, err := p.parseSuite()
	if err != nil {
		return nil, err
	}
	node := &For{Target: target, Iter: iter, Body: body}
	if p.isKeyword("else") {
		p.advance()
		node.Else, err = p.parseSuite()
		if err != nil {
			return nil, err
		}
	}
	return node, nil
}

// parseSuite parses ':' followed by either an inline statement or an
// indented block.
func (p *parser) parseSuite() ([]Stmt, error) {
	if err := p.expectOp(":"); err != nil {
		return nil, err
	}

	if p.cur().kind != tokNewline {
		s, err := p.parseSimpleStmt()
		if err != nil {
			return nil, err
		}
		if err := p.expectNewline(); err != nil {
			return nil, err
		}
		return []Stmt{s}, nil
	}

	p.advance() // newline
	if p.cur().kind != tokIndent {
		return nil, fmt.Errorf("pyast: expected indented block")
	}
	p.advance()

	var body []Stmt
	for p.cur().kind != tokDedent && p.cur().kind != tokEOF {
		s, err := p.parseStmt()
		if err != nil {
			return nil, err
		}
		body = append(body, s)
	}
	if p.cur().kind == tokDedent {
		p.advance()
	}
	return body, nil
}

// parseTargetList parses for-loop targets: one target or an unparenthesized
// tuple (k, v). Targets parse below comparison precedence so the loop's
// 'in' keyword is not swallowed as an operator.
func (p *parser) parseTargetList() (Expr, error) {
	first, err := p.parseArith()
	if err != nil {
		return nil, err
	}
	if !p.cur().isOp(",") {
		return first, nil
	}
	elts := []Expr{first}
	for p.acceptOp(",") {
		e, err := p.parseArith()
		if err != nil {
			return nil, err
		}
		elts = append(elts, e)
	}
	return &TupleLit{Elts: elts}, nil
}

// parseExprList parses an expression or an unparenthesized tuple (1, 2).
func (p *parser) parseExprList() (Expr, error) {
	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.cur().isOp(",") {
		return first, nil
	}
	elts := []Expr{first}
	for p.acceptOp(",") {
		if !p.startsExpr() {
			break // trailing comma
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elts = append(elts, e)
	}
	return &TupleLit{Elts: elts}, nil
}

func (p *parser) parseCommaSeparated() ([]Expr, error) {
	var elts []Expr
	for {
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elts = append(elts, e)
		if !p.acceptOp(",") {
			return elts, nil
		}
	}
}

// startsExpr reports whether the current token can begin an expression.
func (p *parser) startsExpr() bool {
	switch p.cur().kind {
	case tokNumber, tokString:
		return true
	case tokName:
		word := p.cur().text
		return !keywords[word] || word == "not"
	case tokOp:
		switch p.cur().text {
		case "(", "[", "{", "-", "+", "~":
			return true
		}
	}
	return false
}

// Expression grammar, lowest precedence first.

func (p *parser) parseExpr() (Expr, error) {
	e, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	// A trailing if/for keyword means a conditional expression or a
	// comprehension, both valid Python without comparison rules here.
	if p.isKeyword("if") || p.isKeyword("for") {
		return nil, fmt.Errorf("%w: %q expression", ErrUnsupportedSyntax, p.cur().text)
	}
	return e, nil
}

func (p *parser) parseOr() (Expr, error) {
	first, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	if !p.isKeyword("or") {
		return first, nil
	}
	values := []Expr{first}
	for p.isKeyword("or") {
		p.advance()
		v, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return &BoolExpr{Op: OpOr, Values: values}, nil
}

func (p *parser) parseAnd() (Expr, error) {
	first, err := p.parseNot()
	if err != nil {
		return nil, err
	}
	if !p.isKeyword("and") {
		return first, nil
	}
	values := []Expr{first}
	for p.isKeyword("and") {
		p.advance()
		v, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return &BoolExpr{Op: OpAnd, Values: values}, nil
}

func (p *parser) parseNot() (Expr, error) {
	if p.isKeyword("not") {
		p.advance()
		operand, err := p.parseNot()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Op: OpNot, Operand: operand}, nil
	}
	return p.parseComparison()
}

func (p *parser) parseComparison() (Expr, error) {
	left, err := p.parseArith()
	if err != nil {
		return nil, err
	}

	var ops []CmpOp
	var comparators []Expr
	for {
		op, ok := p.cmpOp()
		if !ok {
			break
		}
		right, err := p.parseArith()
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
		comparators = append(comparators, right)
	}
	if len(ops) == 0 {
		return left, nil
	}
	return &CompareExpr{Left: left, Ops: ops, Comparators: comparators}, nil
}

// cmpOp consumes a comparison operator if one is next.
func (p *parser) cmpOp() (CmpOp, bool) {
	if p.cur().kind == tokOp {
		var op CmpOp
		switch p.cur().text {
		case "<":
			op = CmpLt
		case ">":
			op = CmpGt
		case "<=":
			op = CmpLe
		case ">=":
			op = CmpGe
		case "==":
			op = CmpEq
		case "!=":
			op = CmpNe
		default:
			return 0, false
		}
		p.advance()
		return op, true
	}
	if p.isKeyword("in") {
		p.advance()
		return CmpIn, true
	}
	if p.isKeyword("not") && p.peek().kind == tokName && p.peek().text == "in" {
		p.advance()
		p.advance()
		return CmpNotIn, true
	}
	if p.isKeyword("is") {
		p.advance()
		if p.isKeyword("not") {
			p.advance()
			return CmpIsNot, true
		}
		return CmpIs, true
	}
	return 0, false
}

func (p *parser) parseArith() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		var op BinOp
		switch {
		case p.cur().isOp("+"):
			op = OpAdd
		case p.cur().isOp("-"):
			op = OpSub
		default:
			return left, nil
		}
		p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: op, Left: left, Right: right}
	}
}

func (p *parser) parseTerm() (Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		var op BinOp
		switch {
		case p.cur().isOp("*"):
			op = OpMul
		case p.cur().isOp("/"):
			op = OpDiv
		case p.cur().isOp("%"):
			op = OpMod
		case p.cur().isOp("//"):
			op = OpFloorDiv
		default:
			return left, nil
		}
		p.advance()
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Op: op, Left: left, Right: right}
	}
}

func (p *parser) parseUnary() (Expr, error) {
	var op UnaryOp
	switch {
	case p.cur().isOp("-"):
		op = OpNeg
	case p.cur().isOp("+"):
		op = OpPos
	case p.cur().isOp("~"):
		op = OpInvert
	default:
		return p.parsePower()
	}
	p.advance()
	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &UnaryExpr{Op: op, Operand: operand}, nil
}

func (p *parser) parsePower() (Expr, error) {
	base, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	if p.acceptOp("**") {
		exp, err := p.parseUnary() // right-associative
		if err != nil {
			return nil, err
		}
		return &BinaryExpr{Op: OpPow, Left: base, Right: exp}, nil
	}
	return base, nil
}

func (p *parser) parsePostfix() (Expr, error) {
	e, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.cur().isOp("("):
			e, err = p.parseCall(e)
		case p.cur().isOp("."):
			p.advance()
			if p.cur().kind != tokName {
				return nil, fmt.Errorf("pyast: expected attribute name")
			}
			e = &AttributeExpr{Value: e, Attr: p.advance().text}
		case p.cur().isOp("["):
			e, err = p.parseSubscript(e)
		default:
			return e, nil
		}
		if err != nil {
			return nil, err
		}
	}
}

func (p *parser) parseCall(fn Expr) (Expr, error) {
	p.advance() // (
	call := &CallExpr{Func: fn}
	for !p.cur().isOp(")") {
		if p.cur().kind == tokName && p.peek().isOp("=") && !keywords[p.cur().text] {
			name := p.advance().text
			p.advance() // =
			value, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			call.Keywords = append(call.Keywords, KeywordArg{Name: name, Value: value})
		} else {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			call.Args = append(call.Args, arg)
		}
		if !p.acceptOp(",") {
			break
		}
	}
	if err := p.expectOp(")"); err != nil {
		return nil, err
	}
	return call, nil
}

func (p *parser) parseSubscript(value Expr) (Expr, error) {
	p.advance() // [

	var lower Expr
	var err error
	if !p.cur().isOp(":") {
		lower, err = p.parseExprListIn("]")
		if err != nil {
			return nil, err
		}
	}

	if p.acceptOp(":") {
		slice := &SliceExpr{Lower: lower}
		if !p.cur().isOp(":") && !p.cur().isOp("]") {
			slice.Upper, err = p.parseExpr()
			if err != nil {
				return nil, err
			}
		}
		if p.acceptOp(":") && !p.cur().isOp("]") {
			slice.Step, err = p.parseExpr()
			if err != nil {
				return nil, err
			}
		}
		if err := p.expectOp("]"); err != nil {
			return nil, err
		}
		return &SubscriptExpr{Value: value, Index: slice}, nil
	}

	if err := p.expectOp("]"); err != nil {
		return nil, err
	}
	return &SubscriptExpr{Value: value, Index: lower}, nil
}

// parseExprListIn parses an expression or tuple, stopping before closer.
func (p *parser) parseExprListIn(closer string) (Expr, error) {
	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if !p.cur().isOp(",") {
		return first, nil
	}
	elts := []Expr{first}
	for p.acceptOp(",") {
		if p.cur().isOp(closer) {
			break
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elts = append(elts, e)
	}
	return &TupleLit{Elts: elts}, nil
}

func (p *parser) parseAtom() (Expr, error) {
	switch p.cur().kind {
	case tokNumber:
		text := p.advance().text
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return nil, fmt.Errorf("pyast: bad number %q", text)
		}
		return &Number{Value: v}, nil

	case tokString:
		return &String{Value: p.advance().text}, nil

	case tokName:
		word := p.cur().text
		if reservedStmts[word] {
			return nil, fmt.Errorf("%w: %q expression", ErrUnsupportedSyntax, word)
		}
		if keywords[word] {
			return nil, fmt.Errorf("pyast: unexpected keyword %q", word)
		}
		// f"...", r"...", rb"..." and friends lex as a name glued to a
		// string literal.
		if p.peek().kind == tokString && isStringPrefix(word) {
			return nil, fmt.Errorf("%w: %q string prefix", ErrUnsupportedSyntax, word)
		}
		return &Name{ID: p.advance().text}, nil

	case tokOp:
		switch p.cur().text {
		case "(":
			p.advance()
			if p.acceptOp(")") {
				return &TupleLit{}, nil
			}
			inner, err := p.parseExprListIn(")")
			if err != nil {
				return nil, err
			}
			if err := p.expectOp(")"); err != nil {
				return nil, err
			}
			return inner, nil

		case "[":
			p.advance()
			lit := &ListLit{}
			for !p.cur().isOp("]") {
				e, err := p.parseExpr()
				if err != nil {
					return nil, err
				}
				lit.Elts = append(lit.Elts, e)
				if !p.acceptOp(",") {
					break
				}
			}
			if err := p.expectOp("]"); err != nil {
				return nil, err
			}
			return lit, nil

		case "{":
			return p.parseBraced()
		}
	}
	return nil, fmt.Errorf("pyast: unexpected token")
}

// isStringPrefix reports whether word is a Python string-literal prefix
// (f, r, b, u and their two-letter combinations, any case).
func isStringPrefix(word string) bool {
	if len(word) == 0 || len(word) > 2 {
		return false
	}
	for _, c := range word {
		switch c {
		case 'f', 'F', 'r', 'R', 'b', 'B', 'u', 'U':
		default:
			return false
		}
	}
	return true
}

// parseBraced parses a dict or set literal; {} is an empty dict.
func (p *parser) parseBraced() (Expr, error) {
	p.advance() // {
	if p.acceptOp("}") {
		return &DictLit{}, nil
	}

	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if p.cur().isOp(":") {
		dict := &DictLit{}
		key := first
		for {
			if err := p.expectOp(":"); err != nil {
				return nil, err
			}
			value, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			dict.Keys = append(dict.Keys, key)
			dict.Values = append(dict.Values, value)
			if !p.acceptOp(",") || p.cur().isOp("}") {
				break
			}
			key, err = p.parseExpr()
			if err != nil {
				return nil, err
			}
		}
		if err := p.expectOp("}"); err != nil {
			return nil, err
		}
		return dict, nil
	}

	set := &SetLit{Elts: []Expr{first}}
	for p.acceptOp(",") {
		if p.cur().isOp("}") {
			break
		}
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		set.Elts = append(set.Elts, e)
	}
	if err := p.expectOp("}"); err != nil {
		return nil, err
	}
	return set, nil
}
