package pyast

import (
	"fmt"
	"strings"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNewline
	tokIndent
	tokDedent
	tokName
	tokNumber
	tokString
	tokOp
)

type token struct {
	kind tokenKind
	text string
}

func (t token) isOp(text string) bool { return t.kind == tokOp && t.text == text }

// multi-character operators, longest first so lexing is greedy.
var operators = []string{
	"**=", "//=",
	"==", "!=", "<=", ">=", "+=", "-=", "*=", "/=", "%=", "**", "//",
	"+", "-", "*", "/", "%", "<", ">", "=", "~",
	"(", ")", "[", "]", "{", "}", ",", ":", ".",
}

// tokenize turns a fragment into a flat token stream with NEWLINE and
// INDENT/DEDENT tokens, Python style. Blank lines are skipped.
func tokenize(src string) ([]token, error) {
	var toks []token
	indents := []int{0}

	for _, line := range strings.Split(src, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		indent := 0
		rest := line
		for len(rest) > 0 {
			if rest[0] == ' ' {
				indent++
			} else if rest[0] == '\t' {
				indent += 8
			} else {
				break
			}
			rest = rest[1:]
		}

		switch {
		case indent > indents[len(indents)-1]:
			indents = append(indents, indent)
			toks = append(toks, token{kind: tokIndent})
		case indent < indents[len(indents)-1]:
			for indent < indents[len(indents)-1] {
				indents = indents[:len(indents)-1]
				toks = append(toks, token{kind: tokDedent})
			}
			if indent != indents[len(indents)-1] {
				return nil, fmt.Errorf("pyast: inconsistent indentation")
			}
		}

		lineToks, err := tokenizeLine(rest)
		if err != nil {
			return nil, err
		}
		toks = append(toks, lineToks...)
		toks = append(toks, token{kind: tokNewline})
	}

	for len(indents) > 1 {
		indents = indents[:len(indents)-1]
		toks = append(toks, token{kind: tokDedent})
	}
	toks = append(toks, token{kind: tokEOF})
	return toks, nil
}

func tokenizeLine(line string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(line) {
		c := line[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '#':
			i = len(line)
		case isNameStart(c):
			j := i + 1
			for j < len(line) && isNameChar(line[j]) {
				j++
			}
			toks = append(toks, token{kind: tokName, text: line[i:j]})
			i = j
		case isDigit(c) || (c == '.' && i+1 < len(line) && isDigit(line[i+1])):
			j := i
			seenDot := false
			for j < len(line) && (isDigit(line[j]) || (line[j] == '.' && !seenDot)) {
				if line[j] == '.' {
					seenDot = true
				}
				j++
			}
			if j < len(line) && (line[j] == 'e' || line[j] == 'E') {
				k := j + 1
				if k < len(line) && (line[k] == '+' || line[k] == '-') {
					k++
				}
				if k < len(line) && isDigit(line[k]) {
					for k < len(line) && isDigit(line[k]) {
						k++
					}
					j = k
				}
			}
			toks = append(toks, token{kind: tokNumber, text: line[i:j]})
			i = j
		case c == '\'' || c == '"':
			text, n, err := lexString(line[i:])
			if err != nil {
				return nil, err
			}
			toks = append(toks, token{kind: tokString, text: text})
			i += n
		default:
			op := matchOperator(line[i:])
			if op == "" {
				return nil, fmt.Errorf("pyast: unexpected character %q", c)
			}
			toks = append(toks, token{kind: tokOp, text: op})
			i += len(op)
		}
	}
	return toks, nil
}

// lexString lexes a quoted string starting at s[0], returning the unescaped
// value and the number of source bytes consumed.
func lexString(s string) (string, int, error) {
	quote := s[0]
	var b strings.Builder
	i := 1
	for i < len(s) {
		c := s[i]
		switch c {
		case quote:
			return b.String(), i + 1, nil
		case '\\':
			if i+1 >= len(s) {
				return "", 0, fmt.Errorf("pyast: unterminated string")
			}
			switch s[i+1] {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			case 'r':
				b.WriteByte('\r')
			case '0':
				b.WriteByte(0)
			default:
				b.WriteByte(s[i+1])
			}
			i += 2
		default:
			b.WriteByte(c)
			i++
		}
	}
	return "", 0, fmt.Errorf("pyast: unterminated string")
}

func matchOperator(s string) string {
	for _, op := range operators {
		if strings.HasPrefix(s, op) {
			return op
		}
	}
	return ""
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameChar(c byte) bool { return isNameStart(c) || isDigit(c) }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
