// Package rx implements the first two stages of the token-rule pipeline: the
// explicit-concatenation preprocessor and the shunting-yard infix→postfix
// conversion.
//
// The regex surface is deliberately small: literals, |, *, +, ?, and
// parentheses. No character classes, escapes, anchors, or capture groups —
// ictiobus/lex/regex.go's own TODO ("fill this all in when we want to return
// to DFA-based impl") is the gap this package fills, built fresh since the
// teacher never got around to it.
package rx

// ConcatOp is the explicit concatenation operator inserted by Preprocess.
// It is a reserved character and may never appear as a literal in input
// supplied to Preprocess.
const ConcatOp = '·'

// isOperand reports whether r is a literal operand rather than an operator
// or grouping character.
func isOperand(r rune) bool {
	switch r {
	case '|', '*', '+', '?', '(', ')', ConcatOp:
		return false
	default:
		return true
	}
}

func isPostfixOp(r rune) bool {
	return r == '*' || r == '+' || r == '?'
}

// Preprocess inserts the explicit concatenation marker ConcatOp between
// adjacent positions where concatenation is implicit. Empty input passes
// through unchanged.
func Preprocess(regex string) string {
	runes := []rune(regex)
	if len(runes) == 0 {
		return regex
	}

	out := make([]rune, 0, len(runes)*2)
	for i, c := range runes {
		out = append(out, c)
		if i+1 >= len(runes) {
			break
		}
		next := runes[i+1]
		if needsConcat(c, next) {
			out = append(out, ConcatOp)
		}
	}
	return string(out)
}

// needsConcat decides whether an explicit concatenation operator belongs
// between cur and next, per the five pairwise cases: operand-operand,
// operand-before-group, group-before-operand, postfix-op-before-operand (or
// group), and adjacent groups.
func needsConcat(cur, next rune) bool {
	curIsOperand := isOperand(cur)
	nextIsOperand := isOperand(next)

	switch {
	case curIsOperand && nextIsOperand:
		return true
	case curIsOperand && next == '(':
		return true
	case cur == ')' && nextIsOperand:
		return true
	case isPostfixOp(cur) && (nextIsOperand || next == '('):
		return true
	case cur == ')' && next == '(':
		return true
	default:
		return false
	}
}
