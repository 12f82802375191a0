package rx

import (
	"fmt"

	"github.com/dkerrow/corelex/internal/util"
)

// precedence gives the ascending operator precedence table: union binds
// loosest, then concatenation, then the postfix repetition operators. All
// operators are left-associative for this grammar.
var precedence = map[rune]int{
	'|':      1,
	ConcatOp: 2,
	'*':      3,
	'+':      3,
	'?':      3,
}

func isOperator(r rune) bool {
	_, ok := precedence[r]
	return ok
}

// ToPostfix converts a preprocessed infix regex (i.e. one that has already
// been through Preprocess) to postfix, via the standard shunting-yard
// algorithm.
//
// Malformed parenthesization is promoted to an error rather than silently
// dropped: an unmatched ')' or a '(' still on the operator stack when the
// input is exhausted both return an error. It never panics.
func ToPostfix(infix string) (string, error) {
	var output []rune
	var ops util.Stack[rune]

	for _, c := range infix {
		switch {
		case isOperand(c):
			output = append(output, c)
		case c == '(':
			ops.Push(c)
		case c == ')':
			found := false
			for ops.Len() > 0 {
				top := ops.Pop()
				if top == '(' {
					found = true
					break
				}
				output = append(output, top)
			}
			if !found {
				return "", fmt.Errorf("rx: unmatched ')' in regex")
			}
		case isOperator(c):
			for ops.Len() > 0 {
				top := ops.Peek()
				if top == '(' || precedence[top] < precedence[c] {
					break
				}
				output = append(output, ops.Pop())
			}
			ops.Push(c)
		default:
			// every rune is either an operand, a parenthesis, or an
			// operator (ConcatOp included), so this branch is not reached;
			// it treats anything else as an operand.
			output = append(output, c)
		}
	}

	for ops.Len() > 0 {
		top := ops.Pop()
		if top == '(' {
			return "", fmt.Errorf("rx: unmatched '(' in regex")
		}
		output = append(output, top)
	}

	return string(output), nil
}
