package automaton

import (
	"fmt"

	"github.com/dkerrow/corelex/internal/util"
	"github.com/google/uuid"
)

// BuildContext scopes one Thompson-construction run. State ids are local to
// the NFA being built rather than a shared process-wide counter, so
// concurrent and repeated builds stay independent of each other. BuildContext
// also carries a UUID identifying this run, threaded into any error it
// produces so a failed rule build can be correlated against build logs.
type BuildContext struct {
	ID uuid.UUID
}

// NewBuildContext returns a fresh, independent build context.
func NewBuildContext() *BuildContext {
	return &BuildContext{ID: uuid.New()}
}

// fragment is a (start, accept) pair produced by Thompson construction for
// one postfix subexpression.
type fragment struct {
	start, accept StateID
}

// BuildFromPostfix runs Thompson construction over a postfix regex,
// returning the resulting NFA. Returns an error if the postfix expression is
// malformed: an operator with too few operands on the fragment stack, or
// more than one fragment remaining at the end (both indicate stack
// underflow/overflow from a corrupt postfix string).
func (ctx *BuildContext) BuildFromPostfix(postfix string) (*NFA, error) {
	nfa := &NFA{}
	var stack util.Stack[fragment]

	pop := func(op rune) (fragment, error) {
		if stack.Len() < 1 {
			return fragment{}, fmt.Errorf("automaton: build %s: stack underflow building operator %q", ctx.ID, op)
		}
		return stack.Pop(), nil
	}
	pop2 := func(op rune) (fragment, fragment, error) {
		if stack.Len() < 2 {
			return fragment{}, fragment{}, fmt.Errorf("automaton: build %s: stack underflow building operator %q", ctx.ID, op)
		}
		b := stack.Pop()
		a := stack.Pop()
		return a, b, nil
	}

	for _, c := range postfix {
		switch c {
		case '|':
			a, b, err := pop2(c)
			if err != nil {
				return nil, err
			}
			stack.Push(ctx.union(nfa, a, b))
		case '·':
			a, b, err := pop2(c)
			if err != nil {
				return nil, err
			}
			stack.Push(ctx.concat(nfa, a, b))
		case '*':
			a, err := pop(c)
			if err != nil {
				return nil, err
			}
			stack.Push(ctx.star(nfa, a))
		case '+':
			a, err := pop(c)
			if err != nil {
				return nil, err
			}
			stack.Push(ctx.plus(nfa, a))
		case '?':
			a, err := pop(c)
			if err != nil {
				return nil, err
			}
			stack.Push(ctx.optional(nfa, a))
		default:
			stack.Push(ctx.literal(nfa, c))
		}
	}

	if stack.Len() != 1 {
		return nil, fmt.Errorf("automaton: build %s: malformed postfix expression: %d fragments remain on stack, expected 1", ctx.ID, stack.Len())
	}

	final := stack.Pop()
	nfa.Start = final.start
	nfa.Accept = final.accept
	return nfa, nil
}

// literal builds the fragment for a single-character operand: A -c-> B.
func (ctx *BuildContext) literal(n *NFA, c rune) fragment {
	a := n.addState(false)
	b := n.addState(true)
	n.addTransition(a, c, false, b)
	return fragment{start: a, accept: b}
}

// concat builds a·b: ε from a's accept to b's start, a's accept is no
// longer final.
func (ctx *BuildContext) concat(n *NFA, a, b fragment) fragment {
	n.clearFinal(a.accept)
	n.addTransition(a.accept, 0, true, b.start)
	return fragment{start: a.start, accept: b.accept}
}

// union builds a|b: new start/accept with ε-fanout into both branches.
func (ctx *BuildContext) union(n *NFA, a, b fragment) fragment {
	n.clearFinal(a.accept)
	n.clearFinal(b.accept)
	q0 := n.addState(false)
	qf := n.addState(true)
	n.addTransition(q0, 0, true, a.start)
	n.addTransition(q0, 0, true, b.start)
	n.addTransition(a.accept, 0, true, qf)
	n.addTransition(b.accept, 0, true, qf)
	return fragment{start: q0, accept: qf}
}

// star builds a* (zero-or-more): loop back from accept to start, plus a
// direct ε bypass from the new start straight to the new accept.
func (ctx *BuildContext) star(n *NFA, a fragment) fragment {
	n.clearFinal(a.accept)
	q0 := n.addState(false)
	qf := n.addState(true)
	n.addTransition(q0, 0, true, a.start)
	n.addTransition(q0, 0, true, qf)
	n.addTransition(a.accept, 0, true, a.start)
	n.addTransition(a.accept, 0, true, qf)
	return fragment{start: q0, accept: qf}
}

// plus builds a+ (one-or-more): same as star but without the q0->qf bypass.
func (ctx *BuildContext) plus(n *NFA, a fragment) fragment {
	n.clearFinal(a.accept)
	q0 := n.addState(false)
	qf := n.addState(true)
	n.addTransition(q0, 0, true, a.start)
	n.addTransition(a.accept, 0, true, a.start)
	n.addTransition(a.accept, 0, true, qf)
	return fragment{start: q0, accept: qf}
}

// optional builds a? (zero-or-one): no backwards loop, just a bypass.
func (ctx *BuildContext) optional(n *NFA, a fragment) fragment {
	n.clearFinal(a.accept)
	q0 := n.addState(false)
	qf := n.addState(true)
	n.addTransition(q0, 0, true, a.start)
	n.addTransition(q0, 0, true, qf)
	n.addTransition(a.accept, 0, true, qf)
	return fragment{start: q0, accept: qf}
}
