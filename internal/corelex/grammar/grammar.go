// Package grammar implements the context-free grammar data model and the
// FIRST/FOLLOW static analyzer.
//
// The analyzer consumes a Grammar only through the Source interface — the
// grammar/production data source is treated as an external collaborator,
// same as ictiobus's Grammar type is consumed by its parse/ package through
// plain getters.
package grammar

import (
	"fmt"

	"github.com/dkerrow/corelex/internal/corelex/symbol"
)

// Production is a pair (Left, Right) — Left must be a non-terminal. A
// production with Right = []Symbol{symbol.Epsilon} encodes an ε-production.
type Production struct {
	Left  symbol.Symbol
	Right []symbol.Symbol
}

func (p Production) String() string {
	s := p.Left.String() + " ->"
	for _, sym := range p.Right {
		s += " " + sym.String()
	}
	return s
}

// IsEpsilon returns whether this production is the single-symbol ε
// production.
func (p Production) IsEpsilon() bool {
	return len(p.Right) == 1 && p.Right[0].IsEpsilon()
}

// Source is the interface the static analyzer (and anything else downstream)
// consumes a grammar through. Grammar implements it; callers may supply their
// own implementation instead of building a Grammar value, keeping the
// grammar/production data source an external collaborator as specified.
type Source interface {
	Terminals() []symbol.Symbol
	NonTerminals() []symbol.Symbol
	Productions() []Production
	StartSymbol() symbol.Symbol
}

// Grammar is a set of productions, a distinguished start non-terminal, and
// derived sets of terminals and non-terminals.
type Grammar struct {
	start       symbol.Symbol
	productions []Production
	terminals   map[symbol.Symbol]bool
	nonTerms    map[symbol.Symbol]bool
}

// New builds a Grammar from an ordered list of productions and a start
// symbol, deriving the terminal/non-terminal sets from the productions
// themselves. It returns an error if any production's left-hand side is not
// a non-terminal, or if start is never the left-hand side of a production.
//
// Invariant enforced here: every symbol appearing on any right-hand side is
// either a declared terminal, a declared non-terminal, or ε.
func New(start symbol.Symbol, productions []Production) (Grammar, error) {
	g := Grammar{
		start:       start,
		productions: make([]Production, len(productions)),
		terminals:   map[symbol.Symbol]bool{symbol.Epsilon: true},
		nonTerms:    map[symbol.Symbol]bool{},
	}
	copy(g.productions, productions)

	for _, p := range productions {
		if p.Left.Kind != symbol.NonTerminal {
			return Grammar{}, fmt.Errorf("grammar: production left-hand side %q is not a non-terminal", p.Left)
		}
		g.nonTerms[p.Left] = true
	}

	for _, p := range productions {
		for _, sym := range p.Right {
			if sym.IsEpsilon() {
				continue
			}
			if sym.Kind == symbol.NonTerminal {
				if !g.nonTerms[sym] {
					return Grammar{}, fmt.Errorf("grammar: production %s references non-terminal %q with no productions", p, sym)
				}
			} else {
				g.terminals[sym] = true
			}
		}
	}

	if !g.nonTerms[start] {
		return Grammar{}, fmt.Errorf("grammar: start symbol %q has no productions", start)
	}

	return g, nil
}

// StartSymbol returns the grammar's distinguished start non-terminal.
func (g Grammar) StartSymbol() symbol.Symbol {
	return g.start
}

// Productions returns the ordered list of productions in the grammar.
func (g Grammar) Productions() []Production {
	out := make([]Production, len(g.productions))
	copy(out, g.productions)
	return out
}

// ProductionsFor returns the productions whose left-hand side is A, in
// declaration order.
func (g Grammar) ProductionsFor(A symbol.Symbol) []Production {
	var out []Production
	for _, p := range g.productions {
		if p.Left == A {
			out = append(out, p)
		}
	}
	return out
}

// Terminals returns the grammar's terminal symbols, including ε.
func (g Grammar) Terminals() []symbol.Symbol {
	out := make([]symbol.Symbol, 0, len(g.terminals))
	for s := range g.terminals {
		out = append(out, s)
	}
	return out
}

// NonTerminals returns the grammar's non-terminal symbols.
func (g Grammar) NonTerminals() []symbol.Symbol {
	out := make([]symbol.Symbol, 0, len(g.nonTerms))
	for s := range g.nonTerms {
		out = append(out, s)
	}
	return out
}
