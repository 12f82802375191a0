package grammar

import (
	"sync"

	"github.com/dkerrow/corelex/internal/corelex/symbol"
)

// SymbolSet is a set of terminal symbols, as returned by FIRST and FOLLOW.
type SymbolSet map[symbol.Symbol]bool

// Has reports whether s is a member.
func (ss SymbolSet) Has(s symbol.Symbol) bool {
	return ss[s]
}

func (ss SymbolSet) add(s symbol.Symbol) bool {
	if ss[s] {
		return false
	}
	ss[s] = true
	return true
}

func (ss SymbolSet) addAll(other SymbolSet, skipEpsilon bool) bool {
	changed := false
	for s := range other {
		if skipEpsilon && s.IsEpsilon() {
			continue
		}
		if ss.add(s) {
			changed = true
		}
	}
	return changed
}

// StaticAnalyzer computes FIRST and FOLLOW sets over a grammar via fixed-
// point iteration. Both First() and Follow() are pure; results are computed
// once and memoized, since a Source is assumed immutable for the lifetime
// of the analyzer.
type StaticAnalyzer struct {
	g Source

	once       sync.Once
	first      map[symbol.Symbol]SymbolSet
	followOnce sync.Once
	follow     map[symbol.Symbol]SymbolSet
}

// NewAnalyzer returns a StaticAnalyzer over g. g is consumed only through
// the Source interface; it is never mutated.
func NewAnalyzer(g Source) *StaticAnalyzer {
	return &StaticAnalyzer{g: g}
}

// First returns FIRST(A) for every non-terminal A in the grammar. It does
// not hold entries for terminals — use FirstOf for a single symbol,
// terminal or non-terminal, which always answers correctly.
func (a *StaticAnalyzer) First() map[symbol.Symbol]SymbolSet {
	a.once.Do(a.computeFirst)
	return a.first
}

// FirstOf returns FIRST(X) for a single symbol X, terminal or non-terminal.
func (a *StaticAnalyzer) FirstOf(X symbol.Symbol) SymbolSet {
	a.once.Do(a.computeFirst)
	if X.Kind == symbol.Terminal {
		return SymbolSet{X: true}
	}
	if s, ok := a.first[X]; ok {
		return s
	}
	return SymbolSet{}
}

func (a *StaticAnalyzer) computeFirst() {
	a.first = map[symbol.Symbol]SymbolSet{}
	for _, A := range a.g.NonTerminals() {
		a.first[A] = SymbolSet{}
	}

	changed := true
	for changed {
		changed = false
		for _, p := range a.g.Productions() {
			A := p.Left
			firstA := a.first[A]

			if p.IsEpsilon() {
				if firstA.add(symbol.Epsilon) {
					changed = true
				}
				continue
			}

			allDeriveEpsilon := true
			for _, Xi := range p.Right {
				firstXi := a.firstOfDuringFixpoint(Xi)

				if firstA.addAll(firstXi, true) {
					changed = true
				}

				if !firstXi.Has(symbol.Epsilon) {
					allDeriveEpsilon = false
					break
				}
			}
			if allDeriveEpsilon {
				if firstA.add(symbol.Epsilon) {
					changed = true
				}
			}
		}
	}
}

// firstOfDuringFixpoint reads the in-progress FIRST table; terminals answer
// immediately, non-terminals read whatever has accumulated so far.
func (a *StaticAnalyzer) firstOfDuringFixpoint(X symbol.Symbol) SymbolSet {
	if X.Kind == symbol.Terminal {
		return SymbolSet{X: true}
	}
	if s, ok := a.first[X]; ok {
		return s
	}
	return SymbolSet{}
}

// firstOfString returns FIRST(X1...Xn) \ {ε}, plus whether ε ∈ FIRST of the
// whole string (i.e. every Xi can derive ε).
func (a *StaticAnalyzer) firstOfString(syms []symbol.Symbol) (SymbolSet, bool) {
	out := SymbolSet{}
	for _, X := range syms {
		fx := a.firstOfDuringFixpoint(X)
		out.addAll(fx, true)
		if !fx.Has(symbol.Epsilon) {
			return out, false
		}
	}
	return out, true
}

// Follow returns FOLLOW(A) for every non-terminal A in the grammar.
func (a *StaticAnalyzer) Follow() map[symbol.Symbol]SymbolSet {
	a.once.Do(a.computeFirst)
	a.followOnce.Do(a.computeFollow)
	return a.follow
}

// FollowOf returns FOLLOW(A) for a single non-terminal A.
func (a *StaticAnalyzer) FollowOf(A symbol.Symbol) SymbolSet {
	f := a.Follow()
	if s, ok := f[A]; ok {
		return s
	}
	return SymbolSet{}
}

func (a *StaticAnalyzer) computeFollow() {
	a.follow = map[symbol.Symbol]SymbolSet{}
	for _, A := range a.g.NonTerminals() {
		a.follow[A] = SymbolSet{}
	}
	a.follow[a.g.StartSymbol()].add(symbol.EndOfInput)

	changed := true
	for changed {
		changed = false
		for _, p := range a.g.Productions() {
			B := p.Left
			if p.IsEpsilon() {
				continue
			}

			for i, Xi := range p.Right {
				if Xi.Kind != symbol.NonTerminal {
					continue
				}

				beta := p.Right[i+1:]
				firstBeta, betaAllEpsilon := a.firstOfString(beta)

				if a.follow[Xi].addAll(firstBeta, true) {
					changed = true
				}

				if betaAllEpsilon {
					if a.follow[Xi].addAll(a.follow[B], false) {
						changed = true
					}
				}
			}
		}
	}
}
