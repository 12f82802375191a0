// Package symbol defines the grammar symbol type shared by the grammar
// package and the corelex facade: a named terminal or non-terminal, plus the two
// reserved symbols every grammar implicitly carries (ε and $).
package symbol

import "fmt"

// Kind tags a Symbol as a terminal or non-terminal.
type Kind int

const (
	Terminal Kind = iota
	NonTerminal
)

func (k Kind) String() string {
	if k == NonTerminal {
		return "non-terminal"
	}
	return "terminal"
}

// Symbol is a named grammar symbol. Equality and hashing are by (Name, Kind);
// two symbols with the same name but different kinds are distinct.
type Symbol struct {
	Name string
	Kind Kind
}

// New returns a Symbol with the given name and kind.
func New(name string, kind Kind) Symbol {
	return Symbol{Name: name, Kind: kind}
}

// Term returns a terminal symbol with the given name.
func Term(name string) Symbol {
	return Symbol{Name: name, Kind: Terminal}
}

// NonTerm returns a non-terminal symbol with the given name.
func NonTerm(name string) Symbol {
	return Symbol{Name: name, Kind: NonTerminal}
}

func (s Symbol) String() string {
	return s.Name
}

// IsEpsilon returns whether s is the reserved empty-string symbol.
func (s Symbol) IsEpsilon() bool {
	return s == Epsilon
}

// IsEndOfInput returns whether s is the reserved end-of-input symbol.
func (s Symbol) IsEndOfInput() bool {
	return s == EndOfInput
}

// Epsilon denotes the empty string. It is always a terminal.
var Epsilon = Symbol{Name: "ε", Kind: Terminal}

// EndOfInput denotes the end-of-input marker used in FOLLOW sets. It is
// always a terminal.
var EndOfInput = Symbol{Name: "$", Kind: Terminal}

// GoString gives a debug-friendly representation distinguishing terminals
// from non-terminals, as printed by the %#v verb.
func (s Symbol) GoString() string {
	return fmt.Sprintf("%s(%s)", s.Name, s.Kind)
}
