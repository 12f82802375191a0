// Package corelex is the public facade over the lexer-and-grammar toolkit:
// a regex-rule-driven tokenizer built through Thompson construction, subset
// construction, and DFA minimization, plus a FIRST/FOLLOW static analyzer
// for context-free grammars.
//
// Grounded on ictiobus.go's root-level constructor functions (NewLexer,
// NewParser, NewSDD), which wrap the internal packages' concrete types
// behind a small set of top-level entry points rather than exposing the
// internal packages directly.
package corelex

import (
	"github.com/dkerrow/corelex/internal/corelex/grammar"
	"github.com/dkerrow/corelex/internal/corelex/lex"
	"github.com/dkerrow/corelex/internal/corelex/symbol"
)

// Re-exported data-model and error types, so callers never need to import
// the internal packages directly.
type (
	Symbol        = symbol.Symbol
	Kind          = symbol.Kind
	Production    = grammar.Production
	GrammarSource = grammar.Source
	Grammar       = grammar.Grammar
	SymbolSet     = grammar.SymbolSet
	Token         = lex.Token
	TokenRule     = lex.TokenRule
	LexError      = lex.LexError
	BuildError    = lex.BuildError
	Tokenizer     = lex.Tokenizer
)

const (
	Terminal    = symbol.Terminal
	NonTerminal = symbol.NonTerminal
)

// Epsilon and EndOfInput are the two reserved symbols every grammar
// implicitly carries.
var (
	Epsilon    = symbol.Epsilon
	EndOfInput = symbol.EndOfInput
)

// NewGrammar builds a Grammar from an ordered production list and start
// symbol, validating that every right-hand-side symbol is a declared
// terminal, a declared non-terminal, or ε.
func NewGrammar(start Symbol, productions []Production) (Grammar, error) {
	return grammar.New(start, productions)
}

// NewStaticAnalyzer returns a FIRST/FOLLOW analyzer over g. g is consumed
// only through the GrammarSource interface.
func NewStaticAnalyzer(g GrammarSource) *grammar.StaticAnalyzer {
	return grammar.NewAnalyzer(g)
}

// NewTokenizerBuilder returns a builder for assembling a multi-rule
// Tokenizer out of (tokenType, regex) pairs.
func NewTokenizerBuilder() *lex.TokenizerBuilder {
	return lex.NewTokenizerBuilder()
}
