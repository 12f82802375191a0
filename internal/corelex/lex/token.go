// Package lex implements the multi-rule longest-match tokenizer and its
// builder. Grounded on ictiobus/lex's builder-pattern shape
// (lexerTemplate/AddPattern becomes TokenizerBuilder/AddRule) and on
// lex/lazy.go's discipline of keeping all mutable scan state local to one
// call, which is what makes a built Tokenizer safe to share across
// concurrent Tokenize calls.
package lex

import (
	"fmt"

	"github.com/dkerrow/corelex/internal/corelex/automaton"
)

// Token is a single scanned lexeme: its type label, the substring it
// matched, and its 0-based start offset in the input.
type Token struct {
	Type     string
	Value    string
	Position int
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d", t.Type, t.Value, t.Position)
}

// TokenRule is a compiled token rule: a minimized DFA, the token type it
// produces, and its tiebreak priority. Higher priority wins ties.
type TokenRule struct {
	DFA      *automaton.DFA
	Type     string
	Priority int
}

// LexError is returned by Tokenize when no registered rule matches at the
// current position. It is fatal for the tokenize call it originated from.
type LexError struct {
	Pos  int
	Char rune
}

func (e *LexError) Error() string {
	return fmt.Sprintf("no valid token at position %d for character %q", e.Pos, e.Char)
}

// BuildError wraps the failure of compiling one token rule's regex into a
// DFA: malformed regex, Thompson stack underflow, or any other stage
// failure in the regex-to-DFA pipeline.
type BuildError struct {
	TokenType string
	Regex     string
	Cause     error
}

func (e *BuildError) Error() string {
	return fmt.Sprintf("error processing token rule %s with regex %q: %v", e.TokenType, e.Regex, e.Cause)
}

func (e *BuildError) Unwrap() error {
	return e.Cause
}
