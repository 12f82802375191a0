package lex

import (
	"github.com/dkerrow/corelex/internal/corelex/automaton"
	"github.com/dkerrow/corelex/internal/corelex/rx"
)

// ruleSpec is one yet-to-be-compiled rule: a token type and its regex, in
// the order AddRule was called.
type ruleSpec struct {
	tokenType string
	regex     string
}

// TokenizerBuilder orchestrates the per-rule regex-to-DFA pipeline and
// registers the resulting DFAs into a Tokenizer. Grounded on
// ictiobus/lex.lexerTemplate's AddPattern/AddClass builder shape.
type TokenizerBuilder struct {
	rules []ruleSpec
}

// NewTokenizerBuilder returns an empty builder.
func NewTokenizerBuilder() *TokenizerBuilder {
	return &TokenizerBuilder{}
}

// AddRule registers a token type and the regex that recognizes it. Rules are
// compiled in insertion order, and insertion order determines priority on
// ties (earlier-declared rules win).
func (b *TokenizerBuilder) AddRule(tokenType, regex string) *TokenizerBuilder {
	b.rules = append(b.rules, ruleSpec{tokenType: tokenType, regex: regex})
	return b
}

// startingPriority is the descending counter's starting value: the
// first-declared rule gets this value, and each subsequent rule gets one
// less, so earlier rules always have a strictly greater priority value and
// therefore dominate longest-match ties.
const startingPriority = 1000

// Build runs preprocess -> postfix -> NFA -> DFA -> minimize for every
// registered rule and returns the resulting Tokenizer. Any stage failure
// surfaces as a *BuildError naming the offending token type and regex.
func (b *TokenizerBuilder) Build(alphabet []rune) (*Tokenizer, error) {
	rules := make([]TokenRule, 0, len(b.rules))

	priority := startingPriority
	for _, spec := range b.rules {
		dfa, err := compileRule(spec.regex, alphabet)
		if err != nil {
			return nil, &BuildError{TokenType: spec.tokenType, Regex: spec.regex, Cause: err}
		}

		rules = append(rules, TokenRule{
			DFA:      dfa,
			Type:     spec.tokenType,
			Priority: priority,
		})
		priority--
	}

	return NewTokenizer(rules), nil
}

// compileRule runs the full regex-to-minimized-DFA pipeline for a single
// rule's regex.
func compileRule(regex string, alphabet []rune) (*automaton.DFA, error) {
	preprocessed := rx.Preprocess(regex)

	postfix, err := rx.ToPostfix(preprocessed)
	if err != nil {
		return nil, err
	}

	ctx := automaton.NewBuildContext()
	nfa, err := ctx.BuildFromPostfix(postfix)
	if err != nil {
		return nil, err
	}

	dfa := automaton.Subset(nfa, alphabet)
	return automaton.Minimize(dfa, alphabet), nil
}
