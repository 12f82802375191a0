package lex

import "github.com/dkerrow/corelex/internal/corelex/automaton"

// Tokenizer is a registered set of TokenRules, ready to scan input
// left-to-right with longest-match/priority tiebreaking. It is logically
// immutable once built: Tokenize keeps all cursor and match state local to
// the call, so a single Tokenizer is safe to share across concurrent
// Tokenize calls.
type Tokenizer struct {
	rules []TokenRule
}

// NewTokenizer builds a Tokenizer directly from already-compiled rules. Most
// callers should use TokenizerBuilder instead, which handles the
// regex-to-DFA pipeline per rule; this constructor exists for callers that
// already have DFAs (e.g. tests exercising the scan loop in isolation).
func NewTokenizer(rules []TokenRule) *Tokenizer {
	cp := make([]TokenRule, len(rules))
	copy(cp, rules)
	return &Tokenizer{rules: cp}
}

// Tokenize scans input left-to-right, producing one Token per maximal
// match. Empty input yields an empty, non-nil slice.
func (t *Tokenizer) Tokenize(input string) ([]Token, error) {
	runes := []rune(input)
	var tokens []Token

	pos := 0
	for pos < len(runes) {
		length, tokenType, matched := t.longestMatch(runes, pos)
		if !matched || length == 0 {
			return nil, &LexError{Pos: pos, Char: runes[pos]}
		}

		tokens = append(tokens, Token{
			Type:     tokenType,
			Value:    string(runes[pos : pos+length]),
			Position: pos,
		})
		pos += length
	}

	if tokens == nil {
		tokens = []Token{}
	}
	return tokens, nil
}

// longestMatch simulates every registered rule's DFA starting at pos,
// advancing while transitions exist and recording the greatest offset at
// which a final state was entered. It then selects the longest match,
// breaking ties by greatest priority.
func (t *Tokenizer) longestMatch(input []rune, pos int) (length int, tokenType string, ok bool) {
	bestLen := -1
	bestPriority := 0

	for _, rule := range t.rules {
		matchLen := simulate(rule.DFA, input, pos)
		if matchLen <= 0 {
			continue
		}

		if matchLen > bestLen || (matchLen == bestLen && rule.Priority > bestPriority) {
			bestLen = matchLen
			bestPriority = rule.Priority
			tokenType = rule.Type
			ok = true
		}
	}

	if !ok {
		return 0, "", false
	}
	return bestLen, tokenType, true
}

// simulate runs one DFA from the given start position, returning the
// largest offset (relative to pos) at which a final state was entered, or 0
// if the DFA never accepts along this run.
func simulate(dfa *automaton.DFA, input []rune, pos int) int {
	state := dfa.Start
	best := 0

	i := pos
	matchedAny := false
	for i < len(input) {
		next := dfa.Next(state, input[i])
		if next == automaton.InvalidState {
			break
		}
		state = next
		i++
		if dfa.IsFinal(state) {
			best = i - pos
			matchedAny = true
		}
	}

	if !matchedAny {
		return 0
	}
	return best
}
