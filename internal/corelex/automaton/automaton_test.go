package automaton

import (
	"testing"

	"github.com/dkerrow/corelex/internal/corelex/rx"
	"github.com/stretchr/testify/assert"
)

// accepts runs s through dfa from the start state and reports whether the
// run both consumes every rune and ends on a final state.
func accepts(dfa *DFA, s string) bool {
	state := dfa.Start
	for _, c := range s {
		state = dfa.Next(state, c)
		if state == InvalidState {
			return false
		}
	}
	return dfa.IsFinal(state)
}

// buildDFA runs the full preprocess -> postfix -> Thompson construction ->
// subset construction pipeline (without minimization) for a single regex,
// against the given alphabet.
func buildDFA(t *testing.T, regex string, alphabet []rune) *DFA {
	t.Helper()
	postfix, err := rx.ToPostfix(rx.Preprocess(regex))
	if err != nil {
		t.Fatalf("preprocess/postfix: %v", err)
	}
	nfa, err := NewBuildContext().BuildFromPostfix(postfix)
	if err != nil {
		t.Fatalf("thompson construction: %v", err)
	}
	return Subset(nfa, alphabet)
}

var abAlphabet = []rune("ab")

func Test_ThompsonAndSubset_SingleLiteral(t *testing.T) {
	assert := assert.New(t)
	dfa := buildDFA(t, "a", abAlphabet)

	assert.True(accepts(dfa, "a"))
	assert.False(accepts(dfa, "b"))
	assert.False(accepts(dfa, ""))
	assert.False(accepts(dfa, "aa"))
}

func Test_ThompsonAndSubset_Union(t *testing.T) {
	assert := assert.New(t)
	dfa := buildDFA(t, "a|b", abAlphabet)

	assert.True(accepts(dfa, "a"))
	assert.True(accepts(dfa, "b"))
	assert.False(accepts(dfa, "ab"))
}

func Test_ThompsonAndSubset_Star(t *testing.T) {
	assert := assert.New(t)
	dfa := buildDFA(t, "a*", abAlphabet)

	assert.True(accepts(dfa, ""))
	assert.True(accepts(dfa, "a"))
	assert.True(accepts(dfa, "aaaa"))
	assert.False(accepts(dfa, "aaab"))
}

func Test_ThompsonAndSubset_Plus(t *testing.T) {
	assert := assert.New(t)
	dfa := buildDFA(t, "a+", abAlphabet)

	assert.False(accepts(dfa, ""))
	assert.True(accepts(dfa, "a"))
	assert.True(accepts(dfa, "aaaa"))
}

func Test_ThompsonAndSubset_Optional(t *testing.T) {
	assert := assert.New(t)
	dfa := buildDFA(t, "ab?", abAlphabet)

	assert.True(accepts(dfa, "a"))
	assert.True(accepts(dfa, "ab"))
	assert.False(accepts(dfa, "abb"))
}

func Test_ThompsonAndSubset_ComplexExpression(t *testing.T) {
	assert := assert.New(t)
	// (a|b)*a(a|b) recognizes strings over {a,b} whose second-from-last
	// character is 'a' — a classic regex-to-DFA textbook example.
	dfa := buildDFA(t, "(a|b)*a(a|b)", abAlphabet)

	assert.True(accepts(dfa, "aa"))
	assert.True(accepts(dfa, "ab"))
	assert.True(accepts(dfa, "baab"))
	assert.False(accepts(dfa, "bb"))
	assert.False(accepts(dfa, ""))
}

func Test_BuildFromPostfix_MalformedStackUnderflow(t *testing.T) {
	assert := assert.New(t)

	_, err := NewBuildContext().BuildFromPostfix("|")
	assert.Error(err)

	_, err = NewBuildContext().BuildFromPostfix("ab")
	assert.Error(err, "two operands with no operator should leave 2 fragments on the stack")
}

func Test_Minimize_PreservesLanguage(t *testing.T) {
	assert := assert.New(t)

	dfa := buildDFA(t, "(a|b)*a(a|b)", abAlphabet)
	min := Minimize(dfa, abAlphabet)

	strings := []string{"", "a", "b", "aa", "ab", "ba", "bb", "baab", "aba", "bbb"}
	for _, s := range strings {
		assert.Equalf(accepts(dfa, s), accepts(min, s), "minimized DFA disagreed with source DFA on %q", s)
	}
}

func Test_Minimize_ReducesStateCount(t *testing.T) {
	assert := assert.New(t)

	// aa|a|b has redundant DFA states prior to minimization; collapsing
	// equivalent states is what keeps downstream longest-match behavior
	// correct without the tokenizer having to reason about duplicates.
	dfa := buildDFA(t, "a·a|a|b", []rune("ab"))
	min := Minimize(dfa, []rune("ab"))

	assert.Less(min.NumStates(), dfa.NumStates())
}

func Test_Minimize_Idempotent(t *testing.T) {
	assert := assert.New(t)

	dfa := buildDFA(t, "(a|b)*a(a|b)", abAlphabet)
	once := Minimize(dfa, abAlphabet)
	twice := Minimize(once, abAlphabet)

	assert.Equal(once.NumStates(), twice.NumStates())
}

func Test_EpsilonClosure_HandlesCycles(t *testing.T) {
	assert := assert.New(t)

	// a* builds a cyclic NFA (accept loops back to start via epsilon); the
	// closure computation must terminate and be correct despite the cycle.
	postfix, err := rx.ToPostfix(rx.Preprocess("a*"))
	if !assert.NoError(err) {
		return
	}
	nfa, err := NewBuildContext().BuildFromPostfix(postfix)
	if !assert.NoError(err) {
		return
	}

	closure := nfa.EpsilonClosure(nfa.Start)
	assert.True(closure[nfa.Start])
	assert.GreaterOrEqual(len(closure), 2)
}
