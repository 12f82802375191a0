package automaton

import (
	"sort"
	"strconv"
	"strings"
)

// dfaState is a subset of NFA states, a transition table keyed by input
// rune, and a final flag.
type dfaState struct {
	id          StateID
	subset      []StateID // canonical: sorted, deduplicated
	transitions map[rune]StateID
	final       bool
}

// DFA is a start state and the complete list of dfaStates. Every state
// referenced by a transition is present in the arena; start is present in
// the arena.
type DFA struct {
	states []dfaState
	Start  StateID
}

// NumStates returns the number of states in the DFA.
func (d *DFA) NumStates() int {
	return len(d.states)
}

// IsFinal reports whether id is an accepting state.
func (d *DFA) IsFinal(id StateID) bool {
	return d.states[id].final
}

// Next returns the state reached from id on input c, or InvalidState if no
// such transition exists. Dead states are never materialized; a missing
// transition simply means "no move".
func (d *DFA) Next(id StateID, c rune) StateID {
	if to, ok := d.states[id].transitions[c]; ok {
		return to
	}
	return InvalidState
}

func subsetKey(ids map[StateID]bool) string {
	sorted := sortedIDs(ids)
	var sb strings.Builder
	for i, id := range sorted {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(id)))
	}
	return sb.String()
}

func sortedIDs(ids map[StateID]bool) []StateID {
	out := make([]StateID, 0, len(ids))
	for id := range ids {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Subset runs subset construction: NFA + alphabet -> DFA. The first DFA
// state is ε-closure({nfa.Start}); further states are discovered by
// worklist, with DFA-state identity decided on NFA-subset equality rather
// than creation order, via a canonical sorted-subset key for lookup.
func Subset(nfa *NFA, alphabet []rune) *DFA {
	dfa := &DFA{}

	byKey := map[string]StateID{}

	makeState := func(subset map[StateID]bool) StateID {
		key := subsetKey(subset)
		if id, ok := byKey[key]; ok {
			return id
		}

		final := false
		for s := range subset {
			if nfa.IsFinal(s) {
				final = true
				break
			}
		}

		id := StateID(len(dfa.states))
		dfa.states = append(dfa.states, dfaState{
			id:          id,
			subset:      sortedIDs(subset),
			transitions: map[rune]StateID{},
			final:       final,
		})
		byKey[key] = id
		return id
	}

	start := nfa.EpsilonClosure(nfa.Start)
	dfa.Start = makeState(start)

	var worklist []StateID
	worklist = append(worklist, dfa.Start)
	visited := map[StateID]bool{dfa.Start: true}

	for len(worklist) > 0 {
		d := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		subset := map[StateID]bool{}
		for _, s := range dfa.states[d].subset {
			subset[s] = true
		}

		for _, c := range alphabet {
			moved := nfa.Move(subset, c)
			if len(moved) == 0 {
				continue
			}
			closure := nfa.EpsilonClosureOfSet(moved)
			if len(closure) == 0 {
				continue
			}

			to := makeState(closure)
			dfa.states[d].transitions[c] = to

			if !visited[to] {
				visited[to] = true
				worklist = append(worklist, to)
			}
		}
	}

	return dfa
}
