package automaton

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/dkerrow/corelex/internal/trace"
)

// String renders the NFA as a bordered table of (state, final?, transitions)
// for debugging, in the same spirit as ictiobus/automaton.go's NFA[E].String.
func (n *NFA) String() string {
	rows := make([][]string, 0, len(n.states))
	for _, st := range n.states {
		var moves []string
		for _, t := range st.transitions {
			moves = append(moves, t.String())
		}
		rows = append(rows, []string{
			strconv.Itoa(int(st.id)),
			fmt.Sprintf("%v", st.final),
			strings.Join(moves, ", "),
		})
	}
	return fmt.Sprintf("NFA(start=%d, accept=%d)\n%s", n.Start, n.Accept,
		trace.Table([]string{"state", "final", "transitions"}, rows))
}

// String renders the DFA as a bordered table of (state, final?, transitions)
// for debugging, in the same spirit as ictiobus/automaton.go's DFA[E].String.
func (d *DFA) String() string {
	rows := make([][]string, 0, len(d.states))
	for _, st := range d.states {
		inputs := make([]rune, 0, len(st.transitions))
		for c := range st.transitions {
			inputs = append(inputs, c)
		}
		sort.Slice(inputs, func(i, j int) bool { return inputs[i] < inputs[j] })

		var moves []string
		for _, c := range inputs {
			moves = append(moves, fmt.Sprintf("=(%c)=> %d", c, st.transitions[c]))
		}
		rows = append(rows, []string{
			strconv.Itoa(int(st.id)),
			fmt.Sprintf("%v", st.final),
			strings.Join(moves, ", "),
		})
	}
	return fmt.Sprintf("DFA(start=%d)\n%s", d.Start,
		trace.Table([]string{"state", "final", "transitions"}, rows))
}
