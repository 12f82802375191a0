// Package trace renders tables to human-readable text for the NFA and DFA
// String() methods. It has no other callers: FIRST/FOLLOW sets and error
// messages are not rendered through it. Grounded on ictiobus's own debug-dump conventions
// (automaton.go's DFA[E].String()/NFA[E].String(), and
// tunascript/grammar.go's LL1Table.String()), which format with
// github.com/dekarrin/rosed rather than hand-rolled string concatenation.
package trace

import "github.com/dekarrin/rosed"

// tableWidth matches the 80-column layout ictiobus/tunascript uses for its
// own LL1Table rendering.
const tableWidth = 80

// Table renders a header row plus data rows as a bordered table, the same
// call shape tunascript/grammar.go's LL1Table.String() uses.
func Table(header []string, rows [][]string) string {
	data := make([][]string, 0, len(rows)+1)
	data = append(data, header)
	data = append(data, rows...)

	return rosed.Edit("").
		InsertTableOpts(0, data, tableWidth, rosed.Options{
			TableBorders: true,
		}).
		String()
}
