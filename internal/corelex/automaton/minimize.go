package automaton

// pairKey canonicalizes an unordered pair of state ids with the lower id
// first.
type pairKey struct {
	lo, hi StateID
}

func makePair(a, b StateID) pairKey {
	if a > b {
		a, b = b, a
	}
	return pairKey{lo: a, hi: b}
}

// unionFind is a union-find (disjoint-set) structure over DFA state ids,
// with path compression and union by rank to keep trees shallow. Root
// choice under union by rank is not id-ordered; buildFromPartition picks the
// smallest id within each resulting class as its deterministic
// representative rather than relying on whichever id the union-find root
// happens to be.
type unionFind struct {
	parent []StateID
	rank   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{parent: make([]StateID, n), rank: make([]int, n)}
	for i := range uf.parent {
		uf.parent[i] = StateID(i)
	}
	return uf
}

func (uf *unionFind) find(x StateID) StateID {
	if uf.parent[x] != x {
		uf.parent[x] = uf.find(uf.parent[x])
	}
	return uf.parent[x]
}

func (uf *unionFind) union(a, b StateID) {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return
	}
	if uf.rank[ra] < uf.rank[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	if uf.rank[ra] == uf.rank[rb] {
		uf.rank[ra]++
	}
}

// Minimize runs table-filling DFA minimization: it marks distinguishable
// state pairs to a fixed point, partitions the remaining (unmarked) pairs
// via union-find, and builds one new dfaState per equivalence class.
func Minimize(dfa *DFA, alphabet []rune) *DFA {
	n := dfa.NumStates()
	if n == 0 {
		return dfa
	}

	marked := map[pairKey]bool{}

	// Step 2: initial marking — final vs non-final.
	for p := 0; p < n; p++ {
		for q := p + 1; q < n; q++ {
			if dfa.IsFinal(StateID(p)) != dfa.IsFinal(StateID(q)) {
				marked[makePair(StateID(p), StateID(q))] = true
			}
		}
	}

	// Step 3: iterate to fixpoint.
	changed := true
	for changed {
		changed = false
		for p := 0; p < n; p++ {
			for q := p + 1; q < n; q++ {
				key := makePair(StateID(p), StateID(q))
				if marked[key] {
					continue
				}

				if pairDistinguishable(dfa, StateID(p), StateID(q), alphabet, marked) {
					marked[key] = true
					changed = true
				}
			}
		}
	}

	// Step 4: partition via union-find over unmarked pairs.
	uf := newUnionFind(n)
	for p := 0; p < n; p++ {
		for q := p + 1; q < n; q++ {
			if !marked[makePair(StateID(p), StateID(q))] {
				uf.union(StateID(p), StateID(q))
			}
		}
	}

	return buildFromPartition(dfa, alphabet, uf, n)
}

func pairDistinguishable(dfa *DFA, p, q StateID, alphabet []rune, marked map[pairKey]bool) bool {
	for _, c := range alphabet {
		pNext := dfa.Next(p, c)
		qNext := dfa.Next(q, c)

		pHas := pNext != InvalidState
		qHas := qNext != InvalidState

		if pHas != qHas {
			return true
		}
		if pHas && qHas && marked[makePair(pNext, qNext)] {
			return true
		}
	}
	return false
}

// buildFromPartition constructs the minimized DFA: one state per
// equivalence class, with the smallest original id in each class chosen as
// its deterministic representative for routing transitions between classes.
func buildFromPartition(dfa *DFA, alphabet []rune, uf *unionFind, n int) *DFA {
	// root[original id] -> union-find root (not necessarily the smallest id
	// in the class, since union is by rank).
	root := make([]StateID, n)
	for i := 0; i < n; i++ {
		root[i] = uf.find(StateID(i))
	}

	// minOfRoot remaps each union-find root to the smallest original id in
	// its class, so classOf below gives a stable, deterministic
	// representative regardless of which id the union-find happened to
	// root the tree at.
	minOfRoot := map[StateID]StateID{}
	for i := 0; i < n; i++ {
		r := root[i]
		if cur, ok := minOfRoot[r]; !ok || StateID(i) < cur {
			minOfRoot[r] = StateID(i)
		}
	}

	// classOf[original id] -> representative original id (smallest in class).
	classOf := make([]StateID, n)
	for i := 0; i < n; i++ {
		classOf[i] = minOfRoot[root[i]]
	}

	// representatives, sorted, become the new DFA's states in a
	// deterministic order.
	repSet := map[StateID]bool{}
	for _, c := range classOf {
		repSet[c] = true
	}
	reps := sortedIDs(repSet)

	newIDOf := map[StateID]StateID{}
	for i, rep := range reps {
		newIDOf[rep] = StateID(i)
	}

	out := &DFA{}
	for _, rep := range reps {
		// the subset of a merged class is the union of its members'
		// subsets; final flag is consistent across a class since the
		// initial marking pass above marks every final/non-final pair as
		// distinguishable, which keeps them out of the same class.
		subset := map[StateID]bool{}
		for i := 0; i < n; i++ {
			if classOf[i] == rep {
				for _, st := range dfa.states[i].subset {
					subset[st] = true
				}
			}
		}

		out.states = append(out.states, dfaState{
			id:          StateID(len(out.states)),
			subset:      sortedIDs(subset),
			transitions: map[rune]StateID{},
			final:       dfa.IsFinal(rep),
		})
	}

	for _, rep := range reps {
		newFrom := newIDOf[rep]
		for _, c := range alphabet {
			to := dfa.Next(rep, c)
			if to == InvalidState {
				continue
			}
			out.states[newFrom].transitions[c] = newIDOf[classOf[to]]
		}
	}

	out.Start = newIDOf[classOf[dfa.Start]]
	return out
}
