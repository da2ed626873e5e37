package fsm

// MatchString simulates the automaton over input one byte at a time and
// reports whether the whole string is accepted. It is a total function: any
// input yields true or false, never an error.
//
// The active set starts as the epsilon closure of {Start}. For each input
// byte, every active consuming node that matches the byte contributes its
// successor edges to a raw next set; quantifier wrappers proxy the match to
// their inner node and contribute the inner node's edges, which already
// encode both "loop for another repetition" and "exit the group". An empty
// raw next set rejects immediately. After the last byte the string is
// accepted iff Termination is in the (closed) active set.
//
// O(len(input) * NumNodes()) time, O(NumNodes()) space per step. No
// backtracking. All scratch state is local, so concurrent calls on one
// Automaton are safe.
func (a *Automaton) MatchString(input string) bool {
	active := a.closure(nodeSet{a.start: {}})

	for i := 0; i < len(input); i++ {
		c := input[i]
		next := make(nodeSet, len(active))

		for id := range active {
			n := &a.nodes[id]
			switch {
			case n.isQuantifier():
				if a.matchesChar(n.Inner, c) {
					for _, e := range a.nodes[n.Inner].Edges {
						next[e] = struct{}{}
					}
				}
			case n.Kind == KindLiteral || n.Kind == KindWildcard:
				if a.matchesChar(id, c) {
					for _, e := range n.Edges {
						next[e] = struct{}{}
					}
				}
			}
		}

		if len(next) == 0 {
			return false
		}
		active = a.closure(next)
	}

	_, ok := active[a.term]
	return ok
}
