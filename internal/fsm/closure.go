package fsm

// nodeSet is the active-set representation used by the interpreter. The
// code generator uses uint64 bitsets instead; see closureBits.
type nodeSet map[NodeID]struct{}

// closure expands seed across all zero-width transitions and returns the
// full set of nodes reachable without consuming a character, seeds
// included. Start nodes pass through all of their edges; quantifier
// wrappers pass through all edges except the loop edge back to their own
// inner node (the inner node must not become active without a character
// being consumed). Literal, Wildcard and Termination nodes are not epsilon
// sources.
//
// Breadth-first worklist with set semantics; the graph is finite and
// visited nodes are never re-added, so the worklist always empties.
func (a *Automaton) closure(seed nodeSet) nodeSet {
	result := make(nodeSet, len(seed))
	worklist := make([]NodeID, 0, len(seed))
	for id := range seed {
		result[id] = struct{}{}
		worklist = append(worklist, id)
	}

	for len(worklist) > 0 {
		id := worklist[0]
		worklist = worklist[1:]

		n := &a.nodes[id]
		switch {
		case n.Kind == KindStart:
			for _, next := range n.Edges {
				if _, seen := result[next]; !seen {
					result[next] = struct{}{}
					worklist = append(worklist, next)
				}
			}
		case n.isQuantifier():
			for _, next := range n.Edges {
				if next == n.Inner {
					continue
				}
				if _, seen := result[next]; !seen {
					result[next] = struct{}{}
					worklist = append(worklist, next)
				}
			}
		}
	}

	return result
}

// MaxBitsetNodes is the largest graph the bitset representation can hold:
// one node per bit of a single uint64 word.
const MaxBitsetNodes = 64

// ClosureBits is the closure computation over a uint64 bitset, used by the
// code generator to precompute transition constants. Defined only for
// graphs with at most MaxBitsetNodes nodes.
func (a *Automaton) ClosureBits(seed uint64) uint64 {
	result := seed
	worklist := make([]NodeID, 0, len(a.nodes))
	for id := NodeID(0); int(id) < len(a.nodes); id++ {
		if seed&(1<<uint(id)) != 0 {
			worklist = append(worklist, id)
		}
	}

	for len(worklist) > 0 {
		id := worklist[0]
		worklist = worklist[1:]

		n := &a.nodes[id]
		if n.Kind != KindStart && !n.isQuantifier() {
			continue
		}
		for _, next := range n.Edges {
			if n.isQuantifier() && next == n.Inner {
				continue
			}
			bit := uint64(1) << uint(next)
			if result&bit == 0 {
				result |= bit
				worklist = append(worklist, next)
			}
		}
	}

	return result
}
