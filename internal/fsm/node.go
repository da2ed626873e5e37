// Package fsm implements the automaton core: a restricted regular
// expression (ASCII literals, '.', postfix '*' and '+') is compiled into an
// explicit NFA graph, which is then simulated against input strings for
// whole-string accept/reject.
package fsm

// NodeID is a dense arena index into an Automaton's node slice.
type NodeID int32

// NodeKind identifies the variant of a node. The set is closed; every
// consumer switches exhaustively over these values.
type NodeKind uint8

const (
	// KindStart is the synthetic entry point. It never consumes a character.
	KindStart NodeKind = iota

	// KindTermination is the unique accepting sentinel. No outgoing edges.
	KindTermination

	// KindLiteral matches exactly one character equal to Sym.
	KindLiteral

	// KindWildcard matches any single character.
	KindWildcard

	// KindZeroOrMore wraps a consuming node (Inner) in a '*' loop.
	KindZeroOrMore

	// KindOneOrMore wraps a consuming node (Inner) in a '+' loop.
	KindOneOrMore
)

// String returns the kind name, used in logs and generated-code comments.
func (k NodeKind) String() string {
	switch k {
	case KindStart:
		return "Start"
	case KindTermination:
		return "Termination"
	case KindLiteral:
		return "Literal"
	case KindWildcard:
		return "Wildcard"
	case KindZeroOrMore:
		return "ZeroOrMore"
	case KindOneOrMore:
		return "OneOrMore"
	}
	return "Unknown"
}

// noInner marks nodes that do not wrap an inner consuming node.
const noInner NodeID = -1

// Node is one automaton state. Nodes reference each other only through
// arena indices; the Automaton owns every node and the graph may be cyclic
// (quantifier loops are).
type Node struct {
	Kind  NodeKind
	Sym   byte     // literal symbol, meaningful only for KindLiteral
	Inner NodeID   // wrapped consuming node for quantifier kinds, else noInner
	Edges []NodeID // ordered outgoing edges, append-only during build
}

// isQuantifier reports whether the node is a '*' or '+' wrapper.
func (n *Node) isQuantifier() bool {
	return n.Kind == KindZeroOrMore || n.Kind == KindOneOrMore
}

// matchesChar reports whether a consuming node accepts c. Quantifier
// wrappers proxy the check to their inner node; Start and Termination never
// match.
func (a *Automaton) matchesChar(id NodeID, c byte) bool {
	n := &a.nodes[id]
	switch n.Kind {
	case KindLiteral:
		return n.Sym == c
	case KindWildcard:
		return true
	case KindZeroOrMore, KindOneOrMore:
		return a.matchesChar(n.Inner, c)
	}
	return false
}

// Automaton is a compiled pattern: a dense node arena plus the start and
// termination indices. It is immutable after Build returns and safe for
// concurrent MatchString calls; all per-match scratch state lives in the
// engine's locals, never on the nodes.
type Automaton struct {
	nodes   []Node
	start   NodeID
	term    NodeID
	pattern string
}

// Pattern returns the source pattern the automaton was built from.
func (a *Automaton) Pattern() string {
	return a.pattern
}

// NumNodes returns the node count, including Start and Termination.
func (a *Automaton) NumNodes() int {
	return len(a.nodes)
}

// Start returns the index of the Start node.
func (a *Automaton) Start() NodeID {
	return a.start
}

// Termination returns the index of the Termination node.
func (a *Automaton) Termination() NodeID {
	return a.term
}

// NodeAt returns a copy of the node at id. The copy shares the edge slice;
// callers must treat it as read-only.
func (a *Automaton) NodeAt(id NodeID) Node {
	return a.nodes[id]
}

// node appends a fresh node to the arena and returns its index. Every node
// gets its own edge slice; edge storage is never shared between nodes.
func (a *Automaton) node(kind NodeKind, sym byte, inner NodeID) NodeID {
	id := NodeID(len(a.nodes))
	a.nodes = append(a.nodes, Node{Kind: kind, Sym: sym, Inner: inner})
	return id
}

// edge appends an outgoing edge from -> to.
func (a *Automaton) edge(from, to NodeID) {
	a.nodes[from].Edges = append(a.nodes[from].Edges, to)
}
