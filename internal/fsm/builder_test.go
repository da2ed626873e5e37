package fsm

import (
	"errors"
	"testing"
)

func TestBuildNodeCounts(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		nodes   int
	}{
		{"empty", "", 2},                // Start + Termination
		{"single literal", "a", 3},      // + Literal
		{"literals", "abc", 5},          // + 3 Literals
		{"wildcard", ".", 3},            // + Wildcard
		{"star", "a*", 4},               // + Literal + wrapper
		{"plus", "a+", 4},               // + Literal + wrapper
		{"mixed", "a*4.+hi", 9},         // 2 wrappers + 5 consuming nodes
		{"quantified wildcard", ".*", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Build(tt.pattern)
			if err != nil {
				t.Fatalf("Build(%q) failed: %v", tt.pattern, err)
			}
			if got := a.NumNodes(); got != tt.nodes {
				t.Errorf("Build(%q) produced %d nodes, want %d", tt.pattern, got, tt.nodes)
			}
			if a.Pattern() != tt.pattern {
				t.Errorf("Pattern() = %q, want %q", a.Pattern(), tt.pattern)
			}
		})
	}
}

func TestBuildGraphShape(t *testing.T) {
	a, err := Build("a*b")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	start := a.NodeAt(a.Start())
	if start.Kind != KindStart {
		t.Fatalf("start node kind = %v, want Start", start.Kind)
	}
	if len(start.Edges) != 1 {
		t.Fatalf("start has %d edges, want 1", len(start.Edges))
	}

	wrapper := a.NodeAt(start.Edges[0])
	if wrapper.Kind != KindZeroOrMore {
		t.Fatalf("start successor kind = %v, want ZeroOrMore", wrapper.Kind)
	}

	inner := a.NodeAt(wrapper.Inner)
	if inner.Kind != KindLiteral || inner.Sym != 'a' {
		t.Errorf("wrapped node = %v %q, want Literal 'a'", inner.Kind, inner.Sym)
	}
	// The loop: inner's only edge points back to the wrapper.
	if len(inner.Edges) != 1 || a.NodeAt(inner.Edges[0]).Kind != KindZeroOrMore {
		t.Errorf("inner node should loop back to its wrapper, edges = %v", inner.Edges)
	}

	term := a.NodeAt(a.Termination())
	if term.Kind != KindTermination {
		t.Fatalf("termination node kind = %v", term.Kind)
	}
	if len(term.Edges) != 0 {
		t.Errorf("termination has %d outgoing edges, want 0", len(term.Edges))
	}

	// Every non-Termination node has at least one outgoing edge.
	for id := 0; id < a.NumNodes(); id++ {
		n := a.NodeAt(NodeID(id))
		if n.Kind != KindTermination && len(n.Edges) == 0 {
			t.Errorf("node %d (%v) has no outgoing edges", id, n.Kind)
		}
	}
}

func TestBuildFreshEdgeSlices(t *testing.T) {
	// Two literal nodes must never share edge storage.
	a, err := Build("ab")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	first := a.NodeAt(1)
	second := a.NodeAt(2)
	if first.Kind != KindLiteral || second.Kind != KindLiteral {
		t.Fatalf("unexpected node kinds %v %v", first.Kind, second.Kind)
	}
	if len(first.Edges) == 0 || len(second.Edges) == 0 {
		t.Fatal("literal nodes missing edges")
	}
	if first.Edges[0] == second.Edges[0] {
		t.Errorf("distinct literals point at the same successor %d", first.Edges[0])
	}
}

func TestBuildInvalidToken(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"open bracket", "a[b"},
		{"close bracket", "]"},
		{"paren", "(ab)"},
		{"alternation", "a|b"},
		{"question mark", "ab?"},
		{"backslash", `a\d`},
		{"caret", "^ab"},
		{"dollar", "ab$"},
		{"brace", "a{2}"},
		{"non-ascii", "caf\xc3\xa9"},
		{"control byte", "a\x01b"},
		{"newline", "a\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Build(tt.pattern)
			if err == nil {
				t.Fatalf("Build(%q) succeeded, want error", tt.pattern)
			}
			if !errors.Is(err, ErrInvalidToken) {
				t.Errorf("Build(%q) error = %v, want ErrInvalidToken", tt.pattern, err)
			}
			if a != nil {
				t.Errorf("Build(%q) returned a partial automaton", tt.pattern)
			}
		})
	}
}

func TestBuildMalformedQuantifier(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"leading star", "*abc"},
		{"leading plus", "+abc"},
		{"bare star", "*"},
		{"bare plus", "+"},
		{"double star", "a**"},
		{"star then plus", "a*+"},
		{"plus after group", "ab+*c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Build(tt.pattern)
			if err == nil {
				t.Fatalf("Build(%q) succeeded, want error", tt.pattern)
			}
			if !errors.Is(err, ErrMalformedQuantifier) {
				t.Errorf("Build(%q) error = %v, want ErrMalformedQuantifier", tt.pattern, err)
			}
			if a != nil {
				t.Errorf("Build(%q) returned a partial automaton", tt.pattern)
			}
		})
	}
}

func TestBuildAcceptsSpaceLiteral(t *testing.T) {
	a, err := Build("a b")
	if err != nil {
		t.Fatalf("Build(%q) failed: %v", "a b", err)
	}
	if !a.MatchString("a b") {
		t.Error("space literal should match a space")
	}
	if a.MatchString("axb") {
		t.Error("space literal should not match 'x'")
	}
}
