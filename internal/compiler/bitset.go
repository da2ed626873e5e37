package compiler

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/refsm/refsm/internal/codegen"
	"github.com/refsm/refsm/internal/fsm"
)

// transition is one precomputed consuming arm of the generated matcher: if
// the source node is active and the predicate holds for the current byte,
// the successor closure bits join the next state set.
type transition struct {
	source     fsm.NodeID
	label      string
	predicate  *jen.Statement
	successors uint64
}

// bitsetGenerator emits a matcher that runs the active-set simulation on a
// single uint64 word: one bit per automaton node, epsilon closures folded
// into precomputed constants. O(n) over the input with no backtracking.
type bitsetGenerator struct {
	compiler     *Compiler
	automaton    *fsm.Automaton
	startClosure uint64
	acceptMask   uint64
	transitions  []transition
}

func newBitsetGenerator(c *Compiler) *bitsetGenerator {
	a := c.config.Automaton

	gen := &bitsetGenerator{
		compiler:     c,
		automaton:    a,
		startClosure: a.ClosureBits(1 << uint(a.Start())),
		acceptMask:   1 << uint(a.Termination()),
	}

	// Precompute one transition arm per consuming source. Quantifier
	// wrappers proxy the byte check to their inner node and hand over the
	// inner node's successors, which already contain the loop edge.
	for id := fsm.NodeID(0); int(id) < a.NumNodes(); id++ {
		n := a.NodeAt(id)

		var checked fsm.Node
		switch n.Kind {
		case fsm.KindLiteral, fsm.KindWildcard:
			checked = n
		case fsm.KindZeroOrMore, fsm.KindOneOrMore:
			checked = a.NodeAt(n.Inner)
		default:
			continue
		}

		successors := uint64(0)
		for _, e := range checked.Edges {
			successors |= 1 << uint(e)
		}

		gen.transitions = append(gen.transitions, transition{
			source:     id,
			label:      codegen.NodeLabel(int(id), n.Kind.String()),
			predicate:  predicateFor(checked),
			successors: a.ClosureBits(successors),
		})
	}

	return gen
}

// predicateFor returns the byte-match condition for a consuming node.
func predicateFor(n fsm.Node) *jen.Statement {
	if n.Kind == fsm.KindWildcard {
		return jen.True()
	}
	return jen.Id("c").Op("==").LitRune(rune(n.Sym))
}

// generateMatchFunction generates the body of the MatchString method.
func (g *bitsetGenerator) generateMatchFunction() ([]jen.Code, error) {
	logger := g.compiler.logger
	logger.Section("Code Generation")
	logger.Log("Generating bitset match function (nodes: %d, consuming arms: %d)",
		g.automaton.NumNodes(), len(g.transitions))
	logger.Log("Precomputed: %s", g.describeTransitions())

	code := []jen.Code{
		jen.Id(codegen.InputLenName).Op(":=").Len(jen.Id(codegen.InputName)),
	}

	if len(g.transitions) == 0 {
		// No consuming nodes: only the empty input can be accepted.
		code = append(code,
			jen.Return(jen.Id(codegen.InputLenName).Op("==").Lit(0).
				Op("&&").Id(codegen.StartClosureName).Op("&").Id(codegen.AcceptMaskName).Op("!=").Lit(0)),
		)
		return g.withConstants(code), nil
	}

	code = append(code,
		jen.Line(),
		jen.Comment("Active node sets (bitset representation)"),
		jen.Id(codegen.CurrentSetName).Op(":=").Id(codegen.StartClosureName),
		jen.Var().Id(codegen.NextSetName).Uint64(),
		jen.Line(),
		jen.For(
			jen.Id(codegen.OffsetName).Op(":=").Lit(0),
			jen.Id(codegen.OffsetName).Op("<").Id(codegen.InputLenName),
			jen.Id(codegen.OffsetName).Op("++"),
		).Block(g.generateTransitionBlock()...),
		jen.Line(),
		jen.Comment("Accept iff the termination node is active after the last byte"),
		jen.Return(jen.Id(codegen.CurrentSetName).Op("&").Id(codegen.AcceptMaskName).Op("!=").Lit(0)),
	)

	return g.withConstants(code), nil
}

// withConstants prepends the precomputed closure constants to body.
func (g *bitsetGenerator) withConstants(body []jen.Code) []jen.Code {
	return append([]jen.Code{
		jen.Comment("Precomputed constants"),
		jen.Id(codegen.StartClosureName).Op(":=").Uint64().Call(jen.Lit(g.startClosure)),
		jen.Id(codegen.AcceptMaskName).Op(":=").Uint64().Call(jen.Lit(g.acceptMask)),
		jen.Line(),
	}, body...)
}

// generateTransitionBlock generates the per-byte transition logic.
func (g *bitsetGenerator) generateTransitionBlock() []jen.Code {
	block := []jen.Code{
		jen.Id("c").Op(":=").Id(codegen.InputName).Index(jen.Id(codegen.OffsetName)),
		jen.Id(codegen.NextSetName).Op("=").Lit(0),
		jen.Line(),
	}

	for _, tr := range g.transitions {
		sourceBit := jen.Uint64().Call(jen.Lit(uint64(1) << uint(tr.source)))
		block = append(block,
			jen.Comment(tr.label),
			jen.If(
				jen.Id(codegen.CurrentSetName).Op("&").Add(sourceBit).Op("!=").Lit(0).
					Op("&&").Add(tr.predicate),
			).Block(
				jen.Id(codegen.NextSetName).Op("|=").Uint64().Call(jen.Lit(tr.successors)),
			),
		)
	}

	block = append(block,
		jen.Line(),
		jen.Comment("Dead end: nothing consumed this byte"),
		jen.If(jen.Id(codegen.NextSetName).Op("==").Lit(0)).Block(
			jen.Return(jen.False()),
		),
		jen.Id(codegen.CurrentSetName).Op("=").Id(codegen.NextSetName),
	)

	return block
}

// describeTransitions returns a short human-readable summary of the
// precomputed arms, used by verbose logging.
func (g *bitsetGenerator) describeTransitions() string {
	return fmt.Sprintf("start=%#x accept=%#x arms=%d", g.startClosure, g.acceptMask, len(g.transitions))
}
