package fsm

import (
	"errors"
	"fmt"
)

// Construction errors. Both abort the build; no partial automaton is ever
// returned. Match-time has no error conditions.
var (
	// ErrInvalidToken is returned when a pattern byte is neither '.' nor a
	// supported literal character.
	ErrInvalidToken = errors.New("invalid pattern token")

	// ErrMalformedQuantifier is returned when '*' or '+' appears without a
	// quantifiable token directly before it, e.g. at pattern start or
	// immediately after another quantifier.
	ErrMalformedQuantifier = errors.New("quantifier has no preceding target")
)

// Reserved metacharacters of the wider regex syntax this engine does not
// implement. Accepting them as plain literals would silently build an
// automaton with different semantics than the user asked for, so they fail
// construction instead.
const reservedMeta = `[](){}|?\^$`

func isLiteralToken(c byte) bool {
	if c <= ' ' || c >= 0x7f { // control bytes, space, DEL, non-ASCII
		return c == ' '
	}
	for i := 0; i < len(reservedMeta); i++ {
		if c == reservedMeta[i] {
			return false
		}
	}
	return true
}

// Build compiles a pattern into an Automaton in a single left-to-right pass
// with one byte of lookahead. The resulting graph has exactly one Start and
// one Termination node and is immutable once returned.
func Build(pattern string) (*Automaton, error) {
	a := &Automaton{pattern: pattern}
	a.start = a.node(KindStart, 0, noInner)

	cursor := a.start
	i := 0
	for i < len(pattern) {
		token := pattern[i]

		if token == '*' || token == '+' {
			// A quantifier in token position has nothing to quantify.
			return nil, fmt.Errorf("%w: %q at position %d", ErrMalformedQuantifier, token, i)
		}

		var inner NodeID
		switch {
		case token == '.':
			inner = a.node(KindWildcard, 0, noInner)
		case isLiteralToken(token):
			inner = a.node(KindLiteral, token, noInner)
		default:
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidToken, token, i)
		}

		var quant byte
		if i+1 < len(pattern) {
			if next := pattern[i+1]; next == '*' || next == '+' {
				quant = next
			}
		}

		switch quant {
		case '*':
			// prev -> wrapper, wrapper -> inner, inner -> wrapper.
			// The wrapper's non-loop edges are added when the next token
			// (or Termination) is wired.
			wrapper := a.node(KindZeroOrMore, 0, inner)
			a.edge(cursor, wrapper)
			a.edge(wrapper, inner)
			a.edge(inner, wrapper)
			cursor = wrapper
			i += 2
		case '+':
			// prev -> inner (at least one traversal), inner -> wrapper,
			// wrapper -> inner.
			wrapper := a.node(KindOneOrMore, 0, inner)
			a.edge(cursor, inner)
			a.edge(inner, wrapper)
			a.edge(wrapper, inner)
			cursor = wrapper
			i += 2
		default:
			a.edge(cursor, inner)
			cursor = inner
			i++
		}
	}

	a.term = a.node(KindTermination, 0, noInner)
	a.edge(cursor, a.term)

	return a, nil
}
