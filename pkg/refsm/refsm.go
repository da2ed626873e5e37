// Package refsm compiles restricted regular expressions into explicit
// nondeterministic finite automata. Patterns are built from ASCII literal
// characters, the wildcard '.', and the postfix quantifiers '*' and '+',
// joined by implicit concatenation; matching is whole-string accept/reject.
//
// A compiled FSM can be matched directly, or turned into a standalone Go
// source file containing an equivalent bitset matcher via Generate.
package refsm

import (
	"fmt"

	"github.com/refsm/refsm/internal/compiler"
	"github.com/refsm/refsm/internal/fsm"
)

// FSM is a compiled pattern. It is immutable and safe for concurrent use;
// MatchString never mutates shared state.
type FSM struct {
	automaton *fsm.Automaton
}

// Compile builds the automaton for pattern. It fails if the pattern
// contains an unsupported token (fsm.ErrInvalidToken) or a quantifier with
// no preceding target (fsm.ErrMalformedQuantifier); no partial automaton is
// ever returned.
func Compile(pattern string) (*FSM, error) {
	a, err := fsm.Build(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to compile pattern: %w", err)
	}
	return &FSM{automaton: a}, nil
}

// MatchString reports whether input as a whole matches the pattern. It is a
// total function: every input yields true or false, never an error.
func (f *FSM) MatchString(input string) bool {
	return f.automaton.MatchString(input)
}

// Pattern returns the source pattern.
func (f *FSM) Pattern() string {
	return f.automaton.Pattern()
}

// NumNodes returns the number of nodes in the compiled automaton.
func (f *FSM) NumNodes() int {
	return f.automaton.NumNodes()
}

// Options configures code generation.
type Options struct {
	// Pattern is the restricted regular expression to compile
	Pattern string

	// Name is the prefix for the generated type (e.g. "Hostname" generates
	// a Hostname type with a MatchString method)
	Name string

	// OutputFile is the path where generated code will be written
	OutputFile string

	// Package is the Go package name for the generated code
	Package string

	// Verbose enables logging of generation decisions to stderr
	Verbose bool
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if o.Pattern == "" {
		return fmt.Errorf("pattern cannot be empty")
	}
	if o.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if o.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	if o.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	return nil
}

// Generate compiles the pattern and writes a standalone Go matcher to
// opts.OutputFile. The emitted matcher has no dependencies and the same
// accept/reject semantics as MatchString.
func Generate(opts Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	a, err := fsm.Build(opts.Pattern)
	if err != nil {
		return fmt.Errorf("failed to compile pattern: %w", err)
	}

	c := compiler.New(compiler.Config{
		Pattern:   opts.Pattern,
		Name:      opts.Name,
		Package:   opts.Package,
		Automaton: a,
		Verbose:   opts.Verbose,
	})
	c.SetOutputFile(opts.OutputFile)

	if err := c.Generate(); err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	return nil
}
