// Package compiler emits standalone Go matcher code for a compiled
// automaton.
package compiler

import (
	"fmt"
	"go/format"
	"os"

	"github.com/dave/jennifer/jen"

	"github.com/refsm/refsm/internal/codegen"
	"github.com/refsm/refsm/internal/fsm"
)

// Config holds the configuration for code generation.
type Config struct {
	Pattern    string
	Name       string
	OutputFile string
	Package    string
	Automaton  *fsm.Automaton
	Verbose    bool // Enable verbose logging of generation decisions
}

// Compiler generates Go matcher code from a compiled automaton.
type Compiler struct {
	config Config
	file   *jen.File
	logger *Logger
}

// New creates a new compiler instance.
func New(config Config) *Compiler {
	// The generated type and its Compiled instance must be exported.
	config.Name = codegen.UpperFirst(config.Name)

	c := &Compiler{
		config: config,
		file:   jen.NewFile(config.Package),
		logger: NewLogger(config.Verbose),
	}

	c.logger.Section("Pattern Analysis")
	c.logger.Log("Pattern: %s", config.Pattern)
	if config.Automaton != nil {
		c.logger.Log("NFA nodes: %d", config.Automaton.NumNodes())
	}

	return c
}

// SetOutputFile sets the output file path.
func (c *Compiler) SetOutputFile(path string) {
	c.config.OutputFile = path
}

// Logger returns the compiler's logger, so callers can redirect output.
func (c *Compiler) Logger() *Logger {
	return c.logger
}

// method returns a jen.Statement for declaring a method on the generated
// struct.
func (c *Compiler) method(name string) *jen.Statement {
	return c.file.Func().
		Params(jen.Id(c.config.Name)).
		Id(name)
}

// Generate generates the Go code and writes it to the output file.
func (c *Compiler) Generate() error {
	a := c.config.Automaton
	if a == nil {
		return fmt.Errorf("no automaton to generate from")
	}
	if a.NumNodes() > fsm.MaxBitsetNodes {
		return fmt.Errorf("pattern %q compiles to %d nodes, bitset generation supports at most %d",
			c.config.Pattern, a.NumNodes(), fsm.MaxBitsetNodes)
	}

	c.file.Comment(fmt.Sprintf("Code generated by refsm for pattern: %s", c.config.Pattern))
	c.file.Comment("DO NOT EDIT.")
	c.file.Line()

	// Generate the main struct type and a convenience instance
	c.file.Type().Id(c.config.Name).Struct()
	c.file.Line()
	c.file.Var().Id(fmt.Sprintf("Compiled%s", c.config.Name)).Op("=").Id(c.config.Name).Values()
	c.file.Line()

	gen := newBitsetGenerator(c)
	matchCode, err := gen.generateMatchFunction()
	if err != nil {
		return fmt.Errorf("failed to generate match function: %w", err)
	}

	c.method("MatchString").
		Params(jen.Id(codegen.InputName).String()).
		Params(jen.Bool()).
		Block(matchCode...)

	if err := c.file.Save(c.config.OutputFile); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}

	if err := formatFile(c.config.OutputFile); err != nil {
		return fmt.Errorf("failed to format file: %w", err)
	}

	c.logger.Log("Wrote %s", c.config.OutputFile)
	return nil
}

// formatFile runs the generated file through gofmt formatting.
func formatFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	formatted, err := format.Source(src)
	if err != nil {
		return err
	}
	return os.WriteFile(path, formatted, 0o644)
}
