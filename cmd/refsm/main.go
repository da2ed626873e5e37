// Command refsm compiles a restricted regular expression into a standalone
// Go matcher source file.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/refsm/refsm/pkg/refsm"
)

var (
	pattern    = flag.String("pattern", "", "Pattern to compile (literals, '.', '*', '+')")
	name       = flag.String("name", "", "Name prefix for the generated type")
	outputFile = flag.String("output", "", "Output file for generated code")
	pkgName    = flag.String("package", "", "Package name for generated code")
	verbose    = flag.Bool("verbose", false, "Log generation decisions to stderr")
	helpFlag   = flag.Bool("help", false, "Show help message")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: refsm -pattern PATTERN -name NAME -output FILE -package PKG\n\n")
	fmt.Fprintf(os.Stderr, "Compiles a restricted regular expression (ASCII literals, '.', '*', '+')\n")
	fmt.Fprintf(os.Stderr, "into a Go source file with a whole-string MatchString function.\n\n")
	flag.PrintDefaults()
}

func run() error {
	return refsm.Generate(refsm.Options{
		Pattern:    *pattern,
		Name:       *name,
		OutputFile: *outputFile,
		Package:    *pkgName,
		Verbose:    *verbose,
	})
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if *helpFlag {
		usage()
		os.Exit(0)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "refsm: %v\n", err)
		os.Exit(1)
	}
}
