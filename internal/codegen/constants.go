// Package codegen provides identifier constants and helpers shared by the
// matcher code generator.
package codegen

import "fmt"

// Variable names used in generated code
const (
	InputName        = "input"
	InputLenName     = "l"
	OffsetName       = "offset"
	CurrentSetName   = "current"
	NextSetName      = "next"
	StartClosureName = "startClosure"
	AcceptMaskName   = "acceptMask"
)

// NodeLabel returns the comment label for an automaton node in generated
// code, e.g. "node 3 (Literal)".
func NodeLabel(id int, kind string) string {
	return fmt.Sprintf("node %d (%s)", id, kind)
}

// UpperFirst converts the first character of a string to uppercase.
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]&^0x20) + s[1:]
}
