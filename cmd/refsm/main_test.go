package main

import "testing"

func TestRunRequiresOptions(t *testing.T) {
	// Flags are unset in tests; run must surface the validation error
	// instead of writing anything.
	if err := run(); err == nil {
		t.Error("run() with no flags should fail validation")
	}
}
