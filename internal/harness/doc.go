// Package harness runs conformance scenarios for the dseq engine.
//
// Scenarios are declared in YAML: a request (from/to/increment/filter/
// header/limit/format) plus either the exact expected lines or a golden
// file. They exercise the full path a user hits - argument parsing through
// engine generation - without going through a process boundary.
//
// Golden files live in testdata/golden and are regenerated with:
//
//	go test ./internal/harness -update
package harness
