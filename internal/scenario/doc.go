// Package scenario loads and runs vector suites: YAML files that pin
// the generator's output for fixed seeds and operation sequences.
//
// A suite lists cases; each case names a seed, a strategy, an op
// sequence, and the expected draws in their lossless encoding (decimal
// for integers, decimal IEEE bit patterns for doubles and singles, hex
// for byte fills). Suites are validated against an embedded CUE schema
// before execution, so a malformed file is a load error, never a
// half-run report.
//
// Suite and case names are NFC normalized at load time; they double as
// archive keys and must compare stably regardless of how an editor
// encoded them.
package scenario
