// Package subtractive implements the legacy 56-slot subtractive
// pseudo-random engine (a modified Knuth lagged-subtraction generator).
//
// The engine exists for one reason: to reproduce a historical output
// sequence bit for bit. Every constant, every wrap, and every store-back
// below is part of that contract and must not be "fixed" or modernized.
//
// DETERMINISM CONTRACT:
// For a fixed seed, the sequence of values produced by any mix of draws
// is identical across runs, platforms, and process restarts. All state
// arithmetic is int32 with two's-complement wrap; floating conversions
// use the exact legacy formulas.
//
// Thread-safety: none. Every draw mutates the state array and both
// cursors. Concurrent use of one Engine is a data race the caller must
// prevent (external locking or per-goroutine instances).
//
// The engine is explicitly non-cryptographic.
package subtractive
