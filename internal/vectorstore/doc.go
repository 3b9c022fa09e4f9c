// Package vectorstore archives recorded draw sequences in SQLite so
// drift between an archived reference run and the current engine can be
// detected long after the run was recorded.
//
// A run names a seed, strategy, and one repeated operation; its draws
// are stored one row per draw in the same lossless encoding the
// scenario suites use. Runs are immutable once written: re-recording
// under an existing name is an error, not an upsert, because a silently
// replaced reference defeats the archive's purpose.
package vectorstore
