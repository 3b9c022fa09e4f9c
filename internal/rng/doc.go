// Package rng layers the two legacy calling conventions over the
// subtractive engine.
//
// Seeded is the direct convention: the engine is built eagerly at
// construction and every operation reads it directly.
//
// Compat is the override-aware convention: the engine is built lazily on
// first draw, and every composite operation reads the double primitive
// through a caller-substitutable Sampler capability. Substituting that
// one primitive changes the output of every derived operation (bounded
// ints, 64-bit values, byte fills), exactly as overriding the virtual
// sample method did on the legacy base class. With no substitution the
// two conventions produce identical output for identical seeds.
//
// Both conventions are single-threaded per instance (spec'd by the
// legacy contract): every draw mutates generator state, and the Compat
// lazy init is a plain presence check, not a once-barrier. Callers that
// share an instance across goroutines must synchronize externally.
package rng
