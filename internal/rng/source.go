package rng

// Source is the full legacy operation surface, exposed identically by
// both calling conventions.
//
// Result domains (maxValue/minValue preconditions panic when violated):
//
//	Next()                      [0, MaxInt32-1]
//	NextMax(max)                [0, max),   max >= 0
//	NextRange(min, max)         [min, max), min <= max
//	NextInt64()                 [0, MaxInt64)
//	NextInt64Max(max)           [0, max),   max >= 0
//	NextInt64Range(min, max)    [min, max), min <= max
//	NextDouble()                [0.0, 1.0)
//	NextSingle()                [0.0, 1.0)
//	NextBytes(p)                low-order bytes of successive draws
type Source interface {
	Next() int32
	NextMax(maxValue int32) int32
	NextRange(minValue, maxValue int32) int32
	NextInt64() int64
	NextInt64Max(maxValue int64) int64
	NextInt64Range(minValue, maxValue int64) int64
	NextDouble() float64
	NextSingle() float32
	NextBytes(p []byte)
}

// Sampler is the override-capable primitive surface of the Compat
// convention. Sample is the double primitive every composite formula
// reads; Next is the integer primitive NextBytes reads. Compat itself
// implements Sampler, so a caller's override can embed a *Compat and
// replace only the method it cares about.
type Sampler interface {
	// Sample returns the next double in [0, 1).
	Sample() float64

	// Next returns the next raw draw in [0, MaxInt32-1].
	Next() int32
}
