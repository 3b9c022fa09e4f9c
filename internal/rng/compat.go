package rng

import (
	"math"
	"math/bits"

	"github.com/roach88/legacyrand/internal/subtractive"
)

// Compat is the override-aware calling convention. It defers engine
// construction to the first draw, and every composite formula reads the
// double primitive through the Sampler capability fixed at construction,
// so a substituted Sample changes the output of every derived operation.
// NextBytes likewise draws each byte through the capability's Next, not
// the engine's byte filler.
//
// With a nil capability Compat is engine-direct and produces exactly the
// Seeded sequence for the same seed. The indirection exists solely to
// preserve the legacy polymorphic substitution contract.
//
// Lazy initialization is a plain presence check. Concurrent first use is
// undefined; callers own the synchronization (legacy contract).
type Compat struct {
	seed   int32
	front  Sampler
	engine *subtractive.Engine
}

var (
	_ Source  = (*Compat)(nil)
	_ Sampler = (*Compat)(nil)
)

// NewCompat creates a Compat source seeded from the process-wide shared
// seed source. front may be nil for engine-direct behavior.
func NewCompat(front Sampler) *Compat {
	return NewCompatSeeded(NextSharedSeed(), front)
}

// NewCompatSeeded creates a Compat source with an explicit seed. The
// engine is NOT constructed here; the first draw through any entry
// point initializes it from seed.
func NewCompatSeeded(seed int32, front Sampler) *Compat {
	return &Compat{seed: seed, front: front}
}

// ensure initializes the engine on first use. Presence check only.
func (c *Compat) ensure() *subtractive.Engine {
	if c.engine == nil {
		c.engine = subtractive.New(c.seed)
	}
	return c.engine
}

// sample reads the double primitive through the capability when one is
// installed; this is the single indirection every composite formula
// must pass through.
func (c *Compat) sample() float64 {
	if c.front != nil {
		return c.front.Sample()
	}
	return c.ensure().Sample()
}

// nextPrim reads the integer primitive through the capability; used
// only by NextBytes (the legacy byte fill is defined over the visible
// Next, not the engine filler).
func (c *Compat) nextPrim() int32 {
	if c.front != nil {
		return c.front.Next()
	}
	return c.ensure().InternalSample()
}

// Sample returns the engine's next double in [0, 1). This is the
// default primitive a non-overriding capability delegates back to.
func (c *Compat) Sample() float64 {
	return c.ensure().Sample()
}

// Next returns a raw engine draw in [0, MaxInt32-1].
func (c *Compat) Next() int32 {
	return c.ensure().InternalSample()
}

// NextMax returns a draw in [0, maxValue). Panics if maxValue < 0.
func (c *Compat) NextMax(maxValue int32) int32 {
	if maxValue < 0 {
		panic("legacyrand: invalid argument to NextMax: maxValue < 0")
	}
	return int32(c.sample() * float64(maxValue))
}

// NextRange returns a draw in [minValue, maxValue). Panics if
// minValue > maxValue. Spans wider than int32 read the engine's
// large-range sample directly: the override contract covers the visible
// double primitive, not the internal high-resolution path.
func (c *Compat) NextRange(minValue, maxValue int32) int32 {
	if minValue > maxValue {
		panic("legacyrand: invalid argument to NextRange: minValue > maxValue")
	}
	span := int64(maxValue) - int64(minValue)
	if span <= math.MaxInt32 {
		return int32(c.sample()*float64(span)) + minValue
	}
	return int32(int64(c.ensure().SampleForLargeRange()*float64(span)) + int64(minValue))
}

// NextInt64 returns a draw in [0, MaxInt64), rejecting MaxInt64.
func (c *Compat) NextInt64() int64 {
	for {
		r := c.nextUint64() >> 1
		if r != math.MaxInt64 {
			return int64(r)
		}
	}
}

// NextInt64Max returns a draw in [0, maxValue). Panics if maxValue < 0.
func (c *Compat) NextInt64Max(maxValue int64) int64 {
	if maxValue < 0 {
		panic("legacyrand: invalid argument to NextInt64Max: maxValue < 0")
	}
	return c.NextInt64Range(0, maxValue)
}

// NextInt64Range returns a draw in [minValue, maxValue) by rejection
// sampling, same formula as Seeded but fed through the capability.
// Panics if minValue > maxValue.
func (c *Compat) NextInt64Range(minValue, maxValue int64) int64 {
	if minValue > maxValue {
		panic("legacyrand: invalid argument to NextInt64Range: minValue > maxValue")
	}

	exclusiveRange := uint64(maxValue - minValue)
	if exclusiveRange > 1 {
		n := bits.Len64(exclusiveRange - 1)
		for {
			r := c.nextUint64() >> (64 - n)
			if r < exclusiveRange {
				return int64(r) + minValue
			}
		}
	}
	return minValue
}

// NextDouble returns a draw in [0.0, 1.0) through the capability.
func (c *Compat) NextDouble() float64 {
	return c.sample()
}

// NextSingle returns a draw in [0.0, 1.0), rejecting narrowed 1.0f.
func (c *Compat) NextSingle() float32 {
	for {
		f := float32(c.sample())
		if f < 1.0 {
			return f
		}
	}
}

// NextBytes fills p one byte per draw through the capability's Next.
func (c *Compat) NextBytes(p []byte) {
	for i := range p {
		p[i] = byte(c.nextPrim())
	}
}

func (c *Compat) nextUint64() uint64 {
	return uint64(uint32(c.NextMax(1<<22))) |
		uint64(uint32(c.NextMax(1<<22)))<<22 |
		uint64(uint32(c.NextMax(1<<20)))<<44
}
