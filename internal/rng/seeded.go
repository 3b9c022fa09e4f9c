package rng

import (
	"math"
	"math/bits"

	"github.com/roach88/legacyrand/internal/subtractive"
)

// Seeded is the direct calling convention: one eagerly constructed
// engine, every operation reading it without indirection.
type Seeded struct {
	engine *subtractive.Engine
}

var _ Source = (*Seeded)(nil)

// NewSeeded creates a Seeded source. The engine is fully initialized
// before NewSeeded returns.
func NewSeeded(seed int32) *Seeded {
	return &Seeded{engine: subtractive.New(seed)}
}

// Next returns a raw draw in [0, MaxInt32-1].
func (s *Seeded) Next() int32 {
	return s.engine.InternalSample()
}

// NextMax returns a draw in [0, maxValue). Panics if maxValue < 0.
func (s *Seeded) NextMax(maxValue int32) int32 {
	if maxValue < 0 {
		panic("legacyrand: invalid argument to NextMax: maxValue < 0")
	}
	return int32(s.engine.Sample() * float64(maxValue))
}

// NextRange returns a draw in [minValue, maxValue). Panics if
// minValue > maxValue.
//
// Spans wider than int32 can represent lose low-bit uniformity under
// the plain Sample scaling, so they route through the higher-resolution
// large-range sample instead. The two paths are not interchangeable;
// which span takes which path is part of the output contract.
func (s *Seeded) NextRange(minValue, maxValue int32) int32 {
	if minValue > maxValue {
		panic("legacyrand: invalid argument to NextRange: minValue > maxValue")
	}
	span := int64(maxValue) - int64(minValue)
	if span <= math.MaxInt32 {
		return int32(s.engine.Sample()*float64(span)) + minValue
	}
	return int32(int64(s.engine.SampleForLargeRange()*float64(span)) + int64(minValue))
}

// NextInt64 returns a draw in [0, MaxInt64). MaxInt64 itself is
// rejected and redrawn: the top 63 bits of a packed 64-bit draw land in
// [0, MaxInt64], one value too many.
func (s *Seeded) NextInt64() int64 {
	for {
		r := s.nextUint64() >> 1
		if r != math.MaxInt64 {
			return int64(r)
		}
	}
}

// NextInt64Max returns a draw in [0, maxValue). Panics if maxValue < 0.
func (s *Seeded) NextInt64Max(maxValue int64) int64 {
	if maxValue < 0 {
		panic("legacyrand: invalid argument to NextInt64Max: maxValue < 0")
	}
	return s.NextInt64Range(0, maxValue)
}

// NextInt64Range returns a draw in [minValue, maxValue). Panics if
// minValue > maxValue.
//
// Rejection sampling over the smallest power-of-two span covering the
// range: draw the top ceil(log2(span)) bits of a packed 64-bit value,
// reject anything >= span. Expected O(1) iterations; a span of 0 or 1
// returns minValue without consuming any draws.
func (s *Seeded) NextInt64Range(minValue, maxValue int64) int64 {
	if minValue > maxValue {
		panic("legacyrand: invalid argument to NextInt64Range: minValue > maxValue")
	}

	exclusiveRange := uint64(maxValue - minValue)
	if exclusiveRange > 1 {
		n := bits.Len64(exclusiveRange - 1)
		for {
			r := s.nextUint64() >> (64 - n)
			if r < exclusiveRange {
				return int64(r) + minValue
			}
		}
	}
	return minValue
}

// NextDouble returns a draw in [0.0, 1.0).
func (s *Seeded) NextDouble() float64 {
	return s.engine.Sample()
}

// NextSingle returns a draw in [0.0, 1.0). Narrowing can round a double
// just under 1.0 up to exactly 1.0f; such draws are rejected.
func (s *Seeded) NextSingle() float32 {
	for {
		f := float32(s.engine.Sample())
		if f < 1.0 {
			return f
		}
	}
}

// NextBytes fills p with the low byte of successive raw draws.
func (s *Seeded) NextBytes(p []byte) {
	s.engine.Fill(p)
}

// nextUint64 packs three bounded draws (22+22+20 bits) into a full
// 64-bit value, the legacy technique for stretching a 31-bit primitive
// into wider outputs.
func (s *Seeded) nextUint64() uint64 {
	return uint64(uint32(s.NextMax(1<<22))) |
		uint64(uint32(s.NextMax(1<<22)))<<22 |
		uint64(uint32(s.NextMax(1<<20)))<<44
}
