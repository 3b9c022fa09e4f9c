package subtractive

import "math"

const (
	// mbig is the modulus of the generator, int32 max.
	mbig = math.MaxInt32

	// mseed is the seeding magic constant, derived from the golden
	// ratio (Numerical Recipes in C, 2nd Ed.).
	mseed = 161803398
)

// Engine holds the mutable generator state: a 56-slot array (index 0 is
// a historical artifact and never used) and two rotating cursors.
//
// INVARIANTS:
//   - seedArray is fully populated by New before any draw is possible;
//     partial initialization is never observable.
//   - inext and inextp stay in [0,55] and never land on the same slot.
//   - The state is never reseeded for the lifetime of the engine.
type Engine struct {
	inext     int
	inextp    int
	seedArray [56]int32
}

// New creates an engine whose state depends solely on seed.
//
// Seeding scatters values at a stride of 21 through slots 1..54, seeds
// slot 55 with the magic difference, then runs four full mixing passes.
// abs(MinInt32) does not exist in int32, so that seed is clamped to
// MaxInt32 before the subtraction; MinInt32 and MaxInt32 therefore
// produce identical sequences, as the legacy generator did.
func New(seed int32) *Engine {
	e := &Engine{}

	subtraction := seed
	if subtraction == math.MinInt32 {
		subtraction = math.MaxInt32
	} else if subtraction < 0 {
		subtraction = -subtraction
	}

	mj := int32(mseed) - subtraction
	e.seedArray[55] = mj
	mk := int32(1)

	ii := 0
	for i := 1; i < 55; i++ {
		if ii += 21; ii >= 55 {
			ii -= 55
		}
		e.seedArray[ii] = mk
		mk = mj - mk
		if mk < 0 {
			mk += mbig
		}
		mj = e.seedArray[ii]
	}

	// Four mixing passes. Large |seed| values drive the subtractions
	// through int32 wrap; that wrap is part of the output contract.
	for k := 1; k < 5; k++ {
		for i := 1; i < 56; i++ {
			e.seedArray[i] -= e.seedArray[1+(i+30)%55]
			if e.seedArray[i] < 0 {
				e.seedArray[i] += mbig
			}
		}
	}

	e.inext = 0
	e.inextp = 21
	return e
}

// InternalSample advances both cursors (wrapping 56 back to 1, never
// revisiting slot 0) and returns the difference of the two slots under
// them, normalized into [0, MaxInt32-1]. The result is stored back into
// the leading slot: every draw perturbs all future draws.
func (e *Engine) InternalSample() int32 {
	locINext := e.inext + 1
	if locINext >= 56 {
		locINext = 1
	}
	locINextp := e.inextp + 1
	if locINextp >= 56 {
		locINextp = 1
	}

	retVal := e.seedArray[locINext] - e.seedArray[locINextp]
	if retVal == mbig {
		retVal--
	}
	if retVal < 0 {
		retVal += mbig
	}

	e.seedArray[locINext] = retVal
	e.inext = locINext
	e.inextp = locINextp
	return retVal
}

// Sample returns one draw scaled into [0, 1). The multiplication by the
// reciprocal constant (not a division) is the legacy formula; 1.0 is
// unreachable because InternalSample never returns MaxInt32.
func (e *Engine) Sample() float64 {
	return float64(e.InternalSample()) * (1.0 / mbig)
}

// SampleForLargeRange returns a draw in [0, 1) with enough resolution to
// scale across the full int32 span. Sample alone cannot: scaled across
// ~2^32 values its low bit would always come out even.
//
// One draw supplies the magnitude, a second draw supplies only a sign
// via its parity (an even draw negates, matching legacy output), and the
// signed value is shifted into [0, 2*MaxInt32-1) before division.
func (e *Engine) SampleForLargeRange() float64 {
	result := e.InternalSample()

	if e.InternalSample()%2 == 0 {
		result = -result
	}

	d := float64(result)
	d += mbig - 1
	d /= 2*float64(mbig) - 1
	return d
}

// Fill writes the low byte of one raw draw into each position of p,
// consuming exactly len(p) draws.
func (e *Engine) Fill(p []byte) {
	for i := range p {
		p[i] = byte(e.InternalSample())
	}
}
