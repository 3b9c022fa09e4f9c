// Package testutil provides deterministic test doubles for the
// generator's override-capable primitives.
package testutil

// ScriptedSampler returns predetermined primitive values in order.
//
// It satisfies the rng.Sampler capability without importing it, so both
// the strategy tests and the scenario tests can substitute scripted
// primitives and verify that every composite operation observes them.
//
// Panics when a script is exhausted. This is a fail-fast approach to
// catch test misconfiguration (the operation under test consumed more
// primitives than the script accounted for).
type ScriptedSampler struct {
	Doubles []float64
	Ints    []int32

	di, ii int
}

// Sample returns the next scripted double.
func (s *ScriptedSampler) Sample() float64 {
	if s.di >= len(s.Doubles) {
		panic("ScriptedSampler: double script exhausted")
	}
	v := s.Doubles[s.di]
	s.di++
	return v
}

// Next returns the next scripted int.
func (s *ScriptedSampler) Next() int32 {
	if s.ii >= len(s.Ints) {
		panic("ScriptedSampler: int script exhausted")
	}
	v := s.Ints[s.ii]
	s.ii++
	return v
}

// DoublesUsed reports how many scripted doubles have been consumed.
func (s *ScriptedSampler) DoublesUsed() int { return s.di }

// IntsUsed reports how many scripted ints have been consumed.
func (s *ScriptedSampler) IntsUsed() int { return s.ii }
