// Package prng provides small, fast, reproducible pseudo-random number
// generators for procedural content and tests. None of them are
// cryptographically secure.
package prng

// SplitMix64 is the SplitMix64 generator by Sebastiano Vigna. Its main job
// here is expanding a single u64 seed into the state of other generators;
// it is also usable on its own.
type SplitMix64 struct {
	state uint64
}

// NewSplitMix64 creates a SplitMix64 with the given seed.
func NewSplitMix64(seed uint64) *SplitMix64 {
	return &SplitMix64{state: seed}
}

// Uint64 advances the generator and returns the next value.
func (s *SplitMix64) Uint64() uint64 {
	// Constants from the reference implementation.
	const (
		gamma = 0x9E3779B97F4A7C15
		mul1  = 0xBF58476D1CE4E5B9
		mul2  = 0x94D049BB133111EB
	)

	z := s.state
	s.state += gamma

	z ^= z >> 30
	z *= mul1
	z ^= z >> 27
	z *= mul2
	return z ^ (z >> 31)
}
