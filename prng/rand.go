package prng

// Rand is a seeded, reproducible random number generator: a PCG32 core
// seeded through SplitMix64, so a single u64 seed yields a full state and
// stream selection. Two Rands with the same seed produce identical
// sequences on every platform.
//
// A Rand is not safe for concurrent use.
type Rand struct {
	pcg pcg32
}

// New creates a generator from a single seed.
func New(seed uint64) *Rand {
	sm := NewSplitMix64(seed)
	initstate := sm.Uint64()
	stream := sm.Uint64()
	return &Rand{pcg: newPCG32(initstate, stream<<1|1)}
}

// Uint32 returns the next value.
func (r *Rand) Uint32() uint32 {
	return r.pcg.next()
}

// Float32 returns a value in [0, 1). It uses the top 24 bits of the
// output, so 1.0 is never produced and every value is exactly
// representable.
func (r *Rand) Float32() float32 {
	const scale = 1.0 / (1 << 24)
	return float32(r.Uint32()>>8) * scale
}

// Uint32N returns a uniform value in [0, n) using Lemire's multiply-high
// rejection method, which avoids modulo bias. Panics if n is 0.
func (r *Rand) Uint32N(n uint32) uint32 {
	if n == 0 {
		panic("prng: Uint32N with n == 0")
	}
	threshold := -n % n
	for {
		x := r.Uint32()
		m := uint64(x) * uint64(n)
		if uint32(m) >= threshold {
			return uint32(m >> 32)
		}
	}
}

// Range returns a uniform value in [lo, hi). Panics if lo >= hi.
func (r *Rand) Range(lo, hi uint32) uint32 {
	if lo >= hi {
		panic("prng: empty range")
	}
	return lo + r.Uint32N(hi-lo)
}
