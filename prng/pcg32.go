package prng

import "math/bits"

// pcg32 is the PCG XSH-RR 64/32 generator by Melissa O'Neill: 64 bits of
// state, 32 bits of output, with an odd increment selecting the stream.
type pcg32 struct {
	state uint64
	inc   uint64 // must be odd
}

const pcg32Mult = 6364136223846793005

// newPCG32 seeds a pcg32 with the given initial state and odd stream
// selector, following the recommended PCG seeding protocol: mix the
// increment into the state, add the initial state, advance once more.
func newPCG32(initstate, incOdd uint64) pcg32 {
	p := pcg32{state: 0, inc: incOdd}
	p.next()
	p.state += initstate
	p.next()
	return p
}

// next returns the next 32-bit output.
func (p *pcg32) next() uint32 {
	old := p.state
	p.state = old*pcg32Mult + p.inc

	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := int(old >> 59)
	return bits.RotateLeft32(xorshifted, -rot)
}
