package rng

import "fmt"

const pcgMultiplier = 6364136223846793005

// PCG32 is a PCG-XSH-RR generator with 64 bits of state and 32-bit output.
//
// Different streams produce independent sequences for the same seed.
type PCG32 struct {
	state uint64
	inc   uint64
}

var _ BitSource = (*PCG32)(nil)

// NewPCG32 creates a PCG32 seeded with seed on the given stream.
func NewPCG32(seed, stream uint64) *PCG32 {
	p := &PCG32{}
	p.Seed(seed, stream)
	return p
}

// Seed resets the generator to the start of the (seed, stream) sequence.
func (p *PCG32) Seed(seed, stream uint64) {
	p.state = 0
	p.inc = stream<<1 | 1
	p.NextBits32()
	p.state += seed
	p.NextBits32()
}

// NextBits32 implements BitSource.
func (p *PCG32) NextBits32() uint32 {
	old := p.state
	p.state = old*pcgMultiplier + p.inc
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := uint32(old >> 59)
	return (xorshifted >> rot) | (xorshifted << ((-rot) & 31))
}

func (p *PCG32) String() string { return fmt.Sprintf("pcg32(inc=%#x)", p.inc) }
