package rng

// LCG is the 32-bit linear congruential generator from Numerical Recipes
// (a=1664525, c=1013904223, m=2^32).
//
// The low bits of an LCG have short periods; the lowest bit alternates.
// Producers that read low bits, such as Bool, are therefore poorly served
// by LCG. It exists for compatibility with systems that use the same
// constants.
type LCG struct {
	state uint32
}

var _ BitSource = (*LCG)(nil)

// NewLCG creates an LCG from the low 32 bits of seed.
func NewLCG(seed uint64) *LCG {
	return &LCG{state: uint32(seed)}
}

// NextBits32 implements BitSource.
func (l *LCG) NextBits32() uint32 {
	l.state = l.state*1664525 + 1013904223
	return l.state
}

func (l *LCG) String() string { return "lcg" }
