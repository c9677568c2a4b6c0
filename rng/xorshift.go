package rng

// xorshiftFallback replaces a zero seed; a zero state would only ever
// produce zeros.
const xorshiftFallback = 2463534242

// XorShift32 is Marsaglia's 13/17/5 xorshift generator.
// Its period is 2^32-1; zero is never produced.
type XorShift32 struct {
	state uint32
}

var _ BitSource = (*XorShift32)(nil)

// NewXorShift32 creates a XorShift32 from the low 32 bits of seed.
func NewXorShift32(seed uint64) *XorShift32 {
	x := &XorShift32{}
	x.Seed(seed)
	return x
}

// Seed resets the generator state.
func (x *XorShift32) Seed(seed uint64) {
	x.state = uint32(seed)
	if x.state == 0 {
		x.state = xorshiftFallback
	}
}

// NextBits32 implements BitSource.
func (x *XorShift32) NextBits32() uint32 {
	s := x.state
	s ^= s << 13
	s ^= s >> 17
	s ^= s << 5
	x.state = s
	return s
}

func (x *XorShift32) String() string { return "xorshift32" }
