package rng

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/seekgen/internal/conv"
)

// Bool produces true when the drawn value is even. It draws exactly once.
type Bool struct{}

var _ Producer[bool] = Bool{}

// Generate implements Producer.
func (Bool) Generate(src BitSource) bool {
	return src.NextBits32()%2 == 0
}

func (Bool) String() string { return "bool" }

// Uint32 passes one draw through unchanged.
type Uint32 struct{}

var _ Producer[uint32] = Uint32{}

// Generate implements Producer.
func (Uint32) Generate(src BitSource) uint32 { return src.NextBits32() }

func (Uint32) String() string { return "uint32" }

// Uint64 combines two draws, high word first.
type Uint64 struct{}

var _ Producer[uint64] = Uint64{}

// Generate implements Producer.
func (Uint64) Generate(src BitSource) uint64 {
	hi := uint64(src.NextBits32())
	lo := uint64(src.NextBits32())
	return hi<<32 | lo
}

func (Uint64) String() string { return "uint64" }

// Bounded produces a uniform value in [0, N).
//
// It uses multiply-shift with rejection, so it draws at least once and
// occasionally more. A zero N covers the full 32-bit range with one draw.
type Bounded struct {
	N uint32
}

var _ Producer[uint32] = Bounded{}

// Generate implements Producer.
func (b Bounded) Generate(src BitSource) uint32 {
	v := src.NextBits32()
	if b.N == 0 {
		return v
	}

	m := uint64(v) * uint64(b.N)
	low := uint32(m)
	if low < b.N {
		threshold := -b.N % b.N
		for low < threshold {
			v = src.NextBits32()
			m = uint64(v) * uint64(b.N)
			low = uint32(m)
		}
	}
	return uint32(m >> 32)
}

func (b Bounded) String() string { return fmt.Sprintf("bounded(%d)", b.N) }

// Float32 produces a uniform value in [0, 1) from the top 24 bits of one
// draw.
type Float32 struct{}

var _ Producer[float32] = Float32{}

// Generate implements Producer.
func (Float32) Generate(src BitSource) float32 {
	return float32(src.NextBits32()>>8) / (1 << 24)
}

func (Float32) String() string { return "float32" }

// Float64 produces a uniform value in [0, 1) with 53 bits of precision from
// two draws.
type Float64 struct{}

var _ Producer[float64] = Float64{}

// Generate implements Producer.
func (Float64) Generate(src BitSource) float64 {
	hi := uint64(src.NextBits32() >> 5)
	lo := uint64(src.NextBits32() >> 6)
	return float64(hi<<26|lo) / (1 << 53)
}

func (Float64) String() string { return "float64" }

// Choice picks one of its options uniformly.
// A Choice without options produces the zero value and draws nothing.
type Choice[T any] struct {
	Options []T
}

// NewChoice creates a Choice over opts. The options are copied.
func NewChoice[T any](opts ...T) (Choice[T], error) {
	if len(opts) == 0 {
		return Choice[T]{}, ErrEmptyChoice
	}
	if _, err := conv.IntToUint32(len(opts)); err != nil {
		return Choice[T]{}, fmt.Errorf("choice: %w", err)
	}
	return Choice[T]{Options: append([]T(nil), opts...)}, nil
}

// Generate implements Producer.
func (c Choice[T]) Generate(src BitSource) T {
	if len(c.Options) == 0 {
		var zero T
		return zero
	}
	i := Bounded{N: uint32(len(c.Options))}.Generate(src)
	return c.Options[i]
}

func (c Choice[T]) String() string { return fmt.Sprintf("choice(%d)", len(c.Options)) }

// Subset produces K distinct values from [0, N) as a bitmap, using Floyd's
// algorithm. K is clamped to N. Each element costs one Bounded draw.
type Subset struct {
	N uint32
	K uint32
}

var _ Producer[*roaring.Bitmap] = Subset{}

// NewSubset validates k <= n.
func NewSubset(n, k uint32) (Subset, error) {
	if k > n {
		return Subset{}, fmt.Errorf("%w: k=%d n=%d", ErrInvalidSubset, k, n)
	}
	return Subset{N: n, K: k}, nil
}

// Generate implements Producer.
func (s Subset) Generate(src BitSource) *roaring.Bitmap {
	k := min(s.K, s.N)
	bm := roaring.New()
	for j := s.N - k; j < s.N; j++ {
		t := Bounded{N: j + 1}.Generate(src)
		if bm.Contains(t) {
			bm.Add(j)
		} else {
			bm.Add(t)
		}
	}
	return bm
}

func (s Subset) String() string { return fmt.Sprintf("subset(%d of %d)", s.K, s.N) }
