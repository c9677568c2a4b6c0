package rng

import "fmt"

// Constant is a stub source that always returns the same value.
type Constant uint32

var _ BitSource = Constant(0)

// NextBits32 implements BitSource.
func (c Constant) NextBits32() uint32 { return uint32(c) }

func (c Constant) String() string { return fmt.Sprintf("constant(%d)", uint32(c)) }

// Sequence hands out a fixed list of values in order.
//
// It is meant for tests that need to control every draw. A plain sequence is
// finite: TryNextBits32 reports an *ExhaustedError once all values are used
// and NextBits32 panics with it. A sequence created by Repeat starts over
// instead.
type Sequence struct {
	values   []uint32
	next     int
	consumed int
	cycle    bool
}

var (
	_ BitSource      = (*Sequence)(nil)
	_ FallibleSource = (*Sequence)(nil)
)

// NewSequence creates a finite sequence. The values are copied.
func NewSequence(values ...uint32) *Sequence {
	return &Sequence{values: append([]uint32(nil), values...)}
}

// Repeat creates a sequence that cycles through values forever.
// A Repeat of no values is exhausted from the start.
func Repeat(values ...uint32) *Sequence {
	s := NewSequence(values...)
	s.cycle = len(values) > 0
	return s
}

// TryNextBits32 implements FallibleSource.
func (s *Sequence) TryNextBits32() (uint32, error) {
	if s.next >= len(s.values) {
		if !s.cycle {
			return 0, &ExhaustedError{Consumed: s.consumed}
		}
		s.next = 0
	}
	v := s.values[s.next]
	s.next++
	s.consumed++
	return v, nil
}

// NextBits32 implements BitSource. It panics when a finite sequence is
// exhausted.
func (s *Sequence) NextBits32() uint32 {
	v, err := s.TryNextBits32()
	if err != nil {
		panic(err)
	}
	return v
}

// Consumed returns the number of values handed out so far.
func (s *Sequence) Consumed() int { return s.consumed }

// Remaining returns the number of values left before exhaustion, or -1 for a
// repeating sequence.
func (s *Sequence) Remaining() int {
	if s.cycle {
		return -1
	}
	return len(s.values) - s.next
}

func (s *Sequence) String() string {
	if s.cycle {
		return fmt.Sprintf("repeat(%d)", len(s.values))
	}
	return fmt.Sprintf("sequence(%d)", len(s.values))
}
