package rng

import "sync"

// Locked serializes access to a source so that it can be shared between
// goroutines. Draw order across goroutines is not deterministic.
type Locked struct {
	mu  sync.Mutex
	src BitSource
}

var _ BitSource = (*Locked)(nil)

// NewLocked wraps src. src must not be used directly afterwards.
func NewLocked(src BitSource) *Locked {
	return &Locked{src: src}
}

// NextBits32 implements BitSource.
func (l *Locked) NextBits32() uint32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.src.NextBits32()
}

// Counter counts the draws taken from a source.
type Counter struct {
	src   BitSource
	count int
}

var _ BitSource = (*Counter)(nil)

// NewCounter wraps src.
func NewCounter(src BitSource) *Counter {
	return &Counter{src: src}
}

// NextBits32 implements BitSource.
func (c *Counter) NextBits32() uint32 {
	c.count++
	return c.src.NextBits32()
}

// Count returns the number of draws so far.
func (c *Counter) Count() int { return c.count }

// Reset sets the count back to zero.
func (c *Counter) Reset() { c.count = 0 }
