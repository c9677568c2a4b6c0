package rng

import "fmt"

// Algorithm names accepted by New.
const (
	AlgorithmPCG32      = "pcg32"
	AlgorithmXorShift32 = "xorshift32"
	AlgorithmLCG        = "lcg"
	AlgorithmConstant   = "constant"
)

// Config selects and seeds a deterministic bit source.
type Config struct {
	// Algorithm is one of the Algorithm* names. Empty means pcg32.
	Algorithm string

	// Seed is the initial seed. For constant it is the value returned.
	Seed uint64

	// Stream selects the PCG32 stream. Ignored by other algorithms.
	Stream uint64
}

// New creates the bit source described by cfg.
func New(cfg Config) (BitSource, error) {
	switch cfg.Algorithm {
	case "", AlgorithmPCG32:
		return NewPCG32(cfg.Seed, cfg.Stream), nil
	case AlgorithmXorShift32:
		return NewXorShift32(cfg.Seed), nil
	case AlgorithmLCG:
		return NewLCG(cfg.Seed), nil
	case AlgorithmConstant:
		return Constant(uint32(cfg.Seed)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, cfg.Algorithm)
	}
}

// Algorithms returns the names accepted by New.
func Algorithms() []string {
	return []string{AlgorithmPCG32, AlgorithmXorShift32, AlgorithmLCG, AlgorithmConstant}
}
