package rng

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
)

// Entropy draws values from the operating system's secure random source.
//
// Reading entropy can fail, so Entropy only implements FallibleSource; use it
// with TryGenerate, or to seed a deterministic source via SeedFromEntropy.
type Entropy struct {
	// Reader overrides the entropy reader. Defaults to crypto/rand.Reader.
	Reader io.Reader
}

var _ FallibleSource = Entropy{}

// TryNextBits32 implements FallibleSource.
func (e Entropy) TryNextBits32() (uint32, error) {
	var buf [4]byte
	if err := e.read(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(buf[:]), nil
}

func (e Entropy) read(buf []byte) error {
	r := e.Reader
	if r == nil {
		r = rand.Reader
	}
	if _, err := io.ReadFull(r, buf); err != nil {
		return fmt.Errorf("%w: %w", ErrEntropyUnavailable, err)
	}
	return nil
}

func (e Entropy) String() string { return "entropy" }

// SeedFromEntropy returns a 64-bit seed read from the operating system's
// secure random source.
func SeedFromEntropy() (uint64, error) {
	var buf [8]byte
	if err := (Entropy{}).read(buf[:]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(buf[:]), nil
}
