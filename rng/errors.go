package rng

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceExhausted is returned when a finite source has no values left.
	ErrSourceExhausted = errors.New("source exhausted")

	// ErrEntropyUnavailable is returned when the operating system entropy
	// source cannot be read.
	ErrEntropyUnavailable = errors.New("entropy unavailable")

	// ErrUnknownAlgorithm is returned by New for an unsupported algorithm name.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrEmptyChoice is returned by NewChoice without options.
	ErrEmptyChoice = errors.New("choice needs at least one option")

	// ErrInvalidSubset is returned by NewSubset when k exceeds n.
	ErrInvalidSubset = errors.New("subset size exceeds population")
)

// ExhaustedError reports how many values a finite source handed out before
// it ran dry.
//
// It unwraps to ErrSourceExhausted.
type ExhaustedError struct {
	Consumed int
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("source exhausted after %d values", e.Consumed)
}

func (e *ExhaustedError) Unwrap() error { return ErrSourceExhausted }
