// Package testutil provides testing utilities for seekgen.
//
// This package is intended for use in tests and benchmarks only.
// It generates reproducible random texts and value sequences for
// property-style tests of the pattern and rng packages.
//
// # Random Texts
//
//	rng := testutil.NewRNG(seed)
//	text := rng.Text(64, testutil.ASCII)         // 64 runes from the alphabet
//	text := rng.TextWithout(64, testutil.Mixed, 'x')
//
// # Value Sequences
//
//	values := rng.Uint32s(16)
package testutil
