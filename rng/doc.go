// Package rng implements seeded, deterministic value generation.
//
// Generation is split across two cooperating capabilities:
//
//   - A BitSource produces successive 32-bit values and owns all generator
//     state (PCG32, XorShift32, LCG, or a fixed Sequence in tests).
//   - A Producer[T] turns draws from any BitSource into one value of T
//     (Bool, Bounded, Float64, Choice, Subset, ...).
//
// Producers only ever call BitSource.NextBits32, so any producer works with
// any source and sources can be swapped without touching producer logic:
//
//	src := rng.NewPCG32(42, 54)
//	coin := rng.Generate(src, rng.Bool{})
//	die := rng.Generate(src, rng.Bounded{N: 6}) + 1
//
// A fixed sequence makes producer behavior reproducible in tests:
//
//	src := rng.NewSequence(0, 1, 2, 3)
//	out := make([]bool, 4)
//	rng.Fill(src, rng.Bool{}, out) // [true false true false]
//
// # Failure
//
// Sources that can run out or become unavailable implement FallibleSource.
// TryGenerate surfaces their failure as an error instead of a value built from
// a default draw:
//
//	v, err := rng.TryGenerate(rng.Entropy{}, rng.Uint64{})
//	if errors.Is(err, rng.ErrEntropyUnavailable) { ... }
//
// # Concurrency
//
// Sources are not safe for concurrent use. Give each goroutine its own
// source, or share one through Locked.
package rng
