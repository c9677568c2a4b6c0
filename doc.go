// Package seekgen provides typed pattern search and seeded value generation.
//
// The work is done by two independent packages:
//
//   - pattern: every pattern variant searches a text and declares its own
//     match type (Char → Position, Substring → Span, Occurrences → bitmap).
//   - rng: a BitSource produces 32-bit values; a Producer[T] turns draws from
//     any BitSource into a T (Bool, Bounded, Float64, Choice, Subset).
//
// The tape package records draws so that a run can be replayed exactly.
//
// # Quick Start
//
//	pos, ok := pattern.Char('f').Search("asdf asdf asdf") // 3, true
//
//	src := rng.NewPCG32(42, 54)
//	coin := rng.Generate(src, rng.Bool{})
//
// # Observability
//
// A Toolkit runs the same operations and reports them to a structured logger
// and a metrics collector:
//
//	metrics := &seekgen.BasicMetricsCollector{}
//	tk := seekgen.New(
//	    seekgen.WithLogger(seekgen.NewTextLogger(slog.LevelDebug)),
//	    seekgen.WithMetricsCollector(metrics),
//	)
//
//	pos, ok := seekgen.Search(tk, pattern.Char('f'), "asdf")
//	v, err := seekgen.TryGenerate(tk, rng.Entropy{}, rng.Uint64{})
//
// # Concurrency
//
// Searches are pure and may run concurrently. Bit sources are not safe for
// concurrent use; give each goroutine its own source or wrap a shared one in
// rng.Locked. A Toolkit is safe for concurrent use if its logger and metrics
// collector are.
package seekgen
