package seekgen

import "github.com/hupe1980/seekgen/rng"

var (
	// ErrSourceExhausted is returned by TryGenerate when a finite source
	// runs out. Alias of rng.ErrSourceExhausted.
	ErrSourceExhausted = rng.ErrSourceExhausted

	// ErrEntropyUnavailable is returned by TryGenerate when the entropy
	// source cannot be read. Alias of rng.ErrEntropyUnavailable.
	ErrEntropyUnavailable = rng.ErrEntropyUnavailable
)
