package rng_test

import (
	"errors"
	"fmt"

	"github.com/hupe1980/seekgen/rng"
)

func ExampleBool() {
	src := rng.NewSequence(0, 1, 2, 3)

	out := make([]bool, 4)
	rng.Fill(src, rng.Bool{}, out)

	fmt.Println(out)
	// Output: [true false true false]
}

func ExampleNewPCG32() {
	src := rng.NewPCG32(42, 54)

	fmt.Printf("%#x\n", rng.Generate(src, rng.Uint32{}))
	// Output: 0xa15c02b7
}

func ExampleTryGenerate() {
	_, err := rng.TryGenerate(rng.NewSequence(1), rng.Uint64{})

	fmt.Println(errors.Is(err, rng.ErrSourceExhausted))
	// Output: true
}
