package rng

import "fmt"

// BitSource produces successive unsigned 32-bit values.
//
// Each call advances the source's internal state. Implementations are not
// safe for concurrent use.
type BitSource interface {
	NextBits32() uint32
}

// FallibleSource is a source whose next value may be unavailable, for
// example a finite sequence or an entropy device.
type FallibleSource interface {
	TryNextBits32() (uint32, error)
}

// Producer builds one value of T from draws of any BitSource.
//
// Implementations must only use the BitSource interface and should draw
// exactly the bits they need.
type Producer[T any] interface {
	Generate(src BitSource) T
}

// ProducerFunc adapts a function to Producer.
type ProducerFunc[T any] func(src BitSource) T

// Generate calls f(src).
func (f ProducerFunc[T]) Generate(src BitSource) T { return f(src) }

// Generate produces one value of T from src.
func Generate[T any](src BitSource, p Producer[T]) T {
	return p.Generate(src)
}

// Fill produces len(dst) values from src into dst.
func Fill[T any](src BitSource, p Producer[T], dst []T) {
	for i := range dst {
		dst[i] = p.Generate(src)
	}
}

// TryGenerate produces one value of T from a fallible source.
//
// If any draw fails, the producer is stopped and the source's error is
// returned together with the zero value of T.
func TryGenerate[T any](src FallibleSource, p Producer[T]) (v T, err error) {
	g := &guard{src: src}

	defer func() {
		if r := recover(); r != nil {
			abort, ok := r.(guardAbort)
			if !ok {
				panic(r)
			}
			var zero T
			v, err = zero, abort.err
		}
	}()

	return p.Generate(g), nil
}

// guard adapts a FallibleSource to BitSource. A failed draw unwinds the
// producer back to TryGenerate, so no value is ever built on a placeholder.
type guard struct {
	src FallibleSource
}

type guardAbort struct {
	err error
}

func (g *guard) NextBits32() uint32 {
	v, err := g.src.TryNextBits32()
	if err != nil {
		panic(guardAbort{err: err})
	}
	return v
}

// Name returns a short label for a producer or source, suitable for logs.
func Name(v any) string {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", v)
}
