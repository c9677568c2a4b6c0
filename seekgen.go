package seekgen

import (
	"time"

	"github.com/hupe1980/seekgen/pattern"
	"github.com/hupe1980/seekgen/rng"
)

// Toolkit runs searches and generations and reports them to a logger and a
// metrics collector.
type Toolkit struct {
	logger  *Logger
	metrics MetricsCollector
}

// New creates a Toolkit. Without options it logs nothing and collects no
// metrics.
func New(optFns ...Option) *Toolkit {
	opts := options{
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	return &Toolkit{
		logger:  opts.logger,
		metrics: opts.metricsCollector,
	}
}

// Logger returns the toolkit's logger.
func (tk *Toolkit) Logger() *Logger { return tk.logger }

// Search reports the first match of p in text.
func Search[M any](tk *Toolkit, p pattern.Pattern[M], text string) (M, bool) {
	start := time.Now()
	m, ok := p.Search(text)
	elapsed := time.Since(start)

	tk.metrics.RecordSearch(ok, elapsed)
	tk.logger.LogSearch(pattern.Name(p), len(text), ok, elapsed)

	return m, ok
}

// Generate produces one value of T from src.
func Generate[T any](tk *Toolkit, src rng.BitSource, p rng.Producer[T]) T {
	start := time.Now()
	counter := rng.NewCounter(src)
	v := p.Generate(counter)

	tk.metrics.RecordGenerate(counter.Count(), time.Since(start), nil)
	tk.logger.LogGenerate(rng.Name(p), counter.Count(), nil)

	return v
}

// TryGenerate produces one value of T from a fallible source. See
// rng.TryGenerate.
func TryGenerate[T any](tk *Toolkit, src rng.FallibleSource, p rng.Producer[T]) (T, error) {
	start := time.Now()
	counter := &fallibleCounter{src: src}
	v, err := rng.TryGenerate(counter, p)

	tk.metrics.RecordGenerate(counter.n, time.Since(start), err)
	tk.logger.LogGenerate(rng.Name(p), counter.n, err)

	return v, err
}

type fallibleCounter struct {
	src rng.FallibleSource
	n   int
}

func (c *fallibleCounter) TryNextBits32() (uint32, error) {
	v, err := c.src.TryNextBits32()
	if err == nil {
		c.n++
	}
	return v, err
}
