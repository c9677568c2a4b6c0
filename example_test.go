package seekgen_test

import (
	"fmt"

	"github.com/hupe1980/seekgen"
	"github.com/hupe1980/seekgen/pattern"
	"github.com/hupe1980/seekgen/rng"
)

// Example demonstrates a search and a generation through a Toolkit.
func Example() {
	metrics := &seekgen.BasicMetricsCollector{}
	tk := seekgen.New(seekgen.WithMetricsCollector(metrics))

	pos, ok := seekgen.Search(tk, pattern.Char('f'), "asdf asdf asdf")
	fmt.Println(pos, ok)

	coin := seekgen.Generate(tk, rng.NewSequence(7), rng.Bool{})
	fmt.Println(coin)

	stats := metrics.GetStats()
	fmt.Println(stats.SearchCount, stats.GenerateDraws)
	// Output:
	// 3 true
	// false
	// 1 1
}
