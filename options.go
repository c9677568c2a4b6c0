package seekgen

type options struct {
	logger           *Logger
	metricsCollector MetricsCollector
}

// Option configures a Toolkit.
type Option func(*options)

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &seekgen.BasicMetricsCollector{}
//	tk := seekgen.New(seekgen.WithMetricsCollector(metrics))
//	// ... use tk ...
//	stats := metrics.GetStats()
//	fmt.Printf("Searches: %d, hits: %d\n", stats.SearchCount, stats.SearchHits)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}
