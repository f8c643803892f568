package engine

// ============================================================================
// SUMMARY OPTIONS — functional options for BuildSummary
// ============================================================================

// Option configures summary construction.
type Option func(*config)

type config struct {
	TopRegionLimit int
}

// WithTopRegionLimit caps the region ranking. The dashboard default is 10.
func WithTopRegionLimit(n int) Option {
	return func(c *config) {
		c.TopRegionLimit = n
	}
}

func applyOptions(opts []Option) *config {
	cfg := &config{TopRegionLimit: 10}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
