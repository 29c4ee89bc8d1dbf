package loudness

import (
	"slices"

	"github.com/cwbudde/algo-lkfs/dsp/filter/weighting"
)

// Config controls a measurement.
type Config struct {
	// Weights overrides the per-channel weights derived from the channel
	// count. nil selects [ChannelWeights].
	Weights []float64

	// Filter selects the K-weighting design.
	Filter weighting.Type
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the BS.1770-4 configuration.
func DefaultConfig() Config {
	return Config{Filter: weighting.TypeK}
}

// WithChannelWeights sets explicit per-channel weights, one per channel in
// waveform order. Use it for layouts beyond 5.1 or non-standard orders.
func WithChannelWeights(weights []float64) Option {
	return func(cfg *Config) {
		cfg.Weights = slices.Clone(weights)
	}
}

// WithKWeighting selects the K-weighting design.
func WithKWeighting(t weighting.Type) Option {
	return func(cfg *Config) {
		cfg.Filter = t
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
