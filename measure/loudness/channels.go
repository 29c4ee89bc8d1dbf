package loudness

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

const (
	frontWeight    = 1.0
	surroundWeight = 1.41 // +1.5 dB
	lfeWeight      = 0.0
)

// Default weights by channel count, in ITU-R BS.775 order.
var defaultWeights = [][]float64{
	1: {frontWeight},
	2: {frontWeight, frontWeight},
	3: {frontWeight, frontWeight, frontWeight},
	4: {frontWeight, frontWeight, frontWeight, surroundWeight},
	5: {frontWeight, frontWeight, frontWeight, surroundWeight, surroundWeight},
	6: {frontWeight, frontWeight, frontWeight, lfeWeight, surroundWeight, surroundWeight},
}

// ChannelWeights returns the default weights for a channel count:
//
//	1  M                     1.0
//	2  L R                   1.0 1.0
//	3  L R C                 1.0 1.0 1.0
//	4  L R C S               1.0 1.0 1.0 1.41
//	5  L R C Ls Rs           1.0 1.0 1.0 1.41 1.41
//	6  L R C LFE Ls Rs (5.1) 1.0 1.0 1.0 0    1.41 1.41
//
// Other counts return [ErrUnsupportedLayout]; pass explicit weights with
// [WithChannelWeights] instead.
func ChannelWeights(channels int) ([]float64, error) {
	if channels <= 0 || channels >= len(defaultWeights) {
		return nil, fmt.Errorf("%w: no default weights for %d channels", ErrUnsupportedLayout, channels)
	}

	return append([]float64(nil), defaultWeights[channels]...), nil
}

func resolveWeights(cfg Config, channels int) ([]float64, error) {
	if cfg.Weights == nil {
		return ChannelWeights(channels)
	}

	if len(cfg.Weights) != channels {
		return nil, fmt.Errorf("%w: %d weights for %d channels", ErrUnsupportedLayout, len(cfg.Weights), channels)
	}

	anyPositive := false

	for i, w := range cfg.Weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, fmt.Errorf("%w: weight %d is %v", ErrUnsupportedLayout, i, w)
		}

		anyPositive = anyPositive || w > 0
	}

	if !anyPositive {
		return nil, fmt.Errorf("%w: all channel weights are zero", ErrUnsupportedLayout)
	}

	return cfg.Weights, nil
}

// weightBlocks sums the per-channel energies of every block with weights.
func weightBlocks(blocks []Block, weights []float64) []float64 {
	z := make([]float64, len(blocks))
	for j := range blocks {
		z[j] = vecmath.DotProduct(weights, blocks[j].Energy)
	}

	return z
}
