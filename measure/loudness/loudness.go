package loudness

import (
	"fmt"
	"math"
	"sync"

	"github.com/cwbudde/algo-lkfs/dsp/filter/weighting"
)

// Result is a completed integrated loudness measurement.
type Result struct {
	// Integrated is the gated loudness in LKFS.
	Integrated float64

	// Blocks is the number of gating blocks in the programme.
	Blocks int

	// AbsoluteGated counts blocks at or above the absolute gate.
	AbsoluteGated int

	// RelativeGated counts blocks passing both gates.
	RelativeGated int

	// RelativeThreshold is the relative gate in LKFS.
	RelativeThreshold float64

	// RelativeFallback is set when no block passed the relative gate and
	// Integrated was taken from the absolute-gate mean instead.
	RelativeFallback bool

	// Weights are the channel weights that were applied.
	Weights []float64
}

// Integrated returns the BS.1770-4 integrated loudness of waveform in LKFS.
//
// waveform is channel-major and every channel must have the same, non-zero
// length. The result has the precision of the sample type.
func Integrated[F Float](waveform [][]F, sampleRate int, opts ...Option) (F, error) {
	res, err := Measure(waveform, sampleRate, opts...)
	if err != nil {
		return 0, err
	}

	return F(res.Integrated), nil
}

// Measure runs the full measurement and reports the gating details along
// with the loudness.
func Measure[F Float](waveform [][]F, sampleRate int, opts ...Option) (Result, error) {
	blocks, weights, err := measureBlocks(waveform, sampleRate, opts)
	if err != nil {
		return Result{}, err
	}

	z := weightBlocks(blocks, weights)
	if j := firstNonFinite(z); j >= 0 {
		return Result{}, fmt.Errorf("%w: weighted energy of block %d overflows", ErrInvalidInput, j)
	}

	g, err := gate(z)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %d blocks measured", err, len(blocks))
	}

	if g.mean == 0 {
		return Result{}, ErrSilentSignal
	}

	return Result{
		Integrated:        EnergyToLKFS(g.mean),
		Blocks:            len(blocks),
		AbsoluteGated:     g.absoluteGated,
		RelativeGated:     g.relativeGated,
		RelativeThreshold: g.relativeThreshold,
		RelativeFallback:  g.relativeFallback,
		Weights:           weights,
	}, nil
}

// BlockEnergies returns the per-channel mean-square energy of every gating
// block of the K-weighted waveform, before channel weighting and gating.
func BlockEnergies[F Float](waveform [][]F, sampleRate int, opts ...Option) ([]Block, error) {
	blocks, _, err := measureBlocks(waveform, sampleRate, opts)

	return blocks, err
}

func measureBlocks[F Float](waveform [][]F, sampleRate int, opts []Option) ([]Block, []float64, error) {
	cfg := ApplyOptions(opts...)

	n, err := validateShape(waveform, sampleRate)
	if err != nil {
		return nil, nil, err
	}

	weights, err := resolveWeights(cfg, len(waveform))
	if err != nil {
		return nil, nil, err
	}

	if !cfg.Filter.Valid() {
		return nil, nil, fmt.Errorf("%w: unknown K-weighting design %d", ErrInvalidInput, int(cfg.Filter))
	}

	if float64(sampleRate) <= weighting.MinSampleRate(cfg.Filter) {
		return nil, nil, fmt.Errorf("%w: sample rate %d Hz is too low for %v K-weighting",
			ErrInvalidInput, sampleRate, cfg.Filter)
	}

	size, hop, count := blockLayout(n, sampleRate)

	energies, err := filterChannels(waveform, sampleRate, cfg.Filter, size, hop, count)
	if err != nil {
		return nil, nil, err
	}

	return assembleBlocks(energies, size, hop, count), weights, nil
}

// filterChannels K-weights every channel and computes its block energies.
// Channels are independent, so each runs in its own goroutine with its own
// filter state.
func filterChannels[F Float](waveform [][]F, sampleRate int, t weighting.Type, size, hop, count int) ([][]float64, error) {
	energies := make([][]float64, len(waveform))
	errs := make([]error, len(waveform))

	var wg sync.WaitGroup

	for c := range waveform {
		wg.Add(1)

		go func(c int) {
			defer wg.Done()

			samples, err := toFloat64(waveform[c])
			if err != nil {
				errs[c] = fmt.Errorf("channel %d: %w", c, err)
				return
			}

			weighting.New(t, float64(sampleRate)).ProcessBlock(samples)
			e := channelEnergies(samples, size, hop, count)
			if j := firstNonFinite(e); j >= 0 {
				errs[c] = fmt.Errorf("channel %d: %w: energy of block %d overflows", c, ErrInvalidInput, j)
				return
			}

			energies[c] = e
		}(c)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return energies, nil
}

// firstNonFinite returns the index of the first NaN or Inf in x, or -1.
func firstNonFinite(x []float64) int {
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return i
		}
	}

	return -1
}
