package loudness

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-lkfs/dsp/core"
)

// gateResult is the outcome of two-stage gating over weighted block
// energies.
type gateResult struct {
	mean              float64 // mean energy of the blocks passing both gates
	absoluteGated     int
	relativeGated     int
	relativeThreshold float64 // LKFS
	relativeFallback  bool
}

// gate applies the absolute and then the relative gate to z.
//
// Both thresholds are inclusive. The relative threshold is computed once
// from the absolute survivors and applied to that same set. If nothing
// passes the relative gate the absolute-gate mean is used.
func gate(z []float64) (gateResult, error) {
	absEnergy := LKFSToEnergy(AbsoluteGate)

	mask := make([]float64, len(z))
	absCount := 0

	for j, e := range z {
		if e >= absEnergy {
			mask[j] = 1
			absCount++
		}
	}

	if absCount == 0 {
		return gateResult{}, ErrInsufficientSignal
	}

	absMean := stat.Mean(z, mask)

	// L(absMean) + RelativeGate, expressed directly in the energy domain.
	relEnergy := absMean * core.DBPowerToLinear(RelativeGate)

	res := gateResult{
		absoluteGated:     absCount,
		relativeThreshold: EnergyToLKFS(relEnergy),
	}

	for j, e := range z {
		if mask[j] == 1 && e < relEnergy {
			mask[j] = 0
		}
	}

	res.relativeGated = int(floats.Sum(mask))

	if res.relativeGated == 0 {
		res.relativeFallback = true
		res.mean = absMean

		return res, nil
	}

	res.mean = stat.Mean(z, mask)

	return res, nil
}
