package loudness

import "github.com/cwbudde/algo-lkfs/dsp/core"

const (
	// KWeightingOffset is the constant term of the loudness formula. It
	// cancels the K-weighting gain at 997 Hz.
	KWeightingOffset = -0.691

	// AbsoluteGate is the absolute gating threshold in LKFS.
	AbsoluteGate = -70.0

	// RelativeGate is the relative gating threshold in LU below the mean of
	// the blocks that pass the absolute gate.
	RelativeGate = -10.0
)

// EnergyToLKFS converts a weighted mean-square energy to loudness.
// Zero maps to -Inf and negative energy to NaN.
func EnergyToLKFS(e float64) float64 {
	return KWeightingOffset + core.LinearPowerToDB(e)
}

// LKFSToEnergy is the inverse of [EnergyToLKFS].
func LKFSToEnergy(l float64) float64 {
	return core.DBPowerToLinear(l - KWeightingOffset)
}
