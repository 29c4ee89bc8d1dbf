package weighting

import (
	"github.com/cwbudde/algo-lkfs/dsp/filter/biquad"
	"github.com/cwbudde/algo-lkfs/dsp/filter/design"
)

// rbjShelfFreq is the shelf corner used by the RBJ approximation.
const rbjShelfFreq = 1500.0

// Type identifies a K-weighting design.
type Type int

const (
	// TypeK is the BS.1770 K-weighting filter, derived from its analog
	// prototype at the requested sample rate.
	TypeK Type = iota

	// TypeKRBJ approximates K-weighting with RBJ cookbook sections.
	TypeKRBJ
)

// String returns a short name for the design.
func (t Type) String() string {
	switch t {
	case TypeK:
		return "bs1770"
	case TypeKRBJ:
		return "rbj"
	default:
		return "unknown"
	}
}

// Valid reports whether t names a known design.
func (t Type) Valid() bool {
	return t == TypeK || t == TypeKRBJ
}

// ParseType maps the names returned by [Type.String] back to a Type.
func ParseType(name string) (Type, bool) {
	switch name {
	case "bs1770", "k", "":
		return TypeK, true
	case "rbj":
		return TypeKRBJ, true
	default:
		return 0, false
	}
}

// MinSampleRate returns the exclusive lower bound on the sample rate for
// which t can be designed: Nyquist must lie above the shelf corner.
func MinSampleRate(t Type) float64 {
	if t == TypeKRBJ {
		return 2 * rbjShelfFreq
	}

	return 2 * design.KShelfFreq
}

// Coefficients returns the shelf and high-pass stages of t at sampleRate.
func Coefficients(t Type, sampleRate float64) []biquad.Coefficients {
	switch t {
	case TypeK:
		return []biquad.Coefficients{design.KShelf(sampleRate), design.KHighpass(sampleRate)}
	case TypeKRBJ:
		return []biquad.Coefficients{design.KShelfRBJ(sampleRate), design.KHighpassRBJ(sampleRate)}
	default:
		panic("weighting: unknown type")
	}
}

// New returns a K-weighting [biquad.Chain] with zero state.
//
// Panics if sampleRate <= MinSampleRate(t) or t is unknown.
func New(t Type, sampleRate float64) *biquad.Chain {
	if sampleRate <= MinSampleRate(t) {
		panic("weighting: sample rate too low for K-weighting")
	}

	return biquad.NewChain(Coefficients(t, sampleRate))
}

// Filter applies a fresh K-weighting chain to samples and returns the
// filtered copy. samples is not modified.
func Filter(t Type, sampleRate float64, samples []float64) []float64 {
	out := make([]float64, len(samples))
	New(t, sampleRate).ProcessBlockTo(out, samples)

	return out
}
