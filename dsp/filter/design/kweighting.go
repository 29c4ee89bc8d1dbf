package design

import (
	"math"

	"github.com/cwbudde/algo-lkfs/dsp/filter/biquad"
)

// Analog prototype parameters fitted to the BS.1770 48 kHz coefficients.
const (
	kShelfFreq   = 1681.974450955533
	kShelfGainDB = 3.999843853973347
	kShelfQ      = 0.7071752369554196
	kShelfVb     = 0.4996667741545416 // band gain exponent of the shelf numerator

	kHighpassFreq = 38.13547087602444
	kHighpassQ    = 0.5003270373238773
)

// KShelfFreq is the corner frequency of the K-weighting pre-filter. A sample
// rate must place Nyquist above it for [KShelf] to be meaningful.
const KShelfFreq = kShelfFreq

// KShelf returns the first K-weighting stage (the "pre-filter"), a high
// shelf of about +4 dB modelling the acoustic effect of the head.
//
// The bilinear transform is prewarped at the shelf frequency, so the
// response is the same at every sample rate up to warping near Nyquist.
// Returns zero coefficients if sampleRate/2 <= KShelfFreq.
func KShelf(sampleRate float64) biquad.Coefficients {
	if _, ok := normalizedW0(kShelfFreq, sampleRate); !ok {
		return biquad.Coefficients{}
	}

	k := math.Tan(math.Pi * kShelfFreq / sampleRate)
	k2 := k * k
	vh := math.Pow(10, kShelfGainDB/20)
	vb := math.Pow(vh, kShelfVb)

	a0 := 1 + k/kShelfQ + k2

	return biquad.Coefficients{
		B0: (vh + vb*k/kShelfQ + k2) / a0,
		B1: 2 * (k2 - vh) / a0,
		B2: (vh - vb*k/kShelfQ + k2) / a0,
		A1: 2 * (k2 - 1) / a0,
		A2: (1 - k/kShelfQ + k2) / a0,
	}
}

// KHighpass returns the second K-weighting stage, the revised
// low-frequency B-curve (RLB) high-pass.
//
// The numerator is left unnormalized as [1, -2, 1], matching the published
// coefficients. Returns zero coefficients for an invalid sample rate.
func KHighpass(sampleRate float64) biquad.Coefficients {
	if _, ok := normalizedW0(kHighpassFreq, sampleRate); !ok {
		return biquad.Coefficients{}
	}

	k := math.Tan(math.Pi * kHighpassFreq / sampleRate)
	k2 := k * k
	a0 := 1 + k/kHighpassQ + k2

	return biquad.Coefficients{
		B0: 1,
		B1: -2,
		B2: 1,
		A1: 2 * (k2 - 1) / a0,
		A2: (1 - k/kHighpassQ + k2) / a0,
	}
}

// KShelfRBJ and KHighpassRBJ approximate the two K-weighting stages with
// RBJ cookbook sections (1500 Hz / +4 dB / Q 1/sqrt2 shelf and 38 Hz / Q 0.5
// high-pass).
func KShelfRBJ(sampleRate float64) biquad.Coefficients {
	return HighShelf(1500, 4, defaultQ, sampleRate)
}

// KHighpassRBJ is the high-pass half of the RBJ approximation.
func KHighpassRBJ(sampleRate float64) biquad.Coefficients {
	return Highpass(38, 0.5, sampleRate)
}
