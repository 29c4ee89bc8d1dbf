// Package level computes sample-domain level statistics of multichannel
// programme material: sample peak, RMS and DC offset.
package level

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-lkfs/dsp/core"
)

// Stats holds level statistics of one channel or a whole programme.
type Stats struct {
	Length   int
	Peak     float64 // max |x|
	PeakDBFS float64
	PeakPos  int
	RMS      float64
	RMSDBFS  float64
	DC       float64 // mean
	Clipped  int     // samples at or beyond full scale
}

func emptyStats() Stats {
	return Stats{PeakDBFS: math.Inf(-1), RMSDBFS: math.Inf(-1), PeakPos: -1}
}

// Calculate returns the statistics of one channel.
func Calculate(signal []float64) Stats {
	if len(signal) == 0 {
		return emptyStats()
	}

	peak := vecmath.MaxAbs(signal)
	rms := math.Sqrt(vecmath.DotProduct(signal, signal) / float64(len(signal)))

	s := Stats{
		Length:   len(signal),
		Peak:     peak,
		PeakDBFS: core.LinearToDB(peak),
		PeakPos:  -1,
		RMS:      rms,
		RMSDBFS:  core.LinearToDB(rms),
		DC:       DC(signal),
	}

	for i, x := range signal {
		a := math.Abs(x)
		if s.PeakPos < 0 && a == peak {
			s.PeakPos = i
		}

		if a >= 1 {
			s.Clipped++
		}
	}

	return s
}

// Programme combines channel statistics: the largest peak, the RMS of all
// samples and the mean DC. PeakPos is the frame index of the peak.
func Programme(channels [][]float64) Stats {
	if len(channels) == 0 {
		return emptyStats()
	}

	out := emptyStats()

	var power, dc float64

	for _, ch := range channels {
		s := Calculate(ch)
		if s.Length == 0 {
			continue
		}

		if out.PeakPos < 0 || s.Peak > out.Peak {
			out.Peak = s.Peak
			out.PeakPos = s.PeakPos
		}

		out.Length = s.Length
		out.Clipped += s.Clipped
		power += s.RMS * s.RMS
		dc += s.DC
	}

	if out.Length == 0 {
		return emptyStats()
	}

	n := float64(len(channels))
	out.PeakDBFS = core.LinearToDB(out.Peak)
	out.RMS = math.Sqrt(power / n)
	out.RMSDBFS = core.LinearToDB(out.RMS)
	out.DC = dc / n

	return out
}

// DC returns the mean of the signal using Kahan summation.
func DC(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sum, c float64
	for _, x := range signal {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(signal))
}
