package testutil

import (
	"math"
	"math/rand"

	"github.com/cwbudde/algo-lkfs/dsp/core"
)

// DeterministicSine generates a sine wave starting at phase 0.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate

	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out
}

// DeterministicNoise generates uniform white noise in [-amplitude, amplitude)
// from a fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))

	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out
}

// Segment is one level step of a tone sequence.
type Segment struct {
	LevelDBFS float64 // peak level; math.Inf(-1) for digital silence
	Seconds   float64
}

// ToneSequence generates a phase-continuous sine whose peak level steps
// through segs. Segment lengths are rounded to whole samples.
func ToneSequence(freqHz, sampleRate float64, segs ...Segment) []float64 {
	total := 0
	for _, s := range segs {
		total += int(math.Round(s.Seconds * sampleRate))
	}

	out := make([]float64, 0, total)
	step := 2 * math.Pi * freqHz / sampleRate

	for _, s := range segs {
		amp := core.DBToLinear(s.LevelDBFS)
		n := int(math.Round(s.Seconds * sampleRate))

		for range n {
			out = append(out, amp*math.Sin(step*float64(len(out))))
		}
	}

	return out
}

// Channels returns n channels that share the same backing samples.
// Callers must not modify the result.
func Channels(samples []float64, n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = samples
	}

	return out
}

// Scale returns a copy of samples multiplied by gain.
func Scale(samples []float64, gain float64) []float64 {
	out := make([]float64, len(samples))
	for i, v := range samples {
		out[i] = v * gain
	}

	return out
}
