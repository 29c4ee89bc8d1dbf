package loudness

import (
	"fmt"
	"math"
)

// Float is the sample type accepted by the measurement functions.
type Float interface {
	~float32 | ~float64
}

// Deinterleave splits a frame-interleaved buffer (L0 R0 L1 R1 ...) into
// channel-major form.
func Deinterleave[F Float](samples []F, channels int) ([][]F, error) {
	if channels <= 0 {
		return nil, fmt.Errorf("%w: %d channels", ErrInvalidInput, channels)
	}

	if len(samples)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples do not divide into %d channels", ErrInvalidInput, len(samples), channels)
	}

	frames := len(samples) / channels

	out := make([][]F, channels)
	for c := range out {
		out[c] = make([]F, frames)
		for i := range frames {
			out[c][i] = samples[i*channels+c]
		}
	}

	return out, nil
}

// validateShape checks the waveform and sample rate and returns the frame
// count.
func validateShape[F Float](waveform [][]F, sampleRate int) (int, error) {
	if sampleRate <= 0 {
		return 0, fmt.Errorf("%w: sample rate %d must be positive", ErrInvalidInput, sampleRate)
	}

	if len(waveform) == 0 {
		return 0, fmt.Errorf("%w: waveform has no channels", ErrInvalidInput)
	}

	n := len(waveform[0])
	if n == 0 {
		return 0, fmt.Errorf("%w: waveform is empty", ErrInvalidInput)
	}

	for c, ch := range waveform[1:] {
		if len(ch) != n {
			return 0, fmt.Errorf("%w: channel %d has %d samples, channel 0 has %d", ErrInvalidInput, c+1, len(ch), n)
		}
	}

	return n, nil
}

// toFloat64 copies one channel into a new float64 slice, rejecting NaN and
// Inf samples.
func toFloat64[F Float](ch []F) ([]float64, error) {
	out := make([]float64, len(ch))

	for i, v := range ch {
		x := float64(v)
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, fmt.Errorf("%w: non-finite sample %v at index %d", ErrInvalidInput, x, i)
		}

		out[i] = x
	}

	return out, nil
}
