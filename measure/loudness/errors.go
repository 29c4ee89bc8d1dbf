package loudness

import "errors"

var (
	// ErrInvalidInput reports an empty waveform, mismatched channel lengths,
	// a non-finite sample or an unusable sample rate.
	ErrInvalidInput = errors.New("loudness: invalid input")

	// ErrUnsupportedLayout reports a channel count without a default
	// weighting, or explicit weights that do not fit the waveform.
	ErrUnsupportedLayout = errors.New("loudness: unsupported channel layout")

	// ErrInsufficientSignal reports that no block reached the absolute gate,
	// for example on digital silence.
	ErrInsufficientSignal = errors.New("loudness: no block above the absolute gate")

	// ErrSilentSignal reports a gated mean energy of exactly zero.
	ErrSilentSignal = errors.New("loudness: gated energy is zero")
)
