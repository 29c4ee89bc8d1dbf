// Package weighting provides the K-weighting filter of ITU-R BS.1770.
//
// K-weighting is a cascade of two biquads: a high-frequency shelf of about
// +4 dB that models the acoustic effect of the head, followed by the
// revised low-frequency B-curve (RLB) high-pass that models the outer and
// middle ear. Together they shape the signal before mean-square energy is
// measured for loudness.
//
// Two designs are available:
//
//   - [TypeK]: the analog prototype of the published 48 kHz coefficients,
//     transformed at the actual sample rate. Exact at 48 kHz.
//   - [TypeKRBJ]: RBJ cookbook shelf (1500 Hz, +4 dB) and high-pass
//     (38 Hz, Q 0.5), a common approximation within a few hundredths of a
//     dB over the audio band.
//
// The returned [biquad.Chain] holds per-channel state; use one chain per
// channel.
package weighting
