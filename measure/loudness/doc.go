// Package loudness measures integrated loudness per ITU-R BS.1770-4.
//
// The measurement is a forward pipeline over a whole, already decoded
// programme:
//
//  1. K-weighting of each channel ([weighting.TypeK] by default).
//  2. Mean-square energy per channel over 400 ms blocks with 75 % overlap.
//  3. Weighted sum across channels (1.0 front/centre, 1.41 surround,
//     LFE excluded).
//  4. Absolute gate at -70 LKFS, then a relative gate 10 LU below the
//     mean of the absolute survivors.
//  5. L = -0.691 + 10*log10(mean gated energy).
//
// Waveforms are channel-major: waveform[c][n] is sample n of channel c.
// Use [Deinterleave] for frame-interleaved buffers.
//
// Streaming measurement, true peak and loudness range are not provided.
package loudness
