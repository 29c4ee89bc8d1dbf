// Package biquad provides the second-order IIR runtime used by the
// loudness weighting filters.
//
// A [Section] runs one Direct Form II Transposed biquad described by
// [Coefficients]. A [Chain] runs several sections in series, which is how
// the K-weighting pre-filter and RLB high-pass are applied.
//
// Coefficient design lives in dsp/filter/design; this package only
// evaluates and runs filters.
package biquad
