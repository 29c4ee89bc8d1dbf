// Package design computes biquad coefficients for the loudness weighting
// filters.
//
// [HighShelf] and [Highpass] are the RBJ cookbook designs. [KShelf] and
// [KHighpass] derive the two ITU-R BS.1770 K-weighting stages from their
// analog prototypes at any sample rate; at 48 kHz they reproduce the
// coefficients published in the recommendation.
package design
