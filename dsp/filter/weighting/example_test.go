package weighting_test

import (
	"fmt"

	"github.com/cwbudde/algo-lkfs/dsp/filter/weighting"
)

func ExampleNew() {
	chain := weighting.New(weighting.TypeK, 48000)

	for _, freq := range []float64{100, 997, 4000} {
		fmt.Printf("%5.0f Hz: %+.2f dB\n", freq, chain.MagnitudeDB(freq, 48000))
	}
	// Output:
	//   100 Hz: -1.13 dB
	//   997 Hz: +0.69 dB
	//  4000 Hz: +3.97 dB
}
