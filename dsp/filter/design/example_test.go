package design_test

import (
	"fmt"

	"github.com/cwbudde/algo-lkfs/dsp/filter/design"
)

func ExampleKShelf() {
	c := design.KShelf(48000)
	fmt.Printf("b0=%.5f a1=%.5f a2=%.5f\n", c.B0, c.A1, c.A2)
	// Output:
	// b0=1.53512 a1=-1.69066 a2=0.73248
}
