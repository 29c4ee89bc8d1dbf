package loudness

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-lkfs/internal/testutil"
)

func TestChannelWeights(t *testing.T) {
	tests := map[int][]float64{
		1: {1},
		2: {1, 1},
		3: {1, 1, 1},
		4: {1, 1, 1, 1.41},
		5: {1, 1, 1, 1.41, 1.41},
		6: {1, 1, 1, 0, 1.41, 1.41},
	}

	for n, want := range tests {
		got, err := ChannelWeights(n)
		if err != nil {
			t.Fatalf("ChannelWeights(%d): %v", n, err)
		}

		testutil.RequireSliceNearlyEqual(t, got, want, 0)
	}

	for _, n := range []int{-1, 0, 7, 8, 24} {
		if _, err := ChannelWeights(n); !errors.Is(err, ErrUnsupportedLayout) {
			t.Errorf("ChannelWeights(%d): err = %v, want ErrUnsupportedLayout", n, err)
		}
	}
}

func TestChannelWeights_ReturnsCopy(t *testing.T) {
	w, _ := ChannelWeights(2)
	w[0] = 42

	again, _ := ChannelWeights(2)
	if again[0] != 1 {
		t.Fatalf("default table modified: %v", again)
	}
}

func TestWithChannelWeights_ClonesSlice(t *testing.T) {
	w := []float64{1, 2}
	cfg := ApplyOptions(WithChannelWeights(w))
	w[0] = 5

	if cfg.Weights[0] != 1 {
		t.Fatalf("config aliases caller slice: %v", cfg.Weights)
	}
}

func TestWeightBlocks(t *testing.T) {
	blocks := []Block{
		{Energy: []float64{1, 2, 3}},
		{Energy: []float64{0, 0, 1}},
	}

	got := weightBlocks(blocks, []float64{1, 0.5, 2})

	testutil.RequireSliceNearlyEqual(t, got, []float64{8, 2}, 1e-15)
}
