package testutil

import "testing"

func TestMaxAbsDiff(t *testing.T) {
	d, err := MaxAbsDiff([]float64{1, 2, 3}, []float64{1.1, 2, 2.5})
	if err != nil {
		t.Fatal(err)
	}

	if d != 0.5 {
		t.Fatalf("MaxAbsDiff = %v, want 0.5", d)
	}

	if _, err := MaxAbsDiff([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatal("expected length mismatch error")
	}
}

func TestRequireClose_Passes(t *testing.T) {
	RequireClose(t, -23.05, -23.0, 0, 0.1)
	RequireClose(t, -69.9, -69.5, 0.01, 0.1)
}
