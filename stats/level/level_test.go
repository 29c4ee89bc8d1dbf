package level

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-lkfs/internal/testutil"
)

func TestCalculate_Sine(t *testing.T) {
	// 100 whole cycles, so the RMS is exactly amp/sqrt(2) up to rounding.
	sig := testutil.DeterministicSine(480, 48000, 0.5, 10000)

	s := Calculate(sig)

	if s.Length != len(sig) {
		t.Fatalf("Length = %d", s.Length)
	}

	testutil.RequireClose(t, s.Peak, 0.5, 0, 1e-12)
	testutil.RequireClose(t, s.PeakDBFS, 20*math.Log10(0.5), 0, 1e-9)
	testutil.RequireClose(t, s.RMS, 0.5/math.Sqrt2, 0, 1e-9)
	testutil.RequireClose(t, s.RMSDBFS, 20*math.Log10(0.5/math.Sqrt2), 0, 1e-6)
	testutil.RequireClose(t, s.DC, 0, 0, 1e-12)

	if s.Clipped != 0 {
		t.Errorf("Clipped = %d", s.Clipped)
	}

	if math.Abs(sig[s.PeakPos]) != s.Peak {
		t.Errorf("PeakPos %d holds %v, peak %v", s.PeakPos, sig[s.PeakPos], s.Peak)
	}
}

func TestCalculate_Known(t *testing.T) {
	s := Calculate([]float64{0.25, -1, 0.5, 1.5})

	if s.Peak != 1.5 || s.PeakPos != 3 {
		t.Errorf("peak %v at %d", s.Peak, s.PeakPos)
	}

	if s.Clipped != 2 {
		t.Errorf("Clipped = %d, want 2", s.Clipped)
	}

	testutil.RequireClose(t, s.DC, 0.3125, 0, 1e-15)
	testutil.RequireClose(t, s.RMS, math.Sqrt((0.0625+1+0.25+2.25)/4), 0, 1e-15)
}

func TestCalculate_Empty(t *testing.T) {
	s := Calculate(nil)
	if s.Length != 0 || !math.IsInf(s.PeakDBFS, -1) || !math.IsInf(s.RMSDBFS, -1) || s.PeakPos != -1 {
		t.Fatalf("empty stats = %+v", s)
	}
}

func TestCalculate_Silence(t *testing.T) {
	s := Calculate(make([]float64, 100))
	if !math.IsInf(s.PeakDBFS, -1) || s.PeakPos != 0 {
		t.Fatalf("silence stats = %+v", s)
	}
}

func TestProgramme(t *testing.T) {
	left := []float64{0.5, -0.5, 0.5, -0.5}
	right := []float64{0, 0.25, -0.8, 0}

	s := Programme([][]float64{left, right})

	if s.Peak != 0.8 || s.PeakPos != 2 {
		t.Errorf("peak %v at %d", s.Peak, s.PeakPos)
	}

	wantPower := (0.25 + (0.0625+0.64)/4) / 2
	testutil.RequireClose(t, s.RMS, math.Sqrt(wantPower), 0, 1e-15)
	testutil.RequireClose(t, s.DC, (0+(-0.55/4))/2, 0, 1e-15)

	if s.Length != 4 {
		t.Errorf("Length = %d", s.Length)
	}
}

func TestProgramme_Empty(t *testing.T) {
	for _, in := range [][][]float64{nil, {{}, {}}} {
		if s := Programme(in); s.Length != 0 || !math.IsInf(s.PeakDBFS, -1) {
			t.Errorf("Programme(%v) = %+v", in, s)
		}
	}
}

func TestDC(t *testing.T) {
	sig := testutil.DeterministicNoise(3, 1, 1000)

	var want float64
	for _, x := range sig {
		want += x
	}

	testutil.RequireClose(t, DC(sig), want/1000, 0, 1e-12)

	if DC(nil) != 0 {
		t.Fatal("DC(nil) != 0")
	}
}
