package testutil

import (
	"math"
	"testing"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	if len(s) != 48 {
		t.Fatalf("len = %d, want 48", len(s))
	}

	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}

	if math.Abs(s[12]-1) > 1e-12 {
		t.Fatalf("s[12] = %v, want peak 1", s[12])
	}
}

func TestDeterministicNoise_Reproducible(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	c := DeterministicNoise(43, 1.0, 64)

	same := true
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}

		if a[i] != c[i] {
			same = false
		}

		if math.Abs(a[i]) > 1 {
			t.Fatalf("a[%d] = %v out of range", i, a[i])
		}
	}

	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestToneSequence_LevelsAndLength(t *testing.T) {
	sr := 8000.0
	s := ToneSequence(1000, sr,
		Segment{LevelDBFS: -20, Seconds: 0.5},
		Segment{LevelDBFS: math.Inf(-1), Seconds: 0.25},
		Segment{LevelDBFS: 0, Seconds: 0.5},
	)

	// 4000 + 2000 + 4000 samples.
	if len(s) != 10000 {
		t.Fatalf("len = %d, want 10000", len(s))
	}

	// 1 kHz at 8 kHz peaks at sample 2 (mod 8).
	if got := s[2]; math.Abs(got-0.1) > 1e-12 {
		t.Fatalf("first segment peak = %v, want 0.1", got)
	}

	for i := 4000; i < 6000; i++ {
		if s[i] != 0 {
			t.Fatalf("silent segment sample %d = %v", i, s[i])
		}
	}

	if got := s[6002]; math.Abs(got-1) > 1e-9 {
		t.Fatalf("last segment peak = %v, want 1", got)
	}
}

func TestChannelsAndScale(t *testing.T) {
	base := []float64{1, -2, 3}

	ch := Channels(base, 3)
	if len(ch) != 3 || &ch[2][0] != &base[0] {
		t.Fatal("Channels should share the source slice")
	}

	scaled := Scale(base, 0.5)
	RequireSliceNearlyEqual(t, scaled, []float64{0.5, -1, 1.5}, 0)

	if base[1] != -2 {
		t.Fatal("Scale modified its input")
	}
}
