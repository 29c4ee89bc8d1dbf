package biquad

import (
	"math"
	"testing"
)

const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

// lowpassish is a stable section with a known hand-traced impulse response.
func lowpassish() Coefficients {
	return Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
}

func TestProcessSample_ImpulseTrace(t *testing.T) {
	// n=0: y=0.25,  d0=0.5+0.05=0.55,   d1=0.25-0.01=0.24
	// n=1: y=0.55,  d0=0.11+0.24=0.35,  d1=-0.022
	// n=2: y=0.35,  d0=0.07-0.022=0.048
	// n=3: y=0.048
	s := NewSection(lowpassish())

	want := []float64{0.25, 0.55, 0.35, 0.048}
	for i, w := range want {
		var x float64
		if i == 0 {
			x = 1
		}

		if y := s.ProcessSample(x); !almostEqual(y, w, eps) {
			t.Errorf("sample %d: got %.15f, want %.15f", i, y, w)
		}
	}
}

func TestProcessBlock_MatchesSample(t *testing.T) {
	// Odd and even lengths exercise both the unrolled body and the tail.
	for _, n := range []int{0, 1, 2, 7, 8, 33} {
		input := make([]float64, n)
		for i := range input {
			input[i] = math.Sin(0.3*float64(i)) + 0.1*float64(i%3)
		}

		ref := NewSection(lowpassish())
		want := make([]float64, n)
		for i, x := range input {
			want[i] = ref.ProcessSample(x)
		}

		s := NewSection(lowpassish())
		got := append([]float64(nil), input...)
		s.ProcessBlock(got)

		for i := range got {
			if !almostEqual(got[i], want[i], eps) {
				t.Fatalf("n=%d sample %d: ProcessBlock=%.15f, ProcessSample=%.15f", n, i, got[i], want[i])
			}
		}

		if s.State() != ref.State() {
			t.Fatalf("n=%d: state mismatch %v vs %v", n, s.State(), ref.State())
		}
	}
}

func TestProcessBlockTo_LeavesSourceUntouched(t *testing.T) {
	src := []float64{1, 0.5, -0.3, 0.7, 0, -1, 0.2, 0.8}
	orig := append([]float64(nil), src...)

	ref := NewSection(lowpassish())
	s := NewSection(lowpassish())
	dst := make([]float64, len(src))
	s.ProcessBlockTo(dst, src)

	for i := range src {
		if src[i] != orig[i] {
			t.Fatalf("src modified at %d", i)
		}

		if want := ref.ProcessSample(src[i]); !almostEqual(dst[i], want, eps) {
			t.Fatalf("sample %d: got %v, want %v", i, dst[i], want)
		}
	}
}

func TestReset_ClearsState(t *testing.T) {
	s := NewSection(lowpassish())
	s.ProcessSample(1)
	s.ProcessSample(0.5)

	if s.State() == [2]float64{} {
		t.Fatal("state should be non-zero after processing")
	}

	s.Reset()

	if s.State() != [2]float64{} {
		t.Fatalf("state not zero after reset: %v", s.State())
	}
}

func TestState_SaveRestore(t *testing.T) {
	s := NewSection(lowpassish())
	s.ProcessSample(1)
	saved := s.State()

	y1 := s.ProcessSample(-0.3)
	s.SetState(saved)

	if y2 := s.ProcessSample(-0.3); y1 != y2 {
		t.Fatalf("restored state produced %v, want %v", y2, y1)
	}
}

func TestCoefficients_Stable(t *testing.T) {
	tests := []struct {
		name string
		c    Coefficients
		want bool
	}{
		{"passthrough", Coefficients{B0: 1}, true},
		{"lowpassish", lowpassish(), true},
		{"pole on unit circle", Coefficients{B0: 1, A2: 1}, false},
		{"a1 outside triangle", Coefficients{B0: 1, A1: -2.1, A2: 0.5}, false},
		{"nan", Coefficients{B0: math.NaN()}, false},
		{"inf feedback", Coefficients{B0: 1, A1: math.Inf(1)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Stable(); got != tt.want {
				t.Fatalf("Stable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProcessSample_DecaysAfterImpulse(t *testing.T) {
	s := NewSection(lowpassish())
	s.ProcessSample(1)

	for range 10000 {
		s.ProcessSample(0)
	}

	st := s.State()
	if math.Abs(st[0]) > 1e-100 || math.Abs(st[1]) > 1e-100 {
		t.Errorf("state did not decay: %v", st)
	}
}

func BenchmarkSection_ProcessBlock(b *testing.B) {
	s := NewSection(lowpassish())
	buf := make([]float64, 4096)

	b.SetBytes(int64(len(buf) * 8))
	b.ResetTimer()

	for range b.N {
		s.ProcessBlock(buf)
	}
}
