package fft

import (
	"math"
	"math/rand"
	"testing"
)

// packedRef computes the packed spectrum layout of a real input through
// the reference DFT.
func packedRef(in []float64) []float64 {
	n := len(in)
	cin := make([]complex128, n)

	for i, x := range in {
		cin[i] = complex(x, 0)
	}

	spec := dftRef(cin, true)
	out := make([]float64, n)
	out[0] = real(spec[0])

	for k := 1; k <= (n-1)/2; k++ {
		out[2*k-1] = real(spec[k])
		out[2*k] = imag(spec[k])
	}

	if n&1 == 0 {
		out[n-1] = real(spec[n/2])
	}

	return out
}

func maxDistF(a, b []float64) float64 {
	worst := 0.0
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > worst {
			worst = d
		}
	}

	return worst
}

func TestRPlanPackedSpectrum(t *testing.T) {
	// radix 2*3, checked against the known spectrum of [1..6]
	plan, err := NewRPlan[float64](6)
	if err != nil {
		t.Fatal(err)
	}

	data := []float64{1, 2, 3, 4, 5, 6}
	plan.Forward(data, 1)

	want := []float64{21, -3, 5.196152422706632, -3, 1.7320508075688772, -3}
	for i := range want {
		if math.Abs(data[i]-want[i]) > 1e-13 {
			t.Fatalf("packed[%d] = %v, want %v", i, data[i], want[i])
		}
	}
}

func TestRPlanMatchesDFT(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	lengths := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 14, 15, 16, 18,
		20, 21, 24, 25, 27, 28, 30, 32, 35, 40, 44, 45, 48, 49, 50, 55, 60,
		63, 64, 77, 98, 100, 121, 125, 128, 147, 210}

	for _, n := range lengths {
		plan, err := NewRPlan[float64](n)
		if err != nil {
			t.Fatalf("NewRPlan(%d): %v", n, err)
		}

		in := make([]float64, n)
		for i := range in {
			in[i] = rng.Float64()*2 - 1
		}

		data := append([]float64(nil), in...)
		plan.Forward(data, 1)

		tol := 1e-12 * float64(n)
		if d := maxDistF(data, packedRef(in)); d > tol {
			t.Errorf("n=%d forward packed: max deviation %g", n, d)
		}
	}
}

func TestRPlanRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(4))

	for n := 1; n <= 150; n++ {
		plan, err := NewRPlan[float64](n)
		if err != nil {
			t.Fatalf("NewRPlan(%d): %v", n, err)
		}

		in := make([]float64, n)
		for i := range in {
			in[i] = rng.Float64()*2 - 1
		}

		data := append([]float64(nil), in...)
		plan.Forward(data, 1)
		plan.Backward(data, 1/float64(n))

		tol := 20 * float64(n) * 2.22e-16
		if d := maxDistF(data, in); d > tol {
			t.Errorf("n=%d real round trip: max deviation %g > %g", n, d, tol)
		}
	}
}

func TestRPlanFloat32RoundTrip(t *testing.T) {
	plan, err := NewRPlan[float32](40)
	if err != nil {
		t.Fatal(err)
	}

	in := make([]float32, 40)
	for i := range in {
		in[i] = float32(math.Sin(float64(i) * 0.7))
	}

	data := append([]float32(nil), in...)
	plan.Forward(data, 1)
	plan.Backward(data, 1.0/40)

	for i := range data {
		if math.Abs(float64(data[i]-in[i])) > 1e-5 {
			t.Fatalf("float32 round trip diverged at %d", i)
		}
	}
}

func TestRPlanZeroLength(t *testing.T) {
	if _, err := NewRPlan[float64](0); err != ErrInvalidLength {
		t.Fatalf("want ErrInvalidLength, got %v", err)
	}
}
