package fft

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"
)

func TestBPlanInnerLength(t *testing.T) {
	for _, n := range []int{13, 17, 97, 101, 521, 1009} {
		b, err := NewBPlan[float64](n)
		if err != nil {
			t.Fatalf("NewBPlan(%d): %v", n, err)
		}

		if b.n2 < 2*n-1 {
			t.Fatalf("n=%d: inner length %d < 2n-1", n, b.n2)
		}

		if !isSmooth(b.n2) {
			t.Fatalf("n=%d: inner length %d not 11-smooth", n, b.n2)
		}
	}
}

// a unit impulse must transform to constant magnitude 1 across all bins
func TestBPlanImpulse(t *testing.T) {
	b, err := NewBPlan[float64](13)
	if err != nil {
		t.Fatal(err)
	}

	data := make([]Cmplx[float64], 13)
	data[0] = Cmplx[float64]{1, 0}
	b.Forward(data, 1)

	for i, x := range data {
		mag := math.Hypot(x.R, x.I)
		if math.Abs(mag-1) > 1e-13 {
			t.Fatalf("bin %d: |X| = %v, want 1", i, mag)
		}
	}
}

func TestBPlanMatchesDFT(t *testing.T) {
	rng := rand.New(rand.NewSource(5))

	for _, n := range []int{2, 3, 7, 13, 17, 31, 97, 101, 211} {
		b, err := NewBPlan[float64](n)
		if err != nil {
			t.Fatalf("NewBPlan(%d): %v", n, err)
		}

		in := randomComplex(n, rng)
		tol := 1e-11 * float64(n)

		data := toCmplx(in)
		b.Forward(data, 1)

		if d := maxDist(fromCmplx(data), dftRef(in, true)); d > tol {
			t.Errorf("n=%d forward: max deviation %g", n, d)
		}

		data = toCmplx(in)
		b.Backward(data, 1)

		if d := maxDist(fromCmplx(data), dftRef(in, false)); d > tol {
			t.Errorf("n=%d backward: max deviation %g", n, d)
		}
	}
}

func TestBPlanRoundTrip97(t *testing.T) {
	const n = 97

	b, err := NewBPlan[float64](n)
	if err != nil {
		t.Fatal(err)
	}

	in := make([]complex128, n)
	for k := range in {
		in[k] = complex(math.Sin(float64(k)), math.Cos(float64(2*k)))
	}

	data := toCmplx(in)
	b.Forward(data, 1)
	b.Backward(data, 1.0/n)

	got := fromCmplx(data)
	for i := range got {
		if cmplx.Abs(got[i]-in[i]) > 1e-13 {
			t.Fatalf("round trip diverged at %d: %v vs %v", i, got[i], in[i])
		}
	}
}

func TestBPlanRealAdaptors(t *testing.T) {
	rng := rand.New(rand.NewSource(6))

	for _, n := range []int{5, 12, 13, 31, 97, 98} {
		b, err := NewBPlan[float64](n)
		if err != nil {
			t.Fatalf("NewBPlan(%d): %v", n, err)
		}

		in := make([]float64, n)
		for i := range in {
			in[i] = rng.Float64()*2 - 1
		}

		// forward must agree with the packed reference spectrum
		data := append([]float64(nil), in...)
		b.ForwardReal(data, 1)

		if d := maxDistF(data, packedRef(in)); d > 1e-11*float64(n) {
			t.Errorf("n=%d forward_r: max deviation %g", n, d)
		}

		// and the pair must round-trip
		b.BackwardReal(data, 1/float64(n))

		if d := maxDistF(data, in); d > 1e-12*float64(n) {
			t.Errorf("n=%d real round trip: max deviation %g", n, d)
		}
	}
}

func TestBPlanZeroLength(t *testing.T) {
	if _, err := NewBPlan[float64](0); err != ErrInvalidLength {
		t.Fatalf("want ErrInvalidLength, got %v", err)
	}
}
