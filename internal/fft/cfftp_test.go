package fft

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"
)

// dftRef is an O(n²) reference DFT. Angles are reduced mod n before the
// complex exponential so the reference itself stays accurate.
func dftRef(in []complex128, forward bool) []complex128 {
	n := len(in)
	out := make([]complex128, n)

	sign := -1.0
	if !forward {
		sign = 1.0
	}

	for k := range out {
		var sum complex128

		for j, x := range in {
			ang := sign * 2 * math.Pi * float64((j*k)%n) / float64(n)
			sum += x * cmplx.Exp(complex(0, ang))
		}

		out[k] = sum
	}

	return out
}

func randomComplex(n int, rng *rand.Rand) []complex128 {
	out := make([]complex128, n)
	for i := range out {
		out[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
	}

	return out
}

func toCmplx(in []complex128) []Cmplx[float64] {
	out := make([]Cmplx[float64], len(in))
	for i, x := range in {
		out[i] = Cmplx[float64]{real(x), imag(x)}
	}

	return out
}

func fromCmplx(in []Cmplx[float64]) []complex128 {
	out := make([]complex128, len(in))
	for i, x := range in {
		out[i] = complex(x.R, x.I)
	}

	return out
}

func maxDist(a, b []complex128) float64 {
	worst := 0.0
	for i := range a {
		if d := cmplx.Abs(a[i] - b[i]); d > worst {
			worst = d
		}
	}

	return worst
}

// every hardcoded radix, the generic radix and all their mixtures must
// match the reference DFT in both directions
func TestCPlanMatchesDFT(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	lengths := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16,
		17, 18, 20, 21, 22, 24, 25, 26, 27, 28, 30, 32, 33, 35, 39, 44, 45,
		49, 50, 52, 55, 60, 64, 77, 97, 104, 121, 125, 128, 143, 169, 210}

	for _, n := range lengths {
		plan, err := NewCPlan[float64](n)
		if err != nil {
			t.Fatalf("NewCPlan(%d): %v", n, err)
		}

		if plan.Length() != n {
			t.Fatalf("Length() = %d, want %d", plan.Length(), n)
		}

		in := randomComplex(n, rng)
		tol := 1e-12 * float64(n)

		data := toCmplx(in)
		plan.Forward(data, 1)

		if d := maxDist(fromCmplx(data), dftRef(in, true)); d > tol {
			t.Errorf("n=%d forward: max deviation %g", n, d)
		}

		data = toCmplx(in)
		plan.Backward(data, 1)

		if d := maxDist(fromCmplx(data), dftRef(in, false)); d > tol {
			t.Errorf("n=%d backward: max deviation %g", n, d)
		}
	}
}

func TestCPlanRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for n := 1; n <= 150; n++ {
		plan, err := NewCPlan[float64](n)
		if err != nil {
			t.Fatalf("NewCPlan(%d): %v", n, err)
		}

		in := randomComplex(n, rng)
		data := toCmplx(in)

		plan.Forward(data, 1)
		plan.Backward(data, 1/float64(n))

		tol := 20 * float64(n) * 2.22e-16
		if d := maxDist(fromCmplx(data), in); d > tol {
			t.Errorf("n=%d round trip: max deviation %g > %g", n, d, tol)
		}
	}
}

func TestCPlanFloat32(t *testing.T) {
	plan, err := NewCPlan[float32](48)
	if err != nil {
		t.Fatal(err)
	}

	data := make([]Cmplx[float32], 48)
	for i := range data {
		data[i] = Cmplx[float32]{float32(math.Sin(float64(i))), float32(math.Cos(float64(2 * i)))}
	}

	orig := append([]Cmplx[float32](nil), data...)

	plan.Forward(data, 1)
	plan.Backward(data, 1.0/48)

	for i := range data {
		if math.Abs(float64(data[i].R-orig[i].R)) > 1e-5 ||
			math.Abs(float64(data[i].I-orig[i].I)) > 1e-5 {
			t.Fatalf("float32 round trip diverged at %d: got %v want %v", i, data[i], orig[i])
		}
	}
}

func TestCPlanNormalization(t *testing.T) {
	plan, err := NewCPlan[float64](4)
	if err != nil {
		t.Fatal(err)
	}

	data := []Cmplx[float64]{{1, 0}, {0, 0}, {0, 0}, {0, 0}}
	plan.Forward(data, 0.5)

	for i, x := range data {
		if x.R != 0.5 || x.I != 0 {
			t.Fatalf("fct not applied at %d: %v", i, x)
		}
	}
}

func TestCPlanZeroLength(t *testing.T) {
	if _, err := NewCPlan[float64](0); err != ErrInvalidLength {
		t.Fatalf("want ErrInvalidLength, got %v", err)
	}
}
