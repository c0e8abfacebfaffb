package pocketfft

import (
	"math"
	"math/cmplx"
	"testing"
)

// Shared test helpers used across multiple test files

func assertApproxComplex128Tolf(t *testing.T, got, want complex128, tol float64, format string, args ...any) {
	t.Helper()

	if cmplx.Abs(got-want) > tol {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, cmplx.Abs(got-want))...)
	}
}

func assertApproxFloat64Tolf(t *testing.T, got, want, tol float64, format string, args ...any) {
	t.Helper()

	if math.Abs(got-want) > tol {
		t.Fatalf(format+": got %v want %v (diff=%v)", append(args, got, want, math.Abs(got-want))...)
	}
}

// dftSlow is an O(n²) reference transform over one axis of a packed
// row-major 2-D view.
func dftSlow(in []complex128, forward bool) []complex128 {
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

func relErrL2(got, want []complex128) float64 {
	var num, den float64

	for i := range got {
		num += cmplx.Abs(got[i]-want[i]) * cmplx.Abs(got[i]-want[i])
		den += cmplx.Abs(want[i]) * cmplx.Abs(want[i])
	}

	if den == 0 {
		return math.Sqrt(num)
	}

	return math.Sqrt(num / den)
}
