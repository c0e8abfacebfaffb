package fft

import (
	"math"
	"testing"
)

// the half/full tables must agree with the library sin/cos to near
// machine precision for every parity class of n
func TestSinCos2PiByN(t *testing.T) {
	const tol = 1e-14

	lengths := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 16, 24, 25, 32,
		40, 49, 60, 97, 104, 120, 121, 125, 128, 210, 243, 509}

	for _, n := range lengths {
		full := newSinCos2PiByN(n, false)

		for k := 0; k < n; k++ {
			ang := 2 * math.Pi * float64(k) / float64(n)
			if d := math.Abs(full.at(2*k) - math.Cos(ang)); d > tol {
				t.Fatalf("n=%d k=%d: cos off by %g", n, k, d)
			}

			if d := math.Abs(full.at(2*k+1) - math.Sin(ang)); d > tol {
				t.Fatalf("n=%d k=%d: sin off by %g", n, k, d)
			}
		}

		half := newSinCos2PiByN(n, true)

		for k := 0; k < n/2; k++ {
			ang := 2 * math.Pi * float64(k) / float64(n)
			if d := math.Abs(half.at(2*k) - math.Cos(ang)); d > tol {
				t.Fatalf("n=%d k=%d (half): cos off by %g", n, k, d)
			}

			if d := math.Abs(half.at(2*k+1) - math.Sin(ang)); d > tol {
				t.Fatalf("n=%d k=%d (half): sin off by %g", n, k, d)
			}
		}
	}
}

// the octant midpoint of multiples of 8 is stored explicitly, so its
// cos and sin must be exactly equal
func TestSinCos2PiByNMidpoint(t *testing.T) {
	for _, n := range []int{8, 16, 40, 64, 104} {
		tab := newSinCos2PiByN(n, true)
		quart := n >> 2

		if tab.at(quart) != tab.at(quart+1) {
			t.Fatalf("n=%d: pi/4 entry not symmetric", n)
		}
	}
}

func TestSinCosM1Pi(t *testing.T) {
	const tol = 5e-16

	for a := -0.25; a <= 0.25; a += 1.0 / 128 {
		c, s := sinCosM1Pi(a)
		if d := math.Abs(c - (math.Cos(math.Pi*a) - 1)); d > tol {
			t.Fatalf("a=%g: cosm1 off by %g", a, d)
		}

		if d := math.Abs(s - math.Sin(math.Pi*a)); d > 1e-15 {
			t.Fatalf("a=%g: sin off by %g", a, d)
		}
	}
}
