package fft

import "math"

// sinCosTable holds (cos, sin) pairs of 2πk/n, interleaved, for
// k = 0..n/2-1 (half) or k = 0..n-1 (full). Entries are computed to
// near-machine precision by evaluating small-argument minimax polynomials
// in the first octant only and extending through the symmetries of the
// unit circle.
type sinCosTable struct {
	d []float64
}

func (t sinCosTable) at(idx int) float64 { return t.d[idx] }

// newSinCos2PiByN builds the table for a given n. With half set, only the
// angles k = 0..(n-1)/2 are produced (the real-transform twiddles exploit
// Hermitian symmetry); otherwise the full period is filled.
func newSinCos2PiByN(n int, half bool) sinCosTable {
	d := make([]float64, 2*n)
	sinCos2PiByNHalf(n, d)

	if !half {
		fillSecondHalf(n, d)
	}

	return sinCosTable{d: d}
}

// sinCosM1Pi computes (cos(πa)-1, sin(πa)) for a in [-0.25, 0.25]. The
// minimax coefficients only hold on that interval.
func sinCosM1Pi(a float64) (c, s float64) {
	x := a * a

	// cos(pi*a)-1
	r := -1.0369917389758117e-4
	r = math.FMA(r, x, 1.9294935641298806e-3)
	r = math.FMA(r, x, -2.5806887942825395e-2)
	r = math.FMA(r, x, 2.3533063028328211e-1)
	r = math.FMA(r, x, -1.3352627688538006e+0)
	r = math.FMA(r, x, 4.0587121264167623e+0)
	r = math.FMA(r, x, -4.9348022005446790e+0)
	c = r * x

	// sin(pi*a)
	r = 4.6151442520157035e-4
	r = math.FMA(r, x, -7.3700183130883555e-3)
	r = math.FMA(r, x, 8.2145868949323936e-2)
	r = math.FMA(r, x, -5.9926452893214921e-1)
	r = math.FMA(r, x, 2.5501640398732688e+0)
	r = math.FMA(r, x, -5.1677127800499516e+0)
	x = x * a
	r = r * x
	s = math.FMA(a, 3.1415926535897931e+0, r)

	return c, s
}

// calcFirstOctant fills res with the (den+4)/8 (cos, sin) pairs of the
// first octant of the circle with denominator den. Values are accumulated
// from cos-1 terms so the additions stay near zero and cancellation is
// bounded.
func calcFirstOctant(den int, res []float64) {
	n := (den + 4) >> 3
	if n == 0 {
		return
	}

	res[0], res[1] = 1, 0

	if n == 1 {
		return
	}

	l1 := int(math.Sqrt(float64(n)))
	for i := 1; i < l1; i++ {
		res[2*i], res[2*i+1] = sinCosM1Pi(2 * float64(i) / float64(den))
	}

	start := l1
	for start < n {
		cs0, cs1 := sinCosM1Pi(2 * float64(start) / float64(den))
		res[2*start] = cs0 + 1
		res[2*start+1] = cs1

		end := l1
		if start+end > n {
			end = n - start
		}

		for i := 1; i < end; i++ {
			csx0, csx1 := res[2*i], res[2*i+1]
			res[2*(start+i)] = ((cs0*csx0 - cs1*csx1 + cs0) + csx0) + 1
			res[2*(start+i)+1] = (cs0*csx1 + cs1*csx0) + cs1 + csx1
		}

		start += l1
	}

	for i := 1; i < l1; i++ {
		res[2*i] += 1
	}
}

// calcFirstQuadrant fills the first quadrant, using the upper half of res
// as scratch for the doubled-denominator octant.
func calcFirstQuadrant(n int, res []float64) {
	p := res[n:]
	calcFirstOctant(n<<1, p)

	ndone := (n + 2) >> 2
	i, idx1, idx2 := 0, 0, 2*ndone-2

	for ; i+1 < ndone; i, idx1, idx2 = i+2, idx1+2, idx2-2 {
		res[idx1] = p[2*i]
		res[idx1+1] = p[2*i+1]
		res[idx2] = p[2*i+3]
		res[idx2+1] = p[2*i+2]
	}

	if i != ndone {
		res[idx1] = p[2*i]
		res[idx1+1] = p[2*i+1]
	}
}

// calcFirstHalf fills the first half for odd n, reflecting the quadrupled
// first octant through all four octant symmetries. The reflection parities
// differ per octant.
func calcFirstHalf(n int, res []float64) {
	ndone := (n + 1) >> 1
	p := res[n-1:]
	calcFirstOctant(n<<2, p)

	i4, in, i := 0, n, 0

	for ; i4 <= in-i4; i, i4 = i+1, i4+4 { // octant 0
		res[2*i] = p[2*i4]
		res[2*i+1] = p[2*i4+1]
	}

	for ; i4-in <= 0; i, i4 = i+1, i4+4 { // octant 1
		xm := in - i4
		res[2*i] = p[2*xm+1]
		res[2*i+1] = p[2*xm]
	}

	for ; i4 <= 3*in-i4; i, i4 = i+1, i4+4 { // octant 2
		xm := i4 - in
		res[2*i] = -p[2*xm+1]
		res[2*i+1] = p[2*xm]
	}

	for ; i < ndone; i, i4 = i+1, i4+4 { // octant 3
		xm := 2*in - i4
		res[2*i] = -p[2*xm]
		res[2*i+1] = p[2*xm+1]
	}
}

// fillFirstQuadrant extends the first octant to the quadrant. For
// n divisible by 8 the midpoint pair 1/sqrt(2) is stored explicitly.
func fillFirstQuadrant(n int, res []float64) {
	const hsqt2 = 0.707106781186547524400844362104849

	quart := n >> 2
	if n&7 == 0 {
		res[quart], res[quart+1] = hsqt2, hsqt2
	}

	for i, j := 2, 2*quart-2; i < quart; i, j = i+2, j-2 {
		res[j] = res[i+1]
		res[j+1] = res[i]
	}
}

// fillFirstHalf extends the first quadrant to the half period.
func fillFirstHalf(n int, res []float64) {
	half := n >> 1
	if n&3 == 0 {
		for i := 0; i < half; i += 2 {
			res[i+half] = -res[i+1]
			res[i+half+1] = res[i]
		}

		return
	}

	for i, j := 2, 2*half-2; i < half; i, j = i+2, j-2 {
		res[j] = -res[i]
		res[j+1] = res[i+1]
	}
}

// fillSecondHalf extends the half period to the full period.
func fillSecondHalf(n int, res []float64) {
	if n&1 == 0 {
		for i := 0; i < n; i++ {
			res[i+n] = -res[i]
		}

		return
	}

	for i, j := 2, 2*n-2; i < n; i, j = i+2, j-2 {
		res[j] = res[i]
		res[j+1] = -res[i+1]
	}
}

// sinCos2PiByNHalf picks the fill path by the parity class of n; the four
// cases differ in which symmetry extensions are valid.
func sinCos2PiByNHalf(n int, res []float64) {
	switch {
	case n&3 == 0:
		calcFirstOctant(n, res)
		fillFirstQuadrant(n, res)
		fillFirstHalf(n, res)
	case n&1 == 0:
		calcFirstQuadrant(n, res)
		fillFirstHalf(n, res)
	default:
		calcFirstHalf(n, res)
	}
}
