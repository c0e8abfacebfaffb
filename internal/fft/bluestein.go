package fft

import (
	"github.com/MeKo-Christian/algo-pocketfft/internal/fftypes"
	"github.com/MeKo-Christian/algo-pocketfft/internal/mem"
)

// BPlan reduces an arbitrary-length DFT to a convolution carried out by a
// composite-length complex FFT of size goodSize(2n-1). It owns the chirp
// sequence b_k = exp(iπk²/n), its transformed zero-padded copy, and the
// inner plan. Immutable after construction.
type BPlan[T fftypes.Float] struct {
	n, n2      int
	plan       *CPlan[T]
	mem        []T
	memBacking []byte
	bk, bkf    []T
}

// NewBPlan builds the chirp tables for length n.
func NewBPlan[T fftypes.Float](n int) (*BPlan[T], error) {
	if n == 0 {
		return nil, ErrInvalidLength
	}

	n2 := goodSize(2*n - 1)

	plan, err := NewCPlan[T](n2)
	if err != nil {
		return nil, err
	}

	b := &BPlan[T]{n: n, n2: n2, plan: plan}
	b.mem, b.memBacking = mem.Aligned[T](2 * (n + n2))
	b.bk = b.mem[:2*n]
	b.bkf = b.mem[2*n:]

	// chirp b_k, with k² accumulated mod 2n to keep the table index exact
	tmp := newSinCos2PiByN(2*n, false)
	b.bk[0] = 1
	b.bk[1] = 0

	coeff := 0
	for m := 1; m < n; m++ {
		coeff += 2*m - 1
		if coeff >= 2*n {
			coeff -= 2 * n
		}

		b.bk[2*m] = T(tmp.at(2 * coeff))
		b.bk[2*m+1] = T(tmp.at(2*coeff + 1))
	}

	// zero-padded symmetric extension of b_k, transformed and prescaled
	// by 1/n2 so the convolution needs no extra normalization
	xn2 := 1 / T(n2)
	b.bkf[0] = b.bk[0] * xn2
	b.bkf[1] = b.bk[1] * xn2

	for m := 2; m < 2*n; m += 2 {
		b.bkf[m] = b.bk[m] * xn2
		b.bkf[2*n2-m] = b.bkf[m]
		b.bkf[m+1] = b.bk[m+1] * xn2
		b.bkf[2*n2-m+1] = b.bkf[m+1]
	}

	for m := 2 * n; m <= 2*n2-2*n+1; m++ {
		b.bkf[m] = 0
	}

	plan.Forward(AsCmplx(b.bkf), 1)

	return b, nil
}

// Length returns the outer transform length.
func (b *BPlan[T]) Length() int { return b.n }

// Forward runs the complex forward transform in place.
func (b *BPlan[T]) Forward(c []Cmplx[T], fct T) { b.fft(AsFloats(c), fct, false) }

// Backward runs the complex backward transform in place.
func (b *BPlan[T]) Backward(c []Cmplx[T], fct T) { b.fft(AsFloats(c), fct, true) }

// fft multiplies by the chirp, convolves with the transformed chirp via
// the inner plan, and multiplies by the chirp again. The direction flips
// the sign of every cross term.
func (b *BPlan[T]) fft(c []T, fct T, bwd bool) {
	isign := T(-1)
	if bwd {
		isign = 1
	}

	n, n2 := b.n, b.n2
	bk, bkf := b.bk, b.bkf
	akf, _ := mem.Aligned[T](2 * n2)

	for m := 0; m < 2*n; m += 2 {
		akf[m] = c[m]*bk[m] - isign*c[m+1]*bk[m+1]
		akf[m+1] = isign*c[m]*bk[m+1] + c[m+1]*bk[m]
	}

	for m := 2 * n; m < 2*n2; m++ {
		akf[m] = 0
	}

	b.plan.Forward(AsCmplx(akf), 1)

	for m := 0; m < 2*n2; m += 2 {
		im := -isign*akf[m]*bkf[m+1] + akf[m+1]*bkf[m]
		akf[m] = akf[m]*bkf[m] + isign*akf[m+1]*bkf[m+1]
		akf[m+1] = im
	}

	b.plan.Backward(AsCmplx(akf), 1)

	for m := 0; m < 2*n; m += 2 {
		c[m] = fct * (bk[m]*akf[m] - isign*bk[m+1]*akf[m+1])
		c[m+1] = fct * (isign*bk[m+1]*akf[m] + bk[m]*akf[m+1])
	}
}

// ForwardReal embeds n reals as complex samples, transforms, and packs
// the result into the real spectrum layout.
func (b *BPlan[T]) ForwardReal(c []T, fct T) {
	n := b.n
	tmp, _ := mem.Aligned[T](2 * n)

	for m := 0; m < n; m++ {
		tmp[2*m] = c[m]
		tmp[2*m+1] = 0
	}

	b.fft(tmp, fct, false)

	c[0] = tmp[0]
	copy(c[1:n], tmp[2:n+1])
}

// BackwardReal rebuilds the Hermitian complex spectrum from the packed
// layout, transforms backward, and keeps the real parts.
func (b *BPlan[T]) BackwardReal(c []T, fct T) {
	n := b.n
	tmp, _ := mem.Aligned[T](2 * n)

	tmp[0] = c[0]
	tmp[1] = 0
	copy(tmp[2:n+1], c[1:n])

	if n&1 == 0 {
		tmp[n+1] = 0
	}

	for m := 2; m < n; m += 2 {
		tmp[2*n-m] = tmp[m]
		tmp[2*n-m+1] = -tmp[m+1]
	}

	b.fft(tmp, fct, true)

	for m := 0; m < n; m++ {
		c[m] = tmp[2*m]
	}
}
