// Package fft implements the mixed-radix (FFTPACK-style) and Bluestein
// transform engine behind the public API. All plans are immutable after
// construction and safe for concurrent use with distinct data buffers.
package fft

import (
	"unsafe"

	"github.com/MeKo-Christian/algo-pocketfft/internal/fftypes"
)

// Cmplx is a complex sample as an explicit (re, im) pair. The engine uses
// it instead of Go's complex types so kernels can address the components
// directly and share one twiddle table between both directions.
//
// The memory layout is identical to complex64/complex128 of the matching
// precision, which permits zero-copy reinterpretation at the API boundary.
type Cmplx[T fftypes.Float] struct {
	R, I T
}

func (a Cmplx[T]) add(b Cmplx[T]) Cmplx[T] { return Cmplx[T]{a.R + b.R, a.I + b.I} }
func (a Cmplx[T]) sub(b Cmplx[T]) Cmplx[T] { return Cmplx[T]{a.R - b.R, a.I - b.I} }
func (a Cmplx[T]) scale(s T) Cmplx[T]      { return Cmplx[T]{a.R * s, a.I * s} }

// specialMul multiplies by b in the backward direction and by conj(b) in
// the forward direction. Twiddles are stored once with positive angles;
// the direction flag selects the conjugation at use.
func (a Cmplx[T]) specialMul(b Cmplx[T], bwd bool) Cmplx[T] {
	if bwd {
		return Cmplx[T]{a.R*b.R - a.I*b.I, a.R*b.I + a.I*b.R}
	}

	return Cmplx[T]{a.R*b.R + a.I*b.I, a.I*b.R - a.R*b.I}
}

// rot90 is multiplication by i, rotM90 by -i.
func (a Cmplx[T]) rot90() Cmplx[T]  { return Cmplx[T]{-a.I, a.R} }
func (a Cmplx[T]) rotM90() Cmplx[T] { return Cmplx[T]{a.I, -a.R} }

// pmc computes the butterfly pair (c+d, c-d).
func pmc[T fftypes.Float](c, d Cmplx[T]) (Cmplx[T], Cmplx[T]) {
	return c.add(d), c.sub(d)
}

// AsCmplx reinterprets a slice of interleaved (re, im) reals as complex
// samples. len(s) must be even.
func AsCmplx[T fftypes.Float](s []T) []Cmplx[T] {
	if len(s) == 0 {
		return nil
	}

	return unsafe.Slice((*Cmplx[T])(unsafe.Pointer(&s[0])), len(s)/2)
}

// AsFloats is the inverse reinterpretation of AsCmplx.
func AsFloats[T fftypes.Float](s []Cmplx[T]) []T {
	if len(s) == 0 {
		return nil
	}

	return unsafe.Slice((*T)(unsafe.Pointer(&s[0])), 2*len(s))
}
