package pocketfft

import (
	"unsafe"

	"github.com/MeKo-Christian/algo-pocketfft/internal/fft"
)

func asCmplx32(s []complex64) []fft.Cmplx[float32] {
	if len(s) == 0 {
		return nil
	}

	return unsafe.Slice((*fft.Cmplx[float32])(unsafe.Pointer(&s[0])), len(s))
}

func asCmplx64(s []complex128) []fft.Cmplx[float64] {
	if len(s) == 0 {
		return nil
	}

	return unsafe.Slice((*fft.Cmplx[float64])(unsafe.Pointer(&s[0])), len(s))
}

// Plan is a reusable 1-D complex transform for one length. Construction
// factorizes the length, builds all twiddle tables, and picks between the
// mixed-radix and Bluestein strategies; Forward and Backward then run in
// place on caller data.
//
// A Plan is immutable and safe for concurrent use as long as concurrent
// calls supply distinct data slices.
type Plan[C Complex] struct {
	n   int
	p32 *fft.PlanC[float32]
	p64 *fft.PlanC[float64]
}

// NewPlan creates a plan for transforms of length n.
// Returns ErrInvalidLength if n is zero.
func NewPlan[C Complex](n int) (*Plan[C], error) {
	p := &Plan[C]{n: n}

	var (
		zero C
		err  error
	)

	switch any(zero).(type) {
	case complex64:
		p.p32, err = fft.NewPlanC[float32](n)
	case complex128:
		p.p64, err = fft.NewPlanC[float64](n)
	default:
		err = ErrNotImplemented
	}

	if err != nil {
		return nil, err
	}

	return p, nil
}

// Len returns the transform length.
func (p *Plan[C]) Len() int { return p.n }

// Forward transforms data in place with the e^{-2πi...} convention and
// multiplies the result by fct. Only the first Len() elements are used.
func (p *Plan[C]) Forward(data []C, fct float64) error {
	return p.transform(data, fct, false)
}

// Backward transforms data in place with the e^{+2πi...} convention and
// multiplies the result by fct. Pass fct = 1/Len() to invert Forward.
func (p *Plan[C]) Backward(data []C, fct float64) error {
	return p.transform(data, fct, true)
}

func (p *Plan[C]) transform(data []C, fct float64, bwd bool) error {
	if data == nil {
		return ErrNilSlice
	}

	if len(data) < p.n {
		return ErrLengthMismatch
	}

	switch d := any(data).(type) {
	case []complex64:
		c := asCmplx32(d[:p.n])
		if bwd {
			p.p32.Backward(c, float32(fct))
		} else {
			p.p32.Forward(c, float32(fct))
		}
	case []complex128:
		c := asCmplx64(d[:p.n])
		if bwd {
			p.p64.Backward(c, fct)
		} else {
			p.p64.Forward(c, fct)
		}
	default:
		return ErrNotImplemented
	}

	return nil
}

// RealPlan64 is a reusable 1-D real transform for float64 data using the
// packed spectrum layout: after Forward, data[0] holds X[0].re, indices
// 2k-1 and 2k hold (X[k].re, X[k].im) for k = 1..(n-1)/2, and for even n
// data[n-1] holds X[n/2].re. Backward consumes the same layout.
type RealPlan64 struct {
	n int
	p *fft.PlanR[float64]
}

// NewRealPlan64 creates a real plan of length n.
// Returns ErrInvalidLength if n is zero.
func NewRealPlan64(n int) (*RealPlan64, error) {
	p, err := fft.NewPlanR[float64](n)
	if err != nil {
		return nil, err
	}

	return &RealPlan64{n: n, p: p}, nil
}

// Len returns the number of real samples.
func (p *RealPlan64) Len() int { return p.n }

// Forward transforms data in place into the packed spectrum layout and
// multiplies the result by fct.
func (p *RealPlan64) Forward(data []float64, fct float64) error {
	if data == nil {
		return ErrNilSlice
	}

	if len(data) < p.n {
		return ErrLengthMismatch
	}

	p.p.Forward(data[:p.n], fct)

	return nil
}

// Backward transforms the packed spectrum layout in place back into real
// samples and multiplies the result by fct.
func (p *RealPlan64) Backward(data []float64, fct float64) error {
	if data == nil {
		return ErrNilSlice
	}

	if len(data) < p.n {
		return ErrLengthMismatch
	}

	p.p.Backward(data[:p.n], fct)

	return nil
}

// RealPlan32 is the float32 counterpart of RealPlan64. The normalization
// factor remains a float64 at the API and is down-cast internally.
type RealPlan32 struct {
	n int
	p *fft.PlanR[float32]
}

// NewRealPlan32 creates a real plan of length n.
// Returns ErrInvalidLength if n is zero.
func NewRealPlan32(n int) (*RealPlan32, error) {
	p, err := fft.NewPlanR[float32](n)
	if err != nil {
		return nil, err
	}

	return &RealPlan32{n: n, p: p}, nil
}

// Len returns the number of real samples.
func (p *RealPlan32) Len() int { return p.n }

// Forward transforms data in place into the packed spectrum layout and
// multiplies the result by fct.
func (p *RealPlan32) Forward(data []float32, fct float64) error {
	if data == nil {
		return ErrNilSlice
	}

	if len(data) < p.n {
		return ErrLengthMismatch
	}

	p.p.Forward(data[:p.n], float32(fct))

	return nil
}

// Backward transforms the packed spectrum layout in place back into real
// samples and multiplies the result by fct.
func (p *RealPlan32) Backward(data []float32, fct float64) error {
	if data == nil {
		return ErrNilSlice
	}

	if len(data) < p.n {
		return ErrLengthMismatch
	}

	p.p.Backward(data[:p.n], float32(fct))

	return nil
}
