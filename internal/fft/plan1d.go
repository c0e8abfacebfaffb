package fft

import (
	"github.com/MeKo-Christian/algo-pocketfft/internal/fftypes"
)

// PlanC is the length-agnostic 1-D complex plan. For lengths that are
// small or dominated by small prime factors it holds a mixed-radix plan;
// otherwise it compares the cost heuristics and may hold a Bluestein plan
// instead. Exactly one of the two is live.
type PlanC[T fftypes.Float] struct {
	length int
	pack   *CPlan[T]
	blue   *BPlan[T]
}

// NewPlanC picks and constructs the cheaper strategy for length n.
func NewPlanC[T fftypes.Float](n int) (*PlanC[T], error) {
	if n == 0 {
		return nil, ErrInvalidLength
	}

	p := &PlanC[T]{length: n}

	if n < 50 || largestPrimeFactor(n)*largestPrimeFactor(n) <= n {
		pack, err := NewCPlan[T](n)
		if err != nil {
			return nil, err
		}

		p.pack = pack

		return p, nil
	}

	comp1 := costGuess(n)
	comp2 := 2 * costGuess(goodSize(2*n-1))
	comp2 *= 1.5 // fudge factor that appears to give good overall performance

	var err error
	if comp2 < comp1 {
		p.blue, err = NewBPlan[T](n)
	} else {
		p.pack, err = NewCPlan[T](n)
	}

	if err != nil {
		return nil, err
	}

	return p, nil
}

// Length returns the transform length.
func (p *PlanC[T]) Length() int { return p.length }

// Forward transforms c in place and scales by fct.
func (p *PlanC[T]) Forward(c []Cmplx[T], fct T) {
	if p.pack != nil {
		p.pack.Forward(c, fct)

		return
	}

	p.blue.Forward(c, fct)
}

// Backward transforms c in place and scales by fct.
func (p *PlanC[T]) Backward(c []Cmplx[T], fct T) {
	if p.pack != nil {
		p.pack.Backward(c, fct)

		return
	}

	p.blue.Backward(c, fct)
}

// PlanR is the length-agnostic 1-D real plan over the packed spectrum
// layout. The Bluestein comparison halves the direct cost, since the real
// mixed-radix path does roughly half the work of the complex one.
type PlanR[T fftypes.Float] struct {
	length int
	pack   *RPlan[T]
	blue   *BPlan[T]
}

// NewPlanR picks and constructs the cheaper strategy for length n.
func NewPlanR[T fftypes.Float](n int) (*PlanR[T], error) {
	if n == 0 {
		return nil, ErrInvalidLength
	}

	p := &PlanR[T]{length: n}

	if n < 50 || largestPrimeFactor(n)*largestPrimeFactor(n) <= n {
		pack, err := NewRPlan[T](n)
		if err != nil {
			return nil, err
		}

		p.pack = pack

		return p, nil
	}

	comp1 := 0.5 * costGuess(n)
	comp2 := 2 * costGuess(goodSize(2*n-1))
	comp2 *= 1.5 // fudge factor that appears to give good overall performance

	var err error
	if comp2 < comp1 {
		p.blue, err = NewBPlan[T](n)
	} else {
		p.pack, err = NewRPlan[T](n)
	}

	if err != nil {
		return nil, err
	}

	return p, nil
}

// Length returns the transform length.
func (p *PlanR[T]) Length() int { return p.length }

// Forward transforms n reals in place into the packed spectrum layout.
func (p *PlanR[T]) Forward(c []T, fct T) {
	if p.pack != nil {
		p.pack.Forward(c, fct)

		return
	}

	p.blue.ForwardReal(c, fct)
}

// Backward transforms the packed spectrum layout in place back to reals.
func (p *PlanR[T]) Backward(c []T, fct T) {
	if p.pack != nil {
		p.pack.Backward(c, fct)

		return
	}

	p.blue.BackwardReal(c, fct)
}
