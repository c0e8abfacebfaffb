package fft

import (
	"github.com/MeKo-Christian/algo-pocketfft/internal/fftypes"
	"github.com/MeKo-Christian/algo-pocketfft/internal/mem"
)

// dimInfo is one extent/stride pair of a strided array view. Strides are
// signed and counted in samples.
type dimInfo struct {
	n, s int
}

type multiArr struct {
	dim []dimInfo
}

func newMultiArr(shape, stride []int) multiArr {
	dim := make([]dimInfo, len(shape))
	for i := range shape {
		dim[i] = dimInfo{shape[i], stride[i]}
	}

	return multiArr{dim: dim}
}

// multiIter walks all 1-D fibers of a strided array along one axis, in
// row-major order over the retained axes. Two iterators built from the
// same shape walk input and output in lock-step: one reaches done exactly
// when the other does, after the product of the retained extents steps.
type multiIter struct {
	dim  []dimInfo
	pos  []int
	ofs  int
	len  int
	str  int
	rem  int
	done bool
}

func newMultiIter(a multiArr, idim int) *multiIter {
	it := &multiIter{
		pos: make([]int, len(a.dim)-1),
		len: a.dim[idim].n,
		str: a.dim[idim].s,
		rem: 1,
	}

	for i, d := range a.dim {
		if i == idim {
			continue
		}

		it.dim = append(it.dim, d)

		if d.n == 0 {
			it.done = true
		}

		it.rem *= d.n
	}

	return it
}

func (it *multiIter) advance() {
	it.rem--
	if it.rem <= 0 {
		it.done = true

		return
	}

	for i := len(it.pos) - 1; i >= 0; i-- {
		it.pos[i]++
		it.ofs += it.dim[i].s

		if it.pos[i] < it.dim[i].n {
			return
		}

		it.pos[i] = 0
		it.ofs -= it.dim[i].n * it.dim[i].s
	}

	it.done = true
}

// gatherOffsets records the next batch fiber offsets, advancing the
// iterator past them.
func gatherOffsets(it *multiIter, dst []int) {
	for j := range dst {
		dst[j] = it.ofs
		it.advance()
	}
}

// ComplexND transforms the requested axes in order. After the first axis
// the output array becomes the input for the remaining axes and the
// normalization drops to 1, so fct is applied exactly once. When batch is
// greater than one, that many fibers are gathered into scratch per pass
// before transforming, which amortizes strided cache-line traffic.
func ComplexND[T fftypes.Float](shape, strideIn, strideOut, axes []int, forward bool,
	dataIn, dataOut []Cmplx[T], fct T, batch int,
) error {
	tmpLen := 0
	for _, a := range axes {
		if shape[a] > tmpLen {
			tmpLen = shape[a]
		}
	}

	scratch, _ := mem.Aligned[Cmplx[T]](batch * tmpLen)
	aIn := newMultiArr(shape, strideIn)
	aOut := newMultiArr(shape, strideOut)
	in, out := dataIn, dataOut
	pi := make([]int, batch)
	po := make([]int, batch)

	var plan *PlanC[T]

	for _, axis := range axes {
		itIn := newMultiIter(aIn, axis)
		itOut := newMultiIter(aOut, axis)
		n := itIn.len

		if plan == nil || plan.length != n {
			var err error
			if plan, err = NewPlanC[T](n); err != nil {
				return err
			}
		}

		run := func(fiber []Cmplx[T]) {
			if forward {
				plan.Forward(fiber, fct)
			} else {
				plan.Backward(fiber, fct)
			}
		}

		if batch > 1 {
			for itIn.rem >= batch {
				gatherOffsets(itIn, pi)
				gatherOffsets(itOut, po)

				for j := 0; j < batch; j++ {
					fiber := scratch[j*n : (j+1)*n]
					for i := 0; i < n; i++ {
						fiber[i] = in[pi[j]+i*itIn.str]
					}
				}

				for j := 0; j < batch; j++ {
					run(scratch[j*n : (j+1)*n])
				}

				for j := 0; j < batch; j++ {
					fiber := scratch[j*n : (j+1)*n]
					for i := 0; i < n; i++ {
						out[po[j]+i*itOut.str] = fiber[i]
					}
				}
			}
		}

		for itIn.rem > 0 {
			fiber := scratch[:n]
			for i := 0; i < n; i++ {
				fiber[i] = in[itIn.ofs+i*itIn.str]
			}

			run(fiber)

			for i := 0; i < n; i++ {
				out[itOut.ofs+i*itOut.str] = fiber[i]
			}

			itIn.advance()
			itOut.advance()
		}

		// subsequent axes run in place on the output array
		aIn = aOut
		in = out
		fct = 1
	}

	return nil
}

// hartleyScatter writes one transformed fiber in Hartley order:
// X[k] = re(Y[k]) - im(Y[k]), X[n-k] = re(Y[k]) + im(Y[k]), so that
// X[k] = Σ x[j]·(cos(2πjk/n) + sin(2πjk/n)) for the forward Y.
func hartleyScatter[T fftypes.Float](out []T, ofs, str int, fiber []T) {
	n := len(fiber)
	out[ofs] = fiber[0]

	i, i1, i2 := 1, 1, n-1
	for ; i < n-1; i, i1, i2 = i+2, i1+1, i2-1 {
		out[ofs+i1*str] = fiber[i] - fiber[i+1]
		out[ofs+i2*str] = fiber[i] + fiber[i+1]
	}

	if i < n {
		out[ofs+i1*str] = fiber[i]
	}
}

// HartleyND runs a forward real transform along each requested axis and
// unpacks the packed spectrum into the self-inverse Hartley order.
func HartleyND[T fftypes.Float](shape, strideIn, strideOut, axes []int,
	dataIn, dataOut []T, fct T, batch int,
) error {
	tmpLen := 0
	for _, a := range axes {
		if shape[a] > tmpLen {
			tmpLen = shape[a]
		}
	}

	scratch, _ := mem.Aligned[T](batch * tmpLen)
	aIn := newMultiArr(shape, strideIn)
	aOut := newMultiArr(shape, strideOut)
	in, out := dataIn, dataOut
	pi := make([]int, batch)
	po := make([]int, batch)

	var plan *PlanR[T]

	for _, axis := range axes {
		itIn := newMultiIter(aIn, axis)
		itOut := newMultiIter(aOut, axis)
		n := itIn.len

		if plan == nil || plan.length != n {
			var err error
			if plan, err = NewPlanR[T](n); err != nil {
				return err
			}
		}

		if batch > 1 {
			for itIn.rem >= batch {
				gatherOffsets(itIn, pi)
				gatherOffsets(itOut, po)

				for j := 0; j < batch; j++ {
					fiber := scratch[j*n : (j+1)*n]
					for i := 0; i < n; i++ {
						fiber[i] = in[pi[j]+i*itIn.str]
					}
				}

				for j := 0; j < batch; j++ {
					plan.Forward(scratch[j*n:(j+1)*n], fct)
				}

				for j := 0; j < batch; j++ {
					hartleyScatter(out, po[j], itOut.str, scratch[j*n:(j+1)*n])
				}
			}
		}

		for itIn.rem > 0 {
			fiber := scratch[:n]
			for i := 0; i < n; i++ {
				fiber[i] = in[itIn.ofs+i*itIn.str]
			}

			plan.Forward(fiber, fct)
			hartleyScatter(out, itOut.ofs, itOut.str, fiber)

			itIn.advance()
			itOut.advance()
		}

		aIn = aOut
		in = out
		fct = 1
	}

	return nil
}

// RealToComplexND transforms exactly one axis of real input into the
// non-redundant complex half-spectrum. Output strides along the axis are
// in complex samples.
func RealToComplexND[T fftypes.Float](shape, strideIn, strideOut []int, axis int,
	dataIn []T, dataOut []Cmplx[T], fct T,
) error {
	n := shape[axis]

	plan, err := NewPlanR[T](n)
	if err != nil {
		return err
	}

	scratch, _ := mem.Aligned[T](n)
	itIn := newMultiIter(newMultiArr(shape, strideIn), axis)
	itOut := newMultiIter(newMultiArr(shape, strideOut), axis)
	sI, sO := itIn.str, itOut.str

	for itIn.rem > 0 {
		for i := 0; i < n; i++ {
			scratch[i] = dataIn[itIn.ofs+i*sI]
		}

		plan.Forward(scratch, fct)

		d0 := itOut.ofs
		dataOut[d0] = Cmplx[T]{scratch[0], 0}

		var i int
		for i = 1; i < n-1; i += 2 {
			dataOut[d0+((i+1)/2)*sO] = Cmplx[T]{scratch[i], scratch[i+1]}
		}

		if i < n {
			dataOut[d0+((i+1)/2)*sO] = Cmplx[T]{scratch[i], 0}
		}

		itIn.advance()
		itOut.advance()
	}

	return nil
}

// ComplexToRealND is the inverse of RealToComplexND: it consumes the
// half-spectrum along one axis and produces real output. The shape is the
// shape of the real output array.
func ComplexToRealND[T fftypes.Float](shape, strideIn, strideOut []int, axis int,
	dataIn []Cmplx[T], dataOut []T, fct T,
) error {
	n := shape[axis]

	plan, err := NewPlanR[T](n)
	if err != nil {
		return err
	}

	scratch, _ := mem.Aligned[T](n)
	itIn := newMultiIter(newMultiArr(shape, strideIn), axis)
	itOut := newMultiIter(newMultiArr(shape, strideOut), axis)
	sI, sO := itIn.str, itOut.str

	for itIn.rem > 0 {
		d0 := itIn.ofs
		scratch[0] = dataIn[d0].R

		var i int
		for i = 1; i < n-1; i += 2 {
			ii := (i + 1) / 2
			scratch[i] = dataIn[d0+ii*sI].R
			scratch[i+1] = dataIn[d0+ii*sI].I
		}

		if i < n {
			scratch[i] = dataIn[d0+((i+1)/2)*sI].R
		}

		plan.Backward(scratch, fct)

		for i := 0; i < n; i++ {
			dataOut[itOut.ofs+i*sO] = scratch[i]
		}

		itIn.advance()
		itOut.advance()
	}

	return nil
}
