package pocketfft

import (
	"github.com/MeKo-Christian/algo-pocketfft/internal/cpu"
	"github.com/MeKo-Christian/algo-pocketfft/internal/fft"
)

// fiberBatch is the number of fibers the N-D driver gathers per pass,
// resolved once from the CPU features.
var fiberBatch = cpu.FiberBatch(cpu.DetectFeatures())

// checkND validates the shape/stride/axes arrays shared by all N-D entry
// points.
func checkND(shape, strideIn, strideOut, axes []int) error {
	if len(strideIn) != len(shape) || len(strideOut) != len(shape) {
		return ErrShape
	}

	if len(axes) > len(shape) {
		return ErrShape
	}

	for _, a := range axes {
		if a < 0 || a >= len(shape) {
			return ErrShape
		}
	}

	for _, n := range shape {
		if n < 0 {
			return ErrShape
		}
	}

	return nil
}

// FFT computes a complex transform of in over the given axes, in order,
// writing to out. Strides are signed and counted in complex samples; in
// and out may alias for an in-place transform. The normalization fct is
// applied exactly once regardless of how many axes are transformed.
//
// Transforming multiple axes equals composing single-axis transforms in
// the supplied order; changing the order may change the result bit
// pattern through floating-point non-associativity.
//
// On a non-nil error the contents of out are indeterminate.
func FFT[C Complex](shape, strideIn, strideOut, axes []int, forward bool,
	in, out []C, fct float64,
) (err error) {
	if in == nil || out == nil {
		return ErrNilSlice
	}

	if err := checkND(shape, strideIn, strideOut, axes); err != nil {
		return err
	}

	defer recoverBounds(&err)

	switch src := any(in).(type) {
	case []complex64:
		dst := any(out).([]complex64)

		return fft.ComplexND(shape, strideIn, strideOut, axes, forward,
			asCmplx32(src), asCmplx32(dst), float32(fct), fiberBatch)
	case []complex128:
		dst := any(out).([]complex128)

		return fft.ComplexND(shape, strideIn, strideOut, axes, forward,
			asCmplx64(src), asCmplx64(dst), fct, fiberBatch)
	}

	return ErrNotImplemented
}

// Hartley computes the discrete Hartley transform of real data over the
// given axes, in order. The transform is self-inverse up to a factor of
// 1/n per axis. Strides are in real samples.
//
// On a non-nil error the contents of out are indeterminate.
func Hartley[F Float](shape, strideIn, strideOut, axes []int,
	in, out []F, fct float64,
) (err error) {
	if in == nil || out == nil {
		return ErrNilSlice
	}

	if err := checkND(shape, strideIn, strideOut, axes); err != nil {
		return err
	}

	defer recoverBounds(&err)

	switch src := any(in).(type) {
	case []float32:
		dst := any(out).([]float32)

		return fft.HartleyND(shape, strideIn, strideOut, axes,
			src, dst, float32(fct), fiberBatch)
	case []float64:
		dst := any(out).([]float64)

		return fft.HartleyND(shape, strideIn, strideOut, axes,
			src, dst, fct, fiberBatch)
	}

	return ErrNotImplemented
}

// RealToComplex64 transforms one axis of real float64 data into the
// non-redundant complex half-spectrum of n/2+1 samples. Input strides are
// in real samples, output strides in complex samples.
//
// On a non-nil error the contents of out are indeterminate.
func RealToComplex64(shape, strideIn, strideOut []int, axis int,
	in []float64, out []complex128, fct float64,
) (err error) {
	if in == nil || out == nil {
		return ErrNilSlice
	}

	if err := checkND(shape, strideIn, strideOut, []int{axis}); err != nil {
		return err
	}

	defer recoverBounds(&err)

	return fft.RealToComplexND(shape, strideIn, strideOut, axis, in, asCmplx64(out), fct)
}

// RealToComplex32 is the float32 counterpart of RealToComplex64. The
// normalization factor remains a float64 and is down-cast internally.
func RealToComplex32(shape, strideIn, strideOut []int, axis int,
	in []float32, out []complex64, fct float64,
) (err error) {
	if in == nil || out == nil {
		return ErrNilSlice
	}

	if err := checkND(shape, strideIn, strideOut, []int{axis}); err != nil {
		return err
	}

	defer recoverBounds(&err)

	return fft.RealToComplexND(shape, strideIn, strideOut, axis, in, asCmplx32(out), float32(fct))
}

// ComplexToReal64 is the inverse of RealToComplex64: it consumes the
// half-spectrum along one axis and produces real output. shape is the
// shape of the real output array; imaginary parts of the DC and Nyquist
// bins are ignored.
//
// On a non-nil error the contents of out are indeterminate.
func ComplexToReal64(shape, strideIn, strideOut []int, axis int,
	in []complex128, out []float64, fct float64,
) (err error) {
	if in == nil || out == nil {
		return ErrNilSlice
	}

	if err := checkND(shape, strideIn, strideOut, []int{axis}); err != nil {
		return err
	}

	defer recoverBounds(&err)

	return fft.ComplexToRealND(shape, strideIn, strideOut, axis, asCmplx64(in), out, fct)
}

// ComplexToReal32 is the float32 counterpart of ComplexToReal64.
func ComplexToReal32(shape, strideIn, strideOut []int, axis int,
	in []complex64, out []float32, fct float64,
) (err error) {
	if in == nil || out == nil {
		return ErrNilSlice
	}

	if err := checkND(shape, strideIn, strideOut, []int{axis}); err != nil {
		return err
	}

	defer recoverBounds(&err)

	return fft.ComplexToRealND(shape, strideIn, strideOut, axis, asCmplx32(in), out, float32(fct))
}
