package pocketfft

import (
	"errors"

	"github.com/MeKo-Christian/algo-pocketfft/internal/fft"
)

// Sentinel errors returned by plan construction and the transform entry
// points.
var (
	// ErrInvalidLength is returned when a zero-length transform is
	// requested.
	ErrInvalidLength = fft.ErrInvalidLength

	// ErrTooManyFactors is returned when a length's factor list would
	// exceed its fixed capacity.
	ErrTooManyFactors = fft.ErrTooManyFactors

	// ErrShape is returned when the axes list does not fit the shape, or
	// the stride arrays disagree with the shape's dimensionality.
	ErrShape = errors.New("pocketfft: axes do not fit the shape")

	// ErrNilSlice is returned when a nil slice is passed to a transform.
	ErrNilSlice = errors.New("pocketfft: nil slice")

	// ErrLengthMismatch is returned when a slice is too short for the
	// plan's length.
	ErrLengthMismatch = errors.New("pocketfft: slice length mismatch")

	// ErrBounds is returned when a stride/offset combination walks
	// outside the supplied data.
	ErrBounds = errors.New("pocketfft: stride pattern leaves the data")

	// ErrNotImplemented is returned for sample types outside the four
	// canonical complex64/complex128/float32/float64 instantiations.
	ErrNotImplemented = errors.New("pocketfft: not implemented")
)

// recoverBounds converts indexing panics caused by hostile stride
// patterns into ErrBounds, so every failure surfaces as an error at the
// boundary. The output must be treated as indeterminate afterwards.
func recoverBounds(err *error) {
	if r := recover(); r != nil {
		*err = ErrBounds
	}
}
