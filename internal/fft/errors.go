package fft

import "errors"

// Sentinel errors raised by plan construction. The root package re-exports
// them alongside the boundary-level errors.
var (
	// ErrInvalidLength is returned when a zero-length transform is
	// requested from any plan constructor.
	ErrInvalidLength = errors.New("pocketfft: invalid transform length")

	// ErrTooManyFactors is returned when the factor list of a length would
	// exceed its fixed capacity. Unreachable for realistic 64-bit lengths,
	// but guarded.
	ErrTooManyFactors = errors.New("pocketfft: too many prime factors")
)

// maxFactors is the capacity of a plan's factor list.
const maxFactors = 25
