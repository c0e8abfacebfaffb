// Package pocketfft provides fast Fourier transforms of arbitrary length
// over strided multi-dimensional data.
//
// Lengths dominated by small prime factors run through a mixed-radix
// Cooley-Tukey decomposition with hardcoded kernels for radix 2, 3, 4, 5,
// 7 and 11; lengths containing a large prime factor fall back to
// Bluestein's chirp-z algorithm. Complex-to-complex, real-to-complex,
// complex-to-real and Hartley transforms are available over arbitrary
// subsets of axes, in single or double precision.
//
// Plans are immutable after construction and may be shared across
// goroutines as long as each call operates on distinct buffers. Transform
// calls allocate their scratch per call and hold no state.
package pocketfft
