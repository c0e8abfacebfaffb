package fftypes

// Complex is a type constraint for the complex sample types accepted by
// the public API.
type Complex interface {
	~complex64 | ~complex128
}

// Float is a type constraint for the real sample types accepted by the
// public API. It doubles as the precision parameter of the internal
// transform engine.
type Float interface {
	~float32 | ~float64
}
