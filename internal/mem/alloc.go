// Package mem provides 64-byte aligned slice allocation for twiddle and
// scratch buffers, so SIMD loads on the hot paths never straddle a cache
// line.
package mem

import "unsafe"

// Alignment is the boundary all plan and scratch buffers are placed on.
const Alignment = 64

// Aligned returns an n-element slice whose first element sits on a
// 64-byte boundary, together with the backing array that keeps the
// storage reachable. The caller must retain the backing slice for as long
// as the aligned slice is in use.
func Aligned[T any](n int) ([]T, []byte) {
	if n == 0 {
		return nil, nil
	}

	var zero T

	size := int(unsafe.Sizeof(zero))
	backing := make([]byte, n*size+Alignment)
	off := 0

	if rem := uintptr(unsafe.Pointer(&backing[0])) % Alignment; rem != 0 {
		off = Alignment - int(rem)
	}

	return unsafe.Slice((*T)(unsafe.Pointer(&backing[off])), n), backing
}
