// Package cpu detects the SIMD capabilities that influence how the N-D
// driver batches fibers.
package cpu

import "golang.org/x/sys/cpu"

// Features describes the vector capabilities relevant to fiber batching.
type Features struct {
	AVX2   bool
	AVX512 bool
	NEON   bool
}

// DetectFeatures queries the running CPU.
func DetectFeatures() Features {
	return Features{
		AVX2:   cpu.X86.HasAVX2,
		AVX512: cpu.X86.HasAVX512F,
		NEON:   cpu.ARM64.HasASIMD,
	}
}

// FiberBatch reports how many 1-D fibers the N-D driver gathers into
// scratch per pass. Wider vector units justify touching more parallel
// fibers per gather, which amortizes strided cache-line traffic.
func FiberBatch(f Features) int {
	switch {
	case f.AVX512:
		return 8
	case f.AVX2, f.NEON:
		return 4
	}

	return 1
}
