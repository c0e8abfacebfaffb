package fft

import "testing"

// both iterators of a lock-step pair must cover exactly the product of
// the retained extents and finish together
func TestMultiIterLockStep(t *testing.T) {
	shapes := [][]int{
		{5},
		{4, 6},
		{3, 4, 5},
		{2, 1, 7, 3},
	}

	for _, shape := range shapes {
		for axis := range shape {
			strideIn := rowMajorStrides(shape)
			strideOut := rowMajorStrides(shape)

			itIn := newMultiIter(newMultiArr(shape, strideIn), axis)
			itOut := newMultiIter(newMultiArr(shape, strideOut), axis)

			want := 1
			for i, n := range shape {
				if i != axis {
					want *= n
				}
			}

			steps := 0
			for !itIn.done {
				if itOut.done {
					t.Fatalf("shape %v axis %d: iterators out of step", shape, axis)
				}

				if itIn.ofs != itOut.ofs {
					t.Fatalf("shape %v axis %d: offsets diverged", shape, axis)
				}

				steps++
				itIn.advance()
				itOut.advance()
			}

			if !itOut.done {
				t.Fatalf("shape %v axis %d: second iterator not done", shape, axis)
			}

			if steps != want {
				t.Fatalf("shape %v axis %d: %d steps, want %d", shape, axis, steps, want)
			}
		}
	}
}

func TestMultiIterZeroExtent(t *testing.T) {
	it := newMultiIter(newMultiArr([]int{0, 4}, []int{4, 1}), 1)
	if !it.done {
		t.Fatal("iterator over a zero extent must start done")
	}
}

func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	s := 1

	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = s
		s *= shape[i]
	}

	return strides
}
