package pocketfft_test

import (
	"fmt"

	pocketfft "github.com/MeKo-Christian/algo-pocketfft"
)

func ExamplePlan() {
	plan, err := pocketfft.NewPlan[complex128](4)
	if err != nil {
		panic(err)
	}

	data := []complex128{1, 0, 0, 0}
	if err := plan.Forward(data, 1); err != nil {
		panic(err)
	}

	fmt.Println(data)
	// Output: [(1+0i) (1+0i) (1+0i) (1+0i)]
}

func ExampleFFT() {
	// one row of four samples, transformed along axis 1 of a 1x4 array
	in := []complex128{1, 1, 1, 1}
	out := make([]complex128, 4)

	shape := []int{1, 4}
	strides := []int{4, 1}

	if err := pocketfft.FFT(shape, strides, strides, []int{1}, true, in, out, 0.25); err != nil {
		panic(err)
	}

	fmt.Println(out)
	// Output: [(1+0i) (0+0i) (0+0i) (0+0i)]
}
