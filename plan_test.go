package pocketfft

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanLength1(t *testing.T) {
	plan, err := NewPlan[complex128](1)
	require.NoError(t, err)
	assert.Equal(t, 1, plan.Len())

	data := []complex128{3 + 4i}
	require.NoError(t, plan.Forward(data, 0.5))
	assertApproxComplex128Tolf(t, data[0], 1.5+2i, 0, "forward length 1")

	data = []complex128{3 + 4i}
	require.NoError(t, plan.Backward(data, 0.5))
	assertApproxComplex128Tolf(t, data[0], 1.5+2i, 0, "backward length 1")
}

func TestPlanImpulse4(t *testing.T) {
	plan, err := NewPlan[complex128](4)
	require.NoError(t, err)

	data := []complex128{1, 0, 0, 0}
	require.NoError(t, plan.Forward(data, 1))

	for i, x := range data {
		assertApproxComplex128Tolf(t, x, 1, 0, "impulse bin %d", i)
	}

	require.NoError(t, plan.Backward(data, 0.25))
	assertApproxComplex128Tolf(t, data[0], 1, 1e-15, "round trip bin 0")

	for i := 1; i < 4; i++ {
		assertApproxComplex128Tolf(t, data[i], 0, 1e-15, "round trip bin %d", i)
	}
}

func TestPlanPrime13Impulse(t *testing.T) {
	plan, err := NewPlan[complex128](13)
	require.NoError(t, err)

	data := make([]complex128, 13)
	data[0] = 1
	require.NoError(t, plan.Forward(data, 1))

	for i, x := range data {
		assertApproxFloat64Tolf(t, cmplx.Abs(x), 1, 1e-13, "|X[%d]|", i)
	}
}

func TestPlanPrime97RoundTrip(t *testing.T) {
	const n = 97

	plan, err := NewPlan[complex128](n)
	require.NoError(t, err)

	in := make([]complex128, n)
	for k := range in {
		in[k] = complex(math.Sin(float64(k)), math.Cos(float64(2*k)))
	}

	data := append([]complex128(nil), in...)
	require.NoError(t, plan.Forward(data, 1))
	require.NoError(t, plan.Backward(data, 1.0/n))

	for i := range data {
		assertApproxComplex128Tolf(t, data[i], in[i], 1e-13, "bin %d", i)
	}
}

func TestPlanComplex64(t *testing.T) {
	plan, err := NewPlan[complex64](24)
	require.NoError(t, err)

	in := make([]complex64, 24)
	for i := range in {
		in[i] = complex(float32(i), float32(-i))
	}

	data := append([]complex64(nil), in...)
	require.NoError(t, plan.Forward(data, 1))
	require.NoError(t, plan.Backward(data, 1.0/24))

	for i := range data {
		if cmplx.Abs(complex128(data[i]-in[i])) > 1e-3 {
			t.Fatalf("bin %d: %v vs %v", i, data[i], in[i])
		}
	}
}

func TestPlanErrors(t *testing.T) {
	_, err := NewPlan[complex128](0)
	assert.ErrorIs(t, err, ErrInvalidLength)

	plan, err := NewPlan[complex128](8)
	require.NoError(t, err)

	assert.ErrorIs(t, plan.Forward(nil, 1), ErrNilSlice)
	assert.ErrorIs(t, plan.Forward(make([]complex128, 4), 1), ErrLengthMismatch)
}

func TestRealPlanPackedSpectrum(t *testing.T) {
	plan, err := NewRealPlan64(6)
	require.NoError(t, err)
	assert.Equal(t, 6, plan.Len())

	data := []float64{1, 2, 3, 4, 5, 6}
	require.NoError(t, plan.Forward(data, 1))

	want := []float64{21, -3, 5.196152422706632, -3, 1.7320508075688772, -3}
	for i := range want {
		assertApproxFloat64Tolf(t, data[i], want[i], 1e-13, "packed[%d]", i)
	}

	require.NoError(t, plan.Backward(data, 1.0/6))

	for i := range data {
		assertApproxFloat64Tolf(t, data[i], float64(i+1), 1e-13, "sample %d", i)
	}
}

func TestRealPlan32RoundTrip(t *testing.T) {
	plan, err := NewRealPlan32(20)
	require.NoError(t, err)

	in := make([]float32, 20)
	for i := range in {
		in[i] = float32(math.Cos(float64(i) * 1.3))
	}

	data := append([]float32(nil), in...)
	require.NoError(t, plan.Forward(data, 1))
	require.NoError(t, plan.Backward(data, 1.0/20))

	for i := range data {
		if math.Abs(float64(data[i]-in[i])) > 1e-5 {
			t.Fatalf("sample %d: %v vs %v", i, data[i], in[i])
		}
	}
}

func TestRealPlanErrors(t *testing.T) {
	_, err := NewRealPlan64(0)
	assert.ErrorIs(t, err, ErrInvalidLength)

	_, err = NewRealPlan32(0)
	assert.ErrorIs(t, err, ErrInvalidLength)

	plan, err := NewRealPlan64(8)
	require.NoError(t, err)
	assert.ErrorIs(t, plan.Forward(nil, 1), ErrNilSlice)
	assert.ErrorIs(t, plan.Backward(make([]float64, 3), 1), ErrLengthMismatch)
}

// backward(forward(x), 1/n) must reproduce x within 20nε in l2 for every
// length, including the Bluestein lengths
func TestPlanRoundTripProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	rng := rand.New(rand.NewSource(99))

	properties.Property("complex round trip", prop.ForAll(
		func(n int) bool {
			plan, err := NewPlan[complex128](n)
			if err != nil {
				return false
			}

			in := make([]complex128, n)
			for i := range in {
				in[i] = complex(rng.Float64()*2-1, rng.Float64()*2-1)
			}

			data := append([]complex128(nil), in...)

			if plan.Forward(data, 1) != nil || plan.Backward(data, 1/float64(n)) != nil {
				return false
			}

			return relErrL2(data, in) < 20*float64(n)*2.22e-16
		},
		gen.IntRange(1, 128),
	))

	properties.Property("real round trip", prop.ForAll(
		func(n int) bool {
			plan, err := NewRealPlan64(n)
			if err != nil {
				return false
			}

			in := make([]float64, n)
			for i := range in {
				in[i] = rng.Float64()*2 - 1
			}

			data := append([]float64(nil), in...)

			if plan.Forward(data, 1) != nil || plan.Backward(data, 1/float64(n)) != nil {
				return false
			}

			for i := range data {
				if math.Abs(data[i]-in[i]) > 20*float64(n)*2.22e-16 {
					return false
				}
			}

			return true
		},
		gen.IntRange(1, 128),
	))

	properties.TestingRun(t)
}
