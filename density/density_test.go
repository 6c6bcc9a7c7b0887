package density

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvalUniform(t *testing.T) {
	xs := []float64{1, 3, 5}
	assert.Equal(t, []float64{10, 10, 10}, Eval(xs, 10, 0), "mgkT = 0")
}

func TestEvalNonIncreasing(t *testing.T) {
	xs := make([]float64, 100)
	for i := range xs {
		xs[i] = float64(i) * 0.5
	}

	for _, mgkT := range []float64{0, 0.0001, 0.1, 2} {
		ys := Eval(xs, 25, mgkT)
		for i := range ys {
			assert.True(t, ys[i] >= 0, "non-negative")
			if i > 0 {
				assert.True(t, ys[i] <= ys[i-1], "non-increasing")
			}
		}
	}
}

func TestEvalZeroSurfaceDensity(t *testing.T) {
	ys := Eval([]float64{0, 10, 20}, 0, 0.05)
	assert.Equal(t, []float64{0, 0, 0}, ys, "n0 = 0")
}

func TestNormalizeSumsToTotal(t *testing.T) {
	xs := make([]float64, 50)
	for i := range xs {
		xs[i] = 2 * (float64(i) + 0.5)
	}

	for _, mgkT := range []float64{0, 0.01, 0.1, 0.4} {
		n0, err := Normalize(xs, mgkT, 100)
		assert.NoError(t, err)

		sum := 0.0
		for _, y := range Eval(xs, n0, mgkT) {
			sum += y
		}
		assert.InDelta(t, 100, sum, 1e-9, "normalized sum")
	}
}

func TestNormalizeUniform(t *testing.T) {
	xs := []float64{1, 3, 5, 7}
	n0, err := Normalize(xs, 0, 100)
	assert.NoError(t, err)
	assert.InDelta(t, 25, n0, 1e-12, "uniform split")
}

func TestNormalizeUnderflow(t *testing.T) {
	// exp(-x) underflows to zero for x beyond roughly 745.
	xs := []float64{1000, 2000, 3000}
	_, err := Normalize(xs, 1, 100)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnderflow), "underflow error class")
}
