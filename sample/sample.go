/*package sample converts a continuous density profile into a discrete
multiset of particle heights via per-bin stochastic rounding.
*/
package sample

import (
	"fmt"
	"math"

	"github.com/torbsorensen/barometric/rand"
)

// Count rounds the expected per-bin density d to an integer particle count
// using one uniform draw from gen. The count is ceil(d - u) clamped at zero,
// so the fractional part of d survives in expectation: d = 2.3 emits 2
// particles 70% of the time and 3 particles 30% of the time.
func Count(d float64, gen *rand.Generator) int {
	n := int(math.Ceil(d - gen.Uniform()))
	if n < 0 {
		n = 0
	}
	return n
}

// Heights emits particle heights for the bin centers xs with expected
// densities ds, in ascending bin order. One independent draw is consumed per
// bin. The total emitted count approximates, but in general does not equal,
// the sum of ds; callers that care about the drift should compare against
// len of the returned slice.
func Heights(xs, ds []float64, gen *rand.Generator) []float64 {
	if len(xs) != len(ds) {
		panic(fmt.Sprintf(
			"Internal inconsistency: %d bin centers but %d density values.",
			len(xs), len(ds),
		))
	}

	expected := 0.0
	for _, d := range ds {
		if d > 0 {
			expected += d
		}
	}

	out := make([]float64, 0, int(expected)+len(xs))
	for i, x := range xs {
		n := Count(ds[i], gen)
		for j := 0; j < n; j++ {
			out = append(out, x)
		}
	}
	return out
}
