/*package density evaluates the barometric density profile of an isothermal
gas column in uniform gravity, n(h) = n0 * exp(-(mg/kT) * h).
*/
package density

import (
	"fmt"
	"math"
)

// ErrUnderflow is returned by Normalize when every density term underflows
// to zero, so no finite surface density can reproduce the requested total.
var ErrUnderflow = fmt.Errorf("every density term underflowed to zero")

// EvalAt returns the number density at height x for a column with surface
// density n0 and decay rate mgkT. It is defined for all finite inputs: a zero
// mgkT gives a uniform column and a negative mgkT gives an (unphysical)
// inverted profile.
func EvalAt(x, n0, mgkT float64) float64 {
	return n0 * math.Exp(-mgkT*x)
}

// Eval evaluates the profile at every height in xs.
func Eval(xs []float64, n0, mgkT float64) []float64 {
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = EvalAt(x, n0, mgkT)
	}
	return ys
}

// Normalize returns the surface density n0 for which the profile summed over
// the bin heights xs equals total exactly, up to floating point error. If the
// sum of density terms underflows to zero or is not finite, Normalize returns
// ErrUnderflow instead of an infinite n0.
func Normalize(xs []float64, mgkT, total float64) (n0 float64, err error) {
	sum := 0.0
	for _, x := range xs {
		sum += math.Exp(-mgkT * x)
	}

	if sum == 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		return 0, fmt.Errorf(
			"Cannot normalize to a total of %g over %d bins with "+
				"mg/kT = %g: %w", total, len(xs), mgkT, ErrUnderflow,
		)
	}

	return total / sum, nil
}
