/*package hist bins sample heights onto a fixed sequence of bin centers. Bin
edges are the midpoints between adjacent centers, with the outermost edges
mirroring the first and last spacings.
*/
package hist

import (
	"fmt"
	"math"
	"sort"
)

// Centers returns fixed-step bin centers covering [0, max): the ith center is
// width * (i + 0.5), and the number of bins is floor(max / width). The floor
// is taken with a small tolerance so non-representable ratios like 0.3 / 0.1
// do not lose their last bin.
func Centers(max, width float64) ([]float64, error) {
	if max <= 0 {
		return nil, fmt.Errorf("Max height must be positive, but is %g.", max)
	}
	if width <= 0 {
		return nil, fmt.Errorf("Bin width must be positive, but is %g.", width)
	}

	centers := make([]float64, int(math.Floor(max/width+1e-9)))
	for i := range centers {
		centers[i] = width * (float64(i) + 0.5)
	}
	return centers, nil
}

// Counts bins every height in data onto the given bin centers and returns the
// per-bin counts along with the number of dropped samples. Bin i covers the
// half-open window [edge[i], edge[i+1]), where interior edges are midpoints
// between adjacent centers. Samples outside the outermost edges are not
// counted; they are tallied in dropped so callers can detect a domain that is
// too small for the sample.
//
// Centers must be strictly increasing and there must be at least two of them,
// since a single center has no neighbor to derive a window width from.
// Uniform spacing is not required.
func Counts(centers, data []float64) (counts []int, dropped int, err error) {
	if len(centers) < 2 {
		return nil, 0, fmt.Errorf(
			"Need at least 2 bin centers, but got %d.", len(centers),
		)
	}

	n := len(centers)
	edges := make([]float64, n+1)
	for i := 1; i < n; i++ {
		if centers[i] <= centers[i-1] {
			return nil, 0, fmt.Errorf(
				"Bin centers must be strictly increasing, but center %d "+
					"is %g and center %d is %g.",
				i-1, centers[i-1], i, centers[i],
			)
		}
		edges[i] = (centers[i-1] + centers[i]) / 2
	}
	edges[0] = centers[0] - (centers[1]-centers[0])/2
	edges[n] = centers[n-1] + (centers[n-1]-centers[n-2])/2

	counts = make([]int, n)
	for _, h := range data {
		// Smallest i with edges[i] >= h. Lower edges are inclusive, so an
		// exact hit lands in the bin it opens.
		i := sort.SearchFloat64s(edges, h)
		bin := i - 1
		if i < len(edges) && edges[i] == h {
			bin = i
		}

		if bin < 0 || bin >= n {
			dropped++
			continue
		}
		counts[bin]++
	}

	return counts, dropped, nil
}
