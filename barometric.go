/*package barometric simulates the barometric (isothermal) distribution of an
ideal classical gas under uniform gravity. A run discretizes the column into
height bins, evaluates the theoretical profile, stochastically rounds the
per-bin expected counts into discrete particles, and re-bins the particles
into a histogram comparable against the theoretical curve.
*/
package barometric

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/torbsorensen/barometric/density"
	"github.com/torbsorensen/barometric/hist"
	"github.com/torbsorensen/barometric/rand"
	"github.com/torbsorensen/barometric/sample"
)

// NewTotalCountParams returns Params for a TotalCount run with the fixed
// domain constants of that variant.
func NewTotalCountParams(n int, mgH float64) *Params {
	return &Params{
		Variant:  TotalCount,
		N:        n,
		MgH:      mgH,
		H:        TotalCountHeight,
		BinWidth: TotalCountBinWidth,
	}
}

// NewSurfaceDensityParams returns Params for a SurfaceDensity run with the
// fixed domain constants of that variant.
func NewSurfaceDensityParams(n0, mgkT float64) *Params {
	return &Params{
		Variant:  SurfaceDensity,
		N0:       n0,
		MgKT:     mgkT,
		H:        SurfaceDensityHeight,
		BinWidth: SurfaceDensityBinWidth,
	}
}

// CheckInit validates p against the variant's recognized parameter ranges.
func (p *Params) CheckInit() error {
	if p.H <= 0 {
		return fmt.Errorf("Max height must be positive, but is %g.", p.H)
	}
	if p.BinWidth <= 0 || p.BinWidth > p.H {
		return fmt.Errorf(
			"Bin width must be in range (0, %g], but is %g.", p.H, p.BinWidth,
		)
	}

	switch p.Variant {
	case TotalCount:
		if p.N < MinTotalCount || p.N > MaxTotalCount {
			return fmt.Errorf(
				"N must be in range [%d, %d], but is %d.",
				MinTotalCount, MaxTotalCount, p.N,
			)
		}
		if p.MgH < MinMgH || p.MgH > MaxMgH {
			return fmt.Errorf(
				"mg*H/kT must be in range [%g, %g], but is %g.",
				MinMgH, MaxMgH, p.MgH,
			)
		}
	case SurfaceDensity:
		if p.N0 < MinSurfaceDensity || p.N0 > MaxSurfaceDensity {
			return fmt.Errorf(
				"n0 must be in range [%g, %g], but is %g.",
				MinSurfaceDensity, MaxSurfaceDensity, p.N0,
			)
		}
		if p.MgKT < MinMgKT || p.MgKT > MaxMgKT {
			return fmt.Errorf(
				"mg/kT must be in range [%g, %g], but is %g.",
				MinMgKT, MaxMgKT, p.MgKT,
			)
		}
	default:
		return fmt.Errorf("Unrecognized variant %d.", p.Variant)
	}

	return nil
}

// Derive reduces p to the surface density and decay rate shared by both
// variants. For TotalCount runs mg/kT = mgH / H and n0 is normalized so the
// curve summed over the given bin centers equals N.
func (p *Params) Derive(centers []float64) (n0, mgkT float64, err error) {
	switch p.Variant {
	case TotalCount:
		mgkT = p.MgH / p.H
		n0, err = density.Normalize(centers, mgkT, float64(p.N))
		if err != nil {
			return 0, 0, err
		}
		return n0, mgkT, nil
	case SurfaceDensity:
		return p.N0, p.MgKT, nil
	}
	return 0, 0, fmt.Errorf("Unrecognized variant %d.", p.Variant)
}

// Run recomputes the full column for the given parameters. It is synchronous
// and either returns a complete Result or an error; there are no partial
// results. All randomness is drawn from gen.
func Run(p *Params, gen *rand.Generator) (*Result, error) {
	if err := p.CheckInit(); err != nil {
		return nil, err
	}

	centers, err := hist.Centers(p.H, p.BinWidth)
	if err != nil {
		return nil, err
	}

	n0, mgkT, err := p.Derive(centers)
	if err != nil {
		return nil, err
	}

	curve := density.Eval(centers, n0, mgkT)
	heights := sample.Heights(centers, curve, gen)
	counts, dropped, err := hist.Counts(centers, heights)
	if err != nil {
		return nil, err
	}

	particles := make([]Particle, len(heights))
	for i, h := range heights {
		particles[i] = Particle{X: gen.Uniform(), H: h}
	}

	res := &Result{
		Centers:   centers,
		Curve:     curve,
		Heights:   heights,
		Particles: particles,
		Counts:    counts,
		Observed:  len(heights),
		Dropped:   dropped,

		MeanHeight: math.NaN(),
		CurveMean:  math.NaN(),
	}
	if p.Variant == TotalCount {
		res.Requested = p.N
	}

	if len(heights) > 0 {
		res.MeanHeight = stat.Mean(heights, nil)
	}
	if n0 > 0 {
		res.CurveMean = stat.Mean(centers, curve)
	}

	return res, nil
}
