package barometric

// Variant selects which pair of user-facing parameters drives a run.
type Variant int

const (
	// TotalCount fixes the nominal particle count N and the total
	// gravitational energy ratio mg*H/kT; the surface density is derived by
	// normalization.
	TotalCount Variant = iota
	// SurfaceDensity fixes the surface density n0 and the decay rate mg/kT
	// directly.
	SurfaceDensity
)

// Slider ranges and per-variant domain constants.
const (
	MinTotalCount, MaxTotalCount = 20, 200
	MinMgH, MaxMgH               = 0.0, 40.0
	TotalCountHeight             = 100.0
	TotalCountBinWidth           = 2.0

	MinSurfaceDensity, MaxSurfaceDensity = 0.0, 100.0
	MinMgKT, MaxMgKT                     = 0.00001, 0.1
	SurfaceDensityHeight                 = 300.0
	SurfaceDensityBinWidth               = 1.0
)

// Params specifies one recomputation of the gas column. Exactly one variant's
// parameter pair is read, selected by Variant; H and BinWidth apply to both.
type Params struct {
	Variant Variant

	// TotalCount parameters.
	N   int
	MgH float64

	// SurfaceDensity parameters.
	N0   float64
	MgKT float64

	H        float64
	BinWidth float64
}

// Particle is one sampled particle, positioned for scatter plotting: X is a
// random horizontal coordinate in [0, 1) and H is the particle's bin height.
type Particle struct {
	X, H float64
}

// Result holds everything one recomputation produces. Curve and Counts share
// units of expected particles per bin, so they can be drawn on the same axis
// without rescaling.
type Result struct {
	Centers []float64 // bin centers, ascending
	Curve   []float64 // theoretical expected count per bin

	Heights   []float64  // one entry per sampled particle
	Particles []Particle // the same sample with scatter coordinates
	Counts    []int      // histogram of Heights over Centers

	Requested int // nominal total count, 0 for SurfaceDensity runs
	Observed  int // particles actually emitted
	Dropped   int // particles outside the outermost bin windows

	// Observed and theoretical mean heights. Both are NaN for an empty
	// column.
	MeanHeight float64
	CurveMean  float64
}
