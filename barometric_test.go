package barometric

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/torbsorensen/barometric/rand"
)

func TestRunTotalCount(t *testing.T) {
	gen := rand.New(rand.Xorshift, 42)
	p := NewTotalCountParams(100, 10)

	res, err := Run(p, gen)
	assert.NoError(t, err)

	assert.Equal(t, 50, len(res.Centers), "H = 100, width 2")
	assert.Equal(t, len(res.Centers), len(res.Curve))
	assert.Equal(t, len(res.Centers), len(res.Counts))
	assert.Equal(t, 100, res.Requested)

	// Normalization: the curve sums to N before stochastic rounding.
	sum := 0.0
	for _, y := range res.Curve {
		sum += y
	}
	assert.InDelta(t, 100, sum, 1e-9, "curve sums to N")

	// The sample is a few-particle drift away from N, never wildly off.
	assert.Equal(t, len(res.Heights), res.Observed)
	assert.InDelta(t, 100, float64(res.Observed), 50, "observed near N")

	// All bin centers lie inside the binned domain, so nothing is dropped
	// and the histogram partitions the sample.
	assert.Equal(t, 0, res.Dropped)
	countSum := 0
	for _, c := range res.Counts {
		countSum += c
	}
	assert.Equal(t, res.Observed, countSum, "partition")
}

func TestRunSurfaceDensity(t *testing.T) {
	gen := rand.New(rand.Xorshift, 7)
	p := NewSurfaceDensityParams(50, 0.02)

	res, err := Run(p, gen)
	assert.NoError(t, err)

	assert.Equal(t, 300, len(res.Centers), "H = 300, width 1")
	assert.Equal(t, 0, res.Requested, "no nominal count")
	assert.Equal(t, len(res.Heights), len(res.Particles))
	for _, pt := range res.Particles {
		assert.True(t, pt.X >= 0 && pt.X < 1, "scatter coordinate")
		assert.True(t, pt.H >= 0 && pt.H < p.H, "height in domain")
	}

	// Denser near the ground than near the ceiling.
	lower, upper := 0, 0
	for _, h := range res.Heights {
		if h < 150 {
			lower++
		} else {
			upper++
		}
	}
	assert.True(t, lower > upper, "barometric layering")
}

func TestRunZeroSurfaceDensity(t *testing.T) {
	gen := rand.New(rand.Xorshift, 1)
	res, err := Run(NewSurfaceDensityParams(0, 0.01), gen)
	assert.NoError(t, err)

	assert.Equal(t, 0, res.Observed, "deterministically empty")
	for _, c := range res.Counts {
		assert.Equal(t, 0, c)
	}
}

func TestRunMeanHeightDropsWithSteeperDecay(t *testing.T) {
	gen := rand.New(rand.Xorshift, 10)

	shallow, err := Run(NewTotalCountParams(200, 1), gen)
	assert.NoError(t, err)
	steep, err := Run(NewTotalCountParams(200, 40), gen)
	assert.NoError(t, err)

	assert.True(t, steep.MeanHeight < shallow.MeanHeight, "layering")
	assert.True(t, steep.CurveMean < shallow.CurveMean, "curve mean")
	assert.InDelta(t, steep.CurveMean, steep.MeanHeight,
		0.5*steep.CurveMean+5, "sample tracks curve")
}

func TestCheckInit(t *testing.T) {
	cases := []*Params{
		{Variant: TotalCount, N: 10, MgH: 5, H: 100, BinWidth: 2},
		{Variant: TotalCount, N: 500, MgH: 5, H: 100, BinWidth: 2},
		{Variant: TotalCount, N: 100, MgH: -1, H: 100, BinWidth: 2},
		{Variant: TotalCount, N: 100, MgH: 50, H: 100, BinWidth: 2},
		{Variant: TotalCount, N: 100, MgH: 5, H: 0, BinWidth: 2},
		{Variant: TotalCount, N: 100, MgH: 5, H: -10, BinWidth: 2},
		{Variant: TotalCount, N: 100, MgH: 5, H: 100, BinWidth: 0},
		{Variant: TotalCount, N: 100, MgH: 5, H: 100, BinWidth: 200},
		{Variant: SurfaceDensity, N0: -1, MgKT: 0.01, H: 300, BinWidth: 1},
		{Variant: SurfaceDensity, N0: 500, MgKT: 0.01, H: 300, BinWidth: 1},
		{Variant: SurfaceDensity, N0: 50, MgKT: 0, H: 300, BinWidth: 1},
		{Variant: SurfaceDensity, N0: 50, MgKT: 1, H: 300, BinWidth: 1},
		{Variant: Variant(99), H: 100, BinWidth: 2},
	}

	for i, p := range cases {
		assert.Error(t, p.CheckInit(), "case %d", i)
		_, err := Run(p, rand.New(rand.Xorshift, 1))
		assert.Error(t, err, "Run rejects case %d", i)
	}

	assert.NoError(t, NewTotalCountParams(20, 0).CheckInit(), "range edges")
	assert.NoError(t, NewTotalCountParams(200, 40).CheckInit())
	assert.NoError(t, NewSurfaceDensityParams(0, 0.00001).CheckInit())
	assert.NoError(t, NewSurfaceDensityParams(100, 0.1).CheckInit())
}

func TestDerive(t *testing.T) {
	p := NewTotalCountParams(100, 10)
	centers := []float64{1, 3, 5}

	_, mgkT, err := p.Derive(centers)
	assert.NoError(t, err)
	assert.InDelta(t, 0.1, mgkT, 1e-12, "mgkT = mgH / H")

	p2 := NewSurfaceDensityParams(50, 0.02)
	n0, mgkT, err := p2.Derive(centers)
	assert.NoError(t, err)
	assert.Equal(t, 50.0, n0, "direct n0")
	assert.Equal(t, 0.02, mgkT, "direct mgkT")
}
