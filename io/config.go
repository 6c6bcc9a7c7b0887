/*package io reads the configuration files and sample tables used by the
command line front end.
*/
package io

import (
	"fmt"

	"github.com/torbsorensen/barometric"
)

const ExampleSimulateFile = `[Simulate]

#######################
# Required Parameters #
#######################

# Variant selects which parameter pair drives the run. Accepted values are
# TotalCount and SurfaceDensity.
Variant = TotalCount

# TotalCount runs fix the nominal particle count N (in [20, 200]) and the
# total gravitational energy ratio mg*H/kT (in [0, 40]). The surface density
# is derived so the expected counts sum to N.
N   = 100
MgH = 10

# SurfaceDensity runs fix the surface density n0 (in [0, 100]) and the decay
# rate mg/kT (in [0.00001, 0.1]) directly.
# N0   = 50
# MgKT = 0.01

# File the figure will be written to.
PlotFile = column.png

#######################
# Optional Parameters #
#######################

# File the sampled particles and histogram will be written to as a plain text
# table. This file can be re-binned later with the Rebin mode.
# SampleFile = sample.txt

# Seed for the random number generator. A zero or unset seed falls back to
# the wall clock, so use a nonzero value for reproducible runs.
# Seed = 42

# Output file which is useful for debugging.
# LogFile = log.out`

const ExampleRebinFile = `[Rebin]

#######################
# Required Parameters #
#######################

# A sample table previously written by the Simulate mode's SampleFile option.
SampleFile = sample.txt

# The new binning. Bin centers are laid out on [0, MaxHeight) with the given
# width.
MaxHeight = 100
BinWidth  = 5

# File the re-binned figure will be written to.
PlotFile = rebin.png

#######################
# Optional Parameters #
#######################

# Output file which is useful for debugging.
# LogFile = log.out`

type SimulateConfig struct {
	// Required
	Variant  string
	PlotFile string

	// Variant parameters
	N   int
	MgH float64

	N0   float64
	MgKT float64

	// Optional
	SampleFile string
	Seed       int64
	LogFile    string
}

type SimulateWrapper struct {
	Simulate SimulateConfig
}

func DefaultSimulateWrapper() *SimulateWrapper {
	return &SimulateWrapper{}
}

// Params converts the config into validated run parameters.
func (con *SimulateConfig) Params() (*barometric.Params, error) {
	var p *barometric.Params
	switch con.Variant {
	case "TotalCount":
		p = barometric.NewTotalCountParams(con.N, con.MgH)
	case "SurfaceDensity":
		p = barometric.NewSurfaceDensityParams(con.N0, con.MgKT)
	default:
		return nil, fmt.Errorf(
			"Unrecognized 'Variant' value '%s'. The only accepted values "+
				"are TotalCount and SurfaceDensity.", con.Variant,
		)
	}

	if err := p.CheckInit(); err != nil {
		return nil, err
	}
	return p, nil
}

func (con *SimulateConfig) ValidPlotFile() bool { return con.PlotFile != "" }

type RebinConfig struct {
	// Required
	SampleFile string
	MaxHeight  float64
	BinWidth   float64
	PlotFile   string

	// Optional
	LogFile string
}

type RebinWrapper struct {
	Rebin RebinConfig
}

func DefaultRebinWrapper() *RebinWrapper {
	return &RebinWrapper{}
}

func (con *RebinConfig) ValidSampleFile() bool { return con.SampleFile != "" }
func (con *RebinConfig) ValidPlotFile() bool   { return con.PlotFile != "" }

func (con *RebinConfig) CheckInit() error {
	if con.MaxHeight <= 0 {
		return fmt.Errorf(
			"'MaxHeight' must be positive, but is %g.", con.MaxHeight,
		)
	}
	if con.BinWidth <= 0 || con.BinWidth > con.MaxHeight {
		return fmt.Errorf(
			"'BinWidth' must be in range (0, %g], but is %g.",
			con.MaxHeight, con.BinWidth,
		)
	}
	return nil
}
