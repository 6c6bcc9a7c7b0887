package io

import (
	"fmt"
	"os"

	"github.com/phil-mansfield/table"

	"github.com/torbsorensen/barometric"
)

// WriteSampleFile writes a run's particles and histogram to a plain text
// table. Column 0 is the scatter coordinate and column 1 the particle height;
// the histogram rows are included as comments so the file stays readable by
// table.ReadTable.
func WriteSampleFile(fname string, res *barometric.Result) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer f.Close()

	fmt.Fprintf(
		f, "# %d particles (%d requested, %d outside the binned domain)\n",
		res.Observed, res.Requested, res.Dropped,
	)
	fmt.Fprintln(f, "# Columns: scatter x, height")
	for _, pt := range res.Particles {
		fmt.Fprintf(f, "%g %g\n", pt.X, pt.H)
	}

	fmt.Fprintln(f, "# Histogram: center, count, expected")
	for i, c := range res.Centers {
		fmt.Fprintf(f, "# %g %d %g\n", c, res.Counts[i], res.Curve[i])
	}

	return nil
}

// ReadSampleFile reads the particle heights back out of a sample table
// written by WriteSampleFile.
func ReadSampleFile(fname string) ([]float64, error) {
	cols, err := table.ReadTable(fname, []int{1}, nil)
	if err != nil {
		return nil, err
	}
	return cols[0], nil
}
