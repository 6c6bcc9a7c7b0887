package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	plt "github.com/phil-mansfield/pyplot"
	"gopkg.in/gcfg.v1"

	"github.com/torbsorensen/barometric"
	"github.com/torbsorensen/barometric/hist"
	"github.com/torbsorensen/barometric/io"
	"github.com/torbsorensen/barometric/rand"
)

type FileGroup struct {
	log *os.File
}

func (fg *FileGroup) Close() {
	if fg.log != nil {
		err := fg.log.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}
}

func main() {
	var (
		simulate, rebin string
		exampleConfig   string
	)
	vars := map[string]*string{
		"Simulate":      &simulate,
		"Rebin":         &rebin,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&simulate, "Simulate", "",
		"Configuration file for [Simulate] mode.",
	)
	flag.StringVar(
		&rebin, "Rebin", "",
		"Configuration file for [Rebin] mode.",
	)
	flag.StringVar(
		&exampleConfig, "ExampleConfig", "",
		"Prints an example configuration file of the specified type to "+
			"stdout. Accepted arguments are 'Simulate' and 'Rebin'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil {
		log.Fatal(err.Error())
	}

	switch modeName {
	case "Simulate":
		wrap := io.DefaultSimulateWrapper()
		err := gcfg.ReadFileInto(wrap, simulate)
		if err != nil {
			log.Fatal(err.Error())
		}
		con := &wrap.Simulate

		if !con.ValidPlotFile() {
			log.Fatal("Invalid/non-existent 'PlotFile' value.")
		}

		fg := setupLog(con.LogFile)
		defer fg.Close()

		simulateMain(con)

	case "Rebin":
		wrap := io.DefaultRebinWrapper()
		err := gcfg.ReadFileInto(wrap, rebin)
		if err != nil {
			log.Fatal(err.Error())
		}
		con := &wrap.Rebin

		if !con.ValidSampleFile() {
			log.Fatal("Invalid/non-existent 'SampleFile' value.")
		} else if !con.ValidPlotFile() {
			log.Fatal("Invalid/non-existent 'PlotFile' value.")
		}
		if err := con.CheckInit(); err != nil {
			log.Fatal(err.Error())
		}

		fg := setupLog(con.LogFile)
		defer fg.Close()

		rebinMain(con)

	case "ExampleConfig":
		switch exampleConfig {
		case "Simulate":
			fmt.Println(io.ExampleSimulateFile)
		case "Rebin":
			fmt.Println(io.ExampleRebinFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. Only recognized " +
					"arguments are 'Simulate' and 'Rebin'.",
			)
		}
	default:
		panic("Impossible")
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" {
			setNames = append(setNames, name)
		}
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but barometric_cmd "+
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

func setupLog(logFile string) *FileGroup {
	fg := &FileGroup{}
	if logFile != "" {
		f, err := os.Create(logFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		fg.log = f
		log.SetOutput(f)
	}
	return fg
}

func simulateMain(con *io.SimulateConfig) {
	p, err := con.Params()
	if err != nil {
		log.Fatal(err.Error())
	}

	plt.Reset()

	gen := rand.NewTimeSeed(rand.Xorshift)
	if con.Seed != 0 {
		gen = rand.New(rand.Xorshift, uint64(con.Seed))
	}

	res, err := barometric.Run(p, gen)
	if err != nil {
		log.Fatal(err.Error())
	}
	log.Printf(
		"Sampled %d particles (%d requested, %d dropped), mean height %.3g.",
		res.Observed, res.Requested, res.Dropped, res.MeanHeight,
	)

	if con.SampleFile != "" {
		if err := io.WriteSampleFile(con.SampleFile, res); err != nil {
			log.Fatal(err.Error())
		}
	}

	plotColumn(con.PlotFile, res)
	plt.Execute()
}

func rebinMain(con *io.RebinConfig) {
	plt.Reset()

	heights, err := io.ReadSampleFile(con.SampleFile)
	if err != nil {
		log.Fatal(err.Error())
	}

	centers, err := hist.Centers(con.MaxHeight, con.BinWidth)
	if err != nil {
		log.Fatal(err.Error())
	}
	counts, dropped, err := hist.Counts(centers, heights)
	if err != nil {
		log.Fatal(err.Error())
	}
	log.Printf(
		"Re-binned %d particles onto %d bins (%d dropped).",
		len(heights), len(centers), dropped,
	)

	plotHistogram(con.PlotFile, centers, counts, nil)
	plt.Execute()
}

// plotColumn draws the sampled column: particle scatter on the left axis of
// the figure, histogram counts and the theoretical curve against height.
func plotColumn(fname string, res *barometric.Result) {
	xs := make([]float64, len(res.Particles))
	hs := make([]float64, len(res.Particles))
	for i, pt := range res.Particles {
		xs[i], hs[i] = pt.X, pt.H
	}

	plt.Figure(plt.FigSize(8, 6))
	plt.Plot(xs, hs, "ok")
	plt.Title("Sampled gas column")
	plt.XLabel("$x$", plt.FontSize(16))
	plt.YLabel("$h$", plt.FontSize(16))
	plt.XLim(0, 1)
	plt.SaveFig(scatterName(fname))

	plotHistogram(fname, res.Centers, res.Counts, res.Curve)
}

func plotHistogram(fname string, centers []float64, counts []int, curve []float64) {
	ys := make([]float64, len(counts))
	for i, c := range counts {
		ys[i] = float64(c)
	}

	plt.Figure(plt.FigSize(8, 6))
	plt.Plot(centers, ys, "ob")
	if curve != nil {
		plt.Plot(centers, curve, "r", plt.LW(2))
	}
	plt.Title("Particles per height bin")
	plt.XLabel("$h$", plt.FontSize(16))
	plt.YLabel("$n(h)$", plt.FontSize(16))
	plt.SaveFig(fname)
}

func scatterName(fname string) string {
	i := strings.LastIndex(fname, ".")
	if i == -1 {
		return fname + "_scatter"
	}
	return fname[:i] + "_scatter" + fname[i:]
}
