package main

import (
	"fmt"
	"log"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/torbsorensen/barometric"
	"github.com/torbsorensen/barometric/rand"
)

const (
	variantTotalCount     = "Total count (N, mg*H/kT)"
	variantSurfaceDensity = "Surface density (n0, mg/kT)"
)

// AppUI holds the widgets and the last computed column. Each slider change
// triggers one synchronous recomputation; the computation is fast enough that
// no cancellation or queueing is needed.
type AppUI struct {
	App    fyne.App
	Window fyne.Window

	scatterPlot *canvas.Raster
	histPlot    *canvas.Raster

	variantRadio *widget.RadioGroup
	slider1      *widget.Slider
	slider2      *widget.Slider
	label1       *widget.Label
	label2       *widget.Label
	statusLabel  *widget.Label

	gen *rand.Generator

	// Suppresses recomputation while slider ranges are being swapped out,
	// since SetValue fires OnChanged with a half-configured slider pair.
	updating bool

	// Plotting state
	lastResult *barometric.Result
	maxHeight  float64
	plotMutex  sync.Mutex

	Container fyne.CanvasObject
}

// setupUI creates the viewer content: two plots, the variant selector and the
// parameter sliders.
func setupUI(a fyne.App, window fyne.Window, gen *rand.Generator) *AppUI {
	ui := &AppUI{
		App:    a,
		Window: window,
		gen:    gen,
	}

	ui.label1 = widget.NewLabel("")
	ui.label2 = widget.NewLabel("")
	ui.slider1 = widget.NewSlider(0, 1)
	ui.slider2 = widget.NewSlider(0, 1)
	ui.slider1.OnChanged = func(float64) { ui.recompute() }
	ui.slider2.OnChanged = func(float64) { ui.recompute() }

	ui.statusLabel = widget.NewLabel("")

	ui.variantRadio = widget.NewRadioGroup(
		[]string{variantTotalCount, variantSurfaceDensity},
		func(string) {
			ui.configureSliders()
			ui.recompute()
		},
	)
	ui.variantRadio.Horizontal = true

	ui.scatterPlot = canvas.NewRaster(ui.drawScatter)
	ui.scatterPlot.SetMinSize(fyne.NewSize(400, 400))
	ui.histPlot = canvas.NewRaster(ui.drawHistogram)
	ui.histPlot.SetMinSize(fyne.NewSize(400, 400))

	scatterWithLabel := container.NewBorder(
		widget.NewLabelWithStyle(
			"Particles", fyne.TextAlignCenter, fyne.TextStyle{Bold: true},
		), nil, nil, nil, ui.scatterPlot,
	)
	histWithLabel := container.NewBorder(
		widget.NewLabelWithStyle(
			"Counts per height bin", fyne.TextAlignCenter,
			fyne.TextStyle{Bold: true},
		), nil, nil, nil, ui.histPlot,
	)
	plots := container.NewGridWithColumns(2, scatterWithLabel, histWithLabel)

	control1 := container.NewBorder(nil, nil, nil, ui.label1, ui.slider1)
	control2 := container.NewBorder(nil, nil, nil, ui.label2, ui.slider2)
	controls := container.NewVBox(
		ui.variantRadio, control1, control2, ui.statusLabel,
	)

	ui.Container = container.NewBorder(nil, controls, nil, nil, plots)

	// Selecting the variant configures the sliders via the radio callback.
	ui.variantRadio.SetSelected(variantTotalCount)

	return ui
}

// configureSliders resets the slider ranges to the selected variant's domain.
func (ui *AppUI) configureSliders() {
	ui.updating = true
	defer func() { ui.updating = false }()

	switch ui.variantRadio.Selected {
	case variantSurfaceDensity:
		ui.slider1.Min = barometric.MinSurfaceDensity
		ui.slider1.Max = barometric.MaxSurfaceDensity
		ui.slider1.Step = 1
		ui.slider1.SetValue(50)

		ui.slider2.Min = barometric.MinMgKT
		ui.slider2.Max = barometric.MaxMgKT
		ui.slider2.Step = 0.001
		ui.slider2.SetValue(0.02)
	default:
		ui.slider1.Min = barometric.MinTotalCount
		ui.slider1.Max = barometric.MaxTotalCount
		ui.slider1.Step = 1
		ui.slider1.SetValue(100)

		ui.slider2.Min = barometric.MinMgH
		ui.slider2.Max = barometric.MaxMgH
		ui.slider2.Step = 0.5
		ui.slider2.SetValue(10)
	}
}

func (ui *AppUI) params() *barometric.Params {
	if ui.variantRadio.Selected == variantSurfaceDensity {
		return barometric.NewSurfaceDensityParams(
			ui.slider1.Value, ui.slider2.Value,
		)
	}
	return barometric.NewTotalCountParams(
		int(ui.slider1.Value), ui.slider2.Value,
	)
}

// recompute reruns the column for the current slider values and redraws both
// plots.
func (ui *AppUI) recompute() {
	if ui.updating {
		return
	}
	p := ui.params()

	if p.Variant == barometric.SurfaceDensity {
		ui.label1.SetText(fmt.Sprintf("n0 = %.0f", p.N0))
		ui.label2.SetText(fmt.Sprintf("mg/kT = %.3f", p.MgKT))
	} else {
		ui.label1.SetText(fmt.Sprintf("N = %d", p.N))
		ui.label2.SetText(fmt.Sprintf("mg*H/kT = %.1f", p.MgH))
	}

	res, err := barometric.Run(p, ui.gen)
	if err != nil {
		log.Printf("Recomputation failed: %v", err)
		dialog.ShowError(err, ui.Window)
		return
	}

	ui.plotMutex.Lock()
	ui.lastResult = res
	ui.maxHeight = p.H
	ui.plotMutex.Unlock()

	status := fmt.Sprintf(
		"%d particles, mean height %.1f", res.Observed, res.MeanHeight,
	)
	if res.Requested > 0 {
		status += fmt.Sprintf(" (%d requested)", res.Requested)
	}
	if res.Dropped > 0 {
		status += fmt.Sprintf(", %d outside the binned domain", res.Dropped)
	}
	ui.statusLabel.SetText(status)

	ui.scatterPlot.Refresh()
	ui.histPlot.Refresh()
}
