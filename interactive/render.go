package main

import (
	"image"
	"image/color"
	"math"

	"github.com/torbsorensen/barometric"
)

var (
	background = color.NRGBA{R: 250, G: 250, B: 250, A: 255}
	barColor   = color.NRGBA{R: 100, G: 150, B: 220, A: 255}
	curveColor = color.NRGBA{R: 220, G: 60, B: 60, A: 255}
	dotColor   = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
)

// drawScatter renders the sampled particles with height on the vertical axis,
// ground at the bottom.
func (ui *AppUI) drawScatter(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fill(img, background)

	ui.plotMutex.Lock()
	res, maxHeight := ui.lastResult, ui.maxHeight
	ui.plotMutex.Unlock()

	if res == nil || maxHeight <= 0 || w < 4 || h < 4 {
		return img
	}

	for _, pt := range res.Particles {
		px := int(pt.X * float64(w))
		py := h - 1 - int(pt.H/maxHeight*float64(h))
		drawDot(img, px, py)
	}
	return img
}

// drawHistogram renders the per-bin counts as vertical bars with height on
// the horizontal axis, overlaid with the theoretical curve.
func (ui *AppUI) drawHistogram(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fill(img, background)

	ui.plotMutex.Lock()
	res := ui.lastResult
	ui.plotMutex.Unlock()

	if res == nil || len(res.Centers) == 0 || w < 4 || h < 4 {
		return img
	}

	maxVal := 0.0
	for i := range res.Centers {
		if float64(res.Counts[i]) > maxVal {
			maxVal = float64(res.Counts[i])
		}
		if res.Curve[i] > maxVal {
			maxVal = res.Curve[i]
		}
	}
	if maxVal <= 0 {
		return img
	}
	// Leave headroom above the tallest bar.
	scale := float64(h-1) / (maxVal * 1.1)

	n := len(res.Centers)
	for i, c := range res.Counts {
		x0 := i * w / n
		x1 := (i+1)*w/n - 1
		top := h - 1 - int(float64(c)*scale)
		for x := x0; x <= x1 && x < w; x++ {
			for y := top; y < h; y++ {
				img.Set(x, y, barColor)
			}
		}
	}

	px, py := -1, -1
	for i, v := range res.Curve {
		x := (i*w + w/2) / n
		y := h - 1 - int(v*scale)
		if px >= 0 {
			drawLine(img, px, py, x, y, curveColor)
		}
		px, py = x, y
	}

	return img
}

func fill(img *image.RGBA, c color.Color) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}

func drawDot(img *image.RGBA, px, py int) {
	b := img.Bounds()
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			x, y := px+dx, py+dy
			if x >= b.Min.X && x < b.Max.X && y >= b.Min.Y && y < b.Max.Y {
				img.Set(x, y, dotColor)
			}
		}
	}
}

// drawLine draws a straight segment by stepping one pixel at a time along the
// longer axis.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, c color.Color) {
	steps := int(math.Max(math.Abs(float64(x1-x0)), math.Abs(float64(y1-y0))))
	if steps == 0 {
		img.Set(x0, y0, c)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x0 + int(t*float64(x1-x0))
		y := y0 + int(t*float64(y1-y0))
		img.Set(x, y, c)
	}
}
