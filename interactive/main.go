package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/torbsorensen/barometric/rand"
)

// main is the entry point of the interactive viewer.
func main() {
	log.Println("Starting barometric viewer...")

	myApp := app.New()

	window := myApp.NewWindow("Barometric Distribution")
	window.Resize(fyne.NewSize(900, 600))
	window.CenterOnScreen()

	gen := rand.NewTimeSeed(rand.Xorshift)
	ui := setupUI(myApp, window, gen)
	window.SetContent(ui.Container)

	// Draw the initial column before the first slider event.
	ui.recompute()

	window.ShowAndRun()
}
