// Package main provides the entry point for the camera viewer.
package main

import (
	"flag"
	"log"
	"time"

	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"

	"camview/internal/app"
	"camview/internal/camera"
	"camview/internal/version"
	"camview/ui/mainwindow"
	"camview/ui/prefs"
)

const appTitle = "Camera Viewer"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	var (
		kind    = flag.String("camera", "hex", "camera layout: hex or rect")
		rings   = flag.Int("rings", 10, "hexagonal camera: number of pixel rings")
		nx      = flag.Int("nx", 24, "rectangular camera: pixels per row")
		ny      = flag.Int("ny", 24, "rectangular camera: pixels per column")
		spacing = flag.Float64("spacing", 0.05, "pixel center spacing in meters")
		seed    = flag.Int64("seed", time.Now().UnixNano(), "mock event seed")
	)
	flag.Parse()

	log.Printf("Starting %s %s", appTitle, version.Info())

	var geom *camera.Geometry
	switch *kind {
	case "rect":
		geom = camera.NewRectGrid("DEMO-R", *nx, *ny, *spacing, "m")
	default:
		geom = camera.NewHexGrid("DEMO-H", *rings, *spacing, "m")
	}
	log.Printf("camera %s: %d %s pixels", geom.CamID, geom.Len(), geom.PixType)

	fyneApp := fyneapp.New()
	fyneApp.Settings().SetTheme(&app.CamViewTheme{})

	state := app.NewState(geom, *seed)
	appPrefs := prefs.Load()

	win := mainwindow.New(fyneApp, state, appPrefs)
	win.SetTitle(appTitle)

	setupHotReload(win)

	win.ShowAndRun()
}

// setupHotReload configures automatic restart detection when the
// binary is recompiled.
func setupHotReload(win *mainwindow.MainWindow) {
	reloader := app.NewHotReloader(2 * time.Second)
	if reloader == nil {
		log.Println("Hot reload: unable to determine executable path")
		return
	}

	log.Printf("Hot reload: watching %s", reloader.ExecPath())

	reloader.OnNewBinary(func() {
		log.Println("Hot reload: newer binary detected")
		dialog.ShowConfirm("New Version Available",
			"The application binary has been updated.\nRestart now?",
			func(restart bool) {
				if !restart {
					reloader.ResetBaseline()
					reloader.Start()
					return
				}
				log.Println("Hot reload: saving preferences before restart...")
				win.SavePreferences()
				if err := reloader.Restart(); err != nil {
					log.Printf("Hot reload: restart failed: %v", err)
				}
			}, win.Window)
	})

	reloader.Start()
}
