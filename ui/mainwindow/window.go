// Package mainwindow provides the main application window.
package mainwindow

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"camview/internal/app"
	"camview/internal/colormap"
	"camview/internal/render"
	"camview/internal/version"
	"camview/pkg/colorutil"
	"camview/ui/display"
	"camview/ui/prefs"
)

// MainWindow is the primary application window: the camera display in
// the center, event and colormap controls on top, a status bar below.
type MainWindow struct {
	fyne.Window
	app      fyne.App
	state    *app.State
	prefs    *prefs.Prefs
	display  *display.CameraDisplay
	statusBr *widget.Label

	showOverlay  bool
	eventOverlay *render.Ellipse
}

// New creates the main window around the given viewer state.
func New(fyneApp fyne.App, state *app.State, p *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow("Camera Viewer")

	mw := &MainWindow{
		Window:      win,
		app:         fyneApp,
		state:       state,
		prefs:       p,
		showOverlay: p.Bool(prefs.KeyShowOverlay, true),
	}

	mw.setupUI()
	mw.setupMenus()

	w := float32(p.FloatWithFallback(prefs.KeyWindowWidth, 900))
	h := float32(p.FloatWithFallback(prefs.KeyWindowHeight, 700))
	win.Resize(fyne.NewSize(w, h))
	win.SetCloseIntercept(func() {
		mw.SavePreferences()
		fyneApp.Quit()
	})
	return mw
}

// setupUI creates the main layout.
func (mw *MainWindow) setupUI() {
	geom := mw.state.Geometry()
	title := fmt.Sprintf("Camera %s", geom.CamID)

	mw.display = display.New(geom,
		display.WithTitle(title),
		display.WithColormap(mw.prefs.StringWithFallback(prefs.KeyColormap, colormap.Default.Name())),
	)
	mw.display.SetPickHandler(mw.onPick)

	mw.statusBr = widget.NewLabel(fmt.Sprintf("Camera %s: %d pixels (%s). Click a pixel to inspect it.",
		geom.CamID, geom.Len(), geom.PixType))

	content := container.NewBorder(
		mw.createToolbar(),                // top
		container.NewPadded(mw.statusBr),  // bottom
		nil,                               // left
		nil,                               // right
		mw.display,                        // center
	)
	mw.SetContent(content)
}

// createToolbar creates the event and colormap controls.
func (mw *MainWindow) createToolbar() fyne.CanvasObject {
	nextBtn := widget.NewButton("Next Event", mw.onNextEvent)

	cmapSelect := widget.NewSelect(colormap.Names(), func(name string) {
		mw.onSelectColormap(name)
	})
	cmapSelect.SetSelected(mw.display.Scene().Colormap().Name())

	overlayCheck := widget.NewCheck("Ellipse overlay", func(on bool) {
		mw.showOverlay = on
		mw.prefs.SetBool(prefs.KeyShowOverlay, on)
		mw.refreshOverlay()
	})
	overlayCheck.SetChecked(mw.showOverlay)

	return container.NewHBox(
		nextBtn,
		widget.NewSeparator(),
		widget.NewLabel("Colormap:"),
		cmapSelect,
		widget.NewSeparator(),
		overlayCheck,
	)
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Next Event", mw.onNextEvent),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			mw.SavePreferences()
			mw.app.Quit()
		}),
	)

	viewMenu := fyne.NewMenu("View",
		fyne.NewMenuItem("Toggle Ellipse Overlay", func() {
			mw.showOverlay = !mw.showOverlay
			mw.prefs.SetBool(prefs.KeyShowOverlay, mw.showOverlay)
			mw.refreshOverlay()
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(fileMenu, viewMenu, helpMenu))
}

// onNextEvent generates and shows a new mock shower.
func (mw *MainWindow) onNextEvent() {
	noise := mw.prefs.FloatWithFallback(prefs.KeyNoiseLambda, 3)
	img, par := mw.state.NextEvent(noise)
	if err := mw.display.SetImage(img); err != nil {
		mw.updateStatus(fmt.Sprintf("event rejected: %v", err))
		return
	}
	mw.refreshOverlay()
	mw.updateStatus(fmt.Sprintf("event %d: %s", mw.state.EventNumber(), par))
}

// refreshOverlay re-creates the moment ellipse for the current event.
func (mw *MainWindow) refreshOverlay() {
	if mw.eventOverlay != nil {
		mw.display.RemoveEllipse(mw.eventOverlay)
		mw.eventOverlay = nil
	}
	if !mw.showOverlay || mw.state.EventNumber() == 0 {
		return
	}
	style := &render.EllipseStyle{Color: colorutil.Cyan, LineWidth: 2}
	mw.eventOverlay = mw.display.OverlayMoments(mw.state.Moments(), style)
}

// onSelectColormap switches the display's color scale.
func (mw *MainWindow) onSelectColormap(name string) {
	if err := mw.display.SetColormap(name); err != nil {
		mw.updateStatus(err.Error())
		return
	}
	mw.prefs.SetString(prefs.KeyColormap, name)
}

// onPick shows the tapped pixel's value in the status bar.
func (mw *MainWindow) onPick(ev display.PickEvent) {
	if len(ev.Indices) == 0 {
		mw.updateStatus(fmt.Sprintf("(%.3f, %.3f): no pixel", ev.Position.X, ev.Position.Y))
		return
	}
	i := ev.Indices[0]
	values := mw.display.Scene().Values()
	if values == nil {
		mw.updateStatus(fmt.Sprintf("pixel %d (no image yet)", i))
		return
	}
	mw.updateStatus(fmt.Sprintf("pixel %d: %.2f p.e.", i, values[i]))
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About",
		fmt.Sprintf("camview %s\n\nRenders camera pixel geometry and per-pixel amplitudes,\nwith shower-moment ellipse overlays.", version.Info()), mw.Window)
}

// SavePreferences persists window size and display settings.
func (mw *MainWindow) SavePreferences() {
	size := mw.Canvas().Size()
	mw.prefs.SetFloat(prefs.KeyWindowWidth, float64(size.Width))
	mw.prefs.SetFloat(prefs.KeyWindowHeight, float64(size.Height))
	if err := mw.prefs.Save(); err != nil {
		mw.updateStatus(fmt.Sprintf("saving preferences: %v", err))
	}
}

func (mw *MainWindow) updateStatus(msg string) {
	mw.statusBr.SetText(msg)
}
