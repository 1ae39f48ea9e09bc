package render

import (
	"fmt"
	"image/color"

	"github.com/gogpu/gg"

	"camview/pkg/colorutil"
	"camview/pkg/geometry"
)

// Fixed chrome around the camera plot, in canvas pixels.
const (
	marginTop    = 30.0 // title
	marginBottom = 26.0 // x axis label
	marginLeft   = 22.0 // y axis label
	marginRight  = 64.0 // colorbar
	labelScale   = 2.0
	titleScale   = 3.0
	colorbarW    = 14.0
)

var (
	chromeColor      = colorutil.LightGray
	defaultLineColor = colorutil.White
)

// Viewport returns the world-to-screen mapping used when rendering to
// a w by h canvas: equal aspect, autoscaled to the camera's data
// limits, centered in the plot area inside the chrome margins.
func (s *Scene) Viewport(w, h int) Viewport {
	world := s.geom.Bounds()
	pad := 0.02 * max(world.Width, world.Height)
	world = world.Inflate(pad)
	return NewViewport(world,
		marginLeft, marginTop,
		float64(w)-marginLeft-marginRight,
		float64(h)-marginTop-marginBottom)
}

// Render draws the full display onto the context: background, the
// pixel patch collection colored through the colormap, overlay
// ellipses, title, axis labels and a colorbar.
func (s *Scene) Render(dc *gg.Context) {
	dc.ClearWithColor(gg.FromColor(s.bg))
	vp := s.Viewport(dc.Width(), dc.Height())

	s.renderPatches(dc, vp)
	for _, e := range s.ellipses {
		s.renderEllipse(dc, vp, e)
	}
	s.renderChrome(dc)
}

// renderPatches fills every pixel patch. Outlines have zero width, so
// there is no stroke pass.
func (s *Scene) renderPatches(dc *gg.Context, vp Viewport) {
	for i := range s.patches {
		p := &s.patches[i]
		if s.hasImage {
			dc.SetColor(s.cmap.At(s.normValue(s.values[i])))
		} else {
			dc.SetColor(s.cmap.At(0))
		}
		tracePolygon(dc, vp, p.Verts)
		_ = dc.Fill()
	}
}

func tracePolygon(dc *gg.Context, vp Viewport, verts []geometry.Point2D) {
	for i, v := range verts {
		x, y := vp.ToScreen(v)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
}

// renderEllipse strokes one overlay. The unrotated major axis points
// "up"; a positive angle tilts it clockwise, which on a y-down screen
// is a positive rotation of the drawing matrix.
func (s *Scene) renderEllipse(dc *gg.Context, vp Viewport, e *Ellipse) {
	cx, cy := vp.ToScreen(e.Centroid)
	rx := vp.ScaleLen(e.Width / 2)
	ry := vp.ScaleLen(e.Length / 2)

	lineColor := color.Color(defaultLineColor)
	if e.Style.Color != nil {
		lineColor = e.Style.Color
	}
	lineWidth := e.Style.LineWidth
	if lineWidth <= 0 {
		lineWidth = 2
	}

	dc.Push()
	dc.RotateAbout(e.Angle, cx, cy)
	dc.SetColor(lineColor)
	dc.SetLineWidth(lineWidth)
	if len(e.Style.Dash) > 0 {
		dc.SetDash(e.Style.Dash...)
	}
	dc.DrawEllipse(cx, cy, rx, ry)
	if e.Style.Filled {
		_ = dc.FillPreserve()
	}
	_ = dc.Stroke()
	if len(e.Style.Dash) > 0 {
		dc.ClearDash()
	}
	if e.Style.Label != "" {
		drawLabelCentered(dc, e.Style.Label, cx, cy-ry-labelHeight(labelScale)-2, labelScale, lineColor)
	}
	dc.Pop()
}

// renderChrome draws the title, the axis labels with the geometry's
// unit string, and the colorbar.
func (s *Scene) renderChrome(dc *gg.Context) {
	w := float64(dc.Width())
	h := float64(dc.Height())
	plotCx := marginLeft + (w-marginLeft-marginRight)/2

	drawLabelCentered(dc, s.title, plotCx, (marginTop-labelHeight(titleScale))/2, titleScale, chromeColor)
	xlabel := fmt.Sprintf("X position (%s)", s.geom.Unit)
	drawLabelCentered(dc, xlabel, plotCx, h-marginBottom+(marginBottom-labelHeight(labelScale))/2, labelScale, chromeColor)
	ylabel := fmt.Sprintf("Y position (%s)", s.geom.Unit)
	drawLabelRotated(dc, ylabel, marginLeft/2, marginTop+(h-marginTop-marginBottom)/2, labelScale, chromeColor)

	s.renderColorbar(dc)
}

// renderColorbar draws a vertical gradient strip in the right margin
// with the normalization range at its ends once an image is set.
func (s *Scene) renderColorbar(dc *gg.Context) {
	w := float64(dc.Width())
	h := float64(dc.Height())
	x := w - marginRight + 8
	top := marginTop
	barH := h - marginTop - marginBottom
	if barH <= 0 {
		return
	}

	steps := int(barH)
	for i := 0; i < steps; i++ {
		t := 1 - float64(i)/float64(steps-1)
		dc.SetColor(s.cmap.At(t))
		dc.DrawRectangle(x, top+float64(i), colorbarW, 1)
		_ = dc.Fill()
	}

	if s.hasImage {
		drawLabel(dc, formatTick(s.vmax), x+colorbarW+3, top, labelScale, chromeColor)
		drawLabel(dc, formatTick(s.vmin), x+colorbarW+3, top+barH-labelHeight(labelScale), labelScale, chromeColor)
	}
}

func formatTick(v float64) string {
	return fmt.Sprintf("%.4g", v)
}
