// Package camera defines the camera data model: pixel geometry and
// fitted shower moment parameters.
package camera

import (
	"math"
	"strings"

	"camview/pkg/geometry"
)

// Pixel shape tags. Anything starting with "hex" is treated as a
// hexagonal pixel family; everything else renders as squares.
const (
	PixTypeHexagonal   = "hexagonal"
	PixTypeRectangular = "rectangular"
)

// Geometry describes a camera's pixel layout. The three per-pixel
// slices are index-aligned and equal length; the struct is read-only
// after construction.
type Geometry struct {
	CamID   string
	PixX    []float64
	PixY    []float64
	PixArea []float64
	PixType string
	Unit    string // coordinate unit label, e.g. "m"
}

// Len returns the number of pixels.
func (g *Geometry) Len() int { return len(g.PixX) }

// IsHexagonal reports whether the shape tag names a hexagonal pixel family.
func (g *Geometry) IsHexagonal() bool {
	return strings.HasPrefix(g.PixType, "hex")
}

// Center returns the center of pixel i.
func (g *Geometry) Center(i int) geometry.Point2D {
	return geometry.Point2D{X: g.PixX[i], Y: g.PixY[i]}
}

// PixRadius returns the outer radius of pixel i derived from its area:
// for hexagonal pixels the radius of a regular hexagon of that area
// (area = 3*sqrt(3)/2 * r^2), otherwise half the side of the rendered
// square (side = 2*sqrt(area)).
func (g *Geometry) PixRadius(i int) float64 {
	a := g.PixArea[i]
	if g.IsHexagonal() {
		return math.Sqrt(a * 2 / (3 * math.Sqrt(3)))
	}
	return math.Sqrt(a)
}

// Vertices returns the outline of pixel i: six corners for hexagonal
// pixels (flat sides left and right, one vertex up), four for squares.
func (g *Geometry) Vertices(i int) []geometry.Point2D {
	c := g.Center(i)
	r := g.PixRadius(i)
	if g.IsHexagonal() {
		return geometry.RegularPolygon(c, 6, r, 0)
	}
	return []geometry.Point2D{
		{X: c.X - r, Y: c.Y - r},
		{X: c.X + r, Y: c.Y - r},
		{X: c.X + r, Y: c.Y + r},
		{X: c.X - r, Y: c.Y + r},
	}
}

// Contains reports whether the camera-frame point p lies inside pixel i.
func (g *Geometry) Contains(i int, p geometry.Point2D) bool {
	c := g.Center(i)
	r := g.PixRadius(i)
	if !geometry.RectAround(c, r).Contains(p) {
		return false
	}
	if !g.IsHexagonal() {
		return true
	}
	return geometry.PointInPolygon(p, geometry.RegularPolygon(c, 6, r, 0))
}

// Bounds returns the data limits of the camera: the union of every
// pixel's bounding square.
func (g *Geometry) Bounds() geometry.Rect {
	if g.Len() == 0 {
		return geometry.Rect{}
	}
	b := geometry.RectAround(g.Center(0), g.PixRadius(0))
	for i := 1; i < g.Len(); i++ {
		b = b.Union(geometry.RectAround(g.Center(i), g.PixRadius(i)))
	}
	return b
}
