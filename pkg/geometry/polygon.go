package geometry

import "math"

// RegularPolygon returns the n vertices of a regular polygon centered at c
// with outer radius r. The first vertex sits at the given orientation angle,
// measured in radians counter-clockwise from "up".
func RegularPolygon(c Point2D, n int, r, orientation float64) []Point2D {
	if n < 3 {
		return nil
	}
	verts := make([]Point2D, n)
	step := 2 * math.Pi / float64(n)
	for i := range verts {
		a := orientation + math.Pi/2 + step*float64(i)
		verts[i] = Point2D{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
	}
	return verts
}

// PointInPolygon reports whether p lies inside the polygon using the
// even-odd ray casting rule. Points exactly on an edge may fall on
// either side.
func PointInPolygon(p Point2D, polygon []Point2D) bool {
	n := len(polygon)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		a, b := polygon[i], polygon[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// Bounds returns the axis-aligned bounding rectangle of the points.
// Returns a zero Rect for an empty slice.
func Bounds(points []Point2D) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
