package camera

import "fmt"

// MomentParameters is a fitted ellipse description of a detected
// shower: centroid, major and minor axis extents, rotation angle Psi
// (radians, clockwise from "up") and the third-order asymmetry. Size
// is the total amplitude, carried for display only.
type MomentParameters struct {
	CenX      float64
	CenY      float64
	Length    float64
	Width     float64
	Psi       float64
	Asymmetry float64
	Size      float64
}

func (m MomentParameters) String() string {
	return fmt.Sprintf("cen=(%.3f, %.3f) length=%.3f width=%.3f psi=%.3f",
		m.CenX, m.CenY, m.Length, m.Width, m.Psi)
}
