// Package app provides viewer state, the application theme, and
// development lifecycle helpers.
package app

import (
	"math"
	"math/rand"
	"sync"

	"camview/internal/camera"
)

// State holds what the viewer is currently showing: the camera
// geometry, the latest event image and its true moment parameters.
type State struct {
	mu sync.RWMutex

	geom        *camera.Geometry
	image       []float64
	moments     camera.MomentParameters
	eventNumber int

	rng *rand.Rand
}

// NewState creates viewer state around a camera geometry.
func NewState(geom *camera.Geometry, seed int64) *State {
	return &State{
		geom: geom,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Geometry returns the camera geometry.
func (s *State) Geometry() *camera.Geometry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.geom
}

// EventNumber returns the sequence number of the current event, 0
// before the first NextEvent.
func (s *State) EventNumber() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.eventNumber
}

// Image returns the current event image, nil before the first event.
func (s *State) Image() []float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.image
}

// Moments returns the moment parameters the current event was
// generated from.
func (s *State) Moments() camera.MomentParameters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.moments
}

// NextEvent generates a new mock shower somewhere in the inner part of
// the camera and renders it to a pixel image with the given Poisson
// pedestal. Returns the image and the parameters it was built from.
func (s *State) NextEvent(noiseLambda float64) ([]float64, camera.MomentParameters) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bounds := s.geom.Bounds()
	span := math.Min(bounds.Width, bounds.Height)
	center := bounds.Center()

	length := span * (0.12 + 0.10*s.rng.Float64())
	par := camera.MomentParameters{
		CenX:      center.X + span*(s.rng.Float64()-0.5)*0.5,
		CenY:      center.Y + span*(s.rng.Float64()-0.5)*0.5,
		Length:    length,
		Width:     length * (0.25 + 0.35*s.rng.Float64()),
		Psi:       s.rng.Float64() * math.Pi,
		Asymmetry: s.rng.NormFloat64() * 0.1,
		Size:      500 + 1500*s.rng.Float64(),
	}

	s.moments = par
	s.image = camera.MockShowerImage(s.geom, par, noiseLambda)
	s.eventNumber++
	return s.image, par
}
