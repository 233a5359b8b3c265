// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package render draws sampled sphere points as 3D scatter plots: SVG
// projections, ray-traced PNG/GIF renderings and an interactive HTTP viewer.

package render

import (
	"errors"
	"math"

	"github.com/2dChan/s2sample"
	"github.com/golang/geo/r3"
)

// ErrLengthMismatch is returned when x, y and z have different lengths.
var ErrLengthMismatch = errors.New("render: x, y and z lengths differ")

// Scatter is a set of 3D points to plot.
type Scatter struct {
	X, Y, Z []float64
}

// NewScatter returns a Scatter of the triples (x[i], y[i], z[i]).
func NewScatter(x, y, z []float64) (*Scatter, error) {
	if len(x) != len(y) || len(x) != len(z) {
		return nil, ErrLengthMismatch
	}
	return &Scatter{X: x, Y: y, Z: z}, nil
}

// FromBatch returns a Scatter of the points of b.
func FromBatch(b *s2sample.Batch) *Scatter {
	x, y, z := b.Coords()
	return &Scatter{X: x, Y: y, Z: z}
}

// Len returns the number of points.
func (s *Scatter) Len() int {
	return len(s.X)
}

// Point returns the i-th point.
func (s *Scatter) Point(i int) r3.Vector {
	return r3.Vector{X: s.X[i], Y: s.Y[i], Z: s.Z[i]}
}

// Camera is an orthographic view direction. Angles are in degrees: Azimuth
// rotates around the Z axis, Elevation tilts above the XY plane.
type Camera struct {
	Azimuth   float64
	Elevation float64
	Zoom      float64
}

// DefaultCamera looks at the sphere slightly from above.
var DefaultCamera = Camera{Azimuth: -60, Elevation: 30, Zoom: 1}

// basis returns the screen right, screen up and towards-viewer directions.
func (c Camera) basis() (right, up, toward r3.Vector) {
	az := c.Azimuth * math.Pi / 180
	el := c.Elevation * math.Pi / 180
	sinAz, cosAz := math.Sincos(az)
	sinEl, cosEl := math.Sincos(el)

	right = r3.Vector{X: -sinAz, Y: cosAz}
	up = r3.Vector{X: -sinEl * cosAz, Y: -sinEl * sinAz, Z: cosEl}
	toward = r3.Vector{X: cosEl * cosAz, Y: cosEl * sinAz, Z: sinEl}
	return right, up, toward
}

// Project returns the view-plane coordinates of v and its depth; larger
// depths are closer to the viewer.
func (c Camera) Project(v r3.Vector) (x, y, depth float64) {
	right, up, toward := c.basis()
	return v.Dot(right), v.Dot(up), v.Dot(toward)
}

func (c Camera) zoom() float64 {
	if c.Zoom <= 0 {
		return 1
	}
	return c.Zoom
}
