// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package s2sample generates random points on the unit sphere from pairs of
// uniform random numbers.

package s2sample

import (
	"errors"

	"github.com/2dChan/s2sample/warp"
	"github.com/golang/geo/r3"
)

// ErrLengthMismatch is returned when e0 and e1 have different lengths.
var ErrLengthMismatch = errors.New("s2sample: e0 and e1 lengths differ")

// Sampler maps a sample pair (e0, e1) in [0, 1)x[0, 1) to a point on the
// unit sphere.
type Sampler func(e0, e1 float64) r3.Vector

// UniformSphere maps (e0, e1) to a point uniformly distributed over the
// sphere's surface. The height z = 2*e1 - 1 is uniform in [-1, 1] and the
// azimuth is e0 * 2π.
func UniformSphere(e0, e1 float64) r3.Vector {
	return warp.UniformSphere(e0, e1)
}

// CosineWeightedSphere maps (e0, e1) to a point whose height is drawn from a
// cosine lobe around each pole: z = sqrt(2*e1) for e1 < 0.5 and
// z = -sqrt(2*(1-e1)) otherwise. The density of z is |z|/2 on [-1, 1].
func CosineWeightedSphere(e0, e1 float64) r3.Vector {
	return warp.CosineWeightedSphere(e0, e1)
}

// UniformSphereSamples applies UniformSphere to every pair and returns the
// coordinates as three slices of len(e0).
func UniformSphereSamples(e0, e1 []float64) (x, y, z []float64, err error) {
	return sampleCoords(UniformSphere, e0, e1)
}

// CosineWeightedSphereSamples applies CosineWeightedSphere to every pair and
// returns the coordinates as three slices of len(e0).
func CosineWeightedSphereSamples(e0, e1 []float64) (x, y, z []float64, err error) {
	return sampleCoords(CosineWeightedSphere, e0, e1)
}

func sampleCoords(f Sampler, e0, e1 []float64) (x, y, z []float64, err error) {
	if len(e0) != len(e1) {
		return nil, nil, nil, ErrLengthMismatch
	}

	n := len(e0)
	x = make([]float64, n)
	y = make([]float64, n)
	z = make([]float64, n)
	for i := range n {
		v := f(e0[i], e1[i])
		x[i], y[i], z[i] = v.X, v.Y, v.Z
	}
	return x, y, z, nil
}
