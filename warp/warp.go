// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package warp maps pairs of uniform random numbers onto the unit sphere.
// It has no dependencies inside the module so that both the s2sample package
// and its test helpers draw points with the same formulas.

package warp

import (
	"math"

	"github.com/golang/geo/r3"
)

// UniformSphere maps (e0, e1) to a point uniformly distributed over the
// sphere's surface. The height z = 2*e1 - 1 is uniform in [-1, 1] and the
// azimuth is e0 * 2π.
func UniformSphere(e0, e1 float64) r3.Vector {
	cosTheta := 2*e1 - 1
	phi := e0 * 2 * math.Pi
	sinTheta := math.Sqrt(1 - cosTheta*cosTheta)
	return r3.Vector{
		X: sinTheta * math.Cos(phi),
		Y: sinTheta * math.Sin(phi),
		Z: cosTheta,
	}
}

// CosineWeightedSphere maps (e0, e1) to a point whose height is drawn from a
// cosine lobe around each pole. Values e1 < 0.5 land on the northern
// hemisphere with z = sqrt(2*e1), the rest on the southern one with
// z = -sqrt(2*(1-e1)).
//
// NOTE: This is not the single-hemisphere cosine mapping. The resulting
// density of z is |z|/2 on [-1, 1].
func CosineWeightedSphere(e0, e1 float64) r3.Vector {
	var z float64
	if e1 < 0.5 {
		z = math.Sqrt(2 * e1)
	} else {
		z = -math.Sqrt(2 * (1 - e1))
	}
	r := math.Sqrt(1 - z*z)
	phi := e0 * 2 * math.Pi
	return r3.Vector{
		X: r * math.Cos(phi),
		Y: r * math.Sin(phi),
		Z: z,
	}
}
