// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package stats summarizes batches of sampled sphere points.

package stats

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/golang/geo/s2"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// DefaultTolerance bounds |x²+y²+z² - 1| for points on the unit sphere.
const DefaultTolerance = 1e-9

// Summary describes the height distribution of a batch.
type Summary struct {
	N             int
	MeanZ         float64
	VarianceZ     float64
	MeanAbsZ      float64
	NorthFraction float64 // fraction of points with z > 0
	MaxNormError  float64 // max |x²+y²+z² - 1|
}

// Summarize computes the Summary of points.
// Every statistic of an empty input is zero.
func Summarize(points s2.PointVector) Summary {
	s := Summary{N: len(points)}
	if len(points) == 0 {
		return s
	}

	z := heights(points)
	absZ := make([]float64, len(z))
	north := 0
	for i, p := range points {
		absZ[i] = math.Abs(z[i])
		if z[i] > 0 {
			north++
		}
		s.MaxNormError = max(s.MaxNormError, math.Abs(p.Norm2()-1))
	}

	if len(z) > 1 {
		s.MeanZ, s.VarianceZ = stat.MeanVariance(z, nil)
	} else {
		s.MeanZ = z[0]
	}
	s.MeanAbsZ = stat.Mean(absZ, nil)
	s.NorthFraction = float64(north) / float64(len(points))
	return s
}

// Degenerate reports whether the batch has no spread in z.
func (s Summary) Degenerate() bool {
	return s.N < 2 || s.VarianceZ == 0
}

// ZHistogram counts the heights of points in bins equal-width bins over [-1, 1].
func ZHistogram(points s2.PointVector, bins int) ([]float64, error) {
	if bins <= 0 {
		return nil, fmt.Errorf("stats: bins must be positive, got %d", bins)
	}

	z := heights(points)
	slices.Sort(z)
	if len(z) > 0 && (z[0] < -1 || z[len(z)-1] > 1) {
		return nil, errors.New("stats: height outside [-1, 1]")
	}

	dividers := floats.Span(make([]float64, bins+1), -1, 1)
	// z == 1 belongs to the last bin.
	dividers[bins] = math.Nextafter(1, 2)
	return stat.Histogram(nil, dividers, z, nil), nil
}

// CheckUnitSphere returns an error for the first point whose squared norm
// differs from 1 by more than tol.
func CheckUnitSphere(points s2.PointVector, tol float64) error {
	for i, p := range points {
		if d := math.Abs(p.Norm2() - 1); d > tol {
			return fmt.Errorf("stats: point %d %v off the unit sphere by %g", i, p, d)
		}
	}
	return nil
}

// UniformPDF returns the surface density of uniform sphere sampling.
func UniformPDF() float64 {
	return 1 / (4 * math.Pi)
}

// CosineWeightedPDF returns the surface density of the two-branch
// cosine-weighted sampler at height z. The density of z alone is |z|/2.
func CosineWeightedPDF(z float64) float64 {
	return math.Abs(z) / (2 * math.Pi)
}

func heights(points s2.PointVector) []float64 {
	z := make([]float64, len(points))
	for i, p := range points {
		z[i] = p.Z
	}
	return z
}
