// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides random sources and sample pairs for the S2 samplers.

package utils

import (
	"sync"
	"time"

	"github.com/2dChan/s2sample/warp"
	"github.com/golang/geo/s2"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// lockedSource makes a Source safe for use by multiple goroutines.
type lockedSource struct {
	mu  sync.Mutex
	src rand.Source
}

func (s *lockedSource) Uint64() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.src.Uint64()
}

func (s *lockedSource) Seed(seed uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.src.Seed(seed)
}

// defaultSource is the process-wide generator, seeded from the clock so that
// unseeded runs differ.
var defaultSource rand.Source = &lockedSource{
	src: rand.NewSource(uint64(time.Now().UnixNano())),
}

// NewSource returns a PCG source seeded with seed.
func NewSource(seed uint64) rand.Source {
	return rand.NewSource(seed)
}

// UniformPairs draws n pairs (e0[i], e1[i]) from the continuous uniform
// distribution on [0, 1). All e0 values are drawn before the e1 values.
// A nil src uses the process-wide generator.
func UniformPairs(src rand.Source, n int) ([]float64, []float64) {
	if src == nil {
		src = defaultSource
	}
	dist := distuv.Uniform{Min: 0, Max: 1, Src: src}

	e0 := make([]float64, n)
	e1 := make([]float64, n)
	for i := range e0 {
		e0[i] = dist.Rand()
	}
	for i := range e1 {
		e1[i] = dist.Rand()
	}
	return e0, e1
}

// GenerateSamplePairs generates cnt sample pairs.
// The seed parameter ensures reproducibility.
func GenerateSamplePairs(cnt int, seed uint64) ([]float64, []float64) {
	return UniformPairs(NewSource(seed), cnt)
}

// GenerateRandomPoints generates a vector of points uniformly distributed on
// the S2 sphere. The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, seed uint64) s2.PointVector {
	e0, e1 := GenerateSamplePairs(cnt, seed)
	points := make(s2.PointVector, cnt)

	for i := range cnt {
		points[i] = s2.Point{Vector: warp.UniformSphere(e0[i], e1[i])}
	}

	return points
}
