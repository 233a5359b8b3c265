// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package s2sample

import (
	"errors"
	"fmt"

	"github.com/2dChan/s2sample/utils"
	"github.com/golang/geo/s2"
	"golang.org/x/exp/rand"
)

// DefaultSize is the number of points Generate is usually asked for.
const DefaultSize = 500

// Batch holds n sample pairs and the points sampled from them.
// E0[i], E1[i] and Points[i] are aligned positionally.
type Batch struct {
	Method Method
	E0     []float64
	E1     []float64
	// NOTE: Points are not renormalized, they are exactly what the sampler returned.
	Points s2.PointVector
}

// Len returns the number of points in the batch.
func (b *Batch) Len() int {
	return len(b.Points)
}

// Coords returns the point coordinates as three slices of b.Len().
func (b *Batch) Coords() (x, y, z []float64) {
	n := len(b.Points)
	x = make([]float64, n)
	y = make([]float64, n)
	z = make([]float64, n)
	for i, p := range b.Points {
		x[i], y[i], z[i] = p.X, p.Y, p.Z
	}
	return x, y, z
}

// Options configures Generate.
type Options struct {
	Method Method
	// Src is the random source of the sample pairs.
	// If nil, the process-wide generator is used.
	Src rand.Source
}

// Option sets a field of Options.
type Option func(*Options) error

// WithMethod selects the sampling method.
func WithMethod(m Method) Option {
	return func(o *Options) error {
		if _, err := m.Sampler(); err != nil {
			return err
		}
		o.Method = m
		return nil
	}
}

// WithSource sets the random source of the sample pairs.
func WithSource(src rand.Source) Option {
	return func(o *Options) error {
		if src == nil {
			return errors.New("s2sample: random source must be non-nil")
		}
		o.Src = src
		return nil
	}
}

// WithSeed makes Generate draw from a source seeded with seed.
// Each use of the option starts a fresh source.
func WithSeed(seed uint64) Option {
	return func(o *Options) error {
		o.Src = utils.NewSource(seed)
		return nil
	}
}

// Sample applies the sampler of m to every pair (e0[i], e1[i]).
func Sample(m Method, e0, e1 []float64) (*Batch, error) {
	f, err := m.Sampler()
	if err != nil {
		return nil, err
	}
	if len(e0) != len(e1) {
		return nil, ErrLengthMismatch
	}

	b := &Batch{
		Method: m,
		E0:     e0,
		E1:     e1,
		Points: make(s2.PointVector, len(e0)),
	}
	for i := range e0 {
		b.Points[i] = s2.Point{Vector: f(e0[i], e1[i])}
	}
	return b, nil
}

// Generate draws n sample pairs and samples a point from each of them.
func Generate(n int, setters ...Option) (*Batch, error) {
	if n < 0 {
		return nil, fmt.Errorf("s2sample: negative batch size %d", n)
	}

	opts := Options{Method: Uniform}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	e0, e1 := utils.UniformPairs(opts.Src, n)
	return Sample(opts.Method, e0, e1)
}
