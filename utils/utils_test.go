// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package utils

import (
	"math"
	"testing"

	"github.com/2dChan/s2sample/warp"
	"github.com/golang/geo/s2"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/rand"
)

func TestUniformPairs_Length(t *testing.T) {
	tests := []struct {
		name string
		cnt  int
		seed uint64
	}{
		{"zero pairs", 0, 42},
		{"one pair", 1, 42},
		{"ten pairs", 10, 0},
		{"hundred pairs", 100, 99},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e0, e1 := UniformPairs(NewSource(tt.seed), tt.cnt)
			if len(e0) != tt.cnt || len(e1) != tt.cnt {
				t.Errorf("UniformPairs(%v) len = (%v, %v), want %v", tt.cnt, len(e0), len(e1), tt.cnt)
			}
		})
	}
}

func TestUniformPairs_Range(t *testing.T) {
	tests := []struct {
		name string
		src  rand.Source
	}{
		{"seeded", NewSource(0)},
		{"process-wide", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e0, e1 := UniformPairs(tt.src, 1000)
			for i := range e0 {
				if e0[i] < 0 || e0[i] >= 1 {
					t.Errorf("e0[%d] = %v, want in [0, 1)", i, e0[i])
				}
				if e1[i] < 0 || e1[i] >= 1 {
					t.Errorf("e1[%d] = %v, want in [0, 1)", i, e1[i])
				}
			}
		})
	}
}

func TestGenerateSamplePairs_Determinism(t *testing.T) {
	const (
		cnt  = 10
		seed = 7
	)
	a0, a1 := GenerateSamplePairs(cnt, seed)
	b0, b1 := GenerateSamplePairs(cnt, seed)
	if diff := cmp.Diff(b0, a0); diff != "" {
		t.Errorf("GenerateSamplePairs(%v, %v) e0 mismatch (-want +got):\n%v", cnt, seed, diff)
	}
	if diff := cmp.Diff(b1, a1); diff != "" {
		t.Errorf("GenerateSamplePairs(%v, %v) e1 mismatch (-want +got):\n%v", cnt, seed, diff)
	}

	c0, _ := GenerateSamplePairs(cnt, seed+1)
	if cmp.Equal(a0, c0) {
		t.Errorf("GenerateSamplePairs with seeds %v and %v returned equal e0", seed, seed+1)
	}
}

func TestGenerateRandomPoints_OnUnitSphere(t *testing.T) {
	const (
		cnt     = 100
		seed    = 0
		epsilon = 1e-12
	)
	points := GenerateRandomPoints(cnt, seed)
	if len(points) != cnt {
		t.Fatalf("GenerateRandomPoints(%v, %v) len = %v, want %v", cnt, seed, len(points), cnt)
	}
	for i, p := range points {
		norm := p.Norm()
		if math.Abs(norm-1.0) > epsilon {
			t.Errorf("GenerateRandomPoints(%v, %v)[%d]: point norm = %v, want ≈1", cnt, seed,
				i, norm)
		}
	}
}

func TestGenerateRandomPoints_Determinism(t *testing.T) {
	const (
		cnt  = 10
		seed = 0
	)
	a := GenerateRandomPoints(cnt, seed)
	b := GenerateRandomPoints(cnt, seed)
	if diff := cmp.Diff(b, a, cmp.AllowUnexported(s2.Point{})); diff != "" {
		t.Errorf("GenerateRandomPoints(%v, %v) mismatch (-want +got):\n%v", cnt, seed, diff)
	}
}

func TestGenerateRandomPoints_MatchesUniformSphere(t *testing.T) {
	const cnt, seed = 50, 7
	e0, e1 := GenerateSamplePairs(cnt, seed)
	points := GenerateRandomPoints(cnt, seed)
	for i, p := range points {
		if want := warp.UniformSphere(e0[i], e1[i]); p.Vector != want {
			t.Errorf("GenerateRandomPoints(%d, %d)[%d] = %v, want %v", cnt, seed, i, p.Vector, want)
		}
	}
}
