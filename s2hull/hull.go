// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package s2hull builds the convex hull of a point batch on the unit sphere
// and measures how well the batch covers the sphere.

package s2hull

import (
	"errors"
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
	"github.com/markus-wa/quickhull-go/v2"
)

const (
	defaultEps = 1e-12
)

// Hull is the convex hull of points lying on the unit sphere. Every point is
// a hull vertex, so the hull triangles are also the spherical Delaunay
// triangulation of the points.
type Hull struct {
	Vertices  s2.PointVector
	Triangles [][3]int
	// NOTE: Sort in CCW per vertex(look out of sphere)
	IncidentTriangleIndices []int
	IncidentTriangleOffsets []int
}

// IncidentTriangles returns the indices of the triangles sharing vertex vIdx,
// sorted in counter-clockwise order when looking out of the sphere.
func (h *Hull) IncidentTriangles(vIdx int) []int {
	if vIdx < 0 || vIdx+1 >= len(h.IncidentTriangleOffsets) {
		panic("IncidentTriangles: vIdx out of range")
	}
	start := h.IncidentTriangleOffsets[vIdx]
	end := h.IncidentTriangleOffsets[vIdx+1]
	return h.IncidentTriangleIndices[start:end]
}

// TriangleVertices returns the three vertices of triangle tIdx.
func (h *Hull) TriangleVertices(tIdx int) (s2.Point, s2.Point, s2.Point) {
	if tIdx < 0 || tIdx >= len(h.Triangles) {
		panic("TriangleVertices: tIdx out of bounds")
	}
	t := h.Triangles[tIdx]
	return h.Vertices[t[0]], h.Vertices[t[1]], h.Vertices[t[2]]
}

// Area returns the surface area of the (flat-faced) hull.
func (h *Hull) Area() float64 {
	area := 0.0
	for i := range h.Triangles {
		a, b, c := h.TriangleVertices(i)
		area += b.Sub(a.Vector).Cross(c.Sub(a.Vector)).Norm() / 2
	}
	return area
}

// Coverage returns the hull area as a fraction of the sphere area.
// It approaches 1 as the batch covers the sphere more densely.
func (h *Hull) Coverage() float64 {
	return h.Area() / (4 * math.Pi)
}

// MaxGap returns the spherical area and index of the largest hull triangle,
// i.e. the largest region of the sphere without points.
func (h *Hull) MaxGap() (float64, int) {
	gap, idx := 0.0, -1
	for i := range h.Triangles {
		a, b, c := h.TriangleVertices(i)
		if area := s2.PointArea(a, b, c); area > gap {
			gap, idx = area, i
		}
	}
	return gap, idx
}

// CellAreas returns the area of the spherical Voronoi cell around each vertex.
// The cell corners are the outward normals of the incident triangles, so the
// areas sum to 4π.
func (h *Hull) CellAreas() []float64 {
	corners := make(s2.PointVector, len(h.Triangles))
	for i := range h.Triangles {
		a, b, c := h.TriangleVertices(i)
		corners[i] = voronoiVertex(a, b, c)
	}

	areas := make([]float64, len(h.Vertices))
	for vIdx, site := range h.Vertices {
		it := h.IncidentTriangles(vIdx)
		area := 0.0
		for i, tIdx := range it {
			next := it[(i+1)%len(it)]
			area += s2.SignedArea(site, corners[tIdx], corners[next])
		}
		// A cell is convex and holds its site, so only the winding sign varies.
		areas[vIdx] = math.Abs(area)
	}
	return areas
}

// Densities returns a local density estimate 1/(n*CellArea) per vertex.
// For a batch drawn from a surface density p, the estimate approximates p.
func (h *Hull) Densities() []float64 {
	areas := h.CellAreas()
	n := float64(len(h.Vertices))
	for i, a := range areas {
		areas[i] = 1 / (n * a)
	}
	return areas
}

// Options configures NewHull.
type Options struct {
	Eps float64
}

// Option sets a field of Options.
type Option func(*Options) error

// WithEps sets the quickhull tolerance. eps must be positive.
func WithEps(eps float64) Option {
	return func(o *Options) error {
		if eps <= 0 {
			return errors.New("s2hull: eps must be positive")
		}
		o.Eps = eps
		return nil
	}
}

// NewHull computes the convex hull of points.
// NOTE: All points must lie on the unit sphere and be distinct.
func NewHull(points s2.PointVector, setters ...Option) (*Hull, error) {
	opts := Options{
		Eps: defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	numVertices := len(points)
	if numVertices < 4 {
		return nil,
			errors.New("s2hull: insufficient points for a hull (minimum 4 required)")
	}
	numTriangles := 2 * (numVertices - 2)
	h := &Hull{
		Vertices:                points,
		Triangles:               make([][3]int, numTriangles),
		IncidentTriangleIndices: make([]int, numTriangles*3),
		IncidentTriangleOffsets: make([]int, numVertices+1),
	}

	r3points := make([]r3.Vector, numVertices)
	for i, p := range points {
		r3points[i] = p.Vector
	}
	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(r3points, true, true, opts.Eps)
	if len(ch.Indices) != numTriangles*3 {
		return nil, errors.New("s2hull: not every point is a hull vertex (duplicate or degenerate input)")
	}

	for _, idx := range ch.Indices {
		h.IncidentTriangleOffsets[idx+1]++
	}
	for i := range numVertices {
		h.IncidentTriangleOffsets[i+1] += h.IncidentTriangleOffsets[i]
	}

	var inner r3.Vector
	for _, p := range r3points {
		inner = inner.Add(p)
	}
	inner = inner.Mul(1 / float64(numVertices))

	nxt := make([]int, numVertices)
	copy(nxt, h.IncidentTriangleOffsets[:numVertices])
	for i := range numTriangles {
		base := i * 3
		for j := range 3 {
			v := ch.Indices[base+j]
			h.Triangles[i][j] = v
			h.IncidentTriangleIndices[nxt[v]] = i
			nxt[v]++
		}
		sortTriangleVerticesCCW(&h.Triangles[i], h.Vertices, inner)
	}

	for i := range numVertices {
		sortIncidentTriangleIndicesCCW(i, h.IncidentTriangles(i), h.Triangles)
	}

	return h, nil
}

// sortTriangleVerticesCCW orients t so that its normal points away from
// inner, a point inside the hull. The origin is not always inside: a batch
// confined to one hemisphere leaves it outside.
func sortTriangleVerticesCCW(t *[3]int, v s2.PointVector, inner r3.Vector) {
	p0, p1, p2 := v[t[0]], v[t[1]], v[t[2]]
	norm := p1.Sub(p0.Vector).Cross(p2.Sub(p0.Vector))
	if norm.Dot(p0.Sub(inner)) < 0 {
		t[1], t[2] = t[2], t[1]
	}
}

func sortIncidentTriangleIndicesCCW(vIdx int, incidentTris []int, tris [][3]int) {
	n := len(incidentTris)
	for i := 1; i < n; i++ {
		nxt := NextVertex(tris[incidentTris[i-1]], vIdx)
		for j := i; j < n; j++ {
			prv := PrevVertex(tris[incidentTris[j]], vIdx)
			if nxt == prv {
				incidentTris[i], incidentTris[j] = incidentTris[j], incidentTris[i]
				break
			}
		}
	}
}

// voronoiVertex returns the unit outward normal of the hull face (p0, p1, p2),
// which must be oriented CCW looking out of the hull. It is equidistant from
// the three points and no other hull vertex is closer to it.
func voronoiVertex(p0, p1, p2 s2.Point) s2.Point {
	n := p1.Sub(p0.Vector).Cross(p2.Sub(p0.Vector))
	return s2.Point{Vector: n.Normalize()}
}

// PrevVertex returns the vertex before vIdx in triangle t.
func PrevVertex(t [3]int, vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[2]
	case t[1]:
		return t[0]
	case t[2]:
		return t[1]
	}
	panic("PrevVertex: vIdx not in triangle")
}

// NextVertex returns the vertex after vIdx in triangle t.
func NextVertex(t [3]int, vIdx int) int {
	switch vIdx {
	case t[0]:
		return t[1]
	case t[1]:
		return t[2]
	case t[2]:
		return t[0]
	}
	panic("NextVertex: vIdx not in triangle")
}
