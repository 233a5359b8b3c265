// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package render

import (
	"fmt"
	"io"
	"math"
	"sort"

	svg "github.com/ajstarks/svgo"
	"github.com/golang/geo/r3"
	"github.com/golang/geo/s2"
)

const (
	width  = 800
	height = 800
	// Half of the drawing area in sphere units at zoom 1.
	viewExtent = 1.6
	axisLength = 1.3

	markerRadius = 4
	markerStyle  = "fill:rgb(255,0,0);stroke:rgb(128,0,0);stroke-width:0.5"
	axisStyle    = "stroke:rgb(90,90,90);stroke-width:1.5"
	labelStyle   = "font-family:sans-serif;font-size:18px;fill:rgb(40,40,40);text-anchor:middle"

	mapWidth  = 1500
	mapHeight = mapWidth / 2

	gridStyle = "stroke:rgb(200,200,200);stroke-width:1"
)

var axes = []struct {
	label string
	dir   r3.Vector
}{
	{"X", r3.Vector{X: 1}},
	{"Y", r3.Vector{Y: 1}},
	{"Z", r3.Vector{Z: 1}},
}

// WriteSVG draws s as a 3D scatter plot seen through cam: one red circle per
// point and three axes labelled "X", "Y" and "Z". Points further from the
// viewer are drawn first and fainter.
func WriteSVG(w io.Writer, s *Scatter, cam Camera) error {
	if s == nil {
		return fmt.Errorf("render: nil scatter")
	}
	if len(s.X) != len(s.Y) || len(s.X) != len(s.Z) {
		return ErrLengthMismatch
	}

	scale := float64(width) / (2 * viewExtent) * cam.zoom()
	toScreen := func(v r3.Vector) (int, int, float64) {
		x, y, d := cam.Project(v)
		return int(math.Round(width/2 + x*scale)), int(math.Round(height/2 - y*scale)), d
	}

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:rgb(255,255,255)")

	for _, a := range axes {
		x0, y0, _ := toScreen(a.dir.Mul(-axisLength))
		x1, y1, _ := toScreen(a.dir.Mul(axisLength))
		canvas.Line(x0, y0, x1, y1, axisStyle)
		lx, ly, _ := toScreen(a.dir.Mul(axisLength + 0.1))
		canvas.Text(lx, ly+6, a.label, labelStyle)
	}

	type marker struct {
		x, y  int
		depth float64
	}
	markers := make([]marker, s.Len())
	for i := range markers {
		x, y, d := toScreen(s.Point(i))
		markers[i] = marker{x, y, d}
	}
	sort.SliceStable(markers, func(i, j int) bool {
		return markers[i].depth < markers[j].depth
	})

	canvas.Gid("points")
	for _, m := range markers {
		// Depth is in [-1, 1] for points on the sphere.
		opacity := 0.35 + 0.65*(math.Max(-1, math.Min(1, m.depth))+1)/2
		canvas.Circle(m.x, m.y, markerRadius, fmt.Sprintf("%s;fill-opacity:%.2f", markerStyle, opacity))
	}
	canvas.Gend()

	canvas.End()
	return nil
}

// pointToMap maps p to the equirectangular map image.
func pointToMap(p s2.Point) (int, int) {
	xScale := float64(mapWidth)
	proj := s2.NewPlateCarreeProjection(xScale)

	r2p := proj.Project(p)

	x := (r2p.X + xScale) / (2 * xScale)
	y := (-r2p.Y + xScale/2) / xScale

	return int(x * mapWidth), int(y * mapHeight)
}

// WriteMapSVG draws s on an equirectangular (plate carrée) map of the sphere,
// longitude horizontally and latitude vertically. Points are projected
// radially onto the sphere first.
func WriteMapSVG(w io.Writer, s *Scatter) error {
	if s == nil {
		return fmt.Errorf("render: nil scatter")
	}
	if len(s.X) != len(s.Y) || len(s.X) != len(s.Z) {
		return ErrLengthMismatch
	}

	canvas := svg.New(w)
	canvas.Start(mapWidth, mapHeight)
	canvas.Rect(0, 0, mapWidth, mapHeight, "fill:rgb(255,255,255)")

	for lat := -60; lat <= 60; lat += 30 {
		y := mapHeight/2 - lat*mapHeight/180
		canvas.Line(0, y, mapWidth, y, gridStyle)
	}
	for lng := -120; lng <= 120; lng += 60 {
		x := mapWidth/2 + lng*mapWidth/360
		canvas.Line(x, 0, x, mapHeight, gridStyle)
	}

	canvas.Gid("points")
	for i := range s.Len() {
		v := s.Point(i)
		if v.Norm2() == 0 {
			continue
		}
		x, y := pointToMap(s2.Point{Vector: v.Normalize()})
		canvas.Circle(x, y, 3, markerStyle)
	}
	canvas.Gend()

	canvas.End()
	return nil
}
