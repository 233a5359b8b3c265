// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package render

import (
	"errors"
	"math"

	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/model3d/render3d"
)

const (
	sphereMarkerRadius = 0.03
	axisRadius         = 0.008
	cameraDistance     = 4.0
)

var (
	markerColor = render3d.NewColorRGB(0.9, 0.1, 0.1)
	axisColor   = render3d.NewColorRGB(0.4, 0.4, 0.4)
)

// GIFOptions configures SaveRotatingGIF.
type GIFOptions struct {
	ImageSize int
	Frames    int
	FPS       float64
}

// DefaultGIFOptions renders one full turn in 3 seconds.
var DefaultGIFOptions = GIFOptions{ImageSize: 400, Frames: 30, FPS: 10}

// sceneCollider returns a small sphere per point plus three axis cylinders.
func sceneCollider(s *Scatter) (model3d.Collider, error) {
	if s == nil {
		return nil, errors.New("render: nil scatter")
	}
	if len(s.X) != len(s.Y) || len(s.X) != len(s.Z) {
		return nil, ErrLengthMismatch
	}
	if s.Len() == 0 {
		return nil, errors.New("render: nothing to ray trace")
	}

	colliders := make([]model3d.Collider, 0, s.Len()+len(axes))
	for i := range s.Len() {
		colliders = append(colliders, &model3d.Sphere{
			Center: model3d.XYZ(s.X[i], s.Y[i], s.Z[i]),
			Radius: sphereMarkerRadius,
		})
	}
	for _, a := range axes {
		dir := model3d.XYZ(a.dir.X, a.dir.Y, a.dir.Z)
		colliders = append(colliders, &model3d.Cylinder{
			P1:     dir.Scale(-axisLength),
			P2:     dir.Scale(axisLength),
			Radius: axisRadius,
		})
	}
	return model3d.NewJoinedCollider(colliders), nil
}

// sceneColor paints the markers red and the axes gray. Axis hits are the
// ones within axisRadius of a coordinate axis.
func sceneColor(c model3d.Coord3D, _ model3d.RayCollision) render3d.Color {
	onAxis := math.Hypot(c.Y, c.Z) <= axisRadius*1.5 ||
		math.Hypot(c.X, c.Z) <= axisRadius*1.5 ||
		math.Hypot(c.X, c.Y) <= axisRadius*1.5
	if onAxis {
		return axisColor
	}
	return markerColor
}

// cameraOrigin returns the ray tracer's eye position for cam.
func cameraOrigin(cam Camera) model3d.Coord3D {
	_, _, toward := cam.basis()
	d := cameraDistance / cam.zoom()
	return model3d.XYZ(toward.X, toward.Y, toward.Z).Scale(d)
}

// SavePNG ray traces s seen from cam into a size x size PNG image.
func SavePNG(path string, s *Scatter, cam Camera, size int) error {
	if size <= 0 {
		return errors.New("render: image size must be positive")
	}
	collider, err := sceneCollider(s)
	if err != nil {
		return err
	}
	return render3d.SaveRendering(path, collider, cameraOrigin(cam), size, size, sceneColor)
}

// SaveRotatingGIF ray traces s turning around the Z axis into an animated GIF.
func SaveRotatingGIF(path string, s *Scatter, opts GIFOptions) error {
	if opts.ImageSize <= 0 || opts.Frames <= 0 || opts.FPS <= 0 {
		return errors.New("render: GIF size, frames and fps must be positive")
	}
	collider, err := sceneCollider(s)
	if err != nil {
		return err
	}
	return render3d.SaveRotatingGIF(
		path,
		collider,
		model3d.Z(1),
		model3d.YZ(-1, 0.4).Normalize(),
		opts.ImageSize,
		opts.Frames,
		opts.FPS,
		sceneColor,
	)
}
