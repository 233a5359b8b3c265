// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"log/slog"
	"math"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	rotateStep      = 15.0
	zoomStep        = 1.25
	shutdownTimeout = 5 * time.Second
)

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>{{.Title}}</title></head>
<body style="font-family:sans-serif">
<h3>{{.Title}} ({{.N}} points)</h3>
<p>
<a href="{{.Left}}">&#8634; left</a> |
<a href="{{.Right}}">right &#8635;</a> |
<a href="{{.Up}}">up</a> |
<a href="{{.Down}}">down</a> |
<a href="{{.In}}">zoom in</a> |
<a href="{{.Out}}">zoom out</a> |
<a href="/">reset</a> |
<a href="/map.svg">map</a>
</p>
<img src="{{.Image}}" width="800" height="800" alt="scatter">
<p>azimuth {{.Cam.Azimuth}}&deg;, elevation {{.Cam.Elevation}}&deg;, zoom {{printf "%.2f" .Cam.Zoom}}</p>
</body>
</html>
`))

// Viewer serves an interactive view of a Scatter over HTTP. Each page shows
// the scatter from one camera and links to rotated and zoomed views.
type Viewer struct {
	Scatter *Scatter
	Title   string
	// Logger receives request and lifecycle logs. If nil, nothing is logged.
	Logger *slog.Logger
}

// NewViewer returns a Viewer of s.
func NewViewer(s *Scatter, title string, logger *slog.Logger) *Viewer {
	return &Viewer{Scatter: s, Title: title, Logger: logger}
}

func (v *Viewer) logger() *slog.Logger {
	if v.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return v.Logger
}

// Handler returns the viewer's routes: "/" (page), "/scatter.svg" and "/map.svg".
func (v *Viewer) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", v.handleIndex)
	mux.HandleFunc("GET /scatter.svg", v.handleScatter)
	mux.HandleFunc("GET /map.svg", v.handleMap)
	return mux
}

// Serve listens on addr and serves the viewer until ctx is cancelled.
func (v *Viewer) Serve(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("render: viewer listen: %w", err)
	}
	return v.ServeListener(ctx, ln)
}

// ServeListener serves the viewer on ln until ctx is cancelled, then shuts
// the server down gracefully. It closes ln.
func (v *Viewer) ServeListener(ctx context.Context, ln net.Listener) error {
	log := v.logger()
	srv := &http.Server{
		Handler:           v.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("viewer listening", "url", "http://"+ln.Addr().String()+"/")
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("render: viewer serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		log.Info("viewer shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func (v *Viewer) handleIndex(w http.ResponseWriter, r *http.Request) {
	cam, err := parseCamera(r.URL.Query())
	if err != nil {
		v.fail(w, r, http.StatusBadRequest, err)
		return
	}

	link := func(path string, c Camera) string {
		return path + "?" + cameraQuery(c).Encode()
	}
	rotated := func(dAz, dEl float64) string {
		c := cam
		c.Azimuth += dAz
		c.Elevation = clamp(c.Elevation+dEl, -90, 90)
		return link("/", c)
	}
	zoomed := func(f float64) string {
		c := cam
		c.Zoom *= f
		return link("/", c)
	}

	data := struct {
		Title                           string
		N                               int
		Cam                             Camera
		Image                           string
		Left, Right, Up, Down, In, Out string
	}{
		Title: v.Title,
		N:     v.Scatter.Len(),
		Cam:   cam,
		Image: link("/scatter.svg", cam),
		Left:  rotated(-rotateStep, 0),
		Right: rotated(rotateStep, 0),
		Up:    rotated(0, rotateStep),
		Down:  rotated(0, -rotateStep),
		In:    zoomed(zoomStep),
		Out:   zoomed(1 / zoomStep),
	}

	var buf bytes.Buffer
	if err := indexTemplate.Execute(&buf, data); err != nil {
		v.fail(w, r, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (v *Viewer) handleScatter(w http.ResponseWriter, r *http.Request) {
	cam, err := parseCamera(r.URL.Query())
	if err != nil {
		v.fail(w, r, http.StatusBadRequest, err)
		return
	}
	v.writeSVG(w, r, func(out io.Writer) error {
		return WriteSVG(out, v.Scatter, cam)
	})
}

func (v *Viewer) handleMap(w http.ResponseWriter, r *http.Request) {
	v.writeSVG(w, r, func(out io.Writer) error {
		return WriteMapSVG(out, v.Scatter)
	})
}

func (v *Viewer) writeSVG(w http.ResponseWriter, r *http.Request, draw func(io.Writer) error) {
	var buf bytes.Buffer
	if err := draw(&buf); err != nil {
		v.fail(w, r, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = buf.WriteTo(w)
	v.logger().Debug("served", "path", r.URL.Path, "query", r.URL.RawQuery)
}

func (v *Viewer) fail(w http.ResponseWriter, r *http.Request, code int, err error) {
	v.logger().Warn("request failed", "path", r.URL.Path, "status", code, "error", err)
	http.Error(w, err.Error(), code)
}

// parseCamera reads "az", "el" and "zoom" from q, defaulting to DefaultCamera.
func parseCamera(q url.Values) (Camera, error) {
	cam := DefaultCamera
	fields := []struct {
		key string
		dst *float64
	}{
		{"az", &cam.Azimuth},
		{"el", &cam.Elevation},
		{"zoom", &cam.Zoom},
	}
	for _, f := range fields {
		s := q.Get(f.key)
		if s == "" {
			continue
		}
		val, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(val) || math.IsInf(val, 0) {
			return Camera{}, fmt.Errorf("render: bad %s %q", f.key, s)
		}
		*f.dst = val
	}
	if cam.Zoom <= 0 {
		return Camera{}, fmt.Errorf("render: zoom must be positive, got %v", cam.Zoom)
	}
	return cam, nil
}

func cameraQuery(c Camera) url.Values {
	return url.Values{
		"az":   {strconv.FormatFloat(c.Azimuth, 'g', -1, 64)},
		"el":   {strconv.FormatFloat(c.Elevation, 'g', -1, 64)},
		"zoom": {strconv.FormatFloat(c.Zoom, 'g', 6, 64)},
	}
}

func clamp(x, lo, hi float64) float64 {
	return max(lo, min(hi, x))
}
