// Package server provides a minimal HTTP preview server: a single
// endpoint renders a built-in demo scene to SVG on demand, the way a
// plotter operator would preview a job before sending it to the
// plotter itself. There is no tile streaming or progress reporting
// here since a hidden-line render completes in a single pass, unlike
// the teacher's sample-by-sample progressive raytrace.
package server

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/goplotter/hlines/internal/scenes"
	"github.com/goplotter/hlines/pkg/camera"
	"github.com/goplotter/hlines/pkg/core"
	"github.com/goplotter/hlines/pkg/scene"
	"github.com/goplotter/hlines/pkg/svgwriter"
)

// Server handles preview-render requests over HTTP.
type Server struct {
	port   int
	logger core.Logger
}

// NewServer creates a new preview server listening on port, logging
// through logger (core.NopLogger{} if the caller doesn't care).
func NewServer(port int, logger core.Logger) *Server {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Server{port: port, logger: logger}
}

// Start registers routes and blocks serving HTTP.
func (s *Server) Start() error {
	http.HandleFunc("/api/health", s.handleHealth)
	http.HandleFunc("/render", s.handleRender)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("hlines preview server listening on http://localhost%s", addr)
	return http.ListenAndServe(addr, nil)
}

// handleHealth provides a simple liveness check.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprint(w, "ok")
}

// renderParams holds the query-string-derived parameters for a single
// /render request, with the same defaults cmd/hlines uses.
type renderParams struct {
	sceneType string
	width     float64
	height    float64
	fovY      float64
	znear     float64
	zfar      float64
	eye       core.Point3[core.World]
}

func parseRenderParams(r *http.Request) renderParams {
	q := r.URL.Query()
	p := renderParams{
		sceneType: q.Get("scene"),
		width:     queryFloat(q, "width", 1024),
		height:    queryFloat(q, "height", 1024),
		fovY:      queryFloat(q, "fovy", 50),
		znear:     queryFloat(q, "znear", 0.1),
		zfar:      queryFloat(q, "zfar", 100),
		eye: core.NewPoint3[core.World](
			queryFloat(q, "eye-x", 4),
			queryFloat(q, "eye-y", 3),
			queryFloat(q, "eye-z", 2),
		),
	}
	if p.sceneType == "" {
		p.sceneType = "cube"
	}
	return p
}

func queryFloat(q map[string][]string, key string, fallback float64) float64 {
	vals, ok := q[key]
	if !ok || len(vals) == 0 {
		return fallback
	}
	v, err := strconv.ParseFloat(vals[0], 64)
	if err != nil {
		return fallback
	}
	return v
}

// handleRender builds the requested scene, renders it, and streams
// back the resulting SVG document.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	params := parseRenderParams(r)

	shapes, err := scenes.Build(params.sceneType)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sceneObj := scene.New(shapes, s.logger)
	cam := camera.LookAt(
		params.eye,
		core.NewVec3[core.World](0, 0, 0),
		core.NewVec3[core.World](0, 0, 1),
	).Perspective(params.fovY, params.width, params.height, params.znear, params.zfar)

	rendered := sceneObj.AttachCamera(cam).Render()
	s.logger.Printf("web: rendered %d canvas segments for scene %q", len(rendered), params.sceneType)

	w.Header().Set("Content-Type", "image/svg+xml")
	if err := svgwriter.Write(w, rendered, params.width, params.height, svgwriter.DefaultOptions()); err != nil {
		s.logger.Printf("web: error writing svg response: %v", err)
	}
}
