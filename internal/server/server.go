// Package server exposes the simulation engine over a local HTTP API for
// the dashboard frontend.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/saulvp23gmail/lcoh-calculator/pkg/engine"
	"github.com/saulvp23gmail/lcoh-calculator/pkg/profile"
	"github.com/saulvp23gmail/lcoh-calculator/pkg/scenario"
	"github.com/saulvp23gmail/lcoh-calculator/pkg/validation"
)

// Server is the local API server for interactive scenario runs.
type Server struct {
	projectPath string
	port        int
	provider    profile.Provider
	log         *zap.Logger
}

// New creates a server for the given project directory. The provider may
// be nil, in which case sources without attached profiles fall back to
// the default capacity factor.
func New(projectPath string, port int, provider profile.Provider, log *zap.Logger) *Server {
	return &Server{
		projectPath: projectPath,
		port:        port,
		provider:    provider,
		log:         log,
	}
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/scenario", s.handleScenario)
	mux.HandleFunc("GET /api/validation", s.handleValidation)
	mux.HandleFunc("POST /api/simulate", s.handleSimulate)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	addr := fmt.Sprintf(":%d", s.port)
	s.log.Info("lcoh server starting",
		zap.String("addr", addr),
		zap.String("project", s.projectPath),
	)

	return http.ListenAndServe(addr, mux)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleScenario(w http.ResponseWriter, _ *http.Request) {
	sc, err := scenario.LoadProject(s.projectPath)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, sc)
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	sc, err := scenario.LoadProject(s.projectPath)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, validation.ValidateSchema(sc))
}

// simulateRequest optionally overrides the on-disk scenario.
type simulateRequest struct {
	Scenario      *scenario.Scenario `json:"scenario,omitempty"`
	FetchProfiles bool               `json:"fetch_profiles,omitempty"`
}

type simulateResponse struct {
	Result     *engine.Result     `json:"result"`
	Validation *validation.Report `json:"validation"`
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	// An empty body means "simulate the on-disk scenario as-is".
	var req simulateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		simulationsTotal.WithLabelValues("bad_request").Inc()
		return
	}

	sc := req.Scenario
	if sc == nil {
		loaded, err := scenario.LoadProject(s.projectPath)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
			simulationsTotal.WithLabelValues("error").Inc()
			return
		}
		sc = loaded
	}

	if req.FetchProfiles && s.provider != nil {
		s.attachProfiles(r.Context(), sc)
	}

	result, rep, err := engine.Run(sc)
	if err != nil {
		status := http.StatusUnprocessableEntity
		if errors.Is(err, engine.ErrInvalidScenario) {
			status = http.StatusBadRequest
		}
		writeJSON(w, status, map[string]any{"error": err.Error(), "validation": rep})
		simulationsTotal.WithLabelValues("error").Inc()
		return
	}

	simulationsTotal.WithLabelValues("ok").Inc()
	simulationDuration.Observe(time.Since(start).Seconds())
	s.log.Info("simulation complete",
		zap.Float64("lcoh", result.LCOH),
		zap.Duration("elapsed", time.Since(start)),
	)

	writeJSON(w, http.StatusOK, simulateResponse{Result: result, Validation: rep})
}

// attachProfiles fetches hourly profiles for sources that need one. A
// failed fetch logs a warning and leaves the source to the default
// capacity factor; it never blocks the other sources.
func (s *Server) attachProfiles(ctx context.Context, sc *scenario.Scenario) {
	for i := range sc.Sources {
		src := &sc.Sources[i]
		if src.IsGrid() || src.HasProfile() || src.Location == nil {
			continue
		}
		prof, err := profile.FetchNormalized(ctx, s.provider, *src)
		if err != nil {
			s.log.Warn("profile fetch failed",
				zap.String("source", src.Name),
				zap.Error(err),
			)
			continue
		}
		src.CapacityFactors = prof
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
