// Package api exposes the routing engine over HTTP.
package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"jumpbot/internal/config"
	"jumpbot/internal/db"
	"jumpbot/internal/engine"
	"jumpbot/internal/metrics"
	"jumpbot/internal/resolver"
	"jumpbot/internal/sde"
)

// Server is the HTTP API server that connects the routing engine and the
// database. It answers 503 on data-dependent routes until the dataset
// finishes loading in the background.
type Server struct {
	cfg    *config.Config
	db     *db.DB
	mu     sync.RWMutex
	ready  bool
	data   *sde.Data
	engine *engine.Engine
}

// NewServer creates a Server with the given config and database. The database
// may be nil; query logging is then skipped.
func NewServer(cfg *config.Config, database *db.DB) *Server {
	return &Server{cfg: cfg, db: database}
}

// SetData is called when the dataset finishes loading.
func (s *Server) SetData(data *sde.Data, eng *engine.Engine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	s.engine = eng
	s.ready = true
}

func (s *Server) isReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// ifReady returns the engine, or writes a 503 and returns nil while the
// dataset is still loading.
func (s *Server) ifReady(w http.ResponseWriter) *engine.Engine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.ready {
		writeError(w, 503, "dataset still loading")
		return nil
	}
	return s.engine
}

// Handler returns the HTTP handler with all API routes and middleware.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/status", s.handleStatus)
	mux.HandleFunc("GET /api/route", s.handleRoute)
	mux.HandleFunc("POST /api/route/multi", s.handleMultiRoute)
	mux.HandleFunc("GET /api/evac", s.handleEvac)
	mux.HandleFunc("GET /api/itc", s.handleITC)
	mux.HandleFunc("GET /api/station", s.handleStation)
	mux.HandleFunc("GET /api/resolve", s.handleResolve)
	mux.HandleFunc("GET /api/systems/autocomplete", s.handleAutocomplete)
	mux.HandleFunc("POST /api/scan", s.handleScan)
	mux.HandleFunc("GET /api/popular", s.handlePopular)
	mux.HandleFunc("GET /api/queries/recent", s.handleRecentQueries)
	mux.Handle("GET /metrics", promhttp.Handler())
	return corsMiddleware(metricsMiddleware(mux))
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(204)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the status code written downstream.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: 200}
		next.ServeHTTP(rec, r)
		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rec.status)
		path := r.Pattern // route pattern, not actual path (avoids cardinality explosion)
		if path == "" {
			path = "unknown"
		}
		metrics.RequestDuration.WithLabelValues(r.Method, path, status).Observe(duration)
		metrics.RequestsTotal.WithLabelValues(r.Method, path, status).Inc()
	})
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// countQuery records one served query in the log and the metrics.
func (s *Server) countQuery(kind, input string, jumps int) {
	metrics.QueriesTotal.WithLabelValues(kind).Inc()
	if s.db != nil {
		s.db.InsertQuery(kind, input, jumps)
	}
}

func countWarnings(warnings []resolver.Warning) {
	for _, warning := range warnings {
		metrics.ResolveWarningsTotal.WithLabelValues(string(warning.Kind)).Inc()
	}
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	ready := s.ready
	var systems, gates, itcs, stationSystems int
	if s.data != nil {
		systems = len(s.data.Systems)
		gates = s.data.Universe.GateCount()
		itcs = len(s.data.ITCs)
		stationSystems = len(s.data.StationCounts)
	}
	s.mu.RUnlock()

	writeJSON(w, map[string]interface{}{
		"dataset_loaded":  ready,
		"systems":         systems,
		"gates":           gates,
		"itcs":            itcs,
		"station_systems": stationSystems,
	})
}

func (s *Server) handleResolve(w http.ResponseWriter, r *http.Request) {
	eng := s.ifReady(w)
	if eng == nil {
		return
	}
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeError(w, 400, "missing q")
		return
	}
	result := eng.Resolver().Resolve(q)
	countWarnings(result.Warnings)
	writeJSON(w, result)
}

func (s *Server) handleAutocomplete(w http.ResponseWriter, r *http.Request) {
	q := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("q")))
	if q == "" || !s.isReady() {
		writeJSON(w, map[string][]string{"systems": {}})
		return
	}

	s.mu.RLock()
	names := s.data.SystemNames
	s.mu.RUnlock()

	var prefix, contains []string
	for _, name := range names {
		lower := strings.ToLower(name)
		if strings.HasPrefix(lower, q) {
			prefix = append(prefix, name)
		} else if strings.Contains(lower, q) {
			contains = append(contains, name)
		}
	}

	result := append(prefix, contains...)
	if len(result) > 15 {
		result = result[:15]
	}

	writeJSON(w, map[string][]string{"systems": result})
}

func (s *Server) handleRecentQueries(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		writeJSON(w, map[string][]db.QueryRecord{"queries": {}})
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	records := s.db.RecentQueries(limit)
	if records == nil {
		records = []db.QueryRecord{}
	}
	writeJSON(w, map[string][]db.QueryRecord{"queries": records})
}

// routeOptions parses the shared avoid_null / path query flags.
func routeOptions(r *http.Request) engine.Options {
	q := r.URL.Query()
	return engine.Options{
		AvoidNull:   parseBool(q.Get("avoid_null")),
		IncludePath: parseBool(q.Get("path")),
	}
}

func parseBool(v string) bool {
	b, _ := strconv.ParseBool(v)
	return b
}
