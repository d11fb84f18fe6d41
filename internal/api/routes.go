package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"jumpbot/internal/engine"
	"jumpbot/internal/graph"
)

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	eng := s.ifReady(w)
	if eng == nil {
		return
	}
	q := r.URL.Query()
	from := strings.TrimSpace(q.Get("from"))
	to := strings.TrimSpace(q.Get("to"))
	if from == "" || to == "" {
		writeError(w, 400, "missing from or to")
		return
	}

	result, err := eng.Route(from, to, routeOptions(r))
	countWarnings(result.Warnings)
	if err != nil {
		if errors.Is(err, graph.ErrNoPath) {
			writeError(w, 404, err.Error())
			return
		}
		writeError(w, 500, err.Error())
		return
	}
	s.countQuery("route", from+" "+to, result.Jumps)
	writeJSON(w, result)
}

type multiRouteRequest struct {
	Stops     []string `json:"stops"`
	AvoidNull bool     `json:"avoid_null"`
	Path      bool     `json:"path"`
}

func (s *Server) handleMultiRoute(w http.ResponseWriter, r *http.Request) {
	eng := s.ifReady(w)
	if eng == nil {
		return
	}
	var req multiRouteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, 400, "invalid json")
		return
	}

	itinerary, err := eng.Multistop(req.Stops, engine.Options{AvoidNull: req.AvoidNull, IncludePath: req.Path})
	if err != nil {
		switch {
		case errors.Is(err, engine.ErrTooManyStops):
			writeError(w, 400, err.Error())
		case errors.Is(err, engine.ErrInsufficientStops):
			writeError(w, 422, err.Error())
		default:
			writeError(w, 500, err.Error())
		}
		return
	}
	countWarnings(itinerary.Warnings)
	s.countQuery("multi", strings.Join(req.Stops, " "), itinerary.TotalJumps)
	writeJSON(w, itinerary)
}

func (s *Server) handlePopular(w http.ResponseWriter, r *http.Request) {
	eng := s.ifReady(w)
	if eng == nil {
		return
	}
	target := strings.TrimSpace(r.URL.Query().Get("target"))
	if target == "" {
		writeError(w, 400, "missing target")
		return
	}

	result, err := eng.FromPopular(target)
	if err != nil {
		writeError(w, 500, err.Error())
		return
	}
	countWarnings(result.Warnings)
	s.countQuery("popular", target, 0)
	writeJSON(w, result)
}

type scanRequest struct {
	Text string `json:"text"`
}

func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	eng := s.ifReady(w)
	if eng == nil {
		return
	}
	var req scanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, 400, "invalid json")
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		writeError(w, 400, "missing text")
		return
	}

	result := eng.ScanText(req.Text)
	s.countQuery("scan", req.Text, 0)
	writeJSON(w, result)
}
