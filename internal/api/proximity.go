package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"jumpbot/internal/engine"
)

func (s *Server) handleEvac(w http.ResponseWriter, r *http.Request) {
	eng := s.ifReady(w)
	if eng == nil {
		return
	}
	from := strings.TrimSpace(r.URL.Query().Get("from"))
	if from == "" {
		writeError(w, 400, "missing from")
		return
	}

	result, err := eng.NearestSafe(from, routeOptions(r))
	countWarnings(result.Warnings)
	if err != nil {
		if errors.Is(err, engine.ErrNoMatch) {
			writeError(w, 404, err.Error())
			return
		}
		writeError(w, 500, err.Error())
		return
	}
	s.countQuery("evac", from, proximityJumps(result))
	writeJSON(w, result)
}

func (s *Server) handleITC(w http.ResponseWriter, r *http.Request) {
	s.handleProximity(w, r, "itc", func(eng *engine.Engine, from string, count int, opts engine.Options) (*engine.ProximityResult, error) {
		return eng.NearestITCs(from, count, opts)
	})
}

func (s *Server) handleStation(w http.ResponseWriter, r *http.Request) {
	s.handleProximity(w, r, "station", func(eng *engine.Engine, from string, count int, opts engine.Options) (*engine.ProximityResult, error) {
		return eng.NearestStations(from, count, opts)
	})
}

func (s *Server) handleProximity(w http.ResponseWriter, r *http.Request, kind string,
	search func(*engine.Engine, string, int, engine.Options) (*engine.ProximityResult, error)) {
	eng := s.ifReady(w)
	if eng == nil {
		return
	}
	q := r.URL.Query()
	from := strings.TrimSpace(q.Get("from"))
	if from == "" {
		writeError(w, 400, "missing from")
		return
	}
	count, _ := strconv.Atoi(q.Get("count"))

	result, err := search(eng, from, count, routeOptions(r))
	countWarnings(result.Warnings)
	if err != nil {
		if errors.Is(err, engine.ErrNoMatch) {
			writeError(w, 404, err.Error())
			return
		}
		writeError(w, 500, err.Error())
		return
	}
	s.countQuery(kind, from, proximityJumps(result))
	writeJSON(w, result)
}

// proximityJumps picks the headline jump count for the query log.
func proximityJumps(result *engine.ProximityResult) int {
	if len(result.Matches) == 0 {
		return 0
	}
	return result.Matches[0].Jumps
}
