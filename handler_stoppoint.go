package golondon

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/go-london/golondon/stoppoint"
	"github.com/go-london/golondon/tfl"
)

type searchResponse struct {
	Query      string          `json:"query"`
	StopPoints []tfl.StopPoint `json:"stopPoints"`
	Count      int             `json:"count"`
}

func (a *App) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeError(w, http.StatusBadRequest, "You must provide a search query.")
		return
	}
	stops, err := a.Stops.DetailedSearch(r.Context(), query)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, searchResponse{
		Query:      query,
		StopPoints: stops,
		Count:      len(stops),
	})
}

type stopPointsResponse struct {
	StopPoints []tfl.StopPoint `json:"stopPoints"`
	Count      int             `json:"count"`
}

func (a *App) handleStopPoints(w http.ResponseWriter, r *http.Request) {
	ids, err := parseIDList(r.URL.Query().Get("ids"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	stops, err := a.Stops.StopPoints(r.Context(), ids)
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stopPointsResponse{StopPoints: stops, Count: len(stops)})
}

type arrivalsResponse struct {
	StopPointID string                   `json:"stopPointId"`
	Groups      []stoppoint.ArrivalGroup `json:"groups"`
	RespondedAt string                   `json:"respondedAt"`
}

func (a *App) handleArrivals(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	stops, err := a.Stops.StopPoints(r.Context(), []string{id})
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	if len(stops) == 0 {
		writeError(w, http.StatusNotFound, "No such stop point: "+id)
		return
	}
	groups, err := a.Stops.EstimatedArrivals(r.Context(), stops[0])
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, arrivalsResponse{
		StopPointID: id,
		Groups:      groups,
		RespondedAt: iso8601Now(),
	})
}

// writeUpstreamError maps client error categories onto response codes.
func writeUpstreamError(w http.ResponseWriter, err error) {
	var statusErr *tfl.StatusError
	switch {
	case errors.As(err, &statusErr):
		writeError(w, http.StatusBadGateway, err.Error())
	case errors.Is(err, tfl.ErrDecode), errors.Is(err, tfl.ErrBadURL):
		writeError(w, http.StatusBadGateway, err.Error())
	default:
		writeError(w, http.StatusServiceUnavailable, err.Error())
	}
}
