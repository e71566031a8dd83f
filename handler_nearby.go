package golondon

import (
	"errors"
	"net/http"

	"github.com/go-london/golondon/stoppoint"
)

type nearbyResponse struct {
	Markers []stoppoint.StopPointAnnotation `json:"markers"`
	Count   int                             `json:"count"`
}

func (a *App) handleNearby(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	lat, err := parseCoord(q.Get("lat"), "lat")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	lon, err := parseCoord(q.Get("lon"), "lon")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	radius, err := parseRadius(q.Get("radius"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	modes, err := parseModes(q.Get("modes"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(modes) == 0 {
		modes = a.Prefs.HomeModeFilters()
	}

	// The user's own position is optional and only influences ordering.
	var userLocation *stoppoint.Coordinate
	if q.Get("userLat") != "" || q.Get("userLon") != "" {
		userLat, err := parseCoord(q.Get("userLat"), "userLat")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		userLon, err := parseCoord(q.Get("userLon"), "userLon")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		userLocation = &stoppoint.Coordinate{Lat: userLat, Lon: userLon}
	}

	center := stoppoint.Coordinate{Lat: lat, Lon: lon}
	markers, err := a.Stops.FindNearbyMarkers(r.Context(), center, radius, modes, userLocation)
	if errors.Is(err, stoppoint.ErrSearchInFlight) {
		writeError(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		writeUpstreamError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nearbyResponse{Markers: markers, Count: len(markers)})
}
