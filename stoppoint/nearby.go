package stoppoint

import (
	"context"
	"errors"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/go-london/golondon/tfl"
)

// ErrSearchInFlight is returned when a nearby search is already running on
// this service. Overlapping searches neither queue nor cancel the current
// one; callers re-trigger once the running search completes.
var ErrSearchInFlight = errors.New("nearby search already in flight")

// modeWeights ranks transport modes for marker ordering. Zero-weight modes
// (bus) are demoted to the end of the marker list even when closer.
var modeWeights = map[string]int{
	"tube":           30,
	"elizabeth-line": 25,
	"dlr":            20,
	"overground":     20,
	"national-rail":  15,
	"tram":           10,
	"cable-car":      5,
	"river-bus":      5,
	"bus":            0,
}

// Coordinate is a lat/lon pair.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// StopPointAnnotation is a map-displayable wrapper around a stop point. Its
// identity is derived from the coordinate, so two stations sharing a
// coordinate collapse to one marker. Known quirk, kept so marker diffing
// stays byte-compatible with the existing map layer.
type StopPointAnnotation struct {
	ID        string        `json:"id"`
	StopPoint tfl.StopPoint `json:"stopPoint"`
	IsDetail  bool          `json:"isDetail"`
}

// NewStopPointAnnotation wraps a stop point in its map annotation.
func NewStopPointAnnotation(sp tfl.StopPoint) StopPointAnnotation {
	return StopPointAnnotation{ID: coordinateID(sp), StopPoint: sp}
}

func coordinateID(sp tfl.StopPoint) string {
	var lat, lon float64
	if sp.Lat != nil {
		lat = *sp.Lat
	}
	if sp.Lon != nil {
		lon = *sp.Lon
	}
	return strconv.FormatFloat(lat, 'f', -1, 64) + strconv.FormatFloat(lon, 'f', -1, 64)
}

// stopWeight sums the mode weights across a stop's line mode groups.
func stopWeight(sp tfl.StopPoint) int {
	total := 0
	for _, g := range sp.LineModeGroups {
		total += modeWeights[g.ModeName]
	}
	return total
}

// FindNearbyMarkers searches for stop points within radiusMeters of center,
// restricted to the active mode filters, and produces the ordered marker
// list: weighted (tube/rail-significant) stops first sorted by distance to
// the user, bus-only stops appended after, also distance-sorted. At most one
// search runs per service; overlapping calls fail with ErrSearchInFlight.
func (s *Service) FindNearbyMarkers(ctx context.Context, center Coordinate, radiusMeters int, modes []string, userLocation *Coordinate) ([]StopPointAnnotation, error) {
	if !s.searching.CompareAndSwap(false, true) {
		return nil, ErrSearchInFlight
	}
	defer s.searching.Store(false)

	q := url.Values{
		"lat":    {strconv.FormatFloat(center.Lat, 'f', -1, 64)},
		"lon":    {strconv.FormatFloat(center.Lon, 'f', -1, 64)},
		"radius": {strconv.Itoa(radiusMeters)},
		"modes":  {strings.Join(modes, ",")},
	}
	var places []tfl.Place
	if err := s.api.Get(ctx, "/StopPoint", q, &places); err != nil {
		return nil, err
	}

	// Addresses and POIs never become map markers.
	var weighted, busOnly []tfl.StopPoint
	for _, p := range places {
		if p.StopPoint == nil {
			continue
		}
		if stopWeight(*p.StopPoint) > 0 {
			weighted = append(weighted, *p.StopPoint)
		} else {
			busOnly = append(busOnly, *p.StopPoint)
		}
	}

	if userLocation != nil {
		sortByDistance(weighted, *userLocation)
		sortByDistance(busOnly, *userLocation)
	}

	// Weighted stops lead the marker list regardless of distance ordering
	// between the buckets.
	ordered := append(weighted, busOnly...)

	annotations := make([]StopPointAnnotation, 0, len(ordered))
	for _, sp := range ordered {
		if len(sp.LineModeGroups) == 0 {
			continue
		}
		annotations = append(annotations, NewStopPointAnnotation(sp))
	}
	return annotations, nil
}

func sortByDistance(stops []tfl.StopPoint, from Coordinate) {
	sort.SliceStable(stops, func(i, j int) bool {
		return distanceTo(stops[i], from) < distanceTo(stops[j], from)
	})
}

func distanceTo(sp tfl.StopPoint, from Coordinate) float64 {
	if sp.Lat == nil || sp.Lon == nil {
		return earthRadiusMeters // no coordinate sorts last
	}
	return Haversine(from.Lat, from.Lon, *sp.Lat, *sp.Lon)
}
