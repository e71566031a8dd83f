package stoppoint

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/go-london/golondon/tfl"
)

const (
	// searchLimit caps text search results.
	searchLimit = 10
	// arrivalFanOutLimit bounds the concurrent per-child arrival fetches
	// for hub stations.
	arrivalFanOutLimit = 4
)

// Getter is the API client surface the service needs.
type Getter interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
}

// Service queries stop points and aggregates their arrivals.
type Service struct {
	api       Getter
	searching atomic.Bool
}

// NewService creates a stop point service backed by the given API client.
func NewService(api Getter) *Service {
	return &Service{api: api}
}

// SearchByName runs a text search and returns up to 10 matched stop
// summaries. An empty result is not an error.
func (s *Service) SearchByName(ctx context.Context, text string) ([]tfl.MatchedStop, error) {
	var res tfl.SearchResponse
	q := url.Values{"maxResults": {strconv.Itoa(searchLimit)}}
	if err := s.api.Get(ctx, "/StopPoint/Search/"+text, q, &res); err != nil {
		return nil, err
	}
	matches := res.Matches
	if len(matches) > searchLimit {
		matches = matches[:searchLimit]
	}
	return matches, nil
}

// StopPoints batch-fetches full detail for the given ids.
func (s *Service) StopPoints(ctx context.Context, ids []string) ([]tfl.StopPoint, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var raw json.RawMessage
	if err := s.api.Get(ctx, "/StopPoint/"+strings.Join(ids, ","), nil, &raw); err != nil {
		return nil, err
	}
	return decodeStopPoints(raw)
}

// decodeStopPoints tries array decoding first; the endpoint returns a bare
// object, not an array, when given exactly one id.
func decodeStopPoints(raw json.RawMessage) ([]tfl.StopPoint, error) {
	var many []tfl.StopPoint
	if err := json.Unmarshal(raw, &many); err == nil {
		return many, nil
	}
	var one tfl.StopPoint
	if err := json.Unmarshal(raw, &one); err != nil {
		return nil, fmt.Errorf("%w: stop point payload is neither array nor object", tfl.ErrDecode)
	}
	return []tfl.StopPoint{one}, nil
}

// DetailedSearch composes SearchByName and StopPoints and returns the
// detailed records reversed. The reversal is the display order the rest of
// the application was built around; keep it.
func (s *Service) DetailedSearch(ctx context.Context, text string) ([]tfl.StopPoint, error) {
	matches, err := s.SearchByName(ctx, text)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.ID)
	}
	stops, err := s.StopPoints(ctx, ids)
	if err != nil {
		return nil, err
	}
	reverseStopPoints(stops)
	return stops, nil
}

func reverseStopPoints(stops []tfl.StopPoint) {
	for i, j := 0, len(stops)-1; i < j; i, j = i+1, j-1 {
		stops[i], stops[j] = stops[j], stops[i]
	}
}

// EstimatedArrivals fetches predicted arrivals for a stop point and groups
// them per line. Hub stations have no arrivals of their own; every child
// station id is fetched with a bounded concurrent fan-out and the results
// concatenated before grouping.
func (s *Service) EstimatedArrivals(ctx context.Context, sp tfl.StopPoint) ([]ArrivalGroup, error) {
	ids := []string{sp.ID}
	if sp.IsHub() {
		ids = sp.ChildStationIDs
	}
	if len(ids) == 0 {
		return nil, nil
	}

	results := make([][]tfl.Prediction, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(arrivalFanOutLimit)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			var preds []tfl.Prediction
			if err := s.api.Get(ctx, "/StopPoint/"+id+"/Arrivals", nil, &preds); err != nil {
				return err
			}
			results[i] = preds
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var combined []tfl.Prediction
	for _, preds := range results {
		combined = append(combined, preds...)
	}
	return GroupArrivals(combined), nil
}
