package linestatus

import (
	"context"
	"net/url"
	"strings"

	"github.com/go-london/golondon/tfl"
)

// Getter is the API client surface the service needs.
type Getter interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
}

// Service fetches line statuses.
type Service struct {
	api Getter
}

// NewService creates a line status service backed by the given API client.
func NewService(api Getter) *Service {
	return &Service{api: api}
}

// LineStatuses fetches line status for a mode set and applies the legacy
// front-of-list reordering.
func (s *Service) LineStatuses(ctx context.Context, modes []string) ([]tfl.Line, error) {
	var lines []tfl.Line
	q := url.Values{"detail": {"true"}}
	path := "/Line/Mode/" + strings.Join(modes, ",") + "/Status"
	if err := s.api.Get(ctx, path, q, &lines); err != nil {
		return nil, err
	}
	return PromoteLegacyRailLines(lines), nil
}

// Overview fetches line statuses for a mode set and derives the aggregate
// overview label.
func (s *Service) Overview(ctx context.Context, modes []string) (OverviewStatus, error) {
	lines, err := s.LineStatuses(ctx, modes)
	if err != nil {
		return "", err
	}
	return Overview(lines, nowFunc()), nil
}

// promotedLineIDs are moved to the front of the status list, in this relative
// order. A cosmetic legacy rule, not a sort key: everything else keeps its
// fetched order.
var promotedLineIDs = []string{"london-overground", "elizabeth", "tfl-rail"}

// PromoteLegacyRailLines moves london-overground to the front of the list,
// followed by the elizabeth/tfl-rail line when present. The relative order of
// all other lines is preserved.
func PromoteLegacyRailLines(lines []tfl.Line) []tfl.Line {
	promoted := make([]tfl.Line, 0, len(promotedLineIDs))
	rest := make([]tfl.Line, 0, len(lines))
	for _, id := range promotedLineIDs {
		for _, l := range lines {
			if l.ID == id {
				promoted = append(promoted, l)
				break
			}
		}
	}
	for _, l := range lines {
		if !isPromoted(l.ID) {
			rest = append(rest, l)
		}
	}
	return append(promoted, rest...)
}

func isPromoted(id string) bool {
	for _, p := range promotedLineIDs {
		if id == p {
			return true
		}
	}
	return false
}
