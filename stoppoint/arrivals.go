package stoppoint

import (
	"sort"

	"github.com/go-london/golondon/tfl"
)

// ArrivalGroup buckets arrivals by line name, sorted ascending by
// time-to-station.
type ArrivalGroup struct {
	LineName string           `json:"lineName"`
	Arrivals []tfl.Prediction `json:"arrivals"`
}

// PlatformGroup is a further bucketing of a line's arrivals by
// platform/direction for display.
type PlatformGroup struct {
	Platform string           `json:"platform"`
	Arrivals []tfl.Prediction `json:"arrivals"`
}

// GroupArrivals buckets predictions by line name. Arrivals within a group are
// sorted ascending by time-to-station; groups are sorted alphabetically by
// line name so the display order is stable regardless of arrival times.
func GroupArrivals(preds []tfl.Prediction) []ArrivalGroup {
	byLine := map[string][]tfl.Prediction{}
	for _, p := range preds {
		byLine[p.LineName] = append(byLine[p.LineName], p)
	}

	groups := make([]ArrivalGroup, 0, len(byLine))
	for name, arrivals := range byLine {
		sort.SliceStable(arrivals, func(i, j int) bool {
			return arrivals[i].TimeToStation < arrivals[j].TimeToStation
		})
		groups = append(groups, ArrivalGroup{LineName: name, Arrivals: arrivals})
	}
	sort.Slice(groups, func(i, j int) bool {
		return groups[i].LineName < groups[j].LineName
	})
	return groups
}

// ByPlatform subdivides the group's arrivals by platform name, keeping the
// ascending time order within each platform. Platforms are sorted by name.
func (g ArrivalGroup) ByPlatform() []PlatformGroup {
	byPlatform := map[string][]tfl.Prediction{}
	for _, p := range g.Arrivals {
		key := p.PlatformName
		if key == "" {
			key = p.Direction
		}
		byPlatform[key] = append(byPlatform[key], p)
	}

	platforms := make([]PlatformGroup, 0, len(byPlatform))
	for name, arrivals := range byPlatform {
		platforms = append(platforms, PlatformGroup{Platform: name, Arrivals: arrivals})
	}
	sort.Slice(platforms, func(i, j int) bool {
		return platforms[i].Platform < platforms[j].Platform
	})
	return platforms
}
