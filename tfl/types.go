package tfl

import (
	"encoding/json"
	"strings"
)

// LineModeGroup pairs a transport mode with the line identifiers served under
// that mode at a stop.
type LineModeGroup struct {
	ModeName       string   `json:"modeName"`
	LineIdentifier []string `json:"lineIdentifier"`
}

// AdditionalProperty is a flat key/value attribute on a stop point
// (WiFi, Zone, etc.).
type AdditionalProperty struct {
	Category string `json:"category"`
	Key      string `json:"key"`
	Value    string `json:"value"`
}

// StopPoint is a station, stop or hub.
type StopPoint struct {
	ID                   string               `json:"naptanId"`
	Name                 string               `json:"commonName"`
	Lat                  *float64             `json:"lat,omitempty"`
	Lon                  *float64             `json:"lon,omitempty"`
	LineModeGroups       []LineModeGroup      `json:"lineModeGroups"`
	AdditionalProperties []AdditionalProperty `json:"additionalProperties,omitempty"`
	ChildStationIDs      []string             `json:"childStationIds,omitempty"`
}

// IsHub reports whether the stop point is a hub station. Hubs carry no
// arrivals of their own; each child station id must be queried independently.
func (sp StopPoint) IsHub() bool {
	return strings.HasPrefix(sp.ID, "HUB")
}

// Property returns the value of an additional property by key, or "".
func (sp StopPoint) Property(key string) string {
	for _, p := range sp.AdditionalProperties {
		if strings.EqualFold(p.Key, key) {
			return p.Value
		}
	}
	return ""
}

// PointOfInterest is a non-stop search result (address, place of interest).
type PointOfInterest struct {
	ID   string   `json:"id"`
	Name string   `json:"commonName"`
	Lat  *float64 `json:"lat,omitempty"`
	Lon  *float64 `json:"lon,omitempty"`
}

// Place is the tagged union over the geo-search endpoint's result types,
// discriminated on the "$type" field. Exactly one of StopPoint and
// PointOfInterest is non-nil.
type Place struct {
	Type            string
	StopPoint       *StopPoint
	PointOfInterest *PointOfInterest
}

func (p *Place) UnmarshalJSON(data []byte) error {
	var probe struct {
		Type string `json:"$type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	p.Type = probe.Type
	if strings.Contains(probe.Type, "StopPoint") {
		var sp StopPoint
		if err := json.Unmarshal(data, &sp); err != nil {
			return err
		}
		p.StopPoint = &sp
		return nil
	}
	var poi PointOfInterest
	if err := json.Unmarshal(data, &poi); err != nil {
		return err
	}
	p.PointOfInterest = &poi
	return nil
}

// MatchedStop is a summary result from the text search endpoint.
type MatchedStop struct {
	ID   string  `json:"id"`
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// SearchResponse is the envelope returned by /StopPoint/Search.
type SearchResponse struct {
	Query   string        `json:"query"`
	Total   int           `json:"total"`
	Matches []MatchedStop `json:"matches"`
}

// Prediction is a predicted vehicle arrival at a stop.
type Prediction struct {
	ID              string  `json:"id"`
	StationName     string  `json:"stationName"`
	LineID          string  `json:"lineId"`
	LineName        string  `json:"lineName"`
	PlatformName    string  `json:"platformName"`
	Direction       string  `json:"direction"`
	DestinationName string  `json:"destinationName"`
	TimeToStation   int     `json:"timeToStation"` // seconds
	ExpectedArrival APITime `json:"expectedArrival"`
}

// ValidityPeriod is the time window during which a line status applies.
type ValidityPeriod struct {
	FromDate APITime `json:"fromDate"`
	ToDate   APITime `json:"toDate"`
	IsNow    bool    `json:"isNow"`
}

// Disruption is the optional detail attached to a line status.
type Disruption struct {
	Category    string `json:"category"`
	Description string `json:"description"`
}

// LineStatus is one status record on a line.
type LineStatus struct {
	StatusSeverity            int              `json:"statusSeverity"`
	StatusSeverityDescription string           `json:"statusSeverityDescription"`
	Reason                    string           `json:"reason,omitempty"`
	ValidityPeriods           []ValidityPeriod `json:"validityPeriods"`
	Disruption                *Disruption      `json:"disruption,omitempty"`
}

// Line is a transport line with its current status records.
type Line struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	ModeName     string       `json:"modeName"`
	LineStatuses []LineStatus `json:"lineStatuses"`
}
