package golondon

import (
	"strconv"
	"strings"
)

type QueryError struct{ Msg string }

func (e *QueryError) Error() string { return e.Msg }

// knownModes are the transport modes the search endpoints accept.
var knownModes = map[string]bool{
	"tube":           true,
	"bus":            true,
	"dlr":            true,
	"overground":     true,
	"elizabeth-line": true,
	"tfl-rail":       true,
	"national-rail":  true,
	"tram":           true,
	"river-bus":      true,
	"cable-car":      true,
}

func parseCoord(s, name string) (float64, error) {
	if s == "" {
		return 0, &QueryError{Msg: "You must provide " + name + "."}
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &QueryError{Msg: name + " must be a decimal coordinate."}
	}
	return v, nil
}

func parseRadius(s string) (int, error) {
	if s == "" {
		return 500, nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return 0, &QueryError{Msg: "radius must be a positive integer number of meters."}
	}
	return v, nil
}

// parseModes splits and validates a comma-separated mode list. An empty
// input returns nil so callers can substitute their default set.
func parseModes(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	modes := make([]string, 0, len(parts))
	for _, p := range parts {
		m := strings.TrimSpace(strings.ToLower(p))
		if m == "" {
			continue
		}
		if !knownModes[m] {
			return nil, &QueryError{Msg: "No such mode: " + m}
		}
		modes = append(modes, m)
	}
	return modes, nil
}

func parseIDList(s string) ([]string, error) {
	ids := make([]string, 0, 4)
	for _, p := range strings.Split(s, ",") {
		if id := strings.TrimSpace(p); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, &QueryError{Msg: "You must provide at least one stop point id."}
	}
	return ids, nil
}
