package linestatus

import "time"

// The Elizabeth line opened 2022-05-24 at 07:00 London time, replacing TfL
// Rail. Status queries before that instant must keep using the legacy mode
// so historical data stays faithful.
var elizabethCutover = time.Date(2022, time.May, 24, 7, 0, 0, 0, londonLocation())

func londonLocation() *time.Location {
	loc, err := time.LoadLocation("Europe/London")
	if err != nil {
		return time.UTC
	}
	return loc
}

// StatusModesAt returns the transport mode set to query for line status at
// the given instant.
func StatusModesAt(t time.Time) []string {
	modes := []string{"tube", "overground", "dlr", "tram"}
	if t.Before(elizabethCutover) {
		return append(modes, "tfl-rail")
	}
	return append(modes, "elizabeth-line")
}

// StatusModes returns the mode set for the current instant.
func StatusModes() []string {
	return StatusModesAt(nowFunc())
}
