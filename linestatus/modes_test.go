package linestatus

import (
	"testing"
	"time"
)

func contains(modes []string, mode string) bool {
	for _, m := range modes {
		if m == mode {
			return true
		}
	}
	return false
}

func TestStatusModesAtCutover(t *testing.T) {
	london := londonLocation()

	before := time.Date(2022, time.May, 24, 6, 59, 59, 0, london)
	modes := StatusModesAt(before)
	if !contains(modes, "tfl-rail") {
		t.Errorf("before cutover the legacy rail mode must be queried, got %v", modes)
	}
	if contains(modes, "elizabeth-line") {
		t.Errorf("before cutover the elizabeth line must not be queried, got %v", modes)
	}

	after := time.Date(2022, time.May, 24, 7, 0, 1, 0, london)
	modes = StatusModesAt(after)
	if !contains(modes, "elizabeth-line") {
		t.Errorf("after cutover the elizabeth line must be queried, got %v", modes)
	}
	if contains(modes, "tfl-rail") {
		t.Errorf("after cutover the legacy rail mode must not be queried, got %v", modes)
	}
}

func TestStatusModesAtExactCutoverInstant(t *testing.T) {
	at := time.Date(2022, time.May, 24, 7, 0, 0, 0, londonLocation())
	if !contains(StatusModesAt(at), "elizabeth-line") {
		t.Error("the cutover instant itself belongs to the elizabeth line era")
	}
}
