package linestatus

import (
	"time"

	"github.com/go-london/golondon/tfl"
)

var nowFunc = time.Now

// CurrentStatus selects the status in effect at the given instant: the first
// whose validity periods include now, either via the explicit IsNow flag or a
// period whose window covers now. Falls back to the first status in the list;
// an empty list has no current status.
func CurrentStatus(l tfl.Line, now time.Time) (tfl.LineStatus, bool) {
	for _, st := range l.LineStatuses {
		for _, vp := range st.ValidityPeriods {
			if validityCoversNow(vp, now) {
				return st, true
			}
		}
	}
	if len(l.LineStatuses) > 0 {
		return l.LineStatuses[0], true
	}
	return tfl.LineStatus{}, false
}

func validityCoversNow(vp tfl.ValidityPeriod, now time.Time) bool {
	if vp.IsNow {
		return true
	}
	if vp.FromDate.IsZero() || vp.ToDate.IsZero() {
		return false
	}
	return !now.Before(vp.FromDate.Time) && !now.After(vp.ToDate.Time)
}
