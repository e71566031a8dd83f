package linestatus

import (
	"time"

	"github.com/go-london/golondon/tfl"
)

// OverviewStatus is the aggregate qualitative label across a set of lines.
type OverviewStatus string

const (
	OverviewAllGood      OverviewStatus = "all good"
	OverviewSomeProblems OverviewStatus = "some problems"
	OverviewManyProblems OverviewStatus = "many problems"
	OverviewAllProblems  OverviewStatus = "all problems"
)

// GoodServiceSeverity is the severity code meaning "Good Service".
const GoodServiceSeverity = 10

// IsGoodService reports whether the line's current status is good service.
func IsGoodService(l tfl.Line, now time.Time) bool {
	st, ok := CurrentStatus(l, now)
	return ok && st.StatusSeverity == GoodServiceSeverity
}

// Overview derives the aggregate label from the share of lines with good
// service: 100% all good, at least 40% some problems, above zero many
// problems, none all problems.
func Overview(lines []tfl.Line, now time.Time) OverviewStatus {
	if len(lines) == 0 {
		return OverviewAllGood
	}
	good := 0
	for _, l := range lines {
		if IsGoodService(l, now) {
			good++
		}
	}
	share := float64(good) / float64(len(lines))
	switch {
	case share == 1:
		return OverviewAllGood
	case share >= 0.4:
		return OverviewSomeProblems
	case share > 0:
		return OverviewManyProblems
	default:
		return OverviewAllProblems
	}
}
