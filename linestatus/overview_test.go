package linestatus

import (
	"testing"
	"time"

	"github.com/go-london/golondon/tfl"
)

func goodLine(id string) tfl.Line {
	return tfl.Line{ID: id, LineStatuses: []tfl.LineStatus{{
		StatusSeverity:  GoodServiceSeverity,
		ValidityPeriods: []tfl.ValidityPeriod{{IsNow: true}},
	}}}
}

func disruptedLine(id string) tfl.Line {
	return tfl.Line{ID: id, LineStatuses: []tfl.LineStatus{{
		StatusSeverity:  6,
		ValidityPeriods: []tfl.ValidityPeriod{{IsNow: true}},
	}}}
}

func TestOverviewBanding(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name  string
		lines []tfl.Line
		want  OverviewStatus
	}{
		{
			name:  "all good",
			lines: []tfl.Line{goodLine("a"), goodLine("b")},
			want:  OverviewAllGood,
		},
		{
			name:  "75 percent good is some problems",
			lines: []tfl.Line{goodLine("a"), goodLine("b"), goodLine("c"), disruptedLine("d")},
			want:  OverviewSomeProblems,
		},
		{
			name:  "exactly 40 percent good is some problems",
			lines: []tfl.Line{goodLine("a"), goodLine("b"), disruptedLine("c"), disruptedLine("d"), disruptedLine("e")},
			want:  OverviewSomeProblems,
		},
		{
			name:  "below 40 percent good is many problems",
			lines: []tfl.Line{goodLine("a"), disruptedLine("b"), disruptedLine("c"), disruptedLine("d")},
			want:  OverviewManyProblems,
		},
		{
			name:  "no good lines is all problems",
			lines: []tfl.Line{disruptedLine("a"), disruptedLine("b")},
			want:  OverviewAllProblems,
		},
		{
			name:  "no lines counts as all good",
			lines: nil,
			want:  OverviewAllGood,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overview(tt.lines, now); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSeverityColour(t *testing.T) {
	tests := []struct {
		severity int
		want     Colour
	}{
		{10, ColourGood},
		{9, ColourMinor},
		{6, ColourSevere},
		{1, ColourClosed},
		{19, ColourNeutral},
		{42, ColourNeutral}, // outside the table
		{-1, ColourNeutral},
	}
	for _, tt := range tests {
		if got := SeverityColour(tt.severity); got != tt.want {
			t.Errorf("severity %d: expected %q, got %q", tt.severity, tt.want, got)
		}
	}
}
