package linestatus

import (
	"context"
	"encoding/json"
	"net/url"
	"testing"

	"github.com/go-london/golondon/tfl"
)

type fakeAPI struct {
	paths   []string
	respond func(path string, query url.Values, out any) error
}

func (f *fakeAPI) Get(ctx context.Context, path string, query url.Values, out any) error {
	f.paths = append(f.paths, path)
	return f.respond(path, query, out)
}

func fill(out any, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

func lineIDs(lines []tfl.Line) []string {
	ids := make([]string, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.ID)
	}
	return ids
}

func TestPromoteLegacyRailLines(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "both present",
			input: []string{"central", "elizabeth", "jubilee", "london-overground", "victoria"},
			want:  []string{"london-overground", "elizabeth", "central", "jubilee", "victoria"},
		},
		{
			name:  "only overground",
			input: []string{"central", "london-overground", "victoria"},
			want:  []string{"london-overground", "central", "victoria"},
		},
		{
			name:  "legacy tfl-rail id",
			input: []string{"tfl-rail", "central"},
			want:  []string{"tfl-rail", "central"},
		},
		{
			name:  "neither present keeps order",
			input: []string{"central", "victoria", "jubilee"},
			want:  []string{"central", "victoria", "jubilee"},
		},
		{
			name:  "empty",
			input: nil,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := make([]tfl.Line, 0, len(tt.input))
			for _, id := range tt.input {
				lines = append(lines, tfl.Line{ID: id})
			}
			got := lineIDs(PromoteLegacyRailLines(lines))
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("position %d: expected %s, got %s", i, tt.want[i], got[i])
				}
			}
		})
	}
}

func TestLineStatusesFetchesModeSet(t *testing.T) {
	api := &fakeAPI{respond: func(path string, query url.Values, out any) error {
		if query.Get("detail") != "true" {
			t.Errorf("expected detail=true, got %q", query.Get("detail"))
		}
		return fill(out, []tfl.Line{{ID: "victoria"}, {ID: "london-overground"}})
	}}

	got, err := NewService(api).LineStatuses(context.Background(), []string{"tube", "overground"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.paths[0] != "/Line/Mode/tube,overground/Status" {
		t.Errorf("unexpected path %s", api.paths[0])
	}
	if got[0].ID != "london-overground" {
		t.Errorf("expected overground promoted to front, got %s", got[0].ID)
	}
}
