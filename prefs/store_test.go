package prefs

import (
	"path/filepath"
	"reflect"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "prefs.db"))
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestHomeModeFiltersDefaultWhenAbsent(t *testing.T) {
	s := openTestStore(t)
	got := s.HomeModeFilters()
	if !reflect.DeepEqual(got, DefaultHomeModes) {
		t.Errorf("expected defaults %v, got %v", DefaultHomeModes, got)
	}
}

func TestHomeModeFiltersRoundTrip(t *testing.T) {
	s := openTestStore(t)
	want := []string{"tube", "dlr"}
	if err := s.SetHomeModeFilters(want); err != nil {
		t.Fatalf("storing filters: %v", err)
	}
	if got := s.HomeModeFilters(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	// Overwrite is a whole-value replace, not a merge.
	want = []string{"bus"}
	if err := s.SetHomeModeFilters(want); err != nil {
		t.Fatalf("storing filters: %v", err)
	}
	if got := s.HomeModeFilters(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestLineMapFiltersRoundTrip(t *testing.T) {
	s := openTestStore(t)
	want := []string{"victoria", "central"}
	if err := s.SetLineMapFilters(want); err != nil {
		t.Fatalf("storing filters: %v", err)
	}
	if got := s.LineMapFilters(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestMalformedBlobResetsToDefaults(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.db.Exec(`INSERT INTO prefs (key, value) VALUES (?, ?)`,
		KeyHomeModeFilters, []byte(`{not a json array`)); err != nil {
		t.Fatalf("corrupting row: %v", err)
	}
	got := s.HomeModeFilters()
	if !reflect.DeepEqual(got, DefaultHomeModes) {
		t.Errorf("malformed blob should yield defaults %v, got %v", DefaultHomeModes, got)
	}
}

func TestDefaultsAreCopies(t *testing.T) {
	s := openTestStore(t)
	first := s.HomeModeFilters()
	first[0] = "mutated"
	second := s.HomeModeFilters()
	if second[0] == "mutated" {
		t.Error("returned defaults must not share backing storage")
	}
}
