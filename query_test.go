package golondon

import (
	"reflect"
	"testing"
)

func TestParseCoord(t *testing.T) {
	if _, err := parseCoord("", "lat"); err == nil {
		t.Error("expected error for missing coordinate")
	}
	if _, err := parseCoord("north", "lat"); err == nil {
		t.Error("expected error for non-numeric coordinate")
	}
	v, err := parseCoord(" 51.5175 ", "lat")
	if err != nil || v != 51.5175 {
		t.Errorf("expected 51.5175, got %v (err %v)", v, err)
	}
}

func TestParseRadius(t *testing.T) {
	if v, err := parseRadius(""); err != nil || v != 500 {
		t.Errorf("expected default 500, got %d (err %v)", v, err)
	}
	if _, err := parseRadius("-10"); err == nil {
		t.Error("expected error for negative radius")
	}
	if _, err := parseRadius("wide"); err == nil {
		t.Error("expected error for non-numeric radius")
	}
	if v, err := parseRadius("950"); err != nil || v != 950 {
		t.Errorf("expected 950, got %d (err %v)", v, err)
	}
}

func TestParseModes(t *testing.T) {
	got, err := parseModes("tube, Bus ,dlr")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"tube", "bus", "dlr"}) {
		t.Errorf("expected normalized modes, got %v", got)
	}

	if _, err := parseModes("tube,hovercraft"); err == nil {
		t.Error("expected error for unknown mode")
	}

	if got, err := parseModes("  "); err != nil || got != nil {
		t.Errorf("expected nil for empty input, got %v (err %v)", got, err)
	}
}

func TestParseIDList(t *testing.T) {
	got, err := parseIDList("a, b,,c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("expected trimmed ids, got %v", got)
	}
	if _, err := parseIDList(" , "); err == nil {
		t.Error("expected error for empty id list")
	}
}
