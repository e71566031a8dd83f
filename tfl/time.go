package tfl

import (
	"strings"
	"time"
)

// The API encodes outbound dates and decodes inbound dates with two different
// fixed layouts, both in UTC.
const (
	encodeLayout = "2006-01-02 15:04:05"
	decodeLayout = "2006-01-02T15:04:05Z"
)

// APITime is a time.Time that marshals and unmarshals with the API's fixed
// UTC date layouts.
type APITime struct {
	time.Time
}

func (t *APITime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := time.ParseInLocation(decodeLayout, s, time.UTC)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (t APITime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + t.UTC().Format(encodeLayout) + `"`), nil
}
