package time_parser

import (
	"strconv"
	"time"
)

var isoFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseQueryTimestamp interprets a timestamp taken from a query string.
// Accepted forms: RFC3339 (with or without zone), date-only, and unix
// seconds or milliseconds. Returns nil for empty or unparseable input.
func ParseQueryTimestamp(raw string) *time.Time {
	if raw == "" {
		return nil
	}

	for _, format := range isoFormats {
		if t, err := time.Parse(format, raw); err == nil {
			utc := t.UTC()
			return &utc
		}
	}

	if unix, err := strconv.ParseInt(raw, 10, 64); err == nil {
		var t time.Time
		if unix > 1e12 { // milliseconds
			t = time.Unix(0, unix*int64(time.Millisecond)).UTC()
		} else {
			t = time.Unix(unix, 0).UTC()
		}
		return &t
	}

	return nil
}
