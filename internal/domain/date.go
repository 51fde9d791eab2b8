package domain

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts are the ISO-8601 forms accepted at the API boundary.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// ParseDate parses an ISO-8601 date or timestamp. Values without an offset are taken as UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid ISO-8601 date %q", s)
}

// FormatDate renders t in the canonical ISO-8601 form used on the wire.
func FormatDate(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
