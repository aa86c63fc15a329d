package pws

import (
	"fmt"
	"strings"
	"time"
)

// dateLayout is the wire format the history endpoints expect.
const dateLayout = "20060102"

// ParseDate parses a date given as YYYYMMDD or YYYY-MM-DD.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.ReplaceAll(s, "-", ""))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// toDate truncates a time to its calendar date.
func toDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
