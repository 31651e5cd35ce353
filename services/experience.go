package services

import (
	"strconv"
	"strings"
	"time"

	"backend/entity"
)

// TotalYears sums the duration of every experience entry and reports full
// years. Overlapping roles each count in full (breadth of experience, not
// elapsed calendar time). Entries with an unparsable start, a missing end on
// a non-current role, or an end before the start contribute nothing.
func TotalYears(roles []entity.ExperienceRole, now time.Time) int {
	months := 0
	for _, r := range roles {
		start, ok := parseMonth(r.Start)
		if !ok {
			continue
		}

		var end time.Time
		switch {
		case r.Current:
			end = now
		case r.End != nil:
			var ok bool
			end, ok = parseMonth(*r.End)
			if !ok {
				continue
			}
		default:
			continue
		}

		if d := monthsBetween(start, end); d > 0 {
			months += d
		}
	}
	return months / 12
}

func monthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}

// parseMonth reads "YYYY-MM"; a bare "YYYY" defaults to January.
func parseMonth(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}

	parts := strings.SplitN(s, "-", 2)
	year, err := strconv.Atoi(parts[0])
	if err != nil || year < 1 {
		return time.Time{}, false
	}

	month := 1
	if len(parts) == 2 {
		month, err = strconv.Atoi(parts[1])
		if err != nil || month < 1 || month > 12 {
			return time.Time{}, false
		}
	}
	return time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC), true
}
