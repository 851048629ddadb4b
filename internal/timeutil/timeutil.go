package timeutil

import (
	"errors"
	"time"
	_ "time/tzdata"
)

const (
	// DateLayout defines the canonical civil date format (YYYY-MM-DD).
	DateLayout = "2006-01-02"
	// ClockLayout defines the canonical civil time format (HH:MM, 24h).
	ClockLayout = "15:04"

	mountainZone = "America/Denver"
)

// ErrInvalidInstant reports a conversion request for a time that is not a
// valid point in time.
var ErrInvalidInstant = errors.New("timeutil: invalid instant")

var mountain = mustLoadMountain()

func mustLoadMountain() *time.Location {
	loc, err := time.LoadLocation(mountainZone)
	if err != nil {
		// tzdata is linked in, so America/Denver is always resolvable.
		panic("timeutil: load " + mountainZone + ": " + err.Error())
	}
	return loc
}

// Civil is a calendar date and wall-clock time in Mountain Time.
type Civil struct {
	Date string
	Time string
}

// MountainCivil converts an absolute instant to its Mountain Time civil
// date/time pair, honoring DST for the given date.
func MountainCivil(t time.Time) (Civil, error) {
	if t.IsZero() {
		return Civil{}, ErrInvalidInstant
	}
	local := t.In(mountain)
	return Civil{
		Date: local.Format(DateLayout),
		Time: local.Format(ClockLayout),
	}, nil
}

// ParseCivil reconstructs the instant for a stored date/time pair,
// interpreting both in Mountain Time.
func ParseCivil(date, clock string) (time.Time, error) {
	return time.ParseInLocation(DateLayout+"T"+ClockLayout, date+"T"+clock, mountain)
}

// timestampLayouts are tried in order by ParseTimestamp. Zone-less values are
// interpreted as UTC, matching how the upstream feeds publish them.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	DateLayout,
}

// ParseTimestamp parses the timestamp shapes seen across the upstream feeds.
func ParseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidInstant
}
