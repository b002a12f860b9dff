package domain

import (
	"fmt"
	"time"
)

// BRT is the fixed display and storage offset for every timestamp in
// the system: UTC-3, Brazil standard time, no daylight saving applied.
var BRT = time.FixedZone("-03:00", -3*60*60)

// NowBRT returns the current time in the fixed -03:00 offset.
func NowBRT() time.Time {
	return time.Now().In(BRT)
}

// Period is an inclusive timestamp range with second granularity.
type Period struct {
	Start time.Time
	End   time.Time
}

const dateLayout = "2006-01-02"

// ParsePeriod turns two YYYY-MM-DD calendar dates into the inclusive
// range [start 00:00:00 -03:00, end 23:59:59 -03:00]. It fails with
// ErrInvalidPeriod when either date is malformed or end precedes start.
func ParsePeriod(start, end string) (Period, error) {
	s, err := time.ParseInLocation(dateLayout, start, BRT)
	if err != nil {
		return Period{}, fmt.Errorf("%w: start %q is not YYYY-MM-DD", ErrInvalidPeriod, start)
	}
	e, err := time.ParseInLocation(dateLayout, end, BRT)
	if err != nil {
		return Period{}, fmt.Errorf("%w: end %q is not YYYY-MM-DD", ErrInvalidPeriod, end)
	}
	if e.Before(s) {
		return Period{}, fmt.Errorf("%w: end must be >= start", ErrInvalidPeriod)
	}
	return Period{
		Start: s,
		End:   e.Add(23*time.Hour + 59*time.Minute + 59*time.Second),
	}, nil
}
