package attendance

import (
	"fmt"
	"time"
)

// WorkDay is the company wide schedule check-ins are judged against.
type WorkDay struct {
	Location    *time.Location
	Start       time.Duration // offset from local midnight
	End         time.Duration
	GracePeriod time.Duration
}

// ParseWorkDay builds a WorkDay from "15:04" clock strings and an IANA zone.
func ParseWorkDay(start, end string, grace time.Duration, timezone string) (WorkDay, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return WorkDay{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	s, err := parseClock(start)
	if err != nil {
		return WorkDay{}, err
	}
	e, err := parseClock(end)
	if err != nil {
		return WorkDay{}, err
	}
	if e <= s {
		return WorkDay{}, fmt.Errorf("work day end %s must be after start %s", end, start)
	}
	if grace < 0 {
		return WorkDay{}, fmt.Errorf("grace period must not be negative")
	}
	return WorkDay{Location: loc, Start: s, End: e, GracePeriod: grace}, nil
}

func parseClock(s string) (time.Duration, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q, expected HH:MM", s)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

func (w WorkDay) loc() *time.Location {
	if w.Location == nil {
		return time.UTC
	}
	return w.Location
}

// Date is the working day at falls on, as a UTC midnight.
func (w WorkDay) Date(at time.Time) time.Time {
	y, m, d := at.In(w.loc()).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (w WorkDay) localMidnight(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, w.loc())
}

// ScheduledStart returns the start of the working day date.
func (w WorkDay) ScheduledStart(date time.Time) time.Time {
	return w.localMidnight(date).Add(w.Start)
}

// ScheduledEnd returns the end of the working day date.
func (w WorkDay) ScheduledEnd(date time.Time) time.Time {
	return w.localMidnight(date).Add(w.End)
}

// StatusAt is late when at falls after the start plus the grace period.
func (w WorkDay) StatusAt(at time.Time) Status {
	if at.After(w.ScheduledStart(w.Date(at)).Add(w.GracePeriod)) {
		return StatusLate
	}
	return StatusPresent
}
