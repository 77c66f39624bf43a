package roster

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is a calendar date without a time zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) In(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

func (d Date) AddDays(n int) Date {
	return DateOf(time.Date(d.Year, d.Month, d.Day+n, 0, 0, 0, 0, time.UTC))
}

// EndOfMonth returns the last day of d's month.
func (d Date) EndOfMonth() Date {
	return DateOf(time.Date(d.Year, d.Month+1, 0, 0, 0, 0, 0, time.UTC))
}

func (d Date) Weekday() time.Weekday {
	return d.In(time.UTC).Weekday()
}

func (d Date) Before(o Date) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Clock is a time of day in seconds since midnight.
type Clock int

func NewClock(hour, minute, second int) Clock {
	return Clock(hour*3600 + minute*60 + second)
}

// ClockOf returns the time of day of t, truncated to the second.
func ClockOf(t time.Time) Clock {
	return NewClock(t.Hour(), t.Minute(), t.Second())
}

// On returns the instant at which d reaches this time of day in loc.
func (c Clock) On(d Date, loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, int(c)/3600, int(c)%3600/60, int(c)%60, 0, loc)
}

func (c Clock) String() string {
	h, m, s := int(c)/3600, int(c)%3600/60, int(c)%60
	if s != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}

// Window is a time-of-day range, inclusive on both ends.
type Window struct {
	Start Clock
	End   Clock
}

func (w Window) Contains(c Clock) bool {
	return w.Start <= c && c <= w.End
}

func (w Window) String() string {
	return w.Start.String() + "-" + w.End.String()
}

// ParseWindow parses an "H:MM-H:MM" or "HH:MM-HH:MM" token. Whitespace around
// each half is ignored. Every failure wraps ErrIntervalTimeUnparsable.
func ParseWindow(token string) (Window, error) {
	parts := strings.Split(token, "-")
	if len(parts) != 2 {
		return Window{}, fmt.Errorf("%w: %q: expected exactly one '-'", ErrIntervalTimeUnparsable, token)
	}

	start, err := parseClock(parts[0])
	if err != nil {
		return Window{}, fmt.Errorf("%w: %q: start: %v", ErrIntervalTimeUnparsable, token, err)
	}
	end, err := parseClock(parts[1])
	if err != nil {
		return Window{}, fmt.Errorf("%w: %q: end: %v", ErrIntervalTimeUnparsable, token, err)
	}

	return Window{Start: start, End: end}, nil
}

func parseClock(s string) (Clock, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return 0, fmt.Errorf("missing ':' in %q", s)
	}
	if len(hh) < 1 || len(hh) > 2 || len(mm) < 1 || len(mm) > 2 || !isDigits(hh) || !isDigits(mm) {
		return 0, fmt.Errorf("want H:MM or HH:MM, got %q", s)
	}

	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour %q", hh)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute %q", mm)
	}

	return NewClock(hour, minute, 0), nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
