// Package roster turns a semi-structured duty table into a per-day model of
// intervals and answers "who is on duty now" and "what does a person's week
// look like" against it.
package roster

import (
	"errors"
	"fmt"
	"maps"
	"sort"
)

var (
	ErrDateHeaderUnparsable   = errors.New("day header is unparsable")
	ErrIntervalTimeUnparsable = errors.New("interval time is unparsable")
	ErrNoData                 = errors.New("no roster data for date")
	ErrNoSchedule             = errors.New("no schedule found")
	ErrPersonNotFound         = fmt.Errorf("%w: unknown person", ErrNoSchedule)
	ErrInvalidDayCount        = errors.New("day count must be at least 1")
)

// Person is a tracked individual, identified by the name used in the
// roster definition.
type Person string

// DayState is a person's whole-day classification.
type DayState int

const (
	Unset DayState = iota
	Working
	OnLeave
	DayOff
)

func (s DayState) String() string {
	switch s {
	case Working:
		return "working"
	case OnLeave:
		return "on leave"
	case DayOff:
		return "day off"
	default:
		return "unset"
	}
}

// Absent reports whether the state excludes the person from every interval
// of the day.
func (s DayState) Absent() bool {
	return s == OnLeave || s == DayOff
}

// Interval is one time-window row of a day. Window is nil when the time
// token could not be parsed; such an interval keeps its duty mapping but is
// never matched by time queries.
type Interval struct {
	Row       int
	Token     string
	Window    *Window
	Duties    map[Person]bool
	DayStates map[Person]DayState
}

// Day holds the resolved intervals of one calendar date in source row order.
type Day struct {
	Date      Date
	States    map[Person]DayState
	Intervals []Interval
}

// Diagnostic records a recovered parse failure. Row counts data rows from
// 1, so a table whose title row was skipped is one line ahead of it.
type Diagnostic struct {
	Row  int
	Cell string
	Err  error
}

func (d Diagnostic) Error() string {
	return fmt.Sprintf("data row %d: %v", d.Row, d.Err)
}

func (d Diagnostic) Unwrap() error {
	return d.Err
}

// Roster is the immutable result of one ingestion.
type Roster struct {
	persons     []Person
	days        map[Date]Day
	diagnostics []Diagnostic
}

func (r *Roster) Persons() []Person {
	return append([]Person(nil), r.persons...)
}

func (r *Roster) HasPerson(p Person) bool {
	for _, person := range r.persons {
		if person == p {
			return true
		}
	}
	return false
}

// Day returns the resolved day for d. The maps in the result are copies, so
// changing them leaves the roster untouched.
func (r *Roster) Day(d Date) (Day, bool) {
	day, ok := r.days[d]
	if !ok {
		return Day{}, false
	}

	out := Day{
		Date:      day.Date,
		States:    maps.Clone(day.States),
		Intervals: make([]Interval, len(day.Intervals)),
	}
	for i, iv := range day.Intervals {
		out.Intervals[i] = iv.clone(out.States)
	}
	return out, true
}

func (iv Interval) clone(states map[Person]DayState) Interval {
	iv.Duties = maps.Clone(iv.Duties)
	iv.DayStates = states
	if iv.Window != nil {
		w := *iv.Window
		iv.Window = &w
	}
	return iv
}

// Dates returns every date present in the roster in chronological order.
func (r *Roster) Dates() []Date {
	dates := make([]Date, 0, len(r.days))
	for d := range r.days {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
	return dates
}

func (r *Roster) Diagnostics() []Diagnostic {
	return append([]Diagnostic(nil), r.diagnostics...)
}

// onDuty lists the persons flagged in the interval, in roster order.
func (r *Roster) onDuty(iv *Interval) []Person {
	var persons []Person
	for _, p := range r.persons {
		if iv.Duties[p] {
			persons = append(persons, p)
		}
	}
	return persons
}
