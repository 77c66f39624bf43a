package roster

import (
	"fmt"
	"maps"
	"sort"
	"time"
)

// DutyResult is the answer to a point-in-time query. Interval is nil when
// the date is known but no interval contains the time; OnDuty is then empty.
type DutyResult struct {
	Date     Date
	Interval *Interval
	OnDuty   []Person
}

// OnDuty returns the persons on duty at now. The date and time of day are
// taken from now in its own location. It returns ErrNoData when the roster
// has no entry for the date.
//
// Intervals are scanned in row order and the first one whose bounds contain
// the time is authoritative, even when it has nobody on duty and a later
// overlapping interval does.
func (r *Roster) OnDuty(now time.Time) (DutyResult, error) {
	date := DateOf(now)
	day, ok := r.days[date]
	if !ok {
		return DutyResult{}, fmt.Errorf("%w %s", ErrNoData, date)
	}

	res := DutyResult{Date: date}
	clock := ClockOf(now)
	for i := range day.Intervals {
		iv := &day.Intervals[i]
		if iv.Window == nil || !iv.Window.Contains(clock) {
			continue
		}
		found := iv.clone(maps.Clone(day.States))
		res.Interval = &found
		res.OnDuty = r.onDuty(iv)
		break
	}

	return res, nil
}

// DaySchedule is one day of a person's schedule.
type DaySchedule struct {
	Date          Date
	Weekday       time.Weekday
	Status        DayState
	DutyIntervals []Window
}

// Schedule is a person's status over a window of days.
type Schedule struct {
	Person Person
	From   Date
	To     Date
	// Clamped is set when the requested window ran past the end of From's
	// month and was cut there.
	Clamped bool
	Days    []DaySchedule
}

// Schedule returns person's status for days consecutive dates starting at
// from, never crossing into the next month. Dates missing from the roster
// and dates where the person has no state are omitted. When nothing is left
// the partially filled Schedule is returned with ErrNoSchedule.
func (r *Roster) Schedule(person Person, from Date, days int) (Schedule, error) {
	if days < 1 {
		return Schedule{}, ErrInvalidDayCount
	}
	if !r.HasPerson(person) {
		return Schedule{}, fmt.Errorf("%w: %q", ErrPersonNotFound, person)
	}

	s := Schedule{
		Person: person,
		From:   from,
	}
	if last := from.EndOfMonth(); days-1 > last.Day-from.Day {
		s.To, s.Clamped = last, true
	} else {
		s.To = from.AddDays(days - 1)
	}

	for d := from; !s.To.Before(d); d = d.AddDays(1) {
		day, ok := r.days[d]
		if !ok {
			continue
		}
		status := day.States[person]
		if status == Unset {
			continue
		}

		entry := DaySchedule{
			Date:    d,
			Weekday: d.Weekday(),
			Status:  status,
		}
		for _, iv := range day.Intervals {
			if iv.Window != nil && iv.Duties[person] {
				entry.DutyIntervals = append(entry.DutyIntervals, *iv.Window)
			}
		}
		s.Days = append(s.Days, entry)
	}

	if len(s.Days) == 0 {
		return s, fmt.Errorf("%w for %s between %s and %s", ErrNoSchedule, person, s.From, s.To)
	}
	return s, nil
}

// Upcoming returns the start times of the timed intervals of now's date that
// begin at or after now (second resolution), in chronological order.
func (r *Roster) Upcoming(now time.Time) []Clock {
	day, ok := r.days[DateOf(now)]
	if !ok {
		return nil
	}

	clock := ClockOf(now)
	seen := make(map[Clock]bool)
	var starts []Clock
	for _, iv := range day.Intervals {
		if iv.Window == nil || iv.Window.Start < clock || seen[iv.Window.Start] {
			continue
		}
		seen[iv.Window.Start] = true
		starts = append(starts, iv.Window.Start)
	}
	sort.Slice(starts, func(i, j int) bool {
		return starts[i] < starts[j]
	})
	return starts
}
