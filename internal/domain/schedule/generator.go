// Package schedule expands an organizer's scheduling pattern into
// discrete candidate slot windows. Generation is pure: same inputs,
// same output, no side effects.
package schedule

import "time"

// TimeOfDay is a wall-clock time within a day.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// Window is a half-open candidate interval [Start, End).
type Window struct {
	Start time.Time
	End   time.Time
}

type GenerateParams struct {
	// StartDate and EndDate are inclusive calendar dates in the
	// organizer's local time; time-of-day components are ignored.
	StartDate time.Time
	EndDate   time.Time
	// Weekdays is indexed by time.Weekday (Sunday = 0). Excluded days
	// contribute no slots.
	Weekdays [7]bool
	// DayStart and DayEnd bound each included day. A day where
	// DayEnd <= DayStart yields nothing.
	DayStart TimeOfDay
	DayEnd   TimeOfDay
	// IntervalMinutes is the spacing between candidate start times,
	// DurationMinutes the length of each slot.
	IntervalMinutes int
	DurationMinutes int
}

// Generate emits the ordered candidate windows for p. A reversed date
// range is an empty result, not an error. Candidates must fit entirely
// within the daily window: the last start time is the one where
// start+duration still ends at or before DayEnd. No deduplication
// against existing slots happens here; that is the caller's concern.
func Generate(p GenerateParams) []Window {
	if p.DurationMinutes <= 0 || p.IntervalMinutes <= 0 {
		return nil
	}

	loc := p.StartDate.Location()
	start := dateOnly(p.StartDate, loc)
	end := dateOnly(p.EndDate, loc)

	duration := time.Duration(p.DurationMinutes) * time.Minute
	interval := time.Duration(p.IntervalMinutes) * time.Minute

	var out []Window
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if !p.Weekdays[day.Weekday()] {
			continue
		}

		dayStart := at(day, p.DayStart)
		dayEnd := at(day, p.DayEnd)
		if !dayEnd.After(dayStart) {
			continue
		}

		for t := dayStart; !t.Add(duration).After(dayEnd); t = t.Add(interval) {
			out = append(out, Window{Start: t, End: t.Add(duration)})
		}
	}
	return out
}

func dateOnly(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

func at(day time.Time, tod TimeOfDay) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), tod.Hour, tod.Minute, 0, 0, day.Location())
}
