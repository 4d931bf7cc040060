package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"slotbooker/internal/domain/schedule"
	"slotbooker/internal/usecase/commands"
)

var (
	ErrInvalidDate     = errors.New("dates must be formatted as YYYY-MM-DD")
	ErrInvalidTime     = errors.New("times must be formatted as HH:MM")
	ErrInvalidWeekday  = errors.New("weekdays must be between 0 (Sunday) and 6 (Saturday)")
	ErrInvalidTimezone = errors.New("unknown timezone")
)

// SlotPattern is the wire form of a recurring availability pattern.
// Dates and times are interpreted in the request's timezone.
type SlotPattern struct {
	StartDate       string `json:"start_date" binding:"required"`
	EndDate         string `json:"end_date" binding:"required"`
	Weekdays        []int  `json:"weekdays" binding:"required,min=1"`
	DayStart        string `json:"day_start" binding:"required"`
	DayEnd          string `json:"day_end" binding:"required"`
	IntervalMinutes int    `json:"interval_minutes" binding:"required,min=1"`
}

func (p SlotPattern) ToGenerateParams(timezone string, durationMinutes int) (schedule.GenerateParams, error) {
	loc := time.UTC
	if timezone != "" {
		var err error
		loc, err = time.LoadLocation(timezone)
		if err != nil {
			return schedule.GenerateParams{}, fmt.Errorf("%w: %s", ErrInvalidTimezone, timezone)
		}
	}

	startDate, err := time.ParseInLocation("2006-01-02", p.StartDate, loc)
	if err != nil {
		return schedule.GenerateParams{}, ErrInvalidDate
	}
	endDate, err := time.ParseInLocation("2006-01-02", p.EndDate, loc)
	if err != nil {
		return schedule.GenerateParams{}, ErrInvalidDate
	}

	dayStart, err := parseTimeOfDay(p.DayStart)
	if err != nil {
		return schedule.GenerateParams{}, err
	}
	dayEnd, err := parseTimeOfDay(p.DayEnd)
	if err != nil {
		return schedule.GenerateParams{}, err
	}

	var weekdays [7]bool
	for _, d := range p.Weekdays {
		if d < 0 || d > 6 {
			return schedule.GenerateParams{}, ErrInvalidWeekday
		}
		weekdays[d] = true
	}

	return schedule.GenerateParams{
		StartDate:       startDate,
		EndDate:         endDate,
		Weekdays:        weekdays,
		DayStart:        dayStart,
		DayEnd:          dayEnd,
		IntervalMinutes: p.IntervalMinutes,
		DurationMinutes: durationMinutes,
	}, nil
}

func parseTimeOfDay(s string) (schedule.TimeOfDay, error) {
	var hour, minute int
	if _, err := fmt.Sscanf(s, "%d:%d", &hour, &minute); err != nil {
		return schedule.TimeOfDay{}, ErrInvalidTime
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return schedule.TimeOfDay{}, ErrInvalidTime
	}
	return schedule.TimeOfDay{Hour: hour, Minute: minute}, nil
}

type CreateBookingRequest struct {
	Title           string          `json:"title" binding:"required"`
	Description     string          `json:"description"`
	Recipients      []string        `json:"recipients"`
	Timezone        string          `json:"timezone"`
	DurationMinutes int             `json:"duration_minutes" binding:"required,min=1"`
	MaxSelections   int             `json:"max_selections_per_person" binding:"omitempty,min=1"`
	Branding        json.RawMessage `json:"branding,omitempty"`
	Pattern         SlotPattern     `json:"pattern" binding:"required"`
}

func (r CreateBookingRequest) ToParams() (commands.CreateRequestParams, error) {
	genParams, err := r.Pattern.ToGenerateParams(r.Timezone, r.DurationMinutes)
	if err != nil {
		return commands.CreateRequestParams{}, err
	}

	return commands.CreateRequestParams{
		Title:           r.Title,
		Description:     r.Description,
		Recipients:      r.Recipients,
		Timezone:        r.Timezone,
		DurationMinutes: r.DurationMinutes,
		MaxSelections:   r.MaxSelections,
		Branding:        r.Branding,
		Schedule:        genParams,
	}, nil
}

type AppendSlotsRequest struct {
	Pattern SlotPattern `json:"pattern" binding:"required"`
}

type CreateInvitesRequest struct {
	Emails []string `json:"emails" binding:"required,min=1"`
}
