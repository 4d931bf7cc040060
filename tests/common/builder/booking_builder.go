//go:build unit || e2e

package builder

import (
	"time"

	"slotbooker/internal/domain/booking"
	reqdto "slotbooker/internal/handler/dto/request"
	"slotbooker/internal/usecase/queries"
	"slotbooker/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingBuilder struct {
	Title           string
	Description     string
	OrganizerEmail  string
	Recipients      []string
	Timezone        string
	DurationMinutes int
	MaxSelections   int
	SlotWindows     []booking.SlotWindow
}

func NewBookingBuilder() *BookingBuilder {
	base := time.Date(2026, 9, 7, 9, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		Title:           "Kickoff interviews",
		Description:     "30 minute intro call",
		OrganizerEmail:  "organizer@example.com",
		Recipients:      []string{"guest@example.com"},
		Timezone:        "UTC",
		DurationMinutes: 30,
		MaxSelections:   1,
		SlotWindows: []booking.SlotWindow{
			{Start: base, End: base.Add(30 * time.Minute)},
			{Start: base.Add(30 * time.Minute), End: base.Add(60 * time.Minute)},
			{Start: base.Add(60 * time.Minute), End: base.Add(90 * time.Minute)},
		},
	}
}

// Clone deep-copies the builder so table-driven cases can mutate their
// own variant without touching the shared base.
func (b *BookingBuilder) Clone() *BookingBuilder {
	var out BookingBuilder
	if err := copier.CopyWithOption(&out, b, copier.Option{DeepCopy: true}); err != nil {
		panic(err)
	}
	return &out
}

func (b *BookingBuilder) WithTitle(title string) *BookingBuilder {
	b.Title = title
	return b
}

func (b *BookingBuilder) WithMaxSelections(n int) *BookingBuilder {
	b.MaxSelections = n
	return b
}

func (b *BookingBuilder) WithSlotWindows(windows []booking.SlotWindow) *BookingBuilder {
	b.SlotWindows = windows
	return b
}

func (b *BookingBuilder) BuildSpec() booking.RequestSpec {
	return booking.RequestSpec{
		Title:           b.Title,
		Description:     b.Description,
		OrganizerEmail:  b.OrganizerEmail,
		Recipients:      b.Recipients,
		Timezone:        b.Timezone,
		DurationMinutes: b.DurationMinutes,
		MaxSelections:   b.MaxSelections,
	}
}

func (b *BookingBuilder) BuildDomain() (*booking.BookingRequest, []*booking.Slot, error) {
	return booking.NewBookingRequest(b.BuildSpec(), b.SlotWindows)
}

func (b *BookingBuilder) BuildSnapshot() shared.RequestSnapshot {
	return shared.RequestSnapshot{
		ID:              uuid.New(),
		Title:           b.Title,
		OrganizerEmail:  b.OrganizerEmail,
		Timezone:        b.Timezone,
		DurationMinutes: b.DurationMinutes,
		MaxSelections:   b.MaxSelections,
	}
}

func (b *BookingBuilder) BuildView() *queries.RequestView {
	now := time.Now().UTC()
	description := b.Description
	return &queries.RequestView{
		ID:              uuid.New(),
		Title:           b.Title,
		Description:     &description,
		OrganizerEmail:  b.OrganizerEmail,
		Recipients:      b.Recipients,
		Timezone:        b.Timezone,
		DurationMinutes: b.DurationMinutes,
		MaxSelections:   b.MaxSelections,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *BookingBuilder) BuildCreateDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		Title:           b.Title,
		Description:     b.Description,
		Recipients:      b.Recipients,
		Timezone:        b.Timezone,
		DurationMinutes: b.DurationMinutes,
		MaxSelections:   b.MaxSelections,
		Pattern: reqdto.SlotPattern{
			StartDate:       "2026-09-07",
			EndDate:         "2026-09-11",
			Weekdays:        []int{1, 2, 3, 4, 5},
			DayStart:        "09:00",
			DayEnd:          "12:00",
			IntervalMinutes: 30,
		},
	}
}
