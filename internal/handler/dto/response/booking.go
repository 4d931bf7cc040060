package response

import (
	"encoding/json"
	"time"

	"slotbooker/internal/usecase/queries"

	"github.com/google/uuid"
)

type RequestResponse struct {
	ID              uuid.UUID       `json:"id"`
	Title           string          `json:"title"`
	Description     *string         `json:"description,omitempty"`
	OrganizerEmail  string          `json:"organizerEmail"`
	Recipients      []string        `json:"recipients"`
	Timezone        string          `json:"timezone"`
	DurationMinutes int             `json:"durationMinutes"`
	MaxSelections   int             `json:"maxSelectionsPerPerson"`
	Branding        json.RawMessage `json:"branding,omitempty"`
	WindowStartMs   *int64          `json:"windowStartMs,omitempty"`
	WindowEndMs     *int64          `json:"windowEndMs,omitempty"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

type RequestListResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	MaxSelections int       `json:"maxSelectionsPerPerson"`
	WindowStartMs *int64    `json:"windowStartMs,omitempty"`
	WindowEndMs   *int64    `json:"windowEndMs,omitempty"`
	SlotCount     int       `json:"slotCount"`
	BookedCount   int       `json:"bookedCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Slot times go over the wire as epoch milliseconds; clients render
// them in the request's timezone.
type SlotResponse struct {
	ID         uuid.UUID  `json:"id"`
	RequestID  uuid.UUID  `json:"requestId"`
	StartAtMs  int64      `json:"startAtMs"`
	EndAtMs    int64      `json:"endAtMs"`
	Status     string     `json:"status"`
	ClaimedBy  *uuid.UUID `json:"claimedBy,omitempty"`
	GuestName  *string    `json:"guestName,omitempty"`
	GuestEmail *string    `json:"guestEmail,omitempty"`
	GuestPhone *string    `json:"guestPhone,omitempty"`
	GuestNotes *string    `json:"guestNotes,omitempty"`
	BookedAtMs *int64     `json:"bookedAtMs,omitempty"`
}

func FromRequestView(rm *queries.RequestView) *RequestResponse {
	return &RequestResponse{
		ID:              rm.ID,
		Title:           rm.Title,
		Description:     rm.Description,
		OrganizerEmail:  rm.OrganizerEmail,
		Recipients:      rm.Recipients,
		Timezone:        rm.Timezone,
		DurationMinutes: rm.DurationMinutes,
		MaxSelections:   rm.MaxSelections,
		Branding:        rm.Branding,
		WindowStartMs:   msPtr(rm.WindowStart),
		WindowEndMs:     msPtr(rm.WindowEnd),
		CreatedAt:       rm.CreatedAt,
		UpdatedAt:       rm.UpdatedAt,
	}
}

func FromRequestListItem(rm *queries.RequestListItem) *RequestListResponse {
	return &RequestListResponse{
		ID:            rm.ID,
		Title:         rm.Title,
		MaxSelections: rm.MaxSelections,
		WindowStartMs: msPtr(rm.WindowStart),
		WindowEndMs:   msPtr(rm.WindowEnd),
		SlotCount:     rm.SlotCount,
		BookedCount:   rm.BookedCount,
		CreatedAt:     rm.CreatedAt,
	}
}

func FromSlotView(rm *queries.SlotView) *SlotResponse {
	return &SlotResponse{
		ID:         rm.ID,
		RequestID:  rm.RequestID,
		StartAtMs:  rm.StartAt.UnixMilli(),
		EndAtMs:    rm.EndAt.UnixMilli(),
		Status:     rm.Status,
		ClaimedBy:  rm.ClaimedBy,
		GuestName:  rm.GuestName,
		GuestEmail: rm.GuestEmail,
		GuestPhone: rm.GuestPhone,
		GuestNotes: rm.GuestNotes,
		BookedAtMs: msPtr(rm.BookedAt),
	}
}

func FromSlotViews(views []*queries.SlotView) []*SlotResponse {
	out := make([]*SlotResponse, len(views))
	for i, v := range views {
		out[i] = FromSlotView(v)
	}
	return out
}

func msPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}
