package queries

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type RequestView struct {
	ID              uuid.UUID       `json:"id"`
	Title           string          `json:"title"`
	Description     *string         `json:"description,omitempty"`
	OrganizerEmail  string          `json:"organizer_email"`
	Recipients      []string        `json:"recipients"`
	Timezone        string          `json:"timezone"`
	DurationMinutes int             `json:"duration_minutes"`
	MaxSelections   int             `json:"max_selections_per_person"`
	Branding        json.RawMessage `json:"branding,omitempty"`
	WindowStart     *time.Time      `json:"window_start,omitempty"`
	WindowEnd       *time.Time      `json:"window_end,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type RequestListItem struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	MaxSelections int        `json:"max_selections_per_person"`
	WindowStart   *time.Time `json:"window_start,omitempty"`
	WindowEnd     *time.Time `json:"window_end,omitempty"`
	SlotCount     int        `json:"slot_count"`
	BookedCount   int        `json:"booked_count"`
	CreatedAt     time.Time  `json:"created_at"`
}

// SlotView is the organizer-facing slot projection, guest details
// included.
type SlotView struct {
	ID         uuid.UUID  `json:"id"`
	RequestID  uuid.UUID  `json:"request_id"`
	StartAt    time.Time  `json:"start_at"`
	EndAt      time.Time  `json:"end_at"`
	Status     string     `json:"status"`
	ClaimedBy  *uuid.UUID `json:"claimed_by,omitempty"`
	GuestName  *string    `json:"guest_name,omitempty"`
	GuestEmail *string    `json:"guest_email,omitempty"`
	GuestPhone *string    `json:"guest_phone,omitempty"`
	GuestNotes *string    `json:"guest_notes,omitempty"`
	BookedAt   *time.Time `json:"booked_at,omitempty"`
}

// PublicSlotItem is what an invitee sees: open slots plus their own
// bookings. Slots taken by other invitees are omitted entirely, never
// shown as "taken", so no identity leaks through the public view.
type PublicSlotItem struct {
	ID      uuid.UUID `json:"id"`
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
	Status  string    `json:"status"`
	Mine    bool      `json:"mine"`
}

type PublicBookingView struct {
	Title           string           `json:"title"`
	Description     *string          `json:"description,omitempty"`
	Timezone        string           `json:"timezone"`
	DurationMinutes int              `json:"duration_minutes"`
	MaxSelections   int              `json:"max_selections_per_person"`
	RemainingQuota  int              `json:"remaining_quota"`
	InviteEmail     *string          `json:"invite_email,omitempty"`
	Branding        json.RawMessage  `json:"branding,omitempty"`
	Slots           []PublicSlotItem `json:"slots"`
}

type InviteView struct {
	ID           uuid.UUID `json:"id"`
	Token        string    `json:"token"`
	RequestID    uuid.UUID `json:"request_id"`
	Email        *string   `json:"email,omitempty"`
	ClaimedCount int       `json:"claimed_count"`
	CreatedAt    time.Time `json:"created_at"`
}

type OrganizerView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	IsActive bool      `json:"is_active"`
}
