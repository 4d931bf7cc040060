package shared

import (
	"time"

	"github.com/google/uuid"
)

// Write-side snapshots prevent dependency on Read-side query types (CQRS separation)
type RequestSnapshot struct {
	ID              uuid.UUID
	Title           string
	OrganizerEmail  string
	Timezone        string
	DurationMinutes int
	MaxSelections   int
	WindowStart     *time.Time
	WindowEnd       *time.Time
}

type SlotSnapshot struct {
	ID        uuid.UUID
	RequestID uuid.UUID
	Start     time.Time
	End       time.Time
	Status    string
	ClaimedBy *uuid.UUID
}

type InviteSnapshot struct {
	ID             uuid.UUID
	Token          string
	RequestID      uuid.UUID
	Email          *string
	ClaimedCount   int
	SelectedSlotID *uuid.UUID
}
