package response

import (
	"encoding/json"

	"slotbooker/internal/usecase/queries"

	"github.com/google/uuid"
)

type PublicSlotResponse struct {
	ID        uuid.UUID `json:"id"`
	StartAtMs int64     `json:"startAtMs"`
	EndAtMs   int64     `json:"endAtMs"`
	Status    string    `json:"status"`
	Mine      bool      `json:"mine"`
}

type PublicBookingResponse struct {
	Title           string               `json:"title"`
	Description     *string              `json:"description,omitempty"`
	Timezone        string               `json:"timezone"`
	DurationMinutes int                  `json:"durationMinutes"`
	MaxSelections   int                  `json:"maxSelectionsPerPerson"`
	RemainingQuota  int                  `json:"remainingQuota"`
	InviteEmail     *string              `json:"inviteEmail,omitempty"`
	Branding        json.RawMessage      `json:"branding,omitempty"`
	Slots           []PublicSlotResponse `json:"slots"`
}

func FromPublicBookingView(rm *queries.PublicBookingView) *PublicBookingResponse {
	slots := make([]PublicSlotResponse, len(rm.Slots))
	for i, s := range rm.Slots {
		slots[i] = PublicSlotResponse{
			ID:        s.ID,
			StartAtMs: s.StartAt.UnixMilli(),
			EndAtMs:   s.EndAt.UnixMilli(),
			Status:    s.Status,
			Mine:      s.Mine,
		}
	}

	return &PublicBookingResponse{
		Title:           rm.Title,
		Description:     rm.Description,
		Timezone:        rm.Timezone,
		DurationMinutes: rm.DurationMinutes,
		MaxSelections:   rm.MaxSelections,
		RemainingQuota:  rm.RemainingQuota,
		InviteEmail:     rm.InviteEmail,
		Branding:        rm.Branding,
		Slots:           slots,
	}
}
