package request

import (
	"slotbooker/internal/usecase/commands"

	"github.com/google/uuid"
)

type ClaimSlotRequest struct {
	SlotID     uuid.UUID `json:"slot_id" binding:"required"`
	GuestName  string    `json:"guest_name" binding:"required"`
	GuestEmail string    `json:"guest_email" binding:"required,email"`
	GuestPhone string    `json:"guest_phone"`
	GuestNotes string    `json:"guest_notes"`
}

func (r ClaimSlotRequest) ToGuestInput() commands.GuestInput {
	return commands.GuestInput{
		Name:  r.GuestName,
		Email: r.GuestEmail,
		Phone: r.GuestPhone,
		Notes: r.GuestNotes,
	}
}
