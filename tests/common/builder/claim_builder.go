//go:build unit || e2e

package builder

import (
	reqdto "slotbooker/internal/handler/dto/request"
	"slotbooker/internal/usecase/commands"

	"github.com/google/uuid"
)

type ClaimBuilder struct {
	SlotID     uuid.UUID
	GuestName  string
	GuestEmail string
	GuestPhone string
	GuestNotes string
}

func NewClaimBuilder(slotID uuid.UUID) *ClaimBuilder {
	return &ClaimBuilder{
		SlotID:     slotID,
		GuestName:  "Taro Yamada",
		GuestEmail: "taro@example.com",
	}
}

func (b *ClaimBuilder) BuildDTO() reqdto.ClaimSlotRequest {
	return reqdto.ClaimSlotRequest{
		SlotID:     b.SlotID,
		GuestName:  b.GuestName,
		GuestEmail: b.GuestEmail,
		GuestPhone: b.GuestPhone,
		GuestNotes: b.GuestNotes,
	}
}

func (b *ClaimBuilder) BuildInput() commands.GuestInput {
	return commands.GuestInput{
		Name:  b.GuestName,
		Email: b.GuestEmail,
		Phone: b.GuestPhone,
		Notes: b.GuestNotes,
	}
}
