package invite

import (
	"errors"
	"time"

	"slotbooker/internal/pkg/token"

	"github.com/google/uuid"
)

var ErrQuotaExhausted = errors.New("invite has no remaining selections")

// Invite is a token-scoped identity permitted to view and claim slots
// on one booking request. The token is a bearer credential: whoever
// holds it acts as this invitee. An invite with no recipient email is
// an open, shareable link.
type Invite struct {
	id             uuid.UUID
	token          string
	requestID      uuid.UUID
	email          *string
	claimedCount   int
	selectedSlotID *uuid.UUID
	createdAt      time.Time
}

func NewInvite(requestID uuid.UUID, email *string) (*Invite, error) {
	tok, err := token.NewInviteToken()
	if err != nil {
		return nil, err
	}
	return &Invite{
		id:        uuid.New(),
		token:     tok,
		requestID: requestID,
		email:     email,
	}, nil
}

func ReconstructInvite(
	id uuid.UUID,
	tok string,
	requestID uuid.UUID,
	email *string,
	claimedCount int,
	selectedSlotID *uuid.UUID,
	createdAt time.Time,
) *Invite {
	return &Invite{
		id:             id,
		token:          tok,
		requestID:      requestID,
		email:          email,
		claimedCount:   claimedCount,
		selectedSlotID: selectedSlotID,
		createdAt:      createdAt,
	}
}

// RemainingQuota is maxSelections - claimedCount, never negative.
func (i *Invite) RemainingQuota(maxSelections int) int {
	remaining := maxSelections - i.claimedCount
	if remaining < 0 {
		return 0
	}
	return remaining
}

// RecordClaim consumes one unit of quota for slotID. For the common
// single-selection case the chosen slot is also pinned on the invite.
func (i *Invite) RecordClaim(slotID uuid.UUID, maxSelections int) error {
	if i.RemainingQuota(maxSelections) <= 0 {
		return ErrQuotaExhausted
	}
	i.claimedCount++
	if maxSelections == 1 {
		id := slotID
		i.selectedSlotID = &id
	}
	return nil
}

func (i *Invite) ID() uuid.UUID              { return i.id }
func (i *Invite) Token() string              { return i.token }
func (i *Invite) RequestID() uuid.UUID       { return i.requestID }
func (i *Invite) Email() *string             { return i.email }
func (i *Invite) ClaimedCount() int          { return i.claimedCount }
func (i *Invite) SelectedSlotID() *uuid.UUID { return i.selectedSlotID }
func (i *Invite) CreatedAt() time.Time       { return i.createdAt }
