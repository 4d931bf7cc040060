package commands

import (
	"context"
	"encoding/json"
	"log/slog"

	"slotbooker/internal/domain/booking"
	"slotbooker/internal/infra"
	"slotbooker/internal/pkg/clock"
	"slotbooker/internal/pkg/errs"
	"slotbooker/internal/pkg/token"
	"slotbooker/internal/usecase/queries"
	"slotbooker/internal/usecase/shared"

	"github.com/google/uuid"
)

// ClaimCommands is the single mutating operation an invitee performs.
// All slot and invite mutation in the system funnels through ClaimSlot;
// no other code path flips a slot to booked or touches a claim counter.
type ClaimCommands interface {
	ClaimSlot(ctx context.Context, tok string, slotID uuid.UUID, guest GuestInput) (*queries.SlotView, error)
}

type claimCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewClaimCommands(uow shared.UnitOfWork, clock clock.Clock) ClaimCommands {
	return &claimCommandsImpl{
		uow:   uow,
		clock: clock,
	}
}

// ClaimSlot checks its preconditions in a fixed order — token, guest
// details, quota, scope, availability — and applies the mutation in the
// same transaction that evaluated the quota and availability checks.
// The invite row lock serializes concurrent claims under one token;
// the conditional slot update decides races for one slot: exactly one
// concurrent caller wins, every other observes ErrSlotUnavailable.
func (c *claimCommandsImpl) ClaimSlot(
	ctx context.Context,
	tok string,
	slotID uuid.UUID,
	guest GuestInput,
) (*queries.SlotView, error) {
	if !token.IsWellFormed(tok) {
		return nil, errs.ErrInvalidToken
	}

	var view *queries.SlotView
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		inv, lockErr := tx.Invites().LockByToken(ctx, tok)
		if lockErr != nil {
			if infra.IsKind(lockErr, infra.KindNotFound) {
				return errs.Mark(lockErr, errs.ErrInvalidToken)
			}
			return errs.Mark(lockErr, ErrDatabaseOperationFailed)
		}

		details, detailsErr := booking.NewGuestDetails(guest.Name, guest.Email, guest.Phone, guest.Notes)
		if detailsErr != nil {
			return errs.Mark(detailsErr, errs.ErrDomainValidation)
		}

		request, readErr := tx.Reads().RequestByID(ctx, inv.RequestID)
		if readErr != nil {
			return errs.Mark(readErr, ErrDatabaseOperationFailed)
		}

		if inv.ClaimedCount >= request.MaxSelections {
			return errs.ErrQuotaExceeded
		}

		slot, slotErr := tx.Reads().SlotByID(ctx, slotID)
		if slotErr != nil {
			if infra.IsKind(slotErr, infra.KindNotFound) {
				// Removed by the organizer; indistinguishable from a
				// lost race as far as the invitee is concerned.
				return errs.Mark(slotErr, errs.ErrSlotUnavailable)
			}
			return errs.Mark(slotErr, ErrDatabaseOperationFailed)
		}

		if slot.RequestID != inv.RequestID {
			slog.Warn("claim attempted across request boundary",
				"invite_id", inv.ID,
				"slot_id", slotID,
				"slot_request_id", slot.RequestID,
				"invite_request_id", inv.RequestID)
			return errs.ErrScopeMismatch
		}

		now := c.clock.Now()
		claimed, claimErr := tx.Slots().ClaimIfAvailable(ctx, slotID, inv.ID, details, now)
		if claimErr != nil {
			return errs.Mark(claimErr, ErrDatabaseOperationFailed)
		}
		if !claimed {
			return errs.ErrSlotUnavailable
		}

		var selectedSlotID *uuid.UUID
		if request.MaxSelections == 1 {
			id := slotID
			selectedSlotID = &id
		}
		if incErr := tx.Invites().IncrementClaimed(ctx, inv.ID, selectedSlotID); incErr != nil {
			return errs.Mark(incErr, ErrDatabaseOperationFailed)
		}

		if notifyErr := c.enqueueConfirmation(ctx, tx, request, slot, inv.ID, details); notifyErr != nil {
			return errs.Mark(notifyErr, ErrDatabaseOperationFailed)
		}

		inviteID := inv.ID
		guestName := details.Name()
		guestEmail := details.Email()
		view = &queries.SlotView{
			ID:         slot.ID,
			RequestID:  slot.RequestID,
			StartAt:    slot.Start,
			EndAt:      slot.End,
			Status:     booking.StatusBooked.String(),
			ClaimedBy:  &inviteID,
			GuestName:  &guestName,
			GuestEmail: &guestEmail,
			BookedAt:   &now,
		}
		if phone := details.Phone(); phone != "" {
			view.GuestPhone = &phone
		}
		if notes := details.Notes(); notes != "" {
			view.GuestNotes = &notes
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

// enqueueConfirmation records the notification job in the claim's own
// transaction: the confirmation trigger exists iff the claim committed.
// Delivery is a collaborator's job; nothing is sent from here.
func (c *claimCommandsImpl) enqueueConfirmation(
	ctx context.Context,
	tx shared.Tx,
	request *shared.RequestSnapshot,
	slot *shared.SlotSnapshot,
	inviteID uuid.UUID,
	details booking.GuestDetails,
) error {
	payload, err := json.Marshal(map[string]any{
		"type":        "slot_claimed",
		"request_id":  request.ID,
		"slot_id":     slot.ID,
		"invite_id":   inviteID,
		"guest_email": details.Email(),
		"start_at":    slot.Start.UnixMilli(),
		"end_at":      slot.End.UnixMilli(),
		"timezone":    request.Timezone,
	})
	if err != nil {
		return err
	}

	return tx.Notifications().CreateJob(ctx, "email", "slot_claimed", payload, c.clock.Now())
}
