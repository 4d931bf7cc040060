package shared

import (
	"context"
	"time"

	"slotbooker/internal/domain/booking"
	"slotbooker/internal/domain/invite"

	"github.com/google/uuid"
)

// UnitOfWork runs a function inside one atomic transaction. Every
// mutation of slot or invite state goes through a Tx obtained here —
// there is no other write path.
type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// transient serialization conflicts.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Requests() BookingRequestRepository
	Slots() SlotRepository
	Invites() InviteRepository
	Notifications() NotificationRepository
	Reads() CommandReads
}

// CommandReads are the in-transaction reads the write side needs for
// its precondition checks.
type CommandReads interface {
	RequestByID(ctx context.Context, id uuid.UUID) (*RequestSnapshot, error)
	SlotByID(ctx context.Context, id uuid.UUID) (*SlotSnapshot, error)
}

type BookingRequestRepository interface {
	Create(ctx context.Context, req *booking.BookingRequest) error
	InsertSlots(ctx context.Context, slots []*booking.Slot) error
	// ExtendWindow widens the stored window to cover the given bounds.
	// The merge happens in the store, so two transactions appending
	// slots concurrently cannot overwrite each other's bounds.
	ExtendWindow(ctx context.Context, id uuid.UUID, window booking.Window) error
}

type SlotRepository interface {
	// ClaimIfAvailable atomically flips the slot to booked iff it is
	// still available, attaching the claim reference and guest details.
	// Returns false when the slot was already booked or is gone — the
	// losing side of a race.
	ClaimIfAvailable(ctx context.Context, slotID, inviteID uuid.UUID, guest booking.GuestDetails, now time.Time) (bool, error)
}

type InviteRepository interface {
	Create(ctx context.Context, inv *invite.Invite) error
	// LockByToken resolves a token to its invite and locks the row,
	// serializing concurrent claims by the same invite for the rest of
	// the transaction.
	LockByToken(ctx context.Context, token string) (*InviteSnapshot, error)
	IncrementClaimed(ctx context.Context, inviteID uuid.UUID, selectedSlotID *uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
}
