package writerepo

import (
	"context"
	"time"

	"slotbooker/internal/domain/booking"
	"slotbooker/internal/infra"
	"slotbooker/internal/infra/db"

	"github.com/google/uuid"
)

type SlotRepository struct {
	db db.DBTX
}

func NewSlotRepository(db db.DBTX) *SlotRepository {
	return &SlotRepository{db: db}
}

// ClaimIfAvailable is the write that decides slot races. The status
// predicate makes the update conditional: of any number of concurrent
// claimers, exactly one statement matches the row and every other sees
// zero rows affected.
func (r *SlotRepository) ClaimIfAvailable(
	ctx context.Context,
	slotID, inviteID uuid.UUID,
	guest booking.GuestDetails,
	now time.Time,
) (bool, error) {
	const query = `
		UPDATE slots
		SET status = 'booked',
		    claimed_by = $2,
		    guest_name = $3,
		    guest_email = $4,
		    guest_phone = $5,
		    guest_notes = $6,
		    booked_at = $7
		WHERE id = $1 AND status = 'available'`

	tag, err := r.db.Exec(ctx, query,
		slotID,
		inviteID,
		guest.Name(),
		guest.Email(),
		nilIfEmpty(guest.Phone()),
		nilIfEmpty(guest.Notes()),
		now,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim slot", err)
	}

	return tag.RowsAffected() == 1, nil
}
