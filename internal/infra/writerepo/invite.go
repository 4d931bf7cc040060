package writerepo

import (
	"context"

	"slotbooker/internal/domain/invite"
	"slotbooker/internal/infra"
	"slotbooker/internal/infra/db"
	"slotbooker/internal/pkg/pgconv"
	"slotbooker/internal/usecase/shared"

	"github.com/google/uuid"
)

type InviteRepository struct {
	db db.DBTX
}

func NewInviteRepository(db db.DBTX) *InviteRepository {
	return &InviteRepository{db: db}
}

func (r *InviteRepository) Create(ctx context.Context, inv *invite.Invite) error {
	const query = `
		INSERT INTO invites (id, token, request_id, email, claimed_count)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query,
		inv.ID(),
		inv.Token(),
		inv.RequestID(),
		inv.Email(),
		inv.ClaimedCount(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create invite", err)
	}
	return nil
}

// LockByToken takes a row lock on the invite, serializing all claims
// under the same token for the rest of the transaction. Quota checks
// read claimed_count only while this lock is held.
func (r *InviteRepository) LockByToken(ctx context.Context, token string) (*shared.InviteSnapshot, error) {
	const query = `
		SELECT id, token, request_id, email, claimed_count, selected_slot_id
		FROM invites
		WHERE token = $1
		FOR UPDATE`

	var snap shared.InviteSnapshot
	err := r.db.QueryRow(ctx, query, token).Scan(
		&snap.ID,
		&snap.Token,
		&snap.RequestID,
		&snap.Email,
		&snap.ClaimedCount,
		&snap.SelectedSlotID,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("invite not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock invite", err)
	}

	return &snap, nil
}

func (r *InviteRepository) IncrementClaimed(ctx context.Context, inviteID uuid.UUID, selectedSlotID *uuid.UUID) error {
	const query = `
		UPDATE invites
		SET claimed_count = claimed_count + 1,
		    selected_slot_id = COALESCE($2, selected_slot_id)
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, inviteID, selectedSlotID)
	if err != nil {
		return infra.WrapRepoErr("failed to increment claim count", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("invite not found", nil, infra.KindNotFound)
	}
	return nil
}
