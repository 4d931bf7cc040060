package readstore

import (
	"context"

	"slotbooker/internal/infra"
	"slotbooker/internal/infra/db"
	"slotbooker/internal/pkg/pgconv"
	"slotbooker/internal/usecase/queries"

	"github.com/google/uuid"
)

// PublicReadStore backs the token-scoped booking page. It never exposes
// other invitees' bookings: slots claimed by someone else are filtered
// out in SQL, not in the handler.
type PublicReadStore struct {
	db db.DBTX
}

func NewPublicReadStore(db db.DBTX) *PublicReadStore {
	return &PublicReadStore{db: db}
}

func (s *PublicReadStore) FindInviteByToken(ctx context.Context, tok string) (*queries.ResolvedInvite, error) {
	const query = `
		SELECT i.id, i.request_id, i.email, i.claimed_count,
		       r.id, r.title, r.description, r.organizer_email, r.recipients,
		       r.timezone, r.duration_minutes, r.max_selections, r.branding,
		       r.window_start, r.window_end, r.created_at, r.updated_at
		FROM invites i
		JOIN booking_requests r ON r.id = i.request_id
		WHERE i.token = $1`

	var (
		resolved queries.ResolvedInvite
		request  queries.RequestView
	)
	err := s.db.QueryRow(ctx, query, tok).Scan(
		&resolved.InviteID,
		&resolved.RequestID,
		&resolved.Email,
		&resolved.ClaimedCount,
		&request.ID,
		&request.Title,
		&request.Description,
		&request.OrganizerEmail,
		&request.Recipients,
		&request.Timezone,
		&request.DurationMinutes,
		&request.MaxSelections,
		&request.Branding,
		&request.WindowStart,
		&request.WindowEnd,
		&request.CreatedAt,
		&request.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("invite not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to resolve invite token", err)
	}

	resolved.Request = &request
	return &resolved, nil
}

func (s *PublicReadStore) FindVisibleSlots(ctx context.Context, requestID, inviteID uuid.UUID) ([]queries.PublicSlotItem, error) {
	const query = `
		SELECT id, start_at, end_at, status, claimed_by IS NOT DISTINCT FROM $2 AS mine
		FROM slots
		WHERE request_id = $1
		  AND (status = 'available' OR claimed_by = $2)
		ORDER BY start_at, id`

	rows, err := s.db.Query(ctx, query, requestID, inviteID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list visible slots", err)
	}
	defer rows.Close()

	items := make([]queries.PublicSlotItem, 0)
	for rows.Next() {
		var item queries.PublicSlotItem
		if err := rows.Scan(&item.ID, &item.StartAt, &item.EndAt, &item.Status, &item.Mine); err != nil {
			return nil, infra.WrapRepoErr("failed to scan visible slot row", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate visible slot rows", err)
	}

	return items, nil
}
