package readstore

import (
	"context"

	"slotbooker/internal/infra"
	"slotbooker/internal/infra/db"
	"slotbooker/internal/pkg/pgconv"
	"slotbooker/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(db db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: db}
}

func (s *BookingReadStore) FindRequestByID(ctx context.Context, id uuid.UUID) (*queries.RequestView, error) {
	const query = `
		SELECT id, title, description, organizer_email, recipients, timezone,
		       duration_minutes, max_selections, branding, window_start,
		       window_end, created_at, updated_at
		FROM booking_requests
		WHERE id = $1`

	var view queries.RequestView
	err := s.db.QueryRow(ctx, query, id).Scan(
		&view.ID,
		&view.Title,
		&view.Description,
		&view.OrganizerEmail,
		&view.Recipients,
		&view.Timezone,
		&view.DurationMinutes,
		&view.MaxSelections,
		&view.Branding,
		&view.WindowStart,
		&view.WindowEnd,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking request not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking request", err)
	}

	return &view, nil
}

func (s *BookingReadStore) FindRequestsByOrganizer(ctx context.Context, organizerEmail string) ([]*queries.RequestListItem, error) {
	const query = `
		SELECT r.id, r.title, r.max_selections, r.window_start, r.window_end,
		       count(s.id) AS slot_count,
		       count(s.id) FILTER (WHERE s.status = 'booked') AS booked_count,
		       r.created_at
		FROM booking_requests r
		LEFT JOIN slots s ON s.request_id = r.id
		WHERE r.organizer_email = $1
		GROUP BY r.id
		ORDER BY r.created_at DESC`

	rows, err := s.db.Query(ctx, query, organizerEmail)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booking requests", err)
	}
	defer rows.Close()

	items := make([]*queries.RequestListItem, 0)
	for rows.Next() {
		var item queries.RequestListItem
		if err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.MaxSelections,
			&item.WindowStart,
			&item.WindowEnd,
			&item.SlotCount,
			&item.BookedCount,
			&item.CreatedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking request row", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking request rows", err)
	}

	return items, nil
}

func (s *BookingReadStore) FindSlotsByRequest(ctx context.Context, requestID uuid.UUID) ([]*queries.SlotView, error) {
	const query = `
		SELECT id, request_id, start_at, end_at, status, claimed_by,
		       guest_name, guest_email, guest_phone, guest_notes, booked_at
		FROM slots
		WHERE request_id = $1
		ORDER BY start_at, id`

	rows, err := s.db.Query(ctx, query, requestID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list slots", err)
	}
	defer rows.Close()

	views := make([]*queries.SlotView, 0)
	for rows.Next() {
		var view queries.SlotView
		if err := rows.Scan(
			&view.ID,
			&view.RequestID,
			&view.StartAt,
			&view.EndAt,
			&view.Status,
			&view.ClaimedBy,
			&view.GuestName,
			&view.GuestEmail,
			&view.GuestPhone,
			&view.GuestNotes,
			&view.BookedAt,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan slot row", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate slot rows", err)
	}

	return views, nil
}
