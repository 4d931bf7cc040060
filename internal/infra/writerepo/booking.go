package writerepo

import (
	"context"

	"slotbooker/internal/domain/booking"
	"slotbooker/internal/infra"
	"slotbooker/internal/infra/db"

	"github.com/google/uuid"
)

type BookingRequestRepository struct {
	db db.DBTX
}

func NewBookingRequestRepository(db db.DBTX) *BookingRequestRepository {
	return &BookingRequestRepository{db: db}
}

func (r *BookingRequestRepository) Create(ctx context.Context, req *booking.BookingRequest) error {
	const query = `
		INSERT INTO booking_requests (
			id, title, description, organizer_email, recipients, timezone,
			duration_minutes, max_selections, branding, window_start, window_end
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	var windowStart, windowEnd any
	if !req.Window().IsZero() {
		windowStart = req.Window().Start()
		windowEnd = req.Window().End()
	}

	_, err := r.db.Exec(ctx, query,
		req.ID(),
		req.Title(),
		nilIfEmpty(req.Description()),
		req.OrganizerEmail(),
		req.Recipients(),
		req.Timezone(),
		req.DurationMinutes(),
		req.MaxSelections(),
		req.Branding(),
		windowStart,
		windowEnd,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create booking request", err)
	}
	return nil
}

// InsertSlots writes candidate slots one statement per row; batches are
// small (bounded by the per-request slot limit) and run inside the
// caller's transaction.
func (r *BookingRequestRepository) InsertSlots(ctx context.Context, slots []*booking.Slot) error {
	const query = `
		INSERT INTO slots (id, request_id, start_at, end_at, status)
		VALUES ($1, $2, $3, $4, $5)`

	for _, slot := range slots {
		_, err := r.db.Exec(ctx, query,
			slot.ID(),
			slot.RequestID(),
			slot.Start(),
			slot.End(),
			slot.Status().String(),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to insert slot", err)
		}
	}
	return nil
}

// ExtendWindow merges in the database rather than writing absolute
// values: a ReadCommitted transaction may hold bounds read before a
// concurrent append committed, and LEAST/GREATEST keeps the stored
// window the min/max over every committed slot regardless of write
// order.
func (r *BookingRequestRepository) ExtendWindow(ctx context.Context, id uuid.UUID, window booking.Window) error {
	const query = `
		UPDATE booking_requests
		SET window_start = LEAST(COALESCE(window_start, $2), $2),
		    window_end   = GREATEST(COALESCE(window_end, $3), $3),
		    updated_at   = now()
		WHERE id = $1`

	tag, err := r.db.Exec(ctx, query, id, window.Start(), window.End())
	if err != nil {
		return infra.WrapRepoErr("failed to extend request window", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking request not found", nil, infra.KindNotFound)
	}
	return nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
