package queries

import (
	"context"

	"slotbooker/internal/infra"
	"slotbooker/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetRequest(ctx context.Context, id uuid.UUID) (*RequestView, error)
	ListRequests(ctx context.Context, organizerEmail string) ([]*RequestListItem, error)
	ListSlots(ctx context.Context, requestID uuid.UUID) ([]*SlotView, error)
}

type BookingReadStore interface {
	FindRequestByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	FindRequestsByOrganizer(ctx context.Context, organizerEmail string) ([]*RequestListItem, error)
	FindSlotsByRequest(ctx context.Context, requestID uuid.UUID) ([]*SlotView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) GetRequest(ctx context.Context, id uuid.UUID) (*RequestView, error) {
	view, err := q.store.FindRequestByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrRequestNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListRequests(ctx context.Context, organizerEmail string) ([]*RequestListItem, error) {
	return q.store.FindRequestsByOrganizer(ctx, organizerEmail)
}

func (q *bookingQueriesImpl) ListSlots(ctx context.Context, requestID uuid.UUID) ([]*SlotView, error) {
	if _, err := q.store.FindRequestByID(ctx, requestID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrRequestNotFound)
		}
		return nil, err
	}
	return q.store.FindSlotsByRequest(ctx, requestID)
}
