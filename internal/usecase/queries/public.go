package queries

import (
	"context"

	"slotbooker/internal/infra"
	"slotbooker/internal/pkg/errs"
	"slotbooker/internal/pkg/token"

	"github.com/google/uuid"
)

// ResolvedInvite joins an invite with the request attributes the public
// page needs.
type ResolvedInvite struct {
	InviteID     uuid.UUID
	RequestID    uuid.UUID
	Email        *string
	ClaimedCount int
	Request      *RequestView
}

// PublicQueries serves the token-scoped read side of the booking page.
// Reads may be slightly stale; the claim path re-checks everything
// inside its own transaction, so staleness here is safe.
type PublicQueries interface {
	ResolveToken(ctx context.Context, tok string) (*PublicBookingView, error)
}

type PublicReadStore interface {
	FindInviteByToken(ctx context.Context, tok string) (*ResolvedInvite, error)
	// FindVisibleSlots returns available slots plus those claimed by
	// inviteID, ordered by start time then slot ID.
	FindVisibleSlots(ctx context.Context, requestID, inviteID uuid.UUID) ([]PublicSlotItem, error)
}

type publicQueriesImpl struct {
	store PublicReadStore
}

func NewPublicQueries(store PublicReadStore) PublicQueries {
	return &publicQueriesImpl{store: store}
}

func (q *publicQueriesImpl) ResolveToken(ctx context.Context, tok string) (*PublicBookingView, error) {
	if !token.IsWellFormed(tok) {
		return nil, errs.ErrInvalidToken
	}

	resolved, err := q.store.FindInviteByToken(ctx, tok)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrInvalidToken)
		}
		return nil, err
	}

	slots, err := q.store.FindVisibleSlots(ctx, resolved.RequestID, resolved.InviteID)
	if err != nil {
		return nil, err
	}

	remaining := resolved.Request.MaxSelections - resolved.ClaimedCount
	if remaining < 0 {
		remaining = 0
	}

	return &PublicBookingView{
		Title:           resolved.Request.Title,
		Description:     resolved.Request.Description,
		Timezone:        resolved.Request.Timezone,
		DurationMinutes: resolved.Request.DurationMinutes,
		MaxSelections:   resolved.Request.MaxSelections,
		RemainingQuota:  remaining,
		InviteEmail:     resolved.Email,
		Branding:        resolved.Request.Branding,
		Slots:           slots,
	}, nil
}
