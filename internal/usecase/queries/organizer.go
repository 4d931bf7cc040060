package queries

import (
	"context"

	"github.com/google/uuid"
)

type OrganizerReadStore interface {
	// FindByEmail also returns the stored password hash for credential
	// verification on the write side.
	FindByEmail(ctx context.Context, email string) (*OrganizerView, string, error)
	FindByID(ctx context.Context, id uuid.UUID) (*OrganizerView, error)
}

type OrganizerQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*OrganizerView, error)
}

type organizerQueriesImpl struct {
	store OrganizerReadStore
}

func NewOrganizerQueries(store OrganizerReadStore) OrganizerQueries {
	return &organizerQueriesImpl{store: store}
}

func (q *organizerQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*OrganizerView, error) {
	return q.store.FindByID(ctx, id)
}
