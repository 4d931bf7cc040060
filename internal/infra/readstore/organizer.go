package readstore

import (
	"context"

	"slotbooker/internal/infra"
	"slotbooker/internal/infra/db"
	"slotbooker/internal/pkg/pgconv"
	"slotbooker/internal/usecase/queries"

	"github.com/google/uuid"
)

type OrganizerReadStore struct {
	db db.DBTX
}

func NewOrganizerReadStore(db db.DBTX) *OrganizerReadStore {
	return &OrganizerReadStore{db: db}
}

func (s *OrganizerReadStore) FindByEmail(ctx context.Context, email string) (*queries.OrganizerView, string, error) {
	const query = `
		SELECT id, email, name, password_hash, is_active
		FROM organizers
		WHERE email = $1`

	var (
		view queries.OrganizerView
		hash string
	)
	err := s.db.QueryRow(ctx, query, email).Scan(
		&view.ID,
		&view.Email,
		&view.Name,
		&hash,
		&view.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("organizer not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find organizer", err)
	}

	return &view, hash, nil
}

func (s *OrganizerReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.OrganizerView, error) {
	const query = `
		SELECT id, email, name, is_active
		FROM organizers
		WHERE id = $1`

	var view queries.OrganizerView
	err := s.db.QueryRow(ctx, query, id).Scan(
		&view.ID,
		&view.Email,
		&view.Name,
		&view.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("organizer not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find organizer", err)
	}

	return &view, nil
}
