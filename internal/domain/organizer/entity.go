package organizer

import (
	"time"

	"github.com/google/uuid"
)

// Organizer entity. Currently used for auth only; organizer management
// lives in the surrounding back office.
type Organizer struct {
	id           uuid.UUID
	email        string
	name         string
	passwordHash string
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewOrganizer(email, name, passwordHash string) *Organizer {
	return &Organizer{
		id:           uuid.New(),
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		isActive:     true,
	}
}

func ReconstructOrganizer(
	id uuid.UUID,
	email, name, passwordHash string,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Organizer {
	return &Organizer{
		id:           id,
		email:        email,
		name:         name,
		passwordHash: passwordHash,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (o *Organizer) ID() uuid.UUID        { return o.id }
func (o *Organizer) Email() string        { return o.email }
func (o *Organizer) Name() string         { return o.name }
func (o *Organizer) PasswordHash() string { return o.passwordHash }
func (o *Organizer) IsActive() bool       { return o.isActive }
func (o *Organizer) CreatedAt() time.Time { return o.createdAt }
func (o *Organizer) UpdatedAt() time.Time { return o.updatedAt }
