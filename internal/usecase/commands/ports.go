package commands

import (
	"github.com/google/uuid"
)

// OrganizerActor is the authenticated staff identity recorded on
// organizer-side mutations. The public claim path deliberately has no
// actor: invitees are identified by bearer token only, and the two
// authority domains never mix.
type OrganizerActor struct {
	ID    uuid.UUID
	Email string
}

// GuestInput is the booking metadata an invitee submits with a claim.
type GuestInput struct {
	Name  string
	Email string
	Phone string
	Notes string
}
