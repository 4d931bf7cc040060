package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidSlotWindow = errors.New("slot end must be after start")
	ErrSlotAlreadyBooked = errors.New("slot is already booked")
)

// Slot is one candidate time window owned by a single booking request.
// Status and the claim reference move together: booked ⇔ claimedBy set.
type Slot struct {
	id        uuid.UUID
	requestID uuid.UUID
	start     time.Time
	end       time.Time
	status    SlotStatus
	claimedBy *uuid.UUID
	guest     *GuestDetails
	bookedAt  *time.Time
	createdAt time.Time
}

func NewSlot(requestID uuid.UUID, start, end time.Time) (*Slot, error) {
	if !end.After(start) {
		return nil, ErrInvalidSlotWindow
	}
	return &Slot{
		id:        uuid.New(),
		requestID: requestID,
		start:     start,
		end:       end,
		status:    StatusAvailable,
	}, nil
}

func ReconstructSlot(
	id, requestID uuid.UUID,
	start, end time.Time,
	status SlotStatus,
	claimedBy *uuid.UUID,
	guest *GuestDetails,
	bookedAt *time.Time,
	createdAt time.Time,
) *Slot {
	return &Slot{
		id:        id,
		requestID: requestID,
		start:     start,
		end:       end,
		status:    status,
		claimedBy: claimedBy,
		guest:     guest,
		bookedAt:  bookedAt,
		createdAt: createdAt,
	}
}

// Claim flips the slot to booked, attributing it to inviteID. The one
// legal mutation a slot ever sees; a second claim fails.
func (s *Slot) Claim(inviteID uuid.UUID, guest GuestDetails, now time.Time) error {
	if s.status != StatusAvailable {
		return ErrSlotAlreadyBooked
	}
	s.status = StatusBooked
	s.claimedBy = &inviteID
	s.guest = &guest
	s.bookedAt = &now
	return nil
}

func (s *Slot) IsAvailable() bool {
	return s.status == StatusAvailable
}

func (s *Slot) ID() uuid.UUID         { return s.id }
func (s *Slot) RequestID() uuid.UUID  { return s.requestID }
func (s *Slot) Start() time.Time      { return s.start }
func (s *Slot) End() time.Time        { return s.end }
func (s *Slot) Status() SlotStatus    { return s.status }
func (s *Slot) ClaimedBy() *uuid.UUID { return s.claimedBy }
func (s *Slot) Guest() *GuestDetails  { return s.guest }
func (s *Slot) BookedAt() *time.Time  { return s.bookedAt }
func (s *Slot) CreatedAt() time.Time  { return s.createdAt }
