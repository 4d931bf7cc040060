package booking

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingTitle          = errors.New("title is required")
	ErrMissingOrganizerEmail = errors.New("organizer email is required")
	ErrNonPositiveDuration   = errors.New("meeting duration must be positive")
	ErrInvalidSelectionLimit = errors.New("max selections per person must be at least 1")
	ErrNoCandidateSlots      = errors.New("a request needs at least one candidate slot")
)

// BookingRequest is the organizer-defined container: duration, quota
// policy and the pool of candidate slots. Immutable once created except
// for its slot collection and the derived window bounds.
type BookingRequest struct {
	id              uuid.UUID
	title           string
	description     string
	organizerEmail  string
	recipients      []string
	timezone        string
	durationMinutes int
	maxSelections   int
	branding        json.RawMessage
	window          Window
	createdAt       time.Time
	updatedAt       time.Time
}

type RequestSpec struct {
	Title           string
	Description     string
	OrganizerEmail  string
	Recipients      []string
	Timezone        string
	DurationMinutes int
	MaxSelections   int
	Branding        json.RawMessage
}

// NewBookingRequest validates the spec and binds the initial slot
// windows. A request without a single candidate slot could never be
// fulfilled, so it is rejected outright.
func NewBookingRequest(spec RequestSpec, initialSlots []SlotWindow) (*BookingRequest, []*Slot, error) {
	title := strings.TrimSpace(spec.Title)
	if title == "" {
		return nil, nil, ErrMissingTitle
	}
	if strings.TrimSpace(spec.OrganizerEmail) == "" {
		return nil, nil, ErrMissingOrganizerEmail
	}
	if spec.DurationMinutes <= 0 {
		return nil, nil, ErrNonPositiveDuration
	}
	maxSelections := spec.MaxSelections
	if maxSelections == 0 {
		maxSelections = 1
	}
	if maxSelections < 1 {
		return nil, nil, ErrInvalidSelectionLimit
	}
	if len(initialSlots) == 0 {
		return nil, nil, ErrNoCandidateSlots
	}

	timezone := strings.TrimSpace(spec.Timezone)
	if timezone == "" {
		timezone = "UTC"
	}

	r := &BookingRequest{
		id:              uuid.New(),
		title:           title,
		description:     strings.TrimSpace(spec.Description),
		organizerEmail:  strings.TrimSpace(spec.OrganizerEmail),
		recipients:      spec.Recipients,
		timezone:        timezone,
		durationMinutes: spec.DurationMinutes,
		maxSelections:   maxSelections,
		branding:        spec.Branding,
	}

	slots := make([]*Slot, 0, len(initialSlots))
	for _, w := range initialSlots {
		slot, err := NewSlot(r.id, w.Start, w.End)
		if err != nil {
			return nil, nil, err
		}
		slots = append(slots, slot)
		r.window = r.window.Extend(w.Start, w.End)
	}

	return r, slots, nil
}

// SlotWindow is a raw (start, end) pair, typically produced by the
// schedule generator.
type SlotWindow struct {
	Start time.Time
	End   time.Time
}

func ReconstructBookingRequest(
	id uuid.UUID,
	title, description, organizerEmail string,
	recipients []string,
	timezone string,
	durationMinutes, maxSelections int,
	branding json.RawMessage,
	window Window,
	createdAt, updatedAt time.Time,
) *BookingRequest {
	return &BookingRequest{
		id:              id,
		title:           title,
		description:     description,
		organizerEmail:  organizerEmail,
		recipients:      recipients,
		timezone:        timezone,
		durationMinutes: durationMinutes,
		maxSelections:   maxSelections,
		branding:        branding,
		window:          window,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// AppendSlots builds slots for additional windows and widens the
// request window to cover them.
func (r *BookingRequest) AppendSlots(windows []SlotWindow) ([]*Slot, error) {
	slots := make([]*Slot, 0, len(windows))
	for _, w := range windows {
		slot, err := NewSlot(r.id, w.Start, w.End)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
		r.window = r.window.Extend(w.Start, w.End)
	}
	return slots, nil
}

func (r *BookingRequest) ID() uuid.UUID             { return r.id }
func (r *BookingRequest) Title() string             { return r.title }
func (r *BookingRequest) Description() string       { return r.description }
func (r *BookingRequest) OrganizerEmail() string    { return r.organizerEmail }
func (r *BookingRequest) Recipients() []string      { return r.recipients }
func (r *BookingRequest) Timezone() string          { return r.timezone }
func (r *BookingRequest) DurationMinutes() int      { return r.durationMinutes }
func (r *BookingRequest) MaxSelections() int        { return r.maxSelections }
func (r *BookingRequest) Branding() json.RawMessage { return r.branding }
func (r *BookingRequest) Window() Window            { return r.window }
func (r *BookingRequest) CreatedAt() time.Time      { return r.createdAt }
func (r *BookingRequest) UpdatedAt() time.Time      { return r.updatedAt }
