package booking

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrMissingGuestName  = errors.New("guest name is required")
	ErrMissingGuestEmail = errors.New("guest email is required")
)

// GuestDetails is the contact information captured when a slot is
// claimed. It lives on the slot, not the invite: the same invite can
// book several slots with different notes.
type GuestDetails struct {
	name  string
	email string
	phone string
	notes string
}

func NewGuestDetails(name, email, phone, notes string) (GuestDetails, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return GuestDetails{}, ErrMissingGuestName
	}
	if email == "" {
		return GuestDetails{}, ErrMissingGuestEmail
	}
	return GuestDetails{
		name:  name,
		email: email,
		phone: strings.TrimSpace(phone),
		notes: strings.TrimSpace(notes),
	}, nil
}

func (g GuestDetails) Name() string  { return g.name }
func (g GuestDetails) Email() string { return g.email }
func (g GuestDetails) Phone() string { return g.phone }
func (g GuestDetails) Notes() string { return g.notes }

// Window is the min-start/max-end envelope over a request's slot set.
type Window struct {
	start time.Time
	end   time.Time
}

func NewWindow(start, end time.Time) Window {
	return Window{start: start, end: end}
}

func (w Window) Start() time.Time { return w.start }
func (w Window) End() time.Time   { return w.end }
func (w Window) IsZero() bool     { return w.start.IsZero() && w.end.IsZero() }

// Extend widens the window to cover [start, end] and reports the
// resulting bounds. Extending a zero window adopts the bounds as-is.
func (w Window) Extend(start, end time.Time) Window {
	if w.IsZero() {
		return Window{start: start, end: end}
	}
	out := w
	if start.Before(out.start) {
		out.start = start
	}
	if end.After(out.end) {
		out.end = end
	}
	return out
}
