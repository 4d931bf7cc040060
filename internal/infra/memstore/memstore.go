// Package memstore is an in-memory UnitOfWork used by unit tests. It
// reproduces the transactional behavior the usecases rely on: Within
// runs exclusively (a global mutex plays the role of the invite row
// lock), mutations are buffered and applied only on success, and
// ClaimIfAvailable is a conditional compare-and-set on slot status.
package memstore

import (
	"context"
	"sync"
	"time"

	"slotbooker/internal/domain/booking"
	"slotbooker/internal/domain/invite"
	"slotbooker/internal/infra"
	"slotbooker/internal/usecase/shared"

	"github.com/google/uuid"
)

type requestRecord struct {
	snapshot shared.RequestSnapshot
}

type slotRecord struct {
	snapshot shared.SlotSnapshot
	guest    *booking.GuestDetails
	bookedAt *time.Time
}

type inviteRecord struct {
	snapshot shared.InviteSnapshot
}

type jobRecord struct {
	Kind    string
	Topic   string
	Payload []byte
	RunAt   time.Time
}

type Store struct {
	mu       sync.Mutex
	requests map[uuid.UUID]*requestRecord
	slots    map[uuid.UUID]*slotRecord
	invites  map[uuid.UUID]*inviteRecord
	byToken  map[string]uuid.UUID
	jobs     []jobRecord
}

func New() *Store {
	return &Store{
		requests: make(map[uuid.UUID]*requestRecord),
		slots:    make(map[uuid.UUID]*slotRecord),
		invites:  make(map[uuid.UUID]*inviteRecord),
		byToken:  make(map[string]uuid.UUID),
	}
}

// Within holds the store lock for the whole function, so concurrent
// transactions serialize exactly like row-locked Postgres transactions
// do on a contended invite. Buffered writes apply only when fn returns
// nil, giving rollback-on-error semantics.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &memTx{store: s}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	tx.apply()
	return nil
}

// SeedRequest registers a request snapshot directly; tests use it to
// arrange state without going through the command layer.
func (s *Store) SeedRequest(snap shared.RequestSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[snap.ID] = &requestRecord{snapshot: snap}
}

func (s *Store) SeedSlot(snap shared.SlotSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slots[snap.ID] = &slotRecord{snapshot: snap}
}

func (s *Store) SeedInvite(snap shared.InviteSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invites[snap.ID] = &inviteRecord{snapshot: snap}
	s.byToken[snap.Token] = snap.ID
}

func (s *Store) RequestSnapshot(id uuid.UUID) (shared.RequestSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.requests[id]
	if !ok {
		return shared.RequestSnapshot{}, false
	}
	return rec.snapshot, true
}

func (s *Store) SlotSnapshot(id uuid.UUID) (shared.SlotSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.slots[id]
	if !ok {
		return shared.SlotSnapshot{}, false
	}
	return rec.snapshot, true
}

func (s *Store) InviteSnapshot(id uuid.UUID) (shared.InviteSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.invites[id]
	if !ok {
		return shared.InviteSnapshot{}, false
	}
	return rec.snapshot, true
}

func (s *Store) BookedSlotCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, rec := range s.slots {
		if rec.snapshot.Status == booking.StatusBooked.String() {
			count++
		}
	}
	return count
}

func (s *Store) JobCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.jobs)
}

type memTx struct {
	store   *Store
	pending []func()
}

func (t *memTx) apply() {
	for _, fn := range t.pending {
		fn()
	}
	t.pending = nil
}

func (t *memTx) Requests() shared.BookingRequestRepository { return (*memRequests)(t) }
func (t *memTx) Slots() shared.SlotRepository              { return (*memSlots)(t) }
func (t *memTx) Invites() shared.InviteRepository          { return (*memInvites)(t) }
func (t *memTx) Notifications() shared.NotificationRepository {
	return (*memNotifications)(t)
}
func (t *memTx) Reads() shared.CommandReads { return (*memReads)(t) }

type memRequests memTx

func (m *memRequests) Create(ctx context.Context, req *booking.BookingRequest) error {
	snap := shared.RequestSnapshot{
		ID:              req.ID(),
		Title:           req.Title(),
		OrganizerEmail:  req.OrganizerEmail(),
		Timezone:        req.Timezone(),
		DurationMinutes: req.DurationMinutes(),
		MaxSelections:   req.MaxSelections(),
	}
	if !req.Window().IsZero() {
		start := req.Window().Start()
		end := req.Window().End()
		snap.WindowStart = &start
		snap.WindowEnd = &end
	}
	m.pending = append(m.pending, func() {
		m.store.requests[snap.ID] = &requestRecord{snapshot: snap}
	})
	return nil
}

func (m *memRequests) InsertSlots(ctx context.Context, slots []*booking.Slot) error {
	for _, slot := range slots {
		snap := shared.SlotSnapshot{
			ID:        slot.ID(),
			RequestID: slot.RequestID(),
			Start:     slot.Start(),
			End:       slot.End(),
			Status:    slot.Status().String(),
		}
		m.pending = append(m.pending, func() {
			m.store.slots[snap.ID] = &slotRecord{snapshot: snap}
		})
	}
	return nil
}

// ExtendWindow merges against the stored bounds at apply time,
// mirroring the LEAST/GREATEST update the Postgres repository runs: a
// caller holding stale bounds can only widen the window, never shrink
// it.
func (m *memRequests) ExtendWindow(ctx context.Context, id uuid.UUID, window booking.Window) error {
	rec, ok := m.store.requests[id]
	if !ok {
		return infra.WrapRepoErr("booking request not found", nil, infra.KindNotFound)
	}
	start := window.Start()
	end := window.End()
	m.pending = append(m.pending, func() {
		if rec.snapshot.WindowStart == nil || start.Before(*rec.snapshot.WindowStart) {
			rec.snapshot.WindowStart = &start
		}
		if rec.snapshot.WindowEnd == nil || end.After(*rec.snapshot.WindowEnd) {
			rec.snapshot.WindowEnd = &end
		}
	})
	return nil
}

type memSlots memTx

func (m *memSlots) ClaimIfAvailable(
	ctx context.Context,
	slotID, inviteID uuid.UUID,
	guest booking.GuestDetails,
	now time.Time,
) (bool, error) {
	rec, ok := m.store.slots[slotID]
	if !ok || rec.snapshot.Status != booking.StatusAvailable.String() {
		return false, nil
	}
	claimer := inviteID
	bookedAt := now
	m.pending = append(m.pending, func() {
		rec.snapshot.Status = booking.StatusBooked.String()
		rec.snapshot.ClaimedBy = &claimer
		rec.guest = &guest
		rec.bookedAt = &bookedAt
	})
	return true, nil
}

type memInvites memTx

func (m *memInvites) Create(ctx context.Context, inv *invite.Invite) error {
	snap := shared.InviteSnapshot{
		ID:           inv.ID(),
		Token:        inv.Token(),
		RequestID:    inv.RequestID(),
		Email:        inv.Email(),
		ClaimedCount: inv.ClaimedCount(),
	}
	m.pending = append(m.pending, func() {
		m.store.invites[snap.ID] = &inviteRecord{snapshot: snap}
		m.store.byToken[snap.Token] = snap.ID
	})
	return nil
}

func (m *memInvites) LockByToken(ctx context.Context, token string) (*shared.InviteSnapshot, error) {
	id, ok := m.store.byToken[token]
	if !ok {
		return nil, infra.WrapRepoErr("invite not found", nil, infra.KindNotFound)
	}
	snap := m.store.invites[id].snapshot
	return &snap, nil
}

func (m *memInvites) IncrementClaimed(ctx context.Context, inviteID uuid.UUID, selectedSlotID *uuid.UUID) error {
	rec, ok := m.store.invites[inviteID]
	if !ok {
		return infra.WrapRepoErr("invite not found", nil, infra.KindNotFound)
	}
	m.pending = append(m.pending, func() {
		rec.snapshot.ClaimedCount++
		if selectedSlotID != nil {
			rec.snapshot.SelectedSlotID = selectedSlotID
		}
	})
	return nil
}

type memNotifications memTx

func (m *memNotifications) CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	job := jobRecord{Kind: kind, Topic: topic, Payload: payload, RunAt: runAt}
	m.pending = append(m.pending, func() {
		m.store.jobs = append(m.store.jobs, job)
	})
	return nil
}

type memReads memTx

func (m *memReads) RequestByID(ctx context.Context, id uuid.UUID) (*shared.RequestSnapshot, error) {
	rec, ok := m.store.requests[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking request not found", nil, infra.KindNotFound)
	}
	snap := rec.snapshot
	return &snap, nil
}

func (m *memReads) SlotByID(ctx context.Context, id uuid.UUID) (*shared.SlotSnapshot, error) {
	rec, ok := m.store.slots[id]
	if !ok {
		return nil, infra.WrapRepoErr("slot not found", nil, infra.KindNotFound)
	}
	snap := rec.snapshot
	return &snap, nil
}
