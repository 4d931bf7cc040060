package commands

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"slotbooker/internal/domain/booking"
	"slotbooker/internal/domain/schedule"
	"slotbooker/internal/infra"
	"slotbooker/internal/pkg/config"
	"slotbooker/internal/pkg/errs"
	"slotbooker/internal/usecase/queries"
	"slotbooker/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrTooManySlots            = errs.New("slot pattern exceeds the per-request limit")
	ErrEmptySlotPattern        = errs.New("slot pattern yields no candidate slots")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type CreateRequestParams struct {
	Title           string
	Description     string
	Recipients      []string
	Timezone        string
	DurationMinutes int
	MaxSelections   int
	Branding        json.RawMessage
	Schedule        schedule.GenerateParams
}

type BookingCommands interface {
	CreateRequest(ctx context.Context, actor OrganizerActor, params CreateRequestParams) (*queries.RequestView, error)
	AppendSlots(ctx context.Context, actor OrganizerActor, requestID uuid.UUID, pattern schedule.GenerateParams) (*queries.RequestView, error)
}

type bookingCommandsImpl struct {
	uow            shared.UnitOfWork
	bookingQueries queries.BookingQueries
	cfg            config.BookingConfig
}

func NewBookingCommands(uow shared.UnitOfWork, bookingQueries queries.BookingQueries, cfg config.BookingConfig) BookingCommands {
	return &bookingCommandsImpl{
		uow:            uow,
		bookingQueries: bookingQueries,
		cfg:            cfg,
	}
}

func (b *bookingCommandsImpl) CreateRequest(
	ctx context.Context,
	actor OrganizerActor,
	params CreateRequestParams,
) (*queries.RequestView, error) {
	windows := toSlotWindows(schedule.Generate(params.Schedule))
	if len(windows) == 0 {
		return nil, ErrEmptySlotPattern
	}
	if len(windows) > b.cfg.MaxSlotsPerRequest {
		return nil, ErrTooManySlots
	}

	spec := booking.RequestSpec{
		Title:           params.Title,
		Description:     params.Description,
		OrganizerEmail:  actor.Email,
		Recipients:      params.Recipients,
		Timezone:        params.Timezone,
		DurationMinutes: params.DurationMinutes,
		MaxSelections:   params.MaxSelections,
		Branding:        params.Branding,
	}

	request, slots, err := booking.NewBookingRequest(spec, windows)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if createErr := tx.Requests().Create(ctx, request); createErr != nil {
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		if insertErr := tx.Requests().InsertSlots(ctx, slots); insertErr != nil {
			return errs.Mark(insertErr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("booking request created",
		"request_id", request.ID(),
		"organizer_id", actor.ID,
		"slots", len(slots))

	return b.bookingQueries.GetRequest(ctx, request.ID())
}

func (b *bookingCommandsImpl) AppendSlots(
	ctx context.Context,
	actor OrganizerActor,
	requestID uuid.UUID,
	pattern schedule.GenerateParams,
) (*queries.RequestView, error) {
	windows := toSlotWindows(schedule.Generate(pattern))
	if len(windows) == 0 {
		return nil, ErrEmptySlotPattern
	}
	if len(windows) > b.cfg.MaxSlotsPerRequest {
		return nil, ErrTooManySlots
	}

	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, readErr := tx.Reads().RequestByID(ctx, requestID)
		if readErr != nil {
			if infra.IsKind(readErr, infra.KindNotFound) {
				return errs.Mark(readErr, errs.ErrRequestNotFound)
			}
			return errs.Mark(readErr, ErrDatabaseOperationFailed)
		}

		request := requestFromSnapshot(snap)
		slots, appendErr := request.AppendSlots(windows)
		if appendErr != nil {
			return errs.Mark(appendErr, errs.ErrDomainValidation)
		}

		if insertErr := tx.Requests().InsertSlots(ctx, slots); insertErr != nil {
			return errs.Mark(insertErr, ErrDatabaseOperationFailed)
		}
		if windowErr := tx.Requests().ExtendWindow(ctx, requestID, request.Window()); windowErr != nil {
			return errs.Mark(windowErr, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("slots appended",
		"request_id", requestID,
		"organizer_id", actor.ID,
		"slots", len(windows))

	return b.bookingQueries.GetRequest(ctx, requestID)
}

func toSlotWindows(windows []schedule.Window) []booking.SlotWindow {
	out := make([]booking.SlotWindow, len(windows))
	for i, w := range windows {
		out[i] = booking.SlotWindow{Start: w.Start, End: w.End}
	}
	return out
}

// requestFromSnapshot rebuilds just enough of the aggregate for window
// bookkeeping on append.
func requestFromSnapshot(snap *shared.RequestSnapshot) *booking.BookingRequest {
	window := booking.Window{}
	if snap.WindowStart != nil && snap.WindowEnd != nil {
		window = booking.NewWindow(*snap.WindowStart, *snap.WindowEnd)
	}
	return booking.ReconstructBookingRequest(
		snap.ID,
		snap.Title, "", snap.OrganizerEmail,
		nil,
		snap.Timezone,
		snap.DurationMinutes, snap.MaxSelections,
		nil,
		window,
		time.Time{}, time.Time{},
	)
}
