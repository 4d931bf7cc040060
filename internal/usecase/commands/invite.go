package commands

import (
	"context"
	"log/slog"
	"strings"

	"slotbooker/internal/domain/invite"
	"slotbooker/internal/infra"
	"slotbooker/internal/pkg/errs"
	"slotbooker/internal/usecase/queries"
	"slotbooker/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNoRecipients = errs.New("at least one recipient email is required")

type InviteCommands interface {
	// CreateInvites issues one invite per recipient email.
	CreateInvites(ctx context.Context, actor OrganizerActor, requestID uuid.UUID, emails []string) ([]*queries.InviteView, error)
	// CreateShareableInvite issues a single open invite with no bound
	// recipient; anyone holding the token may claim under it.
	CreateShareableInvite(ctx context.Context, actor OrganizerActor, requestID uuid.UUID) (*queries.InviteView, error)
}

type inviteCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewInviteCommands(uow shared.UnitOfWork) InviteCommands {
	return &inviteCommandsImpl{uow: uow}
}

func (i *inviteCommandsImpl) CreateInvites(
	ctx context.Context,
	actor OrganizerActor,
	requestID uuid.UUID,
	emails []string,
) ([]*queries.InviteView, error) {
	recipients := make([]string, 0, len(emails))
	for _, e := range emails {
		e = strings.TrimSpace(e)
		if e != "" {
			recipients = append(recipients, e)
		}
	}
	if len(recipients) == 0 {
		return nil, ErrNoRecipients
	}

	var views []*queries.InviteView
	err := i.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, readErr := tx.Reads().RequestByID(ctx, requestID); readErr != nil {
			if infra.IsKind(readErr, infra.KindNotFound) {
				return errs.Mark(readErr, errs.ErrRequestNotFound)
			}
			return errs.Mark(readErr, ErrDatabaseOperationFailed)
		}

		views = make([]*queries.InviteView, 0, len(recipients))
		for _, email := range recipients {
			email := email
			inv, newErr := invite.NewInvite(requestID, &email)
			if newErr != nil {
				return errs.Mark(newErr, ErrDatabaseOperationFailed)
			}
			if createErr := tx.Invites().Create(ctx, inv); createErr != nil {
				return errs.Mark(createErr, ErrDatabaseOperationFailed)
			}
			views = append(views, inviteToView(inv))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("invites created",
		"request_id", requestID,
		"organizer_id", actor.ID,
		"count", len(views))

	return views, nil
}

func (i *inviteCommandsImpl) CreateShareableInvite(
	ctx context.Context,
	actor OrganizerActor,
	requestID uuid.UUID,
) (*queries.InviteView, error) {
	var view *queries.InviteView
	err := i.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, readErr := tx.Reads().RequestByID(ctx, requestID); readErr != nil {
			if infra.IsKind(readErr, infra.KindNotFound) {
				return errs.Mark(readErr, errs.ErrRequestNotFound)
			}
			return errs.Mark(readErr, ErrDatabaseOperationFailed)
		}

		inv, newErr := invite.NewInvite(requestID, nil)
		if newErr != nil {
			return errs.Mark(newErr, ErrDatabaseOperationFailed)
		}
		if createErr := tx.Invites().Create(ctx, inv); createErr != nil {
			return errs.Mark(createErr, ErrDatabaseOperationFailed)
		}
		view = inviteToView(inv)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("shareable invite created", "request_id", requestID, "organizer_id", actor.ID)

	return view, nil
}

func inviteToView(inv *invite.Invite) *queries.InviteView {
	return &queries.InviteView{
		ID:           inv.ID(),
		Token:        inv.Token(),
		RequestID:    inv.RequestID(),
		Email:        inv.Email(),
		ClaimedCount: inv.ClaimedCount(),
		CreatedAt:    inv.CreatedAt(),
	}
}
