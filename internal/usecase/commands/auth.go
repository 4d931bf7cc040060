package commands

import (
	"context"
	"log/slog"

	"slotbooker/internal/pkg/errs"
	"slotbooker/internal/pkg/jwt"
	"slotbooker/internal/pkg/password"
	"slotbooker/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errs.New("invalid credentials")
	ErrOrganizerInactive  = errs.New("organizer inactive")
	ErrTokenGeneration    = errs.New("token generation failed")
)

type LoginResult struct {
	OrganizerID uuid.UUID
	AccessToken string
}

type AuthCommands interface {
	Login(ctx context.Context, email, plainPassword string) (*LoginResult, error)
}

type authCommandsImpl struct {
	readStore  queries.OrganizerReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(readStore queries.OrganizerReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, plainPassword string) (*LoginResult, error) {
	organizer, hashed, err := a.readStore.FindByEmail(ctx, email)
	if err != nil {
		// Same error as a password mismatch so callers cannot probe
		// which addresses have accounts.
		return nil, ErrInvalidCredentials
	}

	if !organizer.IsActive {
		return nil, ErrOrganizerInactive
	}

	if compareErr := password.ComparePassword(hashed, plainPassword); compareErr != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := a.jwtService.GenerateToken(organizer.ID, organizer.Email)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	slog.Info("organizer logged in", "organizer_id", organizer.ID)

	return &LoginResult{
		OrganizerID: organizer.ID,
		AccessToken: accessToken,
	}, nil
}
