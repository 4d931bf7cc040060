//go:build unit || e2e

package builder

import (
	"time"

	"slotbooker/internal/pkg/token"
	"slotbooker/internal/usecase/queries"
	"slotbooker/internal/usecase/shared"

	"github.com/google/uuid"
)

type InviteBuilder struct {
	RequestID    uuid.UUID
	Email        *string
	ClaimedCount int
}

func NewInviteBuilder(requestID uuid.UUID) *InviteBuilder {
	email := "guest@example.com"
	return &InviteBuilder{
		RequestID: requestID,
		Email:     &email,
	}
}

func (b *InviteBuilder) Shareable() *InviteBuilder {
	b.Email = nil
	return b
}

func (b *InviteBuilder) WithClaimedCount(n int) *InviteBuilder {
	b.ClaimedCount = n
	return b
}

func (b *InviteBuilder) BuildSnapshot() shared.InviteSnapshot {
	tok, err := token.NewInviteToken()
	if err != nil {
		panic(err)
	}
	return shared.InviteSnapshot{
		ID:           uuid.New(),
		Token:        tok,
		RequestID:    b.RequestID,
		Email:        b.Email,
		ClaimedCount: b.ClaimedCount,
	}
}

func (b *InviteBuilder) BuildView() *queries.InviteView {
	tok, err := token.NewInviteToken()
	if err != nil {
		panic(err)
	}
	return &queries.InviteView{
		ID:           uuid.New(),
		Token:        tok,
		RequestID:    b.RequestID,
		Email:        b.Email,
		ClaimedCount: b.ClaimedCount,
		CreatedAt:    time.Now().UTC(),
	}
}
