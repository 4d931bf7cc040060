package response

import (
	"time"

	"slotbooker/internal/usecase/queries"

	"github.com/google/uuid"
)

type InviteResponse struct {
	ID           uuid.UUID `json:"id"`
	Token        string    `json:"token"`
	RequestID    uuid.UUID `json:"requestId"`
	Email        *string   `json:"email,omitempty"`
	ClaimedCount int       `json:"claimedCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

func FromInviteView(rm *queries.InviteView) *InviteResponse {
	return &InviteResponse{
		ID:           rm.ID,
		Token:        rm.Token,
		RequestID:    rm.RequestID,
		Email:        rm.Email,
		ClaimedCount: rm.ClaimedCount,
		CreatedAt:    rm.CreatedAt,
	}
}

func FromInviteViews(views []*queries.InviteView) []*InviteResponse {
	out := make([]*InviteResponse, len(views))
	for i, v := range views {
		out[i] = FromInviteView(v)
	}
	return out
}
