package response

import "github.com/google/uuid"

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	OrganizerID uuid.UUID `json:"organizer_id"`
}
