package principals

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequestDTO struct {
	Username string `json:"username" binding:"required,min=1,max=100"`
	Email    string `json:"email"    binding:"required,email"`
	FullName string `json:"fullName" binding:"required,min=1,max=200"`
}

type RegisterResponseDTO struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	FullName string    `json:"fullName"`
	// returned exactly once; exchange it for an API key at /keys/issue
	RegistrationToken string    `json:"registrationToken"`
	CreatedAt         time.Time `json:"createdAt"`
}

type SetActivationRequestDTO struct {
	Activated *bool `json:"activated" binding:"required"`
}
