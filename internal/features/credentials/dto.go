package credentials

import (
	"time"

	"github.com/google/uuid"
)

type IssueKeyRequestDTO struct {
	Email             string `json:"email"             binding:"required,email"`
	RegistrationToken string `json:"registrationToken" binding:"required"`
}

type RotateKeyRequestDTO struct {
	Secret string `json:"secret" binding:"required"`
}

type KeyResponseDTO struct {
	Secret    string    `json:"secret"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type CachedCredential struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"ownerId"`
	Active    bool      `json:"active"`
	ExpiresAt time.Time `json:"expiresAt"`
}
