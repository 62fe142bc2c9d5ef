package principals

import (
	"time"

	"github.com/google/uuid"
)

type Principal struct {
	ID        uuid.UUID `json:"id"        gorm:"column:id"`
	Username  string    `json:"username"  gorm:"column:username"`
	Email     string    `json:"email"     gorm:"column:email"`
	FullName  string    `json:"fullName"  gorm:"column:full_name"`
	Activated bool      `json:"activated" gorm:"column:activated"`
	// bcrypt hash of the one-time registration token; never exposed
	RegistrationTokenHash *string   `json:"-"         gorm:"column:registration_token_hash"`
	RegistrationTokenUsed bool      `json:"-"         gorm:"column:registration_token_used"`
	CreatedAt             time.Time `json:"createdAt" gorm:"column:created_at"`
}

func (Principal) TableName() string {
	return "principals"
}
