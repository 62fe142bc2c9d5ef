package credentials

import (
	"time"

	"github.com/google/uuid"
)

type Credential struct {
	ID      uuid.UUID `json:"id"           gorm:"column:id"`
	OwnerID uuid.UUID `json:"ownerId"      gorm:"column:owner_id"`
	// sha256 of the raw secret; doubles as the audit fingerprint
	SecretHash   string    `json:"-"            gorm:"column:secret_hash"`
	SecretPrefix string    `json:"secretPrefix" gorm:"column:secret_prefix"`
	Active       bool      `json:"active"       gorm:"column:active"`
	ExpiresAt    time.Time `json:"expiresAt"    gorm:"column:expires_at"`
	CreatedAt    time.Time `json:"createdAt"    gorm:"column:created_at"`

	// populated only when the credential is issued or rotated
	Secret string `json:"secret,omitempty" gorm:"-"`
}

func (Credential) TableName() string {
	return "credentials"
}

func (c *Credential) IsExpired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}
