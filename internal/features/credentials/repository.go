package credentials

import (
	"deskstore/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CredentialRepository struct{}

func (r *CredentialRepository) GetBySecretHash(secretHash string) (*Credential, error) {
	var credential Credential

	err := storage.GetDb().
		Where("secret_hash = ?", secretHash).
		First(&credential).Error

	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &credential, nil
}

func (r *CredentialRepository) GetActiveByOwner(ownerID uuid.UUID) ([]*Credential, error) {
	var activeCredentials []*Credential

	err := storage.GetDb().
		Where("owner_id = ? AND active = ?", ownerID, true).
		Find(&activeCredentials).Error

	return activeCredentials, err
}

// ReplaceActiveForOwner deactivates every credential of the owner and
// persists the new one in a single transaction, so the at-most-one-active
// invariant holds even if the process dies between the two writes.
func (r *CredentialRepository) ReplaceActiveForOwner(credential *Credential) error {
	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&Credential{}).
			Where("owner_id = ? AND active = ?", credential.OwnerID, true).
			Updates(map[string]any{"active": false}).Error
		if err != nil {
			return err
		}

		return tx.Create(credential).Error
	})
}

func (r *CredentialRepository) DeactivateAllForOwner(ownerID uuid.UUID) error {
	return storage.GetDb().Model(&Credential{}).
		Where("owner_id = ? AND active = ?", ownerID, true).
		Updates(map[string]any{"active": false}).Error
}
