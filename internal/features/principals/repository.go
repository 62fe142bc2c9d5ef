package principals

import (
	"deskstore/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PrincipalRepository struct{}

func (r *PrincipalRepository) Create(principal *Principal) error {
	return storage.GetDb().Create(principal).Error
}

func (r *PrincipalRepository) GetByID(principalID uuid.UUID) (*Principal, error) {
	var principal Principal

	if err := storage.GetDb().Where("id = ?", principalID).First(&principal).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &principal, nil
}

func (r *PrincipalRepository) GetByEmail(email string) (*Principal, error) {
	var principal Principal

	if err := storage.GetDb().Where("email = ?", email).First(&principal).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &principal, nil
}

func (r *PrincipalRepository) GetByUsername(username string) (*Principal, error) {
	var principal Principal

	if err := storage.GetDb().Where("username = ?", username).First(&principal).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}

		return nil, err
	}

	return &principal, nil
}

func (r *PrincipalRepository) SetActivation(principalID uuid.UUID, activated bool) (bool, error) {
	result := storage.GetDb().Model(&Principal{}).
		Where("id = ?", principalID).
		Updates(map[string]any{
			"activated": activated,
		})

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// MarkRegistrationTokenUsed flips the single-use flag. The conditional
// update makes concurrent redemption attempts race safely: only one wins.
func (r *PrincipalRepository) MarkRegistrationTokenUsed(principalID uuid.UUID) (bool, error) {
	result := storage.GetDb().Model(&Principal{}).
		Where("id = ? AND registration_token_used = ?", principalID, false).
		Updates(map[string]any{
			"registration_token_used": true,
		})

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}
