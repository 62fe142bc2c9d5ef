package principals

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const registrationTokenBytes = 32

type PrincipalService struct {
	principalRepository *PrincipalRepository
	logger              *slog.Logger
}

func (s *PrincipalService) Register(request *RegisterRequestDTO) (*RegisterResponseDTO, error) {
	existingByEmail, err := s.principalRepository.GetByEmail(request.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing principal: %w", err)
	}

	existingByUsername, err := s.principalRepository.GetByUsername(request.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing principal: %w", err)
	}

	if existingByEmail != nil || existingByUsername != nil {
		return nil, ErrPrincipalExists
	}

	token, err := generateRegistrationToken()
	if err != nil {
		return nil, fmt.Errorf("failed to generate registration token: %w", err)
	}

	tokenHash, err := bcrypt.GenerateFromPassword([]byte(token), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash registration token: %w", err)
	}

	tokenHashStr := string(tokenHash)

	principal := &Principal{
		ID:                    uuid.New(),
		Username:              request.Username,
		Email:                 request.Email,
		FullName:              request.FullName,
		Activated:             true,
		RegistrationTokenHash: &tokenHashStr,
		RegistrationTokenUsed: false,
		CreatedAt:             time.Now().UTC(),
	}

	if err := s.principalRepository.Create(principal); err != nil {
		return nil, fmt.Errorf("failed to create principal: %w", err)
	}

	s.logger.Info("principal registered", "principalId", principal.ID, "email", principal.Email)

	return &RegisterResponseDTO{
		ID:                principal.ID,
		Username:          principal.Username,
		Email:             principal.Email,
		FullName:          principal.FullName,
		RegistrationToken: token,
		CreatedAt:         principal.CreatedAt,
	}, nil
}

func (s *PrincipalService) GetByID(principalID uuid.UUID) (*Principal, error) {
	return s.principalRepository.GetByID(principalID)
}

func (s *PrincipalService) GetByEmail(email string) (*Principal, error) {
	return s.principalRepository.GetByEmail(email)
}

func (s *PrincipalService) SetActivation(principalID uuid.UUID, activated bool) error {
	updated, err := s.principalRepository.SetActivation(principalID, activated)
	if err != nil {
		return fmt.Errorf("failed to update activation: %w", err)
	}

	if !updated {
		return ErrPrincipalNotFound
	}

	s.logger.Info("principal activation changed", "principalId", principalID, "activated", activated)

	return nil
}

// ConsumeRegistrationToken validates a one-time registration token for the
// given email and burns it. Returns the owning principal on success.
func (s *PrincipalService) ConsumeRegistrationToken(email, token string) (*Principal, error) {
	principal, err := s.principalRepository.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up principal: %w", err)
	}

	if principal == nil || principal.RegistrationTokenHash == nil || principal.RegistrationTokenUsed {
		return nil, ErrInvalidRegistrationToken
	}

	if bcrypt.CompareHashAndPassword([]byte(*principal.RegistrationTokenHash), []byte(token)) != nil {
		return nil, ErrInvalidRegistrationToken
	}

	consumed, err := s.principalRepository.MarkRegistrationTokenUsed(principal.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to consume registration token: %w", err)
	}

	if !consumed {
		return nil, ErrInvalidRegistrationToken
	}

	return principal, nil
}

func generateRegistrationToken() (string, error) {
	tokenBytes := make([]byte, registrationTokenBytes)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(tokenBytes), nil
}
