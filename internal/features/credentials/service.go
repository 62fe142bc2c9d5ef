package credentials

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"deskstore/internal/features/principals"
	cache_utils "deskstore/internal/util/cache"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

const (
	SecretPrefix = "dk_"
	// bytes of entropy behind each secret
	SecretLength = 32
	// fixed lifetime of every issued key
	KeyTTL = 72 * time.Hour
)

type CredentialService struct {
	credentialRepository *CredentialRepository
	principalService     *principals.PrincipalService

	credentialCacheUtil *cache_utils.CacheUtil[CachedCredential]
	singleflight        singleflight.Group // collapses concurrent gate lookups per hash
	logger              *slog.Logger

	ownerLocks sync.Map // uuid.UUID -> *sync.Mutex
}

// FingerprintSecret is the one-way hash used both as the stored lookup key
// and as the audit correlation fingerprint.
func FingerprintSecret(secret string) string {
	digest := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(digest[:])
}

// IssueKey deactivates every prior credential of the owner and persists a
// fresh one. The returned Credential carries the raw secret; it is never
// recoverable afterwards.
func (s *CredentialService) IssueKey(ownerID uuid.UUID) (*Credential, error) {
	principal, err := s.principalService.GetByID(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve principal: %w", err)
	}

	if principal == nil {
		return nil, principals.ErrPrincipalNotFound
	}
	if !principal.Activated {
		return nil, ErrPrincipalNotActivated
	}

	return s.issueForOwner(ownerID)
}

// IssueKeyForRegistration exchanges a one-time registration token for the
// principal's first API key.
func (s *CredentialService) IssueKeyForRegistration(email, registrationToken string) (*Credential, error) {
	principal, err := s.principalService.ConsumeRegistrationToken(email, registrationToken)
	if err != nil {
		return nil, err
	}

	if !principal.Activated {
		return nil, ErrPrincipalNotActivated
	}

	return s.issueForOwner(principal.ID)
}

// RotateKey retires the presented secret and issues a replacement for the
// same owner under the same expiry policy. Fails without mutating anything
// when the secret does not match an active credential or the owner has been
// deactivated.
func (s *CredentialService) RotateKey(currentSecret string) (*Credential, error) {
	current, err := s.credentialRepository.GetBySecretHash(FingerprintSecret(currentSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to look up credential: %w", err)
	}

	if current == nil || !current.Active {
		return nil, ErrInvalidCredential
	}

	principal, err := s.principalService.GetByID(current.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve principal: %w", err)
	}
	if principal == nil {
		return nil, ErrInvalidCredential
	}
	if !principal.Activated {
		return nil, ErrPrincipalNotActivated
	}

	lock := s.ownerLock(current.OwnerID)
	lock.Lock()
	defer lock.Unlock()

	// re-check under the lock: a concurrent rotation may have already
	// retired this secret
	current, err = s.credentialRepository.GetBySecretHash(current.SecretHash)
	if err != nil {
		return nil, fmt.Errorf("failed to look up credential: %w", err)
	}
	if current == nil || !current.Active {
		return nil, ErrInvalidCredential
	}

	return s.replaceActive(current.OwnerID)
}

// Authorize validates a presented secret and resolves its owning principal.
// It never mutates state. Rejections come back as the typed errors in
// errors.go; anything else is a store fault.
func (s *CredentialService) Authorize(secret string) (*principals.Principal, error) {
	if secret == "" {
		return nil, ErrMissingCredential
	}

	credential, err := s.lookupCredential(FingerprintSecret(secret))
	if err != nil {
		return nil, fmt.Errorf("failed to look up credential: %w", err)
	}

	now := time.Now().UTC()
	if credential == nil || !credential.Active || !now.Before(credential.ExpiresAt) {
		return nil, ErrInvalidOrExpiredCredential
	}

	// activation is read fresh from the store on every request so a
	// deactivation takes effect immediately
	principal, err := s.principalService.GetByID(credential.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve principal: %w", err)
	}

	if principal == nil || !principal.Activated {
		return nil, ErrPrincipalInactive
	}

	return principal, nil
}

func (s *CredentialService) issueForOwner(ownerID uuid.UUID) (*Credential, error) {
	lock := s.ownerLock(ownerID)
	lock.Lock()
	defer lock.Unlock()

	return s.replaceActive(ownerID)
}

// replaceActive must run under the owner's lock.
func (s *CredentialService) replaceActive(ownerID uuid.UUID) (*Credential, error) {
	previous, err := s.credentialRepository.GetActiveByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load active credentials: %w", err)
	}

	secret, prefix, hash, err := generateSecret()
	if err != nil {
		return nil, fmt.Errorf("failed to generate secret: %w", err)
	}

	now := time.Now().UTC()
	credential := &Credential{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		SecretHash:   hash,
		SecretPrefix: prefix,
		Active:       true,
		ExpiresAt:    now.Add(KeyTTL),
		CreatedAt:    now,
	}

	if err := s.credentialRepository.ReplaceActiveForOwner(credential); err != nil {
		return nil, fmt.Errorf("failed to persist credential: %w", err)
	}

	for _, prev := range previous {
		s.credentialCacheUtil.Invalidate(prev.SecretHash)
	}

	s.credentialCacheUtil.Set(hash, &CachedCredential{
		ID:        credential.ID,
		OwnerID:   credential.OwnerID,
		Active:    true,
		ExpiresAt: credential.ExpiresAt,
	})

	s.logger.Info("api key issued",
		"ownerId", ownerID,
		"keyPrefix", prefix,
		"expiresAt", credential.ExpiresAt,
		"retired", len(previous))

	credential.Secret = secret

	return credential, nil
}

func (s *CredentialService) lookupCredential(secretHash string) (*CachedCredential, error) {
	if cached := s.credentialCacheUtil.Get(secretHash); cached != nil {
		if cached.ID == uuid.Nil {
			return nil, nil
		}

		return cached, nil
	}

	result, err, _ := s.singleflight.Do(secretHash, func() (any, error) {
		return s.credentialRepository.GetBySecretHash(secretHash)
	})
	if err != nil {
		return nil, err
	}

	credential, _ := result.(*Credential)
	if credential == nil {
		// negative entry prevents repeated store hits for unknown secrets
		s.credentialCacheUtil.Set(secretHash, &CachedCredential{ID: uuid.Nil})
		return nil, nil
	}

	cached := &CachedCredential{
		ID:        credential.ID,
		OwnerID:   credential.OwnerID,
		Active:    credential.Active,
		ExpiresAt: credential.ExpiresAt,
	}
	s.credentialCacheUtil.Set(secretHash, cached)

	return cached, nil
}

func (s *CredentialService) ownerLock(ownerID uuid.UUID) *sync.Mutex {
	lock, _ := s.ownerLocks.LoadOrStore(ownerID, &sync.Mutex{})
	return lock.(*sync.Mutex)
}

func generateSecret() (secret, prefix, hash string, err error) {
	secretBytes := make([]byte, SecretLength)
	if _, err := rand.Read(secretBytes); err != nil {
		return "", "", "", err
	}

	secret = SecretPrefix + base64.RawURLEncoding.EncodeToString(secretBytes)
	prefix = secret[:len(SecretPrefix)+6] + "..."
	hash = FingerprintSecret(secret)

	return secret, prefix, hash, nil
}
