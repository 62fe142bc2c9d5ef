package credentials

import (
	"sync"
	"testing"
	"time"

	"deskstore/internal/features/principals"
	"deskstore/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// IssueKey Tests

func Test_IssueKey_CalledTwiceForSameOwner_ExactlyOneActiveCredential(t *testing.T) {
	principal, _ := principals.CreateTestPrincipal(true)

	first := IssueTestKey(principal.ID)
	second := IssueTestKey(principal.ID)

	active, err := GetCredentialService().credentialRepository.GetActiveByOwner(principal.ID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, second.ID, active[0].ID)

	_, err = GetCredentialService().Authorize(first.Secret)
	assert.ErrorIs(t, err, ErrInvalidOrExpiredCredential)

	_, err = GetCredentialService().Authorize(second.Secret)
	assert.NoError(t, err)
}

func Test_IssueKey_ConcurrentIssuance_ExactlyOneActiveCredential(t *testing.T) {
	principal, _ := principals.CreateTestPrincipal(true)

	const workers = 8

	var wg sync.WaitGroup
	errs := make([]error, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			_, errs[idx] = GetCredentialService().IssueKey(principal.ID)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	active, err := GetCredentialService().credentialRepository.GetActiveByOwner(principal.ID)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func Test_IssueKey_WhenOwnerDeactivated_IsRejected(t *testing.T) {
	principal, _ := principals.CreateTestPrincipal(false)

	_, err := GetCredentialService().IssueKey(principal.ID)
	assert.ErrorIs(t, err, ErrPrincipalNotActivated)
}

func Test_IssueKey_SecretShape_PrefixedAndUnrecoverable(t *testing.T) {
	principal, _ := principals.CreateTestPrincipal(true)

	credential := IssueTestKey(principal.ID)

	assert.Contains(t, credential.Secret, SecretPrefix)
	assert.Contains(t, credential.SecretPrefix, SecretPrefix)
	assert.Contains(t, credential.SecretPrefix, "...")
	assert.Equal(t, FingerprintSecret(credential.Secret), credential.SecretHash)

	// the stored row never carries the raw secret
	stored, err := GetCredentialService().credentialRepository.GetBySecretHash(credential.SecretHash)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Empty(t, stored.Secret)
}

// Authorize Tests

func Test_Authorize_WithEmptySecret_ReturnsMissingCredential(t *testing.T) {
	_, err := GetCredentialService().Authorize("")
	assert.ErrorIs(t, err, ErrMissingCredential)
}

func Test_Authorize_WithUnknownSecret_ReturnsInvalidOrExpired(t *testing.T) {
	_, err := GetCredentialService().Authorize("dk_unknown_secret_value")
	assert.ErrorIs(t, err, ErrInvalidOrExpiredCredential)
}

func Test_Authorize_WithExpiredCredential_ReturnsInvalidOrExpired(t *testing.T) {
	principal, _ := principals.CreateTestPrincipal(true)
	credential := IssueTestKey(principal.ID)

	expireCredential(t, credential)

	_, err := GetCredentialService().Authorize(credential.Secret)
	assert.ErrorIs(t, err, ErrInvalidOrExpiredCredential)
}

func Test_Authorize_WhenOwnerDeactivatedAfterIssuance_ReturnsPrincipalInactive(t *testing.T) {
	principal, credential := CreateAuthorizedTestPrincipal()

	// the key itself stays valid; the owner check must catch it
	require.NoError(t, principals.GetPrincipalService().SetActivation(principal.ID, false))

	_, err := GetCredentialService().Authorize(credential.Secret)
	assert.ErrorIs(t, err, ErrPrincipalInactive)

	// reactivation restores access without reissuing the key
	require.NoError(t, principals.GetPrincipalService().SetActivation(principal.ID, true))

	authorized, err := GetCredentialService().Authorize(credential.Secret)
	require.NoError(t, err)
	assert.Equal(t, principal.ID, authorized.ID)
}

func Test_Authorize_DoesNotMutateCredentialState(t *testing.T) {
	principal, credential := CreateAuthorizedTestPrincipal()

	for i := 0; i < 5; i++ {
		_, err := GetCredentialService().Authorize(credential.Secret)
		require.NoError(t, err)
	}

	active, err := GetCredentialService().credentialRepository.GetActiveByOwner(principal.ID)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, credential.ID, active[0].ID)
}

// RotateKey Tests

func Test_RotateKey_WithExpiredSecret_IsRejected(t *testing.T) {
	principal, _ := principals.CreateTestPrincipal(true)
	credential := IssueTestKey(principal.ID)

	expireCredential(t, credential)

	// expired credentials are still marked active in the store; rotation
	// of one is allowed so owners can replace a stale key
	rotated, err := GetCredentialService().RotateKey(credential.Secret)
	require.NoError(t, err)
	assert.False(t, rotated.IsExpired(time.Now().UTC()))
}

func Test_RotateKey_PreservesOwnerAndTTL(t *testing.T) {
	principal, credential := CreateAuthorizedTestPrincipal()

	before := time.Now().UTC()
	rotated, err := GetCredentialService().RotateKey(credential.Secret)
	require.NoError(t, err)

	assert.Equal(t, principal.ID, rotated.OwnerID)
	assert.WithinDuration(t, before.Add(KeyTTL), rotated.ExpiresAt, 5*time.Second)
}

func expireCredential(t *testing.T, credential *Credential) {
	t.Helper()

	err := storage.GetDb().
		Model(&Credential{}).
		Where("id = ?", credential.ID).
		Update("expires_at", time.Now().UTC().Add(-time.Minute)).Error
	require.NoError(t, err)
}
