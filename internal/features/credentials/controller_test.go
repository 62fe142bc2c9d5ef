package credentials

import (
	"net/http"
	"testing"
	"time"

	"deskstore/internal/features/principals"
	test_utils "deskstore/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createKeyTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	v1 := router.Group("/api/v1")
	GetCredentialController().RegisterRoutes(v1)

	return router
}

// IssueKey Tests

func Test_IssueKey_WithValidRegistrationToken_KeyIssued(t *testing.T) {
	router := createKeyTestRouter()
	principal, token := principals.CreateTestPrincipal(true)

	var response KeyResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/keys/issue",
		"",
		IssueKeyRequestDTO{Email: principal.Email, RegistrationToken: token},
		http.StatusOK,
		&response,
	)

	assert.Contains(t, response.Secret, SecretPrefix)
	assert.True(t, response.ExpiresAt.After(time.Now().Add(71*time.Hour)))
	assert.True(t, response.ExpiresAt.Before(time.Now().Add(73*time.Hour)))
}

func Test_IssueKey_WithReusedRegistrationToken_ReturnsBadRequest(t *testing.T) {
	router := createKeyTestRouter()
	principal, token := principals.CreateTestPrincipal(true)
	request := IssueKeyRequestDTO{Email: principal.Email, RegistrationToken: token}

	test_utils.MakePostRequestAndUnmarshal(
		t, router, "/api/v1/keys/issue", "", request, http.StatusOK, nil)

	w := test_utils.MakeAPIRequest(router, "POST", "/api/v1/keys/issue", "", request)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_IssueKey_WhenUserDeactivated_ReturnsForbidden(t *testing.T) {
	router := createKeyTestRouter()
	principal, token := principals.CreateTestPrincipal(false)

	w := test_utils.MakeAPIRequest(
		router,
		"POST",
		"/api/v1/keys/issue",
		"",
		IssueKeyRequestDTO{Email: principal.Email, RegistrationToken: token},
	)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func Test_IssueKey_WithUnknownEmail_ReturnsBadRequest(t *testing.T) {
	router := createKeyTestRouter()

	w := test_utils.MakeAPIRequest(
		router,
		"POST",
		"/api/v1/keys/issue",
		"",
		IssueKeyRequestDTO{Email: "nobody@example.com", RegistrationToken: "whatever"},
	)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// RotateKey Tests

func Test_RotateKey_WithActiveSecret_OldSecretRetired(t *testing.T) {
	router := createKeyTestRouter()
	principal, credential := CreateAuthorizedTestPrincipal()

	var response KeyResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/keys/rotate",
		"",
		RotateKeyRequestDTO{Secret: credential.Secret},
		http.StatusOK,
		&response,
	)

	require.NotEmpty(t, response.Secret)
	assert.NotEqual(t, credential.Secret, response.Secret)

	// the old secret no longer authorizes
	_, err := GetCredentialService().Authorize(credential.Secret)
	assert.ErrorIs(t, err, ErrInvalidOrExpiredCredential)

	// the new one resolves to the same owner
	authorized, err := GetCredentialService().Authorize(response.Secret)
	require.NoError(t, err)
	assert.Equal(t, principal.ID, authorized.ID)
}

func Test_RotateKey_ChainOfRotations_OnlyLatestSecretWorks(t *testing.T) {
	router := createKeyTestRouter()
	_, credential := CreateAuthorizedTestPrincipal()

	secrets := []string{credential.Secret}
	for i := 0; i < 3; i++ {
		var response KeyResponseDTO
		test_utils.MakePostRequestAndUnmarshal(
			t,
			router,
			"/api/v1/keys/rotate",
			"",
			RotateKeyRequestDTO{Secret: secrets[len(secrets)-1]},
			http.StatusOK,
			&response,
		)
		secrets = append(secrets, response.Secret)
	}

	for _, retired := range secrets[:len(secrets)-1] {
		_, err := GetCredentialService().Authorize(retired)
		assert.ErrorIs(t, err, ErrInvalidOrExpiredCredential)
	}

	_, err := GetCredentialService().Authorize(secrets[len(secrets)-1])
	assert.NoError(t, err)
}

func Test_RotateKey_WithUnknownSecret_ReturnsUnauthorized(t *testing.T) {
	router := createKeyTestRouter()

	w := test_utils.MakeAPIRequest(
		router,
		"POST",
		"/api/v1/keys/rotate",
		"",
		RotateKeyRequestDTO{Secret: "dk_definitely_not_issued"},
	)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func Test_RotateKey_WithRetiredSecret_ReturnsUnauthorizedWithoutMutation(t *testing.T) {
	router := createKeyTestRouter()
	principal, credential := CreateAuthorizedTestPrincipal()

	var rotated KeyResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/keys/rotate",
		"",
		RotateKeyRequestDTO{Secret: credential.Secret},
		http.StatusOK,
		&rotated,
	)

	// replaying the retired secret fails and must not disturb the
	// currently active credential
	w := test_utils.MakeAPIRequest(
		router,
		"POST",
		"/api/v1/keys/rotate",
		"",
		RotateKeyRequestDTO{Secret: credential.Secret},
	)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	authorized, err := GetCredentialService().Authorize(rotated.Secret)
	require.NoError(t, err)
	assert.Equal(t, principal.ID, authorized.ID)
}

func Test_RotateKey_WhenOwnerDeactivated_ReturnsForbidden(t *testing.T) {
	router := createKeyTestRouter()
	principal, credential := CreateAuthorizedTestPrincipal()

	err := principals.GetPrincipalService().SetActivation(principal.ID, false)
	require.NoError(t, err)

	w := test_utils.MakeAPIRequest(
		router,
		"POST",
		"/api/v1/keys/rotate",
		"",
		RotateKeyRequestDTO{Secret: credential.Secret},
	)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
