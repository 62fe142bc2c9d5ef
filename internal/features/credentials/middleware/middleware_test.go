package credentials_middleware

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"deskstore/internal/config"
	"deskstore/internal/features/credentials"
	"deskstore/internal/features/principals"
	"deskstore/internal/storage"
	test_utils "deskstore/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createGateTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	v1 := router.Group("/api/v1")

	protected := v1.Group("")
	protected.Use(AuthMiddleware(credentials.GetCredentialService(), config.GetEnv().APIKeyHeader))

	protected.GET("/whoami", func(ctx *gin.Context) {
		principal, ok := GetPrincipalFromContext(ctx)
		if !ok {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "principal missing from context"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"id": principal.ID.String()})
	})

	return router
}

func rejectionMessage(t *testing.T, body []byte) string {
	t.Helper()

	var payload map[string]string
	require.NoError(t, json.Unmarshal(body, &payload))
	return payload["error"]
}

func Test_AuthMiddleware_WithValidKey_PrincipalReachesHandler(t *testing.T) {
	router := createGateTestRouter()
	principal, credential := credentials.CreateAuthorizedTestPrincipal()

	var response map[string]string
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/whoami", credential.Secret, http.StatusOK, &response)

	assert.Equal(t, principal.ID.String(), response["id"])
}

func Test_AuthMiddleware_WithMissingKey_UniformRejection(t *testing.T) {
	router := createGateTestRouter()

	w := test_utils.MakeAPIRequest(router, "GET", "/api/v1/whoami", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, credentials.UniformRejectionMessage, rejectionMessage(t, w.Body.Bytes()))
}

func Test_AuthMiddleware_WithUnknownKey_UniformRejection(t *testing.T) {
	router := createGateTestRouter()

	w := test_utils.MakeAPIRequest(router, "GET", "/api/v1/whoami", "dk_never_issued", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, credentials.UniformRejectionMessage, rejectionMessage(t, w.Body.Bytes()))
}

func Test_AuthMiddleware_WithExpiredKey_UniformRejection(t *testing.T) {
	router := createGateTestRouter()
	_, credential := credentials.CreateAuthorizedTestPrincipal()

	err := storage.GetDb().
		Model(&credentials.Credential{}).
		Where("id = ?", credential.ID).
		Update("expires_at", time.Now().UTC().Add(-time.Minute)).Error
	require.NoError(t, err)

	w := test_utils.MakeAPIRequest(router, "GET", "/api/v1/whoami", credential.Secret, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, credentials.UniformRejectionMessage, rejectionMessage(t, w.Body.Bytes()))
}

func Test_AuthMiddleware_WithDeactivatedOwner_UniformRejection(t *testing.T) {
	router := createGateTestRouter()
	principal, credential := credentials.CreateAuthorizedTestPrincipal()

	require.NoError(t, principals.GetPrincipalService().SetActivation(principal.ID, false))

	w := test_utils.MakeAPIRequest(router, "GET", "/api/v1/whoami", credential.Secret, nil)

	// the body must not reveal which check failed
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, credentials.UniformRejectionMessage, rejectionMessage(t, w.Body.Bytes()))
}
