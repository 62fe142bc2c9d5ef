package principals

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	test_utils "deskstore/internal/util/testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createPrincipalTestRouter() *gin.Engine {
	router := test_utils.CreateTestRouter(GetPrincipalController())

	// protected routes are mounted without the gate here; the gate has
	// its own tests
	v1 := router.Group("/api/v1")
	GetPrincipalController().RegisterProtectedRoutes(v1)

	return router
}

func uniqueRegisterRequest() RegisterRequestDTO {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:12]

	return RegisterRequestDTO{
		Username: "reg_" + suffix,
		Email:    fmt.Sprintf("reg_%s@example.com", suffix),
		FullName: "Registered User " + suffix,
	}
}

// Register Tests

func Test_Register_WithValidData_ReturnsTokenOnce(t *testing.T) {
	router := createPrincipalTestRouter()
	request := uniqueRegisterRequest()

	var response RegisterResponseDTO
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/register",
		"",
		request,
		http.StatusOK,
		&response,
	)

	assert.NotEqual(t, uuid.Nil, response.ID)
	assert.Equal(t, request.Username, response.Username)
	assert.Equal(t, request.Email, response.Email)
	assert.NotEmpty(t, response.RegistrationToken)

	// the token hash never leaves the service; fetching the user again
	// must not expose it
	var fetched map[string]any
	test_utils.MakeGetRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/"+response.ID.String(),
		"",
		http.StatusOK,
		&fetched,
	)

	assert.NotContains(t, fetched, "registrationToken")
	assert.NotContains(t, fetched, "registrationTokenHash")
	assert.Equal(t, true, fetched["activated"])
}

func Test_Register_WithDuplicateEmail_ReturnsBadRequest(t *testing.T) {
	router := createPrincipalTestRouter()
	request := uniqueRegisterRequest()

	test_utils.MakePostRequestAndUnmarshal(
		t, router, "/api/v1/users/register", "", request, http.StatusOK, nil)

	duplicate := uniqueRegisterRequest()
	duplicate.Email = request.Email

	w := test_utils.MakeAPIRequest(router, "POST", "/api/v1/users/register", "", duplicate)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_Register_WithDuplicateUsername_ReturnsBadRequest(t *testing.T) {
	router := createPrincipalTestRouter()
	request := uniqueRegisterRequest()

	test_utils.MakePostRequestAndUnmarshal(
		t, router, "/api/v1/users/register", "", request, http.StatusOK, nil)

	duplicate := uniqueRegisterRequest()
	duplicate.Username = request.Username

	w := test_utils.MakeAPIRequest(router, "POST", "/api/v1/users/register", "", duplicate)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func Test_Register_WithMissingEmail_ReturnsBadRequest(t *testing.T) {
	router := createPrincipalTestRouter()
	request := uniqueRegisterRequest()
	request.Email = ""

	w := test_utils.MakeAPIRequest(router, "POST", "/api/v1/users/register", "", request)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// GetPrincipal Tests

func Test_GetPrincipal_WhenUserDoesNotExist_ReturnsNotFound(t *testing.T) {
	router := createPrincipalTestRouter()

	w := test_utils.MakeAPIRequest(router, "GET", "/api/v1/users/"+uuid.New().String(), "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func Test_GetPrincipal_WithMalformedID_ReturnsBadRequest(t *testing.T) {
	router := createPrincipalTestRouter()

	w := test_utils.MakeAPIRequest(router, "GET", "/api/v1/users/not-a-uuid", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// SetActivation Tests

func Test_SetActivation_DeactivateAndReactivate_StateIsPersisted(t *testing.T) {
	router := createPrincipalTestRouter()
	principal, _ := CreateTestPrincipal(true)

	deactivate := false
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/"+principal.ID.String()+"/activation",
		"",
		SetActivationRequestDTO{Activated: &deactivate},
		http.StatusOK,
		nil,
	)

	reloaded, err := GetPrincipalService().GetByID(principal.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.False(t, reloaded.Activated)

	activate := true
	test_utils.MakePostRequestAndUnmarshal(
		t,
		router,
		"/api/v1/users/"+principal.ID.String()+"/activation",
		"",
		SetActivationRequestDTO{Activated: &activate},
		http.StatusOK,
		nil,
	)

	reloaded, err = GetPrincipalService().GetByID(principal.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded)
	assert.True(t, reloaded.Activated)
}

func Test_SetActivation_WhenUserDoesNotExist_ReturnsNotFound(t *testing.T) {
	router := createPrincipalTestRouter()

	activate := true
	w := test_utils.MakeAPIRequest(
		router,
		"POST",
		"/api/v1/users/"+uuid.New().String()+"/activation",
		"",
		SetActivationRequestDTO{Activated: &activate},
	)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// ConsumeRegistrationToken Tests

func Test_ConsumeRegistrationToken_SecondUse_IsRejected(t *testing.T) {
	principal, token := CreateTestPrincipal(true)

	consumed, err := GetPrincipalService().ConsumeRegistrationToken(principal.Email, token)
	require.NoError(t, err)
	require.Equal(t, principal.ID, consumed.ID)

	_, err = GetPrincipalService().ConsumeRegistrationToken(principal.Email, token)
	assert.ErrorIs(t, err, ErrInvalidRegistrationToken)
}

func Test_ConsumeRegistrationToken_WithWrongToken_IsRejected(t *testing.T) {
	principal, _ := CreateTestPrincipal(true)

	_, err := GetPrincipalService().ConsumeRegistrationToken(principal.Email, "not-the-token")
	assert.ErrorIs(t, err, ErrInvalidRegistrationToken)
}

func Test_ConsumeRegistrationToken_WithUnknownEmail_IsRejected(t *testing.T) {
	_, err := GetPrincipalService().ConsumeRegistrationToken("nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidRegistrationToken)
}
