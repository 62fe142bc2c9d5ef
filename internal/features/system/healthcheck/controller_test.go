package system_healthcheck

import (
	"net/http"
	"testing"

	test_utils "deskstore/internal/util/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_GetHealth_WhenDependenciesAvailable_ReturnsOk(t *testing.T) {
	router := test_utils.CreateTestRouter(GetHealthcheckController())

	var response map[string]any
	test_utils.MakeGetRequestAndUnmarshal(
		t, router, "/api/v1/health", "", http.StatusOK, &response)

	require.Equal(t, "ok", response["status"])
	assert.Contains(t, response, "resources")
}
