package test_utils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"deskstore/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// MakeAPIRequest performs a request against an in-process router. When
// apiKey is non-empty it is sent in the configured credential header.
func MakeAPIRequest(router *gin.Engine, method, url, apiKey string, body any) *httptest.ResponseRecorder {
	var requestBody *bytes.Buffer
	if body != nil {
		bodyJSON, err := json.Marshal(body)
		if err != nil {
			panic(err)
		}
		requestBody = bytes.NewBuffer(bodyJSON)
	} else {
		requestBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, url, requestBody)
	if err != nil {
		panic(err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if apiKey != "" {
		req.Header.Set(config.GetEnv().APIKeyHeader, apiKey)
	}
	req.Header.Set("User-Agent", "deskstore-tests")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func MakePostRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url string,
	apiKey string,
	request any,
	expectedStatus int,
	response any,
) {
	t.Helper()

	w := MakeAPIRequest(router, "POST", url, apiKey, request)
	require.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	if response != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), response))
	}
}

func MakeGetRequestAndUnmarshal(
	t *testing.T,
	router *gin.Engine,
	url string,
	apiKey string,
	expectedStatus int,
	response any,
) {
	t.Helper()

	w := MakeAPIRequest(router, "GET", url, apiKey, nil)
	require.Equal(t, expectedStatus, w.Code, "unexpected status, body: %s", w.Body.String())

	if response != nil {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), response))
	}
}
