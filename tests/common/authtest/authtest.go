//go:build unit || e2e

package authtest

import (
	"encoding/json"
	"net/http"
	"testing"

	"bookswap/internal/handler/dto/request"
	"bookswap/tests/common/dbtest"
	"bookswap/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// RegisterUser creates an account through the API and returns its access token.
func RegisterUser(t *testing.T, router *gin.Engine, email, username, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/register",
		request.RegisterRequest{Email: email, Username: username, Password: password}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	return extractAccessToken(t, w.Body.Bytes())
}

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	return extractAccessToken(t, w.Body.Bytes())
}

// CreateAndLogin inserts a fixture user directly and logs in through the API.
func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, username string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, username)
	return LoginUser(t, router, email, dbtest.TestUserPassword)
}

func extractAccessToken(t *testing.T, body []byte) string {
	t.Helper()

	var payload struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(body, &payload))
	require.NotEmpty(t, payload.AccessToken, "Access token not found in response body")
	return payload.AccessToken
}
