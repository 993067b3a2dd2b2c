//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"washdesk/internal/handler/dto/request"
	"washdesk/internal/handler/dto/response"
	"washdesk/tests/common/dbtest"
	"washdesk/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res response.LoginResponse
	err := httptest.DecodeResponseBody(t, w.Body, &res)
	require.NoError(t, err)
	require.NotEmpty(t, res.AccessToken, "access token missing from login response")

	return res.AccessToken
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, role)
	return LoginUser(t, router, email, "password123")
}
