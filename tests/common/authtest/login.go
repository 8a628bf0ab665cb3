//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"tenancy-service/internal/handler/dto/request"
	"tenancy-service/internal/pkg/cookie"
	"tenancy-service/tests/common/dbtest"
	"tenancy-service/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Session is a signed-in account as the API sees it.
type Session struct {
	UserID  uuid.UUID
	Token   string
	Cookies []*http.Cookie
}

func Login(t *testing.T, router *gin.Engine, email, password string) Session {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res struct {
		UserID uuid.UUID `json:"userId"`
	}
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &res)

	access := httptest.ExtractCookie(w, cookie.AccessTokenCookieName)
	require.NotNil(t, access, "access token cookie missing")
	require.NotEmpty(t, access.Value, "access token cookie is empty")

	return Session{UserID: res.UserID, Token: access.Value, Cookies: httptest.ExtractCookies(w)}
}

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()
	return Login(t, router, email, password).Token
}

// SignUp inserts an active account with the shared test password and logs it in.
func SignUp(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string) Session {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, role)
	return Login(t, router, email, "password123")
}
