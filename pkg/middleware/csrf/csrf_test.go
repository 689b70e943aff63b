package csrf

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer() *echo.Echo {
	e := echo.New()
	e.Use(Middleware(DefaultConfig()))
	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	e.GET("/tables", ok)
	e.POST("/tables", ok)
	return e
}

func do(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestMiddleware_HeaderCredentialsSkip(t *testing.T) {
	e := newServer()

	req := httptest.NewRequest(http.MethodPost, "/tables", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer token")
	rec := do(e, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-CSRF-Token"))
}

func TestMiddleware_CookieSession(t *testing.T) {
	e := newServer()
	session := &http.Cookie{Name: "accessToken", Value: "jwt"}

	req := httptest.NewRequest(http.MethodGet, "/tables", nil)
	req.AddCookie(session)
	rec := do(e, req)
	require.Equal(t, http.StatusOK, rec.Code)
	token := rec.Header().Get("X-CSRF-Token")
	require.NotEmpty(t, token)

	post := func(header, origin string) int {
		req := httptest.NewRequest(http.MethodPost, "/tables", nil)
		req.AddCookie(session)
		req.AddCookie(&http.Cookie{Name: "XSRF-TOKEN", Value: token})
		if header != "" {
			req.Header.Set("X-CSRF-Token", header)
		}
		if origin != "" {
			req.Header.Set("Origin", origin)
		}
		return do(e, req).Code
	}

	assert.Equal(t, http.StatusOK, post(token, "http://example.com"))
	assert.Equal(t, http.StatusForbidden, post("", "http://example.com"))
	assert.Equal(t, http.StatusForbidden, post("forged", "http://example.com"))
	assert.Equal(t, http.StatusForbidden, post(token, "http://evil.test"))
	assert.Equal(t, http.StatusForbidden, post(token, ""))
}
