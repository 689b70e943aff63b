package httpserver

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/Skotchmaster/kitchenpos/internal/events"
	"github.com/Skotchmaster/kitchenpos/internal/qrcode"
	"github.com/Skotchmaster/kitchenpos/internal/repo"
	"github.com/Skotchmaster/kitchenpos/internal/repo/repotest"
	"github.com/Skotchmaster/kitchenpos/internal/service"
	"github.com/Skotchmaster/kitchenpos/pkg/tokens"
)

var testSecret = []byte("test-jwt-secret")

type testEnv struct {
	T       *testing.T
	E       *echo.Echo
	Repo    *repo.GormRepo
	Catalog *CatalogHTTP
	Tables  *TableHTTP
	Orders  *OrderHTTP
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	r := repotest.NewRepo(t)
	pub := events.NopPublisher{}

	env := &testEnv{
		T:    t,
		E:    echo.New(),
		Repo: r,
		Catalog: &CatalogHTTP{
			Products:   service.NewProductService(r),
			MenuGroups: service.NewMenuGroupService(r),
			Menus:      service.NewMenuService(r),
		},
		Tables: &TableHTTP{
			Tables: service.NewTableService(r),
			Groups: service.NewTableGroupService(r, pub),
			QR:     qrcode.NewTableGenerator("https://pos.example.com"),
		},
		Orders: &OrderHTTP{Svc: service.NewOrderService(r, pub)},
	}

	Register(env.E, &Deps{
		CatalogHandler: env.Catalog,
		TableHandler:   env.Tables,
		OrderHandler:   env.Orders,
		JWTSecret:      testSecret,
	})
	return env
}

func (env *testEnv) doJSONRequest(method, path string, body any) (*httptest.ResponseRecorder, echo.Context) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return rec, env.E.NewContext(req, rec)
}

// serve goes through the router, so guards and error mapping apply.
func (env *testEnv) serve(method, path, role string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(env.T, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if role != "" {
		tok, err := tokens.NewAccessToken("user-1", role, time.Now().Add(time.Minute), testSecret)
		require.NoError(env.T, err)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+tok)
	}
	rec := httptest.NewRecorder()
	env.E.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func httpCode(t *testing.T, err error) int {
	t.Helper()
	he, ok := err.(*echo.HTTPError)
	require.True(t, ok, "expected *echo.HTTPError, got %T: %v", err, err)
	return he.Code
}

func must(t *testing.T, rec *httptest.ResponseRecorder, code int) {
	t.Helper()
	require.Equal(t, code, rec.Code, rec.Body.String())
}

