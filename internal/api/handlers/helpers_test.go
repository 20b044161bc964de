package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/okonkwoe/c2c-market/internal/api/handlers"
	mw "github.com/okonkwoe/c2c-market/internal/api/middleware"
	"github.com/okonkwoe/c2c-market/internal/store/mocks"
	domain "github.com/okonkwoe/c2c-market/pkg/types"
)

// newAPI builds a router with all handlers registered and every request
// attributed to the given caller, backed by a mock store.
func newAPI(t *testing.T, caller domain.Caller) (*echo.Echo, *mocks.MockStore) {
	t.Helper()

	ms := mocks.NewMockStore(t)

	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			mw.SetCaller(c, caller)
			return next(c)
		}
	})

	requireAuth := mw.RequireAuth()
	handlers.NewHealthHandler(ms).Register(e)
	handlers.NewItemHandler(ms).Register(e, requireAuth)
	handlers.NewUserHandler(ms).Register(e, requireAuth)
	handlers.NewProfileHandler(ms).Register(e, requireAuth)

	return e, ms
}

// doJSON performs a request with a JSON body against the router.
func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}
