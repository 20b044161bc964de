package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/okonkwoe/c2c-market/internal/store"
	domain "github.com/okonkwoe/c2c-market/pkg/types"
)

// callerKey is the echo context key holding the resolved domain.Caller.
const callerKey = "caller"

// authScheme is the Authorization header scheme for opaque token keys.
const authScheme = "Token"

// Authenticate returns Echo middleware that resolves the bearer credential
// into a caller and stores it in the context. Requests without an
// Authorization header (or with a different scheme) proceed as anonymous;
// a presented token that does not resolve to a user is rejected outright
// so callers never silently degrade to anonymous with a bad credential.
func Authenticate(s store.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				c.Set(callerKey, domain.Anonymous())
				return next(c)
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[0] != authScheme {
				c.Set(callerKey, domain.Anonymous())
				return next(c)
			}

			user, err := s.GetUserByToken(c.Request().Context(), parts[1])
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "invalid token",
				})
			}
			if err != nil {
				return c.JSON(http.StatusInternalServerError, map[string]string{
					"error": "resolving credential: " + err.Error(),
				})
			}

			c.Set(callerKey, domain.Owner(user.ID))
			return next(c)
		}
	}
}

// RequireAuth returns Echo middleware that rejects anonymous callers with
// 401. It must run after Authenticate.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !CallerFrom(c).Authenticated() {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "authentication required",
				})
			}
			return next(c)
		}
	}
}

// CallerFrom extracts the caller placed in the context by Authenticate.
// Absent a resolved caller it returns the anonymous caller.
func CallerFrom(c echo.Context) domain.Caller {
	if caller, ok := c.Get(callerKey).(domain.Caller); ok {
		return caller
	}
	return domain.Anonymous()
}

// SetCaller stores a caller in the context. Exposed for handler tests that
// bypass the Authenticate middleware.
func SetCaller(c echo.Context, caller domain.Caller) {
	c.Set(callerKey, caller)
}
