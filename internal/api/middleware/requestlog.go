package middleware

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-ID"

// healthLogPaths are probe endpoints whose repeated successes are not
// re-logged. Failures on these paths are always logged at WARN.
var healthLogPaths = map[string]struct{}{
	"/healthz": {},
	"/readyz":  {},
}

// RequestLog returns Echo middleware that logs requests with structured fields.
// It generates a request ID if none is provided and propagates it through
// the response header and echo context. Successive successful probe requests
// log only once until the probe fails again. Suppression state lives in the
// returned closure, so install a single instance per router; two instances
// would each re-log the first probe success they see.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var mu sync.Mutex
	probeOK := make(map[string]bool)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set("request_id", reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			err := next(c)

			status := c.Response().Status
			path := c.Request().URL.Path
			fields := []any{
				"method", c.Request().Method,
				"path", path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
			}

			if _, probe := healthLogPaths[path]; probe {
				ok := status >= 200 && status < 300

				mu.Lock()
				suppress := ok && probeOK[path]
				probeOK[path] = ok
				mu.Unlock()

				if suppress {
					return err
				}
				if !ok {
					log.Warn("request", fields...)
					return err
				}
			}

			log.Info("request", fields...)

			return err
		}
	}
}
