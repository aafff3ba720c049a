package middleware

import (
	"os"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/pmatchdesk/go-cabinet-sync/internal/common/log"
)

// Context seeds the request context with a correlation id and the
// serving host so every downstream log line carries them.
func (m *AppMiddleware) Context() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			cid := req.Header.Get("X-Correlation-ID")
			if cid == "" {
				cid = uuid.NewString()
			}

			host, _ := os.Hostname()

			ctx := log.SetCorrelationId(req.Context(), cid)
			ctx = log.SetHost(ctx, host)

			c.SetRequest(req.WithContext(ctx))
			c.Response().Header().Set("X-Correlation-ID", cid)

			return next(c)
		}
	}
}
