package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	commonhttp "github.com/pmatchdesk/go-cabinet-sync/internal/common/http"
)

func (m *AppMiddleware) InternalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		secretKey := c.Request().Header.Get("X-Secret-Key")
		statusCode := http.StatusUnauthorized
		if secretKey == "" {
			return commonhttp.RestErrorResponse(c, statusCode, fmt.Errorf("%s", "required secret key"))
		}

		if secretKey != m.conf.SecretKey {
			return commonhttp.RestErrorResponse(c, statusCode, fmt.Errorf("%s", "invalid secret key"))
		}

		return next(c)
	}
}
