package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pmatchdesk/go-cabinet-sync/internal/common"
)

// HandleRepositoryError handles common repository errors
func HandleRepositoryError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, common.ErrSyncOrderNotPending),
		errors.Is(err, common.ErrSyncOrderTerminal),
		errors.Is(err, common.ErrSyncOrderDuplicate):
		return RestErrorResponse(c, http.StatusConflict, err)
	case strings.Contains(err.Error(), "not found"):
		return RestErrorResponse(c, http.StatusNotFound, err)
	}

	return RestErrorResponse(c, http.StatusInternalServerError, err)
}
