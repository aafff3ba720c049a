package syncorder

import (
	"errors"
	nethttp "net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pmatchdesk/go-cabinet-sync/internal/common/http"
	"github.com/pmatchdesk/go-cabinet-sync/internal/common/validation"
	"github.com/pmatchdesk/go-cabinet-sync/internal/models"
	"github.com/pmatchdesk/go-cabinet-sync/internal/services"
)

type syncOrderHandler struct {
	syncSvc services.SyncService
}

// New sync order handler will initialize the sync-orders/ resources endpoint
func New(app *echo.Group, syncSvc services.SyncService) {
	handler := syncOrderHandler{syncSvc}
	orders := app.Group("/sync-orders")
	orders.POST("", handler.createSyncOrder)
	orders.GET("", handler.getListSyncOrders)
	orders.GET("/:id", handler.getSyncOrder)
}

// createSyncOrder API registers an asynchronous sync order
// @Summary Create sync order
// @Description Create a sync order for one cabinet or "all"; processed asynchronously
// @Tags SyncOrder
// @Accept  json
// @Produce  json
// @Param 	payload body models.CreateSyncOrderRequest true "A JSON object containing create sync order payload"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 202 {object} models.CreateSyncOrderResponse "Response indicates that the order was accepted for processing"
// @Failure 404 {object} http.RestErrorResponseModel "Cabinet not found"
// @Failure 409 {object} http.RestErrorResponseModel "An identical order was requested moments ago"
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse} "Validation error"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error"
// @Router /v1/sync-orders [post]
func (h *syncOrderHandler) createSyncOrder(c echo.Context) error {
	req := new(models.CreateSyncOrderRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	output, err := h.syncSvc.CreateOrder(c.Request().Context(), *req)
	if err != nil {
		var detail models.ErrorDetail
		if errors.As(err, &detail) {
			return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
		}
		return http.HandleRepositoryError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusAccepted, output)
}

// getListSyncOrders API lists sync orders with cursor pagination
// @Summary Get list of sync orders
// @Description Get list of sync orders, filterable by status and cabinetId
// @Tags SyncOrder
// @Accept  json
// @Produce  json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 200 {object} http.RestPaginationResponseModel[[]models.SyncOrderResponse] "Response indicates that the request succeeded"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error"
// @Router /v1/sync-orders [get]
func (h *syncOrderHandler) getListSyncOrders(c echo.Context) error {
	var queryFilter models.DoGetListSyncOrdersRequest
	if err := c.Bind(&queryFilter); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	opts, err := queryFilter.ToFilterOpts()
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	orders, total, err := h.syncSvc.GetListOrders(c.Request().Context(), *opts)
	if err != nil {
		return http.HandleRepositoryError(c, err)
	}

	return http.RestSuccessResponseCursorPagination[models.SyncOrderResponse](c, orders, opts.Limit, total)
}

// getSyncOrder API fetches one sync order with its processed map
// @Summary Get sync order by id
// @Description Get one sync order including the per-cabinet processed map, for progress polling
// @Tags SyncOrder
// @Accept  json
// @Produce  json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 200 {object} models.SyncOrderResponse "Response indicates that the request succeeded"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error"
// @Failure 404 {object} http.RestErrorResponseModel "Sync order not found"
// @Router /v1/sync-orders/:id [get]
func (h *syncOrderHandler) getSyncOrder(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	order, err := h.syncSvc.GetOrder(c.Request().Context(), id)
	if err != nil {
		return http.HandleRepositoryError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, order.ToModelResponse())
}
