package transaction

import (
	nethttp "net/http"

	"github.com/labstack/echo/v4"

	"github.com/pmatchdesk/go-cabinet-sync/internal/common/http"
	"github.com/pmatchdesk/go-cabinet-sync/internal/models"
	"github.com/pmatchdesk/go-cabinet-sync/internal/services"
)

type transactionHandler struct {
	trxService services.TransactionService
}

// New transaction handler will initialize the transactions/ resources endpoint
func New(app *echo.Group, trxService services.TransactionService) {
	handler := transactionHandler{trxService}
	transactions := app.Group("/transactions")
	transactions.GET("", handler.getListTransactions)
}

// getListTransactions API lists ingested external transactions
// @Summary Get list of external transactions
// @Description Get list of external transactions with cursor pagination, filterable by cabinetId, externalId, wallet, status and date range
// @Tags Transaction
// @Accept  json
// @Produce  json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 200 {object} http.RestPaginationResponseModel[[]models.ExternalTransactionResponse] "Response indicates that the request succeeded"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error"
// @Router /v1/transactions [get]
func (h *transactionHandler) getListTransactions(c echo.Context) error {
	var queryFilter models.DoGetListExternalTransactionsRequest
	if err := c.Bind(&queryFilter); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	opts, err := queryFilter.ToFilterOpts()
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	transactions, total, err := h.trxService.GetList(c.Request().Context(), *opts)
	if err != nil {
		return http.HandleRepositoryError(c, err)
	}

	return http.RestSuccessResponseCursorPagination[models.ExternalTransactionResponse](c, transactions, opts.Limit, total)
}
