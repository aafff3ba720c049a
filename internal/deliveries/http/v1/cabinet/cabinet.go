package cabinet

import (
	nethttp "net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pmatchdesk/go-cabinet-sync/internal/common/http"
	"github.com/pmatchdesk/go-cabinet-sync/internal/common/validation"
	"github.com/pmatchdesk/go-cabinet-sync/internal/models"
	"github.com/pmatchdesk/go-cabinet-sync/internal/services"
)

type cabinetHandler struct {
	cabinetSvc services.CabinetService
}

// New cabinet handler will initialize the cabinets/ resources endpoint
func New(app *echo.Group, cabinetSvc services.CabinetService) {
	handler := cabinetHandler{cabinetSvc}
	cabinets := app.Group("/cabinets")
	cabinets.POST("", handler.createCabinet)
	cabinets.GET("", handler.getListCabinets)
	cabinets.GET("/:id", handler.getCabinet)
	cabinets.PUT("/:id", handler.updateCabinet)
	cabinets.DELETE("/:id", handler.deleteCabinet)
}

type DoDeleteCabinetResponse struct {
	Kind   string `json:"kind" example:"cabinet"`
	Status string `json:"status" example:"deleted"`
}

// createCabinet API registers a cabinet with its panel credentials
// @Summary Create cabinet
// @Description Create a cabinet holding external panel credentials
// @Tags Cabinet
// @Accept  json
// @Produce  json
// @Param 	payload body models.CreateCabinetRequest true "A JSON object containing create cabinet payload"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 201 {object} models.CabinetResponse "Response indicates that the request succeeded and the resources has been created"
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse} "Validation error"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error"
// @Router /v1/cabinets [post]
func (h *cabinetHandler) createCabinet(c echo.Context) error {
	req := new(models.CreateCabinetRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	created, err := h.cabinetSvc.Create(c.Request().Context(), *req)
	if err != nil {
		return http.HandleRepositoryError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusCreated, created.ToModelResponse())
}

// getListCabinets API lists cabinets with cursor pagination
// @Summary Get list of cabinets
// @Description Get list of cabinets, filterable by name
// @Tags Cabinet
// @Accept  json
// @Produce  json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 200 {object} http.RestPaginationResponseModel[[]models.CabinetResponse] "Response indicates that the request succeeded"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error"
// @Failure 500 {object} http.RestErrorResponseModel "Internal server error"
// @Router /v1/cabinets [get]
func (h *cabinetHandler) getListCabinets(c echo.Context) error {
	var queryFilter models.DoGetListCabinetsRequest
	if err := c.Bind(&queryFilter); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	opts, err := queryFilter.ToFilterOpts()
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	cabinets, total, err := h.cabinetSvc.GetList(c.Request().Context(), *opts)
	if err != nil {
		return http.HandleRepositoryError(c, err)
	}

	return http.RestSuccessResponseCursorPagination[models.CabinetResponse](c, cabinets, opts.Limit, total)
}

// getCabinet API fetches one cabinet by id
// @Summary Get cabinet by id
// @Description Get one cabinet by its id
// @Tags Cabinet
// @Accept  json
// @Produce  json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 200 {object} models.CabinetResponse "Response indicates that the request succeeded"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error"
// @Failure 404 {object} http.RestErrorResponseModel "Cabinet not found"
// @Router /v1/cabinets/:id [get]
func (h *cabinetHandler) getCabinet(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	cab, err := h.cabinetSvc.GetByID(c.Request().Context(), id)
	if err != nil {
		return http.HandleRepositoryError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, cab.ToModelResponse())
}

// updateCabinet API updates a cabinet's name or credentials
// @Summary Update cabinet
// @Description Update a cabinet; empty fields keep their current value
// @Tags Cabinet
// @Accept  json
// @Produce  json
// @Param 	payload body models.UpdateCabinetRequest true "A JSON object containing update cabinet payload"
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 200 {object} models.CabinetResponse "Response indicates that the request succeeded"
// @Failure 404 {object} http.RestErrorResponseModel "Cabinet not found"
// @Failure 422 {object} http.RestErrorValidationResponseModel{errors=[]validation.ErrorValidateResponse} "Validation error"
// @Router /v1/cabinets/:id [put]
func (h *cabinetHandler) updateCabinet(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	req := new(models.UpdateCabinetRequest)
	if err := c.Bind(req); err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := validation.ValidateStruct(req); err != nil {
		return http.RestErrorValidationResponse(c, err)
	}

	updated, err := h.cabinetSvc.Update(c.Request().Context(), id, *req)
	if err != nil {
		return http.HandleRepositoryError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, updated.ToModelResponse())
}

// deleteCabinet API removes a cabinet
// @Summary Delete cabinet
// @Description Delete one cabinet by its id
// @Tags Cabinet
// @Accept  json
// @Produce  json
// @Param	X-Secret-Key header string true "X-Secret-Key"
// @Success 200 {object} DoDeleteCabinetResponse "Response indicates that the request succeeded"
// @Failure 400 {object} http.RestErrorResponseModel "Bad request error"
// @Router /v1/cabinets/:id [delete]
func (h *cabinetHandler) deleteCabinet(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return http.RestErrorResponse(c, nethttp.StatusBadRequest, err)
	}

	if err := h.cabinetSvc.Delete(c.Request().Context(), id); err != nil {
		return http.HandleRepositoryError(c, err)
	}

	return http.RestSuccessResponse(c, nethttp.StatusOK, DoDeleteCabinetResponse{
		Kind:   "cabinet",
		Status: "deleted",
	})
}
