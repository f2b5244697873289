package handlers

import (
	"errors"
	request "ges_rdo/internal/adapter/http/dto/request"
	response "ges_rdo/internal/adapter/http/dto/response"
	"ges_rdo/internal/usecase"
	"ges_rdo/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRDOPayload = pkg.NewDomainErrorSimple("INVALID_RDO_INPUT", "Invalid RDO payload", http.StatusBadRequest)
)

// RDOHandler handles HTTP requests for daily work reports.

type RDOHandler struct {
	usecase usecase.IRDOUseCase
}

func NewRDOHandler(uc usecase.IRDOUseCase) *RDOHandler {
	return &RDOHandler{usecase: uc}
}

func (h *RDOHandler) CreateRDO(c *gin.Context) {
	var payload request.RDORequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRDOPayload.HTTPStatus, errInvalidRDOPayload.ToHTTPError())
		return
	}

	rdo, err := h.usecase.Create(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapRDOError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRDO(rdo))
}

func (h *RDOHandler) UpdateRDO(c *gin.Context) {
	var payload request.RDORequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRDOPayload.HTTPStatus, errInvalidRDOPayload.ToHTTPError())
		return
	}

	rdo, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToCommand())
	if err != nil {
		appErr := mapRDOError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRDO(rdo))
}

func (h *RDOHandler) DeleteRDO(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapRDOError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RDOHandler) GetRDOByID(c *gin.Context) {
	rdo, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRDOError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRDO(rdo))
}

// ListRDOsByUser lists one user's reports, optionally bounded by the `inicio`
// and `fim` query parameters (inclusive, YYYY-MM-DD).
func (h *RDOHandler) ListRDOsByUser(c *gin.Context) {
	rdos, err := h.usecase.ListByUser(c.Request.Context(), c.Param("usuario_id"), c.Query("inicio"), c.Query("fim"))
	if err != nil {
		appErr := mapRDOError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRDOs(rdos))
}

func mapRDOError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRDOID),
		errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidProjectID),
		errors.Is(err, usecase.ErrInvalidRDODate):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRDONotFound):
		return pkg.NewDomainErrorSimple("RDO_NOT_FOUND", "RDO not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
