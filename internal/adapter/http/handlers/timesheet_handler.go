package handlers

import (
	"errors"
	response "ges_rdo/internal/adapter/http/dto/response"
	"ges_rdo/internal/usecase"
	"ges_rdo/pkg"
	"net/http"

	"github.com/gin-gonic/gin"
)

// TimesheetHandler serves the ficha técnica views derived from the daily
// reports: the monthly grid the field teams print and the arbitrary-range
// view the admin screens use.

type TimesheetHandler struct {
	usecase usecase.ITimesheetUseCase
}

func NewTimesheetHandler(uc usecase.ITimesheetUseCase) *TimesheetHandler {
	return &TimesheetHandler{usecase: uc}
}

// GetMonthlyTimesheet returns the ficha for the "YYYY-MM" competência in path.
func (h *TimesheetHandler) GetMonthlyTimesheet(c *gin.Context) {
	sheet, err := h.usecase.MonthlyTimesheet(c.Request.Context(), c.Param("usuario_id"), c.Param("competencia"))
	if err != nil {
		appErr := mapTimesheetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTimesheet(sheet))
}

// GetRangeTimesheet returns the ficha for the inclusive `inicio`..`fim` query
// range (YYYY-MM-DD).
func (h *TimesheetHandler) GetRangeTimesheet(c *gin.Context) {
	sheet, err := h.usecase.RangeTimesheet(c.Request.Context(), c.Param("usuario_id"), c.Query("inicio"), c.Query("fim"))
	if err != nil {
		appErr := mapTimesheetError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTimesheet(sheet))
}

func mapTimesheetError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidMonth),
		errors.Is(err, usecase.ErrInvalidRange):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
