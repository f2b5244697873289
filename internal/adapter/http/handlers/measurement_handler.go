package handlers

import (
	"encoding/json"
	"errors"
	request "ges_rdo/internal/adapter/http/dto/request"
	response "ges_rdo/internal/adapter/http/dto/response"
	"ges_rdo/internal/usecase"
	"ges_rdo/pkg"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidMeasurementPayload = pkg.NewDomainErrorSimple("INVALID_MEASUREMENT_INPUT", "Invalid measurement payload", http.StatusBadRequest)
)

// MeasurementHandler handles HTTP requests for medições.

type MeasurementHandler struct {
	usecase usecase.IMeasurementUseCase
}

func NewMeasurementHandler(uc usecase.IMeasurementUseCase) *MeasurementHandler {
	return &MeasurementHandler{usecase: uc}
}

func (h *MeasurementHandler) CreateMeasurement(c *gin.Context) {
	var payload request.MeasurementCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMeasurementPayload.HTTPStatus, errInvalidMeasurementPayload.ToHTTPError())
		return
	}

	measurement, err := h.usecase.Create(c.Request.Context(), payload.ToCommand())
	if err != nil {
		appErr := mapMeasurementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromMeasurement(measurement))
}

// InvoiceMeasurement charges a pending medição through the payment gateway
// using the measurement id in path.
func (h *MeasurementHandler) InvoiceMeasurement(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[medicao][handler] invoice start measurement_id=%s", id)
	mockMode := isPaymentGatewayMockEnabled()
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if mockMode {
			log.Printf("[medicao][handler] payload invalid in mock mode; fallback to empty payload measurement_id=%s err=%v", id, err)
			mpPayload = json.RawMessage("{}")
		} else {
			log.Printf("[medicao][handler] invalid payload measurement_id=%s err=%v", id, err)
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	invoiced, err := h.usecase.Invoice(c.Request.Context(), id, mpPayload)
	if err != nil {
		log.Printf("[medicao][handler] invoice failed measurement_id=%s err=%v", id, err)
		appErr := mapMeasurementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[medicao][handler] invoice success measurement_id=%s payment_id=%s status=%s", id, invoiced.PaymentID, invoiced.Status)

	c.JSON(http.StatusOK, response.FromMeasurement(invoiced))
}

func (h *MeasurementHandler) GetMeasurementByID(c *gin.Context) {
	measurement, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapMeasurementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMeasurement(measurement))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapMeasurementError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMeasurementID),
		errors.Is(err, usecase.ErrInvalidUserID),
		errors.Is(err, usecase.ErrInvalidProjectID),
		errors.Is(err, usecase.ErrInvalidRange),
		errors.Is(err, usecase.ErrInvalidMeasurementPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMeasurementNotFound):
		return pkg.NewDomainErrorSimple("MEASUREMENT_NOT_FOUND", "Measurement not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMeasurementAlreadyInvoiced):
		return pkg.NewDomainErrorSimple("MEASUREMENT_ALREADY_INVOICED", "Measurement already invoiced", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGatewayUnavailable):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
