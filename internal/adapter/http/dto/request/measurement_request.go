package request

import (
	"encoding/json"
	"strings"

	"ges_rdo/internal/usecase"
)

type MeasurementCreateRequest struct {
	UserID      string  `json:"usuario_id" binding:"required"`
	ProjectID   string  `json:"projeto_id" binding:"required"`
	PeriodStart string  `json:"inicio" binding:"required"`
	PeriodEnd   string  `json:"fim" binding:"required"`
	Factor      float64 `json:"fator"`
	Deductions  float64 `json:"deducoes"`
}

func (r MeasurementCreateRequest) ToCommand() usecase.MeasurementCommand {
	return usecase.MeasurementCommand{
		UserID:      strings.TrimSpace(r.UserID),
		ProjectID:   strings.TrimSpace(r.ProjectID),
		PeriodStart: strings.TrimSpace(r.PeriodStart),
		PeriodEnd:   strings.TrimSpace(r.PeriodEnd),
		Factor:      r.Factor,
		Deductions:  r.Deductions,
	}
}

// MeasurementInvoiceRequest carries the gateway payload for the "fatura
// medição" route.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago
// schemas.

type MeasurementInvoiceRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
