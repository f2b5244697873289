package response

import (
	"encoding/json"
	"time"

	"ges_rdo/internal/domain/entities"
)

type MeasurementResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"usuario_id"`
	ProjectID   string    `json:"projeto_id"`
	PeriodStart string    `json:"inicio"`
	PeriodEnd   string    `json:"fim"`
	TotalHours  float64   `json:"horas_totais"`
	HourlyRate  float64   `json:"valor_hora"`
	Factor      float64   `json:"fator"`
	Deductions  float64   `json:"deducoes"`
	GrossAmount float64   `json:"valor_bruto"`
	FinalAmount float64   `json:"valor_final"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	PaymentID  string                 `json:"payment_id,omitempty"`
	PaymentRaw json.RawMessage        `json:"payment_raw,omitempty"`
	Payment    map[string]interface{} `json:"payment,omitempty"`
}

func FromMeasurement(m entities.Measurement) MeasurementResponse {
	resp := MeasurementResponse{
		ID:          m.ID,
		UserID:      m.UserID,
		ProjectID:   m.ProjectID,
		PeriodStart: m.PeriodStart,
		PeriodEnd:   m.PeriodEnd,
		TotalHours:  m.TotalHours,
		HourlyRate:  m.HourlyRate,
		Factor:      m.Factor,
		Deductions:  m.Deductions,
		GrossAmount: m.GrossAmount,
		FinalAmount: m.FinalAmount,
		Status:      string(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		PaymentID:   m.PaymentID,
		PaymentRaw:  m.PaymentRaw,
	}
	if len(m.PaymentRaw) > 0 {
		var parsed map[string]interface{}
		if err := json.Unmarshal(m.PaymentRaw, &parsed); err == nil {
			resp.Payment = parsed
		}
	}
	return resp
}
