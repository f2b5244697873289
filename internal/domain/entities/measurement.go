package entities

import (
	"encoding/json"
	"time"
)

// MeasurementStatus represents the billing lifecycle of a medição.

type MeasurementStatus string

const (
	MeasurementStatusPendente MeasurementStatus = "pendente"
	MeasurementStatusFaturada MeasurementStatus = "faturada"
)

// Measurement is a medição: the billable value of the hours one user worked on
// one project across a date range, at the project's hourly rate.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Amount breakdown:
//   - GrossAmount = TotalHours * HourlyRate
//   - NetAmount   = GrossAmount * Factor - Deductions
//   - FinalAmount = max(0, round(NetAmount))
//
// Payment payload:
//   - PaymentRaw keeps the gateway response body (JSON) for traceability.

type Measurement struct {
	ID          string            `json:"id"`
	UserID      string            `json:"usuario_id"`
	ProjectID   string            `json:"projeto_id"`
	PeriodStart string            `json:"inicio"` // YYYY-MM-DD
	PeriodEnd   string            `json:"fim"`    // YYYY-MM-DD
	TotalHours  float64           `json:"horas_totais"`
	HourlyRate  float64           `json:"valor_hora"`
	Factor      float64           `json:"fator"`
	Deductions  float64           `json:"deducoes"`
	GrossAmount float64           `json:"valor_bruto"`
	FinalAmount float64           `json:"valor_final"`
	Status      MeasurementStatus `json:"status"`

	PaymentID  string          `json:"payment_id,omitempty"`
	PaymentRaw json.RawMessage `json:"payment_raw,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
