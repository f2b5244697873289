package entities

import "time"

// DefaultNormalHoursPerDay is the daily regular-hours threshold applied when a
// report cannot be resolved to a project.
const DefaultNormalHoursPerDay = 8

// DefaultHourlyRate is the measurement rate applied when a project does not
// configure one.
const DefaultHourlyRate = 50

// Project is the configuration referenced by RDOs.
//
// Storage model (DynamoDB):
//   - PK: id

type Project struct {
	ID                string    `json:"id"`
	Name              string    `json:"nome"`
	Client            string    `json:"cliente"`
	NormalHoursPerDay float64   `json:"horas_normais"`
	HourlyRate        float64   `json:"valor_hora"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
