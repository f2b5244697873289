package request

import (
	"strings"

	"ges_rdo/internal/usecase"
)

// ProjectRequest configures an obra: the daily threshold that splits normal
// from overtime hours and the rate used by the medição flow.
type ProjectRequest struct {
	Name              string  `json:"nome" binding:"required"`
	Client            string  `json:"cliente"`
	NormalHoursPerDay float64 `json:"horas_normais"`
	HourlyRate        float64 `json:"valor_hora"`
}

func (r ProjectRequest) ToCommand() usecase.ProjectCommand {
	return usecase.ProjectCommand{
		Name:              strings.TrimSpace(r.Name),
		Client:            strings.TrimSpace(r.Client),
		NormalHoursPerDay: r.NormalHoursPerDay,
		HourlyRate:        r.HourlyRate,
	}
}
