package response

import (
	"time"

	"ges_rdo/internal/domain/entities"
)

type ProjectResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"nome"`
	Client            string    `json:"cliente,omitempty"`
	NormalHoursPerDay float64   `json:"horas_normais"`
	HourlyRate        float64   `json:"valor_hora"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func FromProject(p entities.Project) ProjectResponse {
	return ProjectResponse{
		ID:                p.ID,
		Name:              p.Name,
		Client:            p.Client,
		NormalHoursPerDay: p.NormalHoursPerDay,
		HourlyRate:        p.HourlyRate,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
}

func FromProjects(ps []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromProject(p))
	}
	return out
}
