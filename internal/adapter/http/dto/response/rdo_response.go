package response

import (
	"time"

	"ges_rdo/internal/domain/entities"
)

type TimeEntryResponse struct {
	StartTime string `json:"hora_inicio"`
	EndTime   string `json:"hora_fim"`
	Title     string `json:"titulo,omitempty"`
	Activity  string `json:"atividade"`
}

type RDOResponse struct {
	ID               string              `json:"id"`
	UserID           string              `json:"usuario_id"`
	UserName         string              `json:"usuario_nome,omitempty"`
	Date             string              `json:"data"`
	ProjectID        string              `json:"projeto_id"`
	ProjectName      string              `json:"projeto_nome,omitempty"`
	ProjectClient    string              `json:"projeto_cliente,omitempty"`
	ServiceNature    string              `json:"natureza_servico,omitempty"`
	DailyDescription string              `json:"descricao_diaria,omitempty"`
	Entries          []TimeEntryResponse `json:"horarios"`
	OvertimeHours    float64             `json:"horas_extras"`
	NightHours       float64             `json:"horas_noturnas"`
	NormalHours      float64             `json:"horas_normais_por_dia"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

func FromRDO(r entities.RDO) RDOResponse {
	entries := make([]TimeEntryResponse, 0, len(r.Entries))
	for _, e := range r.Entries {
		entries = append(entries, TimeEntryResponse(e))
	}
	return RDOResponse{
		ID:               r.ID,
		UserID:           r.UserID,
		UserName:         r.UserName,
		Date:             r.Date,
		ProjectID:        r.ProjectID,
		ProjectName:      r.ProjectName,
		ProjectClient:    r.ProjectClient,
		ServiceNature:    r.ServiceNature,
		DailyDescription: r.DailyDescription,
		Entries:          entries,
		OvertimeHours:    r.OvertimeHours,
		NightHours:       r.NightHours,
		NormalHours:      r.NormalHoursPerDay,
		CreatedAt:        r.CreatedAt,
		UpdatedAt:        r.UpdatedAt,
	}
}

func FromRDOs(rs []entities.RDO) []RDOResponse {
	out := make([]RDOResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromRDO(r))
	}
	return out
}
