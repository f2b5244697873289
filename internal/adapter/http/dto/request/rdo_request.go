package request

import (
	"strings"

	"ges_rdo/internal/domain/entities"
	"ges_rdo/internal/usecase"
)

type TimeEntryRequest struct {
	StartTime string `json:"hora_inicio" binding:"required"`
	EndTime   string `json:"hora_fim" binding:"required"`
	Title     string `json:"titulo"`
	Activity  string `json:"atividade" binding:"required"`
}

// RDORequest is the submission payload for the daily report routes. Field
// names follow the RDO form the field teams already fill in, so the mobile
// client can post it unchanged.
type RDORequest struct {
	UserID           string             `json:"usuario_id" binding:"required"`
	UserName         string             `json:"usuario_nome"`
	Date             string             `json:"data" binding:"required"`
	ProjectID        string             `json:"projeto_id" binding:"required"`
	ServiceNature    string             `json:"natureza_servico"`
	DailyDescription string             `json:"descricao_diaria"`
	Entries          []TimeEntryRequest `json:"horarios"`
}

func (r RDORequest) ToCommand() usecase.RDOCommand {
	entries := make([]entities.TimeEntry, 0, len(r.Entries))
	for _, e := range r.Entries {
		entries = append(entries, entities.TimeEntry{
			StartTime: strings.TrimSpace(e.StartTime),
			EndTime:   strings.TrimSpace(e.EndTime),
			Title:     strings.TrimSpace(e.Title),
			Activity:  strings.TrimSpace(e.Activity),
		})
	}
	return usecase.RDOCommand{
		UserID:           r.UserID,
		UserName:         r.UserName,
		Date:             strings.TrimSpace(r.Date),
		ProjectID:        r.ProjectID,
		ServiceNature:    strings.TrimSpace(r.ServiceNature),
		DailyDescription: strings.TrimSpace(r.DailyDescription),
		Entries:          entries,
	}
}
