package entities

import "time"

// TimeEntry is one worked interval inside an RDO.
//
// Times are wall-clock "HH:MM" strings with no date component. An end time
// numerically before the start means the interval crosses midnight. Empty or
// malformed times make the entry contribute zero hours (the engine never
// rejects a report because of one bad entry).

type TimeEntry struct {
	StartTime string `json:"hora_inicio"`
	EndTime   string `json:"hora_fim"`
	Title     string `json:"titulo"`
	Activity  string `json:"atividade"`
}

// RDO is the daily work report (Relatório Diário de Obra) for one user, one
// date and one project. Several RDOs may exist for the same user+date when the
// user worked on more than one project that day.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (usuario_id-index): usuario_id
//
// The hour summary columns (horas_extras, horas_noturnas,
// horas_normais_por_dia) are derived from the entries at save time so that
// listing screens do not have to recompute them.

type RDO struct {
	ID               string      `json:"id"`
	UserID           string      `json:"usuario_id"`
	UserName         string      `json:"usuario_nome"`
	Date             string      `json:"data"` // YYYY-MM-DD
	ProjectID        string      `json:"projeto_id"`
	ProjectName      string      `json:"projeto_nome"`
	ProjectClient    string      `json:"projeto_cliente"`
	ServiceNature    string      `json:"natureza_servico"`
	DailyDescription string      `json:"descricao_diaria"`
	Entries          []TimeEntry `json:"horarios"`

	OvertimeHours     float64 `json:"horas_extras"`
	NightHours        float64 `json:"horas_noturnas"`
	NormalHoursPerDay float64 `json:"horas_normais_por_dia"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
