package response

import (
	"ges_rdo/internal/domain/timesheet"
	"ges_rdo/internal/usecase"
)

// TimesheetResponse mirrors the printed ficha técnica: one row per calendar
// day, the totals footer and the resumo ADM block. The engine types already
// carry the form's column names, so they serialize directly.
type TimesheetResponse struct {
	UserID string                 `json:"usuario_id"`
	Start  string                 `json:"inicio"`
	End    string                 `json:"fim"`
	Days   []timesheet.DaySummary `json:"dias"`
	Totals timesheet.MonthTotals  `json:"totais"`
	Admin  timesheet.AdminSummary `json:"resumo_adm"`
}

func FromTimesheet(t usecase.Timesheet) TimesheetResponse {
	return TimesheetResponse{
		UserID: t.UserID,
		Start:  t.Start,
		End:    t.End,
		Days:   t.Days,
		Totals: t.Totals,
		Admin:  t.Admin,
	}
}
