package timesheet

import (
	"time"

	"ges_rdo/internal/domain/entities"
)

// MonthTotals is the fold of every DaySummary in the target range.
type MonthTotals struct {
	GrossTotal         float64 `json:"total_bruto"`
	WorkedTotal        float64 `json:"total_trabalhado"`
	TravelHours        float64 `json:"deslocamento"`
	NightHours         float64 `json:"hh_noturno"`
	RestDeduction      float64 `json:"descanso"`
	TotalWithoutTravel float64 `json:"total_sem_desloc"`
	PayableTotal       float64 `json:"total_pago"`
	RegularHours       float64 `json:"horas_normais"`
	OvertimeHours      float64 `json:"horas_extras"`

	TrainingHours float64 `json:"hh_treinamento"`
	StudyHours    float64 `json:"hh_estudos"`
	PlatformHours float64 `json:"hh_plataforma"`
	FieldHours    float64 `json:"hh_campo"`

	SaturdayHours float64 `json:"sabado"`
	SundayHours   float64 `json:"domingo"`
	HolidayHours  float64 `json:"feriado"`
}

// AdminSummary carries the three presentation-ready figures of the resumo ADM.
// The 50%/100% multipliers themselves are applied downstream; only the hour
// totals are computed here.
type AdminSummary struct {
	WeeklyPremium50   float64 `json:"horas_semanais_50"`
	HolidayPremium100 float64 `json:"domingo_feriado_100"`
	NightPremium      float64 `json:"adicional_noturno"`
}

func (t *MonthTotals) add(d DaySummary) {
	t.GrossTotal += d.GrossTotal
	t.WorkedTotal += d.WorkedTotal
	t.TravelHours += d.TravelHours
	t.NightHours += d.NightHours
	t.RestDeduction += d.RestDeduction
	t.TotalWithoutTravel += d.TotalWithoutTravel
	t.PayableTotal += d.PayableTotal
	t.RegularHours += d.RegularHours
	t.OvertimeHours += d.OvertimeHours
	t.TrainingHours += d.TrainingHours
	t.StudyHours += d.StudyHours
	t.PlatformHours += d.PlatformHours
	t.FieldHours += d.FieldHours
	t.SaturdayHours += d.SaturdayHours
	t.SundayHours += d.SundayHours
	t.HolidayHours += d.HolidayHours
}

// MonthRange returns the first and last day of a calendar month.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

// SummarizeRange enumerates every calendar date from start through end in
// ascending order and summarizes each one. Days with no reports appear as
// zero-valued rows. A range where end precedes start yields an empty result.
func SummarizeRange(start, end time.Time, reports []entities.RDO, resolve ProjectResolver) ([]DaySummary, MonthTotals) {
	start = time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)

	var days []DaySummary
	var totals MonthTotals
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		day := SummarizeDay(d, reports, resolve)
		days = append(days, day)
		totals.add(day)
	}
	return days, totals
}

// SummarizeMonth produces the ficha técnica rows and totals for one calendar
// month: exactly as many rows as the month has days.
func SummarizeMonth(year int, month time.Month, reports []entities.RDO, resolve ProjectResolver) ([]DaySummary, MonthTotals) {
	start, end := MonthRange(year, month)
	return SummarizeRange(start, end, reports, resolve)
}

// DeriveAdminSummary turns month totals into the resumo ADM figures:
// weekly/50% hours are paid hours plus rest deductions, Sunday/holiday hours
// attract the 100% premium, and night hours the night premium. Saturday hours
// are reported on the ficha but do not enter the 100% figure.
func DeriveAdminSummary(t MonthTotals) AdminSummary {
	return AdminSummary{
		WeeklyPremium50:   t.PayableTotal + t.RestDeduction,
		HolidayPremium100: t.SundayHours + t.HolidayHours,
		NightPremium:      t.NightHours,
	}
}
