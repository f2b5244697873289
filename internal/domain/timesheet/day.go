package timesheet

import (
	"time"

	"ges_rdo/internal/domain/entities"
)

// fixedHolidays are the national holidays observed by the timesheet, keyed by
// "DD-MM" (year-independent).
var fixedHolidays = map[string]struct{}{
	"01-01": {}, // Confraternização Universal
	"21-04": {}, // Tiradentes
	"01-05": {}, // Dia do Trabalho
	"07-09": {}, // Independência
	"12-10": {}, // Nossa Senhora Aparecida
	"02-11": {}, // Finados
	"15-11": {}, // Proclamação da República
	"25-12": {}, // Natal
}

// IsHoliday reports whether date falls on a fixed national holiday.
func IsHoliday(date time.Time) bool {
	_, ok := fixedHolidays[date.Format("02-01")]
	return ok
}

// ProjectResolver looks up the project configuration referenced by a report.
// A nil resolver, or a miss, falls back to the 8h default.
type ProjectResolver func(projectID string) (entities.Project, bool)

// DaySummary is one calendar day of the ficha técnica. All hour fields are
// decimal hours carried at full precision; rounding is a presentation concern.
//
// GrossTotal is the wall-clock span between the day's earliest start and
// latest end. WorkedTotal is the sum of individual entry durations; the two
// differ when the day has gaps. The span drives the rest deduction and the
// payable total, the sum drives the regular/overtime split.
type DaySummary struct {
	Date    string `json:"data"` // YYYY-MM-DD
	Start   string `json:"inicio"`
	End     string `json:"termino"`
	HasWork bool   `json:"tem_trabalho"`

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

	IsSaturday bool `json:"eh_sabado"`
	IsSunday   bool `json:"eh_domingo"`
	IsHoliday  bool `json:"eh_feriado"`
}

// SummarizeDay aggregates every entry of every report submitted for one
// calendar date. Reports whose Date does not match are ignored, so callers may
// pass an unfiltered slice. A day with no usable entries returns a zero-valued
// summary with only the weekend/holiday flags set.
//
// The rest deduction is one hour once the gross span reaches six hours. The
// weekend/holiday credits each receive the full payable total independently; a
// holiday falling on a Sunday contributes to both fields.
func SummarizeDay(date time.Time, reports []entities.RDO, resolve ProjectResolver) DaySummary {
	day := DaySummary{
		Date:       date.Format("2006-01-02"),
		IsSaturday: date.Weekday() == time.Saturday,
		IsSunday:   date.Weekday() == time.Sunday,
		IsHoliday:  IsHoliday(date),
	}

	var entries []entities.TimeEntry
	normalPerDay := float64(entities.DefaultNormalHoursPerDay)
	resolved := false
	for _, r := range reports {
		if r.Date != day.Date {
			continue
		}
		if !resolved && resolve != nil {
			// With several projects in one day, the first report's project
			// sets the day's regular-hours threshold.
			if p, ok := resolve(r.ProjectID); ok && p.NormalHoursPerDay > 0 {
				normalPerDay = p.NormalHoursPerDay
				resolved = true
			}
		}
		for _, e := range r.Entries {
			// Malformed times would corrupt the lexicographic span min/max,
			// so they are dropped here instead of merely contributing zero.
			if _, _, ok := normalizedInterval(e.StartTime, e.EndTime); ok {
				entries = append(entries, e)
			}
		}
	}
	if len(entries) == 0 {
		return day
	}
	day.HasWork = true

	// Lexicographic min/max is valid on fixed-width zero-padded "HH:MM".
	day.Start = entries[0].StartTime
	day.End = entries[0].EndTime
	for _, e := range entries[1:] {
		if e.StartTime < day.Start {
			day.Start = e.StartTime
		}
		if e.EndTime > day.End {
			day.End = e.EndTime
		}
	}
	day.GrossTotal = Duration(entities.TimeEntry{StartTime: day.Start, EndTime: day.End})

	for _, e := range entries {
		d := Duration(e)
		day.WorkedTotal += d
		day.NightHours += NightOverlap(e)

		switch e.Activity {
		case ActivityTravel:
			day.TravelHours += d
		case "Treinamento":
			day.TrainingHours += d
		case "Teste Supervisão", "Teste Controle", "Teste Proteção", "Teste Funcional":
			day.StudyHours += d
		case "Parametrização", "Problemas de Plataforma", "PLATAFORMA":
			day.PlatformHours += d
		default:
			day.FieldHours += d
		}
	}

	if day.GrossTotal >= 6 {
		day.RestDeduction = 1
	}
	day.TotalWithoutTravel = day.GrossTotal - day.TravelHours - day.RestDeduction
	if day.TotalWithoutTravel < 0 {
		day.TotalWithoutTravel = 0
	}
	day.PayableTotal = day.TotalWithoutTravel + day.TravelHours
	day.RegularHours, day.OvertimeHours = SplitRegularOvertime(day.WorkedTotal, normalPerDay)

	if day.IsSaturday {
		day.SaturdayHours = day.PayableTotal
	}
	if day.IsSunday {
		day.SundayHours = day.PayableTotal
	}
	if day.IsHoliday {
		day.HolidayHours = day.PayableTotal
	}
	return day
}
