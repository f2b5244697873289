package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"ges_rdo/internal/domain/entities"
	"ges_rdo/internal/domain/timesheet"
	"ges_rdo/internal/usecase/interfaces"
)

var (
	ErrInvalidMonth = errors.New("invalid month")
	ErrInvalidRange = errors.New("invalid date range")
)

// Timesheet is the ficha técnica for one user and one period: per-day rows for
// the month grid, the totals footer and the resumo ADM figures.
type Timesheet struct {
	UserID string                 `json:"usuario_id"`
	Start  string                 `json:"inicio"`
	End    string                 `json:"fim"`
	Days   []timesheet.DaySummary `json:"dias"`
	Totals timesheet.MonthTotals  `json:"totais"`
	Admin  timesheet.AdminSummary `json:"resumo_adm"`
}

// ITimesheetUseCase exposes the monthly ficha técnica and the admin range view.

type ITimesheetUseCase interface {
	MonthlyTimesheet(ctx context.Context, userID, yearMonth string) (Timesheet, error)
	RangeTimesheet(ctx context.Context, userID, start, end string) (Timesheet, error)
}

type TimesheetUseCase struct {
	rdoRepo     interfaces.IRDORepository
	projectRepo interfaces.IProjectRepository
}

var _ ITimesheetUseCase = (*TimesheetUseCase)(nil)

func NewTimesheetUseCase(rdoRepo interfaces.IRDORepository, projectRepo interfaces.IProjectRepository) *TimesheetUseCase {
	return &TimesheetUseCase{rdoRepo: rdoRepo, projectRepo: projectRepo}
}

// MonthlyTimesheet builds the ficha for a "YYYY-MM" month.
func (u *TimesheetUseCase) MonthlyTimesheet(ctx context.Context, userID, yearMonth string) (Timesheet, error) {
	month, err := time.Parse("2006-01", strings.TrimSpace(yearMonth))
	if err != nil {
		return Timesheet{}, ErrInvalidMonth
	}
	start, end := timesheet.MonthRange(month.Year(), month.Month())
	return u.build(ctx, userID, start, end)
}

// RangeTimesheet builds the ficha for an explicit inclusive date range, used
// by the admin and measurement flows. A range where end precedes start is
// valid and yields no rows.
func (u *TimesheetUseCase) RangeTimesheet(ctx context.Context, userID, start, end string) (Timesheet, error) {
	startDate, err := time.Parse("2006-01-02", strings.TrimSpace(start))
	if err != nil {
		return Timesheet{}, ErrInvalidRange
	}
	endDate, err := time.Parse("2006-01-02", strings.TrimSpace(end))
	if err != nil {
		return Timesheet{}, ErrInvalidRange
	}
	return u.build(ctx, userID, startDate, endDate)
}

func (u *TimesheetUseCase) build(ctx context.Context, userID string, start, end time.Time) (Timesheet, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Timesheet{}, ErrInvalidUserID
	}

	startStr := start.Format("2006-01-02")
	endStr := end.Format("2006-01-02")
	reports, err := u.rdoRepo.ListByUserAndRange(ctx, userID, startStr, endStr)
	if err != nil {
		return Timesheet{}, err
	}

	days, totals := timesheet.SummarizeRange(start, end, reports, u.resolver(ctx))
	return Timesheet{
		UserID: userID,
		Start:  startStr,
		End:    endStr,
		Days:   days,
		Totals: totals,
		Admin:  timesheet.DeriveAdminSummary(totals),
	}, nil
}

// resolver adapts the project repository into the engine's pure lookup. Repo
// failures degrade to a miss (8h default) so one unavailable project never
// fails a whole month.
func (u *TimesheetUseCase) resolver(ctx context.Context) timesheet.ProjectResolver {
	cache := map[string]entities.Project{}
	return func(projectID string) (entities.Project, bool) {
		if p, ok := cache[projectID]; ok {
			return p, p.ID != ""
		}
		p, err := u.projectRepo.GetByID(ctx, projectID)
		if err != nil {
			return entities.Project{}, false
		}
		cache[projectID] = p
		return p, p.ID != ""
	}
}
