package usecase

import (
	"context"
	"errors"
	"testing"

	"ges_rdo/internal/domain/entities"
	mock_interfaces "ges_rdo/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestTimesheetUseCase_MonthlyTimesheet(t *testing.T) {
	t.Run("invalid month", func(t *testing.T) {
		uc := NewTimesheetUseCase(nil, nil)
		_, err := uc.MonthlyTimesheet(context.Background(), "u-1", "01/2026")
		if !errors.Is(err, ErrInvalidMonth) {
			t.Fatalf("expected ErrInvalidMonth, got %v", err)
		}
	})

	t.Run("invalid user", func(t *testing.T) {
		uc := NewTimesheetUseCase(nil, nil)
		_, err := uc.MonthlyTimesheet(context.Background(), "  ", "2026-02")
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rdoRepo := mock_interfaces.NewMockIRDORepository(ctrl)
		uc := NewTimesheetUseCase(rdoRepo, nil)

		rdoRepo.EXPECT().ListByUserAndRange(gomock.Any(), "u-1", "2026-02-01", "2026-02-28").
			Return(nil, errors.New("db"))

		_, err := uc.MonthlyTimesheet(context.Background(), "u-1", "2026-02")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("builds the full month", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rdoRepo := mock_interfaces.NewMockIRDORepository(ctrl)
		projectRepo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewTimesheetUseCase(rdoRepo, projectRepo)

		reports := []entities.RDO{
			{ID: "rdo-1", UserID: "u-1", Date: "2026-02-03", ProjectID: "p-1", Entries: []entities.TimeEntry{
				{StartTime: "08:00", EndTime: "18:00", Activity: "Deslocamento"},
			}},
			{ID: "rdo-2", UserID: "u-1", Date: "2026-02-10", ProjectID: "p-1", Entries: []entities.TimeEntry{
				{StartTime: "18:00", EndTime: "23:30", Activity: "Treinamento"},
			}},
		}
		rdoRepo.EXPECT().ListByUserAndRange(gomock.Any(), "u-1", "2026-02-01", "2026-02-28").Return(reports, nil)
		// Two worked days, one resolved project each; the resolver caches.
		projectRepo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", NormalHoursPerDay: 8}, nil)

		sheet, err := uc.MonthlyTimesheet(context.Background(), "u-1", "2026-02")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sheet.Days) != 28 {
			t.Fatalf("expected 28 rows, got %d", len(sheet.Days))
		}
		if sheet.Start != "2026-02-01" || sheet.End != "2026-02-28" {
			t.Fatalf("unexpected bounds: %s .. %s", sheet.Start, sheet.End)
		}
		if sheet.Totals.NightHours != 1.5 {
			t.Fatalf("expected 1.5 night hours, got %v", sheet.Totals.NightHours)
		}
		if sheet.Totals.TravelHours != 10 {
			t.Fatalf("expected 10 travel hours, got %v", sheet.Totals.TravelHours)
		}
		if sheet.Admin.NightPremium != 1.5 {
			t.Fatalf("expected night premium 1.5, got %v", sheet.Admin.NightPremium)
		}
		if sheet.Admin.WeeklyPremium50 != sheet.Totals.PayableTotal+sheet.Totals.RestDeduction {
			t.Fatalf("admin 50%% figure out of sync with totals")
		}
	})
}

func TestTimesheetUseCase_RangeTimesheet(t *testing.T) {
	t.Run("invalid bounds", func(t *testing.T) {
		uc := NewTimesheetUseCase(nil, nil)
		if _, err := uc.RangeTimesheet(context.Background(), "u-1", "2026-02-30", "2026-03-01"); !errors.Is(err, ErrInvalidRange) {
			t.Fatalf("expected ErrInvalidRange, got %v", err)
		}
		if _, err := uc.RangeTimesheet(context.Background(), "u-1", "2026-02-01", ""); !errors.Is(err, ErrInvalidRange) {
			t.Fatalf("expected ErrInvalidRange, got %v", err)
		}
	})

	t.Run("inverted range yields no rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rdoRepo := mock_interfaces.NewMockIRDORepository(ctrl)
		uc := NewTimesheetUseCase(rdoRepo, nil)

		rdoRepo.EXPECT().ListByUserAndRange(gomock.Any(), "u-1", "2026-03-10", "2026-03-01").Return(nil, nil)

		sheet, err := uc.RangeTimesheet(context.Background(), "u-1", "2026-03-10", "2026-03-01")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sheet.Days) != 0 {
			t.Fatalf("expected no rows, got %d", len(sheet.Days))
		}
	})

	t.Run("project lookup failure degrades to default", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		rdoRepo := mock_interfaces.NewMockIRDORepository(ctrl)
		projectRepo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewTimesheetUseCase(rdoRepo, projectRepo)

		reports := []entities.RDO{
			{ID: "rdo-1", UserID: "u-1", Date: "2026-03-02", ProjectID: "p-1", Entries: []entities.TimeEntry{
				{StartTime: "07:00", EndTime: "17:00", Activity: "Suporte"},
			}},
		}
		rdoRepo.EXPECT().ListByUserAndRange(gomock.Any(), "u-1", "2026-03-02", "2026-03-02").Return(reports, nil)
		projectRepo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{}, errors.New("db"))

		sheet, err := uc.RangeTimesheet(context.Background(), "u-1", "2026-03-02", "2026-03-02")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sheet.Totals.OvertimeHours != 2 {
			t.Fatalf("expected default 8h threshold (2 overtime), got %v", sheet.Totals.OvertimeHours)
		}
	})
}
