package usecase

import (
	"context"
	"errors"
	"testing"

	"ges_rdo/internal/domain/entities"
	mock_interfaces "ges_rdo/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validRDOCommand() RDOCommand {
	return RDOCommand{
		UserID:    "u-1",
		UserName:  "João",
		Date:      "2026-01-07",
		ProjectID: "p-1",
		Entries: []entities.TimeEntry{
			{StartTime: "08:00", EndTime: "18:00", Activity: "Deslocamento"},
		},
	}
}

func TestRDOUseCase_Create(t *testing.T) {
	t.Run("invalid user", func(t *testing.T) {
		uc := NewRDOUseCase(nil, nil)
		cmd := validRDOCommand()
		cmd.UserID = "   "
		_, err := uc.Create(context.Background(), cmd)
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("invalid project", func(t *testing.T) {
		uc := NewRDOUseCase(nil, nil)
		cmd := validRDOCommand()
		cmd.ProjectID = ""
		_, err := uc.Create(context.Background(), cmd)
		if !errors.Is(err, ErrInvalidProjectID) {
			t.Fatalf("expected ErrInvalidProjectID, got %v", err)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		uc := NewRDOUseCase(nil, nil)
		cmd := validRDOCommand()
		cmd.Date = "07/01/2026"
		_, err := uc.Create(context.Background(), cmd)
		if !errors.Is(err, ErrInvalidRDODate) {
			t.Fatalf("expected ErrInvalidRDODate, got %v", err)
		}
	})

	t.Run("stamps derived hours from project config", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRDORepository(ctrl)
		projectRepo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewRDOUseCase(repo, projectRepo)

		projectRepo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{
			ID: "p-1", Name: "Obra A", Client: "Cliente X", NormalHoursPerDay: 8,
		}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.RDO{})).DoAndReturn(
			func(_ context.Context, r entities.RDO) (entities.RDO, error) {
				if r.ID == "" {
					t.Fatalf("expected generated id")
				}
				if r.ProjectName != "Obra A" || r.ProjectClient != "Cliente X" {
					t.Fatalf("expected project labels, got %+v", r)
				}
				if r.OvertimeHours != 2 {
					t.Fatalf("expected 2 overtime hours for a 10h day, got %v", r.OvertimeHours)
				}
				if r.NightHours != 0 {
					t.Fatalf("expected 0 night hours, got %v", r.NightHours)
				}
				if r.NormalHoursPerDay != 8 {
					t.Fatalf("expected 8 normal hours, got %v", r.NormalHoursPerDay)
				}
				if r.CreatedAt.IsZero() || r.UpdatedAt.IsZero() {
					t.Fatalf("expected timestamps")
				}
				return r, nil
			},
		)

		res, err := uc.Create(context.Background(), validRDOCommand())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID == "" {
			t.Fatalf("expected id on result")
		}
	})

	t.Run("unresolved project falls back to default hours", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRDORepository(ctrl)
		projectRepo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewRDOUseCase(repo, projectRepo)

		projectRepo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{}, errors.New("db"))
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.RDO) (entities.RDO, error) {
				if r.NormalHoursPerDay != 8 {
					t.Fatalf("expected default 8 normal hours, got %v", r.NormalHoursPerDay)
				}
				if r.ProjectName != "" {
					t.Fatalf("expected empty project name, got %q", r.ProjectName)
				}
				return r, nil
			},
		)

		if _, err := uc.Create(context.Background(), validRDOCommand()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("night shift hours", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRDORepository(ctrl)
		projectRepo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewRDOUseCase(repo, projectRepo)

		cmd := validRDOCommand()
		cmd.Entries = []entities.TimeEntry{{StartTime: "20:00", EndTime: "08:00", Activity: "PLATAFORMA"}}

		projectRepo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", NormalHoursPerDay: 8}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.RDO) (entities.RDO, error) {
				if r.NightHours != 8 {
					t.Fatalf("expected 8 night hours, got %v", r.NightHours)
				}
				if r.OvertimeHours != 4 {
					t.Fatalf("expected 4 overtime hours for a 12h shift, got %v", r.OvertimeHours)
				}
				return r, nil
			},
		)

		if _, err := uc.Create(context.Background(), cmd); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestRDOUseCase_Update(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewRDOUseCase(nil, nil)
		_, err := uc.Update(context.Background(), " ", validRDOCommand())
		if !errors.Is(err, ErrInvalidRDOID) {
			t.Fatalf("expected ErrInvalidRDOID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRDORepository(ctrl)
		uc := NewRDOUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "rdo-1").Return(entities.RDO{}, nil)

		_, err := uc.Update(context.Background(), "rdo-1", validRDOCommand())
		if !errors.Is(err, ErrRDONotFound) {
			t.Fatalf("expected ErrRDONotFound, got %v", err)
		}
	})

	t.Run("replaces entries and recomputes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRDORepository(ctrl)
		projectRepo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewRDOUseCase(repo, projectRepo)

		repo.EXPECT().GetByID(gomock.Any(), "rdo-1").Return(entities.RDO{ID: "rdo-1"}, nil)
		projectRepo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", NormalHoursPerDay: 6}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, r entities.RDO) (entities.RDO, error) {
				if r.ID != "rdo-1" {
					t.Fatalf("expected id to be kept, got %q", r.ID)
				}
				if r.OvertimeHours != 4 {
					t.Fatalf("expected 4 overtime hours against the 6h project, got %v", r.OvertimeHours)
				}
				return r, nil
			},
		)

		if _, err := uc.Update(context.Background(), "rdo-1", validRDOCommand()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestRDOUseCase_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewRDOUseCase(nil, nil)
		if err := uc.Delete(context.Background(), ""); !errors.Is(err, ErrInvalidRDOID) {
			t.Fatalf("expected ErrInvalidRDOID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRDORepository(ctrl)
		uc := NewRDOUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "rdo-1").Return(entities.RDO{}, nil)

		if err := uc.Delete(context.Background(), "rdo-1"); !errors.Is(err, ErrRDONotFound) {
			t.Fatalf("expected ErrRDONotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRDORepository(ctrl)
		uc := NewRDOUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "rdo-1").Return(entities.RDO{ID: "rdo-1"}, nil)
		repo.EXPECT().Delete(gomock.Any(), "rdo-1").Return(nil)

		if err := uc.Delete(context.Background(), "rdo-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestRDOUseCase_ListByUser(t *testing.T) {
	t.Run("invalid user", func(t *testing.T) {
		uc := NewRDOUseCase(nil, nil)
		_, err := uc.ListByUser(context.Background(), "  ", "", "")
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("without range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRDORepository(ctrl)
		uc := NewRDOUseCase(repo, nil)

		repo.EXPECT().ListByUser(gomock.Any(), "u-1").Return([]entities.RDO{{ID: "rdo-1"}}, nil)

		out, err := uc.ListByUser(context.Background(), "u-1", "", "")
		if err != nil || len(out) != 1 {
			t.Fatalf("unexpected result: %v %v", out, err)
		}
	})

	t.Run("with range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIRDORepository(ctrl)
		uc := NewRDOUseCase(repo, nil)

		repo.EXPECT().ListByUserAndRange(gomock.Any(), "u-1", "2026-01-01", "2026-01-31").Return(nil, nil)

		if _, err := uc.ListByUser(context.Background(), "u-1", "2026-01-01", "2026-01-31"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
