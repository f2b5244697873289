package usecase

import (
	"context"
	"errors"
	"testing"

	"ges_rdo/internal/domain/entities"
	mock_interfaces "ges_rdo/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestProjectUseCase_Create(t *testing.T) {
	t.Run("invalid name", func(t *testing.T) {
		uc := NewProjectUseCase(nil)
		_, err := uc.Create(context.Background(), ProjectCommand{Name: "   "})
		if !errors.Is(err, ErrInvalidProjectName) {
			t.Fatalf("expected ErrInvalidProjectName, got %v", err)
		}
	})

	t.Run("applies defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.NormalHoursPerDay != 8 {
					t.Fatalf("expected default 8 normal hours, got %v", p.NormalHoursPerDay)
				}
				if p.HourlyRate != 50 {
					t.Fatalf("expected default rate 50, got %v", p.HourlyRate)
				}
				if p.ID == "" || p.CreatedAt.IsZero() {
					t.Fatalf("expected id and timestamps")
				}
				return p, nil
			},
		)

		if _, err := uc.Create(context.Background(), ProjectCommand{Name: "Obra A"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("keeps configured values", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.NormalHoursPerDay != 6 || p.HourlyRate != 120.5 {
					t.Fatalf("unexpected config: %+v", p)
				}
				return p, nil
			},
		)

		cmd := ProjectCommand{Name: "Obra B", Client: "Cliente Y", NormalHoursPerDay: 6, HourlyRate: 120.5}
		if _, err := uc.Create(context.Background(), cmd); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProjectUseCase_GetByID(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{}, nil)

		_, err := uc.GetByID(context.Background(), "p-1")
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", Name: "Obra A"}, nil)

		p, err := uc.GetByID(context.Background(), " p-1 ")
		if err != nil || p.Name != "Obra A" {
			t.Fatalf("unexpected result: %+v %v", p, err)
		}
	})
}

func TestProjectUseCase_Update(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{}, nil)

		_, err := uc.Update(context.Background(), "p-1", ProjectCommand{Name: "Obra A"})
		if !errors.Is(err, ErrProjectNotFound) {
			t.Fatalf("expected ErrProjectNotFound, got %v", err)
		}
	})

	t.Run("keeps identity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewProjectUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1"}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Project) (entities.Project, error) {
				if p.ID != "p-1" {
					t.Fatalf("expected id to be kept, got %q", p.ID)
				}
				return p, nil
			},
		)

		if _, err := uc.Update(context.Background(), "p-1", ProjectCommand{Name: "Obra A"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestProjectUseCase_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIProjectRepository(ctrl)
	uc := NewProjectUseCase(repo)

	repo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1"}, nil)
	repo.EXPECT().Delete(gomock.Any(), "p-1").Return(nil)

	if err := uc.Delete(context.Background(), "p-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
