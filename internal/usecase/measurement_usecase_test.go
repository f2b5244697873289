package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"ges_rdo/internal/domain/entities"
	mock_interfaces "ges_rdo/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validMeasurementCommand() MeasurementCommand {
	return MeasurementCommand{
		UserID:      "u-1",
		ProjectID:   "p-1",
		PeriodStart: "2026-01-01",
		PeriodEnd:   "2026-01-31",
	}
}

func TestMeasurementUseCase_Create(t *testing.T) {
	t.Run("invalid period", func(t *testing.T) {
		uc := NewMeasurementUseCase(nil, nil, nil, nil)
		cmd := validMeasurementCommand()
		cmd.PeriodEnd = "31/01/2026"
		_, err := uc.Create(context.Background(), cmd)
		if !errors.Is(err, ErrInvalidRange) {
			t.Fatalf("expected ErrInvalidRange, got %v", err)
		}
	})

	t.Run("prices hours at the project rate", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMeasurementRepository(ctrl)
		rdoRepo := mock_interfaces.NewMockIRDORepository(ctrl)
		projectRepo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewMeasurementUseCase(repo, rdoRepo, projectRepo, nil)

		projectRepo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{ID: "p-1", HourlyRate: 100}, nil)
		rdoRepo.EXPECT().ListByUserAndRange(gomock.Any(), "u-1", "2026-01-01", "2026-01-31").Return([]entities.RDO{
			{ID: "rdo-1", ProjectID: "p-1", Date: "2026-01-05", Entries: []entities.TimeEntry{
				{StartTime: "08:00", EndTime: "18:00", Activity: "Suporte"},
			}},
			// Another project's hours must not be billed.
			{ID: "rdo-2", ProjectID: "p-2", Date: "2026-01-06", Entries: []entities.TimeEntry{
				{StartTime: "08:00", EndTime: "12:00", Activity: "Suporte"},
			}},
		}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m entities.Measurement) (entities.Measurement, error) {
				if m.TotalHours != 10 {
					t.Fatalf("expected 10 billable hours, got %v", m.TotalHours)
				}
				if m.GrossAmount != 1000 || m.FinalAmount != 1000 {
					t.Fatalf("expected 1000, got gross %v final %v", m.GrossAmount, m.FinalAmount)
				}
				if m.Status != entities.MeasurementStatusPendente {
					t.Fatalf("expected pendente, got %s", m.Status)
				}
				return m, nil
			},
		)

		if _, err := uc.Create(context.Background(), validMeasurementCommand()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("factor and deductions floor at zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMeasurementRepository(ctrl)
		rdoRepo := mock_interfaces.NewMockIRDORepository(ctrl)
		projectRepo := mock_interfaces.NewMockIProjectRepository(ctrl)
		uc := NewMeasurementUseCase(repo, rdoRepo, projectRepo, nil)

		projectRepo.EXPECT().GetByID(gomock.Any(), "p-1").Return(entities.Project{}, nil)
		rdoRepo.EXPECT().ListByUserAndRange(gomock.Any(), "u-1", "2026-01-01", "2026-01-31").Return([]entities.RDO{
			{ID: "rdo-1", ProjectID: "p-1", Date: "2026-01-05", Entries: []entities.TimeEntry{
				{StartTime: "08:00", EndTime: "10:00", Activity: "Suporte"},
			}},
		}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m entities.Measurement) (entities.Measurement, error) {
				// 2h at the default rate of 50, halved, minus deductions
				// larger than the result.
				if m.HourlyRate != 50 {
					t.Fatalf("expected default rate, got %v", m.HourlyRate)
				}
				if m.FinalAmount != 0 {
					t.Fatalf("expected floor at zero, got %v", m.FinalAmount)
				}
				return m, nil
			},
		)

		cmd := validMeasurementCommand()
		cmd.Factor = 0.5
		cmd.Deductions = 200
		if _, err := uc.Create(context.Background(), cmd); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestMeasurementUseCase_Invoice(t *testing.T) {
	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewMeasurementUseCase(nil, nil, nil, nil)
		_, err := uc.Invoice(context.Background(), "m-1", nil)
		if !errors.Is(err, ErrPaymentGatewayUnavailable) {
			t.Fatalf("expected ErrPaymentGatewayUnavailable, got %v", err)
		}
	})

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewMeasurementUseCase(nil, nil, nil, gateway)

		_, err := uc.Invoice(context.Background(), "m-1", json.RawMessage("{"))
		if !errors.Is(err, ErrInvalidMeasurementPayload) {
			t.Fatalf("expected ErrInvalidMeasurementPayload, got %v", err)
		}
	})

	t.Run("already invoiced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMeasurementRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewMeasurementUseCase(repo, nil, nil, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "m-1").Return(entities.Measurement{
			ID: "m-1", Status: entities.MeasurementStatusFaturada,
		}, nil)

		_, err := uc.Invoice(context.Background(), "m-1", nil)
		if !errors.Is(err, ErrMeasurementAlreadyInvoiced) {
			t.Fatalf("expected ErrMeasurementAlreadyInvoiced, got %v", err)
		}
	})

	t.Run("enriches payload and stores the payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMeasurementRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewMeasurementUseCase(repo, nil, nil, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "m-1").Return(entities.Measurement{
			ID: "m-1", FinalAmount: 1234, Status: entities.MeasurementStatusPendente,
			PeriodStart: "2026-01-01", PeriodEnd: "2026-01-31",
		}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var m map[string]any
				if err := json.Unmarshal(payload, &m); err != nil {
					t.Fatalf("payload not json: %v", err)
				}
				if m["external_reference"] != "m-1" {
					t.Fatalf("expected external_reference m-1, got %v", m["external_reference"])
				}
				if m["transaction_amount"] != float64(1234) {
					t.Fatalf("expected amount from the measurement, got %v", m["transaction_amount"])
				}
				return "pay-1", "approved", json.RawMessage(`{"id":"pay-1"}`), nil
			},
		)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m entities.Measurement) (entities.Measurement, error) {
				if m.Status != entities.MeasurementStatusFaturada {
					t.Fatalf("expected faturada, got %s", m.Status)
				}
				if m.PaymentID != "pay-1" || len(m.PaymentRaw) == 0 {
					t.Fatalf("expected payment linkage, got %+v", m)
				}
				return m, nil
			},
		)

		res, err := uc.Invoice(context.Background(), "m-1", json.RawMessage(`{"payment_method_id":"pix"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.MeasurementStatusFaturada {
			t.Fatalf("expected faturada, got %s", res.Status)
		}
	})

	t.Run("gateway failure keeps the measurement pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIMeasurementRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewMeasurementUseCase(repo, nil, nil, gateway)

		repo.EXPECT().GetByID(gomock.Any(), "m-1").Return(entities.Measurement{
			ID: "m-1", Status: entities.MeasurementStatusPendente,
		}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("gateway down"))

		_, err := uc.Invoice(context.Background(), "m-1", nil)
		if err == nil || err.Error() != "gateway down" {
			t.Fatalf("expected gateway error, got %v", err)
		}
	})
}
