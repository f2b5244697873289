package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"ges_rdo/internal/domain/entities"
	"ges_rdo/internal/domain/timesheet"
	"ges_rdo/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMeasurementNotFound        = errors.New("measurement not found")
	ErrInvalidMeasurementID       = errors.New("invalid measurement id")
	ErrMeasurementAlreadyInvoiced = errors.New("measurement already invoiced")
	ErrInvalidMeasurementPayload  = errors.New("invalid payment payload")
	ErrPaymentGatewayUnavailable  = errors.New("payment gateway not configured")
)

// MeasurementCommand selects the hours to bill: one user, one project, one
// inclusive date range, a contract factor and optional deductions.
type MeasurementCommand struct {
	UserID      string
	ProjectID   string
	PeriodStart string // YYYY-MM-DD
	PeriodEnd   string // YYYY-MM-DD
	Factor      float64
	Deductions  float64
}

// IMeasurementUseCase encapsulates the medição flow: compute and persist the
// billable value of a period, then invoice it through the payment gateway.

type IMeasurementUseCase interface {
	Create(ctx context.Context, cmd MeasurementCommand) (entities.Measurement, error)
	Invoice(ctx context.Context, id string, payload json.RawMessage) (entities.Measurement, error)
	GetByID(ctx context.Context, id string) (entities.Measurement, error)
}

type MeasurementUseCase struct {
	repo        interfaces.IMeasurementRepository
	rdoRepo     interfaces.IRDORepository
	projectRepo interfaces.IProjectRepository
	gateway     interfaces.IPaymentGateway
}

var _ IMeasurementUseCase = (*MeasurementUseCase)(nil)

func NewMeasurementUseCase(
	repo interfaces.IMeasurementRepository,
	rdoRepo interfaces.IRDORepository,
	projectRepo interfaces.IProjectRepository,
	gateway interfaces.IPaymentGateway,
) *MeasurementUseCase {
	return &MeasurementUseCase{repo: repo, rdoRepo: rdoRepo, projectRepo: projectRepo, gateway: gateway}
}

// Create totals the period's worked hours for the project and prices them at
// the project's hourly rate. The net value is floored at zero and rounded to
// whole currency units, matching the measurement screen it replaces.
func (u *MeasurementUseCase) Create(ctx context.Context, cmd MeasurementCommand) (entities.Measurement, error) {
	userID := strings.TrimSpace(cmd.UserID)
	if userID == "" {
		return entities.Measurement{}, ErrInvalidUserID
	}
	projectID := strings.TrimSpace(cmd.ProjectID)
	if projectID == "" {
		return entities.Measurement{}, ErrInvalidProjectID
	}
	if _, err := time.Parse("2006-01-02", cmd.PeriodStart); err != nil {
		return entities.Measurement{}, ErrInvalidRange
	}
	if _, err := time.Parse("2006-01-02", cmd.PeriodEnd); err != nil {
		return entities.Measurement{}, ErrInvalidRange
	}

	rate := float64(entities.DefaultHourlyRate)
	if project, err := u.projectRepo.GetByID(ctx, projectID); err == nil && project.ID != "" && project.HourlyRate > 0 {
		rate = project.HourlyRate
	}

	reports, err := u.rdoRepo.ListByUserAndRange(ctx, userID, cmd.PeriodStart, cmd.PeriodEnd)
	if err != nil {
		return entities.Measurement{}, err
	}

	var totalHours float64
	for _, r := range reports {
		if r.ProjectID != projectID {
			continue
		}
		for _, e := range r.Entries {
			totalHours += timesheet.Duration(e)
		}
	}

	factor := cmd.Factor
	if factor <= 0 {
		factor = 1
	}
	gross := totalHours * rate
	net := gross*factor - cmd.Deductions
	final := math.Max(0, math.Round(net))

	now := time.Now().UTC()
	m := entities.Measurement{
		ID:          uuid.NewString(),
		UserID:      userID,
		ProjectID:   projectID,
		PeriodStart: cmd.PeriodStart,
		PeriodEnd:   cmd.PeriodEnd,
		TotalHours:  totalHours,
		HourlyRate:  rate,
		Factor:      factor,
		Deductions:  cmd.Deductions,
		GrossAmount: gross,
		FinalAmount: final,
		Status:      entities.MeasurementStatusPendente,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.repo.Create(ctx, m)
}

// Invoice charges a pending measurement through the payment gateway. The
// measurement in DB is the source of truth for the amount; the payload only
// carries payment-method details and gets the linkage fields filled in when
// the caller didn't provide them.
func (u *MeasurementUseCase) Invoice(ctx context.Context, id string, payload json.RawMessage) (entities.Measurement, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Measurement{}, ErrInvalidMeasurementID
	}
	if u.gateway == nil {
		log.Printf("[medicao][usecase] gateway not configured measurement_id=%s", id)
		return entities.Measurement{}, ErrPaymentGatewayUnavailable
	}
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}
	if !json.Valid(payload) {
		log.Printf("[medicao][usecase] invalid payload (not-json) measurement_id=%s", id)
		return entities.Measurement{}, ErrInvalidMeasurementPayload
	}

	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Measurement{}, err
	}
	if m.ID == "" {
		return entities.Measurement{}, ErrMeasurementNotFound
	}
	if m.Status == entities.MeasurementStatusFaturada {
		return entities.Measurement{}, ErrMeasurementAlreadyInvoiced
	}

	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = m.ID
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Medição %s (%s a %s)", m.ID, m.PeriodStart, m.PeriodEnd)
		}
		reqMap["transaction_amount"] = m.FinalAmount
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	}

	log.Printf("[medicao][usecase] invoicing measurement_id=%s amount=%.2f", m.ID, m.FinalAmount)
	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[medicao][usecase] payment gateway failed measurement_id=%s err=%v", m.ID, err)
		return entities.Measurement{}, err
	}
	log.Printf("[medicao][usecase] payment created measurement_id=%s provider_payment_id=%s provider_status=%s",
		m.ID, providerPaymentID, providerStatus)

	m.Status = entities.MeasurementStatusFaturada
	m.PaymentID = providerPaymentID
	m.PaymentRaw = providerResp
	m.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, m)
}

func (u *MeasurementUseCase) GetByID(ctx context.Context, id string) (entities.Measurement, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Measurement{}, ErrInvalidMeasurementID
	}

	m, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Measurement{}, err
	}
	if m.ID == "" {
		return entities.Measurement{}, ErrMeasurementNotFound
	}
	return m, nil
}
