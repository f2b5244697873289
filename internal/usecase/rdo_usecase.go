package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"ges_rdo/internal/domain/entities"
	"ges_rdo/internal/domain/timesheet"
	"ges_rdo/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrRDONotFound      = errors.New("rdo not found")
	ErrInvalidRDOID     = errors.New("invalid rdo id")
	ErrInvalidUserID    = errors.New("invalid usuario_id")
	ErrInvalidProjectID = errors.New("invalid projeto_id")
	ErrInvalidRDODate   = errors.New("invalid rdo date")
)

// RDOCommand is the submission payload for creating or replacing a daily
// report. The derived hour columns are never accepted from callers; they are
// recomputed from the entries on every save.
type RDOCommand struct {
	UserID           string
	UserName         string
	Date             string // YYYY-MM-DD
	ProjectID        string
	ServiceNature    string
	DailyDescription string
	Entries          []entities.TimeEntry
}

// IRDOUseCase exposes daily-report operations.

type IRDOUseCase interface {
	Create(ctx context.Context, cmd RDOCommand) (entities.RDO, error)
	Update(ctx context.Context, id string, cmd RDOCommand) (entities.RDO, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.RDO, error)
	ListByUser(ctx context.Context, userID, start, end string) ([]entities.RDO, error)
}

type RDOUseCase struct {
	repo        interfaces.IRDORepository
	projectRepo interfaces.IProjectRepository
}

var _ IRDOUseCase = (*RDOUseCase)(nil)

func NewRDOUseCase(repo interfaces.IRDORepository, projectRepo interfaces.IProjectRepository) *RDOUseCase {
	return &RDOUseCase{repo: repo, projectRepo: projectRepo}
}

func (u *RDOUseCase) Create(ctx context.Context, cmd RDOCommand) (entities.RDO, error) {
	r, err := u.buildRDO(ctx, cmd)
	if err != nil {
		return entities.RDO{}, err
	}

	now := time.Now().UTC()
	r.ID = uuid.NewString()
	r.CreatedAt = now
	r.UpdatedAt = now
	return u.repo.Create(ctx, r)
}

func (u *RDOUseCase) Update(ctx context.Context, id string, cmd RDOCommand) (entities.RDO, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.RDO{}, ErrInvalidRDOID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.RDO{}, err
	}
	if existing.ID == "" {
		return entities.RDO{}, ErrRDONotFound
	}

	r, err := u.buildRDO(ctx, cmd)
	if err != nil {
		return entities.RDO{}, err
	}
	r.ID = existing.ID
	r.CreatedAt = existing.CreatedAt
	r.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, r)
}

func (u *RDOUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidRDOID
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrRDONotFound
	}
	return u.repo.Delete(ctx, id)
}

func (u *RDOUseCase) GetByID(ctx context.Context, id string) (entities.RDO, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.RDO{}, ErrInvalidRDOID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.RDO{}, err
	}
	if r.ID == "" {
		return entities.RDO{}, ErrRDONotFound
	}
	return r, nil
}

// ListByUser returns one user's reports, optionally bounded by an inclusive
// YYYY-MM-DD range. Empty bounds list everything.
func (u *RDOUseCase) ListByUser(ctx context.Context, userID, start, end string) ([]entities.RDO, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	if start == "" && end == "" {
		return u.repo.ListByUser(ctx, userID)
	}
	return u.repo.ListByUserAndRange(ctx, userID, start, end)
}

// buildRDO validates the submission and stamps the derived hour columns. A
// project that cannot be resolved does not block the save; the 8h default
// applies and the project labels stay empty.
func (u *RDOUseCase) buildRDO(ctx context.Context, cmd RDOCommand) (entities.RDO, error) {
	userID := strings.TrimSpace(cmd.UserID)
	if userID == "" {
		return entities.RDO{}, ErrInvalidUserID
	}
	projectID := strings.TrimSpace(cmd.ProjectID)
	if projectID == "" {
		return entities.RDO{}, ErrInvalidProjectID
	}
	if _, err := time.Parse("2006-01-02", cmd.Date); err != nil {
		return entities.RDO{}, ErrInvalidRDODate
	}

	r := entities.RDO{
		UserID:            userID,
		UserName:          strings.TrimSpace(cmd.UserName),
		Date:              cmd.Date,
		ProjectID:         projectID,
		ServiceNature:     cmd.ServiceNature,
		DailyDescription:  cmd.DailyDescription,
		Entries:           cmd.Entries,
		NormalHoursPerDay: entities.DefaultNormalHoursPerDay,
	}

	if project, err := u.projectRepo.GetByID(ctx, projectID); err == nil && project.ID != "" {
		r.ProjectName = project.Name
		r.ProjectClient = project.Client
		if project.NormalHoursPerDay > 0 {
			r.NormalHoursPerDay = project.NormalHoursPerDay
		}
	}

	var total float64
	for _, e := range cmd.Entries {
		total += timesheet.Duration(e)
		r.NightHours += timesheet.NightOverlap(e)
	}
	_, r.OvertimeHours = timesheet.SplitRegularOvertime(total, r.NormalHoursPerDay)
	return r, nil
}
