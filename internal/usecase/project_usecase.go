package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"ges_rdo/internal/domain/entities"
	"ges_rdo/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrInvalidProjectName = errors.New("invalid project name")
)

// ProjectCommand carries the configurable project fields. Zero NormalHours or
// HourlyRate fall back to the domain defaults.
type ProjectCommand struct {
	Name              string
	Client            string
	NormalHoursPerDay float64
	HourlyRate        float64
}

// IProjectUseCase exposes project configuration operations.

type IProjectUseCase interface {
	Create(ctx context.Context, cmd ProjectCommand) (entities.Project, error)
	Update(ctx context.Context, id string, cmd ProjectCommand) (entities.Project, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
}

type ProjectUseCase struct {
	repo interfaces.IProjectRepository
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(repo interfaces.IProjectRepository) *ProjectUseCase {
	return &ProjectUseCase{repo: repo}
}

func (u *ProjectUseCase) Create(ctx context.Context, cmd ProjectCommand) (entities.Project, error) {
	p, err := buildProject(cmd)
	if err != nil {
		return entities.Project{}, err
	}

	now := time.Now().UTC()
	p.ID = uuid.NewString()
	p.CreatedAt = now
	p.UpdatedAt = now
	return u.repo.Create(ctx, p)
}

func (u *ProjectUseCase) Update(ctx context.Context, id string, cmd ProjectCommand) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrProjectNotFound
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if existing.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}

	p, err := buildProject(cmd)
	if err != nil {
		return entities.Project{}, err
	}
	p.ID = existing.ID
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now().UTC()
	return u.repo.Update(ctx, p)
}

func (u *ProjectUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrProjectNotFound
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.ID == "" {
		return ErrProjectNotFound
	}
	return u.repo.Delete(ctx, id)
}

func (u *ProjectUseCase) GetByID(ctx context.Context, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Project{}, ErrProjectNotFound
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, err
	}
	if p.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}

func (u *ProjectUseCase) List(ctx context.Context) ([]entities.Project, error) {
	return u.repo.List(ctx)
}

func buildProject(cmd ProjectCommand) (entities.Project, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return entities.Project{}, ErrInvalidProjectName
	}

	p := entities.Project{
		Name:              name,
		Client:            strings.TrimSpace(cmd.Client),
		NormalHoursPerDay: cmd.NormalHoursPerDay,
		HourlyRate:        cmd.HourlyRate,
	}
	if p.NormalHoursPerDay <= 0 {
		p.NormalHoursPerDay = entities.DefaultNormalHoursPerDay
	}
	if p.HourlyRate <= 0 {
		p.HourlyRate = entities.DefaultHourlyRate
	}
	return p, nil
}
