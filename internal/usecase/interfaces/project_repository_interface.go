package interfaces

import (
	"context"
	"ges_rdo/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for projects.

type IProjectRepository interface {
	Create(ctx context.Context, p entities.Project) (entities.Project, error)
	Update(ctx context.Context, p entities.Project) (entities.Project, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.Project, error)
	List(ctx context.Context) ([]entities.Project, error)
}
