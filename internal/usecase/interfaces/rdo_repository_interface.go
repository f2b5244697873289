package interfaces

import (
	"context"
	"ges_rdo/internal/domain/entities"
)

// IRDORepository abstracts DynamoDB persistence for daily work reports.
//
// ListByUserAndRange takes inclusive YYYY-MM-DD bounds; it backs the ficha
// técnica and measurement flows, which always read one user's reports for one
// period.

type IRDORepository interface {
	Create(ctx context.Context, r entities.RDO) (entities.RDO, error)
	Update(ctx context.Context, r entities.RDO) (entities.RDO, error)
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (entities.RDO, error)
	ListByUser(ctx context.Context, userID string) ([]entities.RDO, error)
	ListByUserAndRange(ctx context.Context, userID, start, end string) ([]entities.RDO, error)
}
