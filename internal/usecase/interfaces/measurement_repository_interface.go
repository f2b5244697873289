package interfaces

import (
	"context"
	"ges_rdo/internal/domain/entities"
)

// IMeasurementRepository abstracts DynamoDB persistence for medições.

type IMeasurementRepository interface {
	Create(ctx context.Context, measurement entities.Measurement) (entities.Measurement, error)
	Update(ctx context.Context, measurement entities.Measurement) (entities.Measurement, error)
	GetByID(ctx context.Context, id string) (entities.Measurement, error)
}
