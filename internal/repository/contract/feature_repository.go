// FILE: internal/repository/contract/feature_repository.go
// Repository interface for the Feature catalog
package contract

import (
	"context"

	"feature-flag-be/internal/entity"
	"feature-flag-be/internal/repository/specification"

	"github.com/google/uuid"
)

type FeatureRepository interface {
	Create(ctx context.Context, feature *entity.Feature) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Feature, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Feature, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Feature, error)
	FindByName(ctx context.Context, name string) (*entity.Feature, error)
}
