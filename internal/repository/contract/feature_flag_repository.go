// FILE: internal/repository/contract/feature_flag_repository.go
// Repository interface for FeatureFlag
package contract

import (
	"context"

	"feature-flag-be/internal/entity"
	"feature-flag-be/internal/repository/specification"

	"github.com/google/uuid"
)

type FeatureFlagRepository interface {
	// Upsert writes the flag as a single atomic statement keyed on
	// (tenant_id, feature_id, env): create if absent, full replace of the
	// mutable fields if present.
	Upsert(ctx context.Context, flag *entity.FeatureFlag) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByNaturalKey(ctx context.Context, tenantId, featureId uuid.UUID, env string) (*entity.FeatureFlag, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.FeatureFlag, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FeatureFlag, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
