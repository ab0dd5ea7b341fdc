// FILE: internal/repository/contract/tenant_repository.go
// Repository interface for Tenant
package contract

import (
	"context"

	"feature-flag-be/internal/entity"
	"feature-flag-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TenantRepository interface {
	Create(ctx context.Context, tenant *entity.Tenant) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tenant, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tenant, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Tenant, error)
	FindByName(ctx context.Context, name string) (*entity.Tenant, error)
}
