package unitofwork

import (
	"context"

	"feature-flag-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	TenantRepository() contract.TenantRepository
	FeatureRepository() contract.FeatureRepository
	FeatureFlagRepository() contract.FeatureFlagRepository
	AuditLogRepository() contract.AuditLogRepository
}
