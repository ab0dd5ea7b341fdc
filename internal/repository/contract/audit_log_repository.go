// FILE: internal/repository/contract/audit_log_repository.go
// Repository interface for the append-only audit trail
package contract

import (
	"context"

	"feature-flag-be/internal/entity"
	"feature-flag-be/internal/repository/specification"
)

type AuditLogRepository interface {
	// Create appends one entry. The trail is append-only; there is no
	// update or delete.
	Create(ctx context.Context, log *entity.AuditLog) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.AuditLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
