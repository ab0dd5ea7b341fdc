// FILE: internal/entity/tenant_entity.go
// Domain entity for tenants
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Tenant is an isolated customer of the flag service. Tenants are created by
// an administrative process and are immutable here.
type Tenant struct {
	Id        uuid.UUID
	Name      string // Unique name: zebra, nike, etc.
	CreatedAt time.Time
}
