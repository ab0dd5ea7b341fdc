// FILE: internal/entity/feature_entity.go
// Domain entity for the feature catalog
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Feature is a named capability that can be toggled per tenant and
// environment. The catalog itself is tenant-independent.
type Feature struct {
	Id          uuid.UUID
	Name        string // Unique name: new-dashboard, beta-checkout, etc.
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
