// FILE: internal/dto/tenant_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type TenantResponse struct {
	Id        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// FeatureDefinitionResponse is one entry of the tenant-independent catalog.
type FeatureDefinitionResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
