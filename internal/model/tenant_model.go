// FILE: internal/model/tenant_model.go
// GORM model for the tenants table
package model

import (
	"time"

	"github.com/google/uuid"
)

type Tenant struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (Tenant) TableName() string {
	return "tenants"
}
