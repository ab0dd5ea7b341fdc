// FILE: internal/model/feature_flag_model.go
// GORM model for the feature_flags table
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// FeatureFlag carries the natural key (tenant_id, feature_id, env) as a
// composite unique index so concurrent upserts serialize at the storage
// boundary, not only in application logic.
type FeatureFlag struct {
	Id                    uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TenantId              uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_tenant_feature_env"`
	FeatureId             uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_tenant_feature_env"`
	Env                   string         `gorm:"type:varchar(50);not null;uniqueIndex:idx_tenant_feature_env"`
	Enabled               bool           `gorm:"not null;default:false"`
	EvaluationStrategy    string         `gorm:"type:varchar(20);not null;default:'BOOLEAN'"`
	EvaluationDetailsJson datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'"`
	UpdatedAt             time.Time      `gorm:"autoUpdateTime"`

	Tenant  *Tenant  `gorm:"foreignKey:TenantId;constraint:OnDelete:CASCADE"`
	Feature *Feature `gorm:"foreignKey:FeatureId;constraint:OnDelete:CASCADE"`
}

func (FeatureFlag) TableName() string {
	return "feature_flags"
}
