package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByTenantID scopes flag queries to one tenant
type ByTenantID struct {
	TenantID uuid.UUID
}

func (s ByTenantID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("tenant_id = ?", s.TenantID)
}

// ByEnv scopes flag queries to one environment
type ByEnv struct {
	Env string
}

func (s ByEnv) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("env = ?", s.Env)
}

// ByFeatureID filters flags by their catalog feature
type ByFeatureID struct {
	FeatureID uuid.UUID
}

func (s ByFeatureID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("feature_id = ?", s.FeatureID)
}

// EnabledIs filters flags on the master switch
type EnabledIs struct {
	Enabled bool
}

func (s EnabledIs) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("feature_flags.enabled = ?", s.Enabled)
}

// FeatureNameContains filters flags whose catalog feature name matches a
// case-insensitive substring. Joins the features table.
type FeatureNameContains struct {
	Name string
}

func (s FeatureNameContains) Apply(db *gorm.DB) *gorm.DB {
	return db.
		Joins("JOIN features ON features.id = feature_flags.feature_id").
		Where("features.name ILIKE ?", "%"+s.Name+"%")
}

// ByTargetID filters audit rows for one target record
type ByTargetID struct {
	TargetID uuid.UUID
}

func (s ByTargetID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("target_id = ?", s.TargetID)
}

// ByTargetEntity filters audit rows by target entity type
type ByTargetEntity struct {
	Entity string
}

func (s ByTargetEntity) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("target_entity = ?", s.Entity)
}
