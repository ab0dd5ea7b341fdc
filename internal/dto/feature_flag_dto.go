// FILE: internal/dto/feature_flag_dto.go
// DTOs for flag management and the read paths
package dto

import (
	"time"

	"github.com/google/uuid"
)

// StrategyDetailsPayload mirrors the strategy-specific payload on the wire.
// BOOLEAN sends neither field, PERCENTAGE sends percentage, USER sends users.
type StrategyDetailsPayload struct {
	Percentage *float64 `json:"percentage,omitempty" validate:"omitempty,gte=0,lte=100"`
	Users      []string `json:"users,omitempty"`
}

type UpsertFlagRequest struct {
	TenantId  uuid.UUID               `json:"tenant_id" validate:"required"`
	FeatureId uuid.UUID               `json:"feature_id" validate:"required"`
	Env       string                  `json:"env" validate:"required"`
	Enabled   bool                    `json:"enabled"`
	Strategy  string                  `json:"evaluation_strategy" validate:"required,oneof=BOOLEAN PERCENTAGE USER"`
	Details   *StrategyDetailsPayload `json:"evaluation_details,omitempty"`
}

type DeleteFlagRequest struct {
	TenantId  uuid.UUID `json:"tenant_id" validate:"required"`
	FeatureId uuid.UUID `json:"feature_id" validate:"required"`
	Env       string    `json:"env" validate:"required"`
}

type PromoteRequest struct {
	TenantId  uuid.UUID `json:"tenant_id" validate:"required"`
	SourceEnv string    `json:"source_env" validate:"required"`
	TargetEnv string    `json:"target_env" validate:"required"`
	DryRun    bool      `json:"dry_run"`
}

// PromotionReport is structurally identical for dry runs and real runs; a
// dry run simply causes no side effects.
type PromotionReport struct {
	Message string   `json:"message"`
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Actions []string `json:"actions"`
}

type FlagResponse struct {
	Id          uuid.UUID              `json:"id"`
	TenantId    uuid.UUID              `json:"tenant_id"`
	FeatureId   uuid.UUID              `json:"feature_id"`
	FeatureName string                 `json:"feature_name,omitempty"`
	Env         string                 `json:"env"`
	Enabled     bool                   `json:"enabled"`
	Strategy    string                 `json:"evaluation_strategy"`
	Details     StrategyDetailsPayload `json:"evaluation_details"`
	UpdatedAt   time.Time              `json:"updated_at"`
}

// FlagListOptions carries pagination and the optional raw-list filters.
type FlagListOptions struct {
	Page        int
	Limit       int
	FeatureName string
	Enabled     *bool
}

type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

type FlagListResponse struct {
	Data []*FlagResponse `json:"data"`
	Meta PageMeta        `json:"meta"`
}
