// FILE: internal/entity/feature_flag_entity.go
// Domain entity for feature flags and the evaluation strategy variant
package entity

import (
	"time"

	"github.com/google/uuid"
)

// EvaluationStrategy selects how an enabled flag is evaluated per request.
type EvaluationStrategy string

const (
	StrategyBoolean    EvaluationStrategy = "BOOLEAN"
	StrategyPercentage EvaluationStrategy = "PERCENTAGE"
	StrategyUser       EvaluationStrategy = "USER"
)

// Valid reports whether s is one of the three supported strategies.
func (s EvaluationStrategy) Valid() bool {
	switch s {
	case StrategyBoolean, StrategyPercentage, StrategyUser:
		return true
	}
	return false
}

// StrategyDetails is the strategy-specific payload. BOOLEAN carries nothing,
// PERCENTAGE a single percentage in [0,100], USER a set of opaque user ids.
// A zero value is the explicit empty-object marker, never nil-on-the-wire.
type StrategyDetails struct {
	Percentage *float64 `json:"percentage,omitempty"`
	Users      []string `json:"users,omitempty"`
}

// HasUser reports whether the given requester id is in the stored user set.
func (d StrategyDetails) HasUser(userId string) bool {
	for _, u := range d.Users {
		if u == userId {
			return true
		}
	}
	return false
}

// FeatureFlag binds a catalog feature to a tenant and environment.
// (TenantId, FeatureId, Env) is the natural key; Id is a surrogate used for
// audit linkage.
type FeatureFlag struct {
	Id        uuid.UUID
	TenantId  uuid.UUID
	FeatureId uuid.UUID
	Env       string
	Enabled   bool // Master switch: false forces the evaluated result off
	Strategy  EvaluationStrategy
	Details   StrategyDetails
	UpdatedAt time.Time

	Feature *Feature // Loaded from the catalog for evaluation/display
}
