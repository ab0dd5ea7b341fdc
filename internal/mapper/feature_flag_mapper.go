// FILE: internal/mapper/feature_flag_mapper.go
// Mapper for FeatureFlag entity <-> model conversion, including the JSONB
// strategy-details codec
package mapper

import (
	"encoding/json"

	"feature-flag-be/internal/entity"
	"feature-flag-be/internal/model"

	"gorm.io/datatypes"
)

type FeatureFlagMapper struct {
	featureMapper *FeatureMapper
}

func NewFeatureFlagMapper() *FeatureFlagMapper {
	return &FeatureFlagMapper{
		featureMapper: NewFeatureMapper(),
	}
}

func (m *FeatureFlagMapper) ToEntity(mdl *model.FeatureFlag) *entity.FeatureFlag {
	if mdl == nil {
		return nil
	}

	// Malformed payloads degrade to empty details (flag evaluates "off" for
	// PERCENTAGE/USER) instead of failing the whole read.
	var details entity.StrategyDetails
	if len(mdl.EvaluationDetailsJson) > 0 {
		if err := json.Unmarshal(mdl.EvaluationDetailsJson, &details); err != nil {
			details = entity.StrategyDetails{}
		}
	}

	return &entity.FeatureFlag{
		Id:        mdl.Id,
		TenantId:  mdl.TenantId,
		FeatureId: mdl.FeatureId,
		Env:       mdl.Env,
		Enabled:   mdl.Enabled,
		Strategy:  entity.EvaluationStrategy(mdl.EvaluationStrategy),
		Details:   details,
		UpdatedAt: mdl.UpdatedAt,
		Feature:   m.featureMapper.ToEntity(mdl.Feature),
	}
}

func (m *FeatureFlagMapper) ToModel(e *entity.FeatureFlag) *model.FeatureFlag {
	if e == nil {
		return nil
	}

	// Details are always stored as a present JSON object. An absent payload
	// becomes "{}" so later reads see the strategy with an empty-but-present
	// details object.
	raw, err := json.Marshal(e.Details)
	if err != nil || len(raw) == 0 {
		raw = []byte("{}")
	}

	return &model.FeatureFlag{
		Id:                    e.Id,
		TenantId:              e.TenantId,
		FeatureId:             e.FeatureId,
		Env:                   e.Env,
		Enabled:               e.Enabled,
		EvaluationStrategy:    string(e.Strategy),
		EvaluationDetailsJson: datatypes.JSON(raw),
		UpdatedAt:             e.UpdatedAt,
	}
}

func (m *FeatureFlagMapper) ToEntities(models []*model.FeatureFlag) []*entity.FeatureFlag {
	entities := make([]*entity.FeatureFlag, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
