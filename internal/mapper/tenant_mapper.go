// FILE: internal/mapper/tenant_mapper.go
// Mapper for Tenant entity <-> model conversion
package mapper

import (
	"feature-flag-be/internal/entity"
	"feature-flag-be/internal/model"
)

type TenantMapper struct{}

func NewTenantMapper() *TenantMapper {
	return &TenantMapper{}
}

func (m *TenantMapper) ToEntity(model *model.Tenant) *entity.Tenant {
	if model == nil {
		return nil
	}
	return &entity.Tenant{
		Id:        model.Id,
		Name:      model.Name,
		CreatedAt: model.CreatedAt,
	}
}

func (m *TenantMapper) ToModel(entity *entity.Tenant) *model.Tenant {
	if entity == nil {
		return nil
	}
	return &model.Tenant{
		Id:        entity.Id,
		Name:      entity.Name,
		CreatedAt: entity.CreatedAt,
	}
}

func (m *TenantMapper) ToEntities(models []*model.Tenant) []*entity.Tenant {
	entities := make([]*entity.Tenant, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}
