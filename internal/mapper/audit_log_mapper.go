// FILE: internal/mapper/audit_log_mapper.go
// Mapper for AuditLog entity <-> model conversion
package mapper

import (
	"encoding/json"

	"feature-flag-be/internal/entity"
	"feature-flag-be/internal/model"

	"gorm.io/datatypes"
)

type AuditLogMapper struct{}

func NewAuditLogMapper() *AuditLogMapper {
	return &AuditLogMapper{}
}

func (m *AuditLogMapper) ToEntity(mdl *model.AuditLog) *entity.AuditLog {
	if mdl == nil {
		return nil
	}
	return &entity.AuditLog{
		Id:           mdl.Id,
		Actor:        mdl.Actor,
		Action:       entity.ActionType(mdl.Action),
		TargetEntity: mdl.TargetEntity,
		TargetId:     mdl.TargetId,
		DiffBefore:   unmarshalDiff(mdl.DiffBefore),
		DiffAfter:    unmarshalDiff(mdl.DiffAfter),
		Timestamp:    mdl.Timestamp,
	}
}

func (m *AuditLogMapper) ToModel(e *entity.AuditLog) *model.AuditLog {
	if e == nil {
		return nil
	}
	return &model.AuditLog{
		Id:           e.Id,
		Actor:        e.Actor,
		Action:       string(e.Action),
		TargetEntity: e.TargetEntity,
		TargetId:     e.TargetId,
		DiffBefore:   marshalDiff(e.DiffBefore),
		DiffAfter:    marshalDiff(e.DiffAfter),
		Timestamp:    e.Timestamp,
	}
}

func (m *AuditLogMapper) ToEntities(models []*model.AuditLog) []*entity.AuditLog {
	entities := make([]*entity.AuditLog, 0, len(models))
	for _, mdl := range models {
		entities = append(entities, m.ToEntity(mdl))
	}
	return entities
}

// Diffs are stored as present JSON objects; nil means "no prior/new row" and
// is persisted as "{}".
func marshalDiff(diff map[string]interface{}) datatypes.JSON {
	if diff == nil {
		return datatypes.JSON([]byte("{}"))
	}
	raw, err := json.Marshal(diff)
	if err != nil {
		return datatypes.JSON([]byte("{}"))
	}
	return datatypes.JSON(raw)
}

func unmarshalDiff(raw datatypes.JSON) map[string]interface{} {
	diff := make(map[string]interface{})
	if len(raw) > 0 {
		_ = json.Unmarshal(raw, &diff)
	}
	return diff
}
