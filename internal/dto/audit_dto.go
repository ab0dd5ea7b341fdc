// FILE: internal/dto/audit_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type AuditLogResponse struct {
	Id           uuid.UUID              `json:"id"`
	Actor        string                 `json:"actor"`
	Action       string                 `json:"action"`
	TargetEntity string                 `json:"target_entity"`
	TargetId     uuid.UUID              `json:"target_id"`
	DiffBefore   map[string]interface{} `json:"diff_before"`
	DiffAfter    map[string]interface{} `json:"diff_after"`
	Timestamp    time.Time              `json:"timestamp"`
}

type AuditLogListResponse struct {
	Data []*AuditLogResponse `json:"data"`
	Meta PageMeta            `json:"meta"`
}
