// FILE: internal/model/audit_log_model.go
// GORM model for the audit_logs table (append-only)
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type AuditLog struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Actor        string         `gorm:"type:varchar(255);not null"`
	Action       string         `gorm:"type:varchar(20);not null"`
	TargetEntity string         `gorm:"type:varchar(50);not null;index"`
	TargetId     uuid.UUID      `gorm:"type:uuid;not null;index"`
	DiffBefore   datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'"`
	DiffAfter    datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'"`
	Timestamp    time.Time      `gorm:"autoCreateTime;index"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
