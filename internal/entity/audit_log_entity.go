// FILE: internal/entity/audit_log_entity.go
// Domain entity for the append-only audit trail
package entity

import (
	"time"

	"github.com/google/uuid"
)

type ActionType string

const (
	ActionCreate ActionType = "CREATE"
	ActionUpdate ActionType = "UPDATE"
	ActionDelete ActionType = "DELETE"
)

// AuditLog is one immutable before/after snapshot of a flag mutation.
// Rows are appended only; the core never updates or deletes them.
type AuditLog struct {
	Id           uuid.UUID
	Actor        string
	Action       ActionType
	TargetEntity string
	TargetId     uuid.UUID
	DiffBefore   map[string]interface{}
	DiffAfter    map[string]interface{}
	Timestamp    time.Time
}
