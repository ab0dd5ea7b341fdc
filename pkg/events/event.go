// Package events defines the event types published after flag mutations.
package events

import "github.com/google/uuid"

// Event is anything that can be published to the event bus.
type Event interface {
	EventType() string
	Payload() interface{}
}

// FlagChangedEvent is emitted after every successful upsert, delete or
// promotion. Consumers use it for cache warming and external fan-out; it is
// informational and never part of the mutation's correctness.
type FlagChangedEvent struct {
	TenantId   uuid.UUID `json:"tenant_id"`
	TenantName string    `json:"tenant_name"`
	Env        string    `json:"env"`
	Action     string    `json:"action"` // CREATE, UPDATE, DELETE, PROMOTE
	Actor      string    `json:"actor"`
}

func (e FlagChangedEvent) EventType() string {
	return "flag_changed"
}

func (e FlagChangedEvent) Payload() interface{} {
	return e
}
