package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeOrderCreated        = "order_created"
	TypeOrderStatusChanged  = "order_status_changed"
	TypeTableGroupCreated   = "table_group_created"
	TypeTableGroupUngrouped = "table_group_ungrouped"
)

type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	Key        string    `json:"-"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

func New(eventType, key string, payload any) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		Key:        key,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}
