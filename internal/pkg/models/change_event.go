package models

import (
	"time"

	"documentstore/internal/pkg/consts"
)

// ChangeEvent is published to Pub/Sub after every successful mutation.
type ChangeEvent struct {
	Entity     string              `json:"entity"`
	Action     consts.ChangeAction `json:"action"`
	EntityID   string              `json:"entityId,omitempty"`
	EntityIDs  []string            `json:"entityIds,omitempty"`
	TraceID    string              `json:"traceId,omitempty"`
	OccurredAt time.Time           `json:"occurredAt"`
}
