package models

import (
	"time"

	"documentstore/internal/pkg/consts"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Note struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Title     string             `bson:"title"`
	Body      string             `bson:"body"`
	Tags      []string           `bson:"tags,omitempty"`
	Source    string             `bson:"source,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty"`
}

func (n *Note) GetID() primitive.ObjectID   { return n.ID }
func (n *Note) SetID(id primitive.ObjectID) { n.ID = id }

type AuditEntry struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty"`
	EntityKind string              `bson:"entityKind"`
	Action     consts.ChangeAction `bson:"action"`
	EntityID   string              `bson:"entityId,omitempty"`
	TraceID    string              `bson:"traceId,omitempty"`
	OccurredAt time.Time           `bson:"occurredAt"`
}

func (a *AuditEntry) GetID() primitive.ObjectID   { return a.ID }
func (a *AuditEntry) SetID(id primitive.ObjectID) { a.ID = id }
