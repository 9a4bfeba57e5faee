package interfaces

import (
	"context"

	"documentstore/internal/pkg/store/models"
)

type AuditStoreInterface interface {
	GetAll(ctx context.Context) ([]models.AuditEntry, error)
	Find(ctx context.Context, filter interface{}) ([]models.AuditEntry, error)
	Add(ctx context.Context, entity *models.AuditEntry) bool
	RemoveAll(ctx context.Context) bool
	Count(ctx context.Context, filter interface{}) (int64, error)
}
