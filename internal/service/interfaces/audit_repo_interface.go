package interfaces

import (
	"context"

	"documentstore/internal/pkg/store/models"
)

type AuditRepoInterface interface {
	RecordChange(ctx context.Context, entry *models.AuditEntry) bool
	TrailForEntity(ctx context.Context, entityID string) ([]models.AuditEntry, error)
	ListAll(ctx context.Context) ([]models.AuditEntry, error)
	CountAll(ctx context.Context) (int64, error)
	PurgeAll(ctx context.Context) bool
}
