package audit

import (
	"context"
	"log/slog"
	"time"

	"documentstore/internal/pkg/consts"
	mongodb "documentstore/internal/pkg/db/mongo"
	"documentstore/internal/pkg/logger"
	"documentstore/internal/pkg/store/models"
	"documentstore/internal/pkg/store/repository"
	"documentstore/internal/service/interfaces"

	"go.mongodb.org/mongo-driver/bson"
)

type AuditRepository struct {
	repo interfaces.AuditStoreInterface
}

// NewAuditRepository binds to the audit collection. Audit entries are
// append-only, so no update strategy is supplied.
func NewAuditRepository(client *mongodb.MongoClient) (*AuditRepository, error) {
	repo, err := repository.NewMongoRepository[models.AuditEntry](client, consts.AuditEntriesCollection, nil)
	if err != nil {
		return nil, err
	}
	return &AuditRepository{repo: repo}, nil
}

func NewAuditRepositoryWithInterface(repo interfaces.AuditStoreInterface) *AuditRepository {
	return &AuditRepository{repo: repo}
}

func (ar *AuditRepository) RecordChange(ctx context.Context, entry *models.AuditEntry) bool {
	if entry.OccurredAt.IsZero() {
		entry.OccurredAt = time.Now().UTC()
	}
	if entry.TraceID == "" {
		entry.TraceID = logger.GetTraceID(ctx)
	}

	if ok := ar.repo.Add(ctx, entry); !ok {
		// Audit writes never fail a mutation, the loss is only logged.
		logger.CtxWarn(ctx, "Dropped audit entry",
			slog.String("entity_kind", entry.EntityKind),
			slog.String("action", string(entry.Action)),
		)
		return false
	}
	return true
}

func (ar *AuditRepository) TrailForEntity(ctx context.Context, entityID string) ([]models.AuditEntry, error) {
	entries, err := ar.repo.Find(ctx, bson.M{"entityId": entityID})
	if err != nil {
		logger.CtxError(ctx, "Error fetching audit trail", err, slog.String("entity_id", entityID))
		return nil, err
	}
	return entries, nil
}

func (ar *AuditRepository) ListAll(ctx context.Context) ([]models.AuditEntry, error) {
	return ar.repo.GetAll(ctx)
}

func (ar *AuditRepository) CountAll(ctx context.Context) (int64, error) {
	return ar.repo.Count(ctx, bson.M{})
}

func (ar *AuditRepository) PurgeAll(ctx context.Context) bool {
	return ar.repo.RemoveAll(ctx)
}
