package interfaces

import (
	"context"

	pkgmodels "documentstore/internal/pkg/models"
	"documentstore/internal/pkg/store/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotesServiceInterface interface {
	GetNote(ctx context.Context, id primitive.ObjectID) (*models.Note, error)
	ListNotes(ctx context.Context) ([]models.Note, error)
	FindNotesByTag(ctx context.Context, tag string) ([]models.Note, error)
	GetNoteByTitle(ctx context.Context, title string) (*models.Note, error)
	CreateNote(ctx context.Context, requestID string, note *models.Note) (bool, error)
	ImportNotes(ctx context.Context, msg *pkgmodels.NoteImportMessage) (bool, error)
	UpdateNote(ctx context.Context, note *models.Note) bool
	DeleteNote(ctx context.Context, id primitive.ObjectID) bool
	DeleteNoteByTitle(ctx context.Context, title string) (bool, error)
	DeleteNotesByIDs(ctx context.Context, ids []primitive.ObjectID) bool
	DeleteNotesByTag(ctx context.Context, tag string) bool
	PurgeNotes(ctx context.Context) bool
	AuditTrail(ctx context.Context, entityID string) ([]models.AuditEntry, error)
	AuditLog(ctx context.Context) ([]models.AuditEntry, error)
	AuditCount(ctx context.Context) (int64, error)
	PurgeAudit(ctx context.Context) bool
}
