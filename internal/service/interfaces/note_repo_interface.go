package interfaces

import (
	"context"

	"documentstore/internal/pkg/store/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NoteRepoInterface interface {
	GetNoteByID(ctx context.Context, id primitive.ObjectID) (*models.Note, error)
	ListNotes(ctx context.Context) ([]models.Note, error)
	FindNotesByTag(ctx context.Context, tag string) ([]models.Note, error)
	GetNoteByTitle(ctx context.Context, title string) (*models.Note, error)
	CreateNote(ctx context.Context, note *models.Note) bool
	ImportNotes(ctx context.Context, notes []*models.Note) bool
	UpdateNote(ctx context.Context, note *models.Note) bool
	DeleteNote(ctx context.Context, id primitive.ObjectID) bool
	DeleteNoteEntity(ctx context.Context, note *models.Note) bool
	DeleteNotesByIDs(ctx context.Context, ids []primitive.ObjectID) bool
	DeleteNotesByTag(ctx context.Context, tag string) bool
	PurgeNotes(ctx context.Context) bool
}
