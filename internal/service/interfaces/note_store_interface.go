package interfaces

import (
	"context"

	"documentstore/internal/pkg/store/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NoteStoreInterface interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Note, error)
	GetAll(ctx context.Context) ([]models.Note, error)
	Find(ctx context.Context, filter interface{}) ([]models.Note, error)
	SingleOrDefault(ctx context.Context, filter interface{}) (*models.Note, error)
	Add(ctx context.Context, entity *models.Note) bool
	AddRange(ctx context.Context, entities []*models.Note) bool
	Remove(ctx context.Context, entity *models.Note) bool
	RemoveByID(ctx context.Context, id primitive.ObjectID) bool
	RemoveAll(ctx context.Context) bool
	RemoveRange(ctx context.Context, filter interface{}) bool
	RemoveByIDs(ctx context.Context, ids []primitive.ObjectID) bool
	Update(ctx context.Context, entity *models.Note) bool
}
