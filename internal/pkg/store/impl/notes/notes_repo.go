package notes

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"documentstore/internal/pkg/consts"
	mongodb "documentstore/internal/pkg/db/mongo"
	"documentstore/internal/pkg/logger"
	"documentstore/internal/pkg/store/models"
	"documentstore/internal/pkg/store/repository"
	"documentstore/internal/service/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type NoteRepository struct {
	repo interfaces.NoteStoreInterface
}

func NewNotesRepository(client *mongodb.MongoClient) (*NoteRepository, error) {
	repo, err := repository.NewMongoRepository[models.Note](client, consts.NotesCollection, replaceNote)
	if err != nil {
		return nil, err
	}
	return &NoteRepository{repo: repo}, nil
}

func NewNotesRepositoryWithInterface(repo interfaces.NoteStoreInterface) *NoteRepository {
	return &NoteRepository{repo: repo}
}

// replaceNote is the update strategy for notes: a full document replace
// keyed on _id, refreshing the updatedAt stamp.
func replaceNote(ctx context.Context, collection interfaces.CollectionInterface, note *models.Note) error {
	if note.ID.IsZero() {
		return fmt.Errorf("note carries no id")
	}

	note.UpdatedAt = time.Now().UTC()

	result, err := collection.ReplaceOne(ctx, bson.M{"_id": note.ID}, note)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (nr *NoteRepository) GetNoteByID(ctx context.Context, id primitive.ObjectID) (*models.Note, error) {
	note, err := nr.repo.GetByID(ctx, id)
	if err != nil {
		logger.CtxError(ctx, "Error fetching note by id", err, slog.String("note_id", id.Hex()))
		return nil, err
	}

	if note == nil {
		logger.CtxWarn(ctx, "No note found for id", slog.String("note_id", id.Hex()))
		return nil, nil
	}

	logger.CtxDebug(ctx, "Fetched note by id", slog.String("note_id", id.Hex()))
	return note, nil
}

func (nr *NoteRepository) ListNotes(ctx context.Context) ([]models.Note, error) {
	notes, err := nr.repo.GetAll(ctx)
	if err != nil {
		logger.CtxError(ctx, "Error listing notes", err)
		return nil, err
	}

	logger.CtxDebug(ctx, "Listed notes", slog.Int("count", len(notes)))
	return notes, nil
}

func (nr *NoteRepository) FindNotesByTag(ctx context.Context, tag string) ([]models.Note, error) {
	filter := bson.M{"tags": tag}

	notes, err := nr.repo.Find(ctx, filter)
	if err != nil {
		logger.CtxError(ctx, "Error finding notes by tag", err, slog.String("tag", tag))
		return nil, err
	}

	logger.CtxDebug(ctx, "Fetched notes by tag", slog.String("tag", tag), slog.Int("count", len(notes)))
	return notes, nil
}

// GetNoteByTitle returns nil when the title matches no note or more than one.
func (nr *NoteRepository) GetNoteByTitle(ctx context.Context, title string) (*models.Note, error) {
	filter := bson.M{"title": title}

	note, err := nr.repo.SingleOrDefault(ctx, filter)
	if err != nil {
		logger.CtxError(ctx, "Error finding note by title", err, slog.String("title", title))
		return nil, err
	}

	if note == nil {
		logger.CtxWarn(ctx, "No single note found for title", slog.String("title", title))
	}
	return note, nil
}

func (nr *NoteRepository) CreateNote(ctx context.Context, note *models.Note) bool {
	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now().UTC()
	}

	if ok := nr.repo.Add(ctx, note); !ok {
		return false
	}

	logger.CtxInfo(ctx, "Created note", slog.String("note_id", note.ID.Hex()))
	return true
}

func (nr *NoteRepository) ImportNotes(ctx context.Context, notes []*models.Note) bool {
	now := time.Now().UTC()
	for _, note := range notes {
		if note.CreatedAt.IsZero() {
			note.CreatedAt = now
		}
	}

	if ok := nr.repo.AddRange(ctx, notes); !ok {
		return false
	}

	logger.CtxInfo(ctx, "Imported note batch", slog.Int("count", len(notes)))
	return true
}

func (nr *NoteRepository) UpdateNote(ctx context.Context, note *models.Note) bool {
	return nr.repo.Update(ctx, note)
}

func (nr *NoteRepository) DeleteNote(ctx context.Context, id primitive.ObjectID) bool {
	ok := nr.repo.RemoveByID(ctx, id)
	if ok {
		logger.CtxInfo(ctx, "Delete acknowledged for note", slog.String("note_id", id.Hex()))
	}
	return ok
}

func (nr *NoteRepository) DeleteNoteEntity(ctx context.Context, note *models.Note) bool {
	return nr.repo.Remove(ctx, note)
}

func (nr *NoteRepository) DeleteNotesByIDs(ctx context.Context, ids []primitive.ObjectID) bool {
	return nr.repo.RemoveByIDs(ctx, ids)
}

func (nr *NoteRepository) DeleteNotesByTag(ctx context.Context, tag string) bool {
	return nr.repo.RemoveRange(ctx, bson.M{"tags": tag})
}

func (nr *NoteRepository) PurgeNotes(ctx context.Context) bool {
	ok := nr.repo.RemoveAll(ctx)
	if ok {
		logger.CtxInfo(ctx, "Purge acknowledged for notes collection")
	}
	return ok
}
