package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"

	mongodb "documentstore/internal/pkg/db/mongo"
	"documentstore/internal/pkg/log_messages"
	"documentstore/internal/pkg/logger"
	"documentstore/internal/service/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrStoreUnavailable is returned by constructors when no usable collection
// handle can be resolved.
var ErrStoreUnavailable = errors.New("document store unavailable")

// Entity is implemented by documents carrying a store-assigned ObjectID.
// Add writes the assigned id back through SetID after a successful insert.
type Entity interface {
	GetID() primitive.ObjectID
	SetID(id primitive.ObjectID)
}

// Repository is the CRUD contract over one collection.
//
// Reads surface store errors and report absence as (nil, nil). Writes collapse
// every store error into false; the boolean from the Remove methods reflects
// command acknowledgment, not whether anything was actually deleted.
type Repository[T any] interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (*T, error)
	GetAll(ctx context.Context) ([]T, error)
	Find(ctx context.Context, filter interface{}) ([]T, error)
	SingleOrDefault(ctx context.Context, filter interface{}) (*T, error)
	Add(ctx context.Context, entity *T) bool
	AddRange(ctx context.Context, entities []*T) bool
	Remove(ctx context.Context, entity *T) bool
	RemoveByID(ctx context.Context, id primitive.ObjectID) bool
	RemoveAll(ctx context.Context) bool
	RemoveRange(ctx context.Context, filter interface{}) bool
	RemoveByIDs(ctx context.Context, ids []primitive.ObjectID) bool
	Update(ctx context.Context, entity *T) bool
}

// UpdateStrategy supplies the replace/update semantics for a concrete
// repository. The generic adapter has no default: each entity decides how its
// documents are updated.
type UpdateStrategy[T any] func(ctx context.Context, collection interfaces.CollectionInterface, entity *T) error

type MongoRepository[T any] struct {
	collection interfaces.CollectionInterface
	update     UpdateStrategy[T]
}

// NewMongoRepository resolves collectionName on the given client. An empty
// name defaults to the entity type's name.
func NewMongoRepository[T any](
	client *mongodb.MongoClient,
	collectionName string,
	update UpdateStrategy[T],
) (*MongoRepository[T], error) {
	if client == nil || client.Database == nil {
		return nil, fmt.Errorf("%w: no database handle", ErrStoreUnavailable)
	}

	if collectionName == "" {
		var zero T
		collectionName = reflect.TypeOf(zero).Name()
	}
	if collectionName == "" {
		return nil, fmt.Errorf("%w: cannot derive a collection name", ErrStoreUnavailable)
	}

	collection := client.Database.Collection(collectionName)
	if collection == nil {
		return nil, fmt.Errorf("%w: cannot resolve collection %q", ErrStoreUnavailable, collectionName)
	}

	return &MongoRepository[T]{collection: collection, update: update}, nil
}

// NewMongoRepositoryWithCollection binds the adapter to an already-resolved
// collection handle.
func NewMongoRepositoryWithCollection[T any](
	collection interfaces.CollectionInterface,
	update UpdateStrategy[T],
) *MongoRepository[T] {
	return &MongoRepository[T]{collection: collection, update: update}
}

func (r *MongoRepository[T]) GetByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	var result T
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&result); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *MongoRepository[T]) GetAll(ctx context.Context) ([]T, error) {
	return r.find(ctx, bson.M{})
}

// Find forwards the filter verbatim to the store.
func (r *MongoRepository[T]) Find(ctx context.Context, filter interface{}) ([]T, error) {
	return r.find(ctx, filter)
}

// SingleOrDefault returns the one entity matching filter. Zero matches and
// more than one match are indistinguishable: both yield (nil, nil).
func (r *MongoRepository[T]) SingleOrDefault(ctx context.Context, filter interface{}) (*T, error) {
	results, err := r.find(ctx, filter, options.Find().SetLimit(2))
	if err != nil {
		return nil, err
	}
	if len(results) != 1 {
		return nil, nil
	}
	return &results[0], nil
}

func (r *MongoRepository[T]) Add(ctx context.Context, entity *T) bool {
	result, err := r.collection.InsertOne(ctx, entity)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorInsertingDocument, err)
		return false
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		if e, ok := any(entity).(Entity); ok {
			e.SetID(oid)
		}
	}
	return true
}

func (r *MongoRepository[T]) AddRange(ctx context.Context, entities []*T) bool {
	documents := make([]interface{}, 0, len(entities))
	for _, entity := range entities {
		documents = append(documents, entity)
	}

	result, err := r.collection.InsertMany(ctx, documents)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorInsertingDocumentBatch, err,
			slog.Int("batch_size", len(entities)),
		)
		return false
	}

	for i, inserted := range result.InsertedIDs {
		if i >= len(entities) {
			break
		}
		if oid, ok := inserted.(primitive.ObjectID); ok {
			if e, ok := any(entities[i]).(Entity); ok {
				e.SetID(oid)
			}
		}
	}
	return true
}

func (r *MongoRepository[T]) Remove(ctx context.Context, entity *T) bool {
	e, ok := any(entity).(Entity)
	if !ok {
		logger.CtxError(ctx, log_messages.ErrorDeletingDocument,
			fmt.Errorf("entity type %T carries no id", entity))
		return false
	}
	return r.RemoveByID(ctx, e.GetID())
}

func (r *MongoRepository[T]) RemoveByID(ctx context.Context, id primitive.ObjectID) bool {
	if _, err := r.collection.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		logger.CtxError(ctx, log_messages.ErrorDeletingDocument, err,
			slog.String("id", id.Hex()),
		)
		return false
	}
	return true
}

func (r *MongoRepository[T]) RemoveAll(ctx context.Context) bool {
	return r.RemoveRange(ctx, bson.M{})
}

func (r *MongoRepository[T]) RemoveRange(ctx context.Context, filter interface{}) bool {
	if _, err := r.collection.DeleteMany(ctx, filter); err != nil {
		logger.CtxError(ctx, log_messages.ErrorDeletingDocuments, err)
		return false
	}
	return true
}

// RemoveByIDs reports false for a nil id slice without contacting the store.
func (r *MongoRepository[T]) RemoveByIDs(ctx context.Context, ids []primitive.ObjectID) bool {
	if ids == nil {
		return false
	}
	return r.RemoveRange(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *MongoRepository[T]) Update(ctx context.Context, entity *T) bool {
	if r.update == nil {
		logger.CtxError(ctx, log_messages.NoUpdateStrategyConfigured,
			fmt.Errorf("entity type %T", entity))
		return false
	}
	if err := r.update(ctx, r.collection, entity); err != nil {
		logger.CtxError(ctx, log_messages.ErrorUpdatingDocument, err)
		return false
	}
	return true
}

// Count is a supplementary read for callers that need collection statistics.
func (r *MongoRepository[T]) Count(ctx context.Context, filter interface{}) (int64, error) {
	return r.collection.CountDocuments(ctx, filter)
}

func (r *MongoRepository[T]) find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) ([]T, error) {

	if cursor, err := r.collection.Find(ctx, filter, opts...); err != nil {
		return nil, err
	} else {
		defer func() {
			if err := cursor.Close(ctx); err != nil {
				_ = err
			}
		}()

		var results []T
		for cursor.Next(ctx) {
			var entity T
			if err := cursor.Decode(&entity); err != nil {
				return nil, err
			}
			results = append(results, entity)
		}
		if err := cursor.Err(); err != nil {
			return nil, err
		}
		return results, nil
	}
}
