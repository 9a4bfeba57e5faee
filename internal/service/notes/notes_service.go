package notes

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"documentstore/internal/pkg/consts"
	"documentstore/internal/pkg/log_messages"
	"documentstore/internal/pkg/logger"
	pkgmodels "documentstore/internal/pkg/models"
	"documentstore/internal/pkg/store/models"
	"documentstore/internal/service/interfaces"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrDuplicateRequest is returned when a create or import request carries a
// request id that was already processed.
var ErrDuplicateRequest = errors.New("duplicate request")

type NotesService struct {
	notes  interfaces.NoteRepoInterface
	audit  interfaces.AuditRepoInterface
	marker interfaces.RedisStoreInterface
	events interfaces.ChangeEventPublisherInterface
}

func NewNotesService(
	notes interfaces.NoteRepoInterface,
	audit interfaces.AuditRepoInterface,
	marker interfaces.RedisStoreInterface,
	events interfaces.ChangeEventPublisherInterface,
) *NotesService {
	return &NotesService{
		notes:  notes,
		audit:  audit,
		marker: marker,
		events: events,
	}
}

func (s *NotesService) GetNote(ctx context.Context, id primitive.ObjectID) (*models.Note, error) {
	return s.notes.GetNoteByID(ctx, id)
}

func (s *NotesService) ListNotes(ctx context.Context) ([]models.Note, error) {
	return s.notes.ListNotes(ctx)
}

func (s *NotesService) FindNotesByTag(ctx context.Context, tag string) ([]models.Note, error) {
	return s.notes.FindNotesByTag(ctx, tag)
}

func (s *NotesService) GetNoteByTitle(ctx context.Context, title string) (*models.Note, error) {
	return s.notes.GetNoteByTitle(ctx, title)
}

func (s *NotesService) CreateNote(ctx context.Context, requestID string, note *models.Note) (bool, error) {
	if duplicate := s.seenRequest(ctx, requestID); duplicate {
		logger.CtxWarn(ctx, log_messages.DuplicateCreateRequest, slog.String("request_id", requestID))
		return false, ErrDuplicateRequest
	}

	if ok := s.notes.CreateNote(ctx, note); !ok {
		return false, nil
	}

	s.rememberRequest(ctx, requestID)
	s.recordAndPublish(ctx, consts.ActionCreated, note.ID.Hex(), nil)
	return true, nil
}

func (s *NotesService) ImportNotes(ctx context.Context, msg *pkgmodels.NoteImportMessage) (bool, error) {
	if msg == nil {
		return false, fmt.Errorf("nil import message")
	}

	if duplicate := s.seenRequest(ctx, msg.RequestID); duplicate {
		logger.CtxWarn(ctx, log_messages.DuplicateCreateRequest, slog.String("request_id", msg.RequestID))
		return false, ErrDuplicateRequest
	}

	batch := make([]*models.Note, 0, len(msg.Notes))
	for _, in := range msg.Notes {
		batch = append(batch, &models.Note{
			Title:  in.Title,
			Body:   in.Body,
			Tags:   in.Tags,
			Source: msg.Source,
		})
	}

	if ok := s.notes.ImportNotes(ctx, batch); !ok {
		return false, nil
	}

	s.rememberRequest(ctx, msg.RequestID)

	ids := make([]string, 0, len(batch))
	for _, note := range batch {
		ids = append(ids, note.ID.Hex())
	}
	s.recordAndPublish(ctx, consts.ActionImported, "", ids)
	return true, nil
}

func (s *NotesService) UpdateNote(ctx context.Context, note *models.Note) bool {
	if ok := s.notes.UpdateNote(ctx, note); !ok {
		return false
	}
	s.recordAndPublish(ctx, consts.ActionUpdated, note.ID.Hex(), nil)
	return true
}

func (s *NotesService) DeleteNote(ctx context.Context, id primitive.ObjectID) bool {
	if ok := s.notes.DeleteNote(ctx, id); !ok {
		return false
	}
	s.recordAndPublish(ctx, consts.ActionDeleted, id.Hex(), nil)
	return true
}

// DeleteNoteByTitle deletes the single note carrying the title. An ambiguous
// or unknown title deletes nothing and reports (false, nil).
func (s *NotesService) DeleteNoteByTitle(ctx context.Context, title string) (bool, error) {
	note, err := s.notes.GetNoteByTitle(ctx, title)
	if err != nil {
		return false, err
	}
	if note == nil {
		return false, nil
	}

	if ok := s.notes.DeleteNoteEntity(ctx, note); !ok {
		return false, nil
	}
	s.recordAndPublish(ctx, consts.ActionDeleted, note.ID.Hex(), nil)
	return true, nil
}

func (s *NotesService) DeleteNotesByIDs(ctx context.Context, ids []primitive.ObjectID) bool {
	if ok := s.notes.DeleteNotesByIDs(ctx, ids); !ok {
		return false
	}

	hexIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		hexIDs = append(hexIDs, id.Hex())
	}
	s.recordAndPublish(ctx, consts.ActionDeleted, "", hexIDs)
	return true
}

func (s *NotesService) DeleteNotesByTag(ctx context.Context, tag string) bool {
	if ok := s.notes.DeleteNotesByTag(ctx, tag); !ok {
		return false
	}
	s.recordAndPublish(ctx, consts.ActionDeleted, "tag:"+tag, nil)
	return true
}

func (s *NotesService) PurgeNotes(ctx context.Context) bool {
	if ok := s.notes.PurgeNotes(ctx); !ok {
		return false
	}
	s.recordAndPublish(ctx, consts.ActionPurged, "", nil)
	return true
}

func (s *NotesService) AuditTrail(ctx context.Context, entityID string) ([]models.AuditEntry, error) {
	return s.audit.TrailForEntity(ctx, entityID)
}

// AuditLog returns the full audit history across all entities.
func (s *NotesService) AuditLog(ctx context.Context) ([]models.AuditEntry, error) {
	return s.audit.ListAll(ctx)
}

func (s *NotesService) AuditCount(ctx context.Context) (int64, error) {
	return s.audit.CountAll(ctx)
}

func (s *NotesService) PurgeAudit(ctx context.Context) bool {
	return s.audit.PurgeAll(ctx)
}

// seenRequest treats a marker lookup failure as "not seen": a degraded redis
// must not block writes.
func (s *NotesService) seenRequest(ctx context.Context, requestID string) bool {
	if requestID == "" || s.marker == nil {
		return false
	}

	seen, err := s.marker.IsRequestProcessed(ctx, requestID)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorCheckingRequestMarker, err,
			slog.String("request_id", requestID),
		)
		return false
	}
	return seen
}

func (s *NotesService) rememberRequest(ctx context.Context, requestID string) {
	if requestID == "" || s.marker == nil {
		return
	}
	if err := s.marker.MarkRequestProcessed(ctx, requestID); err != nil {
		logger.CtxError(ctx, log_messages.ErrorCheckingRequestMarker, err,
			slog.String("request_id", requestID),
		)
	}
}

// recordAndPublish writes the audit entry and emits the change event. Neither
// failure rolls back the mutation that already happened.
func (s *NotesService) recordAndPublish(ctx context.Context, action consts.ChangeAction, entityID string, entityIDs []string) {
	if s.audit != nil {
		s.audit.RecordChange(ctx, &models.AuditEntry{
			EntityKind: consts.EntityKindNote,
			Action:     action,
			EntityID:   entityID,
			TraceID:    logger.GetTraceID(ctx),
			OccurredAt: time.Now().UTC(),
		})
	}

	if s.events == nil {
		return
	}

	event := pkgmodels.ChangeEvent{
		Entity:     consts.EntityKindNote,
		Action:     action,
		EntityID:   entityID,
		EntityIDs:  entityIDs,
		TraceID:    logger.GetTraceID(ctx),
		OccurredAt: time.Now().UTC(),
	}

	// Publish failures are already logged by the publisher service.
	_ = s.events.PublishChange(ctx, event)
}
