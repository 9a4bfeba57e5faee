package handlers

import (
	"errors"
	"net/http"

	"documentstore/internal/pkg/logger"
	pkgmodels "documentstore/internal/pkg/models"
	"documentstore/internal/pkg/store/models"
	"documentstore/internal/service/interfaces"
	notesService "documentstore/internal/service/notes"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NoteHandler struct {
	service interfaces.NotesServiceInterface
}

func NewNoteHandler(service interfaces.NotesServiceInterface) *NoteHandler {
	return &NoteHandler{service: service}
}

type noteRequest struct {
	Title string   `json:"title" binding:"required"`
	Body  string   `json:"body"`
	Tags  []string `json:"tags"`
}

type bulkDeleteRequest struct {
	IDs []string `json:"ids"`
}

func (h *NoteHandler) GetNote(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid note id"})
		return
	}

	note, err := h.service.GetNote(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch note"})
		return
	}
	if note == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "note not found"})
		return
	}

	c.JSON(http.StatusOK, note)
}

// ListNotes returns all notes, or those carrying ?tag=, or the single note
// matching ?title= when exactly one exists.
func (h *NoteHandler) ListNotes(c *gin.Context) {
	ctx := c.Request.Context()

	if title := c.Query("title"); title != "" {
		note, err := h.service.GetNoteByTitle(ctx, title)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch note"})
			return
		}
		if note == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "no single note with that title"})
			return
		}
		c.JSON(http.StatusOK, []models.Note{*note})
		return
	}

	var (
		notes []models.Note
		err   error
	)
	if tag := c.Query("tag"); tag != "" {
		notes, err = h.service.FindNotesByTag(ctx, tag)
	} else {
		notes, err = h.service.ListNotes(ctx)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list notes"})
		return
	}

	if notes == nil {
		notes = []models.Note{}
	}
	c.JSON(http.StatusOK, notes)
}

func (h *NoteHandler) CreateNote(c *gin.Context) {
	ctx := c.Request.Context()

	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note := &models.Note{
		Title: req.Title,
		Body:  req.Body,
		Tags:  req.Tags,
	}

	created, err := h.service.CreateNote(ctx, c.GetHeader("X-Request-ID"), note)
	if err != nil {
		if errors.Is(err, notesService.ErrDuplicateRequest) {
			c.JSON(http.StatusConflict, gin.H{"error": "duplicate request"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create note"})
		return
	}
	if !created {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create note"})
		return
	}

	c.JSON(http.StatusCreated, note)
}

func (h *NoteHandler) ImportNotes(c *gin.Context) {
	ctx := c.Request.Context()

	var msg pkgmodels.NoteImportMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	imported, err := h.service.ImportNotes(ctx, &msg)
	if err != nil {
		if errors.Is(err, notesService.ErrDuplicateRequest) {
			c.JSON(http.StatusConflict, gin.H{"error": "duplicate request"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to import notes"})
		return
	}
	if !imported {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to import notes"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"imported": len(msg.Notes)})
}

func (h *NoteHandler) UpdateNote(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid note id"})
		return
	}

	var req noteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	note := &models.Note{
		ID:    id,
		Title: req.Title,
		Body:  req.Body,
		Tags:  req.Tags,
	}

	if ok := h.service.UpdateNote(ctx, note); !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update note"})
		return
	}

	c.JSON(http.StatusOK, note)
}

// DeleteNote acknowledges deletes of unknown ids as well: the response
// reflects that the store accepted the command, not that a note existed.
func (h *NoteHandler) DeleteNote(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid note id"})
		return
	}

	if ok := h.service.DeleteNote(ctx, id); !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete note"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

func (h *NoteHandler) DeleteNoteByTitle(c *gin.Context) {
	ctx := c.Request.Context()

	deleted, err := h.service.DeleteNoteByTitle(ctx, c.Param("title"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete note"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "no single note with that title"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

// DeleteNotes deletes by ?tag=, or purges the whole collection without one.
func (h *NoteHandler) DeleteNotes(c *gin.Context) {
	ctx := c.Request.Context()

	var ok bool
	if tag := c.Query("tag"); tag != "" {
		ok = h.service.DeleteNotesByTag(ctx, tag)
	} else {
		ok = h.service.PurgeNotes(ctx)
	}
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete notes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

func (h *NoteHandler) BulkDeleteNotes(c *gin.Context) {
	ctx := c.Request.Context()

	var req bulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// A missing id list is rejected here without a store round trip.
	var ids []primitive.ObjectID
	if req.IDs != nil {
		ids = make([]primitive.ObjectID, 0, len(req.IDs))
		for _, raw := range req.IDs {
			id, err := primitive.ObjectIDFromHex(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid note id: " + raw})
				return
			}
			ids = append(ids, id)
		}
	}

	if ok := h.service.DeleteNotesByIDs(ctx, ids); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no ids supplied"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

// AuditTrail returns the entries for ?entityId=, or the whole log without one.
func (h *NoteHandler) AuditTrail(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		entries []models.AuditEntry
		err     error
	)
	if entityID := c.Query("entityId"); entityID != "" {
		entries, err = h.service.AuditTrail(ctx, entityID)
	} else {
		entries, err = h.service.AuditLog(ctx)
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch audit trail"})
		return
	}

	if entries == nil {
		entries = []models.AuditEntry{}
	}
	c.JSON(http.StatusOK, entries)
}

func (h *NoteHandler) AuditCount(c *gin.Context) {
	ctx := c.Request.Context()

	count, err := h.service.AuditCount(ctx)
	if err != nil {
		logger.CtxError(ctx, "Error counting audit entries", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to count audit entries"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

func (h *NoteHandler) PurgeAudit(c *gin.Context) {
	ctx := c.Request.Context()

	if ok := h.service.PurgeAudit(ctx); !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to purge audit entries"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}
