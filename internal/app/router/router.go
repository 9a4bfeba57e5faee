package router

import (
	"context"

	"documentstore/internal/app/handlers"
	kafkaConsumer "documentstore/internal/pkg/kafka/consumer"
	"documentstore/internal/pkg/logger"
	"documentstore/internal/service/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// TraceIDMiddleware stamps every request with a trace id, honoring an
// X-Trace-ID header when the caller supplies one.
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader("X-Trace-ID")
		if traceID == "" {
			traceID = uuid.New().String()
		}

		c.Request = c.Request.WithContext(logger.WithTraceID(c.Request.Context(), traceID))
		c.Writer.Header().Set("X-Trace-ID", traceID)
		c.Next()
	}
}

func SetupRouter(ctx context.Context,
	importConsumer *kafkaConsumer.ImportConsumer,
	notesService interfaces.NotesServiceInterface,
	serviceName string) *gin.Engine {
	server := gin.Default()
	server.Use(otelgin.Middleware(serviceName))
	server.Use(TraceIDMiddleware())

	if importConsumer != nil {
		go func() {
			importHandler := handlers.NewImportHandler(ctx, importConsumer)

			err := importHandler.RunImportConsumer(ctx, importConsumer, notesService)
			if err != nil {
				logger.CtxError(ctx, "failed to start Kafka consumer", err)
			}
		}()
	}

	healthCheckHandler := handlers.NewHealthCheckHandler()
	server.GET("/documentstore/v1/HealthCheck", healthCheckHandler.HealthCheck)

	noteHandler := handlers.NewNoteHandler(notesService)
	v1 := server.Group("/documentstore/v1")
	{
		v1.GET("/notes/:id", noteHandler.GetNote)
		v1.GET("/notes", noteHandler.ListNotes)
		v1.POST("/notes", noteHandler.CreateNote)
		v1.POST("/notes/import", noteHandler.ImportNotes)
		v1.PUT("/notes/:id", noteHandler.UpdateNote)
		v1.DELETE("/notes/:id", noteHandler.DeleteNote)
		v1.DELETE("/notes/title/:title", noteHandler.DeleteNoteByTitle)
		v1.DELETE("/notes", noteHandler.DeleteNotes)
		v1.POST("/notes/bulk-delete", noteHandler.BulkDeleteNotes)
		v1.GET("/audit", noteHandler.AuditTrail)
		v1.GET("/audit/count", noteHandler.AuditCount)
		v1.DELETE("/audit", noteHandler.PurgeAudit)
	}

	return server
}
