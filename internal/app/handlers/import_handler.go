package handlers

import (
	"context"
	"errors"
	"log/slog"

	kafkaConsumer "documentstore/internal/pkg/kafka/consumer"
	"documentstore/internal/pkg/log_messages"
	"documentstore/internal/pkg/logger"
	"documentstore/internal/service/interfaces"
	servicekafka "documentstore/internal/service/kafka"
	notesService "documentstore/internal/service/notes"
)

type ImportHandler struct {
	importConsumer *kafkaConsumer.ImportConsumer
}

func NewImportHandler(ctx context.Context, importConsumer *kafkaConsumer.ImportConsumer) *ImportHandler {
	return &ImportHandler{
		importConsumer: importConsumer,
	}
}

// RunImportConsumer drains the import topic, writing each batch through the
// notes service. It returns only when the consumer fails.
func (h *ImportHandler) RunImportConsumer(
	ctx context.Context,
	consumer interfaces.KafkaConsumerInterface,
	service interfaces.NotesServiceInterface,
) error {
	var importService interfaces.KafkaImportServiceInterface = &servicekafka.ImportConsumerService{}

	for {
		payload, _, err := importService.NextImportMessage(ctx, consumer)
		if err != nil {
			logger.CtxError(ctx, log_messages.KafkaErrorConsuming, err)
			return err
		}

		if payload == nil {
			continue
		}

		imported, err := service.ImportNotes(ctx, payload)
		if err != nil {
			if errors.Is(err, notesService.ErrDuplicateRequest) {
				logger.CtxWarn(ctx, log_messages.DuplicateCreateRequest,
					slog.String("request_id", payload.RequestID),
				)
				continue
			}
			logger.CtxError(ctx, "Failed to import note batch", err,
				slog.String("request_id", payload.RequestID),
			)
			continue
		}
		if !imported {
			logger.CtxWarn(ctx, "Import batch rejected by store",
				slog.String("request_id", payload.RequestID),
				slog.Int("count", len(payload.Notes)),
			)
		}
	}
}
