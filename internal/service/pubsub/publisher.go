package publisher

import (
	"context"
	"encoding/json"
	"log/slog"

	"documentstore/internal/pkg/log_messages"
	"documentstore/internal/pkg/logger"
	"documentstore/internal/pkg/models"
	"documentstore/internal/service/interfaces"
)

type ChangePublisherService struct {
	publisher interfaces.ChangePublisherInterface
	topic     string
}

func NewChangePublisherService(publisher interfaces.ChangePublisherInterface, topic string) *ChangePublisherService {
	return &ChangePublisherService{publisher: publisher, topic: topic}
}

func (p *ChangePublisherService) PublishChange(ctx context.Context, event models.ChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorMarshallingMessage, err)
		return err
	}

	if err := p.publisher.Publish(ctx, p.topic, payload); err != nil {
		logger.CtxError(ctx, log_messages.ErrorInMessagePublishing, err)
		return err
	}

	logger.CtxDebug(ctx, log_messages.SuccessChangeEventPublished,
		slog.String("action", string(event.Action)),
		slog.String("entity_id", event.EntityID),
	)
	return nil
}
