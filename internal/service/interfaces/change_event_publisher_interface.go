package interfaces

import (
	"context"

	"documentstore/internal/pkg/models"
)

type ChangeEventPublisherInterface interface {
	PublishChange(ctx context.Context, event models.ChangeEvent) error
}
