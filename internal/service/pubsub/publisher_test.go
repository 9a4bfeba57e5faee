package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"documentstore/internal/pkg/consts"
	"documentstore/internal/pkg/models"
)

type mockChangePublisher struct {
	publishFunc func(ctx context.Context, topic string, msg []byte) error
}

func (m *mockChangePublisher) Publish(ctx context.Context, topic string, msg []byte) error {
	return m.publishFunc(ctx, topic, msg)
}

func (m *mockChangePublisher) Close() error {
	// no-op for tests
	return nil
}

func TestPublishChangeSuccess(t *testing.T) {
	ctx := context.Background()

	var gotTopic string
	var gotPayload []byte
	mock := &mockChangePublisher{
		publishFunc: func(ctx context.Context, topic string, msg []byte) error {
			gotTopic = topic
			gotPayload = msg
			return nil
		},
	}

	service := NewChangePublisherService(mock, "change-events")
	event := models.ChangeEvent{
		Entity:   consts.EntityKindNote,
		Action:   consts.ActionCreated,
		EntityID: "abc123",
	}

	err := service.PublishChange(ctx, event)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotTopic != "change-events" {
		t.Fatalf("expected topic 'change-events', got %s", gotTopic)
	}

	var decoded models.ChangeEvent
	if err := json.Unmarshal(gotPayload, &decoded); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	if decoded.EntityID != "abc123" {
		t.Fatalf("expected entity id 'abc123', got %s", decoded.EntityID)
	}
	if decoded.Action != consts.ActionCreated {
		t.Fatalf("expected action %q, got %q", consts.ActionCreated, decoded.Action)
	}
}

func TestPublishChangeError(t *testing.T) {
	ctx := context.Background()
	mock := &mockChangePublisher{
		publishFunc: func(ctx context.Context, topic string, msg []byte) error {
			return errors.New("publish failed")
		},
	}

	service := NewChangePublisherService(mock, "change-events")

	err := service.PublishChange(ctx, models.ChangeEvent{Action: consts.ActionDeleted})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}
