package pubsub

import (
	"context"
	"errors"
	"testing"

	"documentstore/internal/pkg/logger"
	"documentstore/internal/service/interfaces"
)

type mockPublisher struct {
	publishErr error
	published  [][]byte
	attrs      []map[string]string
}

func (m *mockPublisher) Publish(ctx context.Context, msg []byte, attrs map[string]string) error {
	m.published = append(m.published, msg)
	m.attrs = append(m.attrs, attrs)
	return m.publishErr
}

type mockPublisherClient struct {
	publisher *mockPublisher
	closeErr  error
	closed    bool
	topics    []string
}

func (m *mockPublisherClient) Publisher(topic string) interfaces.PublisherInterface {
	m.topics = append(m.topics, topic)
	return m.publisher
}

func (m *mockPublisherClient) Close() error {
	m.closed = true
	return m.closeErr
}

type mockFactory struct {
	client *mockPublisherClient
	err    error
}

func (f *mockFactory) NewPubSubPublisherClient(ctx context.Context, projectID string) (interfaces.PubSubPublisherClientInterface, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.client, nil
}

func TestNewEventPublisherWithFactory(t *testing.T) {
	ctx := context.Background()

	factory := &mockFactory{client: &mockPublisherClient{publisher: &mockPublisher{}}}
	publisher, err := NewEventPublisherWithFactory(ctx, "proj", factory)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if publisher == nil {
		t.Fatalf("expected publisher, got nil")
	}

	factoryErr := &mockFactory{err: errors.New("factory failed")}
	_, err = NewEventPublisherWithFactory(ctx, "proj", factoryErr)
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestPublish(t *testing.T) {
	ctx := context.Background()

	client := &mockPublisherClient{publisher: &mockPublisher{}}
	ep := &EventPublisher{PubSubClient: client}

	err := ep.Publish(ctx, "change-events", []byte(`{"action":"created"}`))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(client.topics) != 1 || client.topics[0] != "change-events" {
		t.Errorf("expected topic 'change-events', got %v", client.topics)
	}
	if len(client.publisher.published) != 1 {
		t.Errorf("expected one published message, got %d", len(client.publisher.published))
	}

	client.publisher.publishErr = errors.New("publish failed")
	err = ep.Publish(ctx, "change-events", []byte("payload"))
	if err == nil {
		t.Errorf("expected publish error, got nil")
	}
}

func TestPublishReusesTopicPublisher(t *testing.T) {
	ctx := context.Background()

	client := &mockPublisherClient{publisher: &mockPublisher{}}
	ep := &EventPublisher{PubSubClient: client}

	if err := ep.Publish(ctx, "change-events", []byte("one")); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := ep.Publish(ctx, "change-events", []byte("two")); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(client.topics) != 1 {
		t.Errorf("expected a single publisher for the topic, client was asked %d times", len(client.topics))
	}
	if len(client.publisher.published) != 2 {
		t.Errorf("expected two published messages, got %d", len(client.publisher.published))
	}
}

func TestPublishCarriesTraceID(t *testing.T) {
	client := &mockPublisherClient{publisher: &mockPublisher{}}
	ep := &EventPublisher{PubSubClient: client}

	ctx := logger.WithTraceID(context.Background(), "trace-42")
	if err := ep.Publish(ctx, "change-events", []byte("payload")); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got := client.publisher.attrs[0]["traceId"]; got != "trace-42" {
		t.Errorf("expected traceId attribute 'trace-42', got %q", got)
	}

	// No trace id in context means no attributes at all.
	if err := ep.Publish(context.Background(), "change-events", []byte("payload")); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if client.publisher.attrs[1] != nil {
		t.Errorf("expected nil attributes, got %v", client.publisher.attrs[1])
	}
}

func TestPublisherClose(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	client := &mockPublisherClient{publisher: &mockPublisher{}}
	ep := &EventPublisher{PubSubClient: client, Ctx: ctx, Cancel: cancel}

	if err := ep.Close(); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !client.closed {
		t.Errorf("expected underlying client to be closed")
	}
}
